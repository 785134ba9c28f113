package chunked

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/rowanhart/strchunk/container"
	"github.com/rowanhart/strchunk/errs"
)

// zstdDecoderPool mirrors the warmed-up decoder pool pattern used for the
// whole-buffer and per-chunk zstd paths: decoder construction allocates
// the decoder's internal state, so reusing one across calls avoids
// repeating that work.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			panic(fmt.Sprintf("chunked: zstd.NewReader: %v", err))
		}
		return dec
	},
}

func getZstdDecoder() *zstd.Decoder {
	return zstdDecoderPool.Get().(*zstd.Decoder)
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Decompress decompresses an entire container in one call, returning
// exactly expectedSize bytes of original data.
//
// Only Zstd containers can be decompressed this way. A Zlib container is
// a sequence of independent raw-deflate streams concatenated back to
// back, one per chunk boundary, which zlib's own one-shot inflate has no
// portable way to walk without the chunk boundaries; use DecompressChunk
// per chunk instead. This mirrors the fix spec.md itself proposes for the
// ambiguity in the original implementation's whole-buffer decompressor.
func Decompress(data []byte, expectedSize uint64) ([]byte, error) {
	header, err := container.ParseHeader(data)
	if err != nil {
		return nil, err
	}
	if header.Algorithm != container.Zstd {
		return nil, errs.ErrWholeBufferRequiresChunks
	}

	payload := data[container.HeaderSize:header.CompressedBytes]

	dec := getZstdDecoder()
	defer putZstdDecoder(dec)

	out, err := dec.DecodeAll(payload, make([]byte, 0, expectedSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrCodecFailure, err)
	}
	if uint64(len(out)) != expectedSize {
		return nil, errs.ErrSizeMismatch
	}

	return out, nil
}
