package chunked

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/flate"

	"github.com/rowanhart/strchunk/container"
	"github.com/rowanhart/strchunk/errs"
)

// flateReaderPool pools flate.Readers via the flate.Resetter interface so
// repeated random-access chunk reads don't reallocate the decoder's
// internal tables each time.
var flateReaderPool = sync.Pool{
	New: func() any { return flate.NewReader(bytes.NewReader(nil)) },
}

// ChunkDecompressor reads chunks at random from a single container,
// reusing its offset table and pooled decoders across calls.
type ChunkDecompressor struct {
	header    container.Header
	data      []byte
	offsets   []uint32
	chunkSize uint32
	inputLen  uint64
}

// NewChunkDecompressor parses data's header and offset table, ready to
// serve DecompressChunk calls. inputLen and chunkSize must match the
// values used when the container was produced; the container format
// carries neither, by design (spec.md §6).
func NewChunkDecompressor(data []byte, inputLen uint64, chunkSize uint32) (*ChunkDecompressor, error) {
	header, err := container.ParseHeader(data)
	if err != nil {
		return nil, err
	}
	if chunkSize == 0 {
		chunkSize = defaultChunkSize
	}

	count := container.ChunkCount(inputLen, chunkSize)
	paddedEnd := int(container.AlignUp(header.CompressedBytes))
	if paddedEnd > len(data) {
		return nil, errs.ErrTruncatedOffsetTable
	}
	if got := container.OffsetTableCount(len(data), header.CompressedBytes); got != count {
		return nil, errs.ErrTruncatedOffsetTable
	}

	offsets, err := container.ReadOffsetTable(data[paddedEnd:], count)
	if err != nil {
		return nil, err
	}

	return &ChunkDecompressor{
		header:    header,
		data:      data,
		offsets:   offsets,
		chunkSize: chunkSize,
		inputLen:  inputLen,
	}, nil
}

// ChunkCount returns the number of chunks the container was split into.
func (d *ChunkDecompressor) ChunkCount() int {
	return len(d.offsets)
}

// DecompressChunk decompresses a single chunk by index, returning exactly
// that chunk's original bytes.
func (d *ChunkDecompressor) DecompressChunk(index int) ([]byte, error) {
	start, end, err := container.ChunkByteRange(d.offsets, index)
	if err != nil {
		return nil, err
	}

	payload := d.data[start:end]
	originalSize := container.ChunkOriginalSize(d.inputLen, d.chunkSize, index, len(d.offsets))

	switch d.header.Algorithm {
	case container.Zlib:
		return decompressFlateChunk(payload, originalSize)
	case container.Zstd:
		return decompressZstdChunk(payload, originalSize)
	default:
		return nil, errs.ErrUnsupportedAlgorithm
	}
}

func decompressFlateChunk(payload []byte, originalSize uint32) ([]byte, error) {
	rc := flateReaderPool.Get().(io.ReadCloser)
	defer flateReaderPool.Put(rc)

	resetter, ok := rc.(flate.Resetter)
	if !ok {
		return nil, fmt.Errorf("%w: flate reader does not support Reset", errs.ErrCodecFailure)
	}
	if err := resetter.Reset(bytes.NewReader(payload), nil); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrCodecFailure, err)
	}

	// Read one byte past originalSize so surplus output is detected too.
	out, err := io.ReadAll(io.LimitReader(rc, int64(originalSize)+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrCodecFailure, err)
	}
	if uint64(len(out)) != uint64(originalSize) {
		return nil, errs.ErrSizeMismatch
	}

	return out, nil
}

func decompressZstdChunk(payload []byte, originalSize uint32) ([]byte, error) {
	dec := getZstdDecoder()
	defer putZstdDecoder(dec)

	out, err := dec.DecodeAll(payload, make([]byte, 0, originalSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrCodecFailure, err)
	}
	if uint32(len(out)) != originalSize {
		return nil, errs.ErrSizeMismatch
	}

	return out, nil
}
