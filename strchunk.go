// Package strchunk provides chunk-aligned, randomly-decodable compression
// for large in-memory buffers.
//
// A compressed buffer (a "container") is split into fixed-size chunks
// before compression, so any single chunk can be decompressed on its own
// without touching the rest of the container. This trades a small amount
// of compression ratio (each chunk restarts its codec's internal state)
// for random access, which matters when only part of a large compressed
// buffer is needed at a time.
//
// # Core Features
//
//   - Two supported codecs: raw DEFLATE (Zlib) and Zstandard (Zstd)
//   - Fixed 8-byte little-endian header plus a trailing offset table
//   - Streaming compression driven by repeated CompressMore calls into
//     caller-supplied output windows of any size; Finish then needs the
//     whole container buffer, with the payload already copied into it
//   - Whole-buffer decompression for Zstd containers, and random-access
//     per-chunk decompression for both codecs
//
// # Basic Usage
//
// Compressing a buffer in one shot:
//
//	import (
//		"github.com/rowanhart/strchunk"
//		"github.com/rowanhart/strchunk/container"
//	)
//
//	out, err := strchunk.Compress(container.Zstd, 0, 64*1024, data)
//
// Decompressing it back:
//
//	decoded, err := strchunk.Decompress(out, uint64(len(data)))
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the chunked
// and container packages, covering the common case of compressing a
// buffer that already fits in memory. For streaming control over the
// destination buffer (SetOutput/CompressMore/StatusMoreOutput) or
// random-access chunk reads, use the chunked package directly.
package strchunk

import (
	"github.com/rowanhart/strchunk/chunked"
	"github.com/rowanhart/strchunk/container"
)

const compressWindowSize = 32 * 1024

// Compress compresses data into a complete container in one call, using
// the given algorithm, level (0 for the codec's default), and chunkSize.
func Compress(algorithm container.Algorithm, level uint8, chunkSize uint32, data []byte) ([]byte, error) {
	c, err := chunked.New(algorithm, level, chunked.WithChunkSize(chunkSize))
	if err != nil {
		return nil, err
	}
	defer c.Destroy()

	if err := c.Init(data); err != nil {
		return nil, err
	}

	payload := make([]byte, 0, len(data))
	window := make([]byte, compressWindowSize)

	for {
		if err := c.SetOutput(window); err != nil {
			return nil, err
		}

		status, err := c.CompressMore()
		if err != nil {
			return nil, err
		}

		payload = append(payload, window[:c.WindowWritten()]...)

		if status == chunked.StatusDone {
			break
		}
	}

	need, err := c.TotalBytesNeeded()
	if err != nil {
		return nil, err
	}

	out := make([]byte, need)
	copy(out[container.HeaderSize:], payload)
	if err := c.Finish(out); err != nil {
		return nil, err
	}

	return out, nil
}

// Decompress decompresses a whole Zstd container in one call. Zlib
// containers must be read chunk by chunk via chunked.NewChunkDecompressor.
func Decompress(data []byte, expectedSize uint64) ([]byte, error) {
	return chunked.Decompress(data, expectedSize)
}
