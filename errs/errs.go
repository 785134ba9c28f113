// Package errs defines the sentinel errors returned across the strchunk
// module. Callers should use errors.Is against these values rather than
// comparing formatted error strings; every returned error is one of these
// sentinels or wraps one with fmt.Errorf("%w: ...").
package errs

import "errors"

var (
	// ErrEmptyInput is returned by Init when given a zero-length input.
	ErrEmptyInput = errors.New("strchunk: input to compress must not be empty")

	// ErrInputTooLarge is returned by Init when the input length does not fit in a uint32.
	ErrInputTooLarge = errors.New("strchunk: input length exceeds 2^32-1 bytes")

	// ErrUnsupportedAlgorithm is returned when an Algorithm value outside the closed
	// {Zlib, Zstd} set is used to construct a codec or Compressor.
	ErrUnsupportedAlgorithm = errors.New("strchunk: unsupported compression algorithm")

	// ErrOutputTooSmall is returned by SetOutput when the destination window is empty.
	ErrOutputTooSmall = errors.New("strchunk: output window must not be empty")

	// ErrNotReady is returned by CompressMore when called before Init.
	ErrNotReady = errors.New("strchunk: compressor not initialized")

	// ErrNoOutput is returned by CompressMore when called before any SetOutput call.
	ErrNoOutput = errors.New("strchunk: compressor has no output window installed")

	// ErrNotDone is returned by Finish when CompressMore has not yet returned StatusDone.
	ErrNotDone = errors.New("strchunk: compression is not complete")

	// ErrDestSizeMismatch is returned by Finish when the destination length does not
	// equal TotalBytesNeeded.
	ErrDestSizeMismatch = errors.New("strchunk: destination length does not match TotalBytesNeeded")

	// ErrCodecFailure is returned when a codec fails to initialize or reports an
	// error while compressing or decompressing. CompressMore reports it as StatusOOM:
	// the container format gives callers no way to distinguish a real allocation
	// failure from a codec-reported stream error, so both collapse to StatusOOM at
	// the public surface, while the sentinel keeps the cause distinguishable for
	// tests and logs.
	ErrCodecFailure = errors.New("strchunk: codec reported a stream error")

	// ErrCodecClosed is returned internally when Push is called on a codec context
	// that has already reached End.
	ErrCodecClosed = errors.New("strchunk: codec context already closed")

	// ErrCorruptHeader is returned by Decompress/NewChunkDecompressor when the
	// container buffer is shorter than the fixed header size.
	ErrCorruptHeader = errors.New("strchunk: container shorter than header")

	// ErrInvalidHeader is returned when a parsed header carries an out-of-range
	// algorithm tag or a nonzero reserved field.
	ErrInvalidHeader = errors.New("strchunk: invalid container header")

	// ErrWholeBufferRequiresChunks is returned by Decompress when asked to decode a
	// Zlib container in one shot; raw-deflate chunks are not a single decodable
	// stream from byte 0, so the chunked path (DecompressChunk) is required instead.
	ErrWholeBufferRequiresChunks = errors.New("strchunk: zlib containers must be decompressed chunk by chunk")

	// ErrSizeMismatch is returned when a decompression produces a different number of
	// bytes than the caller's output buffer length (or the expected chunk length).
	ErrSizeMismatch = errors.New("strchunk: decompressed size does not match expected length")

	// ErrChunkIndexOutOfRange is returned by DecompressChunk when the requested chunk
	// index has no corresponding offset-table entry.
	ErrChunkIndexOutOfRange = errors.New("strchunk: chunk index out of range")

	// ErrTruncatedOffsetTable is returned when the container buffer is too short to
	// hold the offset table implied by its header, or when the number of offset-table
	// entries it holds differs from the chunk count implied by the caller's inputLen
	// and chunkSize.
	ErrTruncatedOffsetTable = errors.New("strchunk: container truncated before offset table")
)
