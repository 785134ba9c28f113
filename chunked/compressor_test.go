package chunked

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowanhart/strchunk/container"
)

// compressAll drives a Compressor to completion using a single oversized
// destination window, returning the finished container bytes.
func compressAll(t *testing.T, algorithm container.Algorithm, input []byte) []byte {
	t.Helper()

	c, err := New(algorithm, 0)
	require.NoError(t, err)
	defer c.Destroy()

	require.NoError(t, c.Init(input))

	payload := make([]byte, len(input)*2+64)
	require.NoError(t, c.SetOutput(payload))

	// The destination window is oversized on purpose, so every call
	// either yields StatusContinue (maxInputSize reached) or finishes.
	var status Status
	for {
		status, err = c.CompressMore()
		require.NoError(t, err)
		if status == StatusDone {
			break
		}
		require.Equal(t, StatusContinue, status)
	}

	need, err := c.TotalBytesNeeded()
	require.NoError(t, err)

	out := make([]byte, need)
	copy(out[container.HeaderSize:], payload)
	require.NoError(t, c.Finish(out))

	return out
}

func TestCompressorRoundTripZstdWholeBuffer(t *testing.T) {
	input := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 500)

	out := compressAll(t, container.Zstd, input)

	decoded, err := Decompress(out, uint64(len(input)))
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

func TestCompressorRoundTripZlibChunkByChunk(t *testing.T) {
	input := bytes.Repeat([]byte("mississippi river "), 2000)

	c, err := New(container.Zlib, 0, WithChunkSize(1024))
	require.NoError(t, err)
	defer c.Destroy()

	require.NoError(t, c.Init(input))

	payload := make([]byte, len(input)*2+64)
	require.NoError(t, c.SetOutput(payload))

	var status Status
	for {
		status, err = c.CompressMore()
		require.NoError(t, err)
		if status == StatusDone {
			break
		}
		require.Equal(t, StatusContinue, status)
	}

	need, err := c.TotalBytesNeeded()
	require.NoError(t, err)

	out := make([]byte, need)
	copy(out[container.HeaderSize:], payload)
	require.NoError(t, c.Finish(out))

	dc, err := NewChunkDecompressor(out, uint64(len(input)), 1024)
	require.NoError(t, err)

	var rebuilt []byte
	for i := 0; i < dc.ChunkCount(); i++ {
		chunk, err := dc.DecompressChunk(i)
		require.NoError(t, err)
		rebuilt = append(rebuilt, chunk...)
	}

	require.Equal(t, input, rebuilt)
}

func TestCompressorResumesAfterMoreOutput(t *testing.T) {
	input := bytes.Repeat([]byte("resumable streaming test data "), 1000)

	c, err := New(container.Zstd, 0, WithChunkSize(2048))
	require.NoError(t, err)
	defer c.Destroy()

	require.NoError(t, c.Init(input))

	var full bytes.Buffer
	window := make([]byte, 128) // deliberately tiny, forces many MoreOutput cycles

	for {
		require.NoError(t, c.SetOutput(window))
		status, err := c.CompressMore()
		require.NoError(t, err)

		full.Write(window[:c.WindowWritten()])

		if status == StatusDone {
			break
		}
		require.Contains(t, []Status{StatusMoreOutput, StatusContinue}, status)
	}

	need, err := c.TotalBytesNeeded()
	require.NoError(t, err)

	out := make([]byte, need)
	copy(out[container.HeaderSize:], full.Bytes())
	require.NoError(t, c.Finish(out))

	decoded, err := Decompress(out, uint64(len(input)))
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

func TestCompressorRejectsEmptyInput(t *testing.T) {
	c, err := New(container.Zstd, 0)
	require.NoError(t, err)
	defer c.Destroy()

	require.Error(t, c.Init(nil))
}

func TestNewRejectsUnknownAlgorithm(t *testing.T) {
	_, err := New(container.Algorithm(9), 0)
	require.Error(t, err)
}

func TestCompressMoreYieldsContinueOnLargeInput(t *testing.T) {
	// Larger than maxInputSize, so a single call cannot finish even
	// though the destination window never fills.
	input := bytes.Repeat([]byte("x"), maxInputSize*3)

	c, err := New(container.Zstd, 0)
	require.NoError(t, err)
	defer c.Destroy()

	require.NoError(t, c.Init(input))

	window := make([]byte, len(input)+64)
	require.NoError(t, c.SetOutput(window))

	status, err := c.CompressMore()
	require.NoError(t, err)
	require.Equal(t, StatusContinue, status)

	for status != StatusDone {
		status, err = c.CompressMore()
		require.NoError(t, err)
	}
}

func TestDebugAssertionsPassOnNormalRoundTrip(t *testing.T) {
	input := bytes.Repeat([]byte("assertions should never fire on well-formed use "), 500)

	c, err := New(container.Zstd, 0, WithDebugAssertions(), WithChunkSize(4096))
	require.NoError(t, err)
	defer c.Destroy()

	require.NoError(t, c.Init(input))

	window := make([]byte, len(input)*2+64)
	require.NoError(t, c.SetOutput(window))

	var status Status
	for status != StatusDone {
		status, err = c.CompressMore()
		require.NoError(t, err)
	}

	need, err := c.TotalBytesNeeded()
	require.NoError(t, err)

	out := make([]byte, need)
	copy(out[container.HeaderSize:], window)
	require.NoError(t, c.Finish(out))

	decoded, err := Decompress(out, uint64(len(input)))
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

func TestDebugAssertionsPanicOnOffsetRegression(t *testing.T) {
	c, err := New(container.Zstd, 0, WithDebugAssertions())
	require.NoError(t, err)
	defer c.Destroy()

	require.NoError(t, c.Init([]byte("hello world")))

	c.offsets = append(c.offsets, 100)
	c.totalWritten = 50
	c.boundaryOwed = true
	c.acc.Reset()

	require.Panics(t, func() { c.drain() })
}
