// Package codec provides the streaming codec adapter used by the chunked
// package: a uniform, closed {Zlib, Zstd} interface over
// github.com/klauspost/compress's flate and zstd implementations.
//
// # Why Push instead of a manual avail_in/avail_out cursor
//
// The classic C-style streaming compressor contract (as used by zlib and
// libzstd) is byte-cursor driven: the caller repeatedly hands over an
// input window and an output window, and the codec reports how much of
// each it consumed. Go's streaming codecs are io.Writer-shaped instead:
// they buffer internally and flush to a sink on Flush/Close, with no
// supported way to suspend a Write mid-call and resume it later against a
// different destination.
//
// Context.Push therefore only tracks the input side explicitly. The
// output side is always a long-lived internal sink installed at
// construction time (see the chunked package for how that sink's
// contents get copied into the caller's actual destination buffer); the
// codec adapter itself never reports "need more output space" — that
// concern belongs entirely to the caller of Push.
package codec

import (
	"fmt"
	"io"

	"github.com/rowanhart/strchunk/container"
	"github.com/rowanhart/strchunk/errs"
)

// PushMode selects how Push should treat the trailing edge of the bytes
// it is given.
type PushMode uint8

const (
	// Continue keeps the current chunk's stream open; no boundary is produced.
	Continue PushMode = iota
	// FlushChunk closes the current chunk's stream (producing a complete,
	// independently-decodable unit) and prepares a fresh one for the next chunk.
	FlushChunk
	// End closes the current chunk's stream and marks the context closed.
	End
)

// Context is a single codec instance bound to one Compressor's lifetime.
// It is not safe for concurrent use.
type Context interface {
	// Push feeds input to the codec under mode. Compressed bytes appear on
	// the sink supplied to New, not as a return value.
	Push(input []byte, mode PushMode) error
	// Destroy releases the codec's resources. Idempotent, and safe to call
	// before the stream ever reaches End.
	Destroy()
}

// New creates a codec Context for algorithm at the given level (0 meaning
// "default"), writing compressed output to sink as it is produced.
func New(algorithm container.Algorithm, level uint8, sink io.Writer) (Context, error) {
	switch algorithm {
	case container.Zlib:
		return newFlateContext(level, sink)
	case container.Zstd:
		return newZstdContext(level, sink)
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedAlgorithm, algorithm)
	}
}
