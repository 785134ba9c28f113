package codec

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/rowanhart/strchunk/errs"
)

// zstdContext drives a Zstandard stream per chunk. Every chunk boundary
// closes the current frame (Close) rather than merely flushing it
// (ZSTD_flushStream in the C original), then resets the encoder onto the
// same sink for the next chunk. This departs deliberately from the
// upstream implementation's flush-only interior chunks: a flushed-but-
// not-ended zstd frame does not carry a terminal "last block" marker, so
// a one-shot decompressor (which is what the chunk decompressor uses,
// spec.md §4.4) is not guaranteed to succeed on it. Ending every chunk
// makes every chunk a complete, independently valid frame.
type zstdContext struct {
	enc    *zstd.Encoder
	sink   io.Writer
	closed bool
}

// zstdLevel maps the container's level byte (0 = default, meaning 3) onto
// klauspost/compress/zstd's four speed presets via its own documented
// bridge from libzstd's numeric level scale.
func zstdLevel(level uint8) zstd.EncoderLevel {
	if level == 0 {
		level = 3
	}
	return zstd.EncoderLevelFromZstd(int(level))
}

func newZstdContext(level uint8, sink io.Writer) (*zstdContext, error) {
	enc, err := zstd.NewWriter(sink, zstd.WithEncoderLevel(zstdLevel(level)))
	if err != nil {
		return nil, fmt.Errorf("%w: zstd init: %v", errs.ErrCodecFailure, err)
	}

	return &zstdContext{enc: enc, sink: sink}, nil
}

func (c *zstdContext) Push(input []byte, mode PushMode) error {
	if c.closed {
		return errs.ErrCodecClosed
	}

	if len(input) > 0 {
		if _, err := c.enc.Write(input); err != nil {
			return fmt.Errorf("%w: %v", errs.ErrCodecFailure, err)
		}
	}

	switch mode {
	case Continue:
		return nil
	case FlushChunk:
		if err := c.enc.Close(); err != nil {
			return fmt.Errorf("%w: %v", errs.ErrCodecFailure, err)
		}
		c.enc.Reset(c.sink)
		return nil
	case End:
		err := c.enc.Close()
		c.closed = true
		if err != nil {
			return fmt.Errorf("%w: %v", errs.ErrCodecFailure, err)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown push mode %d", errs.ErrCodecFailure, mode)
	}
}

func (c *zstdContext) Destroy() {
	if c.closed {
		return
	}
	_ = c.enc.Close()
	c.closed = true
}
