package codec

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/rowanhart/strchunk/errs"
)

// flateContext drives a raw-DEFLATE stream per chunk. Go's flate package
// exposes no Z_FULL_FLUSH primitive, so independent per-chunk decodability
// is achieved by closing the writer at every chunk boundary (producing a
// complete raw-deflate stream for that chunk) and Reset-ing it onto the
// same sink for the next chunk, rather than a single long-lived stream
// with sync-flush points.
type flateContext struct {
	w      *flate.Writer
	sink   io.Writer
	closed bool
}

// flateLevel maps the container's level byte (0 = default) onto flate's
// level scale. level 0 maps to flate.BestSpeed, matching the "classic
// build" default named in spec.md §4.1.
func flateLevel(level uint8) int {
	if level == 0 {
		return flate.BestSpeed
	}
	return int(level)
}

func newFlateContext(level uint8, sink io.Writer) (*flateContext, error) {
	w, err := flate.NewWriter(sink, flateLevel(level))
	if err != nil {
		return nil, fmt.Errorf("%w: zlib init: %v", errs.ErrCodecFailure, err)
	}

	return &flateContext{w: w, sink: sink}, nil
}

func (c *flateContext) Push(input []byte, mode PushMode) error {
	if c.closed {
		return errs.ErrCodecClosed
	}

	if len(input) > 0 {
		if _, err := c.w.Write(input); err != nil {
			return fmt.Errorf("%w: %v", errs.ErrCodecFailure, err)
		}
	}

	switch mode {
	case Continue:
		return nil
	case FlushChunk:
		if err := c.w.Close(); err != nil {
			return fmt.Errorf("%w: %v", errs.ErrCodecFailure, err)
		}
		c.w.Reset(c.sink)
		return nil
	case End:
		err := c.w.Close()
		c.closed = true
		if err != nil {
			return fmt.Errorf("%w: %v", errs.ErrCodecFailure, err)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown push mode %d", errs.ErrCodecFailure, mode)
	}
}

func (c *flateContext) Destroy() {
	if c.closed {
		return
	}
	_ = c.w.Close()
	c.closed = true
}
