// Package chunked implements the streaming, chunk-aligned compressor and
// its matching whole-buffer and random-access decompressors.
//
// A Compressor is driven incrementally: Init installs the input, SetOutput
// installs an output window the caller owns, and CompressMore is called
// repeatedly until it reports StatusDone. Unlike a C-style cursor API that
// suspends mid-write when the destination fills up, CompressMore always
// makes forward progress against an internal accumulator (see
// internal/pool.Buffer) and only ever "loses" work that hasn't yet been
// copied into the caller's window; see DESIGN.md for the full rationale.
package chunked

import (
	"fmt"

	"github.com/rowanhart/strchunk/codec"
	"github.com/rowanhart/strchunk/container"
	"github.com/rowanhart/strchunk/errs"
	"github.com/rowanhart/strchunk/internal/options"
	"github.com/rowanhart/strchunk/internal/pool"
)

const defaultChunkSize = 64 * 1024

type compressorState uint8

const (
	stateInit compressorState = iota
	stateStreaming
	stateFinished
)

// Compressor produces one chunked container's payload across repeated
// CompressMore calls, deferring commitment of each chunk's offset-table
// entry until its compressed bytes are confirmed resident in the caller's
// destination buffer rather than merely produced by the codec.
type Compressor struct {
	algorithm container.Algorithm
	level     uint8
	chunkSize uint32

	debugAssertions bool

	state compressorState
	ctx   codec.Context
	acc   *pool.Buffer

	input   []byte
	inPos   int
	curSize uint32 // original bytes fed into the current, not-yet-boundaried chunk

	dest    []byte
	destPos int

	totalWritten uint64 // header.CompressedBytes so far: HeaderSize plus payload bytes committed to the caller's buffer

	offsets        []uint32
	offsetsCleanup func([]uint32)

	boundaryOwed bool // a FlushChunk/End was issued; commit an offset once acc drains
	finished     bool // codec End has been pushed
}

// WithDebugAssertions enables internal invariant checks that panic
// instead of silently producing a malformed container: offset-table
// entries must strictly increase, and every non-final chunk must
// consume exactly chunkSize input bytes before its boundary is
// committed. Off by default, matching a release build.
func WithDebugAssertions() options.Option[*Compressor] {
	return options.NoError(func(c *Compressor) {
		c.debugAssertions = true
	})
}

// WithChunkSize overrides the default 64KiB chunk size.
func WithChunkSize(size uint32) options.Option[*Compressor] {
	return options.New(func(c *Compressor) error {
		if size == 0 {
			return fmt.Errorf("%w: chunk size must be nonzero", errs.ErrInvalidHeader)
		}
		c.chunkSize = size
		return nil
	})
}

// New creates a Compressor for the given algorithm and level. level 0
// selects each codec's default level.
func New(algorithm container.Algorithm, level uint8, opts ...options.Option[*Compressor]) (*Compressor, error) {
	if !algorithm.Valid() {
		return nil, errs.ErrUnsupportedAlgorithm
	}

	c := &Compressor{
		algorithm: algorithm,
		level:     level,
		chunkSize: defaultChunkSize,
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Init installs input to be compressed and (re)initializes internal state,
// allowing a Compressor to be reused across many inputs.
func (c *Compressor) Init(input []byte) error {
	if len(input) == 0 {
		return errs.ErrEmptyInput
	}
	if uint64(len(input)) > (1<<32)-1 {
		return errs.ErrInputTooLarge
	}

	c.destroyCodec()
	c.releaseOffsets()

	c.acc = pool.GetBuffer()

	ctx, err := codec.New(c.algorithm, c.level, c.acc)
	if err != nil {
		pool.PutBuffer(c.acc)
		c.acc = nil
		return err
	}
	c.ctx = ctx

	c.input = input
	c.inPos = 0
	c.curSize = 0
	c.dest = nil
	c.destPos = 0
	c.totalWritten = uint64(container.HeaderSize)
	c.boundaryOwed = false
	c.finished = false
	c.offsets, c.offsetsCleanup = pool.GetUint32Slice()
	c.state = stateStreaming

	return nil
}

// SetOutput installs the window CompressMore writes into next. dest is a
// slice positioned at the payload's current write cursor, i.e. its first
// byte is where the next compressed byte belongs; the caller advances
// their own bookkeeping between StatusMoreOutput calls, exactly as if this
// were a growable buffer with a moving write cursor.
func (c *Compressor) SetOutput(dest []byte) error {
	if len(dest) == 0 {
		return errs.ErrOutputTooSmall
	}
	c.dest = dest
	c.destPos = 0
	return nil
}

// drain copies accumulated codec output into the installed destination
// window, compacting the accumulator as bytes are consumed. It returns
// true if the destination window is now full and accumulated bytes
// remain undrained.
func (c *Compressor) drain() bool {
	avail := len(c.dest) - c.destPos
	pending := c.acc.Bytes()
	n := len(pending)
	if n > avail {
		n = avail
	}
	if n > 0 {
		copy(c.dest[c.destPos:], pending[:n])
		c.destPos += n
		c.totalWritten += uint64(n)

		remaining := len(pending) - n
		copy(pending, pending[n:])
		c.acc.SetLength(remaining)
	}

	if c.boundaryOwed && len(c.acc.Bytes()) == 0 {
		next := uint32(c.totalWritten)
		if c.debugAssertions && len(c.offsets) > 0 && next <= c.offsets[len(c.offsets)-1] {
			panic("chunked: offset table entries must strictly increase")
		}
		c.offsets = append(c.offsets, next)
		c.boundaryOwed = false
	}

	return c.destPos >= len(c.dest) && len(c.acc.Bytes()) > 0
}

// maxInputSize bounds how many original input bytes a single CompressMore
// call feeds to the codec, so a call over a large remaining input returns
// StatusContinue instead of running to completion in one shot. This gives
// callers that want to interleave compression with other work a
// cooperative yield point.
const maxInputSize = 16 * 1024

// CompressMore advances compression by at most maxInputSize input bytes,
// bounded further by whatever room remains in the currently installed
// destination window. Call it in a loop: on StatusContinue, call again;
// on StatusMoreOutput, SetOutput a fresh window and call again; on
// StatusDone, compression is complete and Finish may be called.
func (c *Compressor) CompressMore() (Status, error) {
	if c.state == stateInit {
		return StatusOOM, errs.ErrNotReady
	}
	if c.state == stateFinished {
		return StatusDone, nil
	}
	if c.dest == nil {
		return StatusOOM, errs.ErrNoOutput
	}

	var fed uint32

	for {
		if c.drain() {
			return StatusMoreOutput, nil
		}

		if c.finished {
			if len(c.acc.Bytes()) == 0 {
				c.state = stateFinished
				return StatusDone, nil
			}
			continue
		}

		if fed >= maxInputSize {
			return StatusContinue, nil
		}

		remaining := len(c.input) - c.inPos
		if remaining == 0 {
			// No more input; push a final empty End to close the codec.
			if err := c.ctx.Push(nil, codec.End); err != nil {
				return StatusOOM, err
			}
			c.finished = true
			c.boundaryOwed = true
			continue
		}

		chunkRemaining := int(c.chunkSize - c.curSize)
		n := remaining
		if n > chunkRemaining {
			n = chunkRemaining
		}
		if n > int(maxInputSize-fed) {
			n = int(maxInputSize - fed)
		}

		slice := c.input[c.inPos : c.inPos+n]
		isLastInput := c.inPos+n == len(c.input)
		completesChunk := n == chunkRemaining

		var mode codec.PushMode
		switch {
		case isLastInput:
			mode = codec.End
		case completesChunk:
			mode = codec.FlushChunk
		default:
			mode = codec.Continue
		}

		if err := c.ctx.Push(slice, mode); err != nil {
			return StatusOOM, err
		}
		c.inPos += n
		fed += uint32(n)

		switch mode {
		case codec.Continue:
			c.curSize += uint32(n)
		case codec.FlushChunk:
			if c.debugAssertions && c.curSize+uint32(n) != c.chunkSize {
				panic("chunked: chunk boundary reached without filling chunkSize")
			}
			c.curSize = 0
			c.boundaryOwed = true
		case codec.End:
			c.finished = true
			c.boundaryOwed = true
		}
	}
}

// WindowWritten returns how many bytes of the currently installed output
// window (see SetOutput) have been filled by the most recent CompressMore
// call.
func (c *Compressor) WindowWritten() int {
	return c.destPos
}

// TotalBytesNeeded returns the full container size in bytes, including the
// header and offset table, once compression has finished. It returns
// errs.ErrNotDone before that.
func (c *Compressor) TotalBytesNeeded() (uint64, error) {
	if c.state != stateFinished {
		return 0, errs.ErrNotDone
	}
	padded := container.AlignUp(uint32(c.totalWritten))
	return uint64(padded) + uint64(len(c.offsets))*4, nil
}

// Finish writes the container header and offset table into buf, which must
// be exactly TotalBytesNeeded bytes with the compressed payload already
// occupying buf[container.HeaderSize:CompressedBytes] (the concatenation
// of every window previously passed to SetOutput; CompressedBytes counts
// the header itself, per container.Header).
func (c *Compressor) Finish(buf []byte) error {
	if c.state != stateFinished {
		return errs.ErrNotDone
	}

	need, err := c.TotalBytesNeeded()
	if err != nil {
		return err
	}
	if uint64(len(buf)) != need {
		return errs.ErrDestSizeMismatch
	}

	header := container.Header{
		CompressedBytes: uint32(c.totalWritten),
		Algorithm:       c.algorithm,
		Level:           c.level,
	}
	copy(buf[:container.HeaderSize], header.Bytes())

	payloadEnd := int(c.totalWritten)
	paddedEnd := int(container.AlignUp(uint32(c.totalWritten)))
	for i := payloadEnd; i < paddedEnd; i++ {
		buf[i] = 0
	}

	container.WriteOffsetTable(buf[paddedEnd:], c.offsets)

	return nil
}

func (c *Compressor) destroyCodec() {
	if c.ctx != nil {
		c.ctx.Destroy()
		c.ctx = nil
	}
	if c.acc != nil {
		pool.PutBuffer(c.acc)
		c.acc = nil
	}
}

func (c *Compressor) releaseOffsets() {
	if c.offsetsCleanup != nil {
		c.offsetsCleanup(c.offsets)
		c.offsetsCleanup = nil
	}
	c.offsets = nil
}

// Destroy releases pooled resources held by c. c must not be used
// afterward except via a fresh Init call.
func (c *Compressor) Destroy() {
	c.destroyCodec()
	c.releaseOffsets()
	c.state = stateInit
}
