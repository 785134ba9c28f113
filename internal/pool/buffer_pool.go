// Package pool provides sync.Pool-backed reuse for the two allocation-heavy
// pieces of the chunked compressor: the growable accumulator each codec
// context writes into, and the offset-table backing storage.
package pool

import "sync"

// Buffer growth tuning. A compressed chunk is rarely much larger than a
// handful of KiB even for incompressible input (deflate/zstd stored-block
// overhead is small), so the default size covers most chunks without a
// reallocation; the threshold discards buffers that ballooned well past
// that, so one unusually large chunk doesn't permanently bloat the pool.
const (
	BufferDefaultSize  = 8 * 1024   // 8KiB
	BufferMaxThreshold = 128 * 1024 // 128KiB
)

// Buffer is a growable byte accumulator. It implements io.Writer, so it
// can be handed directly to a flate.Writer or zstd.Encoder as their sink.
type Buffer struct {
	B []byte
}

// NewBuffer creates a Buffer with the given initial capacity.
func NewBuffer(defaultSize int) *Buffer {
	return &Buffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the buffer's current contents.
func (b *Buffer) Bytes() []byte {
	return b.B
}

// Len returns the number of bytes currently held.
func (b *Buffer) Len() int {
	return len(b.B)
}

// Reset empties the buffer while keeping its backing array.
func (b *Buffer) Reset() {
	b.B = b.B[:0]
}

// SetLength truncates or extends the buffer's length to n, which must not
// exceed its capacity. Used after copying out a prefix of the buffer's
// bytes, to discard the consumed prefix in place.
func (b *Buffer) SetLength(n int) {
	if n < 0 || n > cap(b.B) {
		panic("pool.Buffer.SetLength: invalid length")
	}
	b.B = b.B[:n]
}

// Write appends data to the buffer, growing it as needed. It never
// returns an error: this is precisely what lets a codec's Write calls
// into a Buffer proceed regardless of how much room the caller's actual
// destination buffer currently has (see the chunked package).
func (b *Buffer) Write(data []byte) (int, error) {
	b.B = append(b.B, data...)
	return len(data), nil
}

// BufferPool is a pool of Buffers, discarding ones that grew unreasonably
// large instead of returning them for reuse.
type BufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewBufferPool creates a BufferPool whose Buffers start at defaultSize
// and are discarded on Put once their capacity exceeds maxThreshold.
func NewBufferPool(defaultSize, maxThreshold int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() any { return NewBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a Buffer from the pool.
func (p *BufferPool) Get() *Buffer {
	buf, _ := p.pool.Get().(*Buffer)
	return buf
}

// Put returns buf to the pool for reuse, or discards it if it grew past
// the pool's max threshold.
func (p *BufferPool) Put(buf *Buffer) {
	if buf == nil {
		return
	}
	if p.maxThreshold > 0 && cap(buf.B) > p.maxThreshold {
		return
	}
	buf.Reset()
	p.pool.Put(buf)
}

var defaultBufferPool = NewBufferPool(BufferDefaultSize, BufferMaxThreshold)

// GetBuffer retrieves a Buffer from the package-default pool.
func GetBuffer() *Buffer {
	return defaultBufferPool.Get()
}

// PutBuffer returns a Buffer to the package-default pool.
func PutBuffer(buf *Buffer) {
	defaultBufferPool.Put(buf)
}
