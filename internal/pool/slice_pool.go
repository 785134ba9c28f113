package pool

import "sync"

// uint32SlicePool pools the offset-table backing storage. A Compressor
// grows this slice by one entry per chunk over its lifetime; pooling it
// avoids a fresh allocation per container for the common case of
// compressing many similarly-sized buffers back to back.
var uint32SlicePool = sync.Pool{
	New: func() any { s := make([]uint32, 0, 8); return &s },
}

// GetUint32Slice retrieves a zero-length uint32 slice from the pool, ready
// to be grown with append.
//
// The caller must call the returned cleanup function (typically via
// defer) once the slice is no longer needed, passing the slice's final
// value so the pool can retain its backing array for the next caller.
func GetUint32Slice() ([]uint32, func([]uint32)) {
	ptr, _ := uint32SlicePool.Get().(*[]uint32)
	slice := (*ptr)[:0]

	return slice, func(final []uint32) {
		*ptr = final[:0]
		uint32SlicePool.Put(ptr)
	}
}
