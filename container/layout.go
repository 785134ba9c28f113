package container

import (
	"encoding/binary"

	"github.com/rowanhart/strchunk/errs"
)

const (
	// offsetEntrySize is the wire width of one offset-table entry.
	offsetEntrySize = 4
	// alignment is the byte boundary the offset table is placed on.
	alignment = 4
)

// AlignUp rounds n up to the next multiple of alignment (a power of two).
func AlignUp(n uint32) uint32 {
	return (n + alignment - 1) &^ (alignment - 1)
}

// ChunkCount returns the number of chunks a buffer of inplen original bytes
// is split into, given chunkSize. inplen must be nonzero.
func ChunkCount(inplen uint64, chunkSize uint32) int {
	return int((inplen + uint64(chunkSize) - 1) / uint64(chunkSize))
}

// ChunkOriginalSize returns the original (uncompressed) byte size of chunk
// index within a buffer of inplen bytes split into count chunks of chunkSize.
func ChunkOriginalSize(inplen uint64, chunkSize uint32, index, count int) uint32 {
	if index == count-1 {
		return uint32(inplen - uint64(index)*uint64(chunkSize))
	}
	return chunkSize
}

// WriteOffsetTable writes offsets, little-endian uint32 each, into dest.
// dest must be at least 4*len(offsets) bytes.
func WriteOffsetTable(dest []byte, offsets []uint32) {
	for i, off := range offsets {
		binary.LittleEndian.PutUint32(dest[i*offsetEntrySize:], off)
	}
}

// ReadOffsetTable reads count little-endian uint32 offsets starting at the
// beginning of data.
func ReadOffsetTable(data []byte, count int) ([]uint32, error) {
	need := count * offsetEntrySize
	if len(data) < need {
		return nil, errs.ErrTruncatedOffsetTable
	}

	offsets := make([]uint32, count)
	for i := range offsets {
		offsets[i] = binary.LittleEndian.Uint32(data[i*offsetEntrySize:])
	}

	return offsets, nil
}

// ChunkByteRange returns the compressed byte range [start, end) of chunk
// index within a container whose offset table is offsets. Offsets are
// measured from the start of the container buffer, so chunk 0 always
// starts at HeaderSize, immediately after the header.
func ChunkByteRange(offsets []uint32, index int) (start, end uint32, err error) {
	if index < 0 || index >= len(offsets) {
		return 0, 0, errs.ErrChunkIndexOutOfRange
	}

	start = HeaderSize
	if index > 0 {
		start = offsets[index-1]
	}
	end = offsets[index]

	return start, end, nil
}

// OffsetTableCount computes the number of offset-table entries implied by
// a container of total length totalLen whose header reports
// compressedBytes, by measuring how much of the buffer remains after the
// padded payload region.
func OffsetTableCount(totalLen int, compressedBytes uint32) int {
	aligned := AlignUp(compressedBytes)
	if totalLen <= int(aligned) {
		return 0
	}
	return (totalLen - int(aligned)) / offsetEntrySize
}
