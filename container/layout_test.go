package container

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlignUp(t *testing.T) {
	cases := map[uint32]uint32{
		0: 0, 1: 4, 2: 4, 3: 4, 4: 4, 5: 8, 8: 8, 9: 12,
	}
	for in, want := range cases {
		require.Equal(t, want, AlignUp(in), "AlignUp(%d)", in)
	}
}

func TestChunkCountAndOriginalSize(t *testing.T) {
	const chunkSize = 100

	count := ChunkCount(250, chunkSize)
	require.Equal(t, 3, count)

	require.Equal(t, uint32(100), ChunkOriginalSize(250, chunkSize, 0, count))
	require.Equal(t, uint32(100), ChunkOriginalSize(250, chunkSize, 1, count))
	require.Equal(t, uint32(50), ChunkOriginalSize(250, chunkSize, 2, count))
}

func TestChunkCountExactMultiple(t *testing.T) {
	count := ChunkCount(200, 100)
	require.Equal(t, 2, count)
	require.Equal(t, uint32(100), ChunkOriginalSize(200, 100, 1, count))
}

func TestOffsetTableRoundTrip(t *testing.T) {
	offsets := []uint32{10, 25, 40}
	buf := make([]byte, len(offsets)*4)

	WriteOffsetTable(buf, offsets)

	got, err := ReadOffsetTable(buf, len(offsets))
	require.NoError(t, err)
	require.Equal(t, offsets, got)
}

func TestReadOffsetTableTruncated(t *testing.T) {
	_, err := ReadOffsetTable(make([]byte, 3), 1)
	require.Error(t, err)
}

func TestOffsetTableCount(t *testing.T) {
	// A container with a 16-byte payload region (header included), 4-byte
	// aligned already, followed by a 3-entry offset table.
	compressedBytes := uint32(16)
	totalLen := int(compressedBytes) + 3*4

	require.Equal(t, 3, OffsetTableCount(totalLen, compressedBytes))
	require.Equal(t, 0, OffsetTableCount(int(compressedBytes), compressedBytes))
}

func TestChunkByteRange(t *testing.T) {
	offsets := []uint32{HeaderSize + 10, HeaderSize + 25, HeaderSize + 40}

	start, end, err := ChunkByteRange(offsets, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(HeaderSize), start)
	require.Equal(t, uint32(HeaderSize+10), end)

	start, end, err = ChunkByteRange(offsets, 1)
	require.NoError(t, err)
	require.Equal(t, uint32(HeaderSize+10), start)
	require.Equal(t, uint32(HeaderSize+25), end)

	_, _, err = ChunkByteRange(offsets, 3)
	require.Error(t, err)

	_, _, err = ChunkByteRange(offsets, -1)
	require.Error(t, err)
}
