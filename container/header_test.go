package container

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowanhart/strchunk/errs"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{CompressedBytes: 1234, Algorithm: Zstd, Level: 7}

	got, err := ParseHeader(h.Bytes())
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestParseHeaderTooShort(t *testing.T) {
	_, err := ParseHeader(make([]byte, HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrCorruptHeader)
}

func TestParseHeaderRejectsUnknownAlgorithm(t *testing.T) {
	b := Header{CompressedBytes: HeaderSize, Algorithm: Algorithm(9), Level: 0}.Bytes()

	_, err := ParseHeader(b)
	require.Error(t, err)
}

func TestParseHeaderRejectsNonzeroReserved(t *testing.T) {
	b := Header{CompressedBytes: HeaderSize, Algorithm: Zlib, Level: 0}.Bytes()
	b[6] = 1

	_, err := ParseHeader(b)
	require.Error(t, err)
}

func TestParseHeaderAcceptsCompressedBytesAtHeaderSize(t *testing.T) {
	// A container whose payload region is exactly the header, i.e. a
	// zero-byte compressed payload, is the smallest legal value.
	b := Header{CompressedBytes: HeaderSize, Algorithm: Zlib, Level: 0}.Bytes()

	_, err := ParseHeader(b)
	require.NoError(t, err)
}

func TestParseHeaderRejectsCompressedBytesBelowHeaderSize(t *testing.T) {
	b := Header{CompressedBytes: HeaderSize - 1, Algorithm: Zlib, Level: 0}.Bytes()

	_, err := ParseHeader(b)
	require.Error(t, err)
}
