package container

import (
	"encoding/binary"

	"github.com/rowanhart/strchunk/errs"
)

// HeaderSize is the fixed, wire-exact size of Header: 4 (compressedBytes)
// + 1 (algorithm) + 1 (level) + 2 (reserved) = 8 bytes.
const HeaderSize = 8

// Header is the fixed-size prefix written at offset 0 of every container.
// Its layout is bit-exact and little-endian; see spec.md §6. The reserved
// field must always be zero on the wire — the enclosing cache hashes the
// header bytes along with the offset table padding.
type Header struct {
	// CompressedBytes is the total size of the codec payload region,
	// header included, excluding alignment padding and the offset table.
	// It is therefore always >= HeaderSize.
	CompressedBytes uint32
	// Algorithm identifies the codec that produced the payload.
	Algorithm Algorithm
	// Level is the compression level actually requested; 0 means "default".
	Level uint8
}

// Bytes serializes h into a new HeaderSize-byte little-endian slice.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(b[0:4], h.CompressedBytes)
	b[4] = byte(h.Algorithm)
	b[5] = h.Level
	// b[6:8] (reserved) left zero.
	return b
}

// ParseHeader parses a Header from the first HeaderSize bytes of data.
//
// It rejects buffers shorter than HeaderSize, a CompressedBytes value
// smaller than HeaderSize (the payload region always includes the header
// itself), algorithm tags outside the closed {Zlib, Zstd} set, and a
// nonzero reserved field — the latter two catch a tampered or foreign
// header without reading past it.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrCorruptHeader
	}

	h := Header{
		CompressedBytes: binary.LittleEndian.Uint32(data[0:4]),
		Algorithm:       Algorithm(data[4]),
		Level:           data[5],
	}

	if h.CompressedBytes < HeaderSize {
		return Header{}, errs.ErrInvalidHeader
	}
	if !h.Algorithm.Valid() {
		return Header{}, errs.ErrInvalidHeader
	}
	if data[6] != 0 || data[7] != 0 {
		return Header{}, errs.ErrInvalidHeader
	}

	return h, nil
}
