package container

// Algorithm identifies the codec used to produce a container's payload.
//
// The set is closed by the wire format: the header stores it as a single
// byte (offset 4), so exactly two values are valid. There is deliberately
// no extension point here — adding a third algorithm would require a
// format version bump, which spec.md's Non-goals rule out.
type Algorithm uint8

const (
	// Zlib identifies a raw-DEFLATE payload (no zlib/gzip framing).
	Zlib Algorithm = 0
	// Zstd identifies a Zstandard payload.
	Zstd Algorithm = 1
)

// Valid reports whether a is one of the closed set of supported algorithms.
func (a Algorithm) Valid() bool {
	return a == Zlib || a == Zstd
}

// String returns a human-readable name for a, or "Unknown" for values
// outside the closed set (e.g. a tampered header).
func (a Algorithm) String() string {
	switch a {
	case Zlib:
		return "Zlib"
	case Zstd:
		return "Zstd"
	default:
		return "Unknown"
	}
}
