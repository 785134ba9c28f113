package chunked

// Status is the result of a single CompressMore call.
type Status uint8

const (
	// StatusContinue means the caller should call CompressMore again; no
	// output-buffer growth is needed.
	StatusContinue Status = iota
	// StatusMoreOutput means the installed output window is exhausted;
	// the caller must SetOutput a fresh window, positioned after the bytes
	// already written, before calling CompressMore again.
	StatusMoreOutput
	// StatusDone means compression is complete; Finish may now be called.
	StatusDone
	// StatusOOM means the codec reported a stream error or an internal
	// allocation failed. The container format gives callers no way to
	// distinguish the two, so both collapse to this single status; see
	// the errs package for the internally distinguishable causes. It is
	// also returned, together with errs.ErrNotReady or errs.ErrNoOutput,
	// when CompressMore is called before Init or before SetOutput.
	StatusOOM
)

// String returns a human-readable name for s.
func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "Continue"
	case StatusMoreOutput:
		return "MoreOutput"
	case StatusDone:
		return "Done"
	case StatusOOM:
		return "OOM"
	default:
		return "Unknown"
	}
}
