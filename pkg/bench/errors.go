package bench

// benchError is a simple error type for the bench package
type benchError string

func (e benchError) Error() string { return string(e) }

// Errors for benchmark operations
const (
	ErrNoSamples      = benchError("no latency samples to summarize")
	ErrUnknownVariant = benchError("unknown reference encoder")
)
