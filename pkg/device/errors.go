package device

// deviceError is a simple error type for the device package
type deviceError string

func (e deviceError) Error() string { return string(e) }

// Errors for device operations
const (
	ErrClosed         = deviceError("device is closed")
	ErrZeroSize       = deviceError("buffer size cannot be zero")
	ErrReleased       = deviceError("buffer has been released")
	ErrSizeMismatch   = deviceError("buffer size mismatch")
	ErrUnknownBackend = deviceError("unknown backend")
)
