package encoder

// encoderError is a simple error type for the encoder package
type encoderError string

func (e encoderError) Error() string { return string(e) }

// Errors for encode operations
const (
	ErrEncoderClosed = encoderError("encoder is closed")
	ErrFrameSize     = encoderError("frame dimensions do not match encoder")
)
