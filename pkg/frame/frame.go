package frame

import (
	"fmt"
	"math/rand"
	"time"
)

// Frame is a single-channel 8-bit test frame in row-major order.
// Frames are immutable once generated.
type Frame struct {
	width  int
	height int
	pix    []uint8
}

// New creates a zero-filled frame.
func New(width, height int) *Frame {
	return &Frame{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}
}

// FromPix wraps existing row-major pixel data in a Frame. The slice
// length must be width*height; ownership passes to the Frame.
func FromPix(width, height int, pix []uint8) (*Frame, error) {
	if len(pix) != width*height {
		return nil, fmt.Errorf("pixel data is %d bytes, expected %d", len(pix), width*height)
	}
	return &Frame{width: width, height: height, pix: pix}, nil
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int { return f.width }

// Height returns the frame height in pixels.
func (f *Frame) Height() int { return f.height }

// At returns the intensity at column x, row y.
func (f *Frame) At(x, y int) uint8 {
	return f.pix[y*f.width+x]
}

// Pix returns the raw pixel data. Callers must not modify it.
func (f *Frame) Pix() []uint8 { return f.pix }

// Size returns the frame size in bytes.
func (f *Frame) Size() int { return len(f.pix) }

// Source generates synthetic test frames with pseudo-random intensities.
// A Source is not safe for concurrent use.
type Source struct {
	width  int
	height int
	rng    *rand.Rand
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithSeed makes frame generation reproducible.
func WithSeed(seed int64) SourceOption {
	return func(s *Source) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// NewSource creates a frame generator for the given dimensions.
func NewSource(width, height int, opts ...SourceOption) *Source {
	s := &Source{
		width:  width,
		height: height,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Next generates a fresh frame with every pixel drawn from the source RNG.
func (s *Source) Next() *Frame {
	f := New(s.width, s.height)
	for i := range f.pix {
		f.pix[i] = uint8(s.rng.Intn(256))
	}
	return f
}
