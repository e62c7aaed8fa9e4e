// Package encoder implements the fractal frame encoder: edge detection,
// coordinate extraction, and the affine coefficient transform, with an
// optional deterministic perturbation ("quantum") mode driven by a
// rotating state vector.
package encoder

import (
	"fmt"
	"time"

	"github.com/emergingrobotics/go-fractal/pkg/device"
	"github.com/emergingrobotics/go-fractal/pkg/frame"
	"github.com/emergingrobotics/go-fractal/pkg/qstate"
)

// kernelPipeline is the kernel name dispatched for one encode pass.
const kernelPipeline = "fractal_encode"

// Encoder encodes frames and measures per-frame latency. Each Encoder
// owns its perturbation state exclusively; an Encoder is not safe for
// concurrent use.
type Encoder struct {
	width    int
	height   int
	state    *qstate.State
	dev      device.Device
	ownedDev bool
	frameBuf device.Buffer
	closed   bool
}

// Option configures an Encoder.
type Option func(*options)

type options struct {
	dev   device.Device
	qopts []qstate.Option
}

// WithDevice runs the encoder against the given backend instead of the
// default simulated one. The caller retains ownership of the device.
func WithDevice(dev device.Device) Option {
	return func(o *options) {
		o.dev = dev
	}
}

// WithSeed fixes the perturbation state seed, making quantum-mode output
// reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.qopts = append(o.qopts, qstate.WithSeed(seed))
	}
}

// New creates an encoder for the given frame dimensions. When quantum is
// false the perturbation state is all-zero and every stage is fully
// deterministic.
func New(width, height int, quantum bool, opts ...Option) (*Encoder, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	e := &Encoder{
		width:  width,
		height: height,
		state:  qstate.New(quantum, o.qopts...),
		dev:    o.dev,
	}
	if e.dev == nil {
		e.dev = device.NewSim()
		e.ownedDev = true
	}

	buf, err := e.dev.Allocate(width * height)
	if err != nil {
		if e.ownedDev {
			e.dev.Close()
		}
		return nil, fmt.Errorf("frame buffer allocation: %w", err)
	}
	e.frameBuf = buf

	return e, nil
}

// State exposes the encoder's perturbation state for inspection.
func (e *Encoder) State() *qstate.State { return e.state }

// Encode runs the full pipeline on one frame and returns the coefficient
// vector with the elapsed wall time in milliseconds. The timed region
// covers exactly: frame upload, edge detection, coordinate extraction,
// the fractal transform, the state rotation, and device synchronization.
// Frame generation happens outside. A failure is fatal for the call; no
// retry is attempted.
func (e *Encoder) Encode(f *frame.Frame) (Coefficients, float64, error) {
	if e.closed {
		return Coefficients{}, 0, ErrEncoderClosed
	}
	if f.Width() != e.width || f.Height() != e.height {
		return Coefficients{}, 0, fmt.Errorf("frame is %dx%d, encoder expects %dx%d: %w",
			f.Width(), f.Height(), e.width, e.height, ErrFrameSize)
	}

	start := time.Now()

	if err := e.dev.CopyIn(e.frameBuf, f.Pix()); err != nil {
		return Coefficients{}, 0, fmt.Errorf("frame upload: %w", err)
	}
	if err := e.dev.Execute(kernelPipeline); err != nil {
		return Coefficients{}, 0, fmt.Errorf("kernel dispatch: %w", err)
	}

	edges := DetectEdges(f, e.state)
	coords := ExtractCoords(edges, e.state)
	coeffs := FractalTransform(coords, e.state)

	// Rotation happens after the transform, exactly once per encode.
	e.state.Rotate()

	if err := e.dev.Synchronize(); err != nil {
		return Coefficients{}, 0, fmt.Errorf("device sync: %w", err)
	}

	latencyMs := float64(time.Since(start)) / float64(time.Millisecond)
	return coeffs, latencyMs, nil
}

// Close releases the frame buffer and, if the encoder created its own
// device, the device as well.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	if err := e.frameBuf.Release(); err != nil {
		return err
	}
	if e.ownedDev {
		return e.dev.Close()
	}
	return nil
}
