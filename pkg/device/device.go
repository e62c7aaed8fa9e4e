// Package device abstracts the accelerator backend the encoder runs
// against. The interface is the minimal capability surface a synchronous
// encode needs; backends are selected by configuration, never by
// conditional branching inside the pipeline.
package device

import "fmt"

// Buffer is a device-resident allocation with a host-visible view.
type Buffer interface {
	// Size returns the usable buffer size in bytes.
	Size() int
	// Bytes returns the host-visible view of the buffer contents.
	Bytes() []byte
	// Release frees the allocation. Release is idempotent.
	Release() error
}

// Device is the capability surface for an encode backend.
type Device interface {
	// Allocate reserves a buffer of the given size.
	Allocate(size int) (Buffer, error)
	// CopyIn transfers host data into a device buffer.
	CopyIn(dst Buffer, src []byte) error
	// Execute dispatches a named kernel. Execution is synchronous on
	// current backends; completion is observed via Synchronize.
	Execute(kernel string) error
	// CopyOut transfers a device buffer back to host memory.
	CopyOut(dst []byte, src Buffer) error
	// Synchronize blocks until all dispatched work has completed.
	Synchronize() error
	// Close releases the device and all outstanding resources.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendSim  = "sim"
	BackendHost = "host"
)

// Open creates a device backend by name.
func Open(backend string) (Device, error) {
	switch backend {
	case BackendSim:
		return NewSim(), nil
	case BackendHost:
		return NewHost(), nil
	default:
		return nil, fmt.Errorf("unknown device backend %q: %w", backend, ErrUnknownBackend)
	}
}
