package device

import "sync"

// Sim is a no-op simulated backend. Buffers live on the heap, kernels do
// nothing, and Synchronize returns immediately. It backs the reference
// encoder comparisons and tests, and tracks operation counts so callers
// can assert on the capability calls they made.
type Sim struct {
	mu       sync.Mutex
	closed   bool
	allocs   int
	copyIns  int
	executes int
	copyOuts int
	syncs    int
}

// NewSim creates a simulated device.
func NewSim() *Sim {
	return &Sim{}
}

type simBuffer struct {
	data     []byte
	released bool
}

func (b *simBuffer) Size() int { return len(b.data) }

func (b *simBuffer) Bytes() []byte { return b.data }

func (b *simBuffer) Release() error {
	b.released = true
	b.data = nil
	return nil
}

// Allocate reserves a heap-backed buffer.
func (d *Sim) Allocate(size int) (Buffer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, ErrClosed
	}
	if size == 0 {
		return nil, ErrZeroSize
	}

	d.allocs++
	return &simBuffer{data: make([]byte, size)}, nil
}

// CopyIn copies host data into the buffer.
func (d *Sim) CopyIn(dst Buffer, src []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}
	b, ok := dst.(*simBuffer)
	if !ok || b.released {
		return ErrReleased
	}
	if len(src) != b.Size() {
		return ErrSizeMismatch
	}

	copy(b.data, src)
	d.copyIns++
	return nil
}

// Execute is a no-op kernel dispatch.
func (d *Sim) Execute(kernel string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}
	d.executes++
	return nil
}

// CopyOut copies the buffer back to host memory.
func (d *Sim) CopyOut(dst []byte, src Buffer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}
	b, ok := src.(*simBuffer)
	if !ok || b.released {
		return ErrReleased
	}
	if len(dst) != b.Size() {
		return ErrSizeMismatch
	}

	copy(dst, b.data)
	d.copyOuts++
	return nil
}

// Synchronize returns immediately; simulated work is always complete.
func (d *Sim) Synchronize() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}
	d.syncs++
	return nil
}

// Close shuts the device down.
func (d *Sim) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	return nil
}

// Counts returns the number of Allocate, CopyIn, Execute, CopyOut, and
// Synchronize calls made so far.
func (d *Sim) Counts() (allocs, copyIns, executes, copyOuts, syncs int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.allocs, d.copyIns, d.executes, d.copyOuts, d.syncs
}
