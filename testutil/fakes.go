package testutil

import (
	"errors"
	"sync"

	"github.com/emergingrobotics/go-fractal/pkg/device"
)

// FakeDevice implements device.Device for testing error paths. Every
// capability call can be made to fail via the SetFailOn* switches.
type FakeDevice struct {
	mu         sync.Mutex
	closed     bool
	allocs     int
	encodes    int
	failAlloc  bool
	failCopyIn bool
	failExec   bool
	failSync   bool
}

// NewFakeDevice creates a fake device.
func NewFakeDevice() *FakeDevice {
	return &FakeDevice{}
}

type fakeBuffer struct {
	data []byte
}

func (b *fakeBuffer) Size() int      { return len(b.data) }
func (b *fakeBuffer) Bytes() []byte  { return b.data }
func (b *fakeBuffer) Release() error { return nil }

// Allocate returns a heap buffer, or fails when SetFailOnAllocate is set.
func (d *FakeDevice) Allocate(size int) (device.Buffer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.failAlloc {
		return nil, errors.New("fake allocate error")
	}
	d.allocs++
	return &fakeBuffer{data: make([]byte, size)}, nil
}

// CopyIn copies data in, or fails when SetFailOnCopyIn is set.
func (d *FakeDevice) CopyIn(dst device.Buffer, src []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.failCopyIn {
		return errors.New("fake copy-in error")
	}
	copy(dst.Bytes(), src)
	return nil
}

// Execute counts kernel dispatches, or fails when SetFailOnExecute is set.
func (d *FakeDevice) Execute(kernel string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.failExec {
		return errors.New("fake execute error")
	}
	d.encodes++
	return nil
}

// CopyOut copies data out.
func (d *FakeDevice) CopyOut(dst []byte, src device.Buffer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	copy(dst, src.Bytes())
	return nil
}

// Synchronize completes immediately, or fails when SetFailOnSync is set.
func (d *FakeDevice) Synchronize() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.failSync {
		return errors.New("fake sync error")
	}
	return nil
}

// Close marks the device closed.
func (d *FakeDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	return nil
}

// ExecuteCount returns the number of kernel dispatches.
func (d *FakeDevice) ExecuteCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.encodes
}

// SetFailOnAllocate makes Allocate fail.
func (d *FakeDevice) SetFailOnAllocate(fail bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.failAlloc = fail
}

// SetFailOnCopyIn makes CopyIn fail.
func (d *FakeDevice) SetFailOnCopyIn(fail bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.failCopyIn = fail
}

// SetFailOnExecute makes Execute fail.
func (d *FakeDevice) SetFailOnExecute(fail bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.failExec = fail
}

// SetFailOnSync makes Synchronize fail.
func (d *FakeDevice) SetFailOnSync(fail bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.failSync = fail
}
