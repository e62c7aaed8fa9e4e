package device

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// PageSize is the allocation granularity for host device buffers.
const PageSize = 4096

// Host is the host-memory backend. Buffers are page-aligned anonymous
// mappings, matching what a DMA-capable accelerator driver would require,
// and kernel execution happens synchronously on the calling goroutine.
type Host struct {
	mu     sync.Mutex
	closed bool
}

// NewHost creates a host-memory device.
func NewHost() *Host {
	return &Host{}
}

type hostBuffer struct {
	mu       sync.Mutex
	raw      []byte // full page-aligned mapping
	size     int    // requested size
	released bool
}

func (b *hostBuffer) Size() int { return b.size }

func (b *hostBuffer) Bytes() []byte {
	if b.released {
		return nil
	}
	return b.raw[:b.size]
}

func (b *hostBuffer) Release() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.released {
		return nil
	}
	b.released = true

	raw := b.raw
	b.raw = nil
	if err := unix.Munmap(raw); err != nil {
		return fmt.Errorf("munmap failed: %w", err)
	}
	return nil
}

// Allocate reserves a page-aligned buffer via mmap.
func (d *Host) Allocate(size int) (Buffer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, ErrClosed
	}
	if size == 0 {
		return nil, ErrZeroSize
	}

	// Round up to page size for alignment
	alignedSize := ((size + PageSize - 1) / PageSize) * PageSize

	raw, err := unix.Mmap(-1, 0, alignedSize,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("mmap failed: %w", err)
	}

	return &hostBuffer{raw: raw, size: size}, nil
}

// CopyIn copies host data into the buffer.
func (d *Host) CopyIn(dst Buffer, src []byte) error {
	if d.isClosed() {
		return ErrClosed
	}
	b, ok := dst.(*hostBuffer)
	if !ok || b.released {
		return ErrReleased
	}
	if len(src) != b.size {
		return ErrSizeMismatch
	}

	copy(b.raw, src)
	return nil
}

// Execute dispatches a kernel. The host backend computes synchronously in
// the pipeline stages themselves, so dispatch is a completion marker.
func (d *Host) Execute(kernel string) error {
	if d.isClosed() {
		return ErrClosed
	}
	return nil
}

// CopyOut copies the buffer back to host memory.
func (d *Host) CopyOut(dst []byte, src Buffer) error {
	if d.isClosed() {
		return ErrClosed
	}
	b, ok := src.(*hostBuffer)
	if !ok || b.released {
		return ErrReleased
	}
	if len(dst) != b.size {
		return ErrSizeMismatch
	}

	copy(dst, b.raw[:b.size])
	return nil
}

// Synchronize blocks until outstanding work completes. Host execution is
// synchronous, so there is never outstanding work.
func (d *Host) Synchronize() error {
	if d.isClosed() {
		return ErrClosed
	}
	return nil
}

// Close shuts the device down.
func (d *Host) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	return nil
}

func (d *Host) isClosed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}
