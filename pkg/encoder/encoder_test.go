//go:build unit

package encoder

import (
	"errors"
	"testing"

	"github.com/emergingrobotics/go-fractal/pkg/device"
	"github.com/emergingrobotics/go-fractal/pkg/frame"
	"github.com/emergingrobotics/go-fractal/testutil"
)

func TestEncodeZeroFrameClassical(t *testing.T) {
	// All-zero 4x4 frame, perturbation disabled: no gradient exceeds the
	// threshold, the coordinate list is empty, and the coefficient
	// vector is all zeros.
	enc, err := New(4, 4, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer enc.Close()

	coeffs, latency, err := enc.Encode(frame.New(4, 4))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if coeffs != (Coefficients{}) {
		t.Errorf("coefficients = %v, expected all zeros", coeffs)
	}
	if latency < 0 {
		t.Errorf("latency = %f, expected >= 0", latency)
	}
}

func TestEncodeClassicalBitIdentical(t *testing.T) {
	f := frame.NewSource(64, 48, frame.WithSeed(9)).Next()

	a, err := New(64, 48, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer a.Close()

	first, _, err := a.Encode(f)
	if err != nil {
		t.Fatalf("first Encode failed: %v", err)
	}
	second, _, err := a.Encode(f)
	if err != nil {
		t.Fatalf("second Encode failed: %v", err)
	}

	if first != second {
		t.Error("classical mode output differs across repeated calls on the same frame")
	}
}

func TestEncodeRotatesStateOncePerCall(t *testing.T) {
	enc, err := New(8, 8, true, WithSeed(21))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer enc.Close()

	initial := enc.State().Snapshot()
	f := frame.New(8, 8)

	if _, _, err := enc.Encode(f); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	after := enc.State().Snapshot()

	for i := 0; i < 7; i++ {
		if after[i] != initial[i+1] {
			t.Fatalf("word %d = %d after encode, expected %d (one left rotation)",
				i, after[i], initial[i+1])
		}
	}
	if after[7] != initial[0] {
		t.Fatalf("word 7 = %d, expected head %d", after[7], initial[0])
	}
}

func TestEncodeFrameSizeMismatch(t *testing.T) {
	enc, err := New(8, 8, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer enc.Close()

	_, _, err = enc.Encode(frame.New(4, 4))
	if !errors.Is(err, ErrFrameSize) {
		t.Errorf("got %v, expected ErrFrameSize", err)
	}
}

func TestEncodeAfterClose(t *testing.T) {
	enc, err := New(8, 8, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	enc.Close()

	_, _, err = enc.Encode(frame.New(8, 8))
	if !errors.Is(err, ErrEncoderClosed) {
		t.Errorf("got %v, expected ErrEncoderClosed", err)
	}
}

func TestEncodeUsesDeviceCapabilities(t *testing.T) {
	dev := device.NewSim()
	defer dev.Close()

	enc, err := New(8, 8, false, WithDevice(dev))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer enc.Close()

	if _, _, err := enc.Encode(frame.New(8, 8)); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	allocs, copyIns, executes, _, syncs := dev.Counts()
	if allocs != 1 {
		t.Errorf("allocs = %d, expected 1", allocs)
	}
	if copyIns != 1 || executes != 1 || syncs != 1 {
		t.Errorf("copyIns/executes/syncs = %d/%d/%d, expected 1 each", copyIns, executes, syncs)
	}
}

func TestEncodeFailureIsFatal(t *testing.T) {
	dev := testutil.NewFakeDevice()
	enc, err := New(8, 8, false, WithDevice(dev))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer enc.Close()

	dev.SetFailOnCopyIn(true)
	if _, _, err := enc.Encode(frame.New(8, 8)); err == nil {
		t.Error("expected error when frame upload fails")
	}

	dev.SetFailOnCopyIn(false)
	dev.SetFailOnSync(true)
	if _, _, err := enc.Encode(frame.New(8, 8)); err == nil {
		t.Error("expected error when device sync fails")
	}
}

func TestEncodeEdgesOnGradient(t *testing.T) {
	f := testutil.MakeGradientFrame(t, 32, 32)
	enc, err := New(32, 32, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer enc.Close()

	coeffs, _, err := enc.Encode(f)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	// A smooth ramp has no diagonal gradient above the threshold, so no
	// coordinates reach the transform stage.
	if coeffs != (Coefficients{}) {
		t.Errorf("coefficients = %v, expected all zeros for a smooth ramp", coeffs)
	}
}

func TestEncodeOnHostBackend(t *testing.T) {
	dev := device.NewHost()
	defer dev.Close()

	enc, err := New(16, 16, false, WithDevice(dev))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer enc.Close()

	f := frame.NewSource(16, 16, frame.WithSeed(4)).Next()
	if _, _, err := enc.Encode(f); err != nil {
		t.Fatalf("Encode on host backend failed: %v", err)
	}
}
