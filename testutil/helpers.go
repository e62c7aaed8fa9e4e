package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/emergingrobotics/go-fractal/pkg/frame"
)

// MakeGradientFrame creates a frame with a smooth horizontal intensity
// ramp. Its diagonal gradients stay below the edge threshold, so it
// exercises the full pipeline without producing coordinates.
func MakeGradientFrame(t *testing.T, width, height int) *frame.Frame {
	t.Helper()

	pix := make([]uint8, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pix[y*width+x] = uint8((x * 255) / width)
		}
	}
	f, err := frame.FromPix(width, height, pix)
	if err != nil {
		t.Fatalf("failed to build gradient frame: %v", err)
	}
	return f
}

// TempFile creates a temporary file with given content
func TempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, content, 0644)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	return path
}
