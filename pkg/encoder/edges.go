package encoder

import (
	"math"

	"github.com/emergingrobotics/go-fractal/pkg/frame"
	"github.com/emergingrobotics/go-fractal/pkg/qstate"
)

// baseThreshold is the gradient magnitude above which a pixel counts as
// an edge. Quantum mode raises it by the low byte of state word 0.
const baseThreshold = 30

// EdgeMap is a binary per-pixel edge mask derived from one frame. It is
// transient: it lives only for the duration of one encode call.
type EdgeMap struct {
	width  int
	height int
	edges  []uint8
}

// Width returns the map width in pixels.
func (m *EdgeMap) Width() int { return m.width }

// Height returns the map height in pixels.
func (m *EdgeMap) Height() int { return m.height }

// At reports whether the pixel at column x, row y is an edge.
func (m *EdgeMap) At(x, y int) bool {
	return m.edges[y*m.width+x] != 0
}

// set marks the pixel at column x, row y as an edge.
func (m *EdgeMap) set(x, y int) {
	m.edges[y*m.width+x] = 1
}

// DetectEdges computes the edge map for a frame. Gradient components are
// differences of diagonally opposite neighbor intensities; a pixel is an
// edge when the Euclidean norm of the two components exceeds the
// threshold. The 1-pixel border is never marked. In quantum mode each
// gradient component is XORed with the low byte of state word 1 (gx) and
// word 2 (gy), and the threshold grows by the low byte of word 0.
//
// The output is deterministic given the frame, the state snapshot, and
// the mode flag.
func DetectEdges(f *frame.Frame, st *qstate.State) *EdgeMap {
	m := &EdgeMap{
		width:  f.Width(),
		height: f.Height(),
		edges:  make([]uint8, f.Width()*f.Height()),
	}
	if f.Width() < 3 || f.Height() < 3 {
		return m
	}

	threshold := float64(baseThreshold)
	var gxBias, gyBias int
	if st.Enabled() {
		threshold += float64(st.Byte(0))
		gxBias = int(st.Byte(1))
		gyBias = int(st.Byte(2))
	}

	// Interior rows are independent of each other, so the pass is
	// structured per row and could be sharded without synchronization.
	for y := 1; y < f.Height()-1; y++ {
		detectRow(f, m, y, threshold, gxBias, gyBias)
	}
	return m
}

// detectRow marks edge pixels for one interior row.
func detectRow(f *frame.Frame, m *EdgeMap, y int, threshold float64, gxBias, gyBias int) {
	for x := 1; x < f.Width()-1; x++ {
		gx := int(f.At(x+1, y+1)) - int(f.At(x-1, y-1))
		gy := int(f.At(x-1, y+1)) - int(f.At(x+1, y-1))
		gx ^= gxBias
		gy ^= gyBias

		if math.Hypot(float64(gx), float64(gy)) > threshold {
			m.set(x, y)
		}
	}
}
