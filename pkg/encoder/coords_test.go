//go:build unit

package encoder

import (
	"testing"

	"github.com/emergingrobotics/go-fractal/pkg/qstate"
)

// fullEdgeMap marks every pixel as an edge.
func fullEdgeMap(width, height int) *EdgeMap {
	m := &EdgeMap{width: width, height: height, edges: make([]uint8, width*height)}
	for i := range m.edges {
		m.edges[i] = 1
	}
	return m
}

func TestExtractCoordsCapped(t *testing.T) {
	m := fullEdgeMap(32, 32) // 1024 edge pixels
	coords := ExtractCoords(m, qstate.New(false))

	if len(coords) != MaxCoords {
		t.Errorf("got %d coordinates, expected cap of %d", len(coords), MaxCoords)
	}
}

func TestExtractCoordsRasterOrder(t *testing.T) {
	m := fullEdgeMap(16, 16)
	coords := ExtractCoords(m, qstate.New(false))

	prev := -1
	for _, c := range coords {
		idx := c.Y*16 + c.X
		if idx <= prev {
			t.Fatalf("coordinate (%d,%d) out of raster order", c.X, c.Y)
		}
		prev = idx
	}
}

func TestExtractCoordsEmptyMap(t *testing.T) {
	m := &EdgeMap{width: 8, height: 8, edges: make([]uint8, 64)}
	coords := ExtractCoords(m, qstate.New(false))

	if len(coords) != 0 {
		t.Errorf("got %d coordinates from empty map, expected 0", len(coords))
	}
}

func TestExtractCoordsQuantumFilter(t *testing.T) {
	m := fullEdgeMap(64, 64)
	st := qstate.New(true, qstate.WithSeed(3))
	want := int(st.Byte(3))

	coords := ExtractCoords(m, st)

	for _, c := range coords {
		if c.X^c.Y != want {
			t.Errorf("coordinate (%d,%d): x^y = %d, filter wants %d", c.X, c.Y, c.X^c.Y, want)
		}
	}
	if len(coords) > MaxCoords {
		t.Errorf("got %d coordinates, cap is %d", len(coords), MaxCoords)
	}
}

func TestExtractCoordsQuantumFilterCanStarve(t *testing.T) {
	// The sparse filter may legitimately select nothing. With a map
	// small enough that no (x, y) pair can satisfy a large filter byte,
	// the result must be empty rather than an error.
	m := fullEdgeMap(4, 4) // x^y ranges over 0..7 only

	for seed := int64(0); seed < 64; seed++ {
		st := qstate.New(true, qstate.WithSeed(seed))
		if st.Byte(3) < 8 {
			continue
		}
		coords := ExtractCoords(m, st)
		if len(coords) != 0 {
			t.Fatalf("seed %d: filter byte %d cannot match on a 4x4 map, got %d coords",
				seed, st.Byte(3), len(coords))
		}
		return
	}
	t.Skip("no seed in range produced a filter byte >= 8")
}
