package encoder

import "github.com/emergingrobotics/go-fractal/pkg/qstate"

// MaxCoords bounds the coordinate list handed to the fractal transform.
const MaxCoords = 64

// Coord is an (x, y) pixel position.
type Coord struct {
	X int
	Y int
}

// ExtractCoords selects edge pixel coordinates in raster-scan order,
// truncated to the first MaxCoords entries. In quantum mode a pixel is
// kept only when x XOR y equals the low byte of state word 3. The filter
// is deliberately sparse: it may select zero coordinates on some frames,
// and that empty result is valid.
func ExtractCoords(m *EdgeMap, st *qstate.State) []Coord {
	coords := make([]Coord, 0, MaxCoords)
	filtered := st.Enabled()
	var want int
	if filtered {
		want = int(st.Byte(3))
	}

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if !m.At(x, y) {
				continue
			}
			if filtered && x^y != want {
				continue
			}
			coords = append(coords, Coord{X: x, Y: y})
			if len(coords) == MaxCoords {
				return coords
			}
		}
	}
	return coords
}
