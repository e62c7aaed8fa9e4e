package encoder

import "github.com/emergingrobotics/go-fractal/pkg/qstate"

// CoeffLen is the fixed length of the coefficient vector.
const CoeffLen = 8

// Coefficients is the encode output. Slots that no coordinate produced
// stay zero.
type Coefficients [CoeffLen]float32

// Affine map parameters for the fractal transform.
const (
	affineA = 0.85
	affineB = 0.04
	affineC = -0.04
	affineD = 0.85
	affineE = 0.0
	affineF = 1.6
)

// transformCoords is how many leading coordinates feed the transform.
// Each consumed coordinate yields two coefficients.
const transformCoords = CoeffLen / 2

// FractalTransform applies the fixed affine map to at most the first
// four coordinates, producing x' = a*x + b*y + e and y' = c*x + d*y + f
// at positions 2i and 2i+1. In quantum mode each output is perturbed via
// perturbCoeff with state word 4 (x') and word 5 (y').
func FractalTransform(coords []Coord, st *qstate.State) Coefficients {
	var result Coefficients

	n := len(coords)
	if n > transformCoords {
		n = transformCoords
	}

	for i := 0; i < n; i++ {
		x := float64(coords[i].X)
		y := float64(coords[i].Y)
		cx := affineA*x + affineB*y + affineE
		cy := affineC*x + affineD*y + affineF

		if st.Enabled() {
			result[i*2] = perturbCoeff(cx, st.Byte(4))
			result[i*2+1] = perturbCoeff(cy, st.Byte(5))
		} else {
			result[i*2] = float32(cx)
			result[i*2+1] = float32(cy)
		}
	}
	return result
}

// perturbCoeff combines a continuous affine output with a state byte.
// The value is quantized to an integer by truncation toward zero, the
// state byte is XORed into the integer representation, and the result is
// stored as the coefficient. Quantize-then-XOR is the one interpretation
// applied everywhere a bitwise bias meets a floating-point value.
func perturbCoeff(v float64, bias uint8) float32 {
	return float32(int64(v) ^ int64(bias))
}
