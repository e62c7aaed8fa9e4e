// encode is a one-shot debug tool: it generates a single synthetic frame
// at the requested tier and prints the coefficient vector and latency.
package main

import (
	"fmt"
	"os"

	"github.com/emergingrobotics/go-fractal/pkg/encoder"
	"github.com/emergingrobotics/go-fractal/pkg/frame"
)

func main() {
	tierName := "1080p"
	quantum := false
	for _, arg := range os.Args[1:] {
		switch arg {
		case "-q", "--quantum":
			quantum = true
		case "-h", "--help":
			fmt.Println("Usage: encode [tier] [--quantum]")
			return
		default:
			tierName = arg
		}
	}

	tier, err := frame.ParseTier(tierName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	width, height := tier.Dimensions()
	enc, err := encoder.New(width, height, quantum)
	if err != nil {
		fmt.Printf("Error creating encoder: %v\n", err)
		os.Exit(1)
	}
	defer enc.Close()

	f := frame.NewSource(width, height).Next()
	coeffs, latency, err := enc.Encode(f)
	if err != nil {
		fmt.Printf("Encode failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Tier: %s (%dx%d)\n", tier, width, height)
	fmt.Printf("Quantum mode: %v\n", quantum)
	fmt.Printf("Latency: %.3fms\n", latency)
	fmt.Println("Coefficients:")
	for i, c := range coeffs {
		fmt.Printf("  [%d] %f\n", i, c)
	}
}
