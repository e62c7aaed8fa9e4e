package bench

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/emergingrobotics/go-fractal/pkg/encoder"
	"github.com/emergingrobotics/go-fractal/pkg/frame"
)

// Variant names in reports and config.
const (
	VariantCore = "fractal"
	VariantFPGA = "fpga"
	VariantH266 = "h266"
)

// Variant is one encoder implementation under comparison. Every variant
// conforms to the same contract: encode one frame, return an opaque
// payload and the latency in milliseconds. Variants do not share mutable
// state, so invocation order within a trial does not affect correctness.
type Variant interface {
	Name() string
	Encode(f *frame.Frame) ([]byte, float64, error)
}

// coreVariant adapts the fractal encoder to the variant contract.
type coreVariant struct {
	enc *encoder.Encoder
}

func (v *coreVariant) Name() string { return VariantCore }

func (v *coreVariant) Encode(f *frame.Frame) ([]byte, float64, error) {
	coeffs, latency, err := v.enc.Encode(f)
	if err != nil {
		return nil, 0, err
	}

	payload := make([]byte, encoder.CoeffLen*4)
	for i, c := range coeffs {
		binary.LittleEndian.PutUint32(payload[i*4:], math.Float32bits(c))
	}
	return payload, latency, nil
}

// fpgaLatencyMs is the per-tier latency baseline for the FPGA reference
// model. Samples are drawn from the table with light jitter; the model
// does not sleep.
var fpgaLatencyMs = map[frame.Tier]float64{
	frame.Tier720p:  0.6,
	frame.Tier1080p: 1.0,
	frame.Tier4K:    3.8,
	frame.Tier8K:    14.2,
}

// h266LatencyMs is the per-tier overhead for the H.266 reference model,
// added on top of its fixed baseline sleep.
var h266LatencyMs = map[frame.Tier]float64{
	frame.Tier720p:  0.4,
	frame.Tier1080p: 0.9,
	frame.Tier4K:    3.6,
	frame.Tier8K:    13.8,
}

// h266BaselineSleep is the fixed processing delay the H.266 model
// actually waits out per frame.
const h266BaselineSleep = 5 * time.Millisecond

// jitterFraction bounds the multiplicative noise on table latencies.
const jitterFraction = 0.05

// fpgaVariant models an FPGA encoder via a per-tier latency table.
type fpgaVariant struct {
	tier frame.Tier
	rng  *rand.Rand
}

// NewFPGAVariant creates the FPGA reference model for a tier.
func NewFPGAVariant(tier frame.Tier, seed int64) Variant {
	return &fpgaVariant{tier: tier, rng: rand.New(rand.NewSource(seed))}
}

func (v *fpgaVariant) Name() string { return VariantFPGA }

func (v *fpgaVariant) Encode(f *frame.Frame) ([]byte, float64, error) {
	latency := jitter(fpgaLatencyMs[v.tier], v.rng)
	return dummyCoefficients(v.rng), latency, nil
}

// h266Variant models an H.266 software encoder: a fixed baseline sleep
// plus per-tier overhead from its latency table.
type h266Variant struct {
	tier frame.Tier
	rng  *rand.Rand
}

// NewH266Variant creates the H.266 reference model for a tier.
func NewH266Variant(tier frame.Tier, seed int64) Variant {
	return &h266Variant{tier: tier, rng: rand.New(rand.NewSource(seed))}
}

func (v *h266Variant) Name() string { return VariantH266 }

func (v *h266Variant) Encode(f *frame.Frame) ([]byte, float64, error) {
	start := time.Now()
	time.Sleep(h266BaselineSleep)
	elapsed := float64(time.Since(start)) / float64(time.Millisecond)

	latency := elapsed + jitter(h266LatencyMs[v.tier], v.rng)
	return dummyCoefficients(v.rng), latency, nil
}

// newReferenceVariant builds a reference model by config name.
func newReferenceVariant(name string, tier frame.Tier, seed int64) (Variant, error) {
	switch name {
	case VariantFPGA:
		return NewFPGAVariant(tier, seed), nil
	case VariantH266:
		return NewH266Variant(tier, seed), nil
	default:
		return nil, ErrUnknownVariant
	}
}

// jitter applies bounded multiplicative noise to a baseline latency.
func jitter(baseMs float64, rng *rand.Rand) float64 {
	scale := 1 + jitterFraction*(2*rng.Float64()-1)
	return baseMs * scale
}

// dummyCoefficients fills a payload of the core encoder's output size
// with random values. Reference models only honor the latency contract.
func dummyCoefficients(rng *rand.Rand) []byte {
	payload := make([]byte, encoder.CoeffLen*4)
	for i := 0; i < encoder.CoeffLen; i++ {
		binary.LittleEndian.PutUint32(payload[i*4:], math.Float32bits(rng.Float32()))
	}
	return payload
}
