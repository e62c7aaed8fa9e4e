package bench

import (
	"math"
	"sort"
)

// Summary holds the aggregated latency statistics for one variant over
// one run. All latencies are in milliseconds.
type Summary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min_ms"`
	Max    float64 `json:"max_ms"`
	Mean   float64 `json:"mean_ms"`
	StdDev float64 `json:"std_ms"`
	P95    float64 `json:"p95_ms"`
	P99    float64 `json:"p99_ms"`
	FPS    float64 `json:"fps"`
}

// Summarize computes the summary for a latency sample sequence. The
// standard deviation is the population standard deviation. Percentiles
// use the sorted element at floor(0.95n) / floor(0.99n), clamped to n-1.
// An empty sequence is a precondition violation, never defaulted.
func Summarize(samples []float64) (Summary, error) {
	n := len(samples)
	if n == 0 {
		return Summary{}, ErrNoSamples
	}

	sorted := make([]float64, n)
	copy(sorted, samples)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(n)

	var sqDiff float64
	for _, v := range sorted {
		d := v - mean
		sqDiff += d * d
	}
	stddev := math.Sqrt(sqDiff / float64(n))

	s := Summary{
		Count:  n,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Mean:   mean,
		StdDev: stddev,
		P95:    sorted[percentileIndex(0.95, n)],
		P99:    sorted[percentileIndex(0.99, n)],
	}
	if mean > 0 {
		s.FPS = 1000.0 / mean
	}
	return s, nil
}

// percentileIndex returns floor(p*n) clamped to n-1.
func percentileIndex(p float64, n int) int {
	idx := int(math.Floor(p * float64(n)))
	if idx > n-1 {
		return n - 1
	}
	return idx
}
