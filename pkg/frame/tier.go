package frame

import "fmt"

// Tier is a named resolution preset.
type Tier string

// Supported resolution tiers.
const (
	Tier720p  Tier = "720p"
	Tier1080p Tier = "1080p"
	Tier4K    Tier = "4k"
	Tier8K    Tier = "8k"
)

var tierDims = map[Tier][2]int{
	Tier720p:  {1280, 720},
	Tier1080p: {1920, 1080},
	Tier4K:    {3840, 2160},
	Tier8K:    {7680, 4320},
}

// Tiers lists all supported tiers from smallest to largest.
func Tiers() []Tier {
	return []Tier{Tier720p, Tier1080p, Tier4K, Tier8K}
}

// Dimensions returns the width and height for the tier.
func (t Tier) Dimensions() (width, height int) {
	d, ok := tierDims[t]
	if !ok {
		return 0, 0
	}
	return d[0], d[1]
}

// Valid reports whether the tier is a known preset.
func (t Tier) Valid() bool {
	_, ok := tierDims[t]
	return ok
}

// ParseTier converts a tier name to a Tier. An unrecognized name is a
// configuration error.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown resolution tier %q (supported: 720p, 1080p, 4k, 8k)", s)
	}
	return t, nil
}

// TierFor maps explicit dimensions to the smallest tier that covers the
// pixel count, clamped to 8k. Used to key latency tables for resolutions
// that do not match a preset exactly.
func TierFor(width, height int) Tier {
	pixels := width * height
	for _, t := range Tiers() {
		w, h := t.Dimensions()
		if pixels <= w*h {
			return t
		}
	}
	return Tier8K
}
