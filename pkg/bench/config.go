package bench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/emergingrobotics/go-fractal/pkg/device"
	"github.com/emergingrobotics/go-fractal/pkg/frame"
)

// Config describes one benchmark run. It is immutable for the duration
// of the run.
type Config struct {
	// Resolution is a named tier. Ignored when Width and Height are set.
	Resolution string `yaml:"resolution" json:"resolution,omitempty"`
	// Width and Height override the tier with explicit dimensions.
	Width  int `yaml:"width" json:"width,omitempty"`
	Height int `yaml:"height" json:"height,omitempty"`
	// Iterations is the number of trials. Must be at least 1.
	Iterations int `yaml:"iterations" json:"iterations"`
	// Quantum enables the perturbation state.
	Quantum bool `yaml:"quantum" json:"quantum"`
	// Encoders lists the reference encoders to include (fpga, h266).
	Encoders []string `yaml:"encoders" json:"encoders,omitempty"`
	// TargetMs, when set, is the mean-latency gate for the core encoder.
	TargetMs *float64 `yaml:"target_ms" json:"target_ms,omitempty"`
	// Seed fixes frame generation and the perturbation state for
	// reproducible runs. Zero means time-seeded.
	Seed int64 `yaml:"seed" json:"seed,omitempty"`
	// Backend selects the device backend for the core encoder.
	// Defaults to sim.
	Backend string `yaml:"backend" json:"backend,omitempty"`
}

// ConfigError reports an invalid configuration field. Configuration
// errors abort the run before any trial executes.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config field %s: %s", e.Field, e.Reason)
}

// Dimensions resolves the configured resolution to pixel dimensions.
func (c *Config) Dimensions() (width, height int) {
	if c.Width > 0 && c.Height > 0 {
		return c.Width, c.Height
	}
	return frame.Tier(c.Resolution).Dimensions()
}

// Tier returns the resolution tier the run is keyed by: the named tier,
// or the tier covering the explicit dimensions.
func (c *Config) Tier() frame.Tier {
	if c.Width > 0 && c.Height > 0 {
		return frame.TierFor(c.Width, c.Height)
	}
	return frame.Tier(c.Resolution)
}

// Validate checks the configuration and reports the first invalid field.
func (c *Config) Validate() error {
	if c.Width == 0 && c.Height == 0 {
		if _, err := frame.ParseTier(c.Resolution); err != nil {
			return &ConfigError{Field: "resolution", Reason: err.Error()}
		}
	} else if c.Width <= 0 || c.Height <= 0 {
		return &ConfigError{
			Field:  "width/height",
			Reason: fmt.Sprintf("dimensions %dx%d are not positive", c.Width, c.Height),
		}
	}

	if c.Iterations < 1 {
		return &ConfigError{
			Field:  "iterations",
			Reason: fmt.Sprintf("%d is not a positive iteration count", c.Iterations),
		}
	}

	for _, name := range c.Encoders {
		if name != VariantFPGA && name != VariantH266 {
			return &ConfigError{
				Field:  "encoders",
				Reason: fmt.Sprintf("%q is not a known reference encoder", name),
			}
		}
	}

	if c.TargetMs != nil && *c.TargetMs <= 0 {
		return &ConfigError{
			Field:  "target_ms",
			Reason: fmt.Sprintf("%g is not a positive latency target", *c.TargetMs),
		}
	}

	if b := c.backend(); b != device.BackendSim && b != device.BackendHost {
		return &ConfigError{
			Field:  "backend",
			Reason: fmt.Sprintf("%q is not a known device backend", b),
		}
	}

	return nil
}

func (c *Config) backend() string {
	if c.Backend == "" {
		return device.BackendSim
	}
	return c.Backend
}

// Sweep is a list of benchmark configs run back to back.
type Sweep struct {
	Runs []Config `yaml:"runs"`
}

// LoadSweep reads a YAML sweep file and validates every config in it.
func LoadSweep(path string) (*Sweep, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sweep file: %w", err)
	}

	var s Sweep
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse sweep file: %w", err)
	}
	if len(s.Runs) == 0 {
		return nil, fmt.Errorf("sweep file %s defines no runs", path)
	}

	for i := range s.Runs {
		if err := s.Runs[i].Validate(); err != nil {
			return nil, fmt.Errorf("sweep run %d: %w", i, err)
		}
	}
	return &s, nil
}
