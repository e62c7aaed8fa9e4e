//go:build unit

package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{Resolution: "1080p", Iterations: 10}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"unknown tier", func(c *Config) { c.Resolution = "480i" }, "resolution"},
		{"zero iterations", func(c *Config) { c.Iterations = 0 }, "iterations"},
		{"negative iterations", func(c *Config) { c.Iterations = -3 }, "iterations"},
		{"unknown encoder", func(c *Config) { c.Encoders = []string{"av1"} }, "encoders"},
		{"negative target", func(c *Config) { v := -1.0; c.TargetMs = &v }, "target_ms"},
		{"unknown backend", func(c *Config) { c.Backend = "cuda" }, "backend"},
		{"negative height", func(c *Config) { c.Width = 100; c.Height = -1 }, "width/height"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var cerr *ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.field, cerr.Field)
		})
	}
}

func TestConfigValidateAccepts(t *testing.T) {
	cfg := validConfig()
	cfg.Encoders = []string{VariantFPGA, VariantH266}
	target := 5.0
	cfg.TargetMs = &target

	require.NoError(t, cfg.Validate())

	// Explicit dimensions do not need a tier.
	cfg = Config{Width: 64, Height: 48, Iterations: 1}
	require.NoError(t, cfg.Validate())
}

func TestConfigDimensions(t *testing.T) {
	cfg := validConfig()
	w, h := cfg.Dimensions()
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)

	cfg.Width, cfg.Height = 640, 480
	w, h = cfg.Dimensions()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestLoadSweep(t *testing.T) {
	content := `runs:
  - resolution: 1080p
    iterations: 10
    quantum: false
    encoders: [fpga, h266]
  - resolution: 4k
    iterations: 5
    quantum: true
    target_ms: 8.5
    seed: 42
`
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	sweep, err := LoadSweep(path)
	require.NoError(t, err)
	require.Len(t, sweep.Runs, 2)

	assert.Equal(t, "1080p", sweep.Runs[0].Resolution)
	assert.Equal(t, []string{"fpga", "h266"}, sweep.Runs[0].Encoders)
	assert.True(t, sweep.Runs[1].Quantum)
	require.NotNil(t, sweep.Runs[1].TargetMs)
	assert.Equal(t, 8.5, *sweep.Runs[1].TargetMs)
	assert.Equal(t, int64(42), sweep.Runs[1].Seed)
}

func TestLoadSweepRejectsInvalidRun(t *testing.T) {
	content := `runs:
  - resolution: 1080p
    iterations: 0
`
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := LoadSweep(path)
	require.Error(t, err)

	var cerr *ConfigError
	assert.ErrorAs(t, err, &cerr)
}

func TestLoadSweepMissingFile(t *testing.T) {
	_, err := LoadSweep(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadSweepEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("runs: []\n"), 0644))

	_, err := LoadSweep(path)
	require.Error(t, err)
}
