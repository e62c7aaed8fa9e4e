// Package bench drives repeated encode trials across encoder variants,
// aggregates latency statistics, and evaluates the performance gate.
package bench

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/emergingrobotics/go-fractal/pkg/device"
	"github.com/emergingrobotics/go-fractal/pkg/encoder"
	"github.com/emergingrobotics/go-fractal/pkg/frame"
)

// Result is the outcome of one benchmark run.
type Result struct {
	Config    Config               `json:"config"`
	Samples   map[string][]float64 `json:"samples_ms"`
	Summaries map[string]Summary   `json:"summaries"`
	Verdict   Verdict              `json:"-"`
	Elapsed   time.Duration        `json:"-"`
}

// Runner executes benchmark runs. Execution is single-threaded and
// synchronous: one trial completes fully before the next begins.
type Runner struct {
	cfg      Config
	progress io.Writer
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithProgress reports per-trial progress to w.
func WithProgress(w io.Writer) RunnerOption {
	return func(r *Runner) {
		r.progress = w
	}
}

// NewRunner validates the config and creates a runner for it.
func NewRunner(cfg Config, opts ...RunnerOption) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Runner{cfg: cfg}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run executes the configured trials. Every trial generates one fresh
// frame and encodes it on each variant — core encoder first, then the
// reference encoders in configured order — so all variants in a trial
// see the same frame. The first encode failure aborts the run; there is
// no partial-result recovery. ctx may carry a deadline around the whole
// run without changing per-call semantics.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	cfg := r.cfg
	width, height := cfg.Dimensions()

	dev, err := device.Open(cfg.backend())
	if err != nil {
		return nil, err
	}
	defer dev.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	encOpts := []encoder.Option{encoder.WithDevice(dev), encoder.WithSeed(seed)}
	core, err := encoder.New(width, height, cfg.Quantum, encOpts...)
	if err != nil {
		return nil, fmt.Errorf("core encoder init: %w", err)
	}
	defer core.Close()

	variants := []Variant{&coreVariant{enc: core}}
	for i, name := range cfg.Encoders {
		v, err := newReferenceVariant(name, cfg.Tier(), seed+int64(i)+1)
		if err != nil {
			return nil, fmt.Errorf("reference encoder %q: %w", name, err)
		}
		variants = append(variants, v)
	}

	src := frame.NewSource(width, height, frame.WithSeed(seed))
	samples := make(map[string][]float64, len(variants))
	for _, v := range variants {
		samples[v.Name()] = make([]float64, 0, cfg.Iterations)
	}

	start := time.Now()
	for i := 0; i < cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run aborted at trial %d: %w", i+1, err)
		}

		f := src.Next()
		for _, v := range variants {
			_, latency, err := v.Encode(f)
			if err != nil {
				return nil, fmt.Errorf("trial %d: %s encode: %w", i+1, v.Name(), err)
			}
			samples[v.Name()] = append(samples[v.Name()], latency)
		}

		if r.progress != nil {
			fmt.Fprintf(r.progress, "trial %d/%d\n", i+1, cfg.Iterations)
		}
	}

	summaries := make(map[string]Summary, len(variants))
	for name, s := range samples {
		summary, err := Summarize(s)
		if err != nil {
			return nil, fmt.Errorf("summarize %s: %w", name, err)
		}
		summaries[name] = summary
	}

	return &Result{
		Config:    cfg,
		Samples:   samples,
		Summaries: summaries,
		Verdict:   Evaluate(summaries[VariantCore], cfg.TargetMs),
		Elapsed:   time.Since(start),
	}, nil
}
