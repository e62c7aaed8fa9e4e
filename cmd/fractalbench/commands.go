package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emergingrobotics/go-fractal/pkg/bench"
	"github.com/emergingrobotics/go-fractal/pkg/report"
)

func newRunCommand() *cobra.Command {
	var (
		resolution string
		width      int
		height     int
		iterations int
		quantum    bool
		encoders   []string
		targetMs   float64
		seed       int64
		backend    string
		outDir     string
		plotPath   string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one benchmark configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := bench.Config{
				Resolution: resolution,
				Width:      width,
				Height:     height,
				Iterations: iterations,
				Quantum:    quantum,
				Encoders:   encoders,
				Seed:       seed,
				Backend:    backend,
			}
			if cmd.Flags().Changed("target-ms") {
				cfg.TargetMs = &targetMs
			}

			result, err := runOne(cmd, cfg)
			if err != nil {
				return err
			}

			rep := report.New(result)
			if err := persist(cmd, rep, outDir, plotPath); err != nil {
				return err
			}

			return gateOutcome(cmd, result)
		},
	}

	cmd.SilenceUsage = true
	cmd.Flags().StringVar(&resolution, "resolution", "1080p", "resolution tier (720p, 1080p, 4k, 8k)")
	cmd.Flags().IntVar(&width, "width", 0, "explicit frame width (overrides --resolution with --height)")
	cmd.Flags().IntVar(&height, "height", 0, "explicit frame height (overrides --resolution with --width)")
	cmd.Flags().IntVar(&iterations, "iterations", 100, "number of trials")
	cmd.Flags().BoolVar(&quantum, "quantum", false, "enable perturbation (quantum) mode")
	cmd.Flags().StringSliceVar(&encoders, "encoders", []string{bench.VariantFPGA, bench.VariantH266},
		"reference encoders to compare against")
	cmd.Flags().Float64Var(&targetMs, "target-ms", 0, "latency target in ms for the pass/fail gate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "PRNG seed for reproducible runs (0 = time-based)")
	cmd.Flags().StringVar(&backend, "backend", "sim", "device backend for the core encoder (sim, host)")
	cmd.Flags().StringVar(&outDir, "out", "benchmark_results", "directory for the JSON report")
	cmd.Flags().StringVar(&plotPath, "plot", "", "write an HTML latency chart to this path")

	return cmd
}

func newSweepCommand() *cobra.Command {
	var (
		outDir   string
		plotPath string
	)

	cmd := &cobra.Command{
		Use:   "sweep <config.yaml>",
		Short: "Run every configuration in a YAML sweep file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sweep, err := bench.LoadSweep(args[0])
			if err != nil {
				return err
			}

			results := make([]*bench.Result, 0, len(sweep.Runs))
			var failed *bench.Result
			for i, cfg := range sweep.Runs {
				fmt.Fprintf(cmd.OutOrStdout(), "run %d/%d\n", i+1, len(sweep.Runs))
				result, err := runOne(cmd, cfg)
				if err != nil {
					return err
				}
				results = append(results, result)
				if result.Verdict == bench.VerdictFail && failed == nil {
					failed = result
				}
			}

			rep := report.New(results...)
			if err := persist(cmd, rep, outDir, plotPath); err != nil {
				return err
			}

			if failed != nil {
				return gateOutcome(cmd, failed)
			}
			for _, result := range results {
				if err := gateOutcome(cmd, result); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.SilenceUsage = true
	cmd.Flags().StringVar(&outDir, "out", "benchmark_results", "directory for the JSON report")
	cmd.Flags().StringVar(&plotPath, "plot", "", "write an HTML latency chart to this path")

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fractalbench version %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  Build time: %s\n", BuildTime)
		},
	}
}

// runOne executes a single config with progress on stderr and prints its
// summary table.
func runOne(cmd *cobra.Command, cfg bench.Config) (*bench.Result, error) {
	runner, err := bench.NewRunner(cfg, bench.WithProgress(cmd.ErrOrStderr()))
	if err != nil {
		return nil, err
	}

	result, err := runner.Run(context.Background())
	if err != nil {
		return nil, err
	}

	printSummaries(cmd, result)
	return result, nil
}

func printSummaries(cmd *cobra.Command, result *bench.Result) {
	out := cmd.OutOrStdout()
	w, h := result.Config.Dimensions()
	mode := "classical"
	if result.Config.Quantum {
		mode = "quantum"
	}
	fmt.Fprintf(out, "%dx%d, %s, %d iterations (%.2fs)\n",
		w, h, mode, result.Config.Iterations, result.Elapsed.Seconds())

	for _, name := range []string{bench.VariantCore, bench.VariantFPGA, bench.VariantH266} {
		s, ok := result.Summaries[name]
		if !ok {
			continue
		}
		fmt.Fprintf(out, "  %-8s mean=%.3fms std=%.3fms min=%.3fms max=%.3fms p95=%.3fms p99=%.3fms fps=%.1f\n",
			name, s.Mean, s.StdDev, s.Min, s.Max, s.P95, s.P99, s.FPS)
	}
}

func persist(cmd *cobra.Command, rep *report.Report, outDir, plotPath string) error {
	path, err := report.WriteJSON(outDir, rep)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "results saved to %s\n", path)

	if plotPath != "" {
		if err := report.WriteChart(plotPath, rep); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "chart saved to %s\n", plotPath)
	}
	return nil
}

// gateOutcome reports the threshold gate result. Fail becomes the
// process failure signal; Pass and Skipped succeed.
func gateOutcome(cmd *cobra.Command, result *bench.Result) error {
	out := cmd.OutOrStdout()
	core := result.Summaries[bench.VariantCore]

	switch result.Verdict {
	case bench.VerdictPass:
		fmt.Fprintf(out, "PASS: mean %.3fms <= target %.3fms\n", core.Mean, *result.Config.TargetMs)
		return nil
	case bench.VerdictFail:
		fmt.Fprintf(out, "FAIL: mean %.3fms > target %.3fms\n", core.Mean, *result.Config.TargetMs)
		return errGateFailed
	default:
		fmt.Fprintln(out, "no latency target set, gate skipped")
		return nil
	}
}
