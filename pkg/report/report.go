// Package report persists benchmark results as JSON and renders latency
// charts. It is a collaborator of the benchmark core: the core produces
// summaries, this package decides how they land on disk.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/emergingrobotics/go-fractal/pkg/bench"
)

// Run is one benchmark run in a report.
type Run struct {
	Config    bench.Config             `json:"config"`
	Summaries map[string]bench.Summary `json:"summaries"`
	Samples   map[string][]float64     `json:"samples_ms"`
	Verdict   string                   `json:"verdict"`
}

// Report is a serializable collection of benchmark runs.
type Report struct {
	GeneratedAt time.Time `json:"generated_at"`
	Runs        []Run     `json:"runs"`
}

// New creates a report from run results.
func New(results ...*bench.Result) *Report {
	rep := &Report{GeneratedAt: time.Now()}
	for _, res := range results {
		rep.Runs = append(rep.Runs, Run{
			Config:    res.Config,
			Summaries: res.Summaries,
			Samples:   res.Samples,
			Verdict:   res.Verdict.String(),
		})
	}
	return rep
}

// WriteJSON writes the report to a timestamped file in dir, creating the
// directory if needed, and returns the file path.
func WriteJSON(dir string, rep *Report) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	name := fmt.Sprintf("latency_%s.json", rep.GeneratedAt.Format("20060102_150405"))
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
