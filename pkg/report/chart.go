package report

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteChart renders per-run latency charts to a single HTML page: one
// line chart of per-trial latencies per variant, and one bar chart of
// mean latency per variant.
func WriteChart(path string, rep *Report) error {
	page := components.NewPage()
	for i := range rep.Runs {
		run := &rep.Runs[i]
		page.AddCharts(latencyLine(i, run), meanBar(i, run))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// variantNames returns the run's variant names in stable order.
func variantNames(run *Run) []string {
	names := make([]string, 0, len(run.Samples))
	for name := range run.Samples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runTitle(i int, run *Run) string {
	w, h := run.Config.Dimensions()
	mode := "classical"
	if run.Config.Quantum {
		mode = "quantum"
	}
	return fmt.Sprintf("run %d: %dx%d, %s", i+1, w, h, mode)
}

func latencyLine(i int, run *Run) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    runTitle(i, run),
			Subtitle: "per-trial latency (ms)",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	trials := make([]int, run.Config.Iterations)
	for t := range trials {
		trials[t] = t + 1
	}
	line.SetXAxis(trials)

	for _, name := range variantNames(run) {
		data := make([]opts.LineData, len(run.Samples[name]))
		for j, v := range run.Samples[name] {
			data[j] = opts.LineData{Value: v}
		}
		line.AddSeries(name, data)
	}
	return line
}

func meanBar(i int, run *Run) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    runTitle(i, run),
			Subtitle: "mean latency (ms)",
		}),
	)

	names := variantNames(run)
	data := make([]opts.BarData, len(names))
	for j, name := range names {
		data[j] = opts.BarData{Value: run.Summaries[name].Mean}
	}

	bar.SetXAxis(names)
	bar.AddSeries("mean", data)
	return bar
}
