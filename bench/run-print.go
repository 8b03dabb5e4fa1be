package bench

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
)

var (
	nameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	bestRunStyle = lipgloss.NewStyle().Bold(true)
	gainStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	lossStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// formatDuration renders a nanosecond quantity at a human scale.
func formatDuration(ns float64) string {
	duration := math.Abs(ns)

	switch {
	case duration < 1e3:
		return fmt.Sprintf("%.0f ns", duration)
	case duration < 1e6:
		return fmt.Sprintf("%.0f us", duration/1e3)
	case duration < 1e9:
		return fmt.Sprintf("%.0f ms", duration/1e6)
	default:
		return fmt.Sprintf("%.0f s", duration/1e9)
	}
}

func formatSignedDuration(ns float64) string {
	if ns < 0 {
		return "-" + formatDuration(ns)
	}

	return "+" + formatDuration(ns)
}

// ordinal labels runs 1st, 2nd, 3rd with the 11th-13th exception.
func ordinal(n int) string {
	if remainder := n % 100; remainder >= 11 && remainder <= 13 {
		return fmt.Sprintf("%dth", n)
	}

	switch n % 10 {
	case 1:
		return fmt.Sprintf("%dst", n)
	case 2:
		return fmt.Sprintf("%dnd", n)
	case 3:
		return fmt.Sprintf("%drd", n)
	default:
		return fmt.Sprintf("%dth", n)
	}
}

func percentOfMean(delta, mean float64) float64 {
	if mean == 0 {
		return 0
	}

	return delta / mean * 100
}

func printResult(printer *log.Logger, result *Result) {
	printer.Printf("%s\n", nameStyle.Render("✓ "+result.Name))

	printer.Printf("    %s\n", sectionStyle.Render("Configuration"))
	printer.Printf("      %d runs, %d iterations per run\n", result.NumRuns, result.NumIterations)

	printer.Printf("    %s\n", sectionStyle.Render("Execution Time"))
	printer.Printf("      Average    %10s\n", formatDuration(result.MeanExecutionTime))

	fastestDelta := result.FastestExecutionTime - result.MeanExecutionTime
	printer.Printf("      Fastest    %10s (%s)\n",
		formatDuration(result.FastestExecutionTime),
		gainStyle.Render(fmt.Sprintf("%s / %.1f %%",
			formatSignedDuration(fastestDelta),
			percentOfMean(fastestDelta, result.MeanExecutionTime))))

	slowestDelta := result.SlowestExecutionTime - result.MeanExecutionTime
	printer.Printf("      Slowest    %10s (%s)\n",
		formatDuration(result.SlowestExecutionTime),
		lossStyle.Render(fmt.Sprintf("%s / %.1f %%",
			formatSignedDuration(slowestDelta),
			percentOfMean(slowestDelta, result.MeanExecutionTime))))

	printer.Printf("      %s\n",
		bestRunStyle.Render(fmt.Sprintf("Best Run   %10s ± %.2f%% (%s run)",
			formatDuration(result.MeanExecutionTime), result.LowestRSD,
			ordinal(result.LowestRSDIndex+1))))

	printer.Printf("    %s\n", sectionStyle.Render("Performance"))
	printer.Printf("      Average    %10.0f iterations/s\n", result.AverageIterationPerformance)
	printer.Printf("      Fastest    %10.0f iterations/s\n", result.FastestIterationPerformance)
	printer.Printf("      Slowest    %10.0f iterations/s\n", result.SlowestIterationPerformance)
	printer.Println()
}

// RunAndPrint executes every registered benchmark sequentially, rendering
// per-round progress and a per-benchmark summary through printer. The
// terminal cursor is hidden while measurement is in flight and restored on
// every exit path, including failure.
func RunAndPrint(ctx context.Context, printer *log.Logger, opts Options) ([]Result, error) {
	output := termenv.NewOutput(os.Stdout)
	output.HideCursor()
	defer output.ShowCursor()

	results := make([]Result, 0, len(registry))

	for _, entry := range registry {
		runOpts := opts

		var line *progressLine
		if runOpts.Progress == nil {
			line = newProgressLine(output, entry.name)
			runOpts.Progress = line.update
		}

		result, err := Run(ctx, entry.name, entry.fn, runOpts)
		if line != nil {
			line.finish()
		}
		if err != nil {
			return nil, errors.Wrapf(err, "%s measurement failed", entry.name)
		}

		printResult(printer, result)
		results = append(results, *result)
	}

	return results, nil
}
