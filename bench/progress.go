package bench

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/muesli/termenv"
)

const progressBarWidth = 20

// progressLine rewrites a single terminal line after every round.
type progressLine struct {
	output *termenv.Output
	prefix string
	bar    progress.Model
}

func newProgressLine(output *termenv.Output, name string) *progressLine {
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(progressBarWidth),
		progress.WithoutPercentage(),
	)

	return &progressLine{
		output: output,
		prefix: name,
		bar:    bar,
	}
}

func (line *progressLine) update(report Progress) {
	fraction := float64(0)
	if report.MaxRuns > 0 {
		fraction = float64(report.Round) / float64(report.MaxRuns)
	}
	if fraction > 1 {
		fraction = 1
	}

	line.output.ClearLine()
	fmt.Fprintf(line.output, "\r%s %s %d/%d μ = %s ± %.2f%%, N = %d",
		line.prefix, line.bar.ViewAs(fraction),
		report.Round, report.MaxRuns,
		formatDuration(report.BestMean), report.BestRSD, report.BestIterations)
}

func (line *progressLine) finish() {
	fmt.Fprintln(line.output)
}
