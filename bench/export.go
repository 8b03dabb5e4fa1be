package bench

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Supported export formats.
const (
	FormatCSV      = "csv"
	FormatJSON     = "json"
	FormatMarkdown = "md"
)

var exportWriters = map[string]func(io.Writer, []Result) error{
	FormatCSV:      WriteCSV,
	FormatJSON:     WriteJSON,
	FormatMarkdown: WriteMarkdown,
}

// SupportedFormat reports whether format names a known export writer.
func SupportedFormat(format string) bool {
	_, ok := exportWriters[format]

	return ok
}

// Export writes results to path in the named format.
func Export(format, path string, results []Result) error {
	writer, ok := exportWriters[format]
	if !ok {
		return errors.Errorf("unsupported export format %q (supported: csv, json, md)", format)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create export file")
	}

	if err := writer(file, results); err != nil {
		file.Close()

		return errors.Wrapf(err, "write %s export", format)
	}

	return errors.Wrap(file.Close(), "close export file")
}

var exportColumns = []string{
	"name",
	"num_runs",
	"num_iterations",
	"mean_execution_time",
	"fastest_execution_time",
	"slowest_execution_time",
	"lowest_rsd",
	"lowest_rsd_index",
	"average_iteration_performance",
	"fastest_iteration_performance",
	"slowest_iteration_performance",
}

// WriteCSV writes a header row followed by one row per result.
func WriteCSV(w io.Writer, results []Result) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(exportColumns); err != nil {
		return err
	}

	for _, result := range results {
		record := []string{
			result.Name,
			strconv.Itoa(result.NumRuns),
			strconv.Itoa(result.NumIterations),
			formatF64(result.MeanExecutionTime),
			formatF64(result.FastestExecutionTime),
			formatF64(result.SlowestExecutionTime),
			formatF64(result.LowestRSD),
			strconv.Itoa(result.LowestRSDIndex),
			formatF64(result.AverageIterationPerformance),
			formatF64(result.FastestIterationPerformance),
			formatF64(result.SlowestIterationPerformance),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()

	return writer.Error()
}

// WriteJSON writes results as an indented JSON array.
func WriteJSON(w io.Writer, results []Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(results)
}

// WriteMarkdown writes a comparison table.
func WriteMarkdown(w io.Writer, results []Result) error {
	fmt.Fprintln(w, "## Benchmark Results")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Benchmark | Runs | Iterations/Run | Average | Fastest | Slowest | Best Run | Lowest RSD |")
	fmt.Fprintln(w, "|-----------|------|----------------|---------|---------|---------|----------|------------|")

	for _, result := range results {
		fmt.Fprintf(w, "| %s | %d | %d | %s | %s | %s | %s | %.2f%% |\n",
			result.Name,
			result.NumRuns,
			result.NumIterations,
			formatDuration(result.MeanExecutionTime),
			formatDuration(result.FastestExecutionTime),
			formatDuration(result.SlowestExecutionTime),
			ordinal(result.LowestRSDIndex+1),
			result.LowestRSD,
		)
	}

	return nil
}

func formatF64(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
