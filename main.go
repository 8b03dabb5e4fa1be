package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/makotom/microbench/bench"
)

var (
	BuildName       = "\b"
	BuildAnnotation = "git"
)

func registerSamples() {
	csvLine := "Year,Make,Model,Description,Price\n1997,Ford,E350,\"ac, abs, moon\",3000.00"
	bench.MustRegister("StringSplit", func() {
		strings.Split(csvLine, ",")
	})

	bench.MustRegister("SortInts", func() {
		values := []int{9, 3, 7, 1, 8, 2, 6, 0, 5, 4}
		sort.Ints(values)
	})

	bench.MustRegister("Sleep1ms", func() {
		time.Sleep(time.Millisecond)
	})
}

func newRootCmd(printer *log.Logger) *cobra.Command {
	var exportFormat string

	cmd := &cobra.Command{
		Use:   "microbench [-e {csv,json,md}] [filename]",
		Short: "Run registered microbenchmarks",
		Long: `microbench repeatedly executes the registered benchmark functions,
statistically analyzing the temporal behavior of the code under test.`,
		Version:       fmt.Sprintf("%s (%s)", BuildName, BuildAnnotation),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if exportFormat != "" {
				if !bench.SupportedFormat(exportFormat) {
					return errors.Errorf("unsupported export format %q (supported: csv, json, md)", exportFormat)
				}
				if len(args) == 0 {
					return errors.New("export filename required")
				}
			} else if len(args) > 0 {
				return errors.Errorf("filename %q given without --export_results", args[0])
			}

			results, err := bench.RunAndPrint(cmd.Context(), printer, bench.Options{})
			if err != nil {
				return err
			}

			if exportFormat != "" {
				return bench.Export(exportFormat, args[0], results)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&exportFormat, "export_results", "e", "", "Export results to file: csv, json or md")

	return cmd
}

func main() {
	registerSamples()

	printer := log.New(os.Stdout, "", 0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(printer).ExecuteContext(ctx); err != nil {
		log.New(os.Stderr, "", 0).Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
