package main

import (
	"io"
	"log"
	"testing"

	"gotest.tools/v3/assert"
)

func TestRootCmd_ExportArgValidation(t *testing.T) {
	printer := log.New(io.Discard, "", 0)

	cases := []struct {
		name          string
		args          []string
		expectedError string
	}{
		{
			name:          "filename without format",
			args:          []string{"out.csv"},
			expectedError: "without --export_results",
		},
		{
			name:          "format without filename",
			args:          []string{"-e", "csv"},
			expectedError: "export filename required",
		},
		{
			name:          "unsupported format",
			args:          []string{"-e", "xml", "out.xml"},
			expectedError: "unsupported export format",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cmd := newRootCmd(printer)
			cmd.SetArgs(c.args)
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)

			assert.ErrorContains(t, cmd.Execute(), c.expectedError)
		})
	}
}
