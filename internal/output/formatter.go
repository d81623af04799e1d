// Package output renders comparison reports and run summaries for the
// console. The per-file report lines are stable wording relied on by
// downstream log scraping; only their color changes with the outcome.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/uron802/api-diff-checker/internal/compare"
	"github.com/uron802/api-diff-checker/internal/fetch"
)

// Formatter provides clean, human-friendly output.
type Formatter interface {
	PrintFileResult(result *compare.FileResult) error
	PrintCompareSummary(result *compare.ScanResult)
	PrintFetchSummary(result *fetch.BatchResult)
	PrintError(message string, err error)
}

type formatter struct {
	writer io.Writer

	// Colors
	green  *color.Color
	red    *color.Color
	yellow *color.Color
}

// NewFormatter creates a new output formatter.
func NewFormatter(writer io.Writer) Formatter {
	return &formatter{
		writer: writer,
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
	}
}

// PrintFileResult prints the report line for one compared filename. The
// wording of each line is contractual and must not change.
func (f *formatter) PrintFileResult(result *compare.FileResult) error {
	switch result.Status {
	case compare.StatusBothMissing:
		f.yellow.Fprintf(f.writer, "Both files are missing: %s and %s\n", result.Path1, result.Path2)
	case compare.StatusMissingInV1:
		f.yellow.Fprintf(f.writer, "File missing in version 1: %s\n", result.Path1)
	case compare.StatusMissingInV2:
		f.yellow.Fprintf(f.writer, "File missing in version 2: %s\n", result.Path2)
	case compare.StatusDiffers:
		serialized, err := json.MarshalIndent(result.Changes, "", "  ")
		if err != nil {
			return fmt.Errorf("serializing differences for %s: %w", result.Name, err)
		}

		f.red.Fprintf(f.writer, "Differences found between %s and %s:\n", result.Path1, result.Path2)
		fmt.Fprintf(f.writer, "%s\n", serialized)
	case compare.StatusMatch:
		f.green.Fprintf(f.writer, "No differences found between %s and %s. The responses match.\n", result.Path1, result.Path2)
	}

	return nil
}

// PrintError prints a red message with error details.
func (f *formatter) PrintError(message string, err error) {
	f.red.Fprintf(f.writer, "%s", message)
	if err != nil {
		f.red.Fprintf(f.writer, ": %v", err)
	}
	fmt.Fprintf(f.writer, "\n")
}
