package output

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/uron802/api-diff-checker/internal/compare"
	"github.com/uron802/api-diff-checker/internal/fetch"
	"github.com/uron802/api-diff-checker/internal/format"
)

// PrintFetchSummary renders the per-call outcome table for one fetch run.
func (f *formatter) PrintFetchSummary(result *fetch.BatchResult) {
	if len(result.Results) == 0 {
		fmt.Fprintln(f.writer, "No calls executed")
		return
	}

	headers := []string{"API", "Status", "Time (ms)", "Size"}
	rows := make([][]string, 0, len(result.Results))

	for _, r := range result.Results {
		status := f.green.Sprint("✓ OK")
		size := format.Bytes(int64(len(r.Body)))

		if !r.OK() {
			status = f.red.Sprintf("✗ FAILED (%s)", r.Failure)
			size = "-"
		}

		rows = append(rows, []string{r.API, status, strconv.FormatInt(r.ElapsedMs(), 10), size})
	}

	f.renderTable(headers, rows)

	fmt.Fprintf(f.writer, "%d/%d calls succeeded in %s, responses in %s\n",
		result.Succeeded(), len(result.Results), format.Duration(result.Duration), result.OutputDir)
}

// PrintCompareSummary renders the outcome counts for one directory comparison.
func (f *formatter) PrintCompareSummary(result *compare.ScanResult) {
	headers := []string{"Outcome", "Files"}
	rows := [][]string{
		{f.green.Sprint("Match"), strconv.Itoa(result.Matched())},
		{f.red.Sprint("Differ"), strconv.Itoa(result.Differed())},
		{f.yellow.Sprint("Missing"), strconv.Itoa(result.Missing())},
		{"Total", strconv.Itoa(len(result.Files))},
	}

	f.renderTable(headers, rows)

	fmt.Fprintf(f.writer, "Compared %s and %s in %s\n",
		result.Dir1, result.Dir2, format.Duration(result.Duration))
}

// renderTable writes one table with the house styling.
func (f *formatter) renderTable(headers []string, rows [][]string) {
	table := tablewriter.NewWriter(f.writer)
	table.SetHeader(headers)

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("│")
	table.SetRowSeparator("─")
	table.SetHeaderLine(true)
	table.SetBorder(true)
	table.SetTablePadding(" ")
	table.SetNoWhiteSpace(false)

	table.AppendBulk(rows)
	table.Render()
}
