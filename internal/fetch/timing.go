package fetch

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

// TimingFilename is the shared timing report written next to the responses.
const TimingFilename = "response_times.csv"

// timingHeader labels the report columns: API name, response time in ms.
var timingHeader = []string{"API名", "レスポンス時間(ms)"}

// TimingReport appends one row per call, in call order, to the run's CSV.
type TimingReport struct {
	file   *os.File
	writer *csv.Writer
}

// NewTimingReport creates the CSV and writes the header row.
func NewTimingReport(path string) (*TimingReport, error) {
	file, err := os.Create(path) //nolint:gosec // G304: report path derives from the run's output dir
	if err != nil {
		return nil, fmt.Errorf("creating timing report %s: %w", path, err)
	}

	report := &TimingReport{
		file:   file,
		writer: csv.NewWriter(file),
	}

	if err := report.writer.Write(timingHeader); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("writing timing header: %w", err)
	}

	report.writer.Flush()
	if err := report.writer.Error(); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("flushing timing header: %w", err)
	}

	return report, nil
}

// Record appends one row and flushes it, so the report stays current even
// when a later call hangs.
func (t *TimingReport) Record(apiName string, elapsed time.Duration) error {
	row := []string{apiName, strconv.FormatInt(elapsed.Milliseconds(), 10)}

	if err := t.writer.Write(row); err != nil {
		return fmt.Errorf("writing timing row for %s: %w", apiName, err)
	}

	t.writer.Flush()
	if err := t.writer.Error(); err != nil {
		return fmt.Errorf("flushing timing row for %s: %w", apiName, err)
	}

	return nil
}

// Close flushes any pending rows and releases the file handle.
func (t *TimingReport) Close() error {
	t.writer.Flush()
	flushErr := t.writer.Error()

	if err := t.file.Close(); err != nil {
		return fmt.Errorf("closing timing report: %w", err)
	}

	return flushErr
}
