package actions

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/uron802/api-diff-checker/internal/compare"
	"github.com/uron802/api-diff-checker/internal/output"
)

// Compare reports the structural differences between two response
// corpora. Differences and missing files are findings, not failures:
// the run only errors when an argument is missing or a directory does
// not exist.
func Compare(log logrus.FieldLogger, dir1, dir2 string) error {
	if dir1 == "" || dir2 == "" {
		return ErrDirectoriesNotSet
	}

	for _, dir := range []string{dir1, dir2} {
		if err := checkDirectory(dir); err != nil {
			return err
		}
	}

	scanner := compare.NewScanner(log, compare.NewComparer(log))

	result, err := scanner.Scan(dir1, dir2)
	if err != nil {
		return fmt.Errorf("failed to compare directories: %w", err)
	}

	formatter := output.NewFormatter(os.Stdout)
	for _, file := range result.Files {
		if err := formatter.PrintFileResult(file); err != nil {
			return err
		}
	}

	formatter.PrintCompareSummary(result)

	return nil
}

// checkDirectory verifies one comparison root exists and is a directory.
// Each side is checked on its own so the first failure names the
// offending path.
func checkDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}

		return fmt.Errorf("failed to check directory %s: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, dir)
	}

	return nil
}

var (
	// ErrDirectoriesNotSet is returned when either comparison directory argument is empty.
	ErrDirectoriesNotSet = errors.New("both comparison directories must be set (e.g. apiResponses/v1 apiResponses/v2)")
	// ErrDirectoryNotFound is returned when a comparison directory does not exist.
	ErrDirectoryNotFound = errors.New("directory not found")
)
