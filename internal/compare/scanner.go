// Package compare implements the response comparison pipeline: scanning
// two version directories, pairing same-named files and resolving each
// pair to a match, a structural diff or a missing-file report.
package compare

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// Scanner compares two response corpora keyed by filename.
type Scanner interface {
	Scan(dir1, dir2 string) (*ScanResult, error)
}

// ScanResult aggregates the per-file outcomes of one directory comparison.
type ScanResult struct {
	Dir1     string
	Dir2     string
	Files    []*FileResult
	Duration time.Duration
}

// Matched counts pairs whose documents are structurally identical.
func (r *ScanResult) Matched() int {
	return r.countStatus(StatusMatch)
}

// Differed counts pairs with at least one structural difference.
func (r *ScanResult) Differed() int {
	return r.countStatus(StatusDiffers)
}

// Missing counts filenames without a loadable document on at least one side.
func (r *ScanResult) Missing() int {
	return len(r.Files) - r.Matched() - r.Differed()
}

func (r *ScanResult) countStatus(status Status) int {
	n := 0
	for _, f := range r.Files {
		if f.Status == status {
			n++
		}
	}

	return n
}

type scanner struct {
	comparer Comparer
	log      logrus.FieldLogger
}

// NewScanner creates a directory scanner on top of a pairwise comparer.
func NewScanner(log logrus.FieldLogger, comparer Comparer) Scanner {
	return &scanner{
		comparer: comparer,
		log:      log.WithField("component", "compare_scanner"),
	}
}

// Scan lists both directories without recursing or filtering by extension
// and visits the union of their filenames exactly once each, in sorted
// order. A name present on only one side short-circuits as missing on the
// other; a name present in both goes through the pairwise comparer.
func (s *scanner) Scan(dir1, dir2 string) (*ScanResult, error) {
	start := time.Now()

	names1, err := listFilenames(dir1)
	if err != nil {
		return nil, err
	}

	names2, err := listFilenames(dir2)
	if err != nil {
		return nil, err
	}

	union := make([]string, 0, len(names1)+len(names2))
	for name := range names1 {
		union = append(union, name)
	}
	for name := range names2 {
		if _, seen := names1[name]; !seen {
			union = append(union, name)
		}
	}
	sort.Strings(union)

	result := &ScanResult{
		Dir1:  dir1,
		Dir2:  dir2,
		Files: make([]*FileResult, 0, len(union)),
	}

	for _, name := range union {
		path1 := filepath.Join(dir1, name)
		path2 := filepath.Join(dir2, name)

		_, in1 := names1[name]
		_, in2 := names2[name]

		var fileResult *FileResult

		switch {
		case in1 && !in2:
			fileResult = &FileResult{Name: name, Path1: path1, Path2: path2, Status: StatusMissingInV2}
		case !in1 && in2:
			fileResult = &FileResult{Name: name, Path1: path1, Path2: path2, Status: StatusMissingInV1}
		default:
			fileResult, err = s.comparer.Compare(name, path1, path2)
			if err != nil {
				return nil, err
			}
		}

		result.Files = append(result.Files, fileResult)
	}

	result.Duration = time.Since(start)

	s.log.WithFields(logrus.Fields{
		"dir1":     dir1,
		"dir2":     dir2,
		"files":    len(result.Files),
		"matched":  result.Matched(),
		"differed": result.Differed(),
		"missing":  result.Missing(),
		"duration": result.Duration,
	}).Info("directory comparison complete")

	return result, nil
}

// listFilenames returns the entry names of one directory as a set.
// Subdirectories and other non-files stay in the listing; their loads
// fail downstream and report as missing, same as any unreadable entry.
func listFilenames(dir string) (map[string]struct{}, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing directory %s: %w", dir, err)
	}

	names := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		names[entry.Name()] = struct{}{}
	}

	return names, nil
}
