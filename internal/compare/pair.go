package compare

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/r3labs/diff/v3"
	"github.com/sirupsen/logrus"
)

// Status classifies the outcome of one filename's comparison.
type Status string

const (
	// StatusBothMissing marks a filename with no loadable document on
	// either side.
	StatusBothMissing Status = "both_missing"
	// StatusMissingInV1 marks a filename with no loadable document under
	// the version 1 directory.
	StatusMissingInV1 Status = "missing_in_v1"
	// StatusMissingInV2 marks a filename with no loadable document under
	// the version 2 directory.
	StatusMissingInV2 Status = "missing_in_v2"
	// StatusMatch marks a pair whose documents are structurally identical.
	StatusMatch Status = "match"
	// StatusDiffers marks a pair with at least one structural difference.
	StatusDiffers Status = "differs"
)

// FileResult is the resolved outcome for one filename of the compared
// directory pair. Changes is populated only for StatusDiffers.
type FileResult struct {
	Name    string
	Path1   string
	Path2   string
	Status  Status
	Changes diff.Changelog
}

// Comparer resolves a same-named file pair to its comparison outcome.
type Comparer interface {
	Compare(name, path1, path2 string) (*FileResult, error)
}

type comparer struct {
	log logrus.FieldLogger
}

// NewComparer creates a pairwise response comparer.
func NewComparer(log logrus.FieldLogger) Comparer {
	return &comparer{
		log: log.WithField("component", "compare_pair"),
	}
}

// Compare loads both sides and classifies the pair. Loads are tolerant:
// an absent, unreadable or unparseable file counts as missing, so one
// corrupt response never aborts the run.
func (c *comparer) Compare(name, path1, path2 string) (*FileResult, error) {
	result := &FileResult{
		Name:  name,
		Path1: path1,
		Path2: path2,
	}

	lhs := c.loadJSON(path1)
	rhs := c.loadJSON(path2)

	switch {
	case lhs == nil && rhs == nil:
		result.Status = StatusBothMissing
		return result, nil
	case lhs == nil:
		result.Status = StatusMissingInV1
		return result, nil
	case rhs == nil:
		result.Status = StatusMissingInV2
		return result, nil
	}

	changes, err := structuralDiff(lhs, rhs)
	if err != nil {
		return nil, fmt.Errorf("diffing %s: %w", name, err)
	}

	if len(changes) == 0 {
		result.Status = StatusMatch
		return result, nil
	}

	result.Status = StatusDiffers
	result.Changes = changes

	return result, nil
}

// loadJSON returns the parsed document, or nil when the file cannot be
// read or does not parse. A file whose content is the JSON literal null
// also collapses to nil and is reported as missing.
func (c *comparer) loadJSON(path string) interface{} {
	raw, err := os.ReadFile(path) //nolint:gosec // G304: paths come from the compared directories
	if err != nil {
		c.log.WithError(err).WithField("file", path).Debug("failed to read response file")
		return nil
	}

	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		c.log.WithError(err).WithField("file", path).Debug("response file is not valid json")
		return nil
	}

	return value
}
