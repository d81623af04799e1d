// Package apidef provides API call definition loading and validation.
// A definition document describes the named HTTP calls of one version
// (url, method, headers, params) as opposed to how a capture run executes
// them (see fetch.Batch for execution parameters).
package apidef

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	json5 "github.com/yosuke-furukawa/json5/encoding/json5"
	"gopkg.in/yaml.v3"
)

var (
	errConfigNotFound    = errors.New("config file not found")
	errVersionRequired   = errors.New("version is required")
	errNoAPIsDefined     = errors.New("at least one api definition is required")
	errAPINameRequired   = errors.New("api name is required")
	errAPIURLRequired    = errors.New("api url is required")
	errUnsupportedFormat = errors.New("unsupported config format")
)

// API is one named HTTP call definition inside a version's document.
type API struct {
	Name    string                 `json:"name" yaml:"name"`
	URL     string                 `json:"url" yaml:"url"`
	Method  string                 `json:"method" yaml:"method"`
	Headers map[string]string      `json:"headers" yaml:"headers"`
	Params  map[string]interface{} `json:"params,omitempty" yaml:"params,omitempty"`
}

// Document is a version's full call list, ordered as configured.
// Immutable once loaded; one document per version.
type Document struct {
	Version string `json:"version" yaml:"version"`
	APIs    []*API `json:"apis" yaml:"apis"`
}

// Loader loads API definition documents.
type Loader interface {
	Load(path string) (*Document, error)
}

type loader struct {
	log logrus.FieldLogger
}

// NewLoader creates a new definition loader.
func NewLoader(log logrus.FieldLogger) Loader {
	return &loader{
		log: log.WithField("component", "apidef_loader"),
	}
}

// Load reads, parses and validates the document at path. The format is
// chosen by extension: .json (contractual), .json5 and .yaml/.yml are
// accepted supersets of the same shape.
func (l *loader) Load(path string) (*Document, error) {
	l.log.WithField("path", path).Debug("loading api definitions")

	doc, err := l.loadFile(path)
	if err != nil {
		return nil, err
	}

	if err := l.validateDocument(doc); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}

	l.log.WithFields(logrus.Fields{
		"version": doc.Version,
		"apis":    len(doc.APIs),
	}).Debug("loaded api definitions")

	return doc, nil
}

// loadFile reads and parses a definition document
func (l *loader) loadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: reading config from a user-supplied path is the point
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", errConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var doc Document

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", "":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing json config %s: %w", path, err)
		}
	case ".json5":
		if err := json5.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing json5 config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing yaml config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", errUnsupportedFormat, filepath.Ext(path))
	}

	return &doc, nil
}

// validateDocument ensures the document is usable as a fetch batch and
// fills in the GET default for calls that omit the method.
func (l *loader) validateDocument(doc *Document) error {
	if doc.Version == "" {
		return errVersionRequired
	}

	if len(doc.APIs) == 0 {
		return errNoAPIsDefined
	}

	seen := make(map[string]bool, len(doc.APIs))

	for i, api := range doc.APIs {
		if api.Name == "" {
			return fmt.Errorf("%w at index %d", errAPINameRequired, i)
		}

		if api.URL == "" {
			return fmt.Errorf("%w: %s", errAPIURLRequired, api.Name)
		}

		// The name doubles as the response filename; a duplicate
		// overwrites the earlier response.
		if seen[api.Name] {
			l.log.WithField("name", api.Name).Warn("duplicate api name, later response file overwrites earlier")
		}
		seen[api.Name] = true

		if api.Method == "" {
			api.Method = http.MethodGet
		}
	}

	return nil
}
