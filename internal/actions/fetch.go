// Package actions contains the core business logic for api-diff-checker
// operations, shared by the CLI commands and the interactive menu.
package actions

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/uron802/api-diff-checker/internal/apidef"
	"github.com/uron802/api-diff-checker/internal/config"
	"github.com/uron802/api-diff-checker/internal/fetch"
	"github.com/uron802/api-diff-checker/internal/output"
)

// Fetch loads the named config document, captures every response under
// the version's output directory and prints a per-call summary. Broken
// endpoints are reported but do not fail the run; only missing arguments
// or an unloadable config do.
func Fetch(ctx context.Context, log logrus.FieldLogger, version, configPath string) error {
	if version == "" {
		return ErrVersionNotSet
	}

	if configPath == "" {
		return ErrConfigPathNotSet
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	outputDir := cfg.VersionDir(version)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	doc, err := apidef.NewLoader(log).Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load api config: %w", err)
	}

	if doc.Version != "" && doc.Version != version {
		log.WithFields(logrus.Fields{
			"config_version": doc.Version,
			"version":        version,
		}).Warn("config version does not match requested version")
	}

	fmt.Printf("\n📡 Fetching %d APIs for version '%s'...\n\n", len(doc.APIs), version)

	executor := fetch.NewExecutor(log, &http.Client{Timeout: cfg.HTTPTimeout})

	result, err := fetch.NewBatch(log, executor).Run(ctx, version, doc, outputDir)
	if err != nil {
		return fmt.Errorf("failed to run fetch batch: %w", err)
	}

	// Per-endpoint failures are already logged and shown in the summary;
	// they do not fail the run.
	output.NewFormatter(os.Stdout).PrintFetchSummary(result)

	return nil
}

var (
	// ErrVersionNotSet is returned when the version argument is empty.
	ErrVersionNotSet = errors.New("version is not set - specify a version label for this run (e.g. v1)")
	// ErrConfigPathNotSet is returned when the config path argument is empty.
	ErrConfigPathNotSet = errors.New("config file path is not set")
)
