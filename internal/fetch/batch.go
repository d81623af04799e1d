package fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/pretty"
	"golang.org/x/sync/errgroup"

	"github.com/uron802/api-diff-checker/internal/apidef"
)

// batchWorkers is fixed at one: within a batch, call N+1 must not begin
// until call N's response has been processed and persisted. This bounds
// load on the target API at the cost of total throughput.
const batchWorkers = 1

// workItem is a single configured call queued for execution.
type workItem struct {
	idx int
	api *apidef.API
}

// BatchResult collects the per-call outcomes of one capture run.
type BatchResult struct {
	Version   string
	RunID     string
	OutputDir string
	Results   []*Result
	Duration  time.Duration
}

// Succeeded counts calls that produced a response file.
func (b *BatchResult) Succeeded() int {
	n := 0
	for _, r := range b.Results {
		if r.OK() {
			n++
		}
	}
	return n
}

// Failed counts calls that produced no response file.
func (b *BatchResult) Failed() int {
	return len(b.Results) - b.Succeeded()
}

// Batch executes a loaded document's calls in order and persists results.
// Concrete implementation without an interface abstraction.
type Batch struct {
	executor Executor
	log      logrus.FieldLogger
}

// NewBatch creates a batch runner on top of an executor.
func NewBatch(log logrus.FieldLogger, executor Executor) *Batch {
	return &Batch{
		executor: executor,
		log:      log.WithField("component", "fetch_batch"),
	}
}

// Run executes every call of the document sequentially, writing each
// successful body to <outputDir>/<api.name>.json and one timing row per
// call (failures included) to the shared CSV. The output directory must
// already exist; creating it is the caller's responsibility.
func (b *Batch) Run(ctx context.Context, version string, doc *apidef.Document, outputDir string) (*BatchResult, error) {
	start := time.Now()
	runID := uuid.New().String()

	log := b.log.WithFields(logrus.Fields{
		"run_id":  runID,
		"version": version,
	})

	timing, err := NewTimingReport(filepath.Join(outputDir, TimingFilename))
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := timing.Close(); err != nil {
			log.WithError(err).Warn("failed to close timing report")
		}
	}()

	results := make([]*Result, len(doc.APIs))

	// Queue every call up front, then drain with the single worker so the
	// configured order is the execution order.
	workChan := make(chan workItem, len(doc.APIs))
	for i, api := range doc.APIs {
		workChan <- workItem{idx: i, api: api}
	}
	close(workChan)

	g, gCtx := errgroup.WithContext(ctx)
	for i := 0; i < batchWorkers; i++ {
		g.Go(func() error {
			return b.worker(gCtx, log, version, outputDir, timing, workChan, results)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	batchResult := &BatchResult{
		Version:   version,
		RunID:     runID,
		OutputDir: outputDir,
		Results:   results,
		Duration:  time.Since(start),
	}

	log.WithFields(logrus.Fields{
		"total":     len(results),
		"succeeded": batchResult.Succeeded(),
		"failed":    batchResult.Failed(),
		"duration":  batchResult.Duration,
	}).Info("fetch batch complete")

	return batchResult, nil
}

// worker drains the queue, executing and persisting one call at a time.
func (b *Batch) worker(
	ctx context.Context,
	log logrus.FieldLogger,
	version, outputDir string,
	timing *TimingReport,
	workChan <-chan workItem,
	results []*Result,
) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case item, ok := <-workChan:
			if !ok {
				return nil
			}

			result := b.executor.Execute(ctx, version, item.api)
			results[item.idx] = result

			// Failed calls still get their timing row; they just write no file.
			if err := timing.Record(result.API, result.Elapsed); err != nil {
				return err
			}

			if !result.OK() {
				continue
			}

			path := filepath.Join(outputDir, result.API+".json")
			if err := writeResponse(path, result.Body); err != nil {
				return fmt.Errorf("writing response for %s: %w", result.API, err)
			}

			log.WithFields(logrus.Fields{
				"api":        result.API,
				"file":       path,
				"elapsed_ms": result.ElapsedMs(),
			}).Info("fetched and saved response")
		}
	}
}

// writeResponse persists the body verbatim, reformatted with 2-space
// indentation. pretty keeps the response's own key order.
func writeResponse(path string, body []byte) error {
	return os.WriteFile(path, pretty.Pretty(body), 0o644) //nolint:gosec // G306: response corpus is meant to be readable
}
