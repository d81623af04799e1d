// Package fetch implements the response capture pipeline: executing the
// configured calls of one version sequentially and persisting each body
// alongside a shared timing report.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"

	"github.com/uron802/api-diff-checker/internal/apidef"
)

// FailureReason classifies why a call produced no usable response.
type FailureReason string

const (
	// FailureRequest covers building or sending the request, including
	// transport errors.
	FailureRequest FailureReason = "request"
	// FailureStatus marks a non-2xx response.
	FailureStatus FailureReason = "status"
	// FailureBody marks a body that could not be read or is not valid JSON.
	FailureBody FailureReason = "body"
)

// Result carries either the raw JSON body of a successful call or a typed
// failure reason. Elapsed is recorded for success and failure alike.
type Result struct {
	API     string
	Body    []byte
	Elapsed time.Duration
	Failure FailureReason
	Err     error
}

// OK reports whether the call produced a usable response body.
func (r *Result) OK() bool {
	return r.Err == nil
}

// ElapsedMs returns the wall-clock time of the call in milliseconds.
func (r *Result) ElapsedMs() int64 {
	return r.Elapsed.Milliseconds()
}

// Executor performs a single configured HTTP call.
type Executor interface {
	Execute(ctx context.Context, version string, api *apidef.API) *Result
}

type executor struct {
	client *http.Client
	log    logrus.FieldLogger
}

// NewExecutor creates an executor around an explicitly constructed client.
// There is deliberately no package-level client or default singleton.
func NewExecutor(log logrus.FieldLogger, client *http.Client) Executor {
	if client == nil {
		client = &http.Client{}
	}

	return &executor{
		client: client,
		log:    log.WithField("component", "fetch_executor"),
	}
}

// Execute performs one call and never propagates its failure: a broken
// endpoint is logged and reported through the Result so the rest of the
// batch still runs.
func (e *executor) Execute(ctx context.Context, version string, api *apidef.API) *Result {
	start := time.Now()
	body, failure, err := e.do(ctx, api)

	result := &Result{
		API:     api.Name,
		Body:    body,
		Elapsed: time.Since(start),
		Failure: failure,
		Err:     err,
	}

	if err != nil {
		e.log.WithError(err).WithFields(logrus.Fields{
			"version": version,
			"api":     api.Name,
			"url":     api.URL,
			"reason":  string(failure),
		}).Warn("request failed")
	}

	return result
}

func (e *executor) do(ctx context.Context, api *apidef.API) ([]byte, FailureReason, error) {
	var reqBody io.Reader

	// GET carries no body; any other method sends params as the JSON body.
	// A present-but-empty params map still sends {}.
	if api.Method != http.MethodGet && api.Params != nil {
		payload, err := json.Marshal(api.Params)
		if err != nil {
			return nil, FailureRequest, fmt.Errorf("marshaling params: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, api.Method, api.URL, reqBody)
	if err != nil {
		return nil, FailureRequest, fmt.Errorf("creating request: %w", err)
	}

	// Content-Type first so a configured header can override it; configured
	// headers are otherwise forwarded verbatim.
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range api.Headers {
		req.Header.Set(k, v)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, FailureRequest, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, FailureStatus, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, FailureBody, fmt.Errorf("reading response body: %w", err)
	}

	if err := fastjson.ValidateBytes(body); err != nil {
		return nil, FailureBody, fmt.Errorf("response body is not valid json: %w", err)
	}

	return body, "", nil
}
