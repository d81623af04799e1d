package apidef

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return log
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "v1.json", `{
  "version": "v1",
  "apis": [
    {
      "name": "users",
      "url": "http://localhost:8080/users",
      "method": "GET",
      "headers": {"Authorization": "Bearer abc"}
    },
    {
      "name": "create-user",
      "url": "http://localhost:8080/users",
      "method": "POST",
      "headers": {},
      "params": {"name": "alice", "age": 30}
    }
  ]
}`)

	doc, err := NewLoader(newTestLogger()).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "v1", doc.Version)
	require.Len(t, doc.APIs, 2)

	assert.Equal(t, "users", doc.APIs[0].Name)
	assert.Equal(t, http.MethodGet, doc.APIs[0].Method)
	assert.Equal(t, "Bearer abc", doc.APIs[0].Headers["Authorization"])

	assert.Equal(t, "create-user", doc.APIs[1].Name)
	assert.Equal(t, http.MethodPost, doc.APIs[1].Method)
	assert.Equal(t, "alice", doc.APIs[1].Params["name"])
}

func TestLoadJSON5(t *testing.T) {
	path := writeConfig(t, "v1.json5", `{
  // comments are fine in hand-maintained call lists
  version: "v1",
  apis: [
    {name: "status", url: "http://localhost:8080/status", method: "GET", headers: {}},
  ],
}`)

	doc, err := NewLoader(newTestLogger()).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "v1", doc.Version)
	require.Len(t, doc.APIs, 1)
	assert.Equal(t, "status", doc.APIs[0].Name)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "v2.yaml", `version: v2
apis:
  - name: status
    url: http://localhost:8080/status
    method: GET
    headers:
      X-Tenant: acme
  - name: search
    url: http://localhost:8080/search
    method: POST
    headers: {}
    params:
      query: drift
`)

	doc, err := NewLoader(newTestLogger()).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "v2", doc.Version)
	require.Len(t, doc.APIs, 2)
	assert.Equal(t, "acme", doc.APIs[0].Headers["X-Tenant"])
	assert.Equal(t, "drift", doc.APIs[1].Params["query"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader(newTestLogger()).Load(filepath.Join(t.TempDir(), "nope.json"))

	assert.ErrorIs(t, err, errConfigNotFound)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeConfig(t, "broken.json", `{"version": "v1", "apis": [`)

	_, err := NewLoader(newTestLogger()).Load(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, errConfigNotFound)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeConfig(t, "calls.toml", `version = "v1"`)

	_, err := NewLoader(newTestLogger()).Load(path)
	assert.ErrorIs(t, err, errUnsupportedFormat)
}

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "missing version",
			content: `{"apis": [{"name": "a", "url": "http://x/y", "method": "GET", "headers": {}}]}`,
			wantErr: errVersionRequired,
		},
		{
			name:    "no apis",
			content: `{"version": "v1", "apis": []}`,
			wantErr: errNoAPIsDefined,
		},
		{
			name:    "missing name",
			content: `{"version": "v1", "apis": [{"url": "http://x/y", "method": "GET", "headers": {}}]}`,
			wantErr: errAPINameRequired,
		},
		{
			name:    "missing url",
			content: `{"version": "v1", "apis": [{"name": "a", "method": "GET", "headers": {}}]}`,
			wantErr: errAPIURLRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, "config.json", tt.content)

			_, err := NewLoader(newTestLogger()).Load(path)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadDefaultsMethodToGet(t *testing.T) {
	path := writeConfig(t, "v1.json", `{
  "version": "v1",
  "apis": [{"name": "a", "url": "http://x/y", "headers": {}}]
}`)

	doc, err := NewLoader(newTestLogger()).Load(path)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, doc.APIs[0].Method)
}

func TestLoadDuplicateNamesAllowed(t *testing.T) {
	// Duplicate names collide on the response filename. The loader warns
	// but keeps the document loadable, preserving last-write-wins.
	path := writeConfig(t, "v1.json", `{
  "version": "v1",
  "apis": [
    {"name": "a", "url": "http://x/1", "method": "GET", "headers": {}},
    {"name": "a", "url": "http://x/2", "method": "GET", "headers": {}}
  ]
}`)

	doc, err := NewLoader(newTestLogger()).Load(path)
	require.NoError(t, err)
	assert.Len(t, doc.APIs, 2)
}
