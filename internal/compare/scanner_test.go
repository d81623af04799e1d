package compare

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_Scan_IdenticalDirectories(t *testing.T) {
	t.Parallel()

	dir1 := t.TempDir()
	dir2 := t.TempDir()

	for _, name := range []string{"users.json", "items.json", "orders.json"} {
		writeFile(t, dir1, name, `{"status":"ok"}`)
		writeFile(t, dir2, name, `{"status":"ok"}`)
	}

	scanner := NewScanner(newTestLogger(), NewComparer(newTestLogger()))

	result, err := scanner.Scan(dir1, dir2)
	require.NoError(t, err)

	require.Len(t, result.Files, 3)
	assert.Equal(t, 3, result.Matched())
	assert.Equal(t, 0, result.Differed())
	assert.Equal(t, 0, result.Missing())
}

func TestScanner_Scan_SelfCompareMatches(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "users.json", `{"users":[{"id":1},{"id":2}]}`)
	writeFile(t, dir, "items.json", `[1,2,3]`)

	scanner := NewScanner(newTestLogger(), NewComparer(newTestLogger()))

	result, err := scanner.Scan(dir, dir)
	require.NoError(t, err)

	require.Len(t, result.Files, 2)
	assert.Equal(t, 2, result.Matched())
}

func TestScanner_Scan_UnionAndMissingSides(t *testing.T) {
	t.Parallel()

	dir1 := t.TempDir()
	dir2 := t.TempDir()

	writeFile(t, dir1, "common.json", `{"v":1}`)
	writeFile(t, dir2, "common.json", `{"v":2}`)
	writeFile(t, dir1, "endpoint1.json", `{"only":"v1"}`)
	writeFile(t, dir2, "extra.json", `{"only":"v2"}`)

	scanner := NewScanner(newTestLogger(), NewComparer(newTestLogger()))

	result, err := scanner.Scan(dir1, dir2)
	require.NoError(t, err)

	// Union is visited in sorted filename order, each name exactly once.
	require.Len(t, result.Files, 3)
	assert.Equal(t, "common.json", result.Files[0].Name)
	assert.Equal(t, "endpoint1.json", result.Files[1].Name)
	assert.Equal(t, "extra.json", result.Files[2].Name)

	common := result.Files[0]
	assert.Equal(t, StatusDiffers, common.Status)
	assert.NotEmpty(t, common.Changes)

	onlyV1 := result.Files[1]
	assert.Equal(t, StatusMissingInV2, onlyV1.Status)
	assert.Equal(t, filepath.Join(dir2, "endpoint1.json"), onlyV1.Path2)

	onlyV2 := result.Files[2]
	assert.Equal(t, StatusMissingInV1, onlyV2.Status)
	assert.Equal(t, filepath.Join(dir1, "extra.json"), onlyV2.Path1)

	assert.Equal(t, 0, result.Matched())
	assert.Equal(t, 1, result.Differed())
	assert.Equal(t, 2, result.Missing())
}

func TestScanner_Scan_SharedNonJSONFileReportsBothMissing(t *testing.T) {
	t.Parallel()

	dir1 := t.TempDir()
	dir2 := t.TempDir()

	// A fetch run leaves response_times.csv next to the responses; the
	// scan does not filter by extension, so the pair collapses to a
	// both-missing report instead of aborting.
	writeFile(t, dir1, "response_times.csv", "API名,レスポンス時間(ms)\nusers,12\n")
	writeFile(t, dir2, "response_times.csv", "API名,レスポンス時間(ms)\nusers,15\n")

	scanner := NewScanner(newTestLogger(), NewComparer(newTestLogger()))

	result, err := scanner.Scan(dir1, dir2)
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.Equal(t, StatusBothMissing, result.Files[0].Status)
	assert.Equal(t, 1, result.Missing())
}

func TestScanner_Scan_MissingDirectory(t *testing.T) {
	t.Parallel()

	scanner := NewScanner(newTestLogger(), NewComparer(newTestLogger()))

	_, err := scanner.Scan(filepath.Join(t.TempDir(), "missing"), t.TempDir())
	require.Error(t, err)
}
