package cleanup_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackforge/forgectl/internal/cleanup"
)

func TestReleaseRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tmpfile")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	reg := cleanup.NewRegistry()
	h := reg.Register(path)
	h.Release()
	assert.NoFileExists(t, path)

	// Idempotent.
	h.Release()
}

func TestReleaseAllRemovesEverything(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a")
	emptyDir := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	require.NoError(t, os.Mkdir(emptyDir, 0o755))

	reg := cleanup.NewRegistry()
	reg.Register(file)
	reg.Register(emptyDir)
	reg.ReleaseAll()

	assert.NoFileExists(t, file)
	assert.NoDirExists(t, emptyDir)
}

func TestReleaseLeavesNonEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	holding := filepath.Join(dir, "holding")
	require.NoError(t, os.Mkdir(holding, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(holding, "keep"), nil, 0o644))

	reg := cleanup.NewRegistry()
	reg.Register(holding)
	reg.ReleaseAll()

	// Content mid-move must never be deleted.
	assert.FileExists(t, filepath.Join(holding, "keep"))
}
