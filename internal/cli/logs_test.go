package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackforge/forgectl/internal/steps"
	"github.com/stackforge/forgectl/internal/wizard"
)

func TestLatestMarkerDir(t *testing.T) {
	base := t.TempDir()
	for _, name := range []string{
		".forgectl-markers-1700000000",
		".forgectl-markers-1700000500",
		".forgectl-markers-1700000100",
		"unrelated",
	} {
		require.NoError(t, os.Mkdir(filepath.Join(base, name), 0o755))
	}
	// A file with a matching prefix must be ignored.
	require.NoError(t, os.WriteFile(filepath.Join(base, ".forgectl-markers-9999999999"), nil, 0o644))

	dir, err := latestMarkerDir(base)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, ".forgectl-markers-1700000500"), dir)
}

func TestLatestMarkerDirEmpty(t *testing.T) {
	_, err := latestMarkerDir(t.TempDir())
	assert.Error(t, err)
}

func TestFillStepNames(t *testing.T) {
	summary := []steps.Step{
		{Ordinal: 1, Status: steps.StatusComplete},
		{Ordinal: 3, Name: "Custom", Status: steps.StatusFailed},
		{Ordinal: 99, Status: steps.StatusStarted},
	}

	fillStepNames(summary)

	assert.Equal(t, wizard.StepNames[0], summary[0].Name)
	// An already known name is kept.
	assert.Equal(t, "Custom", summary[1].Name)
	// Ordinals outside the fixed sequence stay unnamed.
	assert.Empty(t, summary[2].Name)
}
