package steps_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackforge/forgectl/internal/steps"
)

func TestTrackAndFinishWriteMarkers(t *testing.T) {
	base := t.TempDir()
	tracker, err := steps.NewTracker(base)
	require.NoError(t, err)

	require.NoError(t, tracker.Track(1, "Preflight"))
	require.NoError(t, tracker.Finish(1, steps.StatusComplete))

	assert.FileExists(t, filepath.Join(tracker.Dir(), "step1_started"))
	assert.FileExists(t, filepath.Join(tracker.Dir(), "step1_complete"))
}

func TestResumeAfterFailure(t *testing.T) {
	tracker, err := steps.NewTracker(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, tracker.Track(3, "Project Source"))
	require.NoError(t, tracker.Finish(3, steps.StatusFailed))

	summary, err := tracker.Summary()
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, 3, summary[0].Ordinal)
	assert.Equal(t, steps.StatusFailed, summary[0].Status)

	// An explicit re-track moves the failed step back to started.
	require.NoError(t, tracker.Track(3, "Project Source"))

	// A completed step cannot be re-entered.
	require.NoError(t, tracker.Finish(3, steps.StatusComplete))
	assert.Error(t, tracker.Track(3, "Project Source"))
}

func TestFinishRequiresStartedStep(t *testing.T) {
	tracker, err := steps.NewTracker(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, tracker.Finish(1, steps.StatusComplete))

	require.NoError(t, tracker.Track(1, "Preflight"))
	assert.Error(t, tracker.Finish(1, steps.StatusStarted))
}

func TestSummaryReportsFurthestStatus(t *testing.T) {
	tracker, err := steps.NewTracker(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, tracker.Track(1, "Preflight"))
	require.NoError(t, tracker.Finish(1, steps.StatusComplete))
	require.NoError(t, tracker.Track(2, "Target Directory"))
	require.NoError(t, tracker.Finish(2, steps.StatusFailed))
	require.NoError(t, tracker.Track(2, "Target Directory"))
	require.NoError(t, tracker.Finish(2, steps.StatusComplete))
	require.NoError(t, tracker.Track(3, "Project Source"))

	summary, err := tracker.Summary()
	require.NoError(t, err)
	require.Len(t, summary, 3)
	assert.Equal(t, steps.StatusComplete, summary[0].Status)
	// Complete outranks the earlier failed marker for ordinal 2.
	assert.Equal(t, steps.StatusComplete, summary[1].Status)
	assert.Equal(t, steps.StatusStarted, summary[2].Status)
}

func TestOpenTrackerReadsExistingRun(t *testing.T) {
	tracker, err := steps.NewTracker(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, tracker.Track(1, "Preflight"))
	require.NoError(t, tracker.Finish(1, steps.StatusComplete))

	reopened, err := steps.OpenTracker(tracker.Dir())
	require.NoError(t, err)
	summary, err := reopened.Summary()
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, steps.StatusComplete, summary[0].Status)
}

func TestSummaryIgnoresForeignFiles(t *testing.T) {
	tracker, err := steps.NewTracker(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(tracker.Dir(), "README"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tracker.Dir(), "step9_bogus"), nil, 0o644))

	summary, err := tracker.Summary()
	require.NoError(t, err)
	assert.Empty(t, summary)
}

func TestCleanupRemovesMarkerDir(t *testing.T) {
	tracker, err := steps.NewTracker(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, tracker.Track(1, "Preflight"))

	tracker.Cleanup()
	assert.NoDirExists(t, tracker.Dir())
}

func TestStatusOrdering(t *testing.T) {
	assert.True(t, steps.StatusComplete.IsTerminal())
	assert.True(t, steps.StatusFailed.IsTerminal())
	assert.False(t, steps.StatusStarted.IsTerminal())
	assert.False(t, steps.StatusPending.IsTerminal())
}
