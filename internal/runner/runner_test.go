package runner_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackforge/forgectl/internal/runner"
)

func TestAvailable(t *testing.T) {
	assert.True(t, runner.Available("sh"))
	assert.False(t, runner.Available("definitely-not-a-binary-7f3a"))
}

func TestRunStreamsOutput(t *testing.T) {
	var out bytes.Buffer
	r := runner.New(t.TempDir(), &out)

	err := r.Run(context.Background(), "sh", "-c", "echo hello; echo oops >&2")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "hello")
	assert.Contains(t, out.String(), "oops")
}

func TestRunReportsFailure(t *testing.T) {
	r := runner.New("", nil)
	err := r.Run(context.Background(), "sh", "-c", "exit 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sh")
}

func TestRunAndCaptureSeparatesStreams(t *testing.T) {
	var errOut bytes.Buffer
	r := runner.New("", &errOut)

	stdout, err := r.RunAndCapture(context.Background(), "sh", "-c", "echo captured; echo noise >&2")
	require.NoError(t, err)
	assert.Equal(t, "captured\n", string(stdout))
	assert.Contains(t, errOut.String(), "noise")
}

func TestRunUsesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	r := runner.New(dir, nil)

	stdout, err := r.RunAndCapture(context.Background(), "pwd")
	require.NoError(t, err)
	assert.Contains(t, string(stdout), dir)
}
