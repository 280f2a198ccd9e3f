package scaffold_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackforge/forgectl/internal/runner"
	"github.com/stackforge/forgectl/internal/scaffold"
)

func TestGitClonerVersion(t *testing.T) {
	if !runner.Available("git") {
		t.Skip("git not installed")
	}

	cloner := scaffold.NewGitCloner(runner.New("", nil))
	version, err := cloner.Version(context.Background())
	require.NoError(t, err)
	assert.Contains(t, version, "git version")
}
