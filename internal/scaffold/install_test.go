package scaffold

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackforge/forgectl/internal/config"
)

func TestInstallUsesFirstAvailableTool(t *testing.T) {
	var ran []string
	installer := &ToolInstaller{
		available: func(name string) bool { return name == "yarn" || name == "pnpm" },
		runTool: func(_ context.Context, _, name string, _ []string) error {
			ran = append(ran, name)
			return nil
		},
	}

	tool, err := installer.Install(context.Background(), &config.Framework{Runtime: config.RuntimeNode}, "/tmp/proj")
	require.NoError(t, err)
	// npm is missing, so the chain falls back to yarn; pnpm is never tried.
	assert.Equal(t, "yarn", tool)
	assert.Equal(t, []string{"yarn"}, ran)
}

func TestInstallFailsWhenNoToolAvailable(t *testing.T) {
	installer := &ToolInstaller{
		available: func(string) bool { return false },
		runTool: func(context.Context, string, string, []string) error {
			t.Fatal("no tool should run")
			return nil
		},
	}

	_, err := installer.Install(context.Background(), &config.Framework{Runtime: config.RuntimePython}, "/tmp/proj")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pip3")
}

func TestInstallPropagatesToolFailure(t *testing.T) {
	installer := &ToolInstaller{
		available: func(string) bool { return true },
		runTool: func(context.Context, string, string, []string) error {
			return errors.New("exit status 1")
		},
	}

	tool, err := installer.Install(context.Background(), &config.Framework{Runtime: config.RuntimePHP}, "/tmp/proj")
	require.Error(t, err)
	assert.Equal(t, "composer", tool)
}

func TestInstallUnknownRuntime(t *testing.T) {
	installer := &ToolInstaller{available: func(string) bool { return true }}
	_, err := installer.Install(context.Background(), &config.Framework{Runtime: config.Runtime("ruby")}, "")
	assert.Error(t, err)
}
