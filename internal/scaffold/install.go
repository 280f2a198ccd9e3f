package scaffold

import (
	"context"
	"fmt"
	"strings"

	"github.com/stackforge/forgectl/internal/config"
	"github.com/stackforge/forgectl/internal/runner"
)

// installCandidates maps a runtime to its tool fallback chain, tried in order.
var installCandidates = map[config.Runtime][]installTool{
	config.RuntimeNode: {
		{name: "npm", args: []string{"install"}},
		{name: "yarn", args: []string{"install"}},
		{name: "pnpm", args: []string{"install"}},
	},
	config.RuntimePHP: {
		{name: "composer", args: []string{"install", "--no-interaction"}},
	},
	config.RuntimePython: {
		{name: "pip3", args: []string{"install", "-r", "requirements.txt"}},
		{name: "pip", args: []string{"install", "-r", "requirements.txt"}},
	},
}

type installTool struct {
	name string
	args []string
}

// ToolInstaller installs dependencies with the first available package
// manager for the framework's runtime.
type ToolInstaller struct {
	available func(name string) bool
	runTool   func(ctx context.Context, cwd, name string, args []string) error
}

// NewToolInstaller constructs a ToolInstaller. newRunner builds a runner
// rooted at the project directory.
func NewToolInstaller(newRunner func(dir string) *runner.Runner) *ToolInstaller {
	return &ToolInstaller{
		available: runner.Available,
		runTool: func(ctx context.Context, cwd, name string, args []string) error {
			return newRunner(cwd).Run(ctx, name, args...)
		},
	}
}

// Install runs the first available tool of the runtime's fallback chain in
// cwd and returns the tool name. All candidates missing is an error the
// orchestrator treats as non-fatal.
func (i *ToolInstaller) Install(ctx context.Context, fw *config.Framework, cwd string) (string, error) {
	candidates := installCandidates[fw.Runtime]
	if len(candidates) == 0 {
		return "", fmt.Errorf("no installer known for runtime %q", fw.Runtime)
	}

	var missing []string
	for _, tool := range candidates {
		if !i.available(tool.name) {
			missing = append(missing, tool.name)
			continue
		}
		if err := i.runTool(ctx, cwd, tool.name, tool.args); err != nil {
			return tool.name, fmt.Errorf("%s install: %w", tool.name, err)
		}
		return tool.name, nil
	}
	return "", fmt.Errorf("no package manager available, tried %s", strings.Join(missing, ", "))
}
