package scaffold

import (
	"context"
	"fmt"
	"strings"

	"github.com/stackforge/forgectl/internal/runner"
)

// GitCloner clones starter repositories with the git binary.
type GitCloner struct {
	run *runner.Runner
}

// NewGitCloner constructs a GitCloner using the given runner.
func NewGitCloner(run *runner.Runner) *GitCloner {
	return &GitCloner{run: run}
}

// Version reports the installed git version, or an error when the git
// binary is not on PATH. Used to verify git before a clone is attempted.
func (c *GitCloner) Version(ctx context.Context) (string, error) {
	if !runner.Available("git") {
		return "", fmt.Errorf("git binary not found on PATH")
	}
	out, err := c.run.RunAndCapture(ctx, "git", "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// Clone performs a shallow clone of url into targetDir.
func (c *GitCloner) Clone(ctx context.Context, url, targetDir string) error {
	if !runner.Available("git") {
		return fmt.Errorf("git binary not found on PATH")
	}
	if err := c.run.Run(ctx, "git", "clone", "--depth", "1", url, targetDir); err != nil {
		return fmt.Errorf("clone %q: %w", url, err)
	}
	return nil
}
