// Package scaffold holds the external collaborators the wizard drives:
// cloning, template generation, dependency installation and follow-up
// command listing. The orchestrator consumes them through these narrow
// interfaces so tool specifics never leak into step logic.
package scaffold

import (
	"context"

	"github.com/stackforge/forgectl/internal/config"
)

// Cloner fetches a starter repository into a target directory.
type Cloner interface {
	Clone(ctx context.Context, url, targetDir string) error
}

// TemplateGenerator materializes a builtin starter tree for a framework and
// returns the final project directory.
type TemplateGenerator interface {
	Scaffold(ctx context.Context, fw *config.Framework, name, dir string) (string, error)
}

// DependencyInstaller installs a framework's dependencies in cwd and returns
// the tool that was used.
type DependencyInstaller interface {
	Install(ctx context.Context, fw *config.Framework, cwd string) (string, error)
}

// CommandLister returns the follow-up commands for a framework. Purely
// informational.
type CommandLister interface {
	List(fw *config.Framework) []string
}
