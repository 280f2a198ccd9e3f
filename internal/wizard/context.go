// Package wizard drives the fixed step sequence that turns a framework
// choice into a configured project directory.
package wizard

import (
	"path/filepath"

	"github.com/stackforge/forgectl/internal/config"
	"github.com/stackforge/forgectl/internal/envfile"
)

// DatabaseSettings holds the database inputs for the configuration step.
// Defaults come from the framework catalog; the prompt or flags may override
// any of them.
type DatabaseSettings struct {
	// Scheme is the connection URI scheme.
	Scheme string
	// Host is the database host.
	Host string
	// Port is the database port; empty omits it from the URI.
	Port string
	// User is the database user.
	User string
	// Name is the database name, defaulted from the project name.
	Name string
}

// RunContext carries the run-scoped selections and results through the step
// sequence. It is owned by the Orchestrator and passed explicitly; nothing
// in the wizard reads ambient global state.
type RunContext struct {
	// Framework is the selected stack.
	Framework *config.Framework
	// Role is the selected project role (fullstack, api, frontend).
	Role string
	// ProjectName is the directory and package name for the new project.
	ProjectName string
	// TargetDir is the absolute directory the project is created in.
	TargetDir string
	// ProjectDir is the final project directory after the source step; it
	// may differ from TargetDir when a template generator relocates it.
	ProjectDir string
	// CloneURL is the resolved starter repository URL, when cloning.
	CloneURL string

	// Database holds the database configuration inputs.
	Database DatabaseSettings

	// FollowUp collects the commands listed at the end of the run.
	FollowUp []string
	// EnvValues holds the resolved env file for the summary step.
	EnvValues envfile.Values
	// Warnings collects non-fatal issues surfaced during the run.
	Warnings []string
}

// EnvPath returns the project's env file location.
func (rc *RunContext) EnvPath() string {
	return filepath.Join(rc.ProjectDir, ".env")
}
