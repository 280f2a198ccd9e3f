package wizard

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/stackforge/forgectl/internal/envfile"
	"github.com/stackforge/forgectl/internal/envmerge"
	"github.com/stackforge/forgectl/internal/normalize"
	"github.com/stackforge/forgectl/internal/registry"
	"github.com/stackforge/forgectl/internal/scaffold"
	"github.com/stackforge/forgectl/internal/steps"
)

// Section headers the wizard owns in the project's env file.
const (
	appSectionHeader = "# Application Configuration"
	dbSectionHeader  = "# Database Configuration"
)

// RepoChecker validates a starter repository before cloning. Advisory only.
type RepoChecker interface {
	Lookup(ctx context.Context, slug string) (*registry.Repo, error)
}

// toolChecker is implemented by cloners that can verify their underlying
// tool, so preflight can fail before any directory is created.
type toolChecker interface {
	Version(ctx context.Context) (string, error)
}

// StepNames lists the fixed wizard steps in ordinal order.
var StepNames = []string{
	"Preflight",
	"Target Directory",
	"Project Source",
	"Normalize Layout",
	"Environment File",
	"Database Configuration",
	"Dependencies",
	"Follow-up Commands",
	"Summary",
}

// Orchestrator sequences the wizard steps, records each transition in the
// step tracker and applies the fatal/non-fatal failure policy. It is the
// single place that writes user-facing failure messages; components return
// typed errors and never print.
type Orchestrator struct {
	Tracker    *steps.Tracker
	Merger     *envmerge.Merger
	Normalizer *normalize.Normalizer
	Cloner     scaffold.Cloner
	Generator  scaffold.TemplateGenerator
	Installer  scaffold.DependencyInstaller
	Lister     scaffold.CommandLister
	Registry   RepoChecker
	Logger     *slog.Logger
}

type stepDef struct {
	name string
	run  func(ctx context.Context, ordinal int, rc *RunContext) error
}

// sequence returns the fixed ordered step list. Ordinals are the 1-based
// positions within this slice.
func (o *Orchestrator) sequence() []stepDef {
	runs := []func(context.Context, int, *RunContext) error{
		o.stepPreflight,
		o.stepTargetDir,
		o.stepProjectSource,
		o.stepNormalize,
		o.stepEnvFile,
		o.stepDatabase,
		o.stepDependencies,
		o.stepFollowUp,
		o.stepSummary,
	}
	defs := make([]stepDef, len(runs))
	for i, run := range runs {
		defs[i] = stepDef{name: StepNames[i], run: run}
	}
	return defs
}

// Run executes the full step sequence against rc. It returns a fatal
// StepError when a prerequisite step failed and the run halted; non-fatal
// failures are logged, recorded in markers and in rc.Warnings, and do not
// affect the return value.
func (o *Orchestrator) Run(ctx context.Context, rc *RunContext) error {
	for i, def := range o.sequence() {
		ordinal := i + 1
		if err := o.Tracker.Track(ordinal, def.name); err != nil {
			return fatal(ordinal, "record step start", err)
		}
		o.Logger.Info("step started", "ordinal", ordinal, "name", def.name)

		err := def.run(ctx, ordinal, rc)
		if err == nil {
			if err := o.Tracker.Finish(ordinal, steps.StatusComplete); err != nil {
				return fatal(ordinal, "record step completion", err)
			}
			continue
		}

		_ = o.Tracker.Finish(ordinal, steps.StatusFailed)
		if IsFatal(err) {
			o.Logger.Error("step failed, halting run", "ordinal", ordinal, "name", def.name, "error", err)
			return err
		}
		o.Logger.Warn("step failed, continuing", "ordinal", ordinal, "name", def.name, "error", err)
		rc.Warnings = append(rc.Warnings, err.Error())
	}
	return nil
}

// stepPreflight verifies required tools and resolves the starter repository.
func (o *Orchestrator) stepPreflight(ctx context.Context, ordinal int, rc *RunContext) error {
	if rc.Framework == nil {
		return fatal(ordinal, "no framework selected", nil)
	}

	if slug := rc.Framework.StarterRepo; slug != "" {
		// A clone flow needs git; fail here rather than after the target
		// directory has been created.
		if checker, ok := o.Cloner.(toolChecker); ok {
			version, err := checker.Version(ctx)
			if err != nil {
				return fatal(ordinal, "git is required to clone the starter repository", err)
			}
			o.Logger.Debug("git available", "version", version)
		}

		rc.CloneURL = fmt.Sprintf("https://github.com/%s.git", slug)
		if o.Registry != nil {
			repo, err := o.Registry.Lookup(ctx, slug)
			switch {
			case err == nil:
				rc.CloneURL = repo.CloneURL
			case registry.IsNotFound(err):
				// Fall back to the builtin template rather than cloning a
				// repository that is known to be missing.
				rc.CloneURL = ""
				return nonFatal(ordinal, fmt.Sprintf("starter repository %s does not exist, using builtin template", slug), err)
			default:
				// Network trouble is advisory; the clone step decides.
				return nonFatal(ordinal, "starter repository lookup failed", err)
			}
		}
	}
	return nil
}

// stepTargetDir creates the target directory. An existing non-empty
// directory is a warning, not an abort: scaffolding into it is allowed.
func (o *Orchestrator) stepTargetDir(_ context.Context, ordinal int, rc *RunContext) error {
	if err := os.MkdirAll(rc.TargetDir, 0o755); err != nil {
		return fatal(ordinal, fmt.Sprintf("cannot create target directory %s", rc.TargetDir), err)
	}
	entries, err := os.ReadDir(rc.TargetDir)
	if err != nil {
		return fatal(ordinal, "cannot inspect target directory", err)
	}
	if len(entries) > 0 {
		o.Logger.Warn("target directory is not empty, continuing", "dir", rc.TargetDir, "entries", len(entries))
	}
	rc.ProjectDir = rc.TargetDir
	return nil
}

// stepProjectSource clones the starter repository or scaffolds the builtin
// template. Failure here leaves nothing to configure, so it is fatal.
func (o *Orchestrator) stepProjectSource(ctx context.Context, ordinal int, rc *RunContext) error {
	if rc.CloneURL != "" {
		if err := o.Cloner.Clone(ctx, rc.CloneURL, rc.TargetDir); err != nil {
			return fatal(ordinal, "clone failed", err)
		}
		return nil
	}
	finalDir, err := o.Generator.Scaffold(ctx, rc.Framework, rc.ProjectName, rc.TargetDir)
	if err != nil {
		return fatal(ordinal, "scaffold failed", err)
	}
	rc.ProjectDir = finalDir
	return nil
}

// stepNormalize repairs an accidental project/project nesting. The nested
// tree is still usable, so failure is non-fatal.
func (o *Orchestrator) stepNormalize(_ context.Context, ordinal int, rc *RunContext) error {
	res, err := o.Normalizer.Normalize(rc.ProjectDir)
	if err != nil {
		return nonFatal(ordinal, "directory normalization failed", err)
	}
	for _, w := range res.Warnings {
		o.Logger.Warn("normalize warning", "detail", w)
		rc.Warnings = append(rc.Warnings, w)
	}
	if res.Changed {
		o.Logger.Info("flattened nested project directory", "dir", rc.ProjectDir)
	}
	return nil
}

// stepEnvFile ensures the project env file exists and owns its application
// section. The run can continue without it.
func (o *Orchestrator) stepEnvFile(_ context.Context, ordinal int, rc *RunContext) error {
	sec := envmerge.Section{
		Header: appSectionHeader,
		Entries: []envmerge.Entry{
			{Key: "APP_NAME", Value: rc.ProjectName},
			{Key: "APP_KEY", Policy: envmerge.PolicyHex32},
		},
	}
	if _, err := o.Merger.Merge(rc.EnvPath(), sec, rc.Framework.EnvTemplate); err != nil {
		return nonFatal(ordinal, "environment file setup failed", err)
	}
	return nil
}

// stepDatabase merges the database section with generated credentials and a
// derived connection URI. Fatal to this step, non-fatal to the run.
func (o *Orchestrator) stepDatabase(_ context.Context, ordinal int, rc *RunContext) error {
	db := rc.Database
	sec := envmerge.Section{
		Header: dbSectionHeader,
		Entries: []envmerge.Entry{
			{Key: "DB_CONNECTION", Value: db.Scheme},
			{Key: "DB_HOST", Value: db.Host},
			{Key: "DB_PORT", Value: db.Port},
			{Key: "DB_DATABASE", Value: db.Name},
			{Key: "DB_USERNAME", Value: db.User},
			{Key: "DB_PASSWORD", Policy: envmerge.PolicyBase64_12},
		},
		Derive: func(resolved envfile.Values) []envmerge.Entry {
			uri := envmerge.ConnectionURI(db.Scheme, db.User, resolved["DB_PASSWORD"], db.Host, db.Port, db.Name)
			return []envmerge.Entry{{Key: "DATABASE_URL", Value: uri}}
		},
	}
	if _, err := o.Merger.Merge(rc.EnvPath(), sec, rc.Framework.EnvTemplate); err != nil {
		return nonFatal(ordinal, "database configuration failed", err)
	}
	return nil
}

// stepDependencies installs project dependencies with whatever package
// manager is available. A missing or failing tool is non-fatal.
func (o *Orchestrator) stepDependencies(ctx context.Context, ordinal int, rc *RunContext) error {
	tool, err := o.Installer.Install(ctx, rc.Framework, rc.ProjectDir)
	if err != nil {
		return nonFatal(ordinal, "dependency installation failed", err)
	}
	o.Logger.Info("dependencies installed", "tool", tool)
	return nil
}

// stepFollowUp collects the framework's follow-up commands.
func (o *Orchestrator) stepFollowUp(_ context.Context, _ int, rc *RunContext) error {
	rc.FollowUp = o.Lister.List(rc.Framework)
	return nil
}

// stepSummary resolves the final env values for display.
func (o *Orchestrator) stepSummary(_ context.Context, ordinal int, rc *RunContext) error {
	values, err := envfile.LoadValues(rc.EnvPath())
	if err != nil {
		return nonFatal(ordinal, "env file could not be read for summary", err)
	}
	rc.EnvValues = values
	return nil
}
