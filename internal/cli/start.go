package cli

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stackforge/forgectl/internal/cleanup"
	"github.com/stackforge/forgectl/internal/config"
	"github.com/stackforge/forgectl/internal/envmerge"
	"github.com/stackforge/forgectl/internal/logging"
	"github.com/stackforge/forgectl/internal/normalize"
	"github.com/stackforge/forgectl/internal/prompt"
	"github.com/stackforge/forgectl/internal/registry"
	"github.com/stackforge/forgectl/internal/runner"
	"github.com/stackforge/forgectl/internal/scaffold"
	"github.com/stackforge/forgectl/internal/secrets"
	"github.com/stackforge/forgectl/internal/steps"
	"github.com/stackforge/forgectl/internal/wizard"
)

// newStartCommand creates the "start" command that runs the full wizard.
func newStartCommand(opts *Options) *cobra.Command {
	var (
		framework   string
		name        string
		dir         string
		role        string
		dbName      string
		yes         bool
		offline     bool
		keepMarkers bool
	)

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Run the project-scaffolding wizard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())

			envVars := startEnv{}
			if err := parseEnv(&envVars); err != nil {
				return err
			}
			if !cmd.Flags().Changed("framework") && envVars.Framework != "" {
				framework = envVars.Framework
			}
			if !cmd.Flags().Changed("name") && envVars.Name != "" {
				name = envVars.Name
			}
			if !cmd.Flags().Changed("dir") && envVars.Dir != "" {
				dir = envVars.Dir
			}
			if !cmd.Flags().Changed("role") && envVars.Role != "" {
				role = envVars.Role
			}
			if !cmd.Flags().Changed("yes") && envVars.Yes {
				yes = true
			}

			cat, err := config.Load(opts.CatalogPath)
			if err != nil {
				return err
			}

			var fw *config.Framework
			if framework != "" {
				fw, err = cat.Resolve(framework)
			} else {
				fw, err = prompt.SelectFramework(cat)
			}
			if err != nil {
				return err
			}

			if name == "" {
				if name, err = prompt.AskProjectName(); err != nil {
					return err
				}
			} else if err := prompt.ValidateProjectName(name); err != nil {
				return err
			}

			if role == "" {
				if role, err = prompt.SelectRole(); err != nil {
					return err
				}
			}

			target, err := filepath.Abs(filepath.Join(dir, name))
			if err != nil {
				return err
			}

			if !yes {
				ok, err := prompt.Confirm("Create " + fw.Label + " project in " + target + "?")
				if err != nil {
					return err
				}
				if !ok {
					logger.Info("aborted by user")
					return nil
				}
			}

			// A signal releases registered temp resources and removes the
			// marker directory like any other exit path.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			resources := cleanup.NewRegistry()
			defer resources.ReleaseAll()

			base, err := markerBase(opts)
			if err != nil {
				return err
			}
			tracker, err := steps.NewTracker(base)
			if err != nil {
				return err
			}
			if !keepMarkers {
				defer tracker.Cleanup()
			}
			logger.Debug("marker directory created", "dir", tracker.Dir())

			normalizer := normalize.New()
			if len(cat.ProjectMarkers) > 0 {
				normalizer.Markers = cat.ProjectMarkers
			}
			normalizer.Resources = resources

			var checker wizard.RepoChecker
			if !offline {
				checker = registry.NewClient(logger, nil)
			}

			orch := &wizard.Orchestrator{
				Tracker:    tracker,
				Merger:     envmerge.New(secrets.New()).WithResources(resources),
				Normalizer: normalizer,
				Cloner:     scaffold.NewGitCloner(runner.New("", logging.NewWriter(logger, "git"))),
				Generator:  scaffold.NewBuiltinGenerator(),
				Installer: scaffold.NewToolInstaller(func(cwd string) *runner.Runner {
					return runner.New(cwd, logging.NewWriter(logger, "installer"))
				}),
				Lister:   scaffold.NewCatalogLister(),
				Registry: checker,
				Logger:   logger,
			}

			db := wizard.DatabaseSettings{
				Scheme: fw.Database.Scheme,
				Host:   fw.Database.Host,
				Port:   fw.Database.Port,
				User:   fw.Database.User,
				Name:   name,
			}
			if dbName != "" {
				db.Name = dbName
			}

			rc := &wizard.RunContext{
				Framework:   fw,
				Role:        role,
				ProjectName: name,
				TargetDir:   target,
				Database:    db,
			}

			runErr := orch.Run(ctx, rc)

			summary, err := tracker.Summary()
			if err != nil {
				logger.Warn("could not read step summary", "error", err)
			} else {
				renderSummary(summary)
			}
			renderOutcome(rc)

			return runErr
		},
	}

	cmd.Flags().StringVarP(&framework, "framework", "f", "", "Framework name (skips the interactive selection)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Project name")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Parent directory for the new project")
	cmd.Flags().StringVar(&role, "role", "", "Project role (fullstack, api, frontend)")
	cmd.Flags().StringVar(&dbName, "db-name", "", "Database name (default: project name)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmations")
	cmd.Flags().BoolVar(&offline, "offline", false, "Skip the starter repository lookup")
	cmd.Flags().BoolVar(&keepMarkers, "keep-markers", false, "Keep the marker directory for later inspection via 'forgectl logs'")

	return cmd
}
