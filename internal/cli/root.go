// Package cli defines the command-line interface for forgectl.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stackforge/forgectl/internal/logging"
)

// Options stores global CLI options shared between commands.
type Options struct {
	CatalogPath string
	MarkerBase  string
	LogLevel    logging.Level
}

// Execute builds the root command, runs it with the provided args and logger, and returns any error.
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}

	rootOpts := &Options{
		LogLevel: logging.LevelInfo,
	}

	envDefaults := baseEnv{}
	if err := parseEnv(&envDefaults); err != nil {
		return err
	}
	rootOpts.CatalogPath = envDefaults.CatalogPath
	rootOpts.MarkerBase = envDefaults.MarkerBase

	rootCmd := newRootCommand(rootOpts, logger, envDefaults)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

// newRootCommand constructs the root cobra.Command with global flags and subcommands.
func newRootCommand(opts *Options, logger *slog.Logger, envDefaults baseEnv) *cobra.Command {
	defaultLevel := "info"
	if envDefaults.LogLevel != "" {
		defaultLevel = envDefaults.LogLevel
	}

	cmd := &cobra.Command{
		Use:   "forgectl",
		Short: "forgectl is an interactive project-scaffolding wizard",
		Long:  "forgectl asks for a tech stack, clones or scaffolds a project, writes environment and database configuration, installs dependencies and prints follow-up commands.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := logging.ParseLevel(cmd.Flag("log-level").Value.String())
			opts.LogLevel = level
			logger = logging.NewLogger(os.Stderr, level)
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			logger.Debug("logger initialized", "level", level)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.CatalogPath, "catalog", "c", opts.CatalogPath, "Path to a frameworks.yaml catalog (default: user catalog or embedded)")
	cmd.PersistentFlags().StringVar(&opts.MarkerBase, "marker-dir", opts.MarkerBase, "Base directory for step marker directories (default: home)")
	cmd.PersistentFlags().String("log-level", defaultLevel, "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newStartCommand(opts),
		newLogsCommand(opts),
		newFrameworksCommand(opts),
	)

	return cmd
}

// loggerKey is a private context key used to store a logger in command contexts.
type loggerKey struct{}

// LoggerFromContext extracts a logger from the context or falls back to a default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo)
}

// markerBase resolves the directory marker dirs are created under.
func markerBase(opts *Options) (string, error) {
	if opts.MarkerBase != "" {
		return opts.MarkerBase, nil
	}
	return os.UserHomeDir()
}
