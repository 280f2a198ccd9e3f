package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stackforge/forgectl/internal/steps"
	"github.com/stackforge/forgectl/internal/wizard"
)

// newLogsCommand creates the "logs" command that renders the step summary of
// a prior run from its marker directory.
func newLogsCommand(opts *Options) *cobra.Command {
	var markerDir string

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the step summary of a wizard run",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())

			dir := markerDir
			if dir == "" {
				base, err := markerBase(opts)
				if err != nil {
					return err
				}
				dir, err = latestMarkerDir(base)
				if err != nil {
					return err
				}
			}

			tracker, err := steps.OpenTracker(dir)
			if err != nil {
				return err
			}
			summary, err := tracker.Summary()
			if err != nil {
				return err
			}
			if len(summary) == 0 {
				logger.Info("no step markers found", "dir", dir)
				return nil
			}

			logger.Info("run summary", "dir", dir)
			fillStepNames(summary)
			renderSummary(summary)
			return nil
		},
	}

	cmd.Flags().StringVar(&markerDir, "markers", "", "Marker directory to inspect (default: most recent run)")

	return cmd
}

// fillStepNames supplies the fixed wizard step names for entries a reopened
// tracker cannot name from markers alone.
func fillStepNames(summary []steps.Step) {
	for i := range summary {
		if summary[i].Name != "" {
			continue
		}
		if n := summary[i].Ordinal; n >= 1 && n <= len(wizard.StepNames) {
			summary[i].Name = wizard.StepNames[n-1]
		}
	}
}

// latestMarkerDir returns the newest .forgectl-markers-* directory under base.
func latestMarkerDir(base string) (string, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return "", fmt.Errorf("read marker base %q: %w", base, err)
	}
	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), ".forgectl-markers-") {
			candidates = append(candidates, entry.Name())
		}
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("no marker directories under %q; run 'forgectl start --keep-markers'", base)
	}
	// Names embed a unix timestamp, so lexical order is creation order.
	sort.Strings(candidates)
	return filepath.Join(base, candidates[len(candidates)-1]), nil
}
