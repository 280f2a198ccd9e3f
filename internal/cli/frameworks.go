package cli

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/stackforge/forgectl/internal/config"
)

// newFrameworksCommand creates the "frameworks" command listing the catalog.
func newFrameworksCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "frameworks",
		Short: "List the available frameworks",
		RunE: func(_ *cobra.Command, _ []string) error {
			cat, err := config.Load(opts.CatalogPath)
			if err != nil {
				return err
			}

			rows := pterm.TableData{{"Name", "Label", "Runtime", "Starter", "Commands"}}
			for _, fw := range cat.Frameworks {
				starter := fw.StarterRepo
				if starter == "" {
					starter = "builtin template"
				}
				rows = append(rows, []string{fw.Name, fw.Label, string(fw.Runtime), starter, strings.Join(fw.Commands, ", ")})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
		},
	}
}
