package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/stackforge/forgectl/internal/steps"
	"github.com/stackforge/forgectl/internal/wizard"
)

// renderSummary prints the per-step outcome table.
func renderSummary(summary []steps.Step) {
	rows := pterm.TableData{{"Step", "Name", "Status"}}
	for _, step := range summary {
		rows = append(rows, []string{strconv.Itoa(step.Ordinal), step.Name, styleStatus(step.Status)})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func styleStatus(status steps.Status) string {
	switch status {
	case steps.StatusComplete:
		return pterm.Green(status.String())
	case steps.StatusFailed:
		return pterm.Red(status.String())
	case steps.StatusStarted:
		return pterm.Yellow(status.String())
	}
	return status.String()
}

// renderOutcome prints warnings, resolved env values and follow-up commands
// for a finished run.
func renderOutcome(rc *wizard.RunContext) {
	for _, w := range rc.Warnings {
		pterm.Warning.Println(w)
	}

	if len(rc.EnvValues) > 0 {
		keys := make([]string, 0, len(rc.EnvValues))
		for k := range rc.EnvValues {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		rows := pterm.TableData{{"Key", "Value"}}
		for _, k := range keys {
			rows = append(rows, []string{k, rc.EnvValues[k]})
		}
		pterm.DefaultSection.Println("Environment")
		_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	}

	if len(rc.FollowUp) > 0 {
		pterm.DefaultSection.Println("Next steps")
		for _, command := range rc.FollowUp {
			fmt.Printf("  $ %s\n", command)
		}
	}
}
