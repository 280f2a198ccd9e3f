// Package prompt collects the wizard's interactive inputs.
package prompt

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/stackforge/forgectl/internal/config"
)

// Roles the wizard offers for a new project.
var Roles = []string{"fullstack", "api", "frontend"}

// SelectFramework asks the user to pick a framework from the catalog.
func SelectFramework(cat *config.Catalog) (*config.Framework, error) {
	labels := make([]string, 0, len(cat.Frameworks))
	byLabel := make(map[string]string, len(cat.Frameworks))
	for _, fw := range cat.Frameworks {
		labels = append(labels, fw.Label)
		byLabel[fw.Label] = fw.Name
	}

	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(labels).
		Show("Which tech stack do you want to use?")
	if err != nil {
		return nil, fmt.Errorf("framework selection: %w", err)
	}
	return cat.Resolve(byLabel[choice])
}

// SelectRole asks for the project role.
func SelectRole() (string, error) {
	role, err := pterm.DefaultInteractiveSelect.
		WithOptions(Roles).
		Show("What role does this project play?")
	if err != nil {
		return "", fmt.Errorf("role selection: %w", err)
	}
	return role, nil
}

// AskProjectName asks for and validates the project name.
func AskProjectName() (string, error) {
	name, err := pterm.DefaultInteractiveTextInput.
		Show("Project name")
	if err != nil {
		return "", fmt.Errorf("project name input: %w", err)
	}
	name = strings.TrimSpace(name)
	if err := ValidateProjectName(name); err != nil {
		return "", err
	}
	return name, nil
}

// Confirm asks a yes/no question, defaulting to yes.
func Confirm(question string) (bool, error) {
	ok, err := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(true).
		Show(question)
	if err != nil {
		return false, fmt.Errorf("confirmation: %w", err)
	}
	return ok, nil
}

// ValidateProjectName rejects names that would produce hostile paths.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name is empty")
	}
	if strings.ContainsAny(name, "/\\ ") {
		return fmt.Errorf("project name %q must not contain spaces or path separators", name)
	}
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("project name %q must not start with a dot", name)
	}
	return nil
}
