package cli

import (
	envparse "github.com/caarlos0/env/v11"
)

// baseEnv defines root CLI defaults sourced from FORGECTL_* env vars.
type baseEnv struct {
	// CatalogPath is the frameworks.yaml path from FORGECTL_CATALOG.
	CatalogPath string `env:"FORGECTL_CATALOG"`
	// MarkerBase is the marker base directory from FORGECTL_MARKER_DIR.
	MarkerBase string `env:"FORGECTL_MARKER_DIR"`
	// LogLevel is the logging level from FORGECTL_LOG_LEVEL.
	LogLevel string `env:"FORGECTL_LOG_LEVEL"`
}

// startEnv captures FORGECTL_* inputs for the start command, so CI can run
// the wizard without prompts.
type startEnv struct {
	// Framework is the framework name from FORGECTL_FRAMEWORK.
	Framework string `env:"FORGECTL_FRAMEWORK"`
	// Name is the project name from FORGECTL_NAME.
	Name string `env:"FORGECTL_NAME"`
	// Dir is the parent directory from FORGECTL_DIR.
	Dir string `env:"FORGECTL_DIR"`
	// Role is the project role from FORGECTL_ROLE.
	Role string `env:"FORGECTL_ROLE"`
	// Yes skips confirmations from FORGECTL_YES.
	Yes bool `env:"FORGECTL_YES"`
}

// parseEnv fills target from FORGECTL_* env vars via caarlos0/env.
func parseEnv(target any) error {
	return envparse.Parse(target)
}
