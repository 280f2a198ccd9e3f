package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stackforge/forgectl/internal/config"
)

// BuiltinGenerator writes a minimal starter tree for frameworks that have no
// starter repository. The content is intentionally skeletal: a manifest for
// the runtime, a src directory and an example env file, enough for the
// install and normalize steps to operate on.
type BuiltinGenerator struct{}

// NewBuiltinGenerator constructs a BuiltinGenerator.
func NewBuiltinGenerator() *BuiltinGenerator {
	return &BuiltinGenerator{}
}

// Scaffold creates the starter tree under dir and returns dir.
func (g *BuiltinGenerator) Scaffold(_ context.Context, fw *config.Framework, name, dir string) (string, error) {
	files := map[string]string{
		"README.md":    fmt.Sprintf("# %s\n\nScaffolded %s project.\n", name, fw.Label),
		".env.example": fw.EnvTemplate,
		".gitignore":   gitignoreFor(fw.Runtime),
	}
	switch fw.Runtime {
	case config.RuntimeNode:
		files["package.json"] = fmt.Sprintf("{\n  \"name\": %q,\n  \"version\": \"0.1.0\",\n  \"private\": true\n}\n", name)
		files[filepath.Join("src", "index.js")] = "console.log('hello');\n"
	case config.RuntimePHP:
		files["composer.json"] = fmt.Sprintf("{\n  \"name\": \"app/%s\",\n  \"require\": {}\n}\n", name)
		files[filepath.Join("public", "index.php")] = "<?php\n\necho 'hello';\n"
	case config.RuntimePython:
		files["requirements.txt"] = ""
		files[filepath.Join("src", "main.py")] = "print(\"hello\")\n"
	}

	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return "", fmt.Errorf("create %q: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return "", fmt.Errorf("write %q: %w", path, err)
		}
	}
	return dir, nil
}

func gitignoreFor(rt config.Runtime) string {
	switch rt {
	case config.RuntimeNode:
		return "node_modules/\n.env\n"
	case config.RuntimePHP:
		return "vendor/\n.env\n"
	case config.RuntimePython:
		return "__pycache__/\n.venv/\n.env\n"
	}
	return ".env\n"
}
