// Package config contains the loader and strongly typed model for the framework catalog.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Runtime identifies the language toolchain of a framework.
type Runtime string

const (
	// RuntimeNode is a Node.js framework.
	RuntimeNode Runtime = "node"
	// RuntimePHP is a PHP framework.
	RuntimePHP Runtime = "php"
	// RuntimePython is a Python framework.
	RuntimePython Runtime = "python"
)

// Database describes the default database settings a framework ships with.
type Database struct {
	// Scheme is the connection URI scheme (e.g. postgres, mysql).
	Scheme string `yaml:"scheme"`
	// Host is the default database host.
	Host string `yaml:"host"`
	// Port is the default database port as a string; empty omits it from
	// the connection URI.
	Port string `yaml:"port"`
	// User is the default database user.
	User string `yaml:"user"`
}

// Framework describes one scaffoldable tech stack.
type Framework struct {
	// Name is the catalog key (e.g. express, laravel).
	Name string `yaml:"name"`
	// Label is the human-readable name shown in prompts.
	Label string `yaml:"label"`
	// Runtime selects the dependency toolchain.
	Runtime Runtime `yaml:"runtime"`
	// StarterRepo is an owner/repo slug of a starter template to clone.
	// Empty means the framework is scaffolded from the builtin template.
	StarterRepo string `yaml:"starterRepo"`
	// EnvTemplate is the base .env content used when the target file does
	// not exist yet.
	EnvTemplate string `yaml:"envTemplate"`
	// Database holds the framework's default database settings.
	Database Database `yaml:"database"`
	// Commands lists follow-up commands printed at the end of a run.
	Commands []string `yaml:"commands"`
}

// Catalog is the full frameworks definition plus shared wizard settings.
type Catalog struct {
	// Frameworks lists the scaffoldable stacks in prompt order.
	Frameworks []Framework `yaml:"frameworks"`
	// ProjectMarkers overrides the nested-directory detection marker list.
	// Empty keeps the builtin defaults.
	ProjectMarkers []string `yaml:"projectMarkers"`
}

// DefaultPath returns the user catalog location under the XDG config home.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "forgectl", "frameworks.yaml")
}

// Load reads the catalog from path. An empty path falls back to the user
// catalog under XDG config home when present, and otherwise to the embedded
// default catalog.
func Load(path string) (*Catalog, error) {
	data := defaultCatalog
	source := "embedded"

	if path == "" {
		if candidate := DefaultPath(); fileExists(candidate) {
			path = candidate
		}
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %q: %w", path, err)
		}
		data = raw
		source = path
	}

	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", source, err)
	}
	if err := cat.validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", source, err)
	}
	return &cat, nil
}

// Resolve returns the framework with the given name.
func (c *Catalog) Resolve(name string) (*Framework, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i := range c.Frameworks {
		if c.Frameworks[i].Name == key {
			return &c.Frameworks[i], nil
		}
	}
	return nil, fmt.Errorf("unknown framework %q", name)
}

// Names returns the framework names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.Frameworks))
	for _, fw := range c.Frameworks {
		out = append(out, fw.Name)
	}
	return out
}

func (c *Catalog) validate() error {
	if len(c.Frameworks) == 0 {
		return fmt.Errorf("no frameworks defined")
	}
	seen := make(map[string]struct{}, len(c.Frameworks))
	for _, fw := range c.Frameworks {
		if strings.TrimSpace(fw.Name) == "" {
			return fmt.Errorf("framework with empty name")
		}
		if _, ok := seen[fw.Name]; ok {
			return fmt.Errorf("duplicate framework %q", fw.Name)
		}
		seen[fw.Name] = struct{}{}
		switch fw.Runtime {
		case RuntimeNode, RuntimePHP, RuntimePython:
		default:
			return fmt.Errorf("framework %q has unsupported runtime %q", fw.Name, fw.Runtime)
		}
		if fw.StarterRepo != "" && len(strings.Split(fw.StarterRepo, "/")) != 2 {
			return fmt.Errorf("framework %q starterRepo must be owner/repo, got %q", fw.Name, fw.StarterRepo)
		}
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
