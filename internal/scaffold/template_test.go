package scaffold_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackforge/forgectl/internal/config"
	"github.com/stackforge/forgectl/internal/scaffold"
)

func TestScaffoldNodeTemplate(t *testing.T) {
	dir := t.TempDir()
	fw := &config.Framework{
		Name:        "express",
		Label:       "Express (Node.js)",
		Runtime:     config.RuntimeNode,
		EnvTemplate: "NODE_ENV=development\n",
	}

	finalDir, err := scaffold.NewBuiltinGenerator().Scaffold(context.Background(), fw, "demo", dir)
	require.NoError(t, err)
	assert.Equal(t, dir, finalDir)

	assert.FileExists(t, filepath.Join(dir, "package.json"))
	assert.FileExists(t, filepath.Join(dir, "src", "index.js"))
	assert.FileExists(t, filepath.Join(dir, ".gitignore"))

	example, err := os.ReadFile(filepath.Join(dir, ".env.example"))
	require.NoError(t, err)
	assert.Equal(t, fw.EnvTemplate, string(example))
}

func TestScaffoldPerRuntimeManifests(t *testing.T) {
	tests := []struct {
		runtime  config.Runtime
		manifest string
	}{
		{config.RuntimeNode, "package.json"},
		{config.RuntimePHP, "composer.json"},
		{config.RuntimePython, "requirements.txt"},
	}

	for _, tt := range tests {
		t.Run(string(tt.runtime), func(t *testing.T) {
			dir := t.TempDir()
			fw := &config.Framework{Name: "x", Runtime: tt.runtime}
			_, err := scaffold.NewBuiltinGenerator().Scaffold(context.Background(), fw, "demo", dir)
			require.NoError(t, err)
			assert.FileExists(t, filepath.Join(dir, tt.manifest))
		})
	}
}

func TestCatalogListerCopiesCommands(t *testing.T) {
	fw := &config.Framework{Commands: []string{"npm run dev"}}
	got := scaffold.NewCatalogLister().List(fw)
	require.Equal(t, []string{"npm run dev"}, got)

	got[0] = "mutated"
	assert.Equal(t, "npm run dev", fw.Commands[0])
}
