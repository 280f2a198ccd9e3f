package scaffold

import "github.com/stackforge/forgectl/internal/config"

// CatalogLister lists follow-up commands straight from the framework catalog.
type CatalogLister struct{}

// NewCatalogLister constructs a CatalogLister.
func NewCatalogLister() *CatalogLister {
	return &CatalogLister{}
}

// List returns the framework's follow-up commands.
func (CatalogLister) List(fw *config.Framework) []string {
	out := make([]string, len(fw.Commands))
	copy(out, fw.Commands)
	return out
}
