// Package normalize detects and flattens accidentally nested project directories.
package normalize

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stackforge/forgectl/internal/cleanup"
)

// DefaultMarkers is the marker set used to decide that a nested directory is
// a duplicated project root rather than a legitimately named subdirectory.
// The heuristic is best-effort and configurable; see Normalizer.Markers.
var DefaultMarkers = []string{
	"package.json",
	"composer.json",
	"requirements.txt",
	"pyproject.toml",
	".env.example",
	"src",
	"app",
	"public",
	".git",
}

// Result reports the outcome of a normalization call.
type Result struct {
	// Changed is true when a nested directory was flattened.
	Changed bool
	// Warnings lists entries that could not be moved in either phase.
	// Empty on full success.
	Warnings []string
}

// NormalizeError indicates the nested directory could not be emptied, so the
// flatten was aborted before anything would have been deleted.
type NormalizeError struct {
	// Dir is the nested directory that still has content.
	Dir string
	// Remaining lists the entries left behind.
	Remaining []string
}

func (e *NormalizeError) Error() string {
	return fmt.Sprintf("normalize aborted: %d entries could not be moved out of %q", len(e.Remaining), e.Dir)
}

// IsNormalizeError reports whether err is a NormalizeError.
func IsNormalizeError(err error) bool {
	var target *NormalizeError
	return errors.As(err, &target)
}

// Normalizer flattens a clone artifact of the form dir/base/... where base
// equals the basename of dir.
type Normalizer struct {
	// Markers gates the flatten: the nested directory must contain at least
	// one of these entries. Defaults to DefaultMarkers when empty.
	Markers []string
	// Resources, when set, registers the holding directory so a signal
	// mid-move cannot strand it.
	Resources *cleanup.Registry
}

// New constructs a Normalizer with the default marker set.
func New() *Normalizer {
	return &Normalizer{Markers: DefaultMarkers}
}

// Normalize flattens dir/base into dir via a two-phase move: every entry is
// first moved into a fresh temp directory on the same filesystem, the emptied
// nested directory is removed, and the entries are moved back up. No step
// ever deletes a file; only empty directories are removed, so an interrupted
// call can lose no content.
func (n *Normalizer) Normalize(dir string) (Result, error) {
	var res Result

	base := filepath.Base(dir)
	nested := filepath.Join(dir, base)
	info, err := os.Stat(nested)
	if os.IsNotExist(err) {
		return res, nil
	}
	if err != nil {
		return res, fmt.Errorf("inspect %q: %w", nested, err)
	}
	if !info.IsDir() || !n.looksLikeProject(nested) {
		return res, nil
	}

	holding, err := os.MkdirTemp(dir, ".normalize-*")
	if err != nil {
		return res, fmt.Errorf("create holding directory in %q: %w", dir, err)
	}
	if n.Resources != nil {
		n.Resources.Register(holding)
	}
	defer func() { _ = os.Remove(holding) }()

	res.Warnings = append(res.Warnings, moveEntries(nested, holding)...)

	// The nested directory must be empty before it is removed; anything left
	// means a move failed and proceeding would delete files.
	if remaining, err := listEntries(nested); err != nil || len(remaining) > 0 {
		if err != nil {
			return res, fmt.Errorf("re-list %q: %w", nested, err)
		}
		return res, &NormalizeError{Dir: nested, Remaining: remaining}
	}
	if err := os.Remove(nested); err != nil {
		return res, fmt.Errorf("remove emptied %q: %w", nested, err)
	}

	res.Warnings = append(res.Warnings, moveEntries(holding, dir)...)
	res.Changed = true
	return res, nil
}

// looksLikeProject reports whether nested contains at least one marker entry.
func (n *Normalizer) looksLikeProject(nested string) bool {
	markers := n.Markers
	if len(markers) == 0 {
		markers = DefaultMarkers
	}
	for _, marker := range markers {
		if _, err := os.Stat(filepath.Join(nested, marker)); err == nil {
			return true
		}
	}
	return false
}

// moveEntries moves every entry (dotfiles included) from src into dst,
// continuing past individual failures and returning them as warnings.
func moveEntries(src, dst string) []string {
	entries, err := os.ReadDir(src)
	if err != nil {
		return []string{fmt.Sprintf("list %s: %v", src, err)}
	}
	var warnings []string
	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())
		if err := os.Rename(from, to); err != nil {
			warnings = append(warnings, fmt.Sprintf("move %s: %v", entry.Name(), err))
		}
	}
	return warnings
}

func listEntries(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}
