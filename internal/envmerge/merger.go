// Package envmerge rewrites named sections of .env-style files atomically.
package envmerge

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stackforge/forgectl/internal/cleanup"
	"github.com/stackforge/forgectl/internal/envfile"
	"github.com/stackforge/forgectl/internal/secrets"
)

// Policy selects how an entry's value is produced.
type Policy string

const (
	// PolicyLiteral writes the caller-supplied value verbatim.
	PolicyLiteral Policy = "literal"
	// PolicyHex32 generates a 32-byte hex token.
	PolicyHex32 Policy = "hex32"
	// PolicyBase64_12 generates a 12-byte base64 token.
	PolicyBase64_12 Policy = "base64-12"
)

// Entry is one key the merged section will contain, in order.
type Entry struct {
	// Key is the variable name.
	Key string
	// Value is the literal value for PolicyLiteral entries.
	Value string
	// Policy selects literal vs generated values. Empty means literal.
	Policy Policy
}

// Section describes the managed block to upsert.
type Section struct {
	// Header is the exact comment line addressing the section,
	// e.g. "# Database Configuration".
	Header string
	// Entries are the section's keys in output order.
	Entries []Entry
	// Derive, when set, receives the resolved key map and returns extra
	// entries appended to the section. It must be pure.
	Derive func(envfile.Values) []Entry
}

// MergeError indicates the merger could not produce or commit a new file.
// The visible file is never partially mutated.
type MergeError struct {
	// Path is the merge target.
	Path string
	// Cause is the underlying failure.
	Cause error
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("merge env file %q: %v", e.Path, e.Cause)
}

func (e *MergeError) Unwrap() error { return e.Cause }

// IsMergeError reports whether err is a MergeError.
func IsMergeError(err error) bool {
	var target *MergeError
	return errors.As(err, &target)
}

// Merger upserts named sections into env files.
type Merger struct {
	gen       secrets.Generator
	resources *cleanup.Registry
}

// New constructs a Merger using the given secret generator.
func New(gen secrets.Generator) *Merger {
	return &Merger{gen: gen}
}

// WithResources registers every temp file the merger creates with reg, so a
// signal mid-write cannot strand it.
func (m *Merger) WithResources(reg *cleanup.Registry) *Merger {
	m.resources = reg
	return m
}

// Merge replaces (or appends) the file section identified by sec.Header in
// the file at path. When the file does not exist it is first materialized
// from baseTemplate. Everything before the header is kept verbatim;
// everything from the header to end of file is replaced by the rebuilt
// section. The new content is written to a temp file in the target's
// directory and renamed over the target, so a crash mid-merge never leaves a
// half-written file.
//
// The returned map holds the final key/value pairs of the section, derived
// entries included.
func (m *Merger) Merge(path string, sec Section, baseTemplate string) (envfile.Values, error) {
	f, err := envfile.Parse(path)
	if err != nil {
		return nil, &MergeError{Path: path, Cause: err}
	}
	if !f.Exists && baseTemplate != "" {
		f = envfile.ParseBytes([]byte(baseTemplate))
	}

	entries, resolved, err := m.resolve(sec.Entries)
	if err != nil {
		return nil, &MergeError{Path: path, Cause: err}
	}
	if sec.Derive != nil {
		for _, extra := range sec.Derive(resolved) {
			resolved[extra.Key] = extra.Value
			entries = append(entries, extra)
		}
	}

	before, _ := f.FindSection(sec.Header)
	before = envfile.TrimTrailingBlanks(before)

	var b strings.Builder
	for _, line := range before {
		b.WriteString(line.Raw)
		b.WriteByte('\n')
	}
	if len(before) > 0 {
		b.WriteByte('\n')
	}
	b.WriteString(sec.Header)
	b.WriteByte('\n')
	for _, e := range entries {
		b.WriteString(e.Key)
		b.WriteByte('=')
		b.WriteString(e.Value)
		b.WriteByte('\n')
	}

	if err := m.writeAtomic(path, []byte(b.String())); err != nil {
		return nil, &MergeError{Path: path, Cause: err}
	}
	return resolved, nil
}

// resolve applies each entry's policy, returning literal-only entries and
// the resolved key map.
func (m *Merger) resolve(entries []Entry) ([]Entry, envfile.Values, error) {
	out := make([]Entry, 0, len(entries))
	resolved := make(envfile.Values, len(entries))
	for _, e := range entries {
		value := e.Value
		var err error
		switch e.Policy {
		case "", PolicyLiteral:
		case PolicyHex32:
			value, err = m.gen.RandomHex(32)
		case PolicyBase64_12:
			value, err = m.gen.RandomBase64(12)
		default:
			err = fmt.Errorf("unknown value policy %q for key %s", e.Policy, e.Key)
		}
		if err != nil {
			return nil, nil, err
		}
		resolved[e.Key] = value
		out = append(out, Entry{Key: e.Key, Value: value})
	}
	return out, resolved, nil
}

// writeAtomic writes data to a temp file next to path and renames it into
// place. On any failure before the rename the original file is untouched.
func (m *Merger) writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".env-merge-*")
	if err != nil {
		return fmt.Errorf("create temp file in %q: %w", dir, err)
	}
	tmpPath := tmp.Name()
	if m.resources != nil {
		m.resources.Register(tmpPath)
	}
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("commit env file: %w", err)
	}
	return nil
}
