// Package envfile provides a structured, order-preserving model of .env-style files.
package envfile

import (
	"fmt"
	"os"
	"strings"
)

// LineKind classifies a single line of an env file.
type LineKind int

const (
	// KindBlank is an empty (or whitespace-only) line.
	KindBlank LineKind = iota
	// KindComment is a line starting with '#'.
	KindComment
	// KindKeyValue is a KEY=VALUE line.
	KindKeyValue
)

// Line is one parsed line of an env file. The original text is kept verbatim
// so serialization reproduces the input byte for byte.
type Line struct {
	// Kind classifies the line.
	Kind LineKind
	// Raw is the original line content without the trailing newline.
	Raw string
	// Key is the variable name for KindKeyValue lines.
	Key string
	// Value is the variable value for KindKeyValue lines, written verbatim.
	Value string
}

// File is the in-memory representation of an env file.
type File struct {
	// Path is the file location this model was read from.
	Path string
	// Exists reports whether the file was present on disk at parse time.
	// Callers use this to distinguish "no file yet" from an empty file.
	Exists bool
	// Lines holds the ordered file content.
	Lines []Line
}

// Parse reads the env file at path. A missing file is not an error: the
// returned File is empty with Exists=false.
func Parse(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &File{Path: path}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read env file %q: %w", path, err)
	}
	f := ParseBytes(data)
	f.Path = path
	f.Exists = true
	return f, nil
}

// ParseBytes parses raw env file content into a File model.
func ParseBytes(data []byte) *File {
	f := &File{}
	if len(data) == 0 {
		return f
	}
	text := strings.TrimSuffix(string(data), "\n")
	for _, raw := range strings.Split(text, "\n") {
		f.Lines = append(f.Lines, parseLine(raw))
	}
	return f
}

func parseLine(raw string) Line {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		return Line{Kind: KindBlank, Raw: raw}
	case strings.HasPrefix(trimmed, "#"):
		return Line{Kind: KindComment, Raw: raw}
	}
	if k, v, ok := strings.Cut(raw, "="); ok {
		return Line{Kind: KindKeyValue, Raw: raw, Key: strings.TrimSpace(k), Value: v}
	}
	// Lines without '=' carry no semantics for us; preserve them as comments.
	return Line{Kind: KindComment, Raw: raw}
}

// FindSection splits the file at the first line whose raw content equals
// header. It returns the lines before the header and the section from the
// header to end of file. When the header is absent, section is nil and
// before holds the whole file.
func (f *File) FindSection(header string) (before []Line, section []Line) {
	for i, line := range f.Lines {
		if line.Raw == header {
			return f.Lines[:i], f.Lines[i:]
		}
	}
	return f.Lines, nil
}

// Serialize renders the file back to bytes with a single trailing newline.
// An empty file serializes to zero bytes.
func (f *File) Serialize() []byte {
	if len(f.Lines) == 0 {
		return nil
	}
	var b strings.Builder
	for _, line := range f.Lines {
		b.WriteString(line.Raw)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// TrimTrailingBlanks drops blank lines at the end of the given slice.
func TrimTrailingBlanks(lines []Line) []Line {
	end := len(lines)
	for end > 0 && lines[end-1].Kind == KindBlank {
		end--
	}
	return lines[:end]
}
