package logging

import (
	"log/slog"
	"strings"
)

// Writer is an io.Writer that forwards external tool output to slog at debug
// level, one line per record. Clone and install steps attach it to git and
// package-manager invocations.
type Writer struct {
	logger *slog.Logger
	tool   string
}

// NewWriter constructs a Writer bound to the provided logger, tagging each
// record with the tool name.
func NewWriter(logger *slog.Logger, tool string) *Writer {
	return &Writer{logger: logger, tool: tool}
}

// Write logs each non-empty line of p.
func (w *Writer) Write(p []byte) (int, error) {
	if w.logger != nil {
		for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
			if line != "" {
				w.logger.Debug("tool output", "tool", w.tool, "line", line)
			}
		}
	}
	return len(p), nil
}
