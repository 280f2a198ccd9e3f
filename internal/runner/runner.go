// Package runner provides low-level integration with external tools such as git and package managers.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
)

// Runner wraps execution of an external binary with a working directory and
// optional extra environment.
type Runner struct {
	// Dir is the working directory for invoked commands. Empty means the
	// process working directory.
	Dir string
	// Env holds extra KEY=VALUE entries appended to the process environment.
	Env []string
	// Output receives combined stdout/stderr of invoked commands. Nil
	// discards output.
	Output io.Writer
}

// New constructs a Runner writing command output to out.
func New(dir string, out io.Writer) *Runner {
	return &Runner{Dir: dir, Output: out}
}

// Available reports whether the named binary can be found on PATH.
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Run executes name with args, streaming output to the Runner's writer.
func (r *Runner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	if r.Output != nil {
		cmd.Stdout = r.Output
		cmd.Stderr = r.Output
	}
	if len(r.Env) > 0 {
		cmd.Env = append(cmd.Environ(), r.Env...)
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %v failed: %w", name, args, err)
	}
	return nil
}

// RunAndCapture executes name with args and returns its stdout. Stderr goes
// to the Runner's writer.
func (r *Runner) RunAndCapture(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if r.Output != nil {
		cmd.Stderr = r.Output
	}
	if len(r.Env) > 0 {
		cmd.Env = append(cmd.Environ(), r.Env...)
	}
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s %v failed: %w", name, args, err)
	}
	return stdout.Bytes(), nil
}
