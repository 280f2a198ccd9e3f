package steps

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"time"
)

// markerPattern matches marker file names of the form step<ordinal>_<status>.
var markerPattern = regexp.MustCompile(`^step(\d+)_(started|complete|failed)$`)

// Tracker persists step transitions as empty marker files in a per-run
// directory. Markers are append-only and content-addressed by
// (ordinal, status): re-entering a step after a crash writes a new marker
// instead of corrupting a prior one. The marker set is the run's audit log.
type Tracker struct {
	dir   string
	steps map[int]*Step
}

// NewTracker creates the marker directory for a new run under baseDir and
// returns a Tracker bound to it. The directory name embeds a timestamp so
// concurrent or successive runs never collide.
func NewTracker(baseDir string) (*Tracker, error) {
	dir := filepath.Join(baseDir, fmt.Sprintf(".forgectl-markers-%d", time.Now().Unix()))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create marker directory %q: %w", dir, err)
	}
	return &Tracker{dir: dir, steps: make(map[int]*Step)}, nil
}

// OpenTracker binds a Tracker to an existing marker directory, for summary
// inspection of a prior or in-flight run.
func OpenTracker(dir string) (*Tracker, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open marker directory %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("marker path %q is not a directory", dir)
	}
	return &Tracker{dir: dir, steps: make(map[int]*Step)}, nil
}

// Dir returns the marker directory for this run.
func (t *Tracker) Dir() string {
	return t.dir
}

// Track transitions a step from Pending or Failed to Started and writes a
// started marker. Re-tracking an already started or completed step is an
// error; resuming after Failed is the explicit exception.
func (t *Tracker) Track(ordinal int, name string) error {
	if ordinal <= 0 {
		return fmt.Errorf("step ordinal must be positive, got %d", ordinal)
	}
	step, ok := t.steps[ordinal]
	if !ok {
		step = &Step{Ordinal: ordinal, Name: name, Status: StatusPending}
		t.steps[ordinal] = step
	}
	if step.Status != StatusPending && step.Status != StatusFailed {
		return fmt.Errorf("step %d (%s) cannot restart from status %s", ordinal, step.Name, step.Status)
	}
	step.Name = name
	step.Status = StatusStarted
	return t.writeMarker(ordinal, StatusStarted)
}

// Finish transitions a Started step to the given terminal status and writes
// the corresponding marker.
func (t *Tracker) Finish(ordinal int, status Status) error {
	if !status.IsTerminal() {
		return fmt.Errorf("finish requires a terminal status, got %s", status)
	}
	step, ok := t.steps[ordinal]
	if !ok || step.Status != StatusStarted {
		return fmt.Errorf("step %d is not started", ordinal)
	}
	step.Status = status
	return t.writeMarker(ordinal, status)
}

// Summary re-reads all markers for the run and reports, per ordinal, the
// furthest status reached, ordered by ordinal. Step names are filled from
// in-memory state when known.
func (t *Tracker) Summary() ([]Step, error) {
	entries, err := os.ReadDir(t.dir)
	if err != nil {
		return nil, fmt.Errorf("read marker directory %q: %w", t.dir, err)
	}

	furthest := make(map[int]Status)
	for _, entry := range entries {
		m := markerPattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		ordinal, _ := strconv.Atoi(m[1])
		status := Status(m[2])
		if status.rank() > furthest[ordinal].rank() {
			furthest[ordinal] = status
		}
	}

	out := make([]Step, 0, len(furthest))
	for ordinal, status := range furthest {
		step := Step{Ordinal: ordinal, Status: status}
		if known, ok := t.steps[ordinal]; ok {
			step.Name = known.Name
		}
		out = append(out, step)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ordinal < out[j].Ordinal })
	return out, nil
}

// Cleanup removes the marker directory. Best-effort: it is called on every
// exit path regardless of run outcome.
func (t *Tracker) Cleanup() {
	_ = os.RemoveAll(t.dir)
}

func (t *Tracker) writeMarker(ordinal int, status Status) error {
	path := filepath.Join(t.dir, fmt.Sprintf("step%d_%s", ordinal, status))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("write marker %q: %w", path, err)
	}
	return f.Close()
}
