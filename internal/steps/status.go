// Package steps tracks wizard step progress through durable marker files.
package steps

// Status represents the lifecycle state of a wizard step.
type Status string

const (
	// StatusPending means the step has not been entered yet.
	StatusPending Status = "pending"
	// StatusStarted means the step is in progress.
	StatusStarted Status = "started"
	// StatusComplete means the step finished successfully.
	StatusComplete Status = "complete"
	// StatusFailed means the step finished with an error.
	StatusFailed Status = "failed"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// rank orders statuses for summary precedence: the furthest status reached
// wins when multiple markers exist for one ordinal.
func (s Status) rank() int {
	switch s {
	case StatusStarted:
		return 1
	case StatusFailed:
		return 2
	case StatusComplete:
		return 3
	}
	return 0
}

// IsTerminal reports whether the status represents a finished step.
func (s Status) IsTerminal() bool {
	return s == StatusComplete || s == StatusFailed
}

// Step is one named entry in the wizard's fixed ordered sequence.
type Step struct {
	// Ordinal is the fixed 1-based position of the step.
	Ordinal int
	// Name is the human-readable step name.
	Name string
	// Status is the current lifecycle state.
	Status Status
}
