package wizard

import (
	"errors"
	"fmt"
)

// StepError reports a step failure together with its severity. Fatal errors
// halt the run; non-fatal errors are recorded and the run continues, so the
// wizard still produces something usable when an individual tool integration
// is unavailable.
type StepError struct {
	// Ordinal is the failing step.
	Ordinal int
	// Reason is a short, user-facing description.
	Reason string
	// Fatal halts the run when true.
	Fatal bool
	// Err is the underlying cause.
	Err error
}

func (e *StepError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("step %d: %s: %v", e.Ordinal, e.Reason, e.Err)
	}
	return fmt.Sprintf("step %d: %s", e.Ordinal, e.Reason)
}

func (e *StepError) Unwrap() error { return e.Err }

// fatal wraps err as a run-halting step failure.
func fatal(ordinal int, reason string, err error) *StepError {
	return &StepError{Ordinal: ordinal, Reason: reason, Fatal: true, Err: err}
}

// nonFatal wraps err as a recorded-but-survivable step failure.
func nonFatal(ordinal int, reason string, err error) *StepError {
	return &StepError{Ordinal: ordinal, Reason: reason, Err: err}
}

// IsFatal reports whether err is a fatal StepError.
func IsFatal(err error) bool {
	var step *StepError
	return errors.As(err, &step) && step.Fatal
}
