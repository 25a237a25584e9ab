package wizard

// errors.go — the engine's error taxonomy.
//
// Two typed errors cover everything the engine can refuse: bad field values
// (ValidationError, INV-2) and out-of-order stage invocation
// (SequencingError, INV-13). Degenerate arithmetic is not an error — it is
// represented by tagged result types in the stage outputs (INV-3).

import "fmt"

// ValidationError reports an invalid input field. Field names use the JSON
// boundary spelling so callers can surface field-level messages directly.
type ValidationError struct {
	Stage  Stage
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.Stage, e.Field, e.Reason)
}

// SequencingError reports a stage invoked before its dependencies completed,
// or after the wizard was short-circuited by a prohibited classification.
type SequencingError struct {
	Stage  Stage
	Reason string
}

func (e *SequencingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Reason)
}

// invalidf builds a ValidationError.
func invalidf(stage Stage, field, format string, args ...any) error {
	return &ValidationError{Stage: stage, Field: field, Reason: fmt.Sprintf(format, args...)}
}

// sequencef builds a SequencingError.
func sequencef(stage Stage, format string, args ...any) error {
	return &SequencingError{Stage: stage, Reason: fmt.Sprintf(format, args...)}
}
