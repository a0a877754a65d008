package questionnaire

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownField   = errors.New("unknown form field")
	ErrNotMultiSelect = errors.New("field is not a multi-select")
	ErrSubmitting     = errors.New("submission in progress")
	ErrNotFinalStep   = errors.New("submit is only allowed on the final step")
)

// Generic message shown when the sink could not be reached or answered
// without a usable error body.
const GenericSubmitFailure = "Submission failed"

func unknownField(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownField, name)
}

func notMultiSelect(name string) error {
	return fmt.Errorf("%w: %q", ErrNotMultiSelect, name)
}

// ValidationError blocks navigation. It is a user facing message, not a fault.
type ValidationError struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (e *ValidationError) Error() string {
	return e.Title + ": " + e.Description
}

// FailureKind classifies a failed create call.
type FailureKind string

const (
	FailureTransport FailureKind = "transport"
	FailureServer    FailureKind = "server"
)

// SubmitError is returned by a Sink when a create call fails. Message is what
// the user sees; Err keeps the underlying cause for logs.
type SubmitError struct {
	Kind    FailureKind
	Status  int
	Message string
	Err     error
}

func (e *SubmitError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// FailureMessage extracts the user facing message from any error returned by
// a Sink.
func FailureMessage(err error) string {
	var se *SubmitError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return GenericSubmitFailure
}
