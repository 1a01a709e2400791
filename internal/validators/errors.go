package validators

import (
	"errors"
	"strings"
)

var (
	// ErrValidation is matched by every [*ValidationError].
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// FieldIssue is one failed rule.
type FieldIssue struct {
	// Field is the JSON name of the field, e.g. "full_name".
	Field   string
	Message string
}

// ValidationError lists every failed rule of one input, in field order.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, issue.Message)
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// First returns the message shown when only one line fits.
func (e *ValidationError) First() string {
	if len(e.Issues) == 0 {
		return ""
	}
	return e.Issues[0].Message
}

// Message returns the first issue's message when err is a validation error.
func Message(err error) (string, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.First(), true
	}
	return "", false
}
