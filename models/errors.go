package models

import (
	"errors"
	"fmt"
)

// ErrBadConfig is the single error kind raised by the configuration
// pipeline. Every failure wraps it, so callers can match with
// errors.Is regardless of the specific trigger.
var ErrBadConfig = errors.New("invalid configuration")

// BadConfigError is a user-facing configuration failure. Reason states
// what went wrong; Text carries the offending raw text or value so the
// message is always actionable.
type BadConfigError struct {
	Reason string
	Text   string
}

// NewBadConfig builds a *BadConfigError with the given reason and the
// offending text or value.
func NewBadConfig(reason, text string) error {
	return &BadConfigError{Reason: reason, Text: text}
}

func (e *BadConfigError) Error() string {
	if e.Text == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %q", e.Reason, e.Text)
}

func (e *BadConfigError) Unwrap() error {
	return ErrBadConfig
}
