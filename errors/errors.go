package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrFatalCondition is the sentinel every FatalError unwraps to.
	ErrFatalCondition = errors.New("fatal condition raised")
	// ErrAssertionViolation is the sentinel every AssertionError unwraps to.
	ErrAssertionViolation = errors.New("assertion violation")
	// ErrUnknownAction is the sentinel every UnknownActionError unwraps to.
	ErrUnknownAction = errors.New("unknown action")
)

// FatalError is the catchable outcome of invoking the exit action while it
// is configured to raise. It carries the fatal-condition code verbatim; the
// code is an arbitrary integer, never validated against a registry.
type FatalError struct {
	Code int
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("fatal condition raised (code %d)", e.Code)
}

func (e *FatalError) Unwrap() error {
	return ErrFatalCondition
}

// AssertionError is the catchable outcome of an assertion failure while the
// debug action is configured to raise.
type AssertionError struct {
	Condition string
	File      string
	Line      int
	Message   string
}

func (e *AssertionError) Error() string {
	ret := fmt.Sprintf("assertion violation: %s", e.Condition)
	if e.File != "" {
		ret += fmt.Sprintf(" (%s:%d)", e.File, e.Line)
	}
	if e.Message != "" {
		ret += ": " + e.Message
	}

	return ret
}

func (e *AssertionError) Unwrap() error {
	return ErrAssertionViolation
}

// UnknownActionError reports a textual action name that matches no member of
// the target enumeration.
type UnknownActionError struct {
	Kind  string
	Value string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Value)
}

func (e *UnknownActionError) Unwrap() error {
	return ErrUnknownAction
}
