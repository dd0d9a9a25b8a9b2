// Package errors defines the error taxonomy shared by all layers of the
// service. Every failure path surfaces one of these kinds to the caller;
// nothing is swallowed and nothing is retried on the service's behalf.
package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind categorizes an error for callers that need to decide how to react
type Kind string

const (
	// KindValidation marks malformed input: the caller's fault, no retry
	KindValidation Kind = "validation"
	// KindFetch marks a failed store read; no partial result is produced
	KindFetch Kind = "fetch"
	// KindPersistence marks a failed store write
	KindPersistence Kind = "persistence"
	// KindNotFound marks a referenced record that does not exist
	KindNotFound Kind = "not_found"
	// KindInternal marks unexpected failures
	KindInternal Kind = "internal"
)

// Error is the concrete error type carrying a kind and an optional cause
type Error struct {
	Kind    Kind
	Message string
	Cause   error
	stack   errors.StackTrace
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause error
func (e *Error) Unwrap() error {
	return e.Cause
}

// StackTrace returns the stack captured at construction time
func (e *Error) StackTrace() errors.StackTrace {
	return e.stack
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

func captureStack(err error) errors.StackTrace {
	if st, ok := errors.WithStack(err).(stackTracer); ok {
		return st.StackTrace()
	}
	return nil
}

// New creates a new Error of the given kind
func New(kind Kind, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{
		Kind:    kind,
		Message: msg,
		stack:   captureStack(errors.New(msg)),
	}
}

// Wrap annotates an existing error with a kind and message. Returns nil for
// a nil cause so call sites can wrap unconditionally; the error return type
// keeps that nil a true nil interface.
func Wrap(err error, kind Kind, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
		stack:   captureStack(err),
	}
}

// Validationf creates a validation error
func Validationf(format string, args ...interface{}) *Error {
	return New(KindValidation, format, args...)
}

// NotFoundf creates a not-found error
func NotFoundf(format string, args ...interface{}) *Error {
	return New(KindNotFound, format, args...)
}

// KindOf extracts the kind from an error chain, defaulting to KindInternal
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether the error chain contains an Error of the given kind
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
