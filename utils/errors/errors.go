// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

package errors

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// ///////////////////////////////////////////////////////////////////////////
// Wrappers for standard library errors package
// ///////////////////////////////////////////////////////////////////////////

func New(message string) error {
	return errors.New(message)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

func Join(errs ...error) error {
	return multierr.Combine(errs...)
}

// ///////////////////////////////////////////////////////////////////////////
// fatalStartupError
// ///////////////////////////////////////////////////////////////////////////

type fatalStartupError struct {
	message string
}

func (e *fatalStartupError) Error() string { return e.message }

// FatalStartupError marks a condition that must terminate the process: missing or invalid
// configuration, or an empty discovery result.
func FatalStartupError(message string, a ...any) error {
	if len(a) == 0 {
		return &fatalStartupError{message: message}
	}
	return &fatalStartupError{message: fmt.Sprintf(message, a...)}
}

func WrapWithFatalStartupError(err error, message string) error {
	if err == nil {
		return &fatalStartupError{message: message}
	}
	return &fatalStartupError{message: fmt.Sprintf("%s; %s", message, err.Error())}
}

func IsFatalStartupError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *fatalStartupError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// transientError
// ///////////////////////////////////////////////////////////////////////////

type transientError struct {
	inner   error
	message string
}

func (e *transientError) Error() string {
	if e.inner == nil || e.inner.Error() == "" {
		return e.message
	} else if e.message == "" {
		return e.inner.Error()
	}
	return fmt.Sprintf("%v; %v", e.message, e.inner.Error())
}

func (e *transientError) Unwrap() error { return e.inner }

// TransientError marks a per-volume failure that abandons the volume's attempt for the
// current sweep; the decision is re-evaluated from live state on the next sweep.
func TransientError(message string, a ...any) error {
	if len(a) == 0 {
		return &transientError{message: message}
	}
	return &transientError{message: fmt.Sprintf(message, a...)}
}

func WrapWithTransientError(err error, message string, a ...any) error {
	return &transientError{
		inner:   err,
		message: fmt.Sprintf(message, a...),
	}
}

func IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *transientError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// timeoutError
// ///////////////////////////////////////////////////////////////////////////

type timeoutError struct {
	message string
}

func (e *timeoutError) Error() string { return e.message }

// TimeoutError marks an exhausted poll-attempt budget. It is a transient condition:
// the outer per-interval loop is the sole retry mechanism.
func TimeoutError(message string, a ...any) error {
	if len(a) == 0 {
		return &timeoutError{message: message}
	}
	return &timeoutError{message: fmt.Sprintf(message, a...)}
}

func IsTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *timeoutError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// notFoundError
// ///////////////////////////////////////////////////////////////////////////

type notFoundError struct {
	inner   error
	message string
}

func (e *notFoundError) Error() string {
	if e.inner == nil || e.inner.Error() == "" {
		return e.message
	} else if e.message == "" {
		return e.inner.Error()
	}
	return fmt.Sprintf("%v; %v", e.message, e.inner.Error())
}

func (e *notFoundError) Unwrap() error { return e.inner }

func NotFoundError(message string, a ...any) error {
	if len(a) == 0 {
		return &notFoundError{message: message}
	}
	return &notFoundError{message: fmt.Sprintf(message, a...)}
}

func WrapWithNotFoundError(err error, message string, a ...any) error {
	return &notFoundError{
		inner:   err,
		message: fmt.Sprintf(message, a...),
	}
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *notFoundError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// invalidInputError
// ///////////////////////////////////////////////////////////////////////////

type invalidInputError struct {
	message string
}

func (e *invalidInputError) Error() string { return e.message }

func InvalidInputError(message string, a ...any) error {
	if len(a) == 0 {
		return &invalidInputError{message: message}
	}
	return &invalidInputError{message: fmt.Sprintf(message, a...)}
}

func IsInvalidInputError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *invalidInputError
	return errors.As(err, &errPtr)
}
