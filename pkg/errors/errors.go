package errors

import (
	"errors"
	"fmt"
)

// Domain error types for the derivation engine

var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput indicates invalid input parameters
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal indicates an internal error
	ErrInternal = errors.New("internal error")

	// ErrUnavailable indicates a backing service is unavailable
	ErrUnavailable = errors.New("service unavailable")
)

// Derivation-specific errors

var (
	// ErrInsufficientData indicates a bar series is too short for a computation
	ErrInsufficientData = errors.New("insufficient bar history")

	// ErrEmptyWindow indicates windowing left zero rows to compute over
	ErrEmptyWindow = errors.New("window contains no rows")

	// ErrColumnMissing indicates a derived column was requested but never produced
	ErrColumnMissing = errors.New("derived column missing")

	// ErrForwardReference indicates a pipeline step reads a column written by a later step
	ErrForwardReference = errors.New("pipeline step reads a not-yet-written column")

	// ErrClassifierFailed indicates a single pattern classifier errored for a run
	ErrClassifierFailed = errors.New("pattern classifier failed")
)

// Helper functions

// Is checks if err is or wraps target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

func New(message string) error {
	return errors.New(message)
}

func Newf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
