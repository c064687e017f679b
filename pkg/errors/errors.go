// Package errors provides structured error types for mazetrace.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Every failure of the search engine's entry point carries one of the codes
// below. Codes are validated before any traversal state is allocated, so a
// coded error always means the request was rejected as a whole:
//   - UNKNOWN_ALGORITHM: the requested strategy is not bfs, dfs, greedy or astar
//   - INVALID_ENDPOINT: start or end is out of bounds or on a blocked cell
//   - MALFORMED_GRID: non-positive dimensions or ragged/invalid grid content
//   - NOT_FOUND: a preset maze name is absent from the catalog
//   - INVALID_INPUT: the request could not be decoded at all
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidEndpoint, "start %v is blocked", start)
//	if errors.Is(err, errors.ErrCodeInvalidEndpoint) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "decode request body")
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeUnknownAlgorithm Code = "UNKNOWN_ALGORITHM"
	ErrCodeInvalidEndpoint  Code = "INVALID_ENDPOINT"
	ErrCodeMalformedGrid    Code = "MALFORMED_GRID"
	ErrCodeInvalidName      Code = "INVALID_NAME"

	// Resource not found errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// HTTPStatus maps an error to the status code a transport should answer with.
// Uncoded errors are treated as internal failures.
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeInvalidInput, ErrCodeUnknownAlgorithm, ErrCodeInvalidEndpoint,
		ErrCodeMalformedGrid, ErrCodeInvalidName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
