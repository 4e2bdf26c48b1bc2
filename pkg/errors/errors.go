// Package errors provides structured error types for the Draftline application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow the validation taxonomy of the layout core:
//   - INVALID_TYPE / DOMAIN_VIOLATION: per-field parsing failures
//   - GEOMETRY_INCONSISTENT: tolerance or range violations
//   - UNKNOWN_REFERENCE: references to undeclared configuration entries
//   - INVALID_CONFIG: malformed configuration needed for layout (batch-fatal)
//   - INTERNAL_*: unexpected internal errors
//
// Record-scoped problems are carried as schema Findings, not errors; the
// error types here are for batch-fatal conditions and the outer surfaces
// (file handling, HTTP, cache).
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "unparsable clearance: %q", spec)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // Abort the batch: layout cannot proceed.
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Validation-taxonomy errors
	ErrCodeInvalidType    Code = "INVALID_TYPE"
	ErrCodeDomain         Code = "DOMAIN_VIOLATION"
	ErrCodeGeometry       Code = "GEOMETRY_INCONSISTENT"
	ErrCodeReference      Code = "UNKNOWN_REFERENCE"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeMissingField   Code = "MISSING_FIELD"
	ErrCodeDuplicateRoom  Code = "DUPLICATE_ROOM"
	ErrCodeLayoutContract Code = "LAYOUT_CONTRACT"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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
