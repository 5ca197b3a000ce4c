// Package errors provides structured error types for plotkit.
//
// Every failure surfaced by the schema system, the entity constructors and the
// layout helpers carries a machine-readable [Code] so callers can branch on
// the category without string matching.
//
// # Error Codes
//
// Codes group into the same families the entity model distinguishes:
//   - Definition-time schema errors: SCHEMA_COLLISION, UNKNOWN_PROPERTY,
//     INVALID_MIXIN, INVALID_PROPERTY, DUPLICATE_CLASS
//   - Construction-time data errors: INVALID_VALUE, UNKNOWN_CLASS
//   - Call-site contract violations: INVALID_SLOT, INVALID_LAYOUT,
//     INDEX_OUT_OF_RANGE, INVALID_INPUT
//   - Configuration: INVALID_THEME, INVALID_BLUEPRINT, FILE_NOT_FOUND
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownProperty, "%s has no property %q", class, name)
//	if errors.Is(err, errors.ErrCodeUnknownProperty) {
//	    // Handle lookup failure
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidTheme, origErr, "read theme %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Schema definition errors
	ErrCodeSchemaCollision  Code = "SCHEMA_COLLISION"
	ErrCodeUnknownProperty  Code = "UNKNOWN_PROPERTY"
	ErrCodeInvalidMixin     Code = "INVALID_MIXIN"
	ErrCodeInvalidProperty  Code = "INVALID_PROPERTY"
	ErrCodeDuplicateClass   Code = "DUPLICATE_CLASS"
	ErrCodeUnknownClass     Code = "UNKNOWN_CLASS"
	ErrCodeInvalidValue     Code = "INVALID_VALUE"
	ErrCodeInvalidSlot      Code = "INVALID_SLOT"
	ErrCodeInvalidLayout    Code = "INVALID_LAYOUT"
	ErrCodeIndexOutOfRange  Code = "INDEX_OUT_OF_RANGE"
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidTheme     Code = "INVALID_THEME"
	ErrCodeInvalidBlueprint Code = "INVALID_BLUEPRINT"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

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

// Join combines several errors into one, dropping nils.
// Returns nil when every input is nil and the single error when only one remains.
func Join(errs ...error) error {
	var kept []error
	for _, err := range errs {
		if err != nil {
			kept = append(kept, err)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	default:
		return errors.Join(kept...)
	}
}
