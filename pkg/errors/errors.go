// Package errors provides structured error types for gplot.
//
// Every error raised by the figure builder, the data source layer, the
// render dispatcher and the engine runner is an [*Error] carrying a
// machine-readable [Code]. Codes are grouped into a small set of kinds so
// callers can react to a whole category at once:
//
//   - validation: malformed setter input (wrong arity, out-of-domain value)
//   - resource: data source missing or structurally empty
//   - precondition: a render-time requirement is not met
//   - process: the gnuplot invocation failed, timed out or was not found
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidArity, "axis range needs 2 values, got %d", n)
//	if errors.IsKind(err, errors.KindValidation) {
//	    // Handle bad input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeUnreadableData, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Validation errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInvalidArity Code = "INVALID_ARITY"
	ErrCodeInvalidValue Code = "INVALID_VALUE"
	ErrCodeInvalidPath  Code = "INVALID_PATH"

	// Resource errors
	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"
	ErrCodeEmptyData      Code = "EMPTY_DATA"
	ErrCodeUnreadableData Code = "UNREADABLE_DATA"

	// Precondition errors
	ErrCodePrecondition      Code = "PRECONDITION"
	ErrCodeUnsupportedFormat Code = "UNSUPPORTED_FORMAT"
	ErrCodeModeConflict      Code = "MODE_CONFLICT"
	ErrCodeNoSeries          Code = "NO_SERIES"

	// Process errors
	ErrCodeProcess        Code = "PROCESS_ERROR"
	ErrCodeEngineNotFound Code = "ENGINE_NOT_FOUND"
	ErrCodeTimeout        Code = "TIMEOUT"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Kind groups error codes into the categories callers handle.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindResource     Kind = "resource"
	KindPrecondition Kind = "precondition"
	KindProcess      Kind = "process"
	KindInternal     Kind = "internal"
)

var codeKinds = map[Code]Kind{
	ErrCodeInvalidInput:      KindValidation,
	ErrCodeInvalidArity:      KindValidation,
	ErrCodeInvalidValue:      KindValidation,
	ErrCodeInvalidPath:       KindValidation,
	ErrCodeFileNotFound:      KindResource,
	ErrCodeEmptyData:         KindResource,
	ErrCodeUnreadableData:    KindResource,
	ErrCodePrecondition:      KindPrecondition,
	ErrCodeUnsupportedFormat: KindPrecondition,
	ErrCodeModeConflict:      KindPrecondition,
	ErrCodeNoSeries:          KindPrecondition,
	ErrCodeProcess:           KindProcess,
	ErrCodeEngineNotFound:    KindProcess,
	ErrCodeTimeout:           KindProcess,
	ErrCodeInternal:          KindInternal,
}

// Kind returns the category of the code. Unknown codes are internal.
func (c Code) Kind() Kind {
	if k, ok := codeKinds[c]; ok {
		return k
	}
	return KindInternal
}

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

// IsKind reports whether err carries a code of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code.Kind() == kind
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
// For *Error types, returns the message without the code prefix, which for
// process errors is the engine's stderr verbatim.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
