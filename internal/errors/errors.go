// Package errors defines the stable error code system for swapgen.
package errors

import (
	"errors"
	"fmt"
	"io"
)

// Code is a stable error code string.
type Code string

// Error codes.
const (
	EUsage    Code = "E_USAGE"
	EInternal Code = "E_INTERNAL"

	// Prompt pipeline
	EPromptFailed    Code = "E_PROMPT_FAILED"
	EUnknownQuestion Code = "E_UNKNOWN_QUESTION"
	EUnknownField    Code = "E_UNKNOWN_FIELD"
	ENoGitHost       Code = "E_NO_GIT_HOST"
	EGenerateFailed  Code = "E_GENERATE_FAILED"

	// Configuration and persistence
	EInvalidConfig  Code = "E_INVALID_CONFIG"
	EConfigExists   Code = "E_CONFIG_EXISTS"
	EInvalidAnswers Code = "E_INVALID_ANSWERS"
	EStoreCorrupt   Code = "E_STORE_CORRUPT"
	EPersistFailed  Code = "E_PERSIST_FAILED"
	ELocked         Code = "E_LOCKED"
)

// SwapError is the standard error type for swapgen errors.
type SwapError struct {
	Code    Code
	Msg     string
	Cause   error
	Details map[string]string // optional structured context
}

// Error returns the stable error format: "CODE: message".
func (e *SwapError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *SwapError) Unwrap() error {
	return e.Cause
}

// New creates a new SwapError with the given code and message.
func New(code Code, msg string) error {
	return &SwapError{Code: code, Msg: msg}
}

// NewWithDetails creates a new SwapError with code, message, and details.
// Details map is copied (nil if empty).
func NewWithDetails(code Code, msg string, details map[string]string) error {
	return &SwapError{Code: code, Msg: msg, Details: copyDetails(details)}
}

// Wrap creates a new SwapError wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &SwapError{Code: code, Msg: msg, Cause: err}
}

// WrapWithDetails creates a new SwapError wrapping an underlying error with details.
// Details map is copied (nil if empty).
func WrapWithDetails(code Code, msg string, err error, details map[string]string) error {
	return &SwapError{Code: code, Msg: msg, Cause: err, Details: copyDetails(details)}
}

// GetCode extracts the error code from an error, or empty string if not a SwapError.
func GetCode(err error) Code {
	var se *SwapError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// AsSwapError returns (*SwapError, true) if err is or wraps a SwapError.
func AsSwapError(err error) (*SwapError, bool) {
	var se *SwapError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

func copyDetails(details map[string]string) map[string]string {
	if len(details) == 0 {
		return nil
	}
	cp := make(map[string]string, len(details))
	for k, v := range details {
		cp[k] = v
	}
	return cp
}

// ExitCode returns the appropriate exit code for an error.
// Returns 0 if err is nil, 2 for E_USAGE, 1 for all other errors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if GetCode(err) == EUsage {
		return 2
	}
	return 1
}

// Print writes the error to w in the stable stderr format:
//
//	error_code: <CODE>
//	<message>
//	<cause>       (only when a cause is present)
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	var se *SwapError
	if errors.As(err, &se) {
		fmt.Fprintf(w, "error_code: %s\n", se.Code)
		fmt.Fprintln(w, se.Msg)
		if se.Cause != nil {
			fmt.Fprintf(w, "cause: %v\n", se.Cause)
		}
		return
	}
	fmt.Fprintln(w, err.Error())
}
