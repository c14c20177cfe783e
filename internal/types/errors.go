package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a namespaced error code for platform errors.
type ErrorCode string

// Configuration error codes
const (
	CONFIG_LOAD_FAILED       ErrorCode = "CONFIG_LOAD_FAILED"
	CONFIG_PARSE_FAILED      ErrorCode = "CONFIG_PARSE_FAILED"
	CONFIG_VALIDATION_FAILED ErrorCode = "CONFIG_VALIDATION_FAILED"
	CONFIG_NOT_FOUND         ErrorCode = "CONFIG_NOT_FOUND"
)

// Store error codes
const (
	STORE_SAVE_FAILED      ErrorCode = "STORE_SAVE_FAILED"
	STORE_FETCH_FAILED     ErrorCode = "STORE_FETCH_FAILED"
	STORE_DELETE_FAILED    ErrorCode = "STORE_DELETE_FAILED"
	STORE_DELETE_REFUSED   ErrorCode = "STORE_DELETE_REFUSED"
	STORE_NOT_FOUND        ErrorCode = "STORE_NOT_FOUND"
	STORE_INVALID_ARGUMENT ErrorCode = "STORE_INVALID_ARGUMENT"
	STORE_RESULT_MALFORMED ErrorCode = "STORE_RESULT_MALFORMED"
)

// MsmeError represents a structured error with error code, message, and optional cause.
// It supports error wrapping and retryability hints for error handling logic.
type MsmeError struct {
	Code      ErrorCode
	Message   string
	Retryable bool
	Cause     error
}

// Error implements the error interface, returning a formatted error message.
// Format: "[CODE] message" or "[CODE] message: cause" if cause exists.
func (e *MsmeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for error unwrapping chains.
// This enables using errors.Is() and errors.As() with wrapped errors.
func (e *MsmeError) Unwrap() error {
	return e.Cause
}

// Is checks if the target error matches this error by error code.
// Returns true if target is a MsmeError with the same Code.
func (e *MsmeError) Is(target error) bool {
	var msmeErr *MsmeError
	if errors.As(target, &msmeErr) {
		return e.Code == msmeErr.Code
	}
	return false
}

// NewError creates a new non-retryable MsmeError with the given code and message.
func NewError(code ErrorCode, message string) *MsmeError {
	return &MsmeError{
		Code:      code,
		Message:   message,
		Retryable: false,
		Cause:     nil,
	}
}

// NewRetryableError creates a new retryable MsmeError with the given code and message.
// Use this for transient errors that may succeed on retry (e.g., network timeouts).
func NewRetryableError(code ErrorCode, message string) *MsmeError {
	return &MsmeError{
		Code:      code,
		Message:   message,
		Retryable: true,
		Cause:     nil,
	}
}

// WrapError creates a new non-retryable MsmeError that wraps an existing error.
// The wrapped error is accessible via Unwrap() for error chain inspection.
func WrapError(code ErrorCode, message string, cause error) *MsmeError {
	return &MsmeError{
		Code:      code,
		Message:   message,
		Retryable: false,
		Cause:     cause,
	}
}

// ErrorCodeOf extracts the ErrorCode from an error if it is a MsmeError.
// Returns the code and true, or an empty code and false otherwise.
func ErrorCodeOf(err error) (ErrorCode, bool) {
	var msmeErr *MsmeError
	if errors.As(err, &msmeErr) {
		return msmeErr.Code, true
	}
	return "", false
}
