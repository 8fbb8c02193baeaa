package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a namespaced error code for neomodel errors.
type ErrorCode string

// Validation error codes
const (
	VALIDATION_TYPE_MISMATCH ErrorCode = "VALIDATION_TYPE_MISMATCH"
	VALIDATION_BAD_RULE      ErrorCode = "VALIDATION_BAD_RULE"
)

// Model error codes
const (
	MODEL_ATTRIBUTE_REJECTED ErrorCode = "MODEL_ATTRIBUTE_REJECTED"
	MODEL_ATTRIBUTE_MISSING  ErrorCode = "MODEL_ATTRIBUTE_MISSING"
	MODEL_ALREADY_REGISTERED ErrorCode = "MODEL_ALREADY_REGISTERED"
	MODEL_INVALID_DEFINITION ErrorCode = "MODEL_INVALID_DEFINITION"
	MODEL_NOT_FOUND          ErrorCode = "MODEL_NOT_FOUND"
	MODEL_NO_RESULTS         ErrorCode = "MODEL_NO_RESULTS"
)

// Graph error codes
const (
	GRAPH_CONNECTION_FAILED ErrorCode = "GRAPH_CONNECTION_FAILED"
	GRAPH_CONNECTION_CLOSED ErrorCode = "GRAPH_CONNECTION_CLOSED"
	GRAPH_INVALID_CONFIG    ErrorCode = "GRAPH_INVALID_CONFIG"
	GRAPH_QUERY_SYNTAX      ErrorCode = "GRAPH_QUERY_SYNTAX"
	GRAPH_RESULT_PARSING    ErrorCode = "GRAPH_RESULT_PARSING"
)

// Configuration error codes
const (
	CONFIG_LOAD_FAILED       ErrorCode = "CONFIG_LOAD_FAILED"
	CONFIG_PARSE_FAILED      ErrorCode = "CONFIG_PARSE_FAILED"
	CONFIG_VALIDATION_FAILED ErrorCode = "CONFIG_VALIDATION_FAILED"
)

// Error represents a structured error with error code, message, and optional cause.
// It supports error wrapping and retryability hints for error handling logic.
type Error struct {
	Code      ErrorCode
	Message   string
	Retryable bool
	Cause     error
}

// Error implements the error interface, returning a formatted error message.
// Format: "[CODE] message" or "[CODE] message: cause" if cause exists.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for error unwrapping chains.
// This enables using errors.Is() and errors.As() with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the target error matches this error by error code.
// Returns true if target is an Error with the same Code.
func (e *Error) Is(target error) bool {
	var nmErr *Error
	if errors.As(target, &nmErr) {
		return e.Code == nmErr.Code
	}
	return false
}

// NewError creates a new non-retryable Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:      code,
		Message:   message,
		Retryable: false,
		Cause:     nil,
	}
}

// NewRetryableError creates a new retryable Error with the given code and message.
// Use this for transient errors that may succeed on retry (e.g., network timeouts).
func NewRetryableError(code ErrorCode, message string) *Error {
	return &Error{
		Code:      code,
		Message:   message,
		Retryable: true,
		Cause:     nil,
	}
}

// WrapError creates a new non-retryable Error that wraps an existing error.
// The wrapped error is accessible via Unwrap() for error chain inspection.
func WrapError(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:      code,
		Message:   message,
		Retryable: false,
		Cause:     cause,
	}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code ErrorCode) bool {
	var nmErr *Error
	if errors.As(err, &nmErr) {
		return nmErr.Code == code
	}
	return false
}
