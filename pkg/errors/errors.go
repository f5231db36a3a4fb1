package errors

import (
	"errors"
	"fmt"
)

// ErrorCode is a stable identifier used to classify houston errors
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Template errors
	ErrTemplateSyntax ErrorCode = "TEMPLATE_SYNTAX"

	// Script execution errors
	ErrScriptIO ErrorCode = "SCRIPT_IO"

	// Context file errors
	ErrContextNotFound ErrorCode = "CONTEXT_NOT_FOUND"
	ErrContextEval     ErrorCode = "CONTEXT_EVAL"

	// Generator errors
	ErrGenerate ErrorCode = "GENERATE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileCreate ErrorCode = "FILE_CREATE"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
)

// HoustonError is a structured error with a code and optional details
type HoustonError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HoustonError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HoustonError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a HoustonError with the same code
func (e *HoustonError) Is(target error) bool {
	var targetErr *HoustonError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HoustonError with the given code and message
func New(code ErrorCode, message string) *HoustonError {
	return &HoustonError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HoustonError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HoustonError {
	return &HoustonError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error. It returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *HoustonError {
	if err == nil {
		return nil
	}
	return &HoustonError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HoustonError {
	if err == nil {
		return nil
	}
	return &HoustonError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HoustonError) WithDetail(key string, value interface{}) *HoustonError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if any error in the chain carries the given code
func IsErrorCode(err error, code ErrorCode) bool {
	var houstonErr *HoustonError
	for err != nil {
		if errors.As(err, &houstonErr) {
			if houstonErr.Code == code {
				return true
			}
			err = houstonErr.Wrapped
			continue
		}
		return false
	}
	return false
}

// GetErrorCode returns the outermost error code, or ErrUnknown
func GetErrorCode(err error) ErrorCode {
	var houstonErr *HoustonError
	if errors.As(err, &houstonErr) {
		return houstonErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of the outermost HoustonError
func GetErrorDetails(err error) map[string]interface{} {
	var houstonErr *HoustonError
	if errors.As(err, &houstonErr) {
		return houstonErr.Details
	}
	return nil
}
