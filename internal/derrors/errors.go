// Package derrors provides custom error types for nucomplete.
// Each type carries a stable code so callers at the process boundary can
// report failures without parsing messages.
package derrors

import (
	"fmt"
)

// CompleterError is the base interface for all nucomplete errors
type CompleterError interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

// baseError provides common functionality for all nucomplete errors
type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// WriteError represents a failure to deliver output to the caller's sink
type WriteError struct {
	baseError
	Target string
}

// NewWriteError creates a new write error
func NewWriteError(target string, message string, cause error) *WriteError {
	return &WriteError{
		baseError: baseError{
			code:    "WRITE_ERROR",
			message: message,
			cause:   cause,
		},
		Target: target,
	}
}

// EngineError represents a completion engine failure
type EngineError struct {
	baseError
	Command string
}

// NewEngineError creates a new engine error
func NewEngineError(command string, message string, cause error) *EngineError {
	return &EngineError{
		baseError: baseError{
			code:    "ENGINE_ERROR",
			message: message,
			cause:   cause,
		},
		Command: command,
	}
}

// UnknownShellError is returned when no completer is registered for a shell
type UnknownShellError struct {
	baseError
	Shell string
}

// NewUnknownShellError creates a new unknown shell error
func NewUnknownShellError(shell string, known []string) *UnknownShellError {
	return &UnknownShellError{
		baseError: baseError{
			code:    "UNKNOWN_SHELL",
			message: fmt.Sprintf("unknown shell %q (supported: %v)", shell, known),
			cause:   nil,
		},
		Shell: shell,
	}
}

// ConfigurationError represents errors in configuration files
type ConfigurationError struct {
	baseError
	Path string
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(path string, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		baseError: baseError{
			code:    "CONFIG_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}

// ValidationError represents an invalid command definition or input
type ValidationError struct {
	baseError
	Field string
}

// NewValidationError creates a new validation error
func NewValidationError(field string, message string, cause error) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			code:    "VALIDATION_ERROR",
			message: message,
			cause:   cause,
		},
		Field: field,
	}
}
