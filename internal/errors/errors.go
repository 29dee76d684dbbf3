// Package errors defines the stable error codes reported by the CLI.
package errors

import (
	"errors"
	"fmt"
)

// Code is a stable error code string.
type Code string

// Error codes.
const (
	EUsage Code = "E_USAGE"

	// Project manifest
	EManifestNotFound Code = "E_MANIFEST_NOT_FOUND"
	EInvalidManifest  Code = "E_INVALID_MANIFEST"
	EPersistFailed    Code = "E_PERSIST_FAILED"

	// Preset resolution and installation
	EInvalidPreset  Code = "E_INVALID_PRESET"
	ENoPresetChosen Code = "E_NO_PRESET_CHOSEN"
	EPresetNotFound Code = "E_PRESET_NOT_FOUND"

	// Interaction
	EAborted Code = "E_ABORTED"

	// Dependency installation
	ESpawnFailed   Code = "E_SPAWN_FAILED"
	EInstallFailed Code = "E_INSTALL_FAILED"
)

// Error is the coded error type used across the CLI.
type Error struct {
	Code    Code
	Msg     string
	Cause   error
	Details map[string]string // optional structured context
}

// Error returns the human-readable message, followed by the cause if any.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Msg: msg}
}

// Newf creates a new Error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// NewWithDetails creates a new Error with code, message, and details.
func NewWithDetails(code Code, msg string, details map[string]string) error {
	return &Error{Code: code, Msg: msg, Details: copyDetails(details)}
}

// Wrap creates a new Error wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &Error{Code: code, Msg: msg, Cause: err}
}

// GetCode extracts the error code from an error, or empty string if not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// As returns (*Error, true) if err is or wraps an *Error.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// ExitCode returns the process exit code for an error: 0 for nil, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
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
