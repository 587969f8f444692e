// Package validation defines the error taxonomy shared by the scanning engine.
//
// Two kinds of failure exist. A ConfigurationError is returned while an
// engine is being built (bad matrices, thresholds, backgrounds or options)
// and always before any scanning starts. An InputError is returned when a
// sequence handed to a scan cannot be scored.
package validation

import (
	"errors"
	"fmt"
)

// ConfigurationError reports an invalid construction argument.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return "configuration: " + e.Reason
	}
	return fmt.Sprintf("configuration: %s: %s", e.Field, e.Reason)
}

// IsConfigurationError marks the error kind.
func (e *ConfigurationError) IsConfigurationError() {}

// Configf builds a ConfigurationError with a formatted reason.
func Configf(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// InputError reports a sequence symbol that cannot be scanned.
type InputError struct {
	Position int
	Found    byte
	Reason   string
}

func (e *InputError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "invalid base"
	}
	if e.Found == 0 {
		return fmt.Sprintf("%s at position %d", reason, e.Position)
	}
	return fmt.Sprintf("%s '%c' at position %d", reason, e.Found, e.Position)
}

// IsInputError marks the error kind.
func (e *InputError) IsInputError() {}

// IsConfiguration reports whether err wraps a ConfigurationError.
func IsConfiguration(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// IsInput reports whether err wraps an InputError.
func IsInput(err error) bool {
	var target *InputError
	return errors.As(err, &target)
}
