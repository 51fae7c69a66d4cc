package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks across the loader and validator.
var (
	ErrConfigNotFound       = errors.New("configuration file not found")
	ErrInvalidYAML          = errors.New("invalid YAML syntax")
	ErrValidationFailed     = errors.New("configuration validation failed")
	ErrInvalidNamespace     = errors.New("invalid namespace")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidValue         = errors.New("invalid field value")
	ErrValueOutOfRange      = errors.New("value out of range")
)

// ValidationError pins a validation failure to its section and field so the
// startup log names the exact YAML key to fix.
type ValidationError struct {
	Section string // queue, limits, retry, ...
	Field   string // optional
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field '%s': %v", e.Section, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Section, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidationError(section, field string, err error) *ValidationError {
	return &ValidationError{Section: section, Field: field, Err: err}
}

// LoadError carries the path of the file that failed to load.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func NewLoadError(file string, err error) *LoadError {
	return &LoadError{File: file, Err: err}
}
