// Package model defines the domain types shared by the catalog and the CLI.
//
// The types here are deliberately small: a pattern category enum, the
// standard CLI exit codes, and the CLIError type that carries an exit code
// from wherever a command fails up to the process boundary.
package model

import (
	"fmt"
	"strings"
)

// Category groups the demonstrations the classic way.
type Category string

const (
	// CategoryCreational covers object-construction patterns.
	CategoryCreational Category = "creational"

	// CategoryStructural covers object-composition patterns.
	CategoryStructural Category = "structural"

	// CategoryBehavioral covers object-interaction patterns.
	CategoryBehavioral Category = "behavioral"
)

// String returns the string representation of the Category.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI commands.
func (c Category) String() string {
	return string(c)
}

// IsValid checks whether the Category value is one of the predefined
// categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryCreational, CategoryStructural, CategoryBehavioral:
		return true
	default:
		return false
	}
}

// ParseCategory converts a string to a Category.
// Returns an error if the string does not match any valid category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(s))
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %q (valid: creational, structural, behavioral)", s)
	}
	return c, nil
}

// ExitCode defines standard CLI exit codes. These codes allow scripts and
// CI systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitPatternNotFound indicates the named pattern is not in the catalog.
	ExitPatternNotFound ExitCode = 2

	// ExitDemoFailed indicates a demonstration returned an error while
	// running.
	ExitDemoFailed ExitCode = 3
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
// This follows Go's error wrapping convention introduced in Go 1.13.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
