// Package errors provides standardized error types for the scriptmd codebase.
//
// Every parse failure aborts a conversion: there is no partial output and no
// retry. Each error type carries enough context (the offending line or
// fragment, and the field name when applicable) to be actionable.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the conversion error taxonomy
var (
	// ErrMissingField indicates a required header command is absent
	ErrMissingField = errors.New("missing header field")
	// ErrInvalidLine indicates a body line does not match the container grammar
	ErrInvalidLine = errors.New("invalid line")
	// ErrUnknownInlineCommand indicates a span-position command outside the closed grammar
	ErrUnknownInlineCommand = errors.New("unknown inline command")
	// ErrUnsupportedConversion indicates a source/target pairing other than tex -> markdown
	ErrUnsupportedConversion = errors.New("unsupported conversion")
)

// MissingFieldError reports a mandatory header field that could not be found.
type MissingFieldError struct {
	Field string // Name of the missing field (e.g., "author", "tags")
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing header field: %s", e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// InvalidLineError reports a body line that failed container parsing.
type InvalidLineError struct {
	Line string // The offending source line
	Err  error  // Underlying error, if any
}

func (e *InvalidLineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid line %q: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("invalid line %q", e.Line)
}

func (e *InvalidLineError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidLine
}

// UnknownInlineCommandError reports a span-position command outside the
// closed {direct, ul} grammar. Unknown container-level commands degrade to
// plain text instead; only the inline grammar is closed.
type UnknownInlineCommandError struct {
	Command  string // The unrecognized command name
	Fragment string // The source fragment it appeared in
}

func (e *UnknownInlineCommandError) Error() string {
	if e.Fragment != "" {
		return fmt.Sprintf("unknown inline command \\%s in %q", e.Command, e.Fragment)
	}
	return fmt.Sprintf("unknown inline command \\%s", e.Command)
}

func (e *UnknownInlineCommandError) Unwrap() error {
	return ErrUnknownInlineCommand
}

// UnsupportedConversionError reports a requested source/target pairing other
// than the one supported direction.
type UnsupportedConversionError struct {
	From string // Requested source format
	To   string // Requested target format
}

func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("unsupported conversion: %s -> %s (only tex -> markdown)", e.From, e.To)
}

func (e *UnsupportedConversionError) Unwrap() error {
	return ErrUnsupportedConversion
}

// Helper functions for creating common errors

// NewMissingField creates a MissingFieldError
func NewMissingField(field string) *MissingFieldError {
	return &MissingFieldError{Field: field}
}

// NewInvalidLine creates an InvalidLineError
func NewInvalidLine(line string, err error) *InvalidLineError {
	return &InvalidLineError{Line: line, Err: err}
}

// NewUnknownInlineCommand creates an UnknownInlineCommandError
func NewUnknownInlineCommand(command, fragment string) *UnknownInlineCommandError {
	return &UnknownInlineCommandError{Command: command, Fragment: fragment}
}

// NewUnsupportedConversion creates an UnsupportedConversionError
func NewUnsupportedConversion(from, to string) *UnsupportedConversionError {
	return &UnsupportedConversionError{From: from, To: to}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
