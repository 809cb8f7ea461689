package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures document validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StyleError describes a per-property styling failure on a lowered node.
// These are collected into style results rather than returned up the stack;
// the type exists so callers that do surface them keep structured context.
type StyleError struct {
	NodeName string
	Property string
	Message  string
	Err      error
}

// NewStyleError constructs a StyleError for a single styled property.
func NewStyleError(nodeName, property, message string, err error) error {
	return &StyleError{NodeName: nodeName, Property: property, Message: message, Err: err}
}

func (e *StyleError) Error() string {
	if e == nil {
		return ""
	}
	if e.NodeName != "" {
		return fmt.Sprintf("style error on %s [%s]: %s", e.NodeName, e.Property, e.Message)
	}
	return fmt.Sprintf("style error [%s]: %s", e.Property, e.Message)
}

// Unwrap exposes the underlying error.
func (e *StyleError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ThemeError indicates a problem with the theme model or token table that
// prevents a conversion run from starting.
type ThemeError struct {
	Collection string
	Message    string
	Err        error
}

// NewThemeError constructs a ThemeError.
func NewThemeError(collection string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ThemeError{Collection: collection, Message: message, Err: err}
}

func (e *ThemeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Collection != "" {
		return fmt.Sprintf("theme error [%s]: %s", e.Collection, e.Message)
	}
	return fmt.Sprintf("theme error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ThemeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
