package errors

import (
	"errors"
	"fmt"
)

// ErrUnknownColumn is returned when a column key is not part of a set.
var ErrUnknownColumn = errors.New("unknown column")

// ErrDuplicateColumn is returned when a column key appears twice in a set.
var ErrDuplicateColumn = errors.New("duplicate column")

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

// ValidationError captures configuration validation issues.
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

// ColumnError reports misuse of a column set, such as an unknown key.
type ColumnError struct {
	Key string
	Err error
}

// NewColumnError constructs a ColumnError for the given column key.
func NewColumnError(key string, err error) error {
	return &ColumnError{Key: key, Err: err}
}

func (e *ColumnError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("column error [%s]: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("column error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *ColumnError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
