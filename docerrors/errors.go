// Package docerrors provides structured error types for doctree.
//
// These error types enable programmatic error handling via errors.Is()
// and errors.As(), allowing callers to distinguish between categories
// of failure and react accordingly.
//
// # Error Categories
//
//   - ParseError: text decode failures in any of the format front-ends
//   - PatternError: a malformed regular expression handed to search
//   - ResourceLimitError: a document exceeded a configured byte ceiling
//   - ConfigError: invalid options or inputs
//
// Note what is deliberately missing: there is no NotFound error.
// Resolving or removing an absent path is a normal outcome of the
// engine, reported through (value, ok) results and no-op removes.
//
// # Usage with errors.Is
//
//	v, err := codec.For(codec.FormatYAML).Decode(data)
//	if errors.Is(err, docerrors.ErrParse) {
//	    // the document text could not be decoded
//	}
package docerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a document decode failure.
	ErrParse = errors.New("parse error")

	// ErrPattern indicates a malformed search pattern.
	ErrPattern = errors.New("invalid pattern")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration or input.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to decode a document's text form.
type ParseError struct {
	// Format is the front-end that failed, e.g. "yaml" or "toml".
	Format string
	// Path is the file path or source identifier, if known.
	Path string
	// Line is the line number of the failure (0 if unknown).
	Line int
	// Message describes the failure.
	Message string
	// Cause is the underlying decoder error, if any.
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Format != "" {
		msg += " (" + e.Format + ")"
	}
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// PatternError represents a regular expression that could not be
// compiled. Unlike a missing path, a pattern the engine cannot
// interpret at all must surface as a hard failure.
type PatternError struct {
	// Pattern is the pattern text that failed to compile.
	Pattern string
	// Cause is the regexp compile error.
	Cause error
}

// Error returns a human-readable error message.
func (e *PatternError) Error() string {
	msg := "invalid pattern"
	if e.Pattern != "" {
		msg += fmt.Sprintf(" %q", e.Pattern)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *PatternError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *PatternError) Is(target error) bool {
	return target == ErrPattern
}

// ResourceLimitError represents a document that exceeded a configured
// limit before it ever reached the engine.
type ResourceLimitError struct {
	// ResourceType identifies which limit was exceeded.
	// Common values: "document_size".
	ResourceType string
	// Limit is the configured maximum value.
	Limit int64
	// Actual is the value that exceeded the limit (0 if unknown).
	Actual int64
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid option or input. This includes
// unknown formats, conflicting flags, and inputs a front-end cannot
// represent (such as a non-mapping TOML root).
type ConfigError struct {
	// Option is the name of the problematic option or input.
	Option string
	// Value is the invalid value that was provided (may be nil).
	Value any
	// Message describes the problem.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
