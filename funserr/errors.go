// Package funserr defines the error taxonomy shared by the pattern compiler
// and the dispatcher.
package funserr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType defines the category of the error.
type ErrorType string

const (
	TypeDefinition  ErrorType = "PatternDefinitionError"
	TypeMatch       ErrorType = "ArgumentMatchError"
	TypeApplication ErrorType = "ApplicationError"
)

// FunsError is the interface for all errors raised by this module.
type FunsError interface {
	error
	Type() ErrorType
}

// BaseError provides common fields for funs errors.
type BaseError struct {
	Msg     string
	ErrType ErrorType
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("[%s] %s", e.ErrType, e.Msg)
}

func (e *BaseError) Type() ErrorType {
	return e.ErrType
}

// DefinitionError is raised while compiling a pattern.
type DefinitionError struct {
	BaseError
	Column     int    // 1-based column in the pattern text, 0 if unknown
	Token      string // offending token, if any
	Suggestion string // closest registered name for unknown types
}

func (e *DefinitionError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] ", e.ErrType))
	if e.Column > 0 {
		sb.WriteString(fmt.Sprintf("col %d: ", e.Column))
	}
	sb.WriteString(e.Msg)
	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf(" (did you mean %q?)", e.Suggestion))
	}
	return sb.String()
}

// MatchError is raised when call arguments do not satisfy a pattern.
type MatchError struct {
	BaseError
	Position     int    // cursor into the raw arguments
	Expected     string // description of the matcher that failed
	Got          string // tag of the offending value, empty when missing
	Alternatives []*MatchError
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("[%s] %s", e.ErrType, e.Msg)
}

// ApplicationError wraps a value recovered from a panicking target.
type ApplicationError struct {
	BaseError
	Value any
}

func (e *ApplicationError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// MultiError collects multiple funs errors.
type MultiError struct {
	Errors []error
}

func (m *MultiError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d error(s) occurred:\n", len(m.Errors)))
	for _, err := range m.Errors {
		sb.WriteString(fmt.Sprintf("- %v\n", err))
	}
	return sb.String()
}

func (m *MultiError) Type() ErrorType {
	if len(m.Errors) > 0 {
		if fe, ok := m.Errors[0].(FunsError); ok {
			return fe.Type()
		}
	}
	return "MultiError"
}

func (m *MultiError) Unwrap() []error {
	return m.Errors
}

// NewDefinitionError creates a DefinitionError without position information.
func NewDefinitionError(msg string) *DefinitionError {
	return &DefinitionError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeDefinition,
		},
	}
}

// NewDefinitionErrorAt creates a DefinitionError pointing at a token.
func NewDefinitionErrorAt(column int, token, msg string) *DefinitionError {
	return &DefinitionError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeDefinition,
		},
		Column: column,
		Token:  token,
	}
}

// NewMatchError creates a MatchError for the given cursor position.
func NewMatchError(position int, expected, got, msg string) *MatchError {
	return &MatchError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeMatch,
		},
		Position: position,
		Expected: expected,
		Got:      got,
	}
}

// NewApplicationError wraps a recovered panic value.
func NewApplicationError(v any) *ApplicationError {
	msg := fmt.Sprint(v)
	if err, ok := v.(error); ok {
		msg = err.Error()
	}
	return &ApplicationError{
		BaseError: BaseError{
			Msg:     "target panicked: " + msg,
			ErrType: TypeApplication,
		},
		Value: v,
	}
}

// TypeOf reports the category of the first funs error found in err's chain,
// or "" when there is none.
func TypeOf(err error) ErrorType {
	var fe FunsError
	if errors.As(err, &fe) {
		return fe.Type()
	}
	return ""
}

// IsDefinition reports whether err is, or wraps, a pattern definition error.
func IsDefinition(err error) bool {
	return TypeOf(err) == TypeDefinition
}

// IsMatch reports whether err is, or wraps, an argument match error.
func IsMatch(err error) bool {
	return TypeOf(err) == TypeMatch
}
