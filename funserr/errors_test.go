package funserr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionError_Format(t *testing.T) {
	tests := []struct {
		name string
		err  *DefinitionError
		want string
	}{
		{
			name: "without position",
			err:  NewDefinitionError("bind option can not be turned on without partial"),
			want: "[PatternDefinitionError] bind option can not be turned on without partial",
		},
		{
			name: "with column",
			err:  NewDefinitionErrorAt(9, "$", "unexpected \"$\""),
			want: "[PatternDefinitionError] col 9: unexpected \"$\"",
		},
		{
			name: "with suggestion",
			err: func() *DefinitionError {
				e := NewDefinitionErrorAt(1, "strng", "\"strng\" is an unknown type")
				e.Suggestion = "string"
				return e
			}(),
			want: "[PatternDefinitionError] col 1: \"strng\" is an unknown type (did you mean \"string\"?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.Equal(t, TypeDefinition, tt.err.Type())
		})
	}
}

func TestMatchError(t *testing.T) {
	err := NewMatchError(2, "string", "number", "was expecting a string at position 2 but got a number")

	assert.Equal(t, "[ArgumentMatchError] was expecting a string at position 2 but got a number", err.Error())
	assert.Equal(t, TypeMatch, err.Type())
	assert.Equal(t, 2, err.Position)
	assert.Equal(t, "string", err.Expected)
	assert.Equal(t, "number", err.Got)
}

func TestApplicationError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewApplicationError(cause)
	assert.Equal(t, "[ApplicationError] target panicked: boom", err.Error())
	assert.ErrorIs(t, err, cause)

	plain := NewApplicationError("not an error")
	assert.Equal(t, "[ApplicationError] target panicked: not an error", plain.Error())
	assert.Nil(t, plain.Unwrap())
	assert.Equal(t, "not an error", plain.Value)
}

func TestMultiError(t *testing.T) {
	m := &MultiError{Errors: []error{
		NewDefinitionErrorAt(1, ",", "empty position"),
		NewDefinitionErrorAt(5, "$", "unexpected \"$\""),
	}}

	assert.Contains(t, m.Error(), "2 error(s) occurred:")
	assert.Contains(t, m.Error(), "- [PatternDefinitionError] col 1: empty position")
	assert.Equal(t, TypeDefinition, m.Type())

	var def *DefinitionError
	require.True(t, errors.As(m, &def))
	assert.Equal(t, 1, def.Column)

	assert.Equal(t, ErrorType("MultiError"), (&MultiError{}).Type())
}

func TestTypeOf(t *testing.T) {
	wrapped := fmt.Errorf("compiling: %w", NewDefinitionError("nope"))

	assert.Equal(t, TypeDefinition, TypeOf(wrapped))
	assert.True(t, IsDefinition(wrapped))
	assert.False(t, IsMatch(wrapped))

	assert.True(t, IsMatch(NewMatchError(0, "number", "", "missing")))
	assert.Equal(t, ErrorType(""), TypeOf(errors.New("plain")))
	assert.Equal(t, ErrorType(""), TypeOf(nil))
}
