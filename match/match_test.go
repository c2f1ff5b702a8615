package match

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copenhas/funs/value"
)

var cls = value.Default

func fn() {}

func TestPrimitive(t *testing.T) {
	str := Primitive(cls, value.String)

	r := str.Match(0, []any{"a"})
	require.True(t, r.Matched())
	assert.Equal(t, 1, r.Consumed)
	assert.Equal(t, "a", r.Value)

	r = str.Match(1, []any{"a", 42})
	require.False(t, r.Matched())
	assert.Equal(t, "was expecting a string at position 1 but got a number", r.Failure.Msg)
	assert.Equal(t, 1, r.Failure.Position)
	assert.Equal(t, "string", r.Failure.Expected)
	assert.Equal(t, "number", r.Failure.Got)

	r = str.Match(0, nil)
	require.False(t, r.Matched())
	assert.Equal(t, "was expecting a string at position 0 but no argument was given", r.Failure.Msg)
	assert.Equal(t, "", r.Failure.Got)

	obj := Primitive(cls, value.Object)
	r = obj.Match(0, []any{value.Undefined})
	require.False(t, r.Matched())
	assert.Equal(t, "was expecting an object at position 0 but got an undefined", r.Failure.Msg)

	assert.Equal(t, KindPrimitive, str.Kind())
	assert.Equal(t, "string", str.Description())
	assert.Nil(t, Children(str))
}

func TestPrimitive_MultipleTags(t *testing.T) {
	scalar := Primitive(cls, value.Number, value.String)
	assert.Equal(t, "number or string", scalar.Description())

	assert.True(t, scalar.Match(0, []any{1}).Matched())
	assert.True(t, scalar.Match(0, []any{"1"}).Matched())
	assert.False(t, scalar.Match(0, []any{true}).Matched())
}

func TestPrimitive_Wildcard(t *testing.T) {
	anything := Primitive(cls, value.Any)

	for _, v := range []any{nil, value.Undefined, math.NaN(), "s", 1, fn} {
		r := anything.Match(0, []any{v})
		require.True(t, r.Matched())
		assert.Equal(t, 1, r.Consumed)
	}
	assert.False(t, anything.Match(0, []any{}).Matched())
}

func TestCallback(t *testing.T) {
	cb := Callback(cls)
	assert.Equal(t, KindCallback, cb.Kind())
	assert.Equal(t, "callback", cb.Description())

	r := cb.Match(0, []any{fn})
	require.True(t, r.Matched())
	assert.Equal(t, 1, r.Consumed)

	r = cb.Match(0, []any{"example.com"})
	require.False(t, r.Matched())
	assert.Equal(t, "was expecting a callback at position 0 but got a string", r.Failure.Msg)

	r = cb.Match(2, []any{"a", "b"})
	require.False(t, r.Matched())
	assert.Equal(t, "was expecting a callback at position 2 but no argument was given", r.Failure.Msg)
}

func TestNot(t *testing.T) {
	notFn := Not(cls, Primitive(cls, value.Function))
	assert.Equal(t, "anything besides function", notFn.Description())
	assert.Equal(t, KindModifier, notFn.Kind())
	require.Len(t, Children(notFn), 1)

	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{"number", 1, true},
		{"string", "s", true},
		{"object", map[string]any{}, true},
		{"function", fn, false},
		{"null", nil, false},
		{"undefined", value.Undefined, false},
		{"nan", math.NaN(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := notFn.Match(0, []any{tt.input})
			assert.Equal(t, tt.want, r.Matched())
			if tt.want {
				assert.Equal(t, 1, r.Consumed)
			}
		})
	}

	r := notFn.Match(0, []any{fn})
	assert.Equal(t, "expected anything besides function at position 0 but got a function", r.Failure.Msg)

	r = notFn.Match(0, nil)
	assert.Equal(t, "was expecting an anything besides function at position 0 but no argument was given", r.Failure.Msg)
}

func TestRepeat_Optional(t *testing.T) {
	opt := Repeat(cls, Primitive(cls, value.String), 0, 1)
	assert.Equal(t, "0 to 1 of string", opt.Description())

	tests := []struct {
		name     string
		args     []any
		consumed int
		want     any
	}{
		{"no arguments", nil, 0, value.Undefined},
		{"match", []any{"a"}, 1, "a"},
		{"only one is taken", []any{"a", "b"}, 1, "a"},
		{"mismatch is skipped", []any{1}, 0, value.Undefined},
		{"null", []any{nil}, 1, nil},
		{"undefined", []any{value.Undefined}, 1, value.Undefined},
		{"nan", []any{math.NaN()}, 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := opt.Match(0, tt.args)
			require.True(t, r.Matched())
			assert.Equal(t, tt.consumed, r.Consumed)
			assert.Equal(t, tt.want, r.Value)
		})
	}
}

func TestRepeat_Many(t *testing.T) {
	plus := Repeat(cls, Primitive(cls, value.String), 1, math.MaxInt)
	star := Repeat(cls, Primitive(cls, value.String), 0, math.MaxInt)
	assert.Equal(t, "1 to many of string", plus.Description())

	r := plus.Match(0, []any{"test"})
	require.True(t, r.Matched())
	assert.Equal(t, []any{"test"}, r.Value)

	r = plus.Match(0, []any{"a", "b", 3})
	require.True(t, r.Matched())
	assert.Equal(t, 2, r.Consumed)
	assert.Equal(t, []any{"a", "b"}, r.Value)

	r = plus.Match(0, nil)
	require.False(t, r.Matched())
	assert.Equal(t, "was expecting 1 to many of string starting at position 0", r.Failure.Msg)

	r = plus.Match(0, []any{nil})
	require.False(t, r.Matched(), "nullish fallback only applies to optional quantifiers")
	assert.Equal(t, "null", r.Failure.Got)

	r = star.Match(0, nil)
	require.True(t, r.Matched())
	assert.Equal(t, 0, r.Consumed)
	assert.Equal(t, []any{}, r.Value)

	r = star.Match(0, []any{nil})
	require.True(t, r.Matched())
	assert.Equal(t, []any{nil}, r.Value)

	r = star.Match(0, []any{"a", nil})
	require.True(t, r.Matched())
	assert.Equal(t, 1, r.Consumed, "nullish fallback only before anything was consumed")
	assert.Equal(t, []any{"a"}, r.Value)

	num := Repeat(cls, Primitive(cls, value.Number), 0, math.MaxInt)
	r = num.Match(0, []any{math.NaN()})
	require.True(t, r.Matched())
	assert.Equal(t, []any{nil}, r.Value)

	min, max := Bounds(star)
	assert.Equal(t, 0, min)
	assert.Equal(t, math.MaxInt, max)
	assert.Equal(t, KindQuantifier, star.Kind())
	require.Len(t, Children(star), 1)
}

func TestRepeat_Bounded(t *testing.T) {
	pair := Repeat(cls, Primitive(cls, value.Number), 2, 3)
	assert.Equal(t, "2 to 3 of number", pair.Description())

	assert.False(t, pair.Match(0, []any{1}).Matched())

	r := pair.Match(0, []any{1, 2})
	require.True(t, r.Matched())
	assert.Equal(t, []any{1, 2}, r.Value)

	r = pair.Match(0, []any{1, 2, 3, 4})
	require.True(t, r.Matched())
	assert.Equal(t, 3, r.Consumed)
	assert.Equal(t, []any{1, 2, 3}, r.Value)

	one := Repeat(cls, Primitive(cls, value.Number), 1, 1)
	r = one.Match(0, []any{5})
	require.True(t, r.Matched())
	assert.Equal(t, 5, r.Value, "max 1 yields a scalar")
}

func TestOneOf(t *testing.T) {
	alt := OneOf(
		Primitive(cls, value.Array),
		Repeat(cls, Primitive(cls, value.Number), 0, math.MaxInt),
	)
	assert.Equal(t, "array OR 0 to many of number", alt.Description())
	assert.Equal(t, KindAlternation, alt.Kind())
	assert.Len(t, Children(alt), 2)

	r := alt.Match(0, []any{[]any{1}})
	require.True(t, r.Matched())
	assert.Equal(t, []any{1}, r.Value)
	assert.Equal(t, 1, r.Consumed)

	r = alt.Match(0, []any{1, 2, 3})
	require.True(t, r.Matched())
	assert.Equal(t, 3, r.Consumed)
	assert.Equal(t, []any{1, 2, 3}, r.Value)
}

func TestOneOf_FirstSuccessWins(t *testing.T) {
	alt := OneOf(Primitive(cls, value.Any), Primitive(cls, value.String))
	r := alt.Match(0, []any{"s"})
	require.True(t, r.Matched())
	assert.Equal(t, "s", r.Value)
}

func TestOneOf_Failure(t *testing.T) {
	alt := OneOf(Primitive(cls, value.Object), Primitive(cls, value.Number))

	r := alt.Match(0, []any{"s"})
	require.False(t, r.Matched())
	assert.Equal(t, "none of the alternatives matched, was expecting object OR number at position 0", r.Failure.Msg)
	assert.Equal(t, "string", r.Failure.Got)
	require.Len(t, r.Failure.Alternatives, 2)
	assert.Equal(t, "object", r.Failure.Alternatives[0].Expected)
	assert.Equal(t, "number", r.Failure.Alternatives[1].Expected)
}

func TestMatch_DoesNotModifyArgs(t *testing.T) {
	args := []any{nil, "a", math.NaN()}
	snapshot := append([]any(nil), args...)

	Repeat(cls, Primitive(cls, value.String), 0, math.MaxInt).Match(0, args)
	Not(cls, Primitive(cls, value.String)).Match(1, args)
	OneOf(Primitive(cls, value.Number), Primitive(cls, value.Any)).Match(2, args)

	assert.Equal(t, snapshot[:2], args[:2])
	assert.True(t, math.IsNaN(args[2].(float64)))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "primitive", KindPrimitive.String())
	assert.Equal(t, "alternation", KindAlternation.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
	assert.Equal(t, "a", article(""))
	assert.Equal(t, "an", article("error"))
}
