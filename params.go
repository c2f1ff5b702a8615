package funs

import "github.com/copenhas/funs/value"

// Params is the normalized parameter list handed to a target: one entry per
// position of the pattern. Quantified positions that may hold several values
// carry a []any; an optional position that was not supplied carries
// value.Undefined.
type Params []any

// Len returns the number of parameters.
func (p Params) Len() int {
	return len(p)
}

// At returns parameter i, or value.Undefined when i is out of range.
func (p Params) At(i int) any {
	if i < 0 || i >= len(p) {
		return value.Undefined
	}
	return p[i]
}

// Defined reports whether parameter i holds something other than nil,
// undefined or NaN under the default classifier.
func (p Params) Defined(i int) bool {
	return p.DefinedBy(value.Default, i)
}

// DefinedBy is like Defined but classifies with cls. Targets compiled against
// a custom vocabulary pass Func.Classifier.
func (p Params) DefinedBy(cls value.Classifier, i int) bool {
	return !cls.Classify(p.At(i)).IsNullish()
}

// List returns parameter i as a list. Lists are returned as is, absent values
// as nil, and any other value as a one element list.
func (p Params) List(i int) []any {
	v := p.At(i)
	if l, ok := v.([]any); ok {
		return l
	}
	if value.IsUndefined(v) || v == nil {
		return nil
	}
	return []any{v}
}

// Clone returns a copy of p.
func (p Params) Clone() Params {
	return append(Params(nil), p...)
}

// Arg returns parameter i converted to T.
func Arg[T any](p Params, i int) (T, bool) {
	t, ok := p.At(i).(T)
	return t, ok
}

// Opt returns parameter i as an Option; nullish values are None.
func Opt[T any](p Params, i int) value.Option[T] {
	return value.OptionOf[T](p.At(i))
}
