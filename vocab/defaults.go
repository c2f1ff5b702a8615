package vocab

import (
	"sync"

	"github.com/copenhas/funs/value"
)

// DefaultBuilder returns a builder preloaded with the standard type names,
// the ?, + and * quantifiers and the ^ negation modifier. Callers may keep
// registering names before calling Build.
func DefaultBuilder() *Builder {
	return NewBuilder().
		Type("object", value.Object).
		Type("number", value.Number).
		Type("array", value.Array).
		Type("function", value.Function).
		Type("boolean", value.Boolean).
		Type("bool", value.Boolean).
		Type("date", value.Date).
		Type("string", value.String).
		Type("regexp", value.RegExp).
		Type("regex", value.RegExp).
		Type("error", value.Error).
		Type("any", value.Any).
		Callback(CallbackName).
		Quantifier('?', 0, 1).
		Quantifier('+', 1, Many).
		Quantifier('*', 0, Many).
		Negation('^')
}

var (
	defaultOnce  sync.Once
	defaultVocab *Vocabulary
)

// Default returns the shared standard vocabulary.
func Default() *Vocabulary {
	defaultOnce.Do(func() {
		defaultVocab = DefaultBuilder().MustBuild()
	})
	return defaultVocab
}
