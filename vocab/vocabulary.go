// Package vocab holds the immutable configuration a pattern is compiled
// against: the value classifier, the registered type names, the quantifier
// symbols and the negation modifier.
//
// A Vocabulary is assembled once with a Builder and never changes afterwards,
// so it can be shared by any number of compilations and concurrent calls.
package vocab

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/copenhas/funs/value"
)

// Many is the upper bound of an unbounded quantifier.
const Many = math.MaxInt

// CallbackName is the conventional name of the callback type.
const CallbackName = "callback"

// Entry describes a registered type name.
type Entry struct {
	Name     string      // Name as written in patterns: "bool"
	Tags     []value.Tag // Accepted tags; value.Any accepts everything
	Callback bool        // If true, the slot is the pattern's callback slot
}

// Quantifier describes a repetition suffix.
type Quantifier struct {
	Symbol rune
	Min    int
	Max    int // Many for unbounded
}

func (q Quantifier) String() string {
	upper := "many"
	if q.Max != Many {
		upper = fmt.Sprint(q.Max)
	}
	return fmt.Sprintf("%c (%d to %s)", q.Symbol, q.Min, upper)
}

// Vocabulary is the resolved, read-only configuration.
type Vocabulary struct {
	classifier  value.Classifier
	entries     map[string]Entry
	names       []string
	quantifiers map[rune]Quantifier
	negation    rune
}

// Classifier returns the classifier used by matchers built from this
// vocabulary.
func (v *Vocabulary) Classifier() value.Classifier {
	return v.classifier
}

// Lookup resolves a type name.
func (v *Vocabulary) Lookup(name string) (Entry, bool) {
	e, ok := v.entries[name]
	return e, ok
}

// Names returns all registered type names in sorted order.
func (v *Vocabulary) Names() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}

// Quantifier resolves a quantifier symbol.
func (v *Vocabulary) Quantifier(symbol rune) (Quantifier, bool) {
	q, ok := v.quantifiers[symbol]
	return q, ok
}

// Quantifiers returns all quantifiers ordered by symbol.
func (v *Vocabulary) Quantifiers() []Quantifier {
	out := make([]Quantifier, 0, len(v.quantifiers))
	for _, q := range v.quantifiers {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// Negation returns the negation modifier symbol, or 0 when negation is not
// enabled.
func (v *Vocabulary) Negation() rune {
	return v.negation
}

// IsNegation reports whether symbol is the negation modifier.
func (v *Vocabulary) IsNegation(symbol rune) bool {
	return v.negation != 0 && symbol == v.negation
}

// Suggest returns the registered name closest to an unknown one, or "".
func (v *Vocabulary) Suggest(name string) string {
	if name == "" {
		return ""
	}
	ranks := fuzzy.RankFindFold(name, v.names)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

// ConflictError is returned when a name or symbol is registered twice.
type ConflictError struct {
	Name string // The conflicting name or symbol
	Kind string // "type", "quantifier" or "modifier"
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s '%s' is already registered", e.Kind, e.Name)
}

// Builder assembles a Vocabulary.
type Builder struct {
	classifier  value.Classifier
	entries     map[string]Entry
	quantifiers map[rune]Quantifier
	negation    rune
	errs        []error
}

// NewBuilder creates an empty builder using value.Default as classifier.
func NewBuilder() *Builder {
	return &Builder{
		classifier:  value.Default,
		entries:     make(map[string]Entry),
		quantifiers: make(map[rune]Quantifier),
	}
}

// WithClassifier replaces the classifier.
func (b *Builder) WithClassifier(c value.Classifier) *Builder {
	if c == nil {
		b.errs = append(b.errs, fmt.Errorf("classifier must not be nil"))
		return b
	}
	b.classifier = c
	return b
}

// Type registers name as accepting any of the given tags.
func (b *Builder) Type(name string, tags ...value.Tag) *Builder {
	if len(tags) == 0 {
		b.errs = append(b.errs, fmt.Errorf("type '%s' needs at least one tag", name))
		return b
	}
	return b.add(Entry{Name: name, Tags: append([]value.Tag(nil), tags...)})
}

// Callback registers name as the callback type: a function slot that receives
// errors raised by the target.
func (b *Builder) Callback(name string) *Builder {
	return b.add(Entry{Name: name, Tags: []value.Tag{value.Function}, Callback: true})
}

func (b *Builder) add(e Entry) *Builder {
	if !validName(e.Name) {
		b.errs = append(b.errs, fmt.Errorf("invalid type name %q", e.Name))
		return b
	}
	if _, ok := b.entries[e.Name]; ok {
		b.errs = append(b.errs, &ConflictError{Name: e.Name, Kind: "type"})
		return b
	}
	b.entries[e.Name] = e
	return b
}

// Quantifier registers a repetition suffix with bounds [min, max]. Use Many
// for an unbounded max.
func (b *Builder) Quantifier(symbol rune, min, max int) *Builder {
	switch {
	case !validSymbol(symbol):
		b.errs = append(b.errs, fmt.Errorf("invalid quantifier symbol %q", symbol))
	case min < 0 || max < 1 || min > max:
		b.errs = append(b.errs, fmt.Errorf("invalid bounds [%d, %d] for quantifier %q", min, max, symbol))
	case b.taken(symbol):
		b.errs = append(b.errs, &ConflictError{Name: string(symbol), Kind: "quantifier"})
	default:
		b.quantifiers[symbol] = Quantifier{Symbol: symbol, Min: min, Max: max}
	}
	return b
}

// Negation enables the negation modifier with the given prefix symbol.
func (b *Builder) Negation(symbol rune) *Builder {
	switch {
	case !validSymbol(symbol):
		b.errs = append(b.errs, fmt.Errorf("invalid modifier symbol %q", symbol))
	case b.taken(symbol):
		b.errs = append(b.errs, &ConflictError{Name: string(symbol), Kind: "modifier"})
	default:
		b.negation = symbol
	}
	return b
}

func (b *Builder) taken(symbol rune) bool {
	_, ok := b.quantifiers[symbol]
	return ok || (b.negation != 0 && b.negation == symbol)
}

// Build validates the registrations and returns the immutable Vocabulary.
func (b *Builder) Build() (*Vocabulary, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("building vocabulary: %w", b.errs[0])
	}

	v := &Vocabulary{
		classifier:  b.classifier,
		entries:     make(map[string]Entry, len(b.entries)),
		names:       make([]string, 0, len(b.entries)),
		quantifiers: make(map[rune]Quantifier, len(b.quantifiers)),
		negation:    b.negation,
	}
	for name, e := range b.entries {
		v.entries[name] = e
		v.names = append(v.names, name)
	}
	sort.Strings(v.names)
	for sym, q := range b.quantifiers {
		v.quantifiers[sym] = q
	}
	return v, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Vocabulary {
	v, err := b.Build()
	if err != nil {
		panic(err)
	}
	return v
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}

func validSymbol(r rune) bool {
	if r == 0 || unicode.IsSpace(r) || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
		return false
	}
	return !strings.ContainsRune(",|", r)
}
