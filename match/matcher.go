// Package match implements the matcher combinators a compiled pattern is made
// of. Every matcher inspects the raw argument list from a cursor and reports
// an explicit Result; nothing here panics or relies on error strings to
// backtrack.
package match

import (
	"fmt"

	"github.com/copenhas/funs/funserr"
)

// Kind discriminates matchers.
type Kind int

const (
	KindPrimitive Kind = iota
	KindModifier
	KindQuantifier
	KindAlternation
	KindCallback
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindModifier:
		return "modifier"
	case KindQuantifier:
		return "quantifier"
	case KindAlternation:
		return "alternation"
	case KindCallback:
		return "callback"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is the outcome of a single Match call. Exactly one of the success
// fields or Failure is meaningful.
type Result struct {
	Consumed int // raw slots consumed
	Value    any // normalized value to append to the parameter list
	Failure  *funserr.MatchError
}

// Matched reports whether the match succeeded.
func (r Result) Matched() bool {
	return r.Failure == nil
}

func success(consumed int, v any) Result {
	return Result{Consumed: consumed, Value: v}
}

func failure(err *funserr.MatchError) Result {
	return Result{Failure: err}
}

// Matcher is the runtime form of one position of a pattern.
type Matcher interface {
	// Match inspects args starting at cursor. args is never modified.
	Match(cursor int, args []any) Result
	Kind() Kind
	Description() string
}

// Bounded is implemented by matchers with a repetition range.
type Bounded interface {
	Bounds() (min, max int)
}

// Bounds returns the repetition range of m; [1, 1] unless m is Bounded.
func Bounds(m Matcher) (min, max int) {
	if b, ok := m.(Bounded); ok {
		return b.Bounds()
	}
	return 1, 1
}

// Children returns the matchers m is built from, or nil for leaves.
func Children(m Matcher) []Matcher {
	if c, ok := m.(interface{ Children() []Matcher }); ok {
		return c.Children()
	}
	return nil
}

func article(word string) string {
	if word == "" {
		return "a"
	}
	switch word[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	}
	return "a"
}

func missing(cursor int, expected string) Result {
	return failure(funserr.NewMatchError(cursor, expected, "",
		fmt.Sprintf("was expecting %s %s at position %d but no argument was given",
			article(expected), expected, cursor)))
}
