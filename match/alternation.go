package match

import (
	"fmt"
	"strings"

	"github.com/copenhas/funs/funserr"
)

type alternation struct {
	members []Matcher
	desc    string
}

// OneOf tries members in order at the same cursor and returns the first
// success. Order is the tie-break.
func OneOf(members ...Matcher) Matcher {
	descs := make([]string, len(members))
	for i, m := range members {
		descs[i] = m.Description()
	}
	return &alternation{
		members: append([]Matcher(nil), members...),
		desc:    strings.Join(descs, " OR "),
	}
}

func (a *alternation) Match(cursor int, args []any) Result {
	failures := make([]*funserr.MatchError, 0, len(a.members))
	for _, m := range a.members {
		r := m.Match(cursor, args)
		if r.Matched() {
			return r
		}
		failures = append(failures, r.Failure)
	}

	got := ""
	if len(failures) > 0 {
		got = failures[0].Got
	}
	err := funserr.NewMatchError(cursor, a.desc, got,
		fmt.Sprintf("none of the alternatives matched, was expecting %s at position %d", a.desc, cursor))
	err.Alternatives = failures
	return failure(err)
}

func (a *alternation) Kind() Kind          { return KindAlternation }
func (a *alternation) Description() string { return a.desc }

func (a *alternation) Children() []Matcher {
	return append([]Matcher(nil), a.members...)
}
