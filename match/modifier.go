package match

import (
	"fmt"

	"github.com/copenhas/funs/funserr"
	"github.com/copenhas/funs/value"
)

type negation struct {
	inner Matcher
	cls   value.Classifier
	desc  string
}

// Not inverts inner: it accepts one argument that inner rejects, provided the
// argument is not null, undefined or NaN.
func Not(cls value.Classifier, inner Matcher) Matcher {
	return &negation{
		inner: inner,
		cls:   cls,
		desc:  "anything besides " + inner.Description(),
	}
}

func (n *negation) Match(cursor int, args []any) Result {
	if cursor >= len(args) {
		return missing(cursor, n.desc)
	}
	got := n.cls.Classify(args[cursor])
	if !n.inner.Match(cursor, args).Matched() && !got.IsNullish() {
		return success(1, args[cursor])
	}
	return failure(funserr.NewMatchError(cursor, n.desc, string(got),
		fmt.Sprintf("expected %s at position %d but got %s %s",
			n.desc, cursor, article(string(got)), got)))
}

func (n *negation) Kind() Kind          { return KindModifier }
func (n *negation) Description() string { return n.desc }
func (n *negation) Children() []Matcher { return []Matcher{n.inner} }
