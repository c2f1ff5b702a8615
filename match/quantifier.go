package match

import (
	"fmt"
	"math"

	"github.com/copenhas/funs/funserr"
	"github.com/copenhas/funs/value"
)

type quantifier struct {
	inner    Matcher
	cls      value.Classifier
	min, max int
	desc     string
}

// Repeat matches inner greedily between min and max times. Use math.MaxInt
// for an unbounded max.
//
// An optional quantifier (min 0) that fails before consuming anything still
// takes a nullish argument at the cursor: null and NaN normalize to nil and
// undefined to value.Undefined.
func Repeat(cls value.Classifier, inner Matcher, min, max int) Matcher {
	upper := "many"
	if max != math.MaxInt {
		upper = fmt.Sprint(max)
	}
	return &quantifier{
		inner: inner,
		cls:   cls,
		min:   min,
		max:   max,
		desc:  fmt.Sprintf("%d to %s of %s", min, upper, inner.Description()),
	}
}

func (q *quantifier) Match(cursor int, args []any) Result {
	pos := cursor
	consumed := 0
	values := make([]any, 0)

	for pos < len(args) && len(values) < q.max {
		r := q.inner.Match(pos, args)
		if r.Matched() {
			values = append(values, r.Value)
			pos += r.Consumed
			consumed += r.Consumed
			continue
		}

		if q.min == 0 && consumed == 0 {
			switch q.cls.Classify(args[pos]) {
			case value.Null, value.NaN:
				values = append(values, nil)
				consumed++
			case value.Undef:
				values = append(values, value.Undefined)
				consumed++
			}
		}
		break
	}

	if consumed < q.min || consumed > q.max {
		got := ""
		if pos < len(args) {
			got = string(q.cls.Classify(args[pos]))
		}
		return failure(funserr.NewMatchError(cursor, q.desc, got,
			fmt.Sprintf("was expecting %s starting at position %d", q.desc, cursor)))
	}

	switch {
	case q.max == 1 && len(values) == 1:
		return success(consumed, values[0])
	case q.min == 0 && q.max == 1 && len(values) == 0:
		return success(consumed, value.Undefined)
	default:
		return success(consumed, values)
	}
}

func (q *quantifier) Kind() Kind             { return KindQuantifier }
func (q *quantifier) Description() string    { return q.desc }
func (q *quantifier) Bounds() (min, max int) { return q.min, q.max }
func (q *quantifier) Children() []Matcher    { return []Matcher{q.inner} }
