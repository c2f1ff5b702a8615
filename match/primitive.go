package match

import (
	"fmt"
	"strings"

	"github.com/copenhas/funs/funserr"
	"github.com/copenhas/funs/value"
)

type primitive struct {
	cls      value.Classifier
	tags     []value.Tag
	wildcard bool
	desc     string
}

// Primitive builds a leaf matcher that consumes one argument whose tag is one
// of tags. value.Any among the tags accepts every value.
func Primitive(cls value.Classifier, tags ...value.Tag) Matcher {
	names := make([]string, len(tags))
	wildcard := false
	for i, t := range tags {
		names[i] = string(t)
		if t == value.Any {
			wildcard = true
		}
	}
	return &primitive{
		cls:      cls,
		tags:     append([]value.Tag(nil), tags...),
		wildcard: wildcard,
		desc:     strings.Join(names, " or "),
	}
}

func (p *primitive) Match(cursor int, args []any) Result {
	if cursor >= len(args) {
		return missing(cursor, p.desc)
	}
	arg := args[cursor]
	if p.wildcard {
		return success(1, arg)
	}
	got := p.cls.Classify(arg)
	for _, t := range p.tags {
		if t == got {
			return success(1, arg)
		}
	}
	return failure(funserr.NewMatchError(cursor, p.desc, string(got),
		fmt.Sprintf("was expecting %s %s at position %d but got %s %s",
			article(p.desc), p.desc, cursor, article(string(got)), got)))
}

func (p *primitive) Kind() Kind          { return KindPrimitive }
func (p *primitive) Description() string { return p.desc }

type callback struct {
	fn  Matcher
	cls value.Classifier
}

// Callback builds the matcher of a callback slot: a single function argument.
func Callback(cls value.Classifier) Matcher {
	return &callback{fn: Primitive(cls, value.Function), cls: cls}
}

func (c *callback) Match(cursor int, args []any) Result {
	r := c.fn.Match(cursor, args)
	if r.Matched() {
		return r
	}
	if cursor >= len(args) {
		return missing(cursor, "callback")
	}
	got := c.cls.Classify(args[cursor])
	return failure(funserr.NewMatchError(cursor, "callback", string(got),
		fmt.Sprintf("was expecting a callback at position %d but got %s %s",
			cursor, article(string(got)), got)))
}

func (c *callback) Kind() Kind          { return KindCallback }
func (c *callback) Description() string { return "callback" }
