package pattern

import (
	"fmt"
	"strings"

	"github.com/copenhas/funs/funserr"
	"github.com/copenhas/funs/match"
	"github.com/copenhas/funs/vocab"
)

// Pattern is a compiled pattern: one matcher per position, in order. It is
// immutable and safe for concurrent use.
type Pattern struct {
	specs    []PositionSpec
	matchers []match.Matcher
	callback int
}

// Compile parses and compiles a comma-separated pattern.
func Compile(src string, v *vocab.Vocabulary) (*Pattern, error) {
	specs, err := Parse(src, v)
	if err != nil {
		return nil, err
	}
	return Build(specs, v)
}

// CompileTokens parses and compiles a pattern given as one string per
// position.
func CompileTokens(tokens []string, v *vocab.Vocabulary) (*Pattern, error) {
	specs, err := ParseTokens(tokens, v)
	if err != nil {
		return nil, err
	}
	return Build(specs, v)
}

// Build resolves parsed positions against v and builds their matchers.
func Build(specs []PositionSpec, v *vocab.Vocabulary) (*Pattern, error) {
	cls := v.Classifier()
	p := &Pattern{
		specs:    append([]PositionSpec(nil), specs...),
		matchers: make([]match.Matcher, 0, len(specs)),
		callback: -1,
	}

	for i, spec := range specs {
		alts := make([]match.Matcher, 0, len(spec.Alternatives))
		for _, tok := range spec.Alternatives {
			entry, ok := v.Lookup(tok.Name)
			if !ok {
				err := funserr.NewDefinitionErrorAt(tok.Column, tok.Name,
					fmt.Sprintf("invalid argument pattern, %q is an unknown type", tok.Name))
				err.Suggestion = v.Suggest(tok.Name)
				return nil, err
			}

			var m match.Matcher
			if entry.Callback {
				if p.callback >= 0 {
					return nil, funserr.NewDefinitionErrorAt(tok.Column, tok.Name,
						fmt.Sprintf("callbacks have special meaning and only one callback is allowed "+
							"in a pattern, one was already given at position %d", p.callback))
				}
				p.callback = i
				m = match.Callback(cls)
			} else {
				m = match.Primitive(cls, entry.Tags...)
			}

			if tok.Modifier != 0 {
				m = match.Not(cls, m)
			}

			if tok.Quantifier != 0 {
				q, ok := v.Quantifier(tok.Quantifier)
				if !ok {
					return nil, funserr.NewDefinitionErrorAt(tok.Column, tok.String(),
						fmt.Sprintf("unknown quantifier %q", tok.Quantifier))
				}
				if entry.Callback && q.Max > 1 {
					return nil, funserr.NewDefinitionErrorAt(tok.Column, tok.String(),
						"callback has special meaning and there may only be a max of 1")
				}
				m = match.Repeat(cls, m, q.Min, q.Max)
			}

			alts = append(alts, m)
		}

		if len(alts) == 1 {
			p.matchers = append(p.matchers, alts[0])
		} else {
			p.matchers = append(p.matchers, match.OneOf(alts...))
		}
	}

	return p, nil
}

// Matchers returns the compiled matchers in position order.
func (p *Pattern) Matchers() []match.Matcher {
	return append([]match.Matcher(nil), p.matchers...)
}

// Specs returns the parsed positions.
func (p *Pattern) Specs() []PositionSpec {
	return append([]PositionSpec(nil), p.specs...)
}

// Len returns the number of positions.
func (p *Pattern) Len() int {
	return len(p.matchers)
}

// Matcher returns the matcher of position i.
func (p *Pattern) Matcher(i int) match.Matcher {
	return p.matchers[i]
}

// CallbackIndex returns the position of the callback slot, or -1.
func (p *Pattern) CallbackIndex() int {
	return p.callback
}

// Suffix returns the pattern made of positions [from:]. The callback index is
// shifted by from; a callback before from is reported as -1.
func (p *Pattern) Suffix(from int) *Pattern {
	cb := p.callback - from
	if p.callback < 0 || cb < 0 {
		cb = -1
	}
	return &Pattern{
		specs:    p.specs[from:],
		matchers: p.matchers[from:],
		callback: cb,
	}
}

func (p *Pattern) String() string {
	parts := make([]string, len(p.specs))
	for i, s := range p.specs {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}
