package pattern

import (
	"fmt"
	"unicode/utf8"

	"github.com/copenhas/funs/funserr"
	"github.com/copenhas/funs/internal/scan"
	"github.com/copenhas/funs/vocab"
)

type parser struct {
	s      *scan.Scanner
	tok    scan.Token
	v      *vocab.Vocabulary
	prefix string
	errs   []error
}

func newParser(src string, v *vocab.Vocabulary) *parser {
	p := &parser{s: scan.New(src), v: v}
	p.advance()
	return p
}

func (p *parser) advance() {
	p.tok = p.s.Next()
}

func (p *parser) errorf(at scan.Token, format string, args ...any) {
	p.errs = append(p.errs, funserr.NewDefinitionErrorAt(at.Column, at.Text, p.prefix+fmt.Sprintf(format, args...)))
}

func (p *parser) err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return &funserr.MultiError{Errors: p.errs}
}

// skip discards tokens up to the next comma or the end of the input.
func (p *parser) skip() {
	for p.tok.Kind != scan.Comma && p.tok.Kind != scan.EOF {
		p.advance()
	}
}

// Parse parses a comma-separated pattern. The empty pattern (only
// whitespace) yields no positions. Syntax errors are collected per position
// and returned together as a *funserr.MultiError.
func Parse(src string, v *vocab.Vocabulary) ([]PositionSpec, error) {
	p := newParser(src, v)
	if p.tok.Kind == scan.EOF {
		return nil, nil
	}

	var specs []PositionSpec
	for {
		spec, ok := p.position()
		switch {
		case !ok:
			p.skip()
		case p.tok.Kind != scan.Comma && p.tok.Kind != scan.EOF:
			p.errorf(p.tok, "unexpected %s", p.tok)
			p.skip()
		default:
			specs = append(specs, spec)
		}
		if p.tok.Kind == scan.EOF {
			break
		}
		p.advance()
	}

	if err := p.err(); err != nil {
		return nil, err
	}
	return specs, nil
}

// ParseTokens parses a pattern given as one string per position. A token may
// contain alternatives but no comma.
func ParseTokens(tokens []string, v *vocab.Vocabulary) ([]PositionSpec, error) {
	specs := make([]PositionSpec, 0, len(tokens))
	var errs []error
	for i, src := range tokens {
		p := newParser(src, v)
		p.prefix = fmt.Sprintf("position %d: ", i)
		if p.tok.Kind == scan.EOF {
			p.errorf(p.tok, "empty position")
		} else if spec, ok := p.position(); ok {
			if p.tok.Kind != scan.EOF {
				p.errorf(p.tok, "unexpected %s", p.tok)
			} else {
				specs = append(specs, spec)
			}
		}
		errs = append(errs, p.errs...)
	}

	if len(errs) > 0 {
		return nil, &funserr.MultiError{Errors: errs}
	}
	return specs, nil
}

func (p *parser) position() (PositionSpec, bool) {
	spec := PositionSpec{Column: p.tok.Column}
	for {
		alt, ok := p.alternative()
		if !ok {
			return PositionSpec{}, false
		}
		spec.Alternatives = append(spec.Alternatives, alt)
		if p.tok.Kind != scan.Pipe {
			return spec, true
		}
		p.advance()
	}
}

func (p *parser) alternative() (TypeToken, bool) {
	tok := TypeToken{Column: p.tok.Column}

	if p.tok.Kind == scan.Symbol {
		r, _ := utf8.DecodeRuneInString(p.tok.Text)
		if !p.v.IsNegation(r) {
			p.errorf(p.tok, "unexpected %s, expected a type name", p.tok)
			return TypeToken{}, false
		}
		tok.Modifier = r
		p.advance()
	}

	switch p.tok.Kind {
	case scan.Ident:
		tok.Name = p.tok.Text
		p.advance()
	case scan.Comma, scan.Pipe, scan.EOF:
		p.errorf(p.tok, "empty position, expected a type name before %s", p.tok.Kind)
		return TypeToken{}, false
	default:
		p.errorf(p.tok, "unexpected %s, expected a type name", p.tok)
		return TypeToken{}, false
	}

	if p.tok.Kind == scan.Symbol {
		r, _ := utf8.DecodeRuneInString(p.tok.Text)
		if _, ok := p.v.Quantifier(r); ok {
			tok.Quantifier = r
			p.advance()
		}
	}
	return tok, true
}
