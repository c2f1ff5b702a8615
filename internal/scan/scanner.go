// Package scan tokenizes pattern text. It reads through an ANTLR character
// stream so positions are reported the same way for every input encoding.
package scan

import (
	"fmt"
	"unicode"

	"github.com/antlr4-go/antlr/v4"
)

// Kind identifies a token class.
type Kind int

const (
	EOF Kind = iota
	Ident
	Comma
	Pipe
	Symbol
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "end of pattern"
	case Ident:
		return "name"
	case Comma:
		return "','"
	case Pipe:
		return "'|'"
	case Symbol:
		return "symbol"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is a lexeme with its 1-based column.
type Token struct {
	Kind   Kind
	Text   string
	Column int
}

func (t Token) String() string {
	if t.Kind == EOF {
		return t.Kind.String()
	}
	return fmt.Sprintf("%q", t.Text)
}

// Scanner produces tokens from pattern text.
type Scanner struct {
	input antlr.CharStream
}

// New creates a scanner over src.
func New(src string) *Scanner {
	return &Scanner{input: antlr.NewInputStream(src)}
}

// Next returns the next token. After the input is exhausted it keeps
// returning EOF tokens.
func (s *Scanner) Next() Token {
	s.skipSpace()

	start := s.input.Index()
	column := start + 1
	c := s.input.LA(1)
	if c == antlr.TokenEOF {
		return Token{Kind: EOF, Column: column}
	}

	r := rune(c)
	switch {
	case isIdentStart(r):
		for c := s.input.LA(1); c != antlr.TokenEOF && isIdentPart(rune(c)); c = s.input.LA(1) {
			s.input.Consume()
		}
		return Token{Kind: Ident, Text: s.input.GetText(start, s.input.Index()-1), Column: column}
	case r == ',':
		s.input.Consume()
		return Token{Kind: Comma, Text: ",", Column: column}
	case r == '|':
		s.input.Consume()
		return Token{Kind: Pipe, Text: "|", Column: column}
	default:
		s.input.Consume()
		return Token{Kind: Symbol, Text: string(r), Column: column}
	}
}

// All scans src to the end and returns every token including the final EOF.
func All(src string) []Token {
	s := New(src)
	var out []Token
	for {
		t := s.Next()
		out = append(out, t)
		if t.Kind == EOF {
			return out
		}
	}
}

func (s *Scanner) skipSpace() {
	for c := s.input.LA(1); c != antlr.TokenEOF && unicode.IsSpace(rune(c)); c = s.input.LA(1) {
		s.input.Consume()
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
