// Package pattern parses argument patterns and compiles them into matcher
// sequences.
//
// Grammar:
//
//	pattern      := positionSpec ("," positionSpec)*
//	positionSpec := altToken ("|" altToken)*
//	altToken     := modifier? typeName quantifier?
//
// Modifier and quantifier symbols, as well as the type names, come from the
// vocab.Vocabulary the pattern is compiled against.
package pattern

import "strings"

// TypeToken is one alternative of a position.
type TypeToken struct {
	Name       string
	Modifier   rune // 0 when absent
	Quantifier rune // 0 when absent
	Column     int  // 1-based column of the token
}

func (t TypeToken) String() string {
	var sb strings.Builder
	if t.Modifier != 0 {
		sb.WriteRune(t.Modifier)
	}
	sb.WriteString(t.Name)
	if t.Quantifier != 0 {
		sb.WriteRune(t.Quantifier)
	}
	return sb.String()
}

// PositionSpec is one comma-separated slot of a pattern.
type PositionSpec struct {
	Alternatives []TypeToken
	Column       int
}

func (p PositionSpec) String() string {
	parts := make([]string, len(p.Alternatives))
	for i, alt := range p.Alternatives {
		parts[i] = alt.String()
	}
	return strings.Join(parts, "|")
}
