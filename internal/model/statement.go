package model

import "strings"

// Statement is an atomic proposition or its negation. Statements are value
// objects: two statements are equal iff they share the atom and the polarity,
// and a statement and its negation differ only in polarity.
type Statement struct {
	Atom     string `json:"atom"`
	Positive bool   `json:"positive"`
}

// Prop creates a positive statement for the given atom.
func Prop(atom string) Statement {
	return Statement{Atom: atom, Positive: true}
}

// Negate returns the opposite-polarity statement with the same atom.
func (s Statement) Negate() Statement {
	s.Positive = !s.Positive
	return s
}

// String renders negation as a "-" prefix (e.g. "-intent").
func (s Statement) String() string {
	if s.Positive {
		return s.Atom
	}
	return "-" + s.Atom
}

// ParseStatement reads the string form produced by String: a leading "-"
// marks a negated statement.
func ParseStatement(text string) Statement {
	if atom, ok := strings.CutPrefix(text, "-"); ok {
		return Statement{Atom: atom, Positive: false}
	}
	return Statement{Atom: text, Positive: true}
}
