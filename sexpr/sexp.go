// Package sexpr reads S-expressions and turns them into documents for the
// layout engine: either by formatting them as Lisp-style source or by
// interpreting them as calls to the document combinators.
package sexpr

import (
	"strconv"
	"strings"
)

// Kind is the kind of an S-expression
type Kind int

// Enumeration of S-expression kinds
const (
	KindInt Kind = iota
	KindSymbol
	KindString
	KindList
)

// SExp is a parsed S-expression.  Only the field matching Kind is set.
type SExp struct {
	Kind    Kind
	Integer int
	Symbol  string
	Str     string
	List    []*SExp

	// Line and Col locate the first character of the expression in its
	// source (both 1-based)
	Line, Col int
}

// IsSymbol reports whether e is the symbol name.
func (e *SExp) IsSymbol(name string) bool {
	return e.Kind == KindSymbol && e.Symbol == name
}

// String returns the canonical single-line form of e.
func (e *SExp) String() string {
	var sb strings.Builder
	e.write(&sb)
	return sb.String()
}

func (e *SExp) write(sb *strings.Builder) {
	switch e.Kind {
	case KindInt:
		sb.WriteString(strconv.Itoa(e.Integer))
	case KindSymbol:
		sb.WriteString(e.Symbol)
	case KindString:
		sb.WriteString(Quote(e.Str))
	case KindList:
		sb.WriteByte('(')
		for i, elem := range e.List {
			if i > 0 {
				sb.WriteByte(' ')
			}
			elem.write(sb)
		}
		sb.WriteByte(')')
	default:
		panic("bad S-expression")
	}
}

// Quote returns s as a string literal the reader accepts.
func Quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
