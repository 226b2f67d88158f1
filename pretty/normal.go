package pretty

import "github.com/rivo/uniseg"

// ElemKind is the kind of a Normal Form element
type ElemKind int

// Enumeration of Normal Form element kinds
const (
	TextElem ElemKind = iota // literal text
	LineElem                 // newline, indentation and a separator
)

// Elem is one element of the Normal Form: the choice-free sequence the
// resolver produces and the renderer consumes.  The end of the sequence is
// signalled by the producer rather than by a sentinel element.
type Elem struct {
	Kind ElemKind

	// Text and Tag are set for TextElem
	Text string
	Tag  interface{}

	// Indent and Sep are set for LineElem: the line renders as a newline,
	// Indent columns of indentation and then Sep
	Indent int
	Sep    string
}

// elemSource is anything producing Normal Form elements one at a time.
type elemSource interface {
	Next() (Elem, bool)
}

// Collect drains a stream of Normal Form elements into a slice.
func Collect(s *Stream) []Elem {
	var elems []Elem
	for {
		e, ok := s.Next()
		if !ok {
			return elems
		}

		elems = append(elems, e)
	}
}

// textWidth returns the number of columns s occupies on a terminal.  Control
// characters (tabs included) count for one column each, as in plain ASCII
// text.
func textWidth(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return uniseg.StringWidth(s) + controlCount(s)
		}
	}

	return len(s)
}

// controlCount returns the number of ASCII control characters in s, which
// uniseg measures as zero columns wide.
func controlCount(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7f {
			n++
		}
	}

	return n
}

// TextWidth returns the number of columns the layout engine assigns to s.
// Callers checking output against a page width should measure with this.
func TextWidth(s string) int {
	return textWidth(s)
}
