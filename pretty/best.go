package pretty

import (
	"fmt"

	"docfmt/util"
)

// item is an entry of the resolver's work list: a document waiting to be laid
// out at a given indentation.
type item struct {
	indent int
	d      Doc
}

// Stream is the lazily resolved Normal Form of a document.  Each call to Next
// runs the resolver only until the next element is decided, so very large
// documents can be rendered without materializing their layout.
//
// The resolver keeps an explicit work list instead of recursing over the
// document: long concatenation chains (argument lists, record fields) would
// otherwise need a call frame per element.
type Stream struct {
	// w is the page width
	w int

	// k is the current column
	k int

	// work is the work list; its top is the next document to lay out
	work util.Stack[item]

	// below is a read-only view of the work list of the stream that created
	// this one.  Only probes have it: they continue into the rest of the
	// document after the group being tested without consuming it.
	below *util.Stack[item]
	depth int

	// probe indicates that this stream only measures a candidate layout for
	// a group decision.  Probes never decide groups themselves: every group
	// they reach is taken in its broken form.
	probe bool
}

// Best resolves every group of d for page width w, starting at the given
// column, and returns the resulting Normal Form.
func Best(w, column int, d Doc) *Stream {
	s := &Stream{w: w, k: column}
	s.work.Push(item{0, d})
	return s
}

// pop takes the next item off the work list, falling through to the view of
// the parent work list once this stream's own items are exhausted.
func (s *Stream) pop() (item, bool) {
	if !s.work.Empty() {
		return s.work.Pop(), true
	}

	if s.depth > 0 {
		s.depth--
		return s.below.Ref(s.depth), true
	}

	return item{}, false
}

// Next returns the next element of the Normal Form.  The second return value
// is false once the document is exhausted.
func (s *Stream) Next() (Elem, bool) {
	for {
		it, ok := s.pop()
		if !ok {
			return Elem{}, false
		}

		switch t := it.d.(type) {
		case nilDoc, nil:
			// nothing to lay out
		case concat:
			// b goes underneath a so that a is laid out first
			s.work.Push(item{it.indent, t.b})
			s.work.Push(item{it.indent, t.a})
		case nest:
			s.work.Push(item{clampIndent(it.indent + t.n), t.d})
		case text:
			if t.s == "" {
				continue
			}

			s.k += textWidth(t.s)
			return Elem{Kind: TextElem, Text: t.s, Tag: t.tag}, true
		case line:
			s.k = it.indent + textWidth(t.broken)
			return Elem{Kind: LineElem, Indent: it.indent, Sep: t.broken}, true
		case union:
			if !s.probe && s.fitsFlat(it.indent, t.flat) {
				s.work.Push(item{it.indent, t.flat})
			} else {
				s.work.Push(item{it.indent, t.broken})
			}
		case column:
			s.work.Push(item{it.indent, t.f(s.k)})
		case nesting:
			s.work.Push(item{it.indent, t.f(it.indent)})
		default:
			panic(fmt.Errorf("unknown document type: %T", it.d))
		}
	}
}

// fitsFlat decides a group: it reports whether the flat layout of the group,
// followed by the rest of the document up to its next line break, fits in
// what remains of the current line.
func (s *Stream) fitsFlat(indent int, flat Doc) bool {
	if s.w <= 0 {
		return false
	}

	p := &Stream{
		w:     s.w,
		k:     s.k,
		below: &s.work,
		depth: s.work.Len(),
		probe: true,
	}
	p.work.Push(item{indent, flat})

	return fits(s.w-s.k, p)
}

// clampIndent keeps an indentation from going negative.
func clampIndent(i int) int {
	if i < 0 {
		return 0
	}

	return i
}
