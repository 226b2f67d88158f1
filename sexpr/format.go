package sexpr

import (
	"strconv"

	"docfmt/pretty"
)

// Tag classifies the texts of a formatted S-expression so renderers can
// style them.
type Tag int

// Enumeration of formatting tags
const (
	TagParen Tag = iota
	TagHead      // symbol in head position of a list
	TagSymbol
	TagString
	TagInt
)

var (
	openParen  = pretty.Tagged(TagParen, "(")
	closeParen = pretty.Tagged(TagParen, ")")
)

// Format lays out e in the classic Lisp style: a list stays on one line if it
// fits and otherwise its arguments are stacked and aligned under the first
// argument:
//
//	(define (square x)
//	        (* x x))
//
// A list whose head is not an atom aligns all of its elements under the
// head instead.
func Format(e *SExp) pretty.Doc {
	switch e.Kind {
	case KindInt:
		return pretty.Tagged(TagInt, strconv.Itoa(e.Integer))
	case KindSymbol:
		return pretty.Tagged(TagSymbol, e.Symbol)
	case KindString:
		return pretty.Tagged(TagString, Quote(e.Str))
	}

	if len(e.List) == 0 {
		return pretty.Tagged(TagParen, "()")
	}

	head := e.List[0]
	if head.Kind == KindList {
		elems := make([]pretty.Doc, len(e.List))
		for i, elem := range e.List {
			elems[i] = Format(elem)
		}

		return pretty.Group(pretty.Cat(openParen, pretty.Align(pretty.Lines(elems)), closeParen))
	}

	var headDoc pretty.Doc
	if head.Kind == KindSymbol {
		headDoc = pretty.Tagged(TagHead, head.Symbol)
	} else {
		headDoc = Format(head)
	}

	if len(e.List) == 1 {
		return pretty.Cat(openParen, headDoc, closeParen)
	}

	args := make([]pretty.Doc, len(e.List)-1)
	for i, arg := range e.List[1:] {
		args[i] = Format(arg)
	}

	return pretty.Group(pretty.Cat(
		openParen,
		headDoc,
		pretty.Space,
		pretty.Align(pretty.Lines(args)),
		closeParen,
	))
}

// FormatAll lays out a sequence of top-level forms separated by blank lines.
func FormatAll(forms []*SExp) pretty.Doc {
	docs := make([]pretty.Doc, len(forms))
	for i, form := range forms {
		docs[i] = Format(form)
	}

	return pretty.Join(pretty.Concat(pretty.TightLine, pretty.TightLine), docs)
}
