// Package pretty lays out documents based on a target line width.
//
// See: https://homepages.inf.ed.ac.uk/wadler/papers/prettier/prettier.pdf
//
// A document (Doc) is an immutable tree of text, potential line breaks,
// concatenation, nesting and groups.  A group offers two layouts of the same
// content: its flattened form (every line break rendered as its flat
// separator) and the original.  The resolver ("best") walks the document and
// picks the flat side of each group if what follows still fits on the current
// line, otherwise the original.  The result is a choice-free Normal Form which
// the renderer turns into text.
package pretty

import (
	"fmt"
	"strconv"
	"strings"
)

// Doc represents a document tree.  Docs are built with the constructors and
// combinators in this package and are safe to share between documents.
type Doc interface {
	isDoc()

	// String returns a debug representation of the document tree.
	String() string
}

func (nilDoc) isDoc()  {}
func (text) isDoc()    {}
func (line) isDoc()    {}
func (concat) isDoc()  {}
func (nest) isDoc()    {}
func (union) isDoc()   {}
func (column) isDoc()  {}
func (nesting) isDoc() {}

// -----------------------------------------------------------------------------

// nilDoc is the empty document.
type nilDoc struct{}

// Nil is the empty document; it renders to nothing.
var Nil Doc = nilDoc{}

// Empty returns the empty document.
func Empty() Doc {
	return Nil
}

// text is an atomic run of characters that is never broken.  The tag is
// carried through to the Normal Form untouched.
type text struct {
	s   string
	tag interface{}
}

// Text creates a text document.  s must not contain newlines: the layout
// engine measures it as a single run.
func Text(s string) Doc {
	return text{s: s}
}

// Tagged creates a text document carrying a caller-defined tag.  Tags do not
// affect layout; they are handed to Options.Annotate when rendering.
func Tagged(tag interface{}, s string) Doc {
	return text{s: s, tag: tag}
}

// Char creates a text document holding a single character.
func Char(c rune) Doc {
	return text{s: string(c)}
}

// line is a potential line break.  When flattened it becomes the text flat;
// when broken it becomes a newline, the current indentation and broken.
type line struct {
	flat, broken string
}

var (
	// Line is a newline, or a single space when flattened.
	Line Doc = line{flat: " "}

	// TightLine is a newline, or nothing when flattened.
	TightLine Doc = line{}
)

// Break creates a line break which renders as flat when its group is
// flattened and as a newline followed by indentation and broken otherwise.
func Break(flat, broken string) Doc {
	return line{flat: flat, broken: broken}
}

// concat is the sequential composition of two documents.
type concat struct {
	a, b Doc
}

// Concat concatenates two documents.  Empty operands are dropped rather than
// inserted into the tree.
func Concat(a, b Doc) Doc {
	if isNil(a) {
		if b == nil {
			return Nil
		}

		return b
	}

	if isNil(b) {
		return a
	}

	return concat{a, b}
}

// Cat concatenates any number of documents from left to right.
func Cat(docs ...Doc) Doc {
	result := Nil

	// build the chain from the right so the tree leans right, which is the
	// order the resolver consumes it in
	for i := len(docs) - 1; i >= 0; i-- {
		result = Concat(docs[i], result)
	}

	return result
}

// nest increases the indentation of line breaks inside d by n columns.
type nest struct {
	n int
	d Doc
}

// Nest indents every line break inside d by n additional columns.  Negative
// amounts are allowed for composition but the effective indentation is never
// allowed to drop below zero.
func Nest(n int, d Doc) Doc {
	if isNil(d) {
		return Nil
	}

	return nest{n, d}
}

// union is the choice between a flat and a broken layout of the same content.
// flat must be the flattening of broken: this is guaranteed by Group, the only
// constructor, and is not re-checked during layout.
type union struct {
	flat, broken Doc
}

// Group will format d on one line if it fits in the remaining width.
func Group(d Doc) Doc {
	if isNil(d) {
		return Nil
	}

	return union{flatten(d), d}
}

// column is a document computed from the column it starts at.
type column struct {
	f func(int) Doc
}

// Column creates a document from the column at which it is laid out.  f is
// called during layout, never at construction.
func Column(f func(int) Doc) Doc {
	return column{f}
}

// nesting is a document computed from the current indentation level.
type nesting struct {
	f func(int) Doc
}

// Nesting creates a document from the indentation level in effect where it is
// laid out.  f is called during layout, never at construction.
func Nesting(f func(int) Doc) Doc {
	return nesting{f}
}

// isNil reports whether d is the empty document.  A nil interface is treated
// as empty too.
func isNil(d Doc) bool {
	if d == nil {
		return true
	}

	_, ok := d.(nilDoc)
	return ok
}

// -----------------------------------------------------------------------------

func (nilDoc) String() string { return "NIL" }

func (d text) String() string {
	if d.tag != nil {
		return fmt.Sprintf("(TEXT %q #%v)", d.s, d.tag)
	}

	return fmt.Sprintf("(TEXT %q)", d.s)
}

func (d line) String() string {
	switch {
	case d.flat == " " && d.broken == "":
		return "LINE"
	case d.flat == "" && d.broken == "":
		return "TIGHTLINE"
	default:
		return fmt.Sprintf("(LINE %q %q)", d.flat, d.broken)
	}
}

func (d concat) String() string { return fmt.Sprintf("(%s <> %s)", d.a, d.b) }
func (d nest) String() string   { return "(NEST " + strconv.Itoa(d.n) + " " + d.d.String() + ")" }
func (d union) String() string  { return fmt.Sprintf("(GROUP %s)", d.broken) }
func (column) String() string   { return "(COLUMN <func>)" }
func (nesting) String() string  { return "(NESTING <func>)" }

// spaces returns a string of n spaces (or the empty string if n <= 0).
func spaces(n int) string {
	if n <= 0 {
		return ""
	}

	return strings.Repeat(" ", n)
}
