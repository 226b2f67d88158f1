package pretty

// Space is a single space.
var Space = Text(" ")

// Join intersperses sep between docs.  Empty documents are skipped so they do
// not produce doubled separators.
func Join(sep Doc, docs []Doc) Doc {
	result := Nil
	first := true

	// walk backwards so the resulting chain leans right
	for i := len(docs) - 1; i >= 0; i-- {
		if isNil(docs[i]) {
			continue
		}

		if first {
			result = docs[i]
			first = false
		} else {
			result = Concat(docs[i], Concat(sep, result))
		}
	}

	return result
}

// Lines joins docs with line breaks.
func Lines(docs []Doc) Doc {
	return Join(Line, docs)
}

// Words joins docs with single spaces.
func Words(docs []Doc) Doc {
	return Join(Space, docs)
}

// Separators joins docs with breaks that render as sep both when flat and
// after the indentation when broken: this produces leading-separator lists
// such as
//
//	[ a
//	, b
//	]
func Separators(sep string, docs []Doc) Doc {
	return Join(Break(sep, sep), docs)
}

// Sep lays docs out on one line separated by spaces if they fit, otherwise
// one per line.
func Sep(docs []Doc) Doc {
	return Group(Lines(docs))
}

// Surround places d between open and close.
func Surround(open, close, d Doc) Doc {
	return Cat(open, d, close)
}

// Parens surrounds d with parentheses.
func Parens(d Doc) Doc {
	return Surround(Text("("), Text(")"), d)
}

// Brackets surrounds d with square brackets.
func Brackets(d Doc) Doc {
	return Surround(Text("["), Text("]"), d)
}

// Braces surrounds d with curly braces.
func Braces(d Doc) Doc {
	return Surround(Text("{"), Text("}"), d)
}

// Align lays out d with its indentation set to the column it starts at, so
// broken lines inside d line up under its first character.
func Align(d Doc) Doc {
	return Column(func(k int) Doc {
		return Nesting(func(i int) Doc {
			return Nest(k-i, d)
		})
	})
}

// Hang aligns d to the current column and indents its broken lines by a
// further n columns.
func Hang(n int, d Doc) Doc {
	return Align(Nest(n, d))
}

// Indent indents all of d, including its first line, by n columns.
func Indent(n int, d Doc) Doc {
	return Hang(n, Concat(Text(spaces(n)), d))
}

// List lays out docs between open and close separated by sep.  The list is
// kept on one line if it fits; otherwise each element gets its own line,
// aligned under the first.
func List(open, close string, sep string, docs []Doc) Doc {
	return Group(Cat(
		Text(open),
		Align(Join(Concat(Text(sep), Line), docs)),
		Text(close),
	))
}
