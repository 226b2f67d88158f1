package sexpr

import (
	"fmt"
	"strings"

	"docfmt/pretty"
)

// CompileError is an error interpreting an S-expression as a document.
type CompileError struct {
	Form      string
	Line, Col int
	Message   string
}

func (ce *CompileError) Error() string {
	if ce.Form == "" {
		return fmt.Sprintf("%d:%d: %s", ce.Line, ce.Col, ce.Message)
	}

	return fmt.Sprintf("%d:%d: (%s): %s", ce.Line, ce.Col, ce.Form, ce.Message)
}

func (ce *CompileError) Position() (int, int, string) {
	if ce.Form == "" {
		return ce.Line, ce.Col, ce.Message
	}

	return ce.Line, ce.Col, fmt.Sprintf("(%s): %s", ce.Form, ce.Message)
}

// Compile interprets e as a document built from the layout combinators.  A
// string is a text; a list is a combinator applied to its arguments:
//
//	(text s...)             (empty)            (line)         (tightline)
//	(space)                 (break flat broken)
//	(cat d...)              (group d...)       (align d...)
//	(nest n d...)           (hang n d...)      (indent n d...)
//	(join sep d...)         (lines d...)       (words d...)   (sep d...)
//	(separators s d...)     (surround open close d...)
//	(list open close sep d...)
//
// Where a combinator takes a single document, several are concatenated.  The
// bare symbols line, tightline, space and empty stand for the corresponding
// nullary forms.
func Compile(e *SExp) (pretty.Doc, error) {
	switch e.Kind {
	case KindString:
		if strings.ContainsRune(e.Str, '\n') {
			return nil, &CompileError{Line: e.Line, Col: e.Col, Message: "text may not contain a newline; use (line)"}
		}

		return pretty.Text(e.Str), nil
	case KindSymbol:
		if d, ok := nullaryForms[e.Symbol]; ok {
			return d, nil
		}

		return nil, &CompileError{Line: e.Line, Col: e.Col, Message: fmt.Sprintf("unknown symbol `%s`", e.Symbol)}
	case KindInt:
		return nil, &CompileError{Line: e.Line, Col: e.Col, Message: fmt.Sprintf("unexpected integer %d", e.Integer)}
	}

	if len(e.List) == 0 {
		return nil, &CompileError{Line: e.Line, Col: e.Col, Message: "empty form"}
	}

	head := e.List[0]
	if head.Kind != KindSymbol {
		return nil, &CompileError{Line: head.Line, Col: head.Col, Message: "form must begin with a combinator name"}
	}

	c := &compiler{form: head.Symbol, line: e.Line, col: e.Col, args: e.List[1:]}

	if d, ok := nullaryForms[c.form]; ok {
		if err := c.arity(0, 0); err != nil {
			return nil, err
		}

		return d, nil
	}

	switch c.form {
	case "text":
		strs, err := c.strArgs(0, len(c.args))
		if err != nil {
			return nil, err
		}

		for _, s := range strs {
			if strings.ContainsRune(s, '\n') {
				return nil, c.errorf("text may not contain a newline; use (line)")
			}
		}

		return pretty.Text(strings.Join(strs, "")), nil
	case "break":
		if err := c.arity(2, 2); err != nil {
			return nil, err
		}

		strs, err := c.strArgs(0, 2)
		if err != nil {
			return nil, err
		}

		for _, s := range strs {
			if strings.ContainsRune(s, '\n') {
				return nil, c.errorf("separator may not contain a newline")
			}
		}

		return pretty.Break(strs[0], strs[1]), nil
	case "cat":
		return c.docs(0)
	case "group":
		return c.wrap(0, pretty.Group)
	case "align":
		return c.wrap(0, pretty.Align)
	case "nest", "hang", "indent":
		if err := c.arity(2, -1); err != nil {
			return nil, err
		}

		n, err := c.integer(0)
		if err != nil {
			return nil, err
		}

		if n > MaxIndent || n < -MaxIndent {
			return nil, c.errorf("indentation %d is out of range [%d, %d]", n, -MaxIndent, MaxIndent)
		}

		d, err := c.docs(1)
		if err != nil {
			return nil, err
		}

		switch c.form {
		case "nest":
			return pretty.Nest(n, d), nil
		case "hang":
			return pretty.Hang(n, d), nil
		default:
			return pretty.Indent(n, d), nil
		}
	case "join":
		if err := c.arity(1, -1); err != nil {
			return nil, err
		}

		sep, err := Compile(c.args[0])
		if err != nil {
			return nil, err
		}

		docs, err := c.docList(1)
		if err != nil {
			return nil, err
		}

		return pretty.Join(sep, docs), nil
	case "lines", "words", "sep":
		docs, err := c.docList(0)
		if err != nil {
			return nil, err
		}

		switch c.form {
		case "lines":
			return pretty.Lines(docs), nil
		case "words":
			return pretty.Words(docs), nil
		default:
			return pretty.Sep(docs), nil
		}
	case "separators":
		if err := c.arity(1, -1); err != nil {
			return nil, err
		}

		strs, err := c.strArgs(0, 1)
		if err != nil {
			return nil, err
		}

		docs, err := c.docList(1)
		if err != nil {
			return nil, err
		}

		return pretty.Separators(strs[0], docs), nil
	case "surround":
		if err := c.arity(2, -1); err != nil {
			return nil, err
		}

		open, err := Compile(c.args[0])
		if err != nil {
			return nil, err
		}

		closing, err := Compile(c.args[1])
		if err != nil {
			return nil, err
		}

		d, err := c.docs(2)
		if err != nil {
			return nil, err
		}

		return pretty.Surround(open, closing, d), nil
	case "list":
		if err := c.arity(3, -1); err != nil {
			return nil, err
		}

		strs, err := c.strArgs(0, 3)
		if err != nil {
			return nil, err
		}

		docs, err := c.docList(3)
		if err != nil {
			return nil, err
		}

		return pretty.List(strs[0], strs[1], strs[2], docs), nil
	}

	return nil, c.errorf("unknown combinator")
}

// CompileAll interprets a sequence of top-level forms as one concatenated
// document.
func CompileAll(forms []*SExp) (pretty.Doc, error) {
	docs := make([]pretty.Doc, len(forms))
	for i, form := range forms {
		d, err := Compile(form)
		if err != nil {
			return nil, err
		}

		docs[i] = d
	}

	return pretty.Cat(docs...), nil
}

// MaxIndent bounds the amount a single nest, hang or indent form may add to
// the indentation.
const MaxIndent = 1000

// nullaryForms are the combinators which take no arguments.
var nullaryForms = map[string]pretty.Doc{
	"empty":     pretty.Nil,
	"line":      pretty.Line,
	"tightline": pretty.TightLine,
	"space":     pretty.Space,
}

// -----------------------------------------------------------------------------

// compiler holds the state for compiling a single combinator form.
type compiler struct {
	form      string
	line, col int
	args      []*SExp
}

func (c *compiler) errorf(format string, args ...interface{}) error {
	return &CompileError{Form: c.form, Line: c.line, Col: c.col, Message: fmt.Sprintf(format, args...)}
}

// arity checks the number of arguments.  A max of -1 means unbounded.
func (c *compiler) arity(min, max int) error {
	n := len(c.args)
	switch {
	case min == max && n != min:
		return c.errorf("expected %d arguments, got %d", min, n)
	case n < min:
		return c.errorf("expected at least %d arguments, got %d", min, n)
	case max >= 0 && n > max:
		return c.errorf("expected at most %d arguments, got %d", max, n)
	}

	return nil
}

// strArgs returns the arguments in [from, to) which must all be strings.
func (c *compiler) strArgs(from, to int) ([]string, error) {
	strs := make([]string, 0, to-from)
	for _, arg := range c.args[from:to] {
		if arg.Kind != KindString {
			return nil, c.errorf("expected a string, got `%s`", arg)
		}

		strs = append(strs, arg.Str)
	}

	return strs, nil
}

// integer returns the argument at i which must be an integer.
func (c *compiler) integer(i int) (int, error) {
	if c.args[i].Kind != KindInt {
		return 0, c.errorf("expected an integer, got `%s`", c.args[i])
	}

	return c.args[i].Integer, nil
}

// docList compiles every argument from index from onwards.
func (c *compiler) docList(from int) ([]pretty.Doc, error) {
	docs := make([]pretty.Doc, 0, len(c.args)-from)
	for _, arg := range c.args[from:] {
		d, err := Compile(arg)
		if err != nil {
			return nil, err
		}

		docs = append(docs, d)
	}

	return docs, nil
}

// docs compiles every argument from index from onwards and concatenates them.
func (c *compiler) docs(from int) (pretty.Doc, error) {
	docs, err := c.docList(from)
	if err != nil {
		return nil, err
	}

	return pretty.Cat(docs...), nil
}

// wrap applies a single-document combinator to the concatenated arguments.
func (c *compiler) wrap(from int, f func(pretty.Doc) pretty.Doc) (pretty.Doc, error) {
	if err := c.arity(from+1, -1); err != nil {
		return nil, err
	}

	d, err := c.docs(from)
	if err != nil {
		return nil, err
	}

	return f(d), nil
}
