package sexpr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SyntaxError is an error reading S-expression source.
type SyntaxError struct {
	Line, Col int
	Message   string
}

func (se *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", se.Line, se.Col, se.Message)
}

// Position returns the location of the error and its bare message.
func (se *SyntaxError) Position() (int, int, string) {
	return se.Line, se.Col, se.Message
}

// Parse reads every top-level S-expression in src.  Comments run from `;` to
// the end of the line and are discarded.
func Parse(src string) ([]*SExp, error) {
	p := &parser{sc: scanner{src: src, line: 1, col: 1}}

	var forms []*SExp
	for {
		tok, err := p.sc.next()
		if err != nil {
			return nil, err
		}

		if tok.kind == tokEOF {
			return forms, nil
		}

		form, err := p.parseFrom(tok)
		if err != nil {
			return nil, err
		}

		forms = append(forms, form)
	}
}

// ParseOne reads a source containing exactly one S-expression.
func ParseOne(src string) (*SExp, error) {
	forms, err := Parse(src)
	if err != nil {
		return nil, err
	}

	if len(forms) != 1 {
		return nil, &SyntaxError{Line: 1, Col: 1, Message: fmt.Sprintf("expected exactly one expression, found %d", len(forms))}
	}

	return forms[0], nil
}

// -----------------------------------------------------------------------------

type parser struct {
	sc scanner
}

// parseFrom parses the expression beginning with tok.
func (p *parser) parseFrom(tok token) (*SExp, error) {
	switch tok.kind {
	case tokLParen:
		list := &SExp{Kind: KindList, Line: tok.line, Col: tok.col}
		for {
			next, err := p.sc.next()
			if err != nil {
				return nil, err
			}

			switch next.kind {
			case tokRParen:
				return list, nil
			case tokEOF:
				return nil, &SyntaxError{Line: tok.line, Col: tok.col, Message: "unclosed `(`"}
			}

			elem, err := p.parseFrom(next)
			if err != nil {
				return nil, err
			}

			list.List = append(list.List, elem)
		}
	case tokRParen:
		return nil, &SyntaxError{Line: tok.line, Col: tok.col, Message: "unexpected `)`"}
	case tokString:
		return &SExp{Kind: KindString, Str: tok.value, Line: tok.line, Col: tok.col}, nil
	case tokAtom:
		if n, err := strconv.Atoi(tok.value); err == nil {
			return &SExp{Kind: KindInt, Integer: n, Line: tok.line, Col: tok.col}, nil
		}

		return &SExp{Kind: KindSymbol, Symbol: tok.value, Line: tok.line, Col: tok.col}, nil
	default:
		return nil, &SyntaxError{Line: tok.line, Col: tok.col, Message: "unexpected end of input"}
	}
}

// -----------------------------------------------------------------------------

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLParen
	tokRParen
	tokAtom
	tokString
)

type token struct {
	kind      tokenKind
	value     string
	line, col int
}

// scanner splits S-expression source into tokens.
type scanner struct {
	src       string
	pos       int
	line, col int
}

// peek returns the rune at the current position without consuming it.
func (sc *scanner) peek() (rune, bool) {
	if sc.pos >= len(sc.src) {
		return 0, false
	}

	r, _ := utf8.DecodeRuneInString(sc.src[sc.pos:])
	return r, true
}

// read consumes the rune at the current position.
func (sc *scanner) read() rune {
	r, size := utf8.DecodeRuneInString(sc.src[sc.pos:])
	sc.pos += size

	if r == '\n' {
		sc.line++
		sc.col = 1
	} else {
		sc.col++
	}

	return r
}

func (sc *scanner) errorf(line, col int, format string, args ...interface{}) error {
	return &SyntaxError{Line: line, Col: col, Message: fmt.Sprintf(format, args...)}
}

// next returns the next token in the source
func (sc *scanner) next() (token, error) {
	for {
		r, ok := sc.peek()
		if !ok {
			return token{kind: tokEOF, line: sc.line, col: sc.col}, nil
		}

		line, col := sc.line, sc.col

		switch {
		case unicode.IsSpace(r):
			sc.read()
		case r == ';':
			for r, ok := sc.peek(); ok && r != '\n'; r, ok = sc.peek() {
				sc.read()
			}
		case r == '(':
			sc.read()
			return token{kind: tokLParen, line: line, col: col}, nil
		case r == ')':
			sc.read()
			return token{kind: tokRParen, line: line, col: col}, nil
		case r == '"':
			sc.read()
			s, err := sc.readString(line, col)
			if err != nil {
				return token{}, err
			}

			return token{kind: tokString, value: s, line: line, col: col}, nil
		case isSymbolConstituent(r):
			var sb strings.Builder
			for r, ok := sc.peek(); ok && isSymbolConstituent(r); r, ok = sc.peek() {
				sb.WriteRune(sc.read())
			}

			return token{kind: tokAtom, value: sb.String(), line: line, col: col}, nil
		default:
			return token{}, sc.errorf(line, col, "unrecognized character %s", strconv.QuoteRune(r))
		}
	}
}

// readString reads the body of a string literal after its opening quote.
func (sc *scanner) readString(line, col int) (string, error) {
	var sb strings.Builder
	for {
		r, ok := sc.peek()
		if !ok {
			return "", sc.errorf(line, col, "unterminated string literal")
		}

		sc.read()
		switch r {
		case '"':
			return sb.String(), nil
		case '\n':
			return "", sc.errorf(line, col, "newline in string literal")
		case '\\':
			escLine, escCol := sc.line, sc.col-1
			esc, ok := sc.peek()
			if !ok {
				return "", sc.errorf(line, col, "unterminated string literal")
			}

			sc.read()
			switch esc {
			case '\\', '"':
				sb.WriteRune(esc)
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				return "", sc.errorf(escLine, escCol, "unknown escape sequence `\\%c`", esc)
			}
		default:
			sb.WriteRune(r)
		}
	}
}

func isSymbolConstituent(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}

	return strings.ContainsRune(":_*&-+/<>=!?.%$#@^~,", r)
}
