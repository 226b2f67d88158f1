package sexpr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	forms, err := Parse(`
; leading comment
(define x 10) ; trailing comment
(greet "hi \"there\"\n" -3 +4 - a-b?)
()`)
	require.NoError(t, err)
	require.Len(t, forms, 3)

	def := forms[0]
	assert.Equal(t, KindList, def.Kind)
	assert.Equal(t, 3, def.Line)
	assert.Equal(t, 1, def.Col)
	assert.True(t, def.List[0].IsSymbol("define"))
	assert.Equal(t, KindInt, def.List[2].Kind)
	assert.Equal(t, 10, def.List[2].Integer)

	greet := forms[1].List
	assert.Equal(t, KindString, greet[1].Kind)
	assert.Equal(t, "hi \"there\"\n", greet[1].Str)
	assert.Equal(t, -3, greet[2].Integer)
	assert.Equal(t, 4, greet[3].Integer)
	assert.True(t, greet[4].IsSymbol("-"))
	assert.True(t, greet[5].IsSymbol("a-b?"))
	assert.Equal(t, 4, greet[1].Line)
	assert.Equal(t, 8, greet[1].Col)

	assert.Equal(t, KindList, forms[2].Kind)
	assert.Empty(t, forms[2].List)
}

func TestSExpString(t *testing.T) {
	e, err := ParseOne(`(a   (b "c\td")
	   42)`)
	require.NoError(t, err)
	assert.Equal(t, `(a (b "c\td") 42)`, e.String())
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		src       string
		line, col int
		message   string
	}{
		{"(a b", 1, 1, "unclosed `(`"},
		{"a)", 1, 2, "unexpected `)`"},
		{`(a "b`, 1, 4, "unterminated string literal"},
		{"\"a\nb\"", 1, 1, "newline in string literal"},
		{`"\q"`, 1, 2, "unknown escape sequence `\\q`"},
		{"(a\n  [b])", 2, 3, "unrecognized character '['"},
	}

	for _, tc := range testCases {
		_, err := Parse(tc.src)

		var se *SyntaxError
		if assert.True(t, errors.As(err, &se), "expected a syntax error for %q, got %v", tc.src, err) {
			assert.Equal(t, tc.line, se.Line, "line for %q", tc.src)
			assert.Equal(t, tc.col, se.Col, "column for %q", tc.src)
			assert.Equal(t, tc.message, se.Message, "message for %q", tc.src)
		}
	}
}

func TestParseOneCount(t *testing.T) {
	_, err := ParseOne("a b")
	assert.EqualError(t, err, "1:1: expected exactly one expression, found 2")

	_, err = ParseOne("")
	assert.Error(t, err)
}
