package sexpr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docfmt/pretty"
)

func render(t *testing.T, width int, src string) string {
	t.Helper()

	forms, err := Parse(src)
	require.NoError(t, err)

	d, err := CompileAll(forms)
	require.NoError(t, err)

	return pretty.Pretty(width, d)
}

func TestCompile(t *testing.T) {
	testCases := []struct {
		name  string
		width int
		src   string
		want  string
	}{
		{"join", 80, `(join ", " "a" "b" "c")`, "a, b, c"},
		{"group breaks", 5, `(group "aaaa" line "bbbb")`, "aaaa\nbbbb"},
		{"group fits", 80, `(group "aaaa" (line) "bbbb")`, "aaaa bbbb"},
		{"nest", 80, `(nest 4 (line) "x")`, "\n    x"},
		{"widest nest", 80, `(nest 1000 "x")`, "x"},
		{"empty join", 80, `(join ", ")`, ""},
		{"text concatenates", 80, `(text "a" "b") (space) (empty) "c"`, "ab c"},
		{"tightline", 1, `(group "a" tightline "b")`, "a\nb"},
		{"break", 3, `(group "x" (break "; " "-- ") "y")`, "x\n-- y"},
		{"lines and words", 80, `(lines "a" "b") (words "c" "d")`, "a\nbc d"},
		{"sep", 3, `(sep "a" "b")`, "a b"},
		{"sep breaks", 2, `(sep "a" "b")`, "a\nb"},
		{"align", 80, `"call(" (align (lines "a" "b")) ")"`, "call(a\n     b)"},
		{"hang", 80, `"x = " (hang 2 (lines "first" "second"))`, "x = first\n      second"},
		{"indent", 80, `"head" line (indent 3 (lines "a" "b"))`, "head\n   a\n   b"},
		{"surround", 80, `(surround "<" ">" "a" "b")`, "<ab>"},
		{"separators", 5, `(group "[ " (align (separators ", " "aa" "bb")) line "]")`, "[ aa\n  , bb\n]"},
		{"list", 10, `"f" (list "(" ")" "," "alpha" "beta")`, "f(alpha,\n  beta)"},
		{"cat", 80, `(cat "a" (cat) "b")`, "ab"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, render(t, tc.width, tc.src))
		})
	}
}

func TestCompileErrors(t *testing.T) {
	testCases := []struct {
		src     string
		message string
	}{
		{`(frob "a")`, `1:1: (frob): unknown combinator`},
		{`(nest "x" "y")`, "1:1: (nest): expected an integer, got `\"x\"`"},
		{`(break "a")`, `1:1: (break): expected 2 arguments, got 1`},
		{`(line "a")`, `1:1: (line): expected 0 arguments, got 1`},
		{`(group)`, `1:1: (group): expected at least 1 arguments, got 0`},
		{`(list "(" ")")`, `1:1: (list): expected at least 3 arguments, got 2`},
		{`(separators 1 "a")`, "1:1: (separators): expected a string, got `1`"},
		{`  42`, `1:3: unexpected integer 42`},
		{`nope`, "1:1: unknown symbol `nope`"},
		{`()`, `1:1: empty form`},
		{`(("a"))`, `1:2: form must begin with a combinator name`},
		{`"a\nb"`, `1:1: text may not contain a newline; use (line)`},
		{`(cat "a" (text "b\n"))`, `1:10: (text): text may not contain a newline; use (line)`},
		{`(break "\n" ",")`, `1:1: (break): separator may not contain a newline`},
		{`(break ", " "\n")`, `1:1: (break): separator may not contain a newline`},
		{`(indent 1000000000 "x")`, `1:1: (indent): indentation 1000000000 is out of range [-1000, 1000]`},
		{`(nest -1001 "x")`, `1:1: (nest): indentation -1001 is out of range [-1000, 1000]`},
	}

	for _, tc := range testCases {
		forms, err := Parse(tc.src)
		require.NoError(t, err, tc.src)

		_, err = CompileAll(forms)

		var ce *CompileError
		if assert.True(t, errors.As(err, &ce), "expected a compile error for %s, got %v", tc.src, err) {
			assert.Equal(t, tc.message, ce.Error())
		}
	}
}
