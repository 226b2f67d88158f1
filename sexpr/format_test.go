package sexpr

import (
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"docfmt/pretty"
)

// TestFormatGolden checks the archives in testdata: each holds an `input`
// file and one `wN` file per page width with the expected layout.
func TestFormatGolden(t *testing.T) {
	archives, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}

	if len(archives) == 0 {
		t.Fatal("no golden archives found")
	}

	for _, path := range archives {
		t.Run(filepath.Base(path), func(t *testing.T) {
			ar, err := txtar.ParseFile(path)
			if err != nil {
				t.Fatal(err)
			}

			var input string
			for _, f := range ar.Files {
				if f.Name == "input" {
					input = string(f.Data)
				}
			}

			forms, err := Parse(input)
			if err != nil {
				t.Fatalf("parsing input: %v", err)
			}

			for _, f := range ar.Files {
				if !strings.HasPrefix(f.Name, "w") {
					continue
				}

				width, err := strconv.Atoi(f.Name[1:])
				if err != nil {
					t.Fatalf("bad width section %q", f.Name)
				}

				got := pretty.Pretty(width, FormatAll(forms)) + "\n"
				if diff := cmp.Diff(string(f.Data), got); diff != "" {
					t.Errorf("width %d mismatch (-want +got):\n%s", width, diff)
				}
			}
		})
	}
}

// TestFormatIsIdempotent re-reads formatted output and formats it again:
// the second pass must reproduce the first byte for byte.
func TestFormatIsIdempotent(t *testing.T) {
	src := `
(defun fact (n) (if (<= n 1) 1 (* n (fact (- n 1)))))
(let ((a 1) (b "two") (c (list 3 4 5))) (print a b c) (print "done"))
((compose f g) x)
()
`
	forms, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}

	for _, width := range []int{1, 8, 16, 24, 40, 80, 200} {
		first := pretty.Pretty(width, FormatAll(forms))

		reparsed, err := Parse(first)
		if err != nil {
			t.Fatalf("width %d: formatted output does not parse: %v\n%s", width, err, first)
		}

		second := pretty.Pretty(width, FormatAll(reparsed))
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("width %d: reformatting changed the output (-first +second):\n%s", width, diff)
		}
	}
}

func TestFormatTags(t *testing.T) {
	e, err := ParseOne(`(f x "s" 1 ())`)
	if err != nil {
		t.Fatal(err)
	}

	var tags []Tag
	for _, el := range pretty.Collect(pretty.Best(80, 0, Format(e))) {
		if el.Kind == pretty.TextElem && el.Tag != nil {
			tags = append(tags, el.Tag.(Tag))
		}
	}

	want := []Tag{TagParen, TagHead, TagSymbol, TagString, TagInt, TagParen, TagParen}
	if diff := cmp.Diff(want, tags); diff != "" {
		t.Errorf("tag sequence mismatch (-want +got):\n%s", diff)
	}
}
