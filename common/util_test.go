package common

import "testing"

func TestIsValidIdentifier(t *testing.T) {
	testCases := map[string]bool{
		"default":   true,
		"_wide":     true,
		"tabs-8":    true,
		"Narrow40":  true,
		"":          false,
		"8wide":     false,
		"-x":        false,
		"has space": false,
	}

	for id, want := range testCases {
		if got := IsValidIdentifier(id); got != want {
			t.Errorf("IsValidIdentifier(%q) = %v; expected %v", id, got, want)
		}
	}
}

func TestIsSourceFile(t *testing.T) {
	testCases := map[string]bool{
		"a.sexp":      true,
		"dir/b.doc":   true,
		"UPPER.SEXP":  true,
		"notes.txt":   false,
		"docfmt.toml": false,
		"noextension": false,
	}

	for path, want := range testCases {
		if got := IsSourceFile(path); got != want {
			t.Errorf("IsSourceFile(%q) = %v; expected %v", path, got, want)
		}
	}
}
