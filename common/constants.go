package common

const (
	DocfmtVersion  = "0.1.0"
	ConfigFileName = "docfmt.toml"

	// SExpExtension marks files formatted as Lisp-style S-expressions and
	// DocExtension marks files written in the document language
	SExpExtension = ".sexp"
	DocExtension  = ".doc"

	// DefaultWidth is the page width used when nothing is configured
	DefaultWidth = 80

	// DefaultTabWidth is the number of columns a tab counts for
	DefaultTabWidth = 4
)
