package cmd

import (
	"docfmt/logging"
	"docfmt/sexpr"

	"github.com/pterm/pterm"
)

var (
	parenStyle  = pterm.NewStyle(pterm.FgGray)
	headStyle   = pterm.NewStyle(pterm.FgLightBlue, pterm.Bold)
	stringStyle = pterm.NewStyle(logging.WarnColorFG)
	intStyle    = pterm.NewStyle(pterm.FgLightMagenta)
)

// styleText colors the tagged texts of a formatted S-expression for display
// in the terminal.  Symbols that are not in head position are left alone.
func styleText(tag interface{}, s string) string {
	t, ok := tag.(sexpr.Tag)
	if !ok {
		return s
	}

	switch t {
	case sexpr.TagParen:
		return parenStyle.Sprint(s)
	case sexpr.TagHead:
		return headStyle.Sprint(s)
	case sexpr.TagString:
		return stringStyle.Sprint(s)
	case sexpr.TagInt:
		return intStyle.Sprint(s)
	}

	return s
}
