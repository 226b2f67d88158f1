package config

import (
	"docfmt/common"
	"docfmt/pretty"
)

// Profile is the layout configuration docfmt formats with -- it is returned
// from `LoadProfile`.
type Profile struct {
	// Name is the name of the profile ("default" for the built-in profile)
	Name string

	// ConfigPath is the path to the file the profile was loaded from.  It is
	// empty if no configuration file was found.
	ConfigPath string

	// Width is the page width documents are laid out to fit
	Width int

	// TabWidth is the number of columns one tab counts for when indentation
	// is written with tabs
	TabWidth int

	// UseTabs indicates whether indentation should be written with tabs
	UseTabs bool
}

// DefaultProfile returns the profile used in absence of a configuration file
func DefaultProfile() *Profile {
	return &Profile{
		Name:     "default",
		Width:    common.DefaultWidth,
		TabWidth: common.DefaultTabWidth,
	}
}

// Options converts the profile into rendering options
func (p *Profile) Options() pretty.Options {
	return pretty.Options{
		Width:    p.Width,
		UseTabs:  p.UseTabs,
		TabWidth: p.TabWidth,
	}
}
