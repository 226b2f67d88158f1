package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// envOverrides are the profile settings which may be overridden from the
// environment.  Unset variables leave the profile's value alone.
type envOverrides struct {
	Width    int  `env:"DOCFMT_WIDTH"`
	TabWidth int  `env:"DOCFMT_TAB_WIDTH"`
	UseTabs  bool `env:"DOCFMT_USE_TABS"`
}

// ApplyEnv overrides the profile's settings with any set in the environment.
// If envFile is not empty, the variables it defines are loaded into the
// environment of the process first (variables already set take precedence).
func ApplyEnv(p *Profile, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("loading environment file: %w", err)
		}
	}

	ov := envOverrides{
		Width:    p.Width,
		TabWidth: p.TabWidth,
		UseTabs:  p.UseTabs,
	}

	if err := env.Parse(&ov); err != nil {
		return err
	}

	if ov.Width <= 0 {
		return fmt.Errorf("DOCFMT_WIDTH must be positive, got %d", ov.Width)
	}

	if ov.TabWidth <= 0 {
		return fmt.Errorf("DOCFMT_TAB_WIDTH must be positive, got %d", ov.TabWidth)
	}

	p.Width = ov.Width
	p.TabWidth = ov.TabWidth
	p.UseTabs = ov.UseTabs
	return nil
}
