package config

import (
	"fmt"
	"os"
	"path/filepath"

	"docfmt/common"
	"docfmt/logging"

	"github.com/pelletier/go-toml"
)

// tomlConfigFile represents the configuration file as it is encoded in TOML
type tomlConfigFile struct {
	Config *tomlConfig `toml:"docfmt"`
}

// tomlConfig represents the `[docfmt]` table
type tomlConfig struct {
	Version  string         `toml:"version"`
	Profiles []*tomlProfile `toml:"profiles"`
}

// tomlProfile represents a profile as it is encoded in TOML
type tomlProfile struct {
	Name        string `toml:"name"`
	Width       int    `toml:"width" default:"80"`
	TabWidth    int    `toml:"tab-width" default:"4"`
	UseTabs     bool   `toml:"use-tabs"`
	DefaultProf bool   `toml:"default"` // in absence of --profile, choose this profile
}

// FindConfig searches dir and each of its parents for a configuration file
// and returns the path to the first one found
func FindConfig(dir string) (string, bool) {
	absdir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	for {
		path := filepath.Join(absdir, common.ConfigFileName)
		if finfo, err := os.Stat(path); err == nil && !finfo.IsDir() {
			return path, true
		}

		parent := filepath.Dir(absdir)
		if parent == absdir {
			return "", false
		}

		absdir = parent
	}
}

// LoadProfile finds, loads and validates the configuration governing `dir` and
// selects a profile from it.  `selected` may be empty if no profile was
// selected in which case the profile marked default is used.  If there is no
// configuration file at all, the built-in default profile is returned.
func LoadProfile(dir, selected string) (*Profile, error) {
	path, ok := FindConfig(dir)
	if !ok {
		if selected != "" {
			return nil, fmt.Errorf("no %s found; cannot select profile `%s`", common.ConfigFileName, selected)
		}

		return DefaultProfile(), nil
	}

	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(path, cfg); err != nil {
		return nil, err
	}

	prof, err := selectProfile(path, cfg, selected)
	if err != nil {
		return nil, err
	}

	return prof, nil
}

// loadFile loads and unmarshals the configuration file at path
func loadFile(path string) (*tomlConfig, error) {
	tree, err := toml.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if !tree.Has("docfmt") {
		return nil, fmt.Errorf("%s: missing `[docfmt]` table", path)
	}

	tcf := &tomlConfigFile{}
	if err := tree.Unmarshal(tcf); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return tcf.Config, nil
}

// validateConfig checks that the configuration and all its profiles are valid
func validateConfig(path string, cfg *tomlConfig) error {
	if cfg.Version != "" && cfg.Version != common.DocfmtVersion {
		logging.LogConfigWarning(
			"Config",
			fmt.Sprintf("version of %s (v%s) does not match current docfmt version (v%s)", path, cfg.Version, common.DocfmtVersion),
		)
	}

	names := make(map[string]struct{})
	defaultCount := 0
	for _, prof := range cfg.Profiles {
		if !common.IsValidIdentifier(prof.Name) {
			return fmt.Errorf("%s: profile name `%s` must be a valid identifier", path, prof.Name)
		}

		if _, ok := names[prof.Name]; ok {
			return fmt.Errorf("%s: multiple profiles named `%s`", path, prof.Name)
		}
		names[prof.Name] = struct{}{}

		if prof.Width <= 0 {
			return fmt.Errorf("%s: profile `%s` must have a positive width", path, prof.Name)
		}

		if prof.TabWidth <= 0 {
			return fmt.Errorf("%s: profile `%s` must have a positive tab width", path, prof.Name)
		}

		if prof.DefaultProf {
			defaultCount++
		}
	}

	if defaultCount > 1 {
		return fmt.Errorf("%s: only one profile may be marked default", path)
	}

	return nil
}

// selectProfile picks the profile named `selected`, or the default profile if
// none was selected.  When no profile is marked default, the first profile is
// used.
func selectProfile(path string, cfg *tomlConfig, selected string) (*Profile, error) {
	if selected != "" {
		for _, prof := range cfg.Profiles {
			if prof.Name == selected {
				return convertProfile(path, prof), nil
			}
		}

		return nil, fmt.Errorf("%s: no profile `%s`", path, selected)
	}

	if len(cfg.Profiles) == 0 {
		prof := DefaultProfile()
		prof.ConfigPath = path
		return prof, nil
	}

	for _, prof := range cfg.Profiles {
		if prof.DefaultProf {
			return convertProfile(path, prof), nil
		}
	}

	return convertProfile(path, cfg.Profiles[0]), nil
}

func convertProfile(path string, prof *tomlProfile) *Profile {
	return &Profile{
		Name:       prof.Name,
		ConfigPath: path,
		Width:      prof.Width,
		TabWidth:   prof.TabWidth,
		UseTabs:    prof.UseTabs,
	}
}
