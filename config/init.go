package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"docfmt/common"

	"github.com/pelletier/go-toml"
)

// ErrConfigExists is returned by InitConfig if a configuration file is already
// present
var ErrConfigExists = errors.New("configuration file already exists")

// InitConfig writes a configuration file with the default profile into dir
func InitConfig(dir string) error {
	path := filepath.Join(dir, common.ConfigFileName)

	// check to see if a configuration already exists
	_, err := os.Stat(path)
	if err == nil {
		return ErrConfigExists
	}

	if !os.IsNotExist(err) {
		return fmt.Errorf("config file error: %w", err)
	}

	cfg := &tomlConfig{
		Version: common.DocfmtVersion,
		Profiles: []*tomlProfile{{
			Name:        "default",
			Width:       common.DefaultWidth,
			TabWidth:    common.DefaultTabWidth,
			DefaultProf: true,
		}},
	}

	// encode and save the configuration to file
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(&tomlConfigFile{Config: cfg}); err != nil {
		return fmt.Errorf("error encoding TOML: %w", err)
	}

	return nil
}
