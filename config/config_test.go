package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docfmt/common"
	"docfmt/pretty"
)

const twoProfiles = `
[docfmt]
version = "0.1.0"

[[docfmt.profiles]]
name = "wide"
width = 120
use-tabs = true

[[docfmt.profiles]]
name = "narrow"
width = 40
tab-width = 2
default = true
`

func writeConfig(t *testing.T, dir, contents string) string {
	t.Helper()

	path := filepath.Join(dir, common.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func errorContains(t *testing.T, err error, substr string) {
	t.Helper()

	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), substr)
	}
}

func TestLoadProfileDefault(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, twoProfiles)

	prof, err := LoadProfile(dir, "")
	require.NoError(t, err)

	assert.Equal(t, &Profile{Name: "narrow", ConfigPath: path, Width: 40, TabWidth: 2}, prof)
}

func TestLoadProfileSelected(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, twoProfiles)

	prof, err := LoadProfile(dir, "wide")
	require.NoError(t, err)

	assert.Equal(t, "wide", prof.Name)
	assert.Equal(t, 120, prof.Width)
	assert.Equal(t, common.DefaultTabWidth, prof.TabWidth)
	assert.True(t, prof.UseTabs)

	_, err = LoadProfile(dir, "medium")
	errorContains(t, err, "no profile `medium`")
}

func TestLoadProfileWalksUp(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, twoProfiles)

	sub := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	found, ok := FindConfig(sub)
	require.True(t, ok)
	assert.Equal(t, path, found)

	prof, err := LoadProfile(sub, "")
	require.NoError(t, err)
	assert.Equal(t, "narrow", prof.Name)
}

func TestLoadProfileNoFile(t *testing.T) {
	dir := t.TempDir()

	prof, err := LoadProfile(dir, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultProfile(), prof)

	_, err = LoadProfile(dir, "wide")
	assert.Error(t, err)
}

func TestLoadProfileFirstWithoutDefault(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[docfmt]
[[docfmt.profiles]]
name = "first"
width = 60
[[docfmt.profiles]]
name = "second"
width = 70
`)

	prof, err := LoadProfile(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "first", prof.Name)
	assert.Equal(t, 60, prof.Width)
}

func TestLoadProfileInvalid(t *testing.T) {
	testCases := []struct {
		name     string
		contents string
		message  string
	}{
		{"no table", `version = "0.1.0"`, "missing `[docfmt]` table"},
		{"bad width", "[docfmt]\n[[docfmt.profiles]]\nname = \"p\"\nwidth = 0\n", "profile `p` must have a positive width"},
		{"bad tab width", "[docfmt]\n[[docfmt.profiles]]\nname = \"p\"\ntab-width = -1\n", "profile `p` must have a positive tab width"},
		{"bad name", "[docfmt]\n[[docfmt.profiles]]\nname = \"9lives\"\n", "profile name `9lives` must be a valid identifier"},
		{"duplicate", "[docfmt]\n[[docfmt.profiles]]\nname = \"p\"\n[[docfmt.profiles]]\nname = \"p\"\n", "multiple profiles named `p`"},
		{"two defaults", "[docfmt]\n[[docfmt.profiles]]\nname = \"p\"\ndefault = true\n[[docfmt.profiles]]\nname = \"q\"\ndefault = true\n", "only one profile may be marked default"},
		{"syntax", "[docfmt\n", common.ConfigFileName},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tc.contents)

			_, err := LoadProfile(dir, "")
			errorContains(t, err, tc.message)
		})
	}
}

func TestInitConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, InitConfig(dir))

	prof, err := LoadProfile(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "default", prof.Name)
	assert.Equal(t, common.DefaultWidth, prof.Width)
	assert.Equal(t, common.DefaultTabWidth, prof.TabWidth)
	assert.False(t, prof.UseTabs)

	assert.ErrorIs(t, InitConfig(dir), ErrConfigExists)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("DOCFMT_WIDTH", "100")
	t.Setenv("DOCFMT_USE_TABS", "true")

	prof := DefaultProfile()
	require.NoError(t, ApplyEnv(prof, ""))

	assert.Equal(t, pretty.Options{Width: 100, UseTabs: true, TabWidth: common.DefaultTabWidth}, prof.Options())
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Setenv("DOCFMT_WIDTH", "wide")
	assert.Error(t, ApplyEnv(DefaultProfile(), ""))

	t.Setenv("DOCFMT_WIDTH", "0")
	errorContains(t, ApplyEnv(DefaultProfile(), ""), "DOCFMT_WIDTH must be positive")
}

func TestApplyEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DOCFMT_TAB_WIDTH=2\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("DOCFMT_TAB_WIDTH") })

	prof := DefaultProfile()
	require.NoError(t, ApplyEnv(prof, envFile))
	assert.Equal(t, 2, prof.TabWidth)
	assert.Equal(t, common.DefaultWidth, prof.Width)

	assert.Error(t, ApplyEnv(DefaultProfile(), filepath.Join(t.TempDir(), "missing.env")))
}
