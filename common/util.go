package common

import (
	"path/filepath"
	"strings"
)

// IsValidIdentifier returns whether or not a given string would be a valid
// identifier (profile name, etc.)
func IsValidIdentifier(idstr string) bool {
	if idstr == "" {
		return false
	}

	if idstr[0] == '_' || ('a' <= idstr[0] && idstr[0] <= 'z') || ('A' <= idstr[0] && idstr[0] <= 'Z') {
		for _, c := range idstr[1:] {
			if c == '_' || c == '-' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
				continue
			}

			return false
		}

		return true
	}

	return false
}

// IsSourceFile indicates whether the file at path is one docfmt knows how to
// format (judged by its extension)
func IsSourceFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case SExpExtension, DocExtension:
		return true
	}

	return false
}
