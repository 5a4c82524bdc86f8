package utils

import (
	"path/filepath"
	"strings"
)

// SlashRel returns target relative to root in forward-slash form,
// independent of the host separator. Both paths should be absolute.
func SlashRel(root, target string) (string, error) {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return "", err
	}
	return NormalizeRel(rel), nil
}

// NormalizeRel converts a relative path to the form ignore rules are matched
// against: forward slashes, no leading "./", no trailing slash.
func NormalizeRel(rel string) string {
	rel = filepath.ToSlash(rel)
	for strings.HasPrefix(rel, "./") {
		rel = rel[2:]
	}
	rel = strings.TrimSuffix(rel, "/")
	if rel == "" {
		return "."
	}
	return rel
}

// DisplayRoot renders a root directory the way the user typed it, cleaned and
// slash-separated, for use in output headers.
func DisplayRoot(root string) string {
	return filepath.ToSlash(filepath.Clean(root))
}

// JoinDisplay joins a display root and a slash-relative path with exactly one
// separator between them.
func JoinDisplay(root, rel string) string {
	if strings.HasSuffix(root, "/") {
		return root + rel
	}
	return root + "/" + rel
}
