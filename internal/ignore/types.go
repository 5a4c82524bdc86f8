package ignore

import (
	"github.com/bethropolis/concat-code/internal/utils"
)

// FileName is the ignore file read from the top level of each root.
// Ignore files in subdirectories are not consulted.
const FileName = ".gitignore"

// Decision is the outcome of classifying a path.
type Decision int

const (
	Included Decision = iota
	Excluded
)

func (d Decision) String() string {
	if d == Excluded {
		return "excluded"
	}
	return "included"
}

// Engine evaluates a compiled rule set against a root-relative,
// slash-separated file path. Implementations must be pure: the same
// path always yields the same answer and nothing touches the filesystem.
type Engine interface {
	Excludes(relativePath string) bool
}

// IgnoreMatcher classifies paths under one root directory
type IgnoreMatcher struct {
	engine Engine

	// Configuration flags
	rootDir    string
	engineName string
	loadedFrom string // path of the ignore file, empty when none was found
	logger     utils.Logger
}
