// Package filter composes the walker with a root's ignore rules to produce
// the ordered list of files to emit.
package filter

import (
	"path/filepath"

	"github.com/bethropolis/concat-code/internal/utils"
)

// Entry is one file to emit: a path relative to the root it was found under.
type Entry struct {
	// Root is the root directory as the caller supplied it.
	Root string
	// AbsRoot is Root resolved to an absolute path.
	AbsRoot string
	// RelPath is slash-separated and relative to AbsRoot.
	RelPath string
}

// FullPath returns the file's location on disk.
func (e Entry) FullPath() string {
	return filepath.Join(e.AbsRoot, filepath.FromSlash(e.RelPath))
}

// Header returns "<root>/<relPath>", the label the printer writes above the
// file's content.
func (e Entry) Header() string {
	return utils.JoinDisplay(utils.DisplayRoot(e.Root), e.RelPath)
}
