package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/bethropolis/concat-code/internal/utils"
)

// Walk lists every file below rootDir, depth-first, visiting the entries of
// each directory in lexical order. It returns full paths; directories are
// never returned.
//
// Regular files and symlinks are listed. Links are not followed: a link to a
// file is read through later, a link to a directory fails when read. Sockets,
// pipes and devices are passed over and reported to the tracker.
//
// The first error aborts the walk. An unreadable directory is not skipped.
func Walk(rootDir string, opts ...Option) ([]string, error) {
	startTime := time.Now()

	// Apply options
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: failed to get absolute path for '%s': %w", rootDir, err)
	}

	info, err := os.Stat(absRootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: cannot access root directory '%s': %w", rootDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("walker: root '%s' is not a directory", rootDir)
	}

	options.Logger.Debug("walker.Walk started. Root: %s", absRootDir)

	var files []string
	walkErr := filepath.WalkDir(absRootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walker: cannot read '%s': %w", path, err)
		}

		if d.IsDir() {
			if path != absRootDir {
				options.Logger.Debug("Walker: Descending into directory %q", path)
			}
			return nil
		}

		mode := d.Type()
		if !mode.IsRegular() && mode&fs.ModeSymlink == 0 {
			options.Logger.Debug("Walker: Passing over special file %q (%v)", path, mode)
			if rel, relErr := utils.SlashRel(absRootDir, path); relErr == nil {
				options.Tracker.Track(rel, ReasonSkippedNotRegular)
			}
			return nil
		}

		files = append(files, path)
		return nil
	})
	if walkErr != nil {
		options.Logger.Debug("Walker: Aborting traversal of %s: %v", absRootDir, walkErr)
		return nil, walkErr
	}

	options.Logger.Debug("Walker: Listed %d files under %s in %s", len(files), absRootDir, time.Since(startTime))
	return files, nil
}
