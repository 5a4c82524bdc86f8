package ignore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bethropolis/concat-code/internal/utils"
)

// New builds a matcher for rootDir from the text of an ignore file.
// Empty content excludes nothing.
func New(rootDir string, content []byte, opts ...Option) (*IgnoreMatcher, error) {
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	// Initialize with default configuration
	matcher := &IgnoreMatcher{
		rootDir:    absRootDir,
		engineName: EngineGitignore,
		logger:     &utils.NoopLogger{},
	}

	// Apply functional options
	for _, opt := range opts {
		opt(matcher)
	}

	factory, err := lookupEngine(matcher.engineName)
	if err != nil {
		return nil, err
	}

	matcher.engine = factory(content, absRootDir, matcher.logger)
	matcher.logger.Debug("ignore.New: Compiled %d bytes of rules for %s with the %s engine",
		len(content), absRootDir, matcher.engineName)
	return matcher, nil
}

// Load reads the ignore file at the top level of rootDir and builds a
// matcher from it. A missing file yields a matcher that excludes nothing;
// any other read failure is returned.
func Load(rootDir string, opts ...Option) (*IgnoreMatcher, error) {
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	path := filepath.Join(absRootDir, FileName)
	content, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		content = nil
		path = ""
	case err != nil:
		return nil, fmt.Errorf("ignore: failed to read %s: %w", path, err)
	}

	matcher, err := New(absRootDir, content, opts...)
	if err != nil {
		return nil, err
	}
	matcher.loadedFrom = path
	if path == "" {
		matcher.logger.Debug("ignore.Load: No %s in %s, nothing will be excluded", FileName, absRootDir)
	} else {
		matcher.logger.Debug("ignore.Load: Loaded rules from %s", path)
	}
	return matcher, nil
}

// Source returns the path of the ignore file the rules came from, or ""
// when the root has none.
func (m *IgnoreMatcher) Source() string {
	if m == nil {
		return ""
	}
	return m.loadedFrom
}

// Engine returns the name of the engine in use.
func (m *IgnoreMatcher) Engine() string {
	if m == nil {
		return ""
	}
	return m.engineName
}
