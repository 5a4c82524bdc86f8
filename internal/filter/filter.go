package filter

import (
	"fmt"
	"path/filepath"

	"github.com/bethropolis/concat-code/internal/ignore"
	"github.com/bethropolis/concat-code/internal/utils"
	"github.com/bethropolis/concat-code/internal/walker"
)

// Classifier decides whether a root-relative path is emitted.
// *ignore.IgnoreMatcher implements it.
type Classifier interface {
	Classify(relativePath string) ignore.Decision
}

// Result is the outcome of filtering one root.
type Result struct {
	Entries []Entry
	Skipped []walker.SkippedItem
}

// Option configures Files.
type Option func(*options)

type options struct {
	logger  utils.Logger
	exclude map[string]struct{}
}

// WithLogger sets the logger passed down to the walker.
func WithLogger(logger utils.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithExclude drops the files at the given absolute paths regardless of
// the ignore rules. The output file is passed here so a run never reads
// back what it is writing.
func WithExclude(paths ...string) Option {
	return func(o *options) {
		if o.exclude == nil {
			o.exclude = make(map[string]struct{}, len(paths))
		}
		for _, p := range paths {
			if p != "" {
				o.exclude[filepath.Clean(p)] = struct{}{}
			}
		}
	}
}

// Files walks root and keeps, in walk order, the files the classifier
// includes. A nil classifier includes everything. Walk errors are returned
// unchanged and no partial result is produced.
func Files(root string, classifier Classifier, opts ...Option) (*Result, error) {
	o := options{logger: &utils.NoopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("filter: failed to get absolute path for '%s': %w", root, err)
	}

	tracker := walker.NewSkippedTracker(16)
	paths, err := walker.Walk(absRoot, walker.WithLogger(o.logger), walker.WithTracker(tracker))
	if err != nil {
		return nil, err
	}

	result := &Result{Entries: make([]Entry, 0, len(paths))}
	for _, path := range paths {
		rel, err := utils.SlashRel(absRoot, path)
		if err != nil {
			return nil, fmt.Errorf("filter: failed to relativise '%s': %w", path, err)
		}

		if _, ok := o.exclude[path]; ok {
			tracker.Track(rel, walker.ReasonOutputFile)
			continue
		}

		if classifier != nil && classifier.Classify(rel) == ignore.Excluded {
			tracker.Track(rel, walker.ReasonIgnoredRule)
			continue
		}

		result.Entries = append(result.Entries, Entry{Root: root, AbsRoot: absRoot, RelPath: rel})
	}

	result.Skipped = tracker.Items()
	o.logger.Debug("filter.Files: %s: %d included, %d skipped", root, len(result.Entries), len(result.Skipped))
	return result, nil
}
