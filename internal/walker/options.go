package walker

import (
	"github.com/bethropolis/concat-code/internal/utils"
)

// WalkOptions configures the behavior of the Walk function
type WalkOptions struct {
	Logger  utils.Logger
	Tracker *SkippedTracker
}

// defaultOptions returns the default walk options
func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger: &utils.NoopLogger{},
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

// WithTracker records special files the walker passes over.
func WithTracker(tracker *SkippedTracker) Option {
	return func(opts *WalkOptions) {
		opts.Tracker = tracker
	}
}
