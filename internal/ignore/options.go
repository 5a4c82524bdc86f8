package ignore

import "github.com/bethropolis/concat-code/internal/utils"

// Option functions for configuration
type Option func(*IgnoreMatcher)

// WithEngine selects the matching engine by name (see Engines).
func WithEngine(name string) Option {
	return func(m *IgnoreMatcher) {
		if name != "" {
			m.engineName = name
		}
	}
}

func WithLogger(logger utils.Logger) Option {
	return func(m *IgnoreMatcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}
