package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/bethropolis/concat-code/internal/ignore"
	"github.com/bethropolis/concat-code/internal/logger"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

// Usage is printed when no directories are given.
const Usage = "Usage: concat-code <directory1> <directory2> ... [-o output]"

// ErrNoDirectories is returned by Complete when no root directory was given.
var ErrNoDirectories = errors.New("no directories given")

// Config holds all application configuration settings
type Config struct {
	// Directory settings
	Roots []string

	// Output settings
	OutputFile string

	// Logging settings
	Verbose     bool
	Quiet       bool
	LogLevel    string
	NoColor     bool
	UseColors   bool
	ShowSkipped bool

	// Filtering settings
	Matcher string
}

// stderrIsTerminal is swapped out by tests.
var stderrIsTerminal = func() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// New creates a Config holding the defaults
func New() *Config {
	return &Config{
		Matcher: ignore.EngineGitignore,
	}
}

// BindFlags registers every flag on fs. Flags may be interleaved with the
// directory arguments.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.OutputFile, "output", "o", "", "Write to this file instead of stdout")
	fs.StringVar(&c.Matcher, "matcher", c.Matcher,
		fmt.Sprintf("Ignore engine (%s)", strings.Join(ignore.Engines(), ", ")))
	fs.BoolVarP(&c.Verbose, "verbose", "v", false, "Enable verbose logging (DEBUG, INFO, WARN, ERROR)")
	fs.BoolVarP(&c.Quiet, "quiet", "q", false, "Suppress INFO messages (only show WARN, ERROR)")
	fs.StringVar(&c.LogLevel, "log-level", "", "Set the logging level (DEBUG, INFO, WARN, ERROR, NONE); overrides --verbose and --quiet")
	fs.BoolVar(&c.NoColor, "no-color", false, "Disable color output")
	fs.BoolVar(&c.ShowSkipped, "show-skipped", false, "List excluded paths on stderr after each directory")
}

// Complete takes the positional arguments as root directories, validates
// the settings and derives UseColors.
func (c *Config) Complete(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrNoDirectories, Usage)
	}
	c.Roots = append([]string(nil), args...)

	if c.LogLevel != "" {
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}

	if !slices.Contains(ignore.Engines(), c.Matcher) {
		return fmt.Errorf("config: %w %q (available: %s)",
			ignore.ErrUnknownEngine, c.Matcher, strings.Join(ignore.Engines(), ", "))
	}

	// Determine if colors should be used
	c.UseColors = !c.NoColor && stderrIsTerminal() && c.OutputFile == ""
	return nil
}

// Level resolves the effective log level: --log-level wins, then --quiet,
// then --verbose.
func (c *Config) Level() logger.LogLevel {
	if c.LogLevel != "" {
		if level, err := logger.ParseLevel(c.LogLevel); err == nil {
			return level
		}
	}
	switch {
	case c.Quiet:
		return logger.LevelWarn
	case c.Verbose:
		return logger.LevelDebug
	default:
		return logger.LevelInfo
	}
}
