// Package app runs one invocation: every root, in order, into one sink
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bethropolis/concat-code/internal/config"
	"github.com/bethropolis/concat-code/internal/filter"
	"github.com/bethropolis/concat-code/internal/ignore"
	"github.com/bethropolis/concat-code/internal/logger"
	"github.com/bethropolis/concat-code/internal/printer"
	"github.com/bethropolis/concat-code/internal/summary"
	"github.com/fatih/color"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	stdout io.Writer
	stderr io.Writer
}

// New creates a new App. Emitted blocks go to stdout unless the config
// names an output file; diagnostics always go to stderr.
func New(cfg *config.Config, stdout, stderr io.Writer) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	log := logger.New(stderr, cfg.Verbose, cfg.UseColors).WithLevel(cfg.Level())

	return &App{
		cfg:    cfg,
		log:    log,
		stdout: stdout,
		stderr: stderr,
	}
}

// Run processes every root in order into a single sink. The first error
// aborts the run; blocks already written stay written.
func (a *App) Run() (err error) {
	startTime := time.Now() // Start timer for overall execution

	a.log.Debug("Roots: %v, log level: %s", a.cfg.Roots, a.log.Level())
	a.log.Debug("Output: %q, matcher: %s, color: %v", a.cfg.OutputFile, a.cfg.Matcher, a.cfg.UseColors)

	sink, outputPath, closeSink, err := a.openSink()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeSink(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	p := printer.New(sink).WithLogger(a.log)

	stats := make([]summary.RootStats, 0, len(a.cfg.Roots))
	for _, root := range a.cfg.Roots {
		before := p.Count()
		res, err := a.processRoot(root, outputPath, p)
		if err != nil {
			return err
		}
		stats = append(stats, summary.RootStats{
			Root:    root,
			Emitted: int(p.Count() - before),
			Skipped: len(res.Skipped),
		})
		if a.cfg.ShowSkipped {
			summary.DisplaySkippedItems(a.stderr, root, res.Skipped)
		}
	}

	summary.DisplayResults(a.log, stats, time.Since(startTime))
	return nil
}

// processRoot loads the root's own ignore file, filters its tree and prints
// the surviving files.
func (a *App) processRoot(root, outputPath string, p *printer.Printer) (*filter.Result, error) {
	a.log.Info("Scanning directory: %s", root)

	matcher, err := ignore.Load(root, ignore.WithLogger(a.log), ignore.WithEngine(a.cfg.Matcher))
	if err != nil {
		return nil, fmt.Errorf("error initializing ignore rules for %s: %w", root, err)
	}
	if src := matcher.Source(); src != "" {
		a.log.Debug("Using %s rules from %s", matcher.Engine(), src)
	}

	res, err := filter.Files(root, matcher, filter.WithLogger(a.log), filter.WithExclude(outputPath))
	if err != nil {
		return nil, err
	}

	if err := p.PrintAll(res.Entries); err != nil {
		return nil, err
	}
	return res, nil
}

// openSink returns stdout, or the created output file together with its
// absolute path. The returned close function is a no-op for stdout.
func (a *App) openSink() (io.Writer, string, func() error, error) {
	if a.cfg.OutputFile == "" {
		return a.stdout, "", func() error { return nil }, nil
	}

	absPath, err := filepath.Abs(a.cfg.OutputFile)
	if err != nil {
		return nil, "", nil, fmt.Errorf("invalid output path '%s': %w", a.cfg.OutputFile, err)
	}
	file, err := os.Create(absPath)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to create output file: %w", err)
	}
	a.log.Debug("Writing output to %s", absPath)

	closeFn := func() error {
		if err := file.Close(); err != nil {
			return fmt.Errorf("failed to close output file: %w", err)
		}
		return nil
	}
	return file, absPath, closeFn, nil
}
