// Package summary reports what a run emitted and what it left out
package summary

import (
	"fmt"
	"io"
	"time"

	"github.com/bethropolis/concat-code/internal/walker"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// RootStats counts the outcome for one root directory.
type RootStats struct {
	Root    string
	Emitted int
	Skipped int
}

// DisplayResults logs per-root counts, the total and the elapsed time
func DisplayResults(logger Logger, roots []RootStats, duration time.Duration) {
	var total int
	for _, r := range roots {
		logger.Info("%s: emitted %d files, skipped %d.", r.Root, r.Emitted, r.Skipped)
		total += r.Emitted
	}
	logger.Info("Emitted %d files from %d directories in %v.", total, len(roots), duration.Round(time.Millisecond))
}

// DisplaySkippedItems lists skipped paths for one root, in walk order
func DisplaySkippedItems(output io.Writer, root string, skippedItems []walker.SkippedItem) {
	fmt.Fprintf(output, "--- Skipped in %s (%d) ---\n", root, len(skippedItems))
	for _, item := range skippedItems {
		fmt.Fprintf(output, "Skipped FILE: %-50s [%s]\n", item.Path, item.Reason)
	}
}
