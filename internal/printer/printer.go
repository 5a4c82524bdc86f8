// Package printer writes file entries to the output sink as labelled,
// fenced blocks
package printer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/bethropolis/concat-code/internal/filter"
	"github.com/bethropolis/concat-code/internal/utils"
)

// Fence opens and closes every content block.
const Fence = "```"

// ErrNotText is returned for file content that is not valid UTF-8.
var ErrNotText = errors.New("printer: content is not valid UTF-8 text")

// Printer writes blocks to the configured output destination in call order
type Printer struct {
	output io.Writer
	count  int64
	logger utils.Logger
}

// New creates a Printer writing to w
func New(w io.Writer) *Printer {
	return &Printer{
		output: w,
		logger: &utils.NoopLogger{},
	}
}

// WithLogger sets the logger used for per-file debug output
func (p *Printer) WithLogger(logger utils.Logger) *Printer {
	if logger != nil {
		p.logger = logger
	}
	return p
}

// PrintFile reads the entry's file and writes
//
//	## <root>/<relPath>
//	```
//	<content>
//	```
//
// followed by a blank line. Content is written verbatim. Nothing is written
// if the file can not be read or is not text.
func (p *Printer) PrintFile(e filter.Entry) error {
	content, err := os.ReadFile(e.FullPath())
	if err != nil {
		return fmt.Errorf("printer: failed to read %s: %w", e.Header(), err)
	}
	if !utf8.Valid(content) {
		return fmt.Errorf("%w: %s", ErrNotText, e.Header())
	}

	segments := []string{
		"## " + e.Header() + "\n",
		Fence + "\n",
		string(content),
		"\n" + Fence + "\n\n",
	}
	for _, s := range segments {
		if _, err := io.WriteString(p.output, s); err != nil {
			return fmt.Errorf("printer: failed to write %s: %w", e.Header(), err)
		}
	}

	p.count++
	p.logger.Debug("printer: Wrote %s (%d bytes)", e.Header(), len(content))
	return nil
}

// PrintAll prints entries in order and stops at the first error
func (p *Printer) PrintAll(entries []filter.Entry) error {
	for _, e := range entries {
		if err := p.PrintFile(e); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of blocks written
func (p *Printer) Count() int64 {
	return p.count
}
