package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/bethropolis/concat-code/internal/ignore"
	"github.com/bethropolis/concat-code/internal/logger"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
)

func parse(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	c := New()
	fs := pflag.NewFlagSet("concat-code", pflag.ContinueOnError)
	c.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse(%q): %v", args, err)
	}
	return c, c.Complete(fs.Args())
}

func withTerminal(t *testing.T, tty bool) {
	t.Helper()
	orig := stderrIsTerminal
	stderrIsTerminal = func() bool { return tty }
	t.Cleanup(func() { stderrIsTerminal = orig })
}

func TestParseInterleavedArguments(t *testing.T) {
	withTerminal(t, false)

	tests := []struct {
		name      string
		args      []string
		wantRoots []string
		wantOut   string
	}{
		{"single", []string{"project"}, []string{"project"}, ""},
		{"output last", []string{"a", "b", "-o", "out.md"}, []string{"a", "b"}, "out.md"},
		{"output first", []string{"--output", "out.md", "a"}, []string{"a"}, "out.md"},
		{"output between", []string{"a", "-o", "out.md", "b"}, []string{"a", "b"}, "out.md"},
		{"equals form", []string{"--output=out.md", "a"}, []string{"a"}, "out.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := parse(t, tt.args...)
			if err != nil {
				t.Fatalf("Complete: %v", err)
			}
			if diff := cmp.Diff(tt.wantRoots, c.Roots); diff != "" {
				t.Errorf("Roots mismatch (-want +got):\n%s", diff)
			}
			if c.OutputFile != tt.wantOut {
				t.Errorf("OutputFile = %q, want %q", c.OutputFile, tt.wantOut)
			}
		})
	}
}

func TestCompleteNoDirectories(t *testing.T) {
	withTerminal(t, false)

	_, err := parse(t, "-o", "out.md")
	if !errors.Is(err, ErrNoDirectories) {
		t.Fatalf("error = %v, want ErrNoDirectories", err)
	}
	if !strings.Contains(err.Error(), Usage) {
		t.Errorf("error %q does not contain the usage line", err)
	}
}

func TestCompleteRejectsUnknownMatcher(t *testing.T) {
	withTerminal(t, false)

	_, err := parse(t, "--matcher", "fnmatch", "a")
	if !errors.Is(err, ignore.ErrUnknownEngine) {
		t.Fatalf("error = %v, want ErrUnknownEngine", err)
	}
}

func TestCompleteRejectsUnknownLogLevel(t *testing.T) {
	withTerminal(t, false)

	if _, err := parse(t, "--log-level", "loud", "a"); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestUseColors(t *testing.T) {
	tests := []struct {
		name string
		tty  bool
		args []string
		want bool
	}{
		{"terminal", true, []string{"a"}, true},
		{"not a terminal", false, []string{"a"}, false},
		{"no-color", true, []string{"--no-color", "a"}, false},
		{"output file", true, []string{"-o", "out.md", "a"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withTerminal(t, tt.tty)
			c, err := parse(t, tt.args...)
			if err != nil {
				t.Fatalf("Complete: %v", err)
			}
			if c.UseColors != tt.want {
				t.Errorf("UseColors = %v, want %v", c.UseColors, tt.want)
			}
		})
	}
}

func TestLevel(t *testing.T) {
	withTerminal(t, false)

	tests := []struct {
		name string
		args []string
		want logger.LogLevel
	}{
		{"default", []string{"a"}, logger.LevelInfo},
		{"verbose", []string{"-v", "a"}, logger.LevelDebug},
		{"quiet", []string{"-q", "a"}, logger.LevelWarn},
		{"quiet beats verbose", []string{"-q", "-v", "a"}, logger.LevelWarn},
		{"log-level wins", []string{"-q", "--log-level", "debug", "a"}, logger.LevelDebug},
		{"none", []string{"--log-level", "none", "a"}, logger.LevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := parse(t, tt.args...)
			if err != nil {
				t.Fatalf("Complete: %v", err)
			}
			if got := c.Level(); got != tt.want {
				t.Errorf("Level() = %v, want %v", got, tt.want)
			}
		})
	}
}
