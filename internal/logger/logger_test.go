package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func fixedLogger(buf *bytes.Buffer, verbose bool) *Logger {
	l := New(buf, verbose, false)
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC) }
	return l
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, false)

	l.Info("emitted %d files", 3)

	want := "[03:04:05.006 INFO] emitted 3 files\n"
	if got := buf.String(); got != want {
		t.Errorf("Info output = %q, want %q", got, want)
	}
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		level LogLevel
		want  []string
	}{
		{"debug", LevelDebug, []string{"DEBUG", "INFO", "WARN", "ERROR"}},
		{"info", LevelInfo, []string{"INFO", "WARN", "ERROR"}},
		{"warn", LevelWarn, []string{"WARN", "ERROR"}},
		{"error", LevelError, []string{"ERROR"}},
		{"none", LevelNone, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := fixedLogger(&buf, false).WithLevel(tt.level)

			l.Debug("d")
			l.Info("i")
			l.Warn("w")
			l.Error("e")

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			if len(tt.want) == 0 {
				if buf.Len() != 0 {
					t.Fatalf("expected no output, got %q", buf.String())
				}
				return
			}
			if len(lines) != len(tt.want) {
				t.Fatalf("got %d lines, want %d: %q", len(lines), len(tt.want), buf.String())
			}
			for i, prefix := range tt.want {
				if !strings.Contains(lines[i], " "+prefix+"]") {
					t.Errorf("line %d = %q, want level %s", i, lines[i], prefix)
				}
			}
		})
	}
}

func TestVerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, true)
	if l.Level() != LevelDebug {
		t.Fatalf("Level() = %v, want DEBUG", l.Level())
	}
	l.Debug("walking %s", "root")
	if !strings.Contains(buf.String(), "DEBUG] walking root") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"DEBUG", LevelDebug, false},
		{"info", LevelInfo, false},
		{"Warning", LevelWarn, false},
		{"error", LevelError, false},
		{"off", LevelNone, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
