// Package logger tests cover the line format, level filtering, attribute
// grouping and the rotating file constructor.
package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// ///////////////////////////////////////////////
// Handler Output Format
// ///////////////////////////////////////////////

func TestHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsole(&buf, LevelInfo)

	log.Info("resolved theme", "name", "dark", "palette", 8)

	line := strings.TrimRight(buf.String(), "\n")
	ts, rest, ok := strings.Cut(line, " ")
	if !ok || !strings.HasSuffix(ts, "Z") {
		t.Fatalf("expected UTC timestamp prefix, got %q", line)
	}
	want := "INFO  resolved theme name=dark palette=8"
	if rest != want {
		t.Errorf("got %q, want %q", rest, want)
	}
}

func TestHandler_QuotesValues(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsole(&buf, LevelInfo)

	log.Warn("invalid color", "value", "not a color", "empty", "")

	got := buf.String()
	if !strings.Contains(got, `value="not a color"`) {
		t.Errorf("expected quoted value, got %q", got)
	}
	if !strings.Contains(got, `empty=""`) {
		t.Errorf("expected quoted empty value, got %q", got)
	}
}

// ///////////////////////////////////////////////
// Levels
// ///////////////////////////////////////////////

func TestHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsole(&buf, LevelWarn)

	log.Info("dropped")
	log.Debug("dropped")
	log.Warn("kept")
	log.Error("kept too")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "WARN  kept") || !strings.Contains(lines[1], "ERROR kept too") {
		t.Errorf("unexpected lines: %q", lines)
	}
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	Trace(NewConsole(&buf, LevelTrace), "role color", "role", "bar")
	if !strings.Contains(buf.String(), "TRACE role color role=bar") {
		t.Errorf("got %q", buf.String())
	}

	buf.Reset()
	Trace(NewConsole(&buf, LevelDebug), "hidden")
	if buf.Len() != 0 {
		t.Errorf("trace emitted at debug level: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"trace", LevelTrace},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"Warn", LevelWarn},
		{"warning", LevelWarn},
		{" error ", LevelError},
		{"verbose", LevelInfo},
		{"", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// ///////////////////////////////////////////////
// Attributes and Groups
// ///////////////////////////////////////////////

func TestHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsole(&buf, LevelInfo).With("cmd", "lint")

	log.Info("issue", "path", "a.toml")

	if !strings.Contains(buf.String(), "issue cmd=lint path=a.toml") {
		t.Errorf("got %q", buf.String())
	}
}

func TestHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsole(&buf, LevelInfo).WithGroup("theme").WithGroup("colors")

	log.Info("set", "bar", "#4DC2AB")

	if !strings.Contains(buf.String(), "theme.colors.bar=#4DC2AB") {
		t.Errorf("got %q", buf.String())
	}
}

func TestHandler_GroupAttr(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsole(&buf, LevelInfo)

	log.Info("fetched", slog.Group("src", "kind", "url", "status", 200))

	if !strings.Contains(buf.String(), "src.kind=url src.status=200") {
		t.Errorf("got %q", buf.String())
	}
}

func TestHandler_SharedMutex(t *testing.T) {
	var buf bytes.Buffer
	base := NewConsole(&buf, LevelInfo)
	a, b := base.With("w", "a"), base.WithGroup("g")

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				a.Info("line")
			} else {
				b.Info("line", "k", "v")
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 50 {
		t.Errorf("got %d lines, want 50 (interleaved writes?)", len(lines))
	}
}

// ///////////////////////////////////////////////
// NewLogger
// ///////////////////////////////////////////////

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphs.log")
	log, closer := NewLogger(path, LevelInfo, 1)

	log.Info("written to file", "n", 1)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "written to file n=1") {
		t.Errorf("log file content = %q", data)
	}
}
