package main

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"tools.zach/dev/graphs/internal/config"
)

// ///////////////////////////////////////////////
// parseSectionPath Tests
// ///////////////////////////////////////////////

func TestParseSectionPath(t *testing.T) {
	tests := []struct {
		name    string
		section string
		want    []string
	}{
		{"single segment", "theme", []string{"theme"}},
		{"two segments", "theme.colors", []string{"theme", "colors"}},
		{"three segments", "a.b.c", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseSectionPath(tt.section)
			if !slices.Equal(got, tt.want) {
				t.Errorf("parseSectionPath(%q) = %v, want %v", tt.section, got, tt.want)
			}
		})
	}
}

// ///////////////////////////////////////////////
// sectionName Tests
// ///////////////////////////////////////////////

func TestSectionName(t *testing.T) {
	tests := []struct {
		name    string
		section string
		want    string
	}{
		{"single segment", "theme", "Theme"},
		{"last of two", "theme.colors", "Colors"},
		{"already capitalized", "Log", "Log"},
		{"single char", "a", "A"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sectionName(tt.section); got != tt.want {
				t.Errorf("sectionName(%q) = %q, want %q", tt.section, got, tt.want)
			}
		})
	}
}

// ///////////////////////////////////////////////
// injectOmitted Tests
// ///////////////////////////////////////////////

func TestInjectOmittedNoSection(t *testing.T) {
	var out []string
	injectOmitted(&out, nil, config.ConfigDocs, map[string]bool{})
	if len(out) != 0 {
		t.Errorf("injectOmitted with nil sectionStack produced %d lines, want 0", len(out))
	}
}

func TestInjectOmittedSkipsEmittedAndNested(t *testing.T) {
	docs := map[string]config.FieldDoc{
		"s.a":      {Comment: "a doc", Alternatives: []string{`a = 1`}},
		"s.b":      {Comment: "b doc"},
		"s.nested": {Comment: "section"},
		"s.x.deep": {Comment: "deep"},
	}
	emitted := map[string]bool{"s.b": true, "s.nested": true}
	var out []string
	injectOmitted(&out, []string{"s"}, docs, emitted)

	want := []string{"", "# a doc", "# a = 1"}
	if !slices.Equal(out, want) {
		t.Errorf("injectOmitted = %q, want %q", out, want)
	}
	if !emitted["s.a"] {
		t.Error("injected key not marked emitted")
	}
}

// ///////////////////////////////////////////////
// render Tests
// ///////////////////////////////////////////////

func TestRenderRoundTrips(t *testing.T) {
	out, err := render(config.ExampleConfig(), config.ConfigDocs)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	cfg, err := config.Parse([]byte(out))
	if err != nil {
		t.Fatalf("generated file does not parse: %v\n%s", err, out)
	}
	want := config.ExampleConfig()
	if cfg.Theme.Source != want.Theme.Source || cfg.Theme.PaletteSize != want.Theme.PaletteSize {
		t.Errorf("theme = %+v, want %+v", cfg.Theme, want.Theme)
	}
	if cfg.Log != want.Log {
		t.Errorf("log = %+v, want %+v", cfg.Log, want.Log)
	}

	var raw map[string]any
	if _, err := toml.Decode(out, &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestRenderDocuments(t *testing.T) {
	out, err := render(config.ExampleConfig(), config.ConfigDocs)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"# Graphs Configuration",
		"# ///// Colors /////",
		"# Where chart colors come from.\n[theme]",
		"# source = \"url\"",
		"# file = \"themes/dark.toml\"",
		"# url = \"https://example.com/graphs/theme.toml\"",
		"bar = \"#4DC2AB\"",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	// theme.colors is a table, not an omitted key of [theme].
	if strings.Count(out, "# Role colors for source") != 1 {
		t.Errorf("theme.colors doc should appear exactly once:\n%s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			t.Errorf("line keeps encoder indentation: %q", line)
		}
	}
}

func TestEmbeddedDefaultIsCurrent(t *testing.T) {
	out, err := render(config.ExampleConfig(), config.ConfigDocs)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(filepath.Join("..", "..", "graphs.default.toml"))
	if err != nil {
		t.Fatalf("read graphs.default.toml: %v", err)
	}
	if string(data) != out {
		t.Errorf("graphs.default.toml is stale; run go generate ./internal/config")
	}
}
