// Package config loads the graphs CLI configuration from graphs.toml in the
// data directory.
//
// The file selects where the chart theme comes from (inline colors, a local
// theme file or a URL), which theme files the linter scans, and logging.
// Missing keys keep the values from [DefaultConfig].
package config

//go:generate go run ../../cmd/genconfig

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
	"tools.zach/dev/graphs/colors"
	"tools.zach/dev/graphs/internal/atomicfile"
	"tools.zach/dev/graphs/internal/paths"
)

// ///////////////////////////////////////////////
// Configuration Types
// ///////////////////////////////////////////////

// Config is the top-level configuration.
type Config struct {
	// Theme selects and overrides the chart color theme.
	Theme ThemeConfig `toml:"theme"`
	// Lint holds the theme linter's file selection.
	Lint LintConfig `toml:"lint"`
	// Log holds logging settings.
	Log LogConfig `toml:"log"`
}

// ThemeConfig describes where the active theme is loaded from.
type ThemeConfig struct {
	// Source is "inline", "file" or "url".
	Source string `toml:"source"`
	// File is the theme file path for source "file". Relative paths are
	// resolved against the data directory.
	File string `toml:"file,omitempty"`
	// URL is the theme location for source "url".
	URL string `toml:"url,omitempty"`
	// PaletteSize is the number of generated pie segment colors when the
	// theme has no explicit palette.
	PaletteSize int `toml:"palette_size"`
	// Colors maps role names (bar, line, bar_text, line_text, pie_text) to
	// hex specs. Only used by the "inline" source; file and URL themes carry
	// their own colors.
	Colors map[string]string `toml:"colors"`
}

// LintConfig selects theme files for `graphs lint`.
type LintConfig struct {
	// Patterns are doublestar globs relative to the data directory.
	Patterns []string `toml:"patterns"`
	// Ignore are doublestar globs excluded from Patterns matches.
	Ignore []string `toml:"ignore"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `toml:"level"`
	// MaxSizeMB is the log file size that triggers rotation.
	MaxSizeMB int `toml:"max_size_mb"`
}

// ///////////////////////////////////////////////
// Defaults
// ///////////////////////////////////////////////

// DefaultConfig returns the configuration used when graphs.toml is absent.
func DefaultConfig() *Config {
	roleColors := make(map[string]string, len(colors.Roles))
	for _, r := range colors.Roles {
		roleColors[r.String()] = r.DefaultHex()
	}
	return &Config{
		Theme: ThemeConfig{
			Source:      "inline",
			PaletteSize: 8,
			Colors:      roleColors,
		},
		Lint: LintConfig{
			Patterns: []string{paths.ThemesDir + "/**/*.toml"},
			Ignore:   []string{},
		},
		Log: LogConfig{
			Level:     "info",
			MaxSizeMB: 5,
		},
	}
}

// ExampleConfig returns the Config written to graphs.default.toml.
func ExampleConfig() *Config {
	return DefaultConfig()
}

// ///////////////////////////////////////////////
// Loading and Saving
// ///////////////////////////////////////////////

// Load reads dataDir/graphs.toml over [DefaultConfig] and validates it. A
// missing file yields the defaults.
func Load(dataDir string) (*Config, error) {
	path := filepath.Join(dataDir, paths.ConfigFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML bytes over [DefaultConfig] and validates the result.
// Role names in theme.colors are matched case-insensitively and stored under
// their canonical name, replacing the default for that role.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	defaults := cfg.Theme.Colors
	cfg.Theme.Colors = nil
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("parse config: unknown keys: %s", strings.Join(keys, ", "))
	}
	merged, err := mergeColors(defaults, cfg.Theme.Colors)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.Theme.Colors = merged
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// mergeColors overlays user role colors on defaults under canonical role
// names. Unknown names are kept as written so Validate can report them. Two
// spellings of one role are an error.
func mergeColors(defaults, user map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(defaults)+len(user))
	for k, v := range defaults {
		out[k] = v
	}
	seen := make(map[colors.Role]string, len(user))
	for name, spec := range user {
		role, ok := colors.ParseRole(name)
		if !ok {
			out[name] = spec
			continue
		}
		if prev, dup := seen[role]; dup {
			a, b := min(prev, name), max(prev, name)
			return nil, fmt.Errorf("theme.colors sets role %q twice (%q and %q)", role, a, b)
		}
		seen[role] = name
		out[role.String()] = spec
	}
	return out, nil
}

// Save writes c to path as TOML.
func (c *Config) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return atomicfile.Write(path, buf.Bytes(), 0o644)
}

// ThemeFile returns Theme.File resolved against dataDir.
func (c *Config) ThemeFile(dataDir string) string {
	if c.Theme.File == "" || filepath.IsAbs(c.Theme.File) {
		return c.Theme.File
	}
	return filepath.Join(dataDir, c.Theme.File)
}

// ///////////////////////////////////////////////
// Validation
// ///////////////////////////////////////////////

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true,
}

// Validate checks enumerations, required fields and glob syntax. Color values
// are not checked here: an invalid hex spec resolves to black, and `graphs
// lint` reports it.
func (c *Config) Validate() error {
	switch c.Theme.Source {
	case "inline":
	case "file":
		if c.Theme.File == "" {
			return fmt.Errorf("theme.file is required when theme.source is \"file\"")
		}
	case "url":
		if !strings.HasPrefix(c.Theme.URL, "http://") && !strings.HasPrefix(c.Theme.URL, "https://") {
			return fmt.Errorf("theme.url must be an http(s) URL when theme.source is \"url\", got %q", c.Theme.URL)
		}
	default:
		return fmt.Errorf("invalid theme.source %q: must be inline, file, or url", c.Theme.Source)
	}

	if c.Theme.PaletteSize < 0 {
		return fmt.Errorf("theme.palette_size must be >= 0, got %d", c.Theme.PaletteSize)
	}

	for name := range c.Theme.Colors {
		if _, ok := colors.ParseRole(name); !ok {
			return fmt.Errorf("unknown theme.colors key %q", name)
		}
	}

	for _, p := range c.Lint.Patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid lint.patterns glob %q", p)
		}
	}
	for _, p := range c.Lint.Ignore {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid lint.ignore glob %q", p)
		}
	}

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q: must be trace, debug, info, warn, or error", c.Log.Level)
	}
	if c.Log.MaxSizeMB <= 0 {
		return fmt.Errorf("log.max_size_mb must be > 0, got %d", c.Log.MaxSizeMB)
	}
	return nil
}
