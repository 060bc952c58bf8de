// Package theme resolves chart color themes.
//
// A theme is a small TOML document:
//
//	name = "dark"
//	palette_size = 12                  # generated pie colors, if no palette
//	palette = ["#1B9E77", "#D95F02"]   # explicit pie colors (optional)
//
//	[colors]
//	bar = "#4DC2AB"
//	line = "0xFF0066"
//	bar_text = "#333333"
//
// Themes come from config (inline), a local file or a URL; see [Fetch].
// [Resolve] turns one into concrete colors, and [Lint] reports the specs
// that would silently resolve to black.
package theme

import (
	"bytes"
	"fmt"
	"log/slog"
	"slices"

	"github.com/BurntSushi/toml"
	"tools.zach/dev/graphs/colors"
	"tools.zach/dev/graphs/internal/logger"
)

// ///////////////////////////////////////////////
// Types
// ///////////////////////////////////////////////

// Theme is the on-disk theme document.
type Theme struct {
	// Name labels the theme in output and logs.
	Name string `toml:"name"`
	// PaletteSize is the number of generated pie colors when Palette is empty.
	PaletteSize int `toml:"palette_size"`
	// Palette lists explicit pie segment colors as hex specs.
	Palette []string `toml:"palette,omitempty"`
	// Colors maps role names to hex specs. Missing roles use built-in defaults.
	Colors map[string]string `toml:"colors"`
}

// Resolved holds a theme's concrete colors.
type Resolved struct {
	Name    string
	Roles   map[colors.Role]colors.Color
	Palette []colors.Color
}

// Role returns the resolved color for r, or its built-in default.
func (r *Resolved) Role(role colors.Role) colors.Color {
	if c, ok := r.Roles[role]; ok {
		return c
	}
	return role.Color()
}

// ///////////////////////////////////////////////
// Decode / Encode
// ///////////////////////////////////////////////

// Decode parses a theme document. The returned keys are TOML keys the
// document set that Theme does not define.
func Decode(data []byte) (*Theme, []string, error) {
	var t Theme
	md, err := toml.Decode(string(data), &t)
	if err != nil {
		return nil, nil, fmt.Errorf("decode theme: %w", err)
	}
	var unknown []string
	for _, k := range md.Undecoded() {
		unknown = append(unknown, k.String())
	}
	return &t, unknown, nil
}

// Encode renders t as TOML.
func Encode(t *Theme) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(t); err != nil {
		return nil, fmt.Errorf("encode theme: %w", err)
	}
	return buf.Bytes(), nil
}

// ///////////////////////////////////////////////
// Resolve
// ///////////////////////////////////////////////

// Resolve converts t into colors. Every role is present in the result. Specs
// that fail to parse resolve to [colors.Black] and are logged; unknown role
// names are logged and skipped. An explicit Palette takes precedence over
// PaletteSize.
func Resolve(t *Theme) *Resolved {
	res := &Resolved{
		Name:  t.Name,
		Roles: make(map[colors.Role]colors.Color, len(colors.Roles)),
	}
	for _, r := range colors.Roles {
		res.Roles[r] = r.Color()
	}

	names := make([]string, 0, len(t.Colors))
	for name := range t.Colors {
		names = append(names, name)
	}
	slices.Sort(names)
	_, shadowed := roleKeys(t.Colors)
	for _, name := range names {
		spec := t.Colors[name]
		role, ok := colors.ParseRole(name)
		if !ok {
			slog.Warn("ignoring unknown theme role", "theme", t.Name, "role", name)
			continue
		}
		if winner, dup := shadowed[name]; dup {
			slog.Warn("ignoring duplicate theme role", "theme", t.Name, "key", name, "using", winner)
			continue
		}
		res.Roles[role] = resolveSpec(t.Name, name, spec)
	}

	if len(t.Palette) > 0 {
		res.Palette = make([]colors.Color, len(t.Palette))
		for i, spec := range t.Palette {
			res.Palette[i] = resolveSpec(t.Name, fmt.Sprintf("palette[%d]", i), spec)
		}
	} else {
		res.Palette = colors.Palette(t.PaletteSize)
	}
	return res
}

// roleKeys picks the key that supplies each role's color when m spells a role
// more than one way: the canonical name if present, otherwise the first
// spelling in sort order. shadowed maps every other spelling to the winner.
func roleKeys(m map[string]string) (winners map[colors.Role]string, shadowed map[string]string) {
	winners = make(map[colors.Role]string, len(m))
	shadowed = map[string]string{}
	for name := range m {
		role, ok := colors.ParseRole(name)
		if !ok {
			continue
		}
		prev, seen := winners[role]
		switch {
		case !seen:
			winners[role] = name
		case name == role.String() || (prev != role.String() && name < prev):
			shadowed[prev] = name
			winners[role] = name
		default:
			shadowed[name] = prev
		}
	}
	// A later winner may have displaced an earlier one; point every loser at
	// the final key.
	for name := range shadowed {
		role, _ := colors.ParseRole(name)
		shadowed[name] = winners[role]
	}
	return winners, shadowed
}

func resolveSpec(themeName, key, spec string) colors.Color {
	if !colors.Valid(spec) {
		slog.Warn("invalid hex color, using black", "theme", themeName, "key", key, "value", spec)
		return colors.Black
	}
	c := colors.ParseHex(spec)
	logger.Trace(slog.Default(), "resolved color", "theme", themeName, "key", key, "hex", c.Hex())
	return c
}
