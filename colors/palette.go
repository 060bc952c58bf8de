package colors

import (
	"fmt"
	"strings"
)

// ///////////////////////////////////////////////
// Palette
// ///////////////////////////////////////////////

// paletteStep is the packed-RGB distance between consecutive palette entries.
const paletteStep = 16

// Palette returns count colors for categorical segments. Entry i is the packed
// RGB value i*16 unpacked with [FromRGB]. Every step stays in the green and
// blue bytes, so neighbouring entries are close and the sequence repeats once
// i*16 exceeds 0xFFFFFF. A count <= 0 returns an empty slice.
func Palette(count int) []Color {
	if count <= 0 {
		return []Color{}
	}
	out := make([]Color, count)
	for i := range out {
		out[i] = PaletteColor(i)
	}
	return out
}

// PaletteCycle is the number of distinct palette entries; entry i and entry
// i+PaletteCycle are equal.
const PaletteCycle = 0x1000000 / paletteStep

// PaletteColor returns entry i of [Palette] without building the slice.
func PaletteColor(i int) Color {
	return FromRGB(uint64(i) * paletteStep)
}

// ///////////////////////////////////////////////
// Default Roles
// ///////////////////////////////////////////////

// Role names a chart element with a built-in default color.
type Role int

const (
	Bar Role = iota
	Line
	BarText
	LineText
	PieText
)

// Roles lists every Role in declaration order.
var Roles = []Role{Bar, Line, BarText, LineText, PieText}

var roleNames = map[Role]string{
	Bar:      "bar",
	Line:     "line",
	BarText:  "bar_text",
	LineText: "line_text",
	PieText:  "pie_text",
}

var roleHex = map[Role]string{
	Bar:      "#4DC2AB",
	Line:     "#FF0066",
	BarText:  "#333333",
	LineText: "#333333",
	PieText:  "#333333",
}

// String returns the snake_case name used as a key in theme files.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// DefaultHex returns the built-in hex spec for r, or "" for an unknown role.
func (r Role) DefaultHex() string {
	return roleHex[r]
}

// Color returns the built-in default color for r. Unknown roles are [Black].
func (r Role) Color() Color {
	return ParseHex(roleHex[r])
}

// ParseRole looks up a role by its theme-file name (case-insensitive).
func ParseRole(name string) (Role, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for r, n := range roleNames {
		if n == name {
			return r, true
		}
	}
	return 0, false
}

// PieColors returns the default segment colors for a pie chart of count slices.
func PieColors(count int) []Color {
	return Palette(count)
}
