// Package colors parses hex color specs into normalized colors and generates
// categorical palettes for chart segments.
//
// Parsing never fails: a spec that is not 6 or 8 hex digits (after an optional
// "0x", "0X" or "#" prefix) resolves to opaque [Black]. Callers that need to
// tell a real black from a fallback use [Valid].
//
// All functions are pure and safe for concurrent use.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ///////////////////////////////////////////////
// Color
// ///////////////////////////////////////////////

// Color holds four channels normalized to [0, 1]. Alpha is not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Black is opaque black, the result of parsing a malformed hex spec.
var Black = Color{R: 0, G: 0, B: 0, A: 1}

// hexPrefixes are stripped in order; only the first match is removed.
var hexPrefixes = []string{"0x", "0X", "#"}

// ParseHex parses a "RRGGBB" or "RRGGBBAA" hex spec, optionally prefixed with
// "0x", "0X" or "#". Any other input returns [Black].
func ParseHex(input string) Color {
	c, _ := parseHex(input)
	return c
}

// Valid reports whether [ParseHex] decodes input rather than falling back to
// [Black].
func Valid(input string) bool {
	_, ok := parseHex(input)
	return ok
}

func parseHex(input string) (Color, bool) {
	digits := input
	for _, prefix := range hexPrefixes {
		if strings.HasPrefix(digits, prefix) {
			digits = digits[len(prefix):]
			break
		}
	}
	if len(digits) != 6 && len(digits) != 8 {
		return Black, false
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return Black, false
		}
	}
	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return Black, false
	}
	if len(digits) == 8 {
		return FromRGBInt(v>>8, float64(v&0xFF)/255), true
	}
	return FromRGB(v), true
}

func isHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

// FromRGBInt unpacks a packed RGB integer (red in bits 16-23, green in 8-15,
// blue in 0-7). Higher bits are ignored. Alpha is passed through unchanged.
func FromRGBInt(value uint64, alpha float64) Color {
	return Color{
		R: float64((value&0xFF0000)>>16) / 255,
		G: float64((value&0xFF00)>>8) / 255,
		B: float64(value&0xFF) / 255,
		A: alpha,
	}
}

// FromRGB is [FromRGBInt] with an opaque alpha.
func FromRGB(value uint64) Color {
	return FromRGBInt(value, 1)
}

// ///////////////////////////////////////////////
// Conversions
// ///////////////////////////////////////////////

// RGBA implements [color.Color].
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA64{
		R: to16(c.R),
		G: to16(c.G),
		B: to16(c.B),
		A: to16(c.A),
	}.RGBA()
}

// NRGBA returns c quantized to 8 bits per channel.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" when alpha quantized to 8 bits
// is below 0xff.
func (c Color) Hex() string {
	s := colorful.Color{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B)}.Hex()
	a := to8(c.A)
	if a == 0xFF {
		return s
	}
	return s + fmt.Sprintf("%02x", a)
}

// String returns the channels as a tuple, e.g. "(0.3020, 0.7608, 0.6706, 1.0000)".
func (c Color) String() string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f, %.4f)", c.R, c.G, c.B, c.A)
}

func clamp(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

func to8(f float64) uint8 {
	return uint8(clamp(f)*0xFF + 0.5)
}

func to16(f float64) uint16 {
	return uint16(clamp(f)*0xFFFF + 0.5)
}
