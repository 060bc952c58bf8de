// color_test.go tests [ParseHex] against prefixed, unprefixed, 8-digit and
// malformed specs, plus the conversions to image/color and hex strings.

package colors

import (
	"image/color"
	"math"
	"sync"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func sameColor(a, b Color) bool {
	return approx(a.R, b.R) && approx(a.G, b.G) && approx(a.B, b.B) && approx(a.A, b.A)
}

// ///////////////////////////////////////////////
// ParseHex
// ///////////////////////////////////////////////

func TestParseHex(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"#4DC2AB", Color{R: 77.0 / 255, G: 194.0 / 255, B: 171.0 / 255, A: 1}},
		{"4DC2AB", Color{R: 77.0 / 255, G: 194.0 / 255, B: 171.0 / 255, A: 1}},
		{"4dc2ab", Color{R: 77.0 / 255, G: 194.0 / 255, B: 171.0 / 255, A: 1}},
		{"0xFF0066", Color{R: 1, G: 0, B: 102.0 / 255, A: 1}},
		{"0XFF0066", Color{R: 1, G: 0, B: 102.0 / 255, A: 1}},
		{"FF006680", Color{R: 1, G: 0, B: 102.0 / 255, A: 128.0 / 255}},
		{"#FF006680", Color{R: 1, G: 0, B: 102.0 / 255, A: 128.0 / 255}},
		{"0x00000000", Color{R: 0, G: 0, B: 0, A: 0}},
		{"#FFFFFF", Color{R: 1, G: 1, B: 1, A: 1}},
		{"#333333", Color{R: 51.0 / 255, G: 51.0 / 255, B: 51.0 / 255, A: 1}},
	}

	for _, tt := range tests {
		got := ParseHex(tt.input)
		if !sameColor(got, tt.want) {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !Valid(tt.input) {
			t.Errorf("Valid(%q) = false, want true", tt.input)
		}
	}
}

func TestParseHexFallsBackToBlack(t *testing.T) {
	invalid := []string{
		"",
		"12345",
		"GGGGGG",
		"#FFF",
		"1234567",
		"123456789",
		"#12345G",
		"#0x123456", // only one prefix is stripped
		"0x#123456",
		" 123456",
		"+12345",
		"-12345",
		"ＦＦ００６６", // full-width digits
	}
	for _, s := range invalid {
		got := ParseHex(s)
		if got != Black {
			t.Errorf("ParseHex(%q) = %v, want Black", s, got)
		}
		if Valid(s) {
			t.Errorf("Valid(%q) = true, want false", s)
		}
	}
	if Black != (Color{R: 0, G: 0, B: 0, A: 1}) {
		t.Errorf("Black = %v, want opaque black", Black)
	}
}

func TestParseHexPrefixedAndBareAgree(t *testing.T) {
	for _, digits := range []string{"4DC2AB", "FF0066", "00000000", "A1B2C3D4"} {
		bare := ParseHex(digits)
		for _, prefix := range []string{"#", "0x", "0X"} {
			if got := ParseHex(prefix + digits); got != bare {
				t.Errorf("ParseHex(%q) = %v, want %v (same as bare)", prefix+digits, got, bare)
			}
		}
	}
}

func TestParseHexIdempotent(t *testing.T) {
	a := ParseHex("#4DC2AB")
	b := ParseHex("#4DC2AB")
	if math.Float64bits(a.R) != math.Float64bits(b.R) ||
		math.Float64bits(a.G) != math.Float64bits(b.G) ||
		math.Float64bits(a.B) != math.Float64bits(b.B) ||
		math.Float64bits(a.A) != math.Float64bits(b.A) {
		t.Errorf("ParseHex not bit-identical across calls: %v vs %v", a, b)
	}
}

func TestParseHexChannelsInRange(t *testing.T) {
	specs := []string{
		"000000", "FFFFFF", "00000000", "FFFFFFFF", "7F7F7F", "80808080",
		"#0F1E2D", "0x3C4B5A69", "0XDEADBE", "#CAFEBABE",
	}
	for _, s := range specs {
		c := ParseHex(s)
		for _, ch := range []float64{c.R, c.G, c.B, c.A} {
			if ch < 0 || ch > 1 {
				t.Errorf("ParseHex(%q) = %v, channel out of [0,1]", s, c)
			}
		}
	}
}

func TestParseHexConcurrent(t *testing.T) {
	want := ParseHex("#FF006680")
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if got := ParseHex("#FF006680"); got != want {
					t.Errorf("concurrent ParseHex = %v, want %v", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

// ///////////////////////////////////////////////
// FromRGBInt
// ///////////////////////////////////////////////

func TestFromRGBInt(t *testing.T) {
	c := FromRGBInt(0x4DC2AB, 0.25)
	want := Color{R: 77.0 / 255, G: 194.0 / 255, B: 171.0 / 255, A: 0.25}
	if !sameColor(c, want) {
		t.Errorf("FromRGBInt(0x4DC2AB, 0.25) = %v, want %v", c, want)
	}

	// Bits above 23 are ignored.
	if got := FromRGB(0xAB_4DC2AB); got != FromRGB(0x4DC2AB) {
		t.Errorf("FromRGB ignores high bits: got %v", got)
	}

	// Alpha is not range-checked.
	if got := FromRGBInt(0, 2.5); got.A != 2.5 {
		t.Errorf("FromRGBInt alpha = %v, want 2.5 passed through", got.A)
	}
}

// ///////////////////////////////////////////////
// Conversions
// ///////////////////////////////////////////////

func TestNRGBA(t *testing.T) {
	got := ParseHex("#FF006680").NRGBA()
	want := color.NRGBA{R: 0xFF, G: 0x00, B: 0x66, A: 0x80}
	if got != want {
		t.Errorf("NRGBA() = %v, want %v", got, want)
	}
}

func TestRGBAImplementsColor(t *testing.T) {
	var c color.Color = ParseHex("#FFFFFF")
	r, g, b, a := c.RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF || a != 0xFFFF {
		t.Errorf("RGBA() = %x %x %x %x, want all 0xffff", r, g, b, a)
	}

	// Half-transparent red is premultiplied.
	r, _, _, a = ParseHex("FF000080").RGBA()
	if a != 0x8080 {
		t.Errorf("alpha = %#x, want 0x8080", a)
	}
	if r != a {
		t.Errorf("premultiplied red = %#x, want %#x", r, a)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"#4DC2AB", "#4dc2ab"},
		{"0xFF0066", "#ff0066"},
		{"FF006680", "#ff006680"},
		{"bogus", "#000000"},
		{"4DC2ABFF", "#4dc2ab"},
	}
	for _, tt := range tests {
		if got := ParseHex(tt.input).Hex(); got != tt.want {
			t.Errorf("ParseHex(%q).Hex() = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestHexQuantizedAlpha(t *testing.T) {
	tests := []struct {
		alpha float64
		want  string
	}{
		{1, "#4dc2ab"},
		{0.999, "#4dc2ab"}, // rounds to 0xff
		{1.5, "#4dc2ab"},
		{0.99, "#4dc2abfc"},
		{0, "#4dc2ab00"},
	}
	for _, tt := range tests {
		if got := FromRGBInt(0x4DC2AB, tt.alpha).Hex(); got != tt.want {
			t.Errorf("FromRGBInt(0x4DC2AB, %v).Hex() = %q, want %q", tt.alpha, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	got := ParseHex("#FF0066").String()
	want := "(1.0000, 0.0000, 0.4000, 1.0000)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
