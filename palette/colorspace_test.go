package palette

import (
	"errors"
	"math"
	"math/rand"
	"regexp"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		r, g, b int
	}{
		{name: "red", h: 0, s: 100, l: 50, r: 255, g: 0, b: 0},
		{name: "green", h: 120, s: 100, l: 50, r: 0, g: 255, b: 0},
		{name: "blue", h: 240, s: 100, l: 50, r: 0, g: 0, b: 255},
		{name: "yellow", h: 60, s: 100, l: 50, r: 255, g: 255, b: 0},
		{name: "black", h: 0, s: 0, l: 0, r: 0, g: 0, b: 0},
		{name: "white", h: 0, s: 0, l: 100, r: 255, g: 255, b: 255},
		{name: "mid grey rounds up", h: 0, s: 0, l: 50, r: 128, g: 128, b: 128},
		{name: "orange red", h: 11, s: 100, l: 60, r: 255, g: 88, b: 51},
		{name: "steel blue", h: 200, s: 80, l: 40, r: 20, g: 129, b: 184},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := HSLToRGB(tt.h, tt.s, tt.l)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("HSLToRGB(%v, %v, %v) = (%d, %d, %d), want (%d, %d, %d)",
					tt.h, tt.s, tt.l, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestHSLToRGBMatchesColorful(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		h := rng.Float64() * 360
		s := rng.Float64() * 100
		l := rng.Float64() * 100

		r, g, b := HSLToRGB(h, s, l)
		wr, wg, wb := colorful.Hsl(h, s/100, l/100).RGB255()

		if absDiff(r, int(wr)) > 1 || absDiff(g, int(wg)) > 1 || absDiff(b, int(wb)) > 1 {
			t.Fatalf("HSLToRGB(%.3f, %.3f, %.3f) = (%d, %d, %d), colorful gives (%d, %d, %d)",
				h, s, l, r, g, b, wr, wg, wb)
		}
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func TestHSLToHex(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    string
	}{
		{0, 0, 0, "#000000"},
		{0, 0, 100, "#FFFFFF"},
		{0, 100, 50, "#FF0000"},
		{11, 100, 60, "#FF5833"},
		{200, 80, 40, "#1481B8"},
	}

	for _, tt := range tests {
		if got := HSLToHex(tt.h, tt.s, tt.l); got != tt.want {
			t.Errorf("HSLToHex(%v, %v, %v) = %q, want %q", tt.h, tt.s, tt.l, got, tt.want)
		}
	}
}

func TestHSLToHexAlwaysSixUppercaseDigits(t *testing.T) {
	pattern := regexp.MustCompile(`^#[0-9A-F]{6}$`)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		// Deliberately outside the nominal ranges.
		h := rng.Float64()*1440 - 720
		s := rng.Float64()*160 - 30
		l := rng.Float64() * 100

		if got := HSLToHex(h, s, l); !pattern.MatchString(got) {
			t.Fatalf("HSLToHex(%v, %v, %v) = %q, does not match %s", h, s, l, got, pattern)
		}
	}
}

func TestHSLToRGBA(t *testing.T) {
	if got, want := HSLToRGBA(0, 100, 50, 1), "rgba(255, 0, 0, 1)"; got != want {
		t.Errorf("HSLToRGBA = %q, want %q", got, want)
	}
	if got, want := HSLToRGBA(240, 100, 50, 0.5), "rgba(0, 0, 255, 0.5)"; got != want {
		t.Errorf("HSLToRGBA = %q, want %q", got, want)
	}
}

func TestHSLToString(t *testing.T) {
	if got, want := HSLToString(120.4, 55.5, 49.6), "hsl(120, 56%, 50%)"; got != want {
		t.Errorf("HSLToString = %q, want %q", got, want)
	}
}

func TestColorValue(t *testing.T) {
	c := Color{H: 0, S: 100, L: 50}

	tests := []struct {
		format Format
		want   string
	}{
		{FormatHex, "#FF0000"},
		{FormatRGBA, "rgba(255, 0, 0, 1)"},
		{FormatHSL, "hsl(0, 100%, 50%)"},
		{Format("CMYK"), "#FF0000"},
		{Format(""), "#FF0000"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			got := ColorValue(c, tt.format)
			if got != tt.want {
				t.Errorf("ColorValue(%v, %q) = %q, want %q", c, tt.format, got, tt.want)
			}
			if again := ColorValue(c, tt.format); again != got {
				t.Errorf("ColorValue not deterministic: %q then %q", got, again)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %q, %v", f, got, err)
		}
	}

	for _, tag := range []string{"", "hex", "CMYK"} {
		if _, err := ParseFormat(tag); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParseFormat(%q) error = %v, want ErrInvalidArgument", tag, err)
		}
	}
}

func TestRelativeLuminance(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    float64
	}{
		{name: "white", h: 0, s: 0, l: 100, want: 1},
		{name: "black", h: 0, s: 0, l: 0, want: 0},
		{name: "yellow", h: 60, s: 100, l: 50, want: 0.9278},
		{name: "mid grey", h: 0, s: 0, l: 50, want: 0.21586},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeLuminance(tt.h, tt.s, tt.l)
			if math.Abs(got-tt.want) > 1e-4 {
				t.Errorf("RelativeLuminance(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}
