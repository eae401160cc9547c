// Package palette generates five-colour harmony palettes from a random base
// colour and converts HSL colours into the display formats used by clients.
package palette

import (
	"fmt"
	"math"
	"strconv"
)

// Color is an HSL colour. H is in degrees, S and L are percentages.
type Color struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// Format selects how a colour is rendered as a string.
type Format string

const (
	FormatHex  Format = "HEX"
	FormatRGBA Format = "RGBA"
	FormatHSL  Format = "HSL"
)

// Formats lists every supported display format.
var Formats = []Format{FormatHex, FormatRGBA, FormatHSL}

// ParseFormat converts a raw tag into a Format.
func ParseFormat(tag string) (Format, error) {
	switch Format(tag) {
	case FormatHex, FormatRGBA, FormatHSL:
		return Format(tag), nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", ErrInvalidArgument, tag)
	}
}

// HSLToRGB converts an HSL colour to 8-bit RGB channels following the CSS
// colour model. s and l are percentages.
func HSLToRGB(h, s, l float64) (r, g, b int) {
	h = NormalizeHue(h)
	s /= 100
	l /= 100

	a := s * math.Min(l, 1-l)
	f := func(n float64) int {
		k := math.Mod(n+h/30, 12)
		v := l - a*math.Max(-1, math.Min(k-3, math.Min(9-k, 1)))
		return clampChannel(math.Round(v * 255))
	}

	return f(0), f(8), f(4)
}

func clampChannel(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int(v)
}

// HSLToHex formats an HSL colour as #RRGGBB.
func HSLToHex(h, s, l float64) string {
	r, g, b := HSLToRGB(h, s, l)
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// HSLToRGBA formats an HSL colour as rgba(R, G, B, A). The alpha value is
// written as given.
func HSLToRGBA(h, s, l, a float64) string {
	r, g, b := HSLToRGB(h, s, l)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(a, 'f', -1, 64))
}

// HSLToString formats an HSL colour as hsl(H, S%, L%) with rounded components.
func HSLToString(h, s, l float64) string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", roundInt(h), roundInt(s), roundInt(l))
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

// ColorValue renders c in the requested format. Values outside the Format
// enumeration render as HEX.
func ColorValue(c Color, format Format) string {
	switch format {
	case FormatRGBA:
		return HSLToRGBA(c.H, c.S, c.L, 1)
	case FormatHSL:
		return HSLToString(c.H, c.S, c.L)
	default:
		return HSLToHex(c.H, c.S, c.L)
	}
}

// Hex is shorthand for ColorValue(c, FormatHex).
func (c Color) Hex() string {
	return HSLToHex(c.H, c.S, c.L)
}

// RelativeLuminance returns the WCAG 2.0 relative luminance of an HSL colour,
// between 0 (black) and 1 (white).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(h, s, l float64) float64 {
	r, g, b := HSLToRGB(h, s, l)

	rf := gammaCorrect(float64(r) / 255)
	gf := gammaCorrect(float64(g) / 255)
	bf := gammaCorrect(float64(b) / 255)

	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
