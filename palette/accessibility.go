package palette

// TextTone is the recommended foreground for text drawn on a colour.
type TextTone string

const (
	TextLight TextTone = "light"
	TextDark  TextTone = "dark"
)

// darkTextThreshold approximates the luminance at which dark text starts to
// out-contrast light text.
const darkTextThreshold = 0.179

// TextColor recommends dark text on light colours and light text otherwise.
func TextColor(c Color) TextTone {
	if RelativeLuminance(c.H, c.S, c.L) > darkTextThreshold {
		return TextDark
	}
	return TextLight
}

// Swatch is a colour rendered in every supported format.
type Swatch struct {
	Color     Color    `json:"color"`
	Hex       string   `json:"hex"`
	RGBA      string   `json:"rgba"`
	HSL       string   `json:"hsl"`
	TextColor TextTone `json:"textColor"`
	Locked    bool     `json:"locked"`
}

// NewSwatch renders c for display.
func NewSwatch(c Color, locked bool) Swatch {
	return Swatch{
		Color:     c,
		Hex:       ColorValue(c, FormatHex),
		RGBA:      ColorValue(c, FormatRGBA),
		HSL:       ColorValue(c, FormatHSL),
		TextColor: TextColor(c),
		Locked:    locked,
	}
}

// Swatches renders every colour of p, marking the positions that were kept.
func (p Palette) Swatches() []Swatch {
	out := make([]Swatch, 0, Size)
	for i, c := range p.Colors {
		out = append(out, NewSwatch(c, p.Locked[i]))
	}
	return out
}
