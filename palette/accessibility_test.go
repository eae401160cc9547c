package palette

import "testing"

func TestTextColor(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  TextTone
	}{
		{name: "white", color: Color{H: 0, S: 0, L: 100}, want: TextDark},
		{name: "black", color: Color{H: 0, S: 0, L: 0}, want: TextLight},
		{name: "yellow", color: Color{H: 60, S: 100, L: 50}, want: TextDark},
		{name: "mid grey", color: Color{H: 0, S: 0, L: 50}, want: TextDark},
		// Luminance ~0.1759 sits just under the threshold.
		{name: "strong red", color: Color{H: 0, S: 80, L: 50}, want: TextLight},
		{name: "navy", color: Color{H: 240, S: 100, L: 25}, want: TextLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TextColor(tt.color); got != tt.want {
				t.Errorf("TextColor(%+v) = %q, want %q", tt.color, got, tt.want)
			}
		})
	}
}

func TestPaletteSwatches(t *testing.T) {
	previous := []Color{{H: 1}, {H: 2}, {H: 3}}
	p, err := Merge(Color{H: 0, S: 80, L: 50}, Complementary, LockMask{false, false, true, false, false}, previous)
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}

	swatches := p.Swatches()
	if len(swatches) != Size {
		t.Fatalf("got %d swatches, want %d", len(swatches), Size)
	}

	for i, sw := range swatches {
		if sw.Hex != ColorValue(p.Colors[i], FormatHex) {
			t.Errorf("swatch %d hex = %q", i, sw.Hex)
		}
		if sw.TextColor != TextColor(p.Colors[i]) {
			t.Errorf("swatch %d text colour = %q", i, sw.TextColor)
		}
		if sw.Locked != (i == 2) {
			t.Errorf("swatch %d locked = %v", i, sw.Locked)
		}
	}
}
