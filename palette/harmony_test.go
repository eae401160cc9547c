package palette

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func TestNormalizeHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{390, 30},
		{-30, 330},
		{-360, 0},
		{-725, 355},
		{1080.25, 0.25},
	}

	for _, tt := range tests {
		if got := NormalizeHue(tt.in); math.Abs(got-tt.want) > tolerance {
			t.Errorf("NormalizeHue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeHuePeriodic(t *testing.T) {
	for _, h := range []float64{0, 12.5, 180, 359.99, -45} {
		want := NormalizeHue(h)
		if want < 0 || want >= 360 {
			t.Fatalf("NormalizeHue(%v) = %v, out of range", h, want)
		}
		for k := -3; k <= 3; k++ {
			got := NormalizeHue(h + 360*float64(k))
			if math.Abs(got-want) > 1e-6 {
				t.Errorf("NormalizeHue(%v + 360*%d) = %v, want %v", h, k, got, want)
			}
		}
	}
}

func TestDeriveComplementaryScenario(t *testing.T) {
	base := Color{H: 0, S: 80, L: 50}

	got, err := Derive(base, Complementary)
	if err != nil {
		t.Fatalf("Derive returned error: %v", err)
	}

	wantH := []float64{0, 0, 30, 180, 180}
	wantS := []float64{80, 72, 60, 72, 80}
	wantL := []float64{38, 55, 72, 55, 38}

	for i, c := range got {
		if math.Abs(c.H-wantH[i]) > tolerance || math.Abs(c.S-wantS[i]) > tolerance || math.Abs(c.L-wantL[i]) > tolerance {
			t.Errorf("position %d = %+v, want {H:%v S:%v L:%v}", i, c, wantH[i], wantS[i], wantL[i])
		}
	}
}

func TestDeriveHueOffsets(t *testing.T) {
	offsets := map[Harmony][Size]float64{
		Monochromatic:      {0, 0, 0, 0, 0},
		Complementary:      {0, 0, 30, 180, 180},
		Triadic:            {0, 0, 120, 240, 240},
		Analogous:          {-30, -15, 0, 15, 30},
		SplitComplementary: {0, 0, 150, 210, 210},
		Tetradic:           {0, 90, 90, 180, 270},
	}

	bases := []Color{
		{H: 0, S: 70, L: 50},
		{H: 10, S: 60, L: 45},
		{H: 200.5, S: 88, L: 60},
		{H: 350, S: 55, L: 42},
	}

	for kind, want := range offsets {
		for _, base := range bases {
			got, err := Derive(base, kind)
			if err != nil {
				t.Fatalf("Derive(%v, %s) returned error: %v", base, kind, err)
			}
			for i := range got {
				if h := NormalizeHue(base.H + want[i]); math.Abs(got[i].H-h) > tolerance {
					t.Errorf("%s base %v position %d hue = %v, want %v", kind, base.H, i, got[i].H, h)
				}
			}
		}
	}
}

func TestDeriveSaturationAndLightness(t *testing.T) {
	base := Color{H: 100, S: 70, L: 50}

	tests := []struct {
		kind  Harmony
		sat   [Size]float64
		light [Size]float64
	}{
		{Monochromatic, [Size]float64{62, 66, 70, 74, 78}, [Size]float64{28, 42, 55, 68, 82}},
		{Complementary, [Size]float64{70, 62, 50, 62, 70}, [Size]float64{38, 55, 72, 55, 38}},
		{Triadic, [Size]float64{70, 58, 70, 70, 58}, [Size]float64{45, 65, 52, 52, 65}},
		{Analogous, [Size]float64{65, 70, 75, 70, 65}, [Size]float64{40, 50, 55, 50, 60}},
		{SplitComplementary, [Size]float64{70, 60, 70, 70, 60}, [Size]float64{40, 60, 50, 50, 65}},
		{Tetradic, [Size]float64{70, 62, 55, 70, 62}, [Size]float64{45, 55, 70, 50, 55}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got, err := Derive(base, tt.kind)
			if err != nil {
				t.Fatalf("Derive returned error: %v", err)
			}
			for i, c := range got {
				if math.Abs(c.S-tt.sat[i]) > tolerance {
					t.Errorf("position %d saturation = %v, want %v", i, c.S, tt.sat[i])
				}
				if math.Abs(c.L-tt.light[i]) > tolerance {
					t.Errorf("position %d lightness = %v, want %v", i, c.L, tt.light[i])
				}
			}
		})
	}
}

func TestDeriveClampsSaturation(t *testing.T) {
	mono, err := Derive(Color{H: 10, S: 20, L: 50}, Monochromatic)
	if err != nil {
		t.Fatalf("Derive returned error: %v", err)
	}
	if mono[0].S != 25 || mono[1].S != 25 || mono[4].S != 28 {
		t.Errorf("monochromatic saturations = %v %v %v, want 25 25 28", mono[0].S, mono[1].S, mono[4].S)
	}

	high, err := Derive(Color{H: 10, S: 98, L: 50}, Analogous)
	if err != nil {
		t.Fatalf("Derive returned error: %v", err)
	}
	if high[2].S != 100 {
		t.Errorf("analogous position 2 saturation = %v, want 100", high[2].S)
	}

	low, err := Derive(Color{H: 10, S: 5, L: 50}, Complementary)
	if err != nil {
		t.Fatalf("Derive returned error: %v", err)
	}
	if low[2].S != 0 {
		t.Errorf("complementary position 2 saturation = %v, want 0", low[2].S)
	}
}

func TestDeriveRejectsUnknownHarmony(t *testing.T) {
	for _, kind := range []Harmony{Random, "", "pentadic"} {
		if _, err := Derive(Color{}, kind); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Derive(%q) error = %v, want ErrInvalidArgument", kind, err)
		}
	}
}

func TestParseHarmony(t *testing.T) {
	for _, kind := range append([]Harmony{Random}, Harmonies...) {
		got, err := ParseHarmony(string(kind))
		if err != nil || got != kind {
			t.Errorf("ParseHarmony(%q) = %q, %v", kind, got, err)
		}
	}

	if _, err := ParseHarmony("Triadic"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseHarmony(Triadic) error = %v, want ErrInvalidArgument", err)
	}
}
