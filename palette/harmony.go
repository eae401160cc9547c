package palette

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is returned when a caller passes a value outside the
// documented domain, such as an unknown harmony kind.
var ErrInvalidArgument = errors.New("invalid argument")

// Size is the number of colours in every palette.
const Size = 5

// Harmony names a colour-harmony rule.
type Harmony string

const (
	Monochromatic      Harmony = "monochromatic"
	Complementary      Harmony = "complementary"
	Triadic            Harmony = "triadic"
	Analogous          Harmony = "analogous"
	SplitComplementary Harmony = "split-complementary"
	Tetradic           Harmony = "tetradic"

	// Random asks the generator to pick one of the concrete kinds. It is
	// never accepted by Derive.
	Random Harmony = "random"
)

// Harmonies lists the concrete harmony kinds in a stable order.
var Harmonies = []Harmony{
	Monochromatic,
	Complementary,
	Triadic,
	Analogous,
	SplitComplementary,
	Tetradic,
}

// ParseHarmony converts a raw tag into a Harmony. Random is accepted.
func ParseHarmony(tag string) (Harmony, error) {
	h := Harmony(tag)
	if h == Random || h.IsConcrete() {
		return h, nil
	}
	return "", fmt.Errorf("%w: unknown harmony %q", ErrInvalidArgument, tag)
}

// IsConcrete reports whether h has a rule table entry.
func (h Harmony) IsConcrete() bool {
	_, ok := rules[h]
	return ok
}

// rule holds per-position offsets. Hue and saturation are relative to the
// base colour, lightness is absolute.
type rule struct {
	hue        [Size]float64
	saturation [Size]float64
	lightness  [Size]float64
	satMin     float64
	satMax     float64
}

var rules = map[Harmony]rule{
	Monochromatic: {
		hue:        [Size]float64{0, 0, 0, 0, 0},
		saturation: [Size]float64{-8, -4, 0, 4, 8},
		lightness:  [Size]float64{28, 42, 55, 68, 82},
		satMin:     25,
		satMax:     100,
	},
	Complementary: {
		hue:        [Size]float64{0, 0, 30, 180, 180},
		saturation: [Size]float64{0, -8, -20, -8, 0},
		lightness:  [Size]float64{38, 55, 72, 55, 38},
		satMin:     0,
		satMax:     100,
	},
	Triadic: {
		hue:        [Size]float64{0, 0, 120, 240, 240},
		saturation: [Size]float64{0, -12, 0, 0, -12},
		lightness:  [Size]float64{45, 65, 52, 52, 65},
		satMin:     0,
		satMax:     100,
	},
	Analogous: {
		hue:        [Size]float64{-30, -15, 0, 15, 30},
		saturation: [Size]float64{-5, 0, 5, 0, -5},
		lightness:  [Size]float64{40, 50, 55, 50, 60},
		satMin:     0,
		satMax:     100,
	},
	SplitComplementary: {
		hue:        [Size]float64{0, 0, 150, 210, 210},
		saturation: [Size]float64{0, -10, 0, 0, -10},
		lightness:  [Size]float64{40, 60, 50, 50, 65},
		satMin:     0,
		satMax:     100,
	},
	Tetradic: {
		hue:        [Size]float64{0, 90, 90, 180, 270},
		saturation: [Size]float64{0, -8, -15, 0, -8},
		lightness:  [Size]float64{45, 55, 70, 50, 55},
		satMin:     0,
		satMax:     100,
	},
}

// NormalizeHue wraps any hue, including negative ones, into [0, 360).
func NormalizeHue(hue float64) float64 {
	return math.Mod(math.Mod(hue, 360)+360, 360)
}

// Derive applies the rule for kind to base and returns the five colours in
// the rule's positional order.
func Derive(base Color, kind Harmony) ([Size]Color, error) {
	var out [Size]Color

	r, ok := rules[kind]
	if !ok {
		return out, fmt.Errorf("%w: cannot derive colours for harmony %q", ErrInvalidArgument, kind)
	}

	for i := range out {
		out[i] = Color{
			H: NormalizeHue(base.H + r.hue[i]),
			S: clamp(base.S+r.saturation[i], r.satMin, r.satMax),
			L: r.lightness[i],
		}
	}

	return out, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
