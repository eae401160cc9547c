package palette

import (
	"errors"
	"math"
	"sync"
	"testing"
)

// fixedSource replays the given floats and always returns intn from Intn.
type fixedSource struct {
	floats []float64
	next   int
	intn   int
}

func (f *fixedSource) Float64() float64 {
	v := f.floats[f.next%len(f.floats)]
	f.next++
	return v
}

func (f *fixedSource) Intn(n int) int {
	return f.intn % n
}

func TestBaseColorBounds(t *testing.T) {
	g := NewSeededGenerator(1)
	for i := 0; i < 1000; i++ {
		c := g.BaseColor()
		if c.H < 0 || c.H >= 360 {
			t.Fatalf("hue %v out of [0,360)", c.H)
		}
		if c.S < 55 || c.S > 90 {
			t.Fatalf("saturation %v out of [55,90]", c.S)
		}
		if c.L < 42 || c.L > 68 {
			t.Fatalf("lightness %v out of [42,68]", c.L)
		}
	}
}

func TestBaseColorScalesSource(t *testing.T) {
	g := NewGenerator(&fixedSource{floats: []float64{0.5, 0, 1}})
	c := g.BaseColor()
	if c.H != 180 || c.S != 55 || c.L != 68 {
		t.Errorf("BaseColor() = %+v, want {H:180 S:55 L:68}", c)
	}
}

func TestSelectHarmony(t *testing.T) {
	g := NewSeededGenerator(3)

	for _, kind := range Harmonies {
		got, err := g.SelectHarmony(kind)
		if err != nil || got != kind {
			t.Errorf("SelectHarmony(%q) = %q, %v", kind, got, err)
		}
	}

	seen := map[Harmony]bool{}
	for i := 0; i < 600; i++ {
		got, err := g.SelectHarmony(Random)
		if err != nil {
			t.Fatalf("SelectHarmony(random) returned error: %v", err)
		}
		if !got.IsConcrete() {
			t.Fatalf("SelectHarmony(random) = %q, not a concrete kind", got)
		}
		seen[got] = true
	}
	if len(seen) != len(Harmonies) {
		t.Errorf("random selection covered %d kinds, want %d", len(seen), len(Harmonies))
	}

	if _, err := g.SelectHarmony("hexadic"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("SelectHarmony(hexadic) error = %v, want ErrInvalidArgument", err)
	}
}

func TestGenerateFollowsRuleTable(t *testing.T) {
	for _, kind := range Harmonies {
		t.Run(string(kind), func(t *testing.T) {
			g := NewSeededGenerator(11)
			p, err := g.Generate(LockMask{}, nil, kind)
			if err != nil {
				t.Fatalf("Generate returned error: %v", err)
			}
			if p.Harmony != kind {
				t.Errorf("Harmony = %q, want %q", p.Harmony, kind)
			}

			want, err := Derive(p.Base, kind)
			if err != nil {
				t.Fatalf("Derive returned error: %v", err)
			}
			for i := range want {
				if math.Abs(p.Colors[i].H-want[i].H) > tolerance {
					t.Errorf("position %d hue = %v, want %v", i, p.Colors[i].H, want[i].H)
				}
			}
		})
	}
}

func TestGenerateKeepsLockedColors(t *testing.T) {
	previous := []Color{
		{H: 1, S: 2, L: 3},
		{H: 4, S: 5, L: 6},
		{H: 7, S: 8, L: 9},
		{H: 10, S: 11, L: 12},
		{H: 13, S: 14, L: 15},
	}
	lock := LockMask{true, false, false, false, false}

	for seed := int64(0); seed < 20; seed++ {
		g := NewSeededGenerator(seed)
		p, err := g.Generate(lock, previous, Random)
		if err != nil {
			t.Fatalf("Generate returned error: %v", err)
		}
		if p.Colors[0] != previous[0] {
			t.Errorf("seed %d: position 0 = %+v, want %+v", seed, p.Colors[0], previous[0])
		}
		if p.Colors[1] == previous[1] {
			t.Errorf("seed %d: unlocked position 1 kept previous colour", seed)
		}
	}

	if lock != (LockMask{true, false, false, false, false}) {
		t.Errorf("Generate mutated the lock mask: %v", lock)
	}
}

func TestGenerateIgnoresLocksWithoutPrevious(t *testing.T) {
	g := NewSeededGenerator(5)
	p, err := g.Generate(LockMask{true, true, true, true, true}, nil, Triadic)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	want, _ := Derive(p.Base, Triadic)
	if p.Colors != want {
		t.Errorf("Colors = %+v, want freshly derived %+v", p.Colors, want)
	}
	if p.Locked != (LockMask{}) {
		t.Errorf("Locked = %v, want no kept positions", p.Locked)
	}

	short := []Color{{H: 1, S: 1, L: 1}, {H: 2, S: 2, L: 2}}
	p, err = g.Generate(LockMask{false, true, true, false, false}, short, Triadic)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	want, _ = Derive(p.Base, Triadic)
	if p.Colors[1] != short[1] {
		t.Errorf("position 1 = %+v, want %+v", p.Colors[1], short[1])
	}
	if p.Colors[2] != want[2] {
		t.Errorf("position 2 = %+v, want derived %+v", p.Colors[2], want[2])
	}
	if p.Locked != (LockMask{false, true, false, false, false}) {
		t.Errorf("Locked = %v, want only position 1", p.Locked)
	}
	for i, sw := range p.Swatches() {
		if sw.Locked != (i == 1) {
			t.Errorf("swatch %d locked = %v", i, sw.Locked)
		}
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	g := NewSeededGenerator(9)

	if _, err := g.Generate(LockMask{}, make([]Color, Size+1), Analogous); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("too many previous colours: error = %v, want ErrInvalidArgument", err)
	}
	if _, err := g.Generate(LockMask{}, nil, "rainbow"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unknown harmony: error = %v, want ErrInvalidArgument", err)
	}
}

func TestSeededGeneratorIsReproducible(t *testing.T) {
	a, err := NewSeededGenerator(2024).Generate(LockMask{}, nil, Random)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	b, err := NewSeededGenerator(2024).Generate(LockMask{}, nil, Random)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if a != b {
		t.Errorf("same seed produced %+v and %+v", a, b)
	}
}

func TestLockedSourceConcurrentUse(t *testing.T) {
	g := NewGenerator(NewLockedSource(1))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := g.Generate(LockMask{}, nil, Random); err != nil {
					t.Errorf("Generate returned error: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
