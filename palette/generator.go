package palette

import (
	"fmt"
	"math/rand"
	"sync"
)

// Source is the randomness consumed by a Generator. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// Base colour sampling bounds. They keep generated palettes away from
// washed-out and muddy tones.
const (
	baseSatMin   = 55.0
	baseSatMax   = 90.0
	baseLightMin = 42.0
	baseLightMax = 68.0
)

// LockMask marks palette positions that must survive a regeneration.
type LockMask [Size]bool

// Palette is a generated set of colours and the harmony that produced them.
type Palette struct {
	Base    Color       `json:"base"`
	Colors  [Size]Color `json:"colors"`
	Harmony Harmony     `json:"harmony"`
	// Locked marks the positions that kept a previous colour.
	Locked LockMask `json:"locked"`
}

// Generator produces palettes from an injected random source.
type Generator struct {
	rng Source
}

// NewGenerator returns a Generator drawing from rng. A nil rng uses a
// goroutine-safe source seeded from the global math/rand state.
func NewGenerator(rng Source) *Generator {
	if rng == nil {
		rng = NewLockedSource(rand.Int63())
	}
	return &Generator{rng: rng}
}

// NewSeededGenerator returns a Generator whose output is fully determined by
// seed. It is not safe for concurrent use.
func NewSeededGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// BaseColor samples a base colour uniformly inside the base bounds.
func (g *Generator) BaseColor() Color {
	return Color{
		H: g.rng.Float64() * 360,
		S: baseSatMin + g.rng.Float64()*(baseSatMax-baseSatMin),
		L: baseLightMin + g.rng.Float64()*(baseLightMax-baseLightMin),
	}
}

// SelectHarmony resolves Random to one of the concrete kinds and passes any
// concrete kind through unchanged.
func (g *Generator) SelectHarmony(requested Harmony) (Harmony, error) {
	if requested == Random {
		return Harmonies[g.rng.Intn(len(Harmonies))], nil
	}
	if !requested.IsConcrete() {
		return "", fmt.Errorf("%w: unknown harmony %q", ErrInvalidArgument, requested)
	}
	return requested, nil
}

// Generate samples a new base colour, derives a palette for the requested
// harmony and keeps previous[i] wherever lock[i] is set. previous may be
// empty or shorter than Size; missing positions are never locked.
func (g *Generator) Generate(lock LockMask, previous []Color, requested Harmony) (Palette, error) {
	if len(previous) > Size {
		return Palette{}, fmt.Errorf("%w: %d previous colours, at most %d allowed", ErrInvalidArgument, len(previous), Size)
	}

	base := g.BaseColor()

	kind, err := g.SelectHarmony(requested)
	if err != nil {
		return Palette{}, err
	}

	return Merge(base, kind, lock, previous)
}

// Merge derives the palette for base and kind and applies lock against
// previous. A lock on a position with no previous colour has no effect and
// is left unset in the result's Locked mask. It is the deterministic half of
// Generate.
func Merge(base Color, kind Harmony, lock LockMask, previous []Color) (Palette, error) {
	derived, err := Derive(base, kind)
	if err != nil {
		return Palette{}, err
	}

	var kept LockMask
	for i := range derived {
		if lock[i] && i < len(previous) {
			derived[i] = previous[i]
			kept[i] = true
		}
	}

	return Palette{Base: base, Colors: derived, Harmony: kind, Locked: kept}, nil
}

// LockedSource is a Source guarded by a mutex so one Generator can serve
// concurrent requests.
type LockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLockedSource returns a goroutine-safe Source seeded with seed.
func NewLockedSource(seed int64) *LockedSource {
	return &LockedSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *LockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *LockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
