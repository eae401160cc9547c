package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/color-game/palettes/palette"
)

const maxPaletteNameLength = 80

// SavedPalette is a palette stored in a user's namespace.
type SavedPalette struct {
	ID        string                      `json:"id" db:"palette_id"`
	UserID    string                      `json:"userId" db:"user_id"`
	Name      string                      `json:"name" db:"name"`
	Colors    [palette.Size]palette.Color `json:"colors" db:"colors"`
	Harmony   palette.Harmony             `json:"harmony" db:"harmony"`
	CreatedAt time.Time                   `json:"date" db:"created_at"`
}

// SavePaletteRequest is the body of POST /v1/palettes.
type SavePaletteRequest struct {
	Name    string          `json:"name"`
	Colors  []palette.Color `json:"colors"`
	Harmony palette.Harmony `json:"harmony"`
}

// Validate checks that the request describes a complete palette produced by
// a concrete harmony.
func (req SavePaletteRequest) Validate() error {
	if len(req.Colors) != palette.Size {
		return fmt.Errorf("a palette needs exactly %d colors, got %d", palette.Size, len(req.Colors))
	}
	if !req.Harmony.IsConcrete() {
		return fmt.Errorf("unknown harmony %q", req.Harmony)
	}
	if len(strings.TrimSpace(req.Name)) > maxPaletteNameLength {
		return fmt.Errorf("name must be at most %d characters", maxPaletteNameLength)
	}
	return nil
}

// NewSavedPalette builds a palette record owned by userID. The request must
// already be valid.
func NewSavedPalette(userID string, req SavePaletteRequest) (SavedPalette, error) {
	if len(req.Colors) != palette.Size {
		return SavedPalette{}, errors.New("palette requires five colors")
	}
	saved := SavedPalette{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      strings.TrimSpace(req.Name),
		Harmony:   req.Harmony,
		CreatedAt: time.Now(),
	}
	copy(saved.Colors[:], req.Colors)
	return saved, nil
}

// GeneratePaletteRequest is the body of POST /v1/palettes/generate.
type GeneratePaletteRequest struct {
	LockMask       []bool          `json:"lockMask"`
	PreviousColors []palette.Color `json:"previousColors"`
	Harmony        palette.Harmony `json:"harmony"`
}

// Lock converts the request's lock flags into a LockMask.
func (req GeneratePaletteRequest) Lock() (palette.LockMask, error) {
	var mask palette.LockMask
	if len(req.LockMask) > palette.Size {
		return mask, fmt.Errorf("lockMask has %d entries, at most %d allowed", len(req.LockMask), palette.Size)
	}
	copy(mask[:], req.LockMask)
	return mask, nil
}

// PaletteResponse is a palette with every swatch rendered for display.
type PaletteResponse struct {
	ID        string           `json:"id,omitempty"`
	Name      string           `json:"name,omitempty"`
	Harmony   palette.Harmony  `json:"harmony"`
	Base      *palette.Color   `json:"base,omitempty"`
	Swatches  []palette.Swatch `json:"swatches"`
	CreatedAt *time.Time       `json:"date,omitempty"`
}

// NewPaletteResponse renders a freshly generated palette.
func NewPaletteResponse(p palette.Palette) PaletteResponse {
	base := p.Base
	return PaletteResponse{
		Harmony:  p.Harmony,
		Base:     &base,
		Swatches: p.Swatches(),
	}
}

// Response renders a saved palette.
func (sp SavedPalette) Response() PaletteResponse {
	created := sp.CreatedAt
	p := palette.Palette{Colors: sp.Colors, Harmony: sp.Harmony}
	return PaletteResponse{
		ID:        sp.ID,
		Name:      sp.Name,
		Harmony:   sp.Harmony,
		Swatches:  p.Swatches(),
		CreatedAt: &created,
	}
}

// ColorFormatRequest is the body of POST /v1/colors/format.
type ColorFormatRequest struct {
	Color  palette.Color `json:"color"`
	Format string        `json:"format"`
}

type ColorFormatResponse struct {
	Value     string           `json:"value"`
	Format    palette.Format   `json:"format"`
	TextColor palette.TextTone `json:"textColor"`
}

// PaletteExport lists a saved palette's colours in one format.
type PaletteExport struct {
	ID      string          `json:"id"`
	Harmony palette.Harmony `json:"harmony"`
	Format  palette.Format  `json:"format"`
	Values  []string        `json:"values"`
}

// CSSVariables renders the palette as a :root block of custom properties.
func (sp SavedPalette) CSSVariables() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for i, c := range sp.Colors {
		fmt.Fprintf(&b, "  --palette-%d: %s;\n", i+1, palette.ColorValue(c, palette.FormatHex))
		fmt.Fprintf(&b, "  --palette-%d-text: %s;\n", i+1, textCSSValue(palette.TextColor(c)))
	}
	b.WriteString("}\n")
	return b.String()
}

func textCSSValue(tone palette.TextTone) string {
	if tone == palette.TextDark {
		return "#000000"
	}
	return "#FFFFFF"
}
