package models

import (
	"time"

	"github.com/color-game/palettes/palette"
)

// DailyPalette is the palette of the day
type DailyPalette struct {
	ID        int                         `json:"id"`
	Date      time.Time                   `json:"date"`
	Base      palette.Color               `json:"base"`
	Colors    [palette.Size]palette.Color `json:"colors"`
	Harmony   palette.Harmony             `json:"harmony"`
	CreatedAt time.Time                   `json:"created_at"`
}

// DailyPaletteResponse is the simplified response for API endpoints
type DailyPaletteResponse struct {
	Date     string           `json:"date"`
	Harmony  palette.Harmony  `json:"harmony"`
	Swatches []palette.Swatch `json:"swatches"`
}

func (dp DailyPalette) Response() DailyPaletteResponse {
	p := palette.Palette{Base: dp.Base, Colors: dp.Colors, Harmony: dp.Harmony}
	return DailyPaletteResponse{
		Date:     dp.Date.Format("2006-01-02"),
		Harmony:  dp.Harmony,
		Swatches: p.Swatches(),
	}
}
