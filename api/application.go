package api

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/color-game/palettes/config"
	"github.com/color-game/palettes/datastore"
	"github.com/color-game/palettes/models"
	"github.com/color-game/palettes/palette"
)

// DailyPaletteGenerator produces the palette of the day on demand.
type DailyPaletteGenerator interface {
	RegenerateDailyPalette(ctx context.Context) (models.DailyPalette, error)
}

type Application struct {
	Config           config.Config
	Logger           hclog.Logger
	Generator        *palette.Generator
	UserRepo         datastore.UserRepository
	PaletteRepo      datastore.PaletteRepository
	DailyPaletteRepo datastore.DailyPaletteRepository
	PreferencesRepo  datastore.PreferencesRepository
	DailyPalettes    DailyPaletteGenerator
}
