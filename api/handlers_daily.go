package api

import (
	"net/http"

	"github.com/color-game/palettes/models"
)

// GET /v1/palettes/daily - Get today's palette
func (app *Application) getDailyPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	dailyPalette, err := app.DailyPaletteRepo.GetToday(r.Context())
	if err != nil {
		app.storeError(w, r, err, "today's palette")
		return
	}

	writeJSON(w, http.StatusOK, dailyPalette.Response())
}

// GET /v1/palettes/daily/all - Get every palette of the day, newest first
func (app *Application) getAllDailyPalettes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	dailyPalettes, err := app.DailyPaletteRepo.GetAll(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	responses := make([]models.DailyPaletteResponse, 0, len(dailyPalettes))
	for _, dp := range dailyPalettes {
		responses = append(responses, dp.Response())
	}

	writeJSON(w, http.StatusOK, responses)
}

// POST /v1/admin/palettes/daily - Regenerate today's palette
func (app *Application) generateDailyPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	dailyPalette, err := app.DailyPalettes.RegenerateDailyPalette(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.Logger.Info("daily palette regenerated by admin", "admin_id", contextGetUser(r).UserID)
	writeJSON(w, http.StatusOK, dailyPalette.Response())
}
