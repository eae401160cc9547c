package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/color-game/palettes/models"
	"github.com/color-game/palettes/palette"
)

const exportFormatCSS = "css"

// GET /v1/harmonies
func (app *Application) listHarmonies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}
	writeJSON(w, http.StatusOK, palette.Harmonies)
}

// POST /v1/palettes/generate
func (app *Application) generatePalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := models.GeneratePaletteRequest{}
	// An empty body asks for a fresh random palette.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		app.badJSONRequest(w, r, err)
		return
	}
	if req.Harmony == "" {
		req.Harmony = palette.Random
	}

	lock, err := req.Lock()
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	p, err := app.Generator.Generate(lock, req.PreviousColors, req.Harmony)
	if err != nil {
		app.paletteError(w, r, err)
		return
	}

	app.Logger.Debug("generated palette", "harmony", p.Harmony, "base", p.Base.Hex())
	writeJSON(w, http.StatusOK, models.NewPaletteResponse(p))
}

// POST /v1/colors/format
func (app *Application) formatColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := models.ColorFormatRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	format, err := palette.ParseFormat(req.Format)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ColorFormatResponse{
		Value:     palette.ColorValue(req.Color, format),
		Format:    format,
		TextColor: palette.TextColor(req.Color),
	})
}

// GET, POST /v1/palettes
func (app *Application) palettes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		app.listPalettes(w, r)
	case http.MethodPost:
		app.savePalette(w, r)
	default:
		app.methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (app *Application) listPalettes(w http.ResponseWriter, r *http.Request) {
	user := contextGetUser(r)

	saved, err := app.PaletteRepo.ListByUser(r.Context(), user.UserID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	responses := make([]models.PaletteResponse, 0, len(saved))
	for _, sp := range saved {
		responses = append(responses, sp.Response())
	}
	writeJSON(w, http.StatusOK, responses)
}

func (app *Application) savePalette(w http.ResponseWriter, r *http.Request) {
	user := contextGetUser(r)

	req := models.SavePaletteRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		app.badRequest(w, r, err)
		return
	}

	sp, err := models.NewSavedPalette(user.UserID, req)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	stored, err := app.PaletteRepo.Create(r.Context(), sp)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.Logger.Info("palette saved", "user_id", user.UserID, "palette_id", stored.ID, "harmony", stored.Harmony)
	writeJSON(w, http.StatusCreated, stored.Response())
}

// GET, DELETE /v1/palettes/{id}
func (app *Application) paletteByID(w http.ResponseWriter, r *http.Request) {
	user := contextGetUser(r)
	id := r.PathValue("id")

	switch r.Method {
	case http.MethodGet:
		sp, err := app.PaletteRepo.Get(r.Context(), user.UserID, id)
		if err != nil {
			app.storeError(w, r, err, "palette")
			return
		}
		writeJSON(w, http.StatusOK, sp.Response())
	case http.MethodDelete:
		if err := app.PaletteRepo.Delete(r.Context(), user.UserID, id); err != nil {
			app.storeError(w, r, err, "palette")
			return
		}
		app.Logger.Info("palette deleted", "user_id", user.UserID, "palette_id", id)
		w.WriteHeader(http.StatusNoContent)
	default:
		app.methodNotAllowed(w, r, http.MethodGet, http.MethodDelete)
	}
}

// GET /v1/palettes/{id}/export?format=HEX|RGBA|HSL|css
func (app *Application) exportPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	user := contextGetUser(r)
	tag := r.URL.Query().Get("format")
	if tag == "" {
		tag = string(palette.FormatHex)
	}

	var format palette.Format
	if tag != exportFormatCSS {
		f, err := palette.ParseFormat(tag)
		if err != nil {
			app.badRequest(w, r, err)
			return
		}
		format = f
	}

	sp, err := app.PaletteRepo.Get(r.Context(), user.UserID, r.PathValue("id"))
	if err != nil {
		app.storeError(w, r, err, "palette")
		return
	}

	if tag == exportFormatCSS {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, sp.CSSVariables())
		return
	}

	values := make([]string, 0, palette.Size)
	for _, c := range sp.Colors {
		values = append(values, palette.ColorValue(c, format))
	}
	writeJSON(w, http.StatusOK, models.PaletteExport{
		ID:      sp.ID,
		Harmony: sp.Harmony,
		Format:  format,
		Values:  values,
	})
}

// GET, PUT /v1/users/me/preferences
func (app *Application) preferences(w http.ResponseWriter, r *http.Request) {
	user := contextGetUser(r)

	switch r.Method {
	case http.MethodGet:
		prefs, err := app.PreferencesRepo.Get(r.Context(), user.UserID)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, prefs)
	case http.MethodPut:
		req := models.PreferencesUpdateRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			app.badJSONRequest(w, r, err)
			return
		}

		current, err := app.PreferencesRepo.Get(r.Context(), user.UserID)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}

		updated, err := req.Apply(current)
		if err != nil {
			app.badRequest(w, r, err)
			return
		}
		updated.UpdatedAt = time.Now()

		stored, err := app.PreferencesRepo.Upsert(r.Context(), updated)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, stored)
	default:
		app.methodNotAllowed(w, r, http.MethodGet, http.MethodPut)
	}
}
