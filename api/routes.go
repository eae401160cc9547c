package api

import (
	"net/http"
	"regexp"
	"strings"
)

var localhostPattern = regexp.MustCompile(`^localhost:\d+$`)

func cleanOrigin(origin string) string {
	cleanedOrigin := origin
	for _, scheme := range []string{"https://", "http://", "wss://", "ws://"} {
		cleanedOrigin = strings.TrimPrefix(cleanedOrigin, scheme)
	}
	if idx := strings.Index(cleanedOrigin, "/"); idx != -1 {
		cleanedOrigin = cleanedOrigin[:idx]
	}
	return cleanedOrigin
}

func isAllowedOrigin(origin string, allowedOrigins []string, devMode bool) bool {
	cleanedRequest := cleanOrigin(origin)

	if devMode && localhostPattern.MatchString(cleanedRequest) {
		return true
	}

	for _, allowed := range allowedOrigins {
		if cleanOrigin(allowed) == cleanedRequest {
			return true
		}
	}

	return false
}

func (app *Application) wrapMuxWithCorsAndOrigins(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = r.Header.Get("Referer")
		}

		if origin == "" || isAllowedOrigin(origin, app.Config.AllowedOrigins, app.Config.DevMode) {
			handleCors(mux.ServeHTTP)(w, r)
			return
		}

		app.Logger.Warn("origin not allowed", "origin", cleanOrigin(origin))
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("origin not allowed: " + cleanOrigin(origin)))
	})
}

func (app *Application) BuildRoutes(mux *http.ServeMux) http.Handler {
	// Public endpoints
	mux.HandleFunc("/", app.home)
	mux.HandleFunc("/v1/auth/signup", app.signup)
	mux.HandleFunc("/v1/auth/login", app.login)
	mux.HandleFunc("/v1/auth/refresh", app.refresh)
	mux.HandleFunc("/v1/harmonies", app.listHarmonies)
	mux.HandleFunc("/v1/colors/format", app.formatColor)
	mux.HandleFunc("/v1/palettes/generate", app.generatePalette)
	mux.HandleFunc("/v1/palettes/daily", app.getDailyPalette)
	mux.HandleFunc("/v1/palettes/daily/all", app.getAllDailyPalettes)

	// Authenticated endpoints
	mux.HandleFunc("/v1/auth/logout", app.authenticate(app.logout))
	mux.HandleFunc("/v1/users/me", app.authenticate(app.currentUser))
	mux.HandleFunc("/v1/users/me/update", app.authenticate(app.updateCurrentUser))
	mux.HandleFunc("/v1/users/me/preferences", app.authenticate(app.preferences))
	mux.HandleFunc("/v1/palettes", app.authenticate(app.palettes))
	mux.HandleFunc("/v1/palettes/{id}", app.authenticate(app.paletteByID))
	mux.HandleFunc("/v1/palettes/{id}/export", app.authenticate(app.exportPalette))

	// Admin endpoints
	mux.HandleFunc("/v1/users", app.verifyPermissions(app.getAllUsers))
	mux.HandleFunc("/v1/admin/palettes/daily", app.verifyPermissions(app.generateDailyPalette))

	return app.logRequests(app.wrapMuxWithCorsAndOrigins(mux))
}
