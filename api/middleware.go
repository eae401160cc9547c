package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/color-game/palettes/models"
)

type contextKey string

const userContextKey = contextKey("user")

func contextSetUser(r *http.Request, user models.User) *http.Request {
	ctx := context.WithValue(r.Context(), userContextKey, user)
	return r.WithContext(ctx)
}

// contextGetUser returns the user stored by authenticate. Only call it from
// handlers behind authenticate or verifyPermissions.
func contextGetUser(r *http.Request) models.User {
	user, ok := r.Context().Value(userContextKey).(models.User)
	if !ok {
		panic("missing user value in request context")
	}
	return user
}

func handleCors(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Headers", "Access-Control-Allow-Credentials, Access-Control-Allow-Origin, Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if r.Method == http.MethodOptions {
			return
		}
		h.ServeHTTP(w, r)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// logRequests writes one log line per request.
func (app *Application) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		app.Logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// claimsFromCookie validates the named JWT cookie and checks its scope.
func (app *Application) claimsFromCookie(r *http.Request, cookieName, scope string) (*models.JWTClaims, error) {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return nil, errors.New("no JWT cookie found")
	}

	claims, err := models.ValidateJWTToken(cookie.Value, app.Config.JwtSecret)
	if err != nil {
		return nil, err
	}
	if claims.Scope != scope {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// userForClaims checks the device is still registered and loads the user.
func (app *Application) userForClaims(ctx context.Context, claims *models.JWTClaims) (models.User, error) {
	device, err := app.UserRepo.GetDeviceByFingerprint(ctx, claims.UserID, claims.DeviceFingerprint)
	if err != nil {
		return models.User{}, errors.New("device not found")
	}

	if time.Now().After(device.Expiry) {
		return models.User{}, errors.New("device expired")
	}

	return app.UserRepo.Get(ctx, claims.UserID)
}

// getUserFromJWT attempts to get user from JWT access token cookie
func (app *Application) getUserFromJWT(r *http.Request) (models.User, error) {
	claims, err := app.claimsFromCookie(r, models.JWT.ACCESS_COOKIE_NAME, models.ScopeAuthentication)
	if err != nil {
		return models.User{}, err
	}
	return app.userForClaims(r.Context(), claims)
}

// authenticate that the user exists
func (app *Application) authenticate(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := app.getUserFromJWT(r)
		if err != nil {
			app.invalidAuthorization(w, r, err)
			return
		}

		if !user.Approved {
			app.invalidAuthorization(w, r, errors.New("user not approved"))
			return
		}

		h.ServeHTTP(w, contextSetUser(r, user))
	}
}

// Verify user has Admin permissions
func (app *Application) verifyPermissions(h http.HandlerFunc) http.HandlerFunc {
	return app.authenticate(func(w http.ResponseWriter, r *http.Request) {
		if contextGetUser(r).Kind != models.Admin {
			app.forbidden(w, r, ErrInvalidPrivelege)
			return
		}

		h.ServeHTTP(w, r)
	})
}
