package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/color-game/palettes/datastore"
	"github.com/color-game/palettes/models"
)

// GET /
func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		app.notFound(w, r, fmt.Errorf("no route for %s", r.URL.Path))
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Palette API")
}

// POST /v1/auth/signup
func (app *Application) signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	userSignup := models.UserSignupRequest{}
	if err := json.NewDecoder(r.Body).Decode(&userSignup); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if err := userSignup.Validate(); err != nil {
		app.badRequest(w, r, err)
		return
	}

	newUser, newUserErr := models.NewUser(userSignup)
	if newUserErr != nil {
		app.internalServerError(w, r, newUserErr)
		return
	}

	if _, err := app.UserRepo.GetUserByEmail(r.Context(), newUser.Email); err == nil {
		app.userAlreadyExists(w, r, err)
		return
	}

	if _, err := app.UserRepo.GetUserByUsername(r.Context(), newUser.Username); err == nil {
		app.badRequest(w, r, errors.New("username already taken"))
		return
	}

	storedUser, errStoringNewUser := app.UserRepo.Create(r.Context(), newUser)
	if errStoringNewUser != nil {
		app.internalServerError(w, r, errStoringNewUser)
		return
	}

	app.Logger.Info("user signed up", "user_id", storedUser.UserID)
	writeJSON(w, http.StatusOK, storedUser)
}

func (app *Application) setTokenCookie(w http.ResponseWriter, name, value string, expires time.Time) {
	sameSite := http.SameSiteStrictMode
	if app.Config.JwtDomain == "" {
		sameSite = http.SameSiteNoneMode
	}

	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		HttpOnly: true,
		Secure:   true,
		SameSite: sameSite,
		Path:     "/",
		Domain:   app.Config.JwtDomain,
		Expires:  expires,
	}
	if value == "" {
		cookie.MaxAge = -1
	}
	http.SetCookie(w, cookie)
}

// issueToken signs a token for user with the given scope and sets its cookie.
func (app *Application) issueToken(w http.ResponseWriter, user models.User, fingerprint, scope string, expiry time.Time) error {
	claims := models.NewJWTClaims(user, fingerprint, scope, expiry)
	signed, err := claims.Sign(app.Config.JwtSecret)
	if err != nil {
		return err
	}
	app.setTokenCookie(w, claims.TokenType, signed, expiry)
	return nil
}

// POST /v1/auth/login
func (app *Application) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	creds := models.Credentials{}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if creds.DeviceFingerprint == "" {
		app.badJSONRequest(w, r, errors.New("deviceFingerprint is required"))
		return
	}
	creds.Email = strings.ToLower(strings.TrimSpace(creds.Email))

	user, err := app.UserRepo.ValidateAndGetUser(r.Context(), creds)
	if err != nil {
		app.invalidCredentials(w, r, errors.New("invalid email or password"))
		return
	}

	if !user.Approved {
		app.invalidCredentials(w, r, errors.New("user not yet approved"))
		return
	}

	now := time.Now()
	deviceExpiry := now.Add(time.Second * time.Duration(app.Config.JwtRefreshDuration))
	device := models.UserDevice{
		UserID:      user.UserID,
		Fingerprint: creds.DeviceFingerprint,
		DeviceData:  r.Header.Get("User-Agent"),
		Expiry:      deviceExpiry,
	}

	if err := app.UserRepo.CreateDevice(r.Context(), device); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	accessExpiry := now.Add(time.Second * time.Duration(app.Config.JwtAccessDuration))
	if err := app.issueToken(w, user, creds.DeviceFingerprint, models.ScopeAuthentication, accessExpiry); err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if err := app.issueToken(w, user, creds.DeviceFingerprint, models.ScopeRefresh, deviceExpiry); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.Logger.Info("user logged in", "user_id", user.UserID)
	w.WriteHeader(http.StatusOK)
}

// POST /v1/auth/refresh - Reissue the access token from a refresh token
func (app *Application) refresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	claims, err := app.claimsFromCookie(r, models.JWT.REFRESH_COOKIE_NAME, models.ScopeRefresh)
	if err != nil {
		app.invalidAuthorization(w, r, err)
		return
	}

	user, err := app.userForClaims(r.Context(), claims)
	if err != nil {
		app.invalidAuthorization(w, r, err)
		return
	}

	accessExpiry := time.Now().Add(time.Second * time.Duration(app.Config.JwtAccessDuration))
	if err := app.issueToken(w, user, claims.DeviceFingerprint, models.ScopeAuthentication, accessExpiry); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// POST /v1/auth/logout - Forget the current device and clear both cookies
func (app *Application) logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	claims, err := app.claimsFromCookie(r, models.JWT.ACCESS_COOKIE_NAME, models.ScopeAuthentication)
	if err != nil {
		app.invalidAuthorization(w, r, err)
		return
	}

	device, err := app.UserRepo.GetDeviceByFingerprint(r.Context(), claims.UserID, claims.DeviceFingerprint)
	if err == nil {
		if err := app.UserRepo.DeleteDevice(r.Context(), device.ID); err != nil {
			app.internalServerError(w, r, err)
			return
		}
	} else if !datastore.IsNoRows(err) {
		app.internalServerError(w, r, err)
		return
	}

	expired := time.Unix(0, 0)
	app.setTokenCookie(w, models.JWT.ACCESS_COOKIE_NAME, "", expired)
	app.setTokenCookie(w, models.JWT.REFRESH_COOKIE_NAME, "", expired)
	w.WriteHeader(http.StatusOK)
}

// GET, DELETE /v1/users/me - Get or delete the current authenticated user
func (app *Application) currentUser(w http.ResponseWriter, r *http.Request) {
	user := contextGetUser(r)

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, user)
	case http.MethodDelete:
		// Devices, palettes and preferences go with the user row (ON DELETE CASCADE).
		if err := app.UserRepo.DeleteUserByID(r.Context(), user.UserID); err != nil {
			app.internalServerError(w, r, err)
			return
		}
		expired := time.Unix(0, 0)
		app.setTokenCookie(w, models.JWT.ACCESS_COOKIE_NAME, "", expired)
		app.setTokenCookie(w, models.JWT.REFRESH_COOKIE_NAME, "", expired)
		app.Logger.Info("user deleted", "user_id", user.UserID)
		w.WriteHeader(http.StatusNoContent)
	default:
		app.methodNotAllowed(w, r, http.MethodGet, http.MethodDelete)
	}
}

// PUT /v1/users/me/update - Update current authenticated user
func (app *Application) updateCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		app.requirePutMethod(w, r, ErrPUT)
		return
	}

	currentUser := contextGetUser(r)

	updateReq := models.UserUpdateRequest{}
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	// Empty fields keep their current value.
	if updateReq.Username != "" && updateReq.Username != currentUser.Username {
		if strings.ContainsRune(updateReq.Username, ' ') {
			app.badRequest(w, r, errors.New("username cannot contain spaces"))
			return
		}
		if taken, err := app.UserRepo.GetUserByUsername(r.Context(), updateReq.Username); err == nil && taken.UserID != currentUser.UserID {
			app.badRequest(w, r, errors.New("username already taken"))
			return
		} else if err != nil && !datastore.IsNoRows(err) {
			app.internalServerError(w, r, err)
			return
		}
		currentUser.Username = updateReq.Username
	}
	if email := strings.ToLower(strings.TrimSpace(updateReq.Email)); email != "" && email != currentUser.Email {
		if !strings.Contains(email, "@") {
			app.badRequest(w, r, errors.New("a valid email address is required"))
			return
		}
		if taken, err := app.UserRepo.GetUserByEmail(r.Context(), email); err == nil && taken.UserID != currentUser.UserID {
			app.userAlreadyExists(w, r, err)
			return
		} else if err != nil && !datastore.IsNoRows(err) {
			app.internalServerError(w, r, err)
			return
		}
		currentUser.Email = email
	}
	currentUser.UpdatedAt = time.Now()

	updatedUser, updateErr := app.UserRepo.Update(r.Context(), currentUser)
	if updateErr != nil {
		app.internalServerError(w, r, updateErr)
		return
	}

	writeJSON(w, http.StatusOK, updatedUser)
}

// GET /v1/users - Get all users
func (app *Application) getAllUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	users, retrieveErr := app.UserRepo.GetAllUsers(r.Context())
	if retrieveErr != nil {
		app.internalServerError(w, r, retrieveErr)
		return
	}

	writeJSON(w, http.StatusOK, users)
}
