package datastore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/color-game/palettes/models"
)

type PreferencesRepository interface {
	Get(ctx context.Context, userID string) (models.Preferences, error)
	Upsert(ctx context.Context, prefs models.Preferences) (models.Preferences, error)
}

type PreferencesDatabase struct {
	database *sql.DB
}

func NewPreferencesDatabase(db *sql.DB) (PreferencesDatabase, error) {
	return PreferencesDatabase{database: db}, nil
}

// Get returns the stored preferences, or the defaults when the user has
// never saved any.
func (prdb PreferencesDatabase) Get(ctx context.Context, userID string) (models.Preferences, error) {
	row := prdb.database.QueryRowContext(ctx, `
		SELECT user_id, theme, formats, updated_at
		FROM user_preferences
		WHERE user_id = $1`, userID)

	var prefs models.Preferences
	var formats []byte
	err := row.Scan(&prefs.UserID, &prefs.Theme, &formats, &prefs.UpdatedAt)
	if err != nil {
		if IsNoRows(scanErr(err)) {
			return models.DefaultPreferences(userID), nil
		}
		return models.Preferences{}, err
	}

	if err := json.Unmarshal(formats, &prefs.Formats); err != nil {
		return models.Preferences{}, fmt.Errorf("failed to decode formats for user %s: %v", userID, err)
	}
	return prefs, nil
}

// Upsert stores prefs, replacing any existing row for the user
func (prdb PreferencesDatabase) Upsert(ctx context.Context, prefs models.Preferences) (models.Preferences, error) {
	formats, err := json.Marshal(prefs.Formats)
	if err != nil {
		return models.Preferences{}, fmt.Errorf("failed to encode formats: %v", err)
	}

	_, err = prdb.database.ExecContext(ctx, `
		INSERT INTO user_preferences (user_id, theme, formats, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id)
		DO UPDATE SET
			theme = EXCLUDED.theme,
			formats = EXCLUDED.formats,
			updated_at = EXCLUDED.updated_at`,
		prefs.UserID,
		prefs.Theme,
		formats,
		prefs.UpdatedAt,
	)
	if err != nil {
		return models.Preferences{}, fmt.Errorf("failed to save preferences: %v", err)
	}
	return prefs, nil
}
