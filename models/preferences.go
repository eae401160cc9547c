package models

import (
	"fmt"
	"time"

	"github.com/color-game/palettes/palette"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Preferences holds a user's display settings: the UI theme and the format
// shown on each swatch.
type Preferences struct {
	UserID    string                       `json:"userId" db:"user_id"`
	Theme     string                       `json:"theme" db:"theme"`
	Formats   [palette.Size]palette.Format `json:"formats" db:"formats"`
	UpdatedAt time.Time                    `json:"updatedAt" db:"updated_at"`
}

// DefaultPreferences is what a user sees before saving any settings.
func DefaultPreferences(userID string) Preferences {
	prefs := Preferences{UserID: userID, Theme: ThemeLight}
	for i := range prefs.Formats {
		prefs.Formats[i] = palette.FormatHex
	}
	return prefs
}

type PreferencesUpdateRequest struct {
	Theme   string   `json:"theme"`
	Formats []string `json:"formats"`
}

// Apply validates req and merges it into prefs. Empty fields keep their
// current value.
func (req PreferencesUpdateRequest) Apply(prefs Preferences) (Preferences, error) {
	switch req.Theme {
	case "":
	case ThemeLight, ThemeDark:
		prefs.Theme = req.Theme
	default:
		return prefs, fmt.Errorf("theme must be %q or %q", ThemeLight, ThemeDark)
	}

	if len(req.Formats) == 0 {
		return prefs, nil
	}
	if len(req.Formats) != palette.Size {
		return prefs, fmt.Errorf("formats needs exactly %d entries, got %d", palette.Size, len(req.Formats))
	}
	for i, tag := range req.Formats {
		f, err := palette.ParseFormat(tag)
		if err != nil {
			return prefs, err
		}
		prefs.Formats[i] = f
	}
	return prefs, nil
}
