package datastore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/color-game/palettes/models"
)

type DailyPaletteRepository interface {
	Create(ctx context.Context, dailyPalette models.DailyPalette) (models.DailyPalette, error)
	GetByDate(ctx context.Context, date time.Time) (models.DailyPalette, error)
	GetToday(ctx context.Context) (models.DailyPalette, error)
	GetAll(ctx context.Context) ([]models.DailyPalette, error)
	Upsert(ctx context.Context, dailyPalette models.DailyPalette) (models.DailyPalette, error)
}

type DailyPaletteDatabase struct {
	database *sql.DB
}

func NewDailyPaletteDatabase(db *sql.DB) (DailyPaletteDatabase, error) {
	return DailyPaletteDatabase{database: db}, nil
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Create inserts a new daily palette into the database
func (dpdb DailyPaletteDatabase) Create(ctx context.Context, dailyPalette models.DailyPalette) (models.DailyPalette, error) {
	base, err := json.Marshal(dailyPalette.Base)
	if err != nil {
		return models.DailyPalette{}, fmt.Errorf("failed to encode base color: %v", err)
	}
	colors, err := json.Marshal(dailyPalette.Colors)
	if err != nil {
		return models.DailyPalette{}, fmt.Errorf("failed to encode palette colors: %v", err)
	}

	err = dpdb.database.QueryRowContext(ctx, `
		INSERT INTO daily_palette (date, base, colors, harmony, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		StartOfDay(dailyPalette.Date),
		base,
		colors,
		dailyPalette.Harmony,
		dailyPalette.CreatedAt,
	).Scan(&dailyPalette.ID)
	if err != nil {
		return models.DailyPalette{}, fmt.Errorf("failed to create daily palette: %v", err)
	}

	return dailyPalette, nil
}

func scanDailyPalette(row rowScanner) (models.DailyPalette, error) {
	var dp models.DailyPalette
	var base, colors []byte
	err := row.Scan(
		&dp.ID,
		&dp.Date,
		&base,
		&colors,
		&dp.Harmony,
		&dp.CreatedAt,
	)
	if err != nil {
		return models.DailyPalette{}, scanErr(err)
	}
	if err := json.Unmarshal(base, &dp.Base); err != nil {
		return models.DailyPalette{}, fmt.Errorf("failed to decode base color: %v", err)
	}
	if err := json.Unmarshal(colors, &dp.Colors); err != nil {
		return models.DailyPalette{}, fmt.Errorf("failed to decode palette colors: %v", err)
	}
	return dp, nil
}

// GetByDate retrieves a daily palette by date
func (dpdb DailyPaletteDatabase) GetByDate(ctx context.Context, date time.Time) (models.DailyPalette, error) {
	row := dpdb.database.QueryRowContext(ctx, `
		SELECT id, date, base, colors, harmony, created_at
		FROM daily_palette
		WHERE date = $1`, StartOfDay(date))
	return scanDailyPalette(row)
}

// GetToday retrieves today's daily palette
func (dpdb DailyPaletteDatabase) GetToday(ctx context.Context) (models.DailyPalette, error) {
	return dpdb.GetByDate(ctx, time.Now())
}

// GetAll retrieves all daily palettes, newest first
func (dpdb DailyPaletteDatabase) GetAll(ctx context.Context) ([]models.DailyPalette, error) {
	rows, err := dpdb.database.QueryContext(ctx, `
		SELECT id, date, base, colors, harmony, created_at
		FROM daily_palette
		ORDER BY date DESC`)
	if err != nil {
		return []models.DailyPalette{}, err
	}
	defer rows.Close()

	dailyPalettes := []models.DailyPalette{}
	for rows.Next() {
		dp, err := scanDailyPalette(rows)
		if err != nil {
			return []models.DailyPalette{}, err
		}
		dailyPalettes = append(dailyPalettes, dp)
	}

	if err = rows.Err(); err != nil {
		return []models.DailyPalette{}, err
	}

	return dailyPalettes, nil
}

// Upsert stores dailyPalette, replacing any palette already stored for the
// same date in a single statement.
func (dpdb DailyPaletteDatabase) Upsert(ctx context.Context, dailyPalette models.DailyPalette) (models.DailyPalette, error) {
	base, err := json.Marshal(dailyPalette.Base)
	if err != nil {
		return models.DailyPalette{}, fmt.Errorf("failed to encode base color: %v", err)
	}
	colors, err := json.Marshal(dailyPalette.Colors)
	if err != nil {
		return models.DailyPalette{}, fmt.Errorf("failed to encode palette colors: %v", err)
	}

	dailyPalette.Date = StartOfDay(dailyPalette.Date)
	err = dpdb.database.QueryRowContext(ctx, `
		INSERT INTO daily_palette (date, base, colors, harmony, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (date)
		DO UPDATE SET
			base = EXCLUDED.base,
			colors = EXCLUDED.colors,
			harmony = EXCLUDED.harmony,
			created_at = EXCLUDED.created_at
		RETURNING id`,
		dailyPalette.Date,
		base,
		colors,
		dailyPalette.Harmony,
		dailyPalette.CreatedAt,
	).Scan(&dailyPalette.ID)
	if err != nil {
		return models.DailyPalette{}, fmt.Errorf("failed to save daily palette: %v", err)
	}

	return dailyPalette, nil
}
