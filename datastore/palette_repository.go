package datastore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/color-game/palettes/models"
)

// PaletteRepository stores saved palettes. Every read and delete is scoped
// to the owning user.
type PaletteRepository interface {
	Create(ctx context.Context, p models.SavedPalette) (models.SavedPalette, error)
	Get(ctx context.Context, userID, paletteID string) (models.SavedPalette, error)
	ListByUser(ctx context.Context, userID string) ([]models.SavedPalette, error)
	Delete(ctx context.Context, userID, paletteID string) error
}

type PaletteDatabase struct {
	database *sql.DB
}

func NewPaletteDatabase(db *sql.DB) (PaletteDatabase, error) {
	return PaletteDatabase{database: db}, nil
}

// Create inserts a saved palette. Colours are stored as a JSON array.
func (pdb PaletteDatabase) Create(ctx context.Context, p models.SavedPalette) (models.SavedPalette, error) {
	colors, err := json.Marshal(p.Colors)
	if err != nil {
		return models.SavedPalette{}, fmt.Errorf("failed to encode palette colors: %v", err)
	}

	_, err = pdb.database.ExecContext(ctx, `
		INSERT INTO saved_palettes (palette_id, user_id, name, colors, harmony, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID,
		p.UserID,
		p.Name,
		colors,
		p.Harmony,
		p.CreatedAt,
	)
	if err != nil {
		return models.SavedPalette{}, fmt.Errorf("failed to create saved palette: %v", err)
	}

	return p, nil
}

func scanSavedPalette(row rowScanner) (models.SavedPalette, error) {
	var p models.SavedPalette
	var colors []byte
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&colors,
		&p.Harmony,
		&p.CreatedAt,
	)
	if err != nil {
		return models.SavedPalette{}, scanErr(err)
	}
	if err := json.Unmarshal(colors, &p.Colors); err != nil {
		return models.SavedPalette{}, fmt.Errorf("failed to decode colors of palette %s: %v", p.ID, err)
	}
	return p, nil
}

// Get retrieves one of the user's palettes
func (pdb PaletteDatabase) Get(ctx context.Context, userID, paletteID string) (models.SavedPalette, error) {
	row := pdb.database.QueryRowContext(ctx, `
		SELECT palette_id, user_id, name, colors, harmony, created_at
		FROM saved_palettes
		WHERE user_id = $1 AND palette_id = $2`, userID, paletteID)
	return scanSavedPalette(row)
}

// ListByUser returns the user's palettes, newest first
func (pdb PaletteDatabase) ListByUser(ctx context.Context, userID string) ([]models.SavedPalette, error) {
	rows, err := pdb.database.QueryContext(ctx, `
		SELECT palette_id, user_id, name, colors, harmony, created_at
		FROM saved_palettes
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return []models.SavedPalette{}, err
	}
	defer rows.Close()

	palettes := []models.SavedPalette{}
	for rows.Next() {
		p, err := scanSavedPalette(rows)
		if err != nil {
			return []models.SavedPalette{}, err
		}
		palettes = append(palettes, p)
	}

	if err = rows.Err(); err != nil {
		return []models.SavedPalette{}, err
	}

	return palettes, nil
}

// Delete removes one of the user's palettes. Deleting a palette that does not
// exist, or belongs to someone else, returns a NoRowsError.
func (pdb PaletteDatabase) Delete(ctx context.Context, userID, paletteID string) error {
	result, err := pdb.database.ExecContext(ctx,
		`DELETE FROM saved_palettes WHERE user_id = $1 AND palette_id = $2`, userID, paletteID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return NoRowsError{true, sql.ErrNoRows}
	}
	return nil
}
