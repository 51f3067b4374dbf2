// Package settings persists the user's display preferences.
package settings

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ngmaloney/truewind/internal/database"
	"github.com/ngmaloney/truewind/internal/models"
)

const (
	keyReferenceFrame = "reference_frame"
	keyOrientation    = "orientation"
)

// Preferences are the toggles restored at startup. Readings are never stored.
type Preferences struct {
	ReferenceFrame models.ReferenceFrame
	Orientation    models.OrientationMode
}

// Repository handles persistence for preferences
type Repository struct {
	dbPath string
}

// NewRepository creates a repository backed by the sqlite file at dbPath
func NewRepository(dbPath string) *Repository {
	return &Repository{dbPath: dbPath}
}

// Load returns the stored preferences, falling back to defaults for
// anything missing or unreadable
func (r *Repository) Load(defaults Preferences) (Preferences, error) {
	db, err := database.Open(r.dbPath)
	if err != nil {
		return defaults, err
	}
	defer db.Close()

	prefs := defaults

	frame, err := r.get(db, keyReferenceFrame)
	if err != nil {
		return defaults, err
	}
	if f, err := models.ParseReferenceFrame(frame); err == nil {
		prefs.ReferenceFrame = f
	}

	orientation, err := r.get(db, keyOrientation)
	if err != nil {
		return defaults, err
	}
	if o, err := models.ParseOrientationMode(orientation); err == nil {
		prefs.Orientation = o
	}

	return prefs, nil
}

func (r *Repository) get(db *sql.DB, key string) (string, error) {
	var value string
	err := db.QueryRow("SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading preference %s: %w", key, err)
	}
	return value, nil
}

// Save stores the preferences, replacing earlier values. Either both
// values are written or neither is.
func (r *Repository) Save(prefs Preferences) error {
	db, err := database.Open(r.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	query := `
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	values := []struct{ key, value string }{
		{keyReferenceFrame, string(prefs.ReferenceFrame)},
		{keyOrientation, string(prefs.Orientation)},
	}
	for _, v := range values {
		if _, err := tx.Exec(query, v.key, v.value, now); err != nil {
			return fmt.Errorf("saving preference %s: %w", v.key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing preferences: %w", err)
	}
	return nil
}
