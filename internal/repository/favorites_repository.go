package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jengzang/restaurant-discovery-go/internal/models"
)

// favoritesEntry is the single named row holding the favorites list
const favoritesEntry = "favorites"

// FavoritesRepository persists the favorites list as one JSON-encoded
// row, read and written wholesale like a browser localStorage entry
type FavoritesRepository struct {
	db *sql.DB
}

// NewFavoritesRepository creates a new favorites repository
func NewFavoritesRepository(db *sql.DB) *FavoritesRepository {
	return &FavoritesRepository{db: db}
}

// Load reads the stored favorites list. A missing entry is an empty
// list, not an error.
func (r *FavoritesRepository) Load() ([]models.PlaceRecord, error) {
	var data string
	err := r.db.QueryRow(
		"SELECT data FROM favorites WHERE name = ?", favoritesEntry,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return []models.PlaceRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	var favorites []models.PlaceRecord
	if err := json.Unmarshal([]byte(data), &favorites); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}
	return favorites, nil
}

// Save replaces the stored favorites list wholesale
func (r *FavoritesRepository) Save(favorites []models.PlaceRecord) error {
	data, err := json.Marshal(favorites)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO favorites (name, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
	`, favoritesEntry, string(data))
	if err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}
	return nil
}
