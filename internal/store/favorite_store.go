package store

import (
	"context"
	"database/sql"
	"fmt"
)

// FavoriteStore is a flat key-value mirror for favorites lists: one row per
// entity kind, each holding the full JSON-encoded list. Saves are
// unconditional overwrites; there is no merge or partial update.
type FavoriteStore struct {
	db *sql.DB
}

func NewFavoriteStore(db *sql.DB) *FavoriteStore {
	return &FavoriteStore{db: db}
}

// Load returns the stored payload for the given kind, or nil if nothing has
// been saved under that kind yet.
func (s *FavoriteStore) Load(ctx context.Context, kind string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT payload FROM favorite_lists WHERE kind = ?
	`, kind).Scan(&payload)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites for %s: %w", kind, err)
	}

	return payload, nil
}

// Save overwrites the stored payload for the given kind.
func (s *FavoriteStore) Save(ctx context.Context, kind string, payload []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO favorite_lists (kind, payload, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(kind) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, kind, payload)
	if err != nil {
		return fmt.Errorf("failed to save favorites for %s: %w", kind, err)
	}

	return nil
}
