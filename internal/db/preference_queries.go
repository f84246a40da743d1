package db

import (
	"context"
	"fmt"

	"github.com/mnadalc/yt-translate-transcription/internal/globaltime"
)

// GetPreference reads one preference value. Missing keys return ErrNoRows.
func (p *Pool) GetPreference(ctx context.Context, key string) (string, error) {
	if p == nil {
		return "", fmt.Errorf("database pool is not initialized")
	}

	var value string
	err := p.QueryRow(ctx, `
		SELECT value
		FROM preferences
		WHERE key = $1
	`, key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

// UpsertPreference writes one preference value, replacing any existing value
// for the key.
func (p *Pool) UpsertPreference(ctx context.Context, key, value string) error {
	if p == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	tag, err := p.Exec(ctx, `
		INSERT INTO preferences (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, key, value, globaltime.UTC())
	if err != nil {
		return fmt.Errorf("upsert preference %q: %w", key, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("upsert preference %q: no row written", key)
	}
	return nil
}
