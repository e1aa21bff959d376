package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Snoopy-too/fidels-pizza/internal/database"
)

// Setting keys in the site_settings table.
const (
	KeyEventInfo      = "event_info"
	KeyLandingContent = "landing_content"
	KeyAccessCode     = "access_code"
)

// Repository stores site settings as JSONB values keyed by name
type Repository struct {
	db *database.DB
}

// NewRepository creates a new settings repository
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// ErrSettingNotFound is returned when a key has never been written. The seed
// migration writes every key, so this signals a broken deployment.
var ErrSettingNotFound = errors.New("setting not found")

// Get unmarshals the value for a key into v
func (r *Repository) Get(ctx context.Context, key string, v interface{}) error {
	var raw []byte
	err := r.db.QueryRow(ctx, database.GetSettingSQL, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSettingNotFound
		}
		return fmt.Errorf("get setting %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode setting %s: %w", key, err)
	}
	return nil
}

// Set marshals v and upserts it under the key
func (r *Repository) Set(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode setting %s: %w", key, err)
	}
	return r.db.Exec(ctx, database.UpsertSettingSQL, key, raw)
}
