package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Snoopy-too/fidels-pizza/internal/database"
)

// StoredLine is the persisted shape of one cart line. Only the selection is
// stored; names and prices are hydrated from the catalog on read.
type StoredLine struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}

// Repository stores one cart row per user with the lines as JSONB
type Repository struct {
	db *database.DB
}

// NewRepository creates a new cart repository
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// Get returns the stored lines for a user; a missing row is an empty cart
func (r *Repository) Get(ctx context.Context, userID int64) ([]StoredLine, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, database.GetCartSQL, userID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	var lines []StoredLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return lines, nil
}

// Save upserts the stored lines for a user
func (r *Repository) Save(ctx context.Context, userID int64, lines []StoredLine) error {
	if len(lines) == 0 {
		return r.Delete(ctx, userID)
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	return r.db.Exec(ctx, database.UpsertCartSQL, userID, raw)
}

// Delete removes the cart row for a user
func (r *Repository) Delete(ctx context.Context, userID int64) error {
	return r.db.Exec(ctx, database.DeleteCartSQL, userID)
}
