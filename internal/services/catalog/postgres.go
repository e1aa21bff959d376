package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Snoopy-too/fidels-pizza/internal/database"
	"github.com/Snoopy-too/fidels-pizza/internal/models"
)

// Repository provides access to the menu catalog
type Repository struct {
	db *database.DB
}

// NewRepository creates a new catalog repository
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a menu item and fills in its generated fields
func (r *Repository) Create(ctx context.Context, item *models.MenuItem) error {
	err := r.db.QueryRow(ctx, database.InsertMenuItemSQL,
		item.Name, item.Description, item.Price, item.ImageURL, item.Available,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

// List returns the full catalog ordered by id
func (r *Repository) List(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := r.db.Query(ctx, database.ListMenuItemsSQL)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	items := make([]models.MenuItem, 0)
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price,
			&item.ImageURL, &item.Available, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Get returns one menu item by id
func (r *Repository) Get(ctx context.Context, id int64) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.QueryRow(ctx, database.GetMenuItemSQL, id).Scan(
		&item.ID, &item.Name, &item.Description, &item.Price,
		&item.ImageURL, &item.Available, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return &item, nil
}

// Update replaces a menu item
func (r *Repository) Update(ctx context.Context, item *models.MenuItem) error {
	tag, err := r.db.Pool.Exec(ctx, database.UpdateMenuItemSQL,
		item.Name, item.Description, item.Price, item.ImageURL, item.Available, item.ID)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrMenuItemNotFound
	}
	return nil
}

// Delete removes a menu item
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, database.DeleteMenuItemSQL, id)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrMenuItemNotFound
	}
	return nil
}
