package models

import (
	"fmt"
	"time"
)

// MenuItem represents one entry in the event catalog. Orders keep their own
// copies of name and price, so later edits never rewrite order history.
type MenuItem struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	ImageURL    string    `json:"image_url"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MenuItemRequest represents the staff request to create or replace a menu item
type MenuItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"image_url"`
	Available   bool   `json:"available"`
}

// Validate validates the menu item request. Prices are non-negative integer
// currency units (JPY).
func (req *MenuItemRequest) Validate() error {
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(req.Name) > 100 {
		return fmt.Errorf("name must not exceed 100 characters")
	}
	if req.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	return nil
}
