package cart

import (
	"context"
	"errors"

	"github.com/Snoopy-too/fidels-pizza/internal/logger"
	"github.com/Snoopy-too/fidels-pizza/internal/models"
)

// Catalog is the menu lookup the cart hydrates against
type Catalog interface {
	Get(ctx context.Context, id int64) (*models.MenuItem, error)
}

// Service manages per-user carts
type Service struct {
	repo    *Repository
	catalog Catalog
	logger  *logger.Logger
}

// NewService creates a new cart service
func NewService(repo *Repository, catalog Catalog, log *logger.Logger) *Service {
	return &Service{repo: repo, catalog: catalog, logger: log}
}

// Get returns the hydrated cart for a user. Lines whose menu item has since
// been removed from the catalog are dropped.
func (s *Service) Get(ctx context.Context, userID int64) (*models.Cart, error) {
	stored, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart := &models.Cart{}
	dropped := false
	for _, line := range stored {
		item, err := s.catalog.Get(ctx, line.MenuItemID)
		if err != nil {
			if errors.Is(err, models.ErrMenuItemNotFound) {
				dropped = true
				continue
			}
			return nil, err
		}
		cart.Add(*item, line.Quantity)
	}

	if dropped {
		if err := s.repo.Save(ctx, userID, storedLines(cart)); err != nil {
			return nil, err
		}
	}
	return cart, nil
}

// AddItem adds quantity of a menu item to the cart. Unavailable items are
// rejected; quantities above the per-line cap are clamped.
func (s *Service) AddItem(ctx context.Context, userID, menuItemID int64, quantity int) (*models.Cart, error) {
	item, err := s.catalog.Get(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, models.ErrMenuItemUnavailable
	}

	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	cart.Add(*item, quantity)

	if err := s.repo.Save(ctx, userID, storedLines(cart)); err != nil {
		return nil, err
	}
	return cart, nil
}

// SetQuantity sets the line quantity for a menu item; zero or below removes
// the line.
func (s *Service) SetQuantity(ctx context.Context, userID, menuItemID int64, quantity int) (*models.Cart, error) {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, ok := cart.Line(menuItemID); !ok {
		return nil, models.ErrMenuItemNotFound
	}
	cart.SetQuantity(menuItemID, quantity)

	if err := s.repo.Save(ctx, userID, storedLines(cart)); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem deletes the line for a menu item
func (s *Service) RemoveItem(ctx context.Context, userID, menuItemID int64) (*models.Cart, error) {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	cart.Remove(menuItemID)

	if err := s.repo.Save(ctx, userID, storedLines(cart)); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear empties the cart
func (s *Service) Clear(ctx context.Context, userID int64) error {
	return s.repo.Delete(ctx, userID)
}

func storedLines(cart *models.Cart) []StoredLine {
	lines := make([]StoredLine, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, StoredLine{MenuItemID: line.MenuItemID, Quantity: line.Quantity})
	}
	return lines
}
