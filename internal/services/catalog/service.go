package catalog

import (
	"context"

	"github.com/Snoopy-too/fidels-pizza/internal/logger"
	"github.com/Snoopy-too/fidels-pizza/internal/models"
)

// Service manages the event menu
type Service struct {
	repo   *Repository
	logger *logger.Logger
}

// NewService creates a new catalog service
func NewService(repo *Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// List returns the full catalog
func (s *Service) List(ctx context.Context) ([]models.MenuItem, error) {
	return s.repo.List(ctx)
}

// Get returns one menu item
func (s *Service) Get(ctx context.Context, id int64) (*models.MenuItem, error) {
	return s.repo.Get(ctx, id)
}

// Create adds a menu item
func (s *Service) Create(ctx context.Context, req *models.MenuItemRequest) (*models.MenuItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	item := &models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Available:   req.Available,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update replaces a menu item. Existing orders keep their recorded prices.
func (s *Service) Update(ctx context.Context, id int64, req *models.MenuItemRequest) (*models.MenuItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	item := &models.MenuItem{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Available:   req.Available,
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// Delete removes a menu item from the catalog
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
