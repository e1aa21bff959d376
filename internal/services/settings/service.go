package settings

import (
	"context"

	"github.com/Snoopy-too/fidels-pizza/internal/logger"
	"github.com/Snoopy-too/fidels-pizza/internal/models"
)

// Service manages the site-wide configuration records
type Service struct {
	repo   *Repository
	logger *logger.Logger
}

// NewService creates a new settings service
func NewService(repo *Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// SiteContent returns the public site configuration. The access code is
// deliberately excluded.
func (s *Service) SiteContent(ctx context.Context) (*models.SiteContent, error) {
	var content models.SiteContent
	if err := s.repo.Get(ctx, KeyEventInfo, &content.EventInfo); err != nil {
		return nil, err
	}
	if err := s.repo.Get(ctx, KeyLandingContent, &content.LandingContent); err != nil {
		return nil, err
	}
	return &content, nil
}

// AccessCode returns the current registration gate code
func (s *Service) AccessCode(ctx context.Context) (string, error) {
	var code models.AccessCode
	if err := s.repo.Get(ctx, KeyAccessCode, &code); err != nil {
		return "", err
	}
	return code.Code, nil
}

// UpdateEventInfo replaces the event record wholesale
func (s *Service) UpdateEventInfo(ctx context.Context, info *models.EventInfo) error {
	if err := info.Validate(); err != nil {
		return err
	}
	return s.repo.Set(ctx, KeyEventInfo, info)
}

// UpdateLandingContent replaces the landing page copy
func (s *Service) UpdateLandingContent(ctx context.Context, content *models.LandingContent) error {
	if err := content.Validate(); err != nil {
		return err
	}
	return s.repo.Set(ctx, KeyLandingContent, content)
}

// UpdateAccessCode rotates the registration gate code
func (s *Service) UpdateAccessCode(ctx context.Context, code *models.AccessCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	if err := s.repo.Set(ctx, KeyAccessCode, code); err != nil {
		return err
	}
	s.logger.Info("access_code_rotated", "Registration access code changed", "", nil)
	return nil
}
