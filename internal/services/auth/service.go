package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Snoopy-too/fidels-pizza/internal/logger"
	"github.com/Snoopy-too/fidels-pizza/internal/models"
	"github.com/Snoopy-too/fidels-pizza/internal/web"
)

const resetTokenTTL = time.Hour

// AccessCodeSource returns the current registration access code.
type AccessCodeSource interface {
	AccessCode(ctx context.Context) (string, error)
}

// NotificationPublisher publishes simulated e-mail payloads.
type NotificationPublisher interface {
	PublishNotification(ctx context.Context, notificationMsg interface{}) error
}

// Service implements account registration, login and password recovery
type Service struct {
	repo       *Repository
	tokens     *TokenManager
	accessCode AccessCodeSource
	publisher  NotificationPublisher
	logger     *logger.Logger
}

// NewService creates a new auth service
func NewService(repo *Repository, tokens *TokenManager, accessCode AccessCodeSource, publisher NotificationPublisher, log *logger.Logger) *Service {
	return &Service{
		repo:       repo,
		tokens:     tokens,
		accessCode: accessCode,
		publisher:  publisher,
		logger:     log,
	}
}

// Register creates an account gated behind the event access code and returns
// the user together with a signed token.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	code, err := s.accessCode.AccessCode(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("load access code: %w", err)
	}
	if req.AccessCode != code {
		return nil, "", models.ErrInvalidAccessCode
	}

	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", models.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		Name:         req.Name,
		Role:         models.RoleUser,
		PasswordHash: string(hash),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user_registered", "New account created", web.RequestIDFromContext(ctx), map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return user, token, nil
}

// Login verifies credentials and returns the user with a signed token
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, "", models.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", models.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetUser returns the account for an id
func (s *Service) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

// UpdateProfile updates name, email and optionally the password. A password
// change requires the correct current password.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, req *models.UpdateProfileRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != "" && req.Email != user.Email {
		exists, err := s.repo.EmailExists(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, models.ErrDuplicateEmail
		}
		user.Email = req.Email
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.NewPassword != "" {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
			return nil, models.ErrWrongPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RequestPasswordReset issues a single-use token valid for one hour and
// publishes the simulated reset e-mail. Unknown emails are silently accepted
// so the endpoint does not leak which accounts exist.
func (s *Service) RequestPasswordReset(ctx context.Context, req *models.ResetRequestRequest) error {
	if err := models.ValidateEmail(req.Email); err != nil {
		return err
	}

	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	token := uuid.NewString()
	if err := s.repo.InsertResetToken(ctx, token, req.Email, time.Now().UTC().Add(resetTokenTTL)); err != nil {
		return err
	}

	msg := models.NewPasswordResetNotification(req.Email, token)
	if err := s.publisher.PublishNotification(ctx, msg); err != nil {
		s.logger.Error("reset_notification_failed", "Failed to publish reset notification", web.RequestIDFromContext(ctx), err, map[string]interface{}{
			"email": req.Email,
		})
	}
	return nil
}

// ResetPassword consumes a reset token and replaces the password. Tokens are
// single-use and expire after one hour.
func (s *Service) ResetPassword(ctx context.Context, req *models.ResetConfirmRequest) error {
	if req.Token == "" {
		return models.ErrInvalidResetToken
	}
	if err := models.ValidatePassword(req.NewPassword); err != nil {
		return err
	}

	email, expiresAt, err := s.repo.GetResetToken(ctx, req.Token)
	if err != nil {
		return err
	}
	if time.Now().UTC().After(expiresAt) {
		_ = s.repo.DeleteResetToken(ctx, req.Token)
		return models.ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.repo.UpdatePasswordByEmail(ctx, email, string(hash)); err != nil {
		return err
	}
	return s.repo.DeleteResetToken(ctx, req.Token)
}

// EnsureAdmin creates the bootstrap staff account on startup if it is missing
func (s *Service) EnsureAdmin(ctx context.Context, email, name, password string) error {
	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	admin := &models.User{
		Email:        email,
		Name:         name,
		Role:         models.RoleAdmin,
		PasswordHash: string(hash),
	}
	if err := s.repo.CreateUser(ctx, admin); err != nil {
		return err
	}
	s.logger.Info("admin_bootstrapped", "Admin account created", "startup", map[string]interface{}{
		"email": email,
	})
	return nil
}
