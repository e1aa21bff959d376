package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Snoopy-too/fidels-pizza/internal/database"
	"github.com/Snoopy-too/fidels-pizza/internal/models"
)

// Repository provides access to users and password reset tokens
type Repository struct {
	db *database.DB
}

// NewRepository creates a new auth repository
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser inserts a user and fills in its id and creation time
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	err := r.db.QueryRow(ctx, database.InsertUserSQL,
		user.Email, user.Name, user.PasswordHash, user.Role,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetUserByEmail looks up a user by email
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.scanUser(r.db.QueryRow(ctx, database.GetUserByEmailSQL, email))
}

// GetUserByID looks up a user by id
func (r *Repository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return r.scanUser(r.db.QueryRow(ctx, database.GetUserByIDSQL, id))
}

func (r *Repository) scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &user, nil
}

// EmailExists reports whether an account already uses the email
func (r *Repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, database.UserEmailExistsSQL, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return exists, nil
}

// UpdateProfile persists a profile change
func (r *Repository) UpdateProfile(ctx context.Context, user *models.User) error {
	return r.db.Exec(ctx, database.UpdateUserProfileSQL,
		user.Name, user.Email, user.PasswordHash, user.ID)
}

// UpdatePasswordByEmail replaces the credential for the account
func (r *Repository) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	return r.db.Exec(ctx, database.UpdatePasswordByEmailSQL, passwordHash, email)
}

// InsertResetToken stores a single-use reset token
func (r *Repository) InsertResetToken(ctx context.Context, token, email string, expiresAt time.Time) error {
	return r.db.Exec(ctx, database.InsertResetTokenSQL, token, email, expiresAt)
}

// GetResetToken returns the email and expiry for a token
func (r *Repository) GetResetToken(ctx context.Context, token string) (string, time.Time, error) {
	var email string
	var expiresAt time.Time
	err := r.db.QueryRow(ctx, database.GetResetTokenSQL, token).Scan(&email, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, models.ErrInvalidResetToken
		}
		return "", time.Time{}, fmt.Errorf("get reset token: %w", err)
	}
	return email, expiresAt, nil
}

// DeleteResetToken removes a consumed or expired token
func (r *Repository) DeleteResetToken(ctx context.Context, token string) error {
	return r.db.Exec(ctx, database.DeleteResetTokenSQL, token)
}
