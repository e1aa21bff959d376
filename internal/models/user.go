package models

import (
	"fmt"
	"regexp"
	"time"
)

// Role gates access to administrative operations and routes
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered visitor or staff member
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdmin reports whether the user may perform staff operations
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RegisterRequest represents the request to create a new account
type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	AccessCode string `json:"access_code"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest represents a partial profile update; password change
// requires the correct current password
type UpdateProfileRequest struct {
	Name            string `json:"name,omitempty"`
	Email           string `json:"email,omitempty"`
	CurrentPassword string `json:"current_password,omitempty"`
	NewPassword     string `json:"new_password,omitempty"`
}

// ResetRequestRequest asks for a password reset link
type ResetRequestRequest struct {
	Email string `json:"email"`
}

// ResetConfirmRequest consumes a reset token
type ResetConfirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate validates the registration request
func (req *RegisterRequest) Validate() error {
	if err := validateName(req.Name); err != nil {
		return err
	}
	if err := ValidateEmail(req.Email); err != nil {
		return err
	}
	if err := ValidatePassword(req.Password); err != nil {
		return err
	}
	if req.AccessCode == "" {
		return fmt.Errorf("access_code is required")
	}
	return nil
}

// Validate validates the login request
func (req *LoginRequest) Validate() error {
	if req.Email == "" {
		return fmt.Errorf("email is required")
	}
	if req.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// Validate validates the profile update request
func (req *UpdateProfileRequest) Validate() error {
	if req.Name == "" && req.Email == "" && req.NewPassword == "" {
		return fmt.Errorf("at least one of name, email or new_password is required")
	}
	if req.Name != "" {
		if err := validateName(req.Name); err != nil {
			return err
		}
	}
	if req.Email != "" {
		if err := ValidateEmail(req.Email); err != nil {
			return err
		}
	}
	if req.NewPassword != "" {
		if err := ValidatePassword(req.NewPassword); err != nil {
			return err
		}
	}
	return nil
}

// ValidateEmail checks the email shape; uniqueness is checked against the store
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > 255 {
		return fmt.Errorf("email must not exceed 255 characters")
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("email is not valid")
	}
	return nil
}

// ValidatePassword enforces the minimum credential length
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	if len(password) > 72 {
		return fmt.Errorf("password must not exceed 72 characters")
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name must not exceed 100 characters")
	}
	return nil
}
