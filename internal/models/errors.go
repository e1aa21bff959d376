package models

import "errors"

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrMenuItemUnavailable = errors.New("menu item is not available")
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderFinalized      = errors.New("order is already completed or cancelled")
	ErrInvalidOrderStatus  = errors.New("invalid order status")
	ErrInvalidPickupTime   = errors.New("pickup time must be in HH:MM format")
	ErrDuplicateEmail      = errors.New("an account with this email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidAccessCode   = errors.New("invalid access code")
	ErrInvalidResetToken   = errors.New("invalid or expired password reset token")
	ErrWrongPassword       = errors.New("incorrect current password")
	ErrUserNotFound        = errors.New("user not found")
	ErrNotOrderOwner       = errors.New("order belongs to another user")
	ErrConfirmRequired     = errors.New("destructive action requires explicit confirmation")
)
