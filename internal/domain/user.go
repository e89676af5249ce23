package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrTokenInvalid       = errors.New("token is invalid or expired")
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail lower-cases and trims an email address. Login always
// normalizes before lookup; registration stores the normalized form but
// runs its duplicate pre-check on the raw input (see AuthUsecase.Register).
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
