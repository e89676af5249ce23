package domain

import (
	"errors"
	"time"
)

var (
	ErrContactNotFound  = errors.New("contact not found")
	ErrDuplicateContact = errors.New("contact with this email already exists")
	ErrInvalidContact   = errors.New("invalid contact")
)

// Contact is a single entry in one user's address book. Contacts are
// always scoped to their owner; no query ever crosses user boundaries.
type Contact struct {
	ID        string
	UserID    string
	Name      string
	Email     string
	Phone     string
	Message   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
