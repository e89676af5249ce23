package repository

import (
	"context"

	"contactbook/internal/domain"
)

type UserRepository interface {
	// Create persists a new user and fills in ID/CreatedAt/UpdatedAt.
	// Returns domain.ErrDuplicateUser when the email is already taken.
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
