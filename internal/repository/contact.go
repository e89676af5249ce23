package repository

import (
	"context"

	"contactbook/internal/domain"
)

type ContactRepository interface {
	// Create persists a new contact and fills in ID/CreatedAt/UpdatedAt.
	// Returns domain.ErrDuplicateContact when the owner already has a
	// contact with the same email.
	Create(ctx context.Context, contact *domain.Contact) error
	// ListByUser returns the user's contacts, newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.Contact, error)
	FindByEmail(ctx context.Context, userID, email string) (*domain.Contact, error)
	// Delete removes the contact only if it belongs to userID.
	// Returns domain.ErrContactNotFound otherwise.
	Delete(ctx context.Context, id, userID string) error
}
