package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"contactbook/internal/domain"
	"contactbook/internal/repository"
)

// emailShape is the permissive local@domain.tld check the API applies to
// contact emails. Real validation happens when mail bounces.
var emailShape = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type ContactUsecase struct {
	contacts repository.ContactRepository
}

func NewContactUsecase(contacts repository.ContactRepository) *ContactUsecase {
	return &ContactUsecase{contacts: contacts}
}

type CreateContactInput struct {
	UserID  string
	Name    string
	Email   string
	Phone   string
	Message string
}

// CreateContact validates and stores a new address book entry. Name and
// phone are required; email is optional but, when present, must look like
// an address and be unique within the owner's contacts.
func (u *ContactUsecase) CreateContact(ctx context.Context, in CreateContactInput) (*domain.Contact, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	if name == "" || phone == "" {
		return nil, domain.ErrInvalidContact
	}

	email := domain.NormalizeEmail(in.Email)
	if email != "" {
		if !emailShape.MatchString(email) {
			return nil, domain.ErrInvalidContact
		}
		_, err := u.contacts.FindByEmail(ctx, in.UserID, email)
		if err == nil {
			return nil, domain.ErrDuplicateContact
		}
		if !errors.Is(err, domain.ErrContactNotFound) {
			return nil, fmt.Errorf("check existing contact: %w", err)
		}
	}

	contact := &domain.Contact{
		UserID:  in.UserID,
		Name:    name,
		Email:   email,
		Phone:   phone,
		Message: strings.TrimSpace(in.Message),
	}
	if err := u.contacts.Create(ctx, contact); err != nil {
		if errors.Is(err, domain.ErrDuplicateContact) {
			return nil, domain.ErrDuplicateContact
		}
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return contact, nil
}

// ListContacts returns the user's contacts, newest first.
func (u *ContactUsecase) ListContacts(ctx context.Context, userID string) ([]domain.Contact, error) {
	contacts, err := u.contacts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// DeleteContact removes one of the user's contacts. Deleting a contact
// that does not exist, or belongs to someone else, reports not found.
func (u *ContactUsecase) DeleteContact(ctx context.Context, id, userID string) error {
	if err := u.contacts.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			return domain.ErrContactNotFound
		}
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
