package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"contactbook/internal/domain"
	"contactbook/internal/repository"
	"contactbook/internal/token"
	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase struct {
	users  repository.UserRepository
	jwtKey []byte
}

func NewAuthUsecase(users repository.UserRepository, jwtKey []byte) *AuthUsecase {
	return &AuthUsecase{users: users, jwtKey: jwtKey}
}

// Register creates a user and returns a signed bearer token plus the record.
//
// The duplicate pre-check looks up the email exactly as submitted, while the
// stored record carries the normalized (trimmed, lower-cased) form. A
// case-variant duplicate that slips past the pre-check is still caught by
// the unique index on users.email. Login, by contrast, always normalizes
// before lookup.
func (u *AuthUsecase) Register(ctx context.Context, name, email, password string) (string, *domain.User, error) {
	_, err := u.users.FindByEmail(ctx, email)
	if err == nil {
		return "", nil, domain.ErrDuplicateUser
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, fmt.Errorf("check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(name),
		Email:        domain.NormalizeEmail(email),
		PasswordHash: string(hash),
	}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			return "", nil, domain.ErrDuplicateUser
		}
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	signed, err := token.Sign(u.jwtKey, user.ID)
	if err != nil {
		return "", nil, err
	}
	return signed, user, nil
}

// Login verifies credentials and mints a fresh token. Unknown email and
// wrong password both return domain.ErrInvalidCredentials so a caller can
// not probe which field was wrong.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := u.users.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := token.Sign(u.jwtKey, user.ID)
	if err != nil {
		return "", nil, err
	}
	return signed, user, nil
}

// ResolveIdentity verifies a raw token and loads the user it refers to.
// Returns domain.ErrTokenInvalid for any verification failure and
// domain.ErrUserNotFound when the embedded ID no longer resolves.
func (u *AuthUsecase) ResolveIdentity(ctx context.Context, rawToken string) (*domain.User, error) {
	userID, err := token.Parse(u.jwtKey, rawToken)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
