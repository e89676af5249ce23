package postgres

import (
	"context"
	"errors"
	"fmt"

	"contactbook/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contacts (user_id, name, email, phone, message)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		 RETURNING id, created_at, updated_at`,
		contact.UserID, contact.Name, contact.Email, contact.Phone, contact.Message,
	).Scan(&contact.ID, &contact.CreatedAt, &contact.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicateContact
		}
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

func (r *ContactRepository) ListByUser(ctx context.Context, userID string) ([]domain.Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name, COALESCE(email, ''), phone, COALESCE(message, ''),
		        created_at, updated_at
		 FROM contacts
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Message,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return contacts, nil
}

func (r *ContactRepository) FindByEmail(ctx context.Context, userID, email string) (*domain.Contact, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, user_id, name, COALESCE(email, ''), phone, COALESCE(message, ''),
		        created_at, updated_at
		 FROM contacts
		 WHERE user_id = $1 AND email = $2`,
		userID, email,
	)
	var c domain.Contact
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Message,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("scan contact: %w", err)
	}
	return &c, nil
}

func (r *ContactRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM contacts WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}
