package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/RyanHagen77/dwella-app-sub003/internal/user"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectUserColumns = `
	u.id, u.email, u.password_hash, u.name, u.business_name, u.phone, u.role, u.created_at, u.updated_at
`

func scanUser(s scanner) (*user.User, error) {
	var u user.User

	var roleStr string

	var businessName, phone sql.NullString

	if err := s.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &businessName, &phone, &roleStr,
		&u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}

	u.Role = user.Role(roleStr)
	u.BusinessName = businessName.String
	u.Phone = phone.String

	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (email, password_hash, name, business_name, phone, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		u.Email,
		u.PasswordHash,
		u.Name,
		u.BusinessName,
		u.Phone,
		u.Role,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users u WHERE u.id = $1`

	u, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	return u, nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users u WHERE LOWER(u.email) = LOWER($1)`

	u, err := scanUser(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting user by email: %w", err)
	}

	return u, nil
}
