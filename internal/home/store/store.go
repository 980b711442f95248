package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/RyanHagen77/dwella-app-sub003/internal/home"
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

const selectHomeColumns = `
	h.id, h.owner_id, h.address_line1, h.address_line2, h.city, h.state, h.postal_code,
	h.verification_status, h.verification_method, h.verified_at, h.verified_by,
	h.created_at, h.updated_at
`

func scanHome(s scanner) (*home.Home, error) {
	var h home.Home

	var statusStr string

	var line2, method sql.NullString

	if err := s.Scan(
		&h.ID, &h.OwnerID, &h.AddressLine1, &line2, &h.City, &h.State, &h.PostalCode,
		&statusStr, &method, &h.VerifiedAt, &h.VerifiedBy,
		&h.CreatedAt, &h.UpdatedAt,
	); err != nil {
		return nil, err
	}

	h.VerificationStatus = home.VerificationStatus(statusStr)
	h.AddressLine2 = line2.String
	h.VerificationMethod = method.String

	return &h, nil
}

func (s *Store) CreateHome(ctx context.Context, h *home.Home) error {
	query := `
		INSERT INTO homes (owner_id, address_line1, address_line2, city, state, postal_code, verification_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		h.OwnerID,
		h.AddressLine1,
		h.AddressLine2,
		h.City,
		h.State,
		h.PostalCode,
		h.VerificationStatus,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating home: %w", err)
	}

	return nil
}

func (s *Store) GetHome(ctx context.Context, id uuid.UUID) (*home.Home, error) {
	query := `SELECT ` + selectHomeColumns + ` FROM homes h WHERE h.id = $1`

	h, err := scanHome(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, home.ErrNotFound
		}

		return nil, fmt.Errorf("getting home: %w", err)
	}

	return h, nil
}

func (s *Store) ListByUser(ctx context.Context, userID uuid.UUID) ([]*home.Home, error) {
	query := `SELECT ` + selectHomeColumns + `
		FROM homes h
		LEFT JOIN home_access a ON a.home_id = h.id AND a.user_id = $1
		WHERE h.owner_id = $1 OR a.user_id IS NOT NULL
		ORDER BY h.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing homes: %w", err)
	}
	defer rows.Close()

	var homes []*home.Home

	for rows.Next() {
		h, err := scanHome(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning home: %w", err)
		}

		homes = append(homes, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating home rows: %w", err)
	}

	return homes, nil
}

func (s *Store) HasAccess(ctx context.Context, homeID, userID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM home_access WHERE home_id = $1 AND user_id = $2)`

	var ok bool
	if err := s.db.QueryRowContext(ctx, query, homeID, userID).Scan(&ok); err != nil {
		return false, fmt.Errorf("checking home access: %w", err)
	}

	return ok, nil
}

func (s *Store) GrantAccess(ctx context.Context, homeID, userID uuid.UUID) error {
	query := `
		INSERT INTO home_access (home_id, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (home_id, user_id) DO NOTHING
	`

	if _, err := s.db.ExecContext(ctx, query, homeID, userID); err != nil {
		return fmt.Errorf("granting home access: %w", err)
	}

	return nil
}

func (s *Store) RevokeAccess(ctx context.Context, homeID, userID uuid.UUID) error {
	query := `DELETE FROM home_access WHERE home_id = $1 AND user_id = $2`

	if _, err := s.db.ExecContext(ctx, query, homeID, userID); err != nil {
		return fmt.Errorf("revoking home access: %w", err)
	}

	return nil
}
