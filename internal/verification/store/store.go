package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/RyanHagen77/dwella-app-sub003/internal/home"
	"github.com/RyanHagen77/dwella-app-sub003/internal/verification"
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

const selectVerificationColumns = `
	v.id, v.home_id, v.method, v.status, v.code_hash, v.attempts, v.max_attempts,
	v.created_at, v.expires_at, v.last_attempt_at, v.completed_at, v.requested_by,
	v.vendor_id, v.provider_id
`

func scanVerification(s scanner) (*verification.HomeVerification, error) {
	var v verification.HomeVerification

	var methodStr, statusStr string

	var codeHash, providerID sql.NullString

	if err := s.Scan(
		&v.ID, &v.HomeID, &methodStr, &statusStr, &codeHash, &v.Attempts, &v.MaxAttempts,
		&v.CreatedAt, &v.ExpiresAt, &v.LastAttemptAt, &v.CompletedAt, &v.RequestedBy,
		&v.VendorID, &providerID,
	); err != nil {
		return nil, err
	}

	v.Method = verification.Method(methodStr)
	v.Status = verification.Status(statusStr)
	v.CodeHash = codeHash.String
	v.ProviderID = providerID.String

	return &v, nil
}

func (s *Store) CreateVerification(ctx context.Context, v *verification.HomeVerification) error {
	query := `
		INSERT INTO home_verifications (home_id, method, status, code_hash, attempts, max_attempts, created_at, expires_at, requested_by, vendor_id)
		VALUES ($1, $2, $3, NULLIF($4, ''), 0, $5, NOW(), $6, $7, $8)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		v.HomeID,
		v.Method,
		v.Status,
		v.CodeHash,
		v.MaxAttempts,
		v.ExpiresAt,
		v.RequestedBy,
		v.VendorID,
	).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating verification: %w", err)
	}

	return nil
}

func (s *Store) LatestByHome(ctx context.Context, homeID uuid.UUID, method verification.Method) (*verification.HomeVerification, error) {
	query := `SELECT ` + selectVerificationColumns + `
		FROM home_verifications v
		WHERE v.home_id = $1 AND v.method = $2
		ORDER BY v.created_at DESC
		LIMIT 1`

	v, err := scanVerification(s.db.QueryRowContext(ctx, query, homeID, method))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("getting latest verification: %w", err)
	}

	return v, nil
}

func (s *Store) LatestPending(ctx context.Context, homeID uuid.UUID, method verification.Method) (*verification.HomeVerification, error) {
	query := `SELECT ` + selectVerificationColumns + `
		FROM home_verifications v
		WHERE v.home_id = $1 AND v.method = $2 AND v.status = $3
		ORDER BY v.created_at DESC
		LIMIT 1`

	v, err := scanVerification(s.db.QueryRowContext(ctx, query, homeID, method, verification.StatusPending))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("getting pending verification: %w", err)
	}

	return v, nil
}

func (s *Store) MarkExpired(ctx context.Context, id uuid.UUID) error {
	return s.setTerminal(ctx, id, verification.StatusExpired)
}

func (s *Store) MarkCancelled(ctx context.Context, id uuid.UUID) error {
	return s.setTerminal(ctx, id, verification.StatusCancelled)
}

// setTerminal only ever moves a PENDING row; terminal states are final.
func (s *Store) setTerminal(ctx context.Context, id uuid.UUID, status verification.Status) error {
	query := `
		UPDATE home_verifications
		SET status = $1
		WHERE id = $2 AND status = $3
	`

	_, err := s.db.ExecContext(ctx, query, status, id, verification.StatusPending)
	if err != nil {
		return fmt.Errorf("updating verification status: %w", err)
	}

	return nil
}

func (s *Store) RecordAttempt(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `
		UPDATE home_verifications
		SET attempts = attempts + 1, last_attempt_at = $1
		WHERE id = $2 AND status = $3
	`

	_, err := s.db.ExecContext(ctx, query, at, id, verification.StatusPending)
	if err != nil {
		return fmt.Errorf("recording attempt: %w", err)
	}

	return nil
}

func (s *Store) SetProviderID(ctx context.Context, id uuid.UUID, providerID string) error {
	query := `UPDATE home_verifications SET provider_id = $1 WHERE id = $2`

	_, err := s.db.ExecContext(ctx, query, providerID, id)
	if err != nil {
		return fmt.Errorf("setting provider id: %w", err)
	}

	return nil
}

// Complete marks the verification COMPLETED and stamps the home's
// verification fields. Both writes happen in one database transaction: the
// two rows encode a single business event and must never diverge.
func (s *Store) Complete(ctx context.Context, v *verification.HomeVerification, userID uuid.UUID, at time.Time) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	verQuery := `
		UPDATE home_verifications
		SET status = $1, completed_at = $2, last_attempt_at = $2
		WHERE id = $3 AND status = $4
	`

	res, err := dbTx.ExecContext(ctx, verQuery, verification.StatusCompleted, at, v.ID, verification.StatusPending)
	if err != nil {
		return fmt.Errorf("completing verification: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return verification.ErrNoPending
	}

	status := home.StatusVerifiedByPostcard
	if v.Method == verification.MethodVendor {
		status = home.StatusVerifiedByVendor
	}

	homeQuery := `
		UPDATE homes
		SET verification_status = $1, verification_method = $2, verified_at = $3, verified_by = $4, updated_at = NOW()
		WHERE id = $5
	`

	if _, err := dbTx.ExecContext(ctx, homeQuery, status, v.Method, at, userID, v.HomeID); err != nil {
		return fmt.Errorf("stamping home verification: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing verification: %w", err)
	}

	v.Status = verification.StatusCompleted
	v.CompletedAt = &at
	v.LastAttemptAt = &at

	return nil
}
