package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/RyanHagen77/dwella-app-sub003/internal/record"
	"github.com/RyanHagen77/dwella-app-sub003/internal/submission"
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

const selectSubmissionColumns = `
	s.id, s.home_id, s.contractor_id, s.service_type, s.description, s.service_date, s.cost,
	s.status, s.is_verified, s.claimed_by, s.claimed_at, s.verified_by, s.verified_at,
	s.approved_by, s.approved_at, s.rejection_reason, s.final_record_id, s.created_at, s.updated_at
`

func scanSubmission(s scanner) (*submission.ServiceRecord, error) {
	var sr submission.ServiceRecord

	var statusStr string

	var description, reason sql.NullString

	if err := s.Scan(
		&sr.ID, &sr.HomeID, &sr.ContractorID, &sr.ServiceType, &description, &sr.ServiceDate, &sr.Cost,
		&statusStr, &sr.IsVerified, &sr.ClaimedBy, &sr.ClaimedAt, &sr.VerifiedBy, &sr.VerifiedAt,
		&sr.ApprovedBy, &sr.ApprovedAt, &reason, &sr.FinalRecordID, &sr.CreatedAt, &sr.UpdatedAt,
	); err != nil {
		return nil, err
	}

	sr.Status = submission.Status(statusStr)
	sr.Description = description.String
	sr.RejectionReason = reason.String

	return &sr, nil
}

func (s *Store) CreateSubmission(ctx context.Context, sr *submission.ServiceRecord, attachments []*record.Attachment) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO service_records (home_id, contractor_id, service_type, description, service_date, cost, status, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = dbTx.QueryRowContext(ctx, query,
		sr.HomeID,
		sr.ContractorID,
		sr.ServiceType,
		sr.Description,
		sr.ServiceDate,
		sr.Cost,
		sr.Status,
	).Scan(&sr.ID, &sr.CreatedAt, &sr.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating submission: %w", err)
	}

	attQuery := `
		INSERT INTO attachments (parent_type, parent_id, file_name, url, content_type, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	for _, a := range attachments {
		a.Parent = record.ParentRef{Type: record.ParentServiceRecord, ID: sr.ID}

		err := dbTx.QueryRowContext(ctx, attQuery,
			a.Parent.Type,
			a.Parent.ID,
			a.FileName,
			a.URL,
			a.ContentType,
		).Scan(&a.ID, &a.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating attachment: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing submission: %w", err)
	}

	return nil
}

func (s *Store) GetSubmission(ctx context.Context, id uuid.UUID) (*submission.ServiceRecord, error) {
	query := `SELECT ` + selectSubmissionColumns + ` FROM service_records s WHERE s.id = $1`

	sr, err := scanSubmission(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, submission.ErrNotFound
		}

		return nil, fmt.Errorf("getting submission: %w", err)
	}

	return sr, nil
}

func (s *Store) ListByHome(ctx context.Context, homeID uuid.UUID, status *submission.Status) ([]*submission.ServiceRecord, error) {
	query := `SELECT ` + selectSubmissionColumns + ` FROM service_records s WHERE s.home_id = $1`

	args := []any{homeID}

	if status != nil {
		query += ` AND s.status = $2`

		args = append(args, *status)
	}

	query += ` ORDER BY s.created_at DESC`

	return s.list(ctx, query, args...)
}

func (s *Store) ListByContractor(ctx context.Context, contractorID uuid.UUID) ([]*submission.ServiceRecord, error) {
	query := `SELECT ` + selectSubmissionColumns + ` FROM service_records s WHERE s.contractor_id = $1 ORDER BY s.created_at DESC`

	return s.list(ctx, query, contractorID)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]*submission.ServiceRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()

	var srs []*submission.ServiceRecord

	for rows.Next() {
		sr, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}

		srs = append(srs, sr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating submission rows: %w", err)
	}

	return srs, nil
}

func (s *Store) Reject(ctx context.Context, id, approverID uuid.UUID, reason string, at time.Time) error {
	query := `
		UPDATE service_records
		SET status = $1, rejection_reason = $2, approved_by = $3, approved_at = $4, updated_at = NOW()
		WHERE id = $5
	`

	_, err := s.db.ExecContext(ctx, query, submission.StatusRejected, reason, approverID, at, id)
	if err != nil {
		return fmt.Errorf("rejecting submission: %w", err)
	}

	return nil
}

func (s *Store) ListConnections(ctx context.Context, homeID uuid.UUID) ([]*submission.Connection, error) {
	query := `
		SELECT id, homeowner_id, contractor_id, home_id, status, established_via, source_record_id,
		       verified_service_count, total_spent, created_at, updated_at
		FROM connections
		WHERE home_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, homeID)
	if err != nil {
		return nil, fmt.Errorf("listing connections: %w", err)
	}
	defer rows.Close()

	var conns []*submission.Connection

	for rows.Next() {
		conn, err := scanConnection(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning connection: %w", err)
		}

		conns = append(conns, conn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating connection rows: %w", err)
	}

	return conns, nil
}

func scanConnection(s scanner) (*submission.Connection, error) {
	var conn submission.Connection

	var statusStr, via string

	if err := s.Scan(
		&conn.ID, &conn.HomeownerID, &conn.ContractorID, &conn.HomeID, &statusStr, &via,
		&conn.SourceRecordID, &conn.VerifiedServiceCount, &conn.TotalSpent, &conn.CreatedAt, &conn.UpdatedAt,
	); err != nil {
		return nil, err
	}

	conn.Status = submission.ConnectionStatus(statusStr)
	conn.EstablishedVia = via

	return &conn, nil
}

type approvalTx struct {
	tx *sql.Tx
}

func (s *Store) BeginApproval(ctx context.Context) (submission.ApprovalTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning approval tx: %w", err)
	}

	return &approvalTx{tx: dbTx}, nil
}

func (atx *approvalTx) Commit() error   { return atx.tx.Commit() }
func (atx *approvalTx) Rollback() error { return atx.tx.Rollback() }

func (atx *approvalTx) MarkApproved(ctx context.Context, id, approverID uuid.UUID, at time.Time) error {
	query := `
		UPDATE service_records
		SET status = $1, is_verified = TRUE,
		    claimed_by = $2, claimed_at = $3,
		    verified_by = $2, verified_at = $3,
		    approved_by = $2, approved_at = $3,
		    updated_at = NOW()
		WHERE id = $4 AND status = $5
	`

	res, err := atx.tx.ExecContext(ctx, query, submission.StatusApproved, approverID, at, id, submission.StatusPendingReview)
	if err != nil {
		return fmt.Errorf("marking approved: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return submission.ErrAlreadyResolved
	}

	return nil
}

func (atx *approvalTx) CreateRecord(ctx context.Context, rec *record.Record) error {
	query := `
		INSERT INTO records (home_id, title, note, date, kind, vendor_name, cost, created_by, verified_by, verified_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING id, created_at
	`

	err := atx.tx.QueryRowContext(ctx, query,
		rec.HomeID,
		rec.Title,
		rec.Note,
		rec.Date,
		rec.Kind,
		rec.VendorName,
		rec.Cost,
		rec.CreatedBy,
		rec.VerifiedBy,
		rec.VerifiedAt,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating record: %w", err)
	}

	return nil
}

func (atx *approvalTx) ReparentAttachments(ctx context.Context, from, to record.ParentRef) (int64, error) {
	query := `
		UPDATE attachments
		SET parent_type = $1, parent_id = $2
		WHERE parent_type = $3 AND parent_id = $4
	`

	res, err := atx.tx.ExecContext(ctx, query, to.Type, to.ID, from.Type, from.ID)
	if err != nil {
		return 0, fmt.Errorf("reparenting attachments: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting reparented attachments: %w", err)
	}

	return n, nil
}

func (atx *approvalTx) SetFinalRecord(ctx context.Context, submissionID, recordID uuid.UUID) error {
	query := `UPDATE service_records SET final_record_id = $1, updated_at = NOW() WHERE id = $2`

	if _, err := atx.tx.ExecContext(ctx, query, recordID, submissionID); err != nil {
		return fmt.Errorf("setting final record: %w", err)
	}

	return nil
}

func (atx *approvalTx) UpsertConnection(ctx context.Context, conn *submission.Connection) error {
	// Lock the existing ACTIVE row if there is one so two concurrent
	// approvals cannot both take the insert branch.
	selectQuery := `
		SELECT id FROM connections
		WHERE home_id = $1 AND contractor_id = $2 AND status = $3
		FOR UPDATE
	`

	var existingID uuid.UUID

	err := atx.tx.QueryRowContext(ctx, selectQuery, conn.HomeID, conn.ContractorID, submission.ConnectionActive).Scan(&existingID)

	switch {
	case err == sql.ErrNoRows:
		insertQuery := `
			INSERT INTO connections (homeowner_id, contractor_id, home_id, status, established_via, source_record_id, verified_service_count, total_spent, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
			RETURNING id, created_at, updated_at
		`

		err := atx.tx.QueryRowContext(ctx, insertQuery,
			conn.HomeownerID,
			conn.ContractorID,
			conn.HomeID,
			conn.Status,
			conn.EstablishedVia,
			conn.SourceRecordID,
			conn.VerifiedServiceCount,
			conn.TotalSpent,
		).Scan(&conn.ID, &conn.CreatedAt, &conn.UpdatedAt)
		if err != nil {
			return fmt.Errorf("creating connection: %w", err)
		}

		return nil

	case err != nil:
		return fmt.Errorf("finding connection: %w", err)

	default:
		updateQuery := `
			UPDATE connections
			SET verified_service_count = verified_service_count + 1,
			    total_spent = total_spent + $1,
			    updated_at = NOW()
			WHERE id = $2
			RETURNING verified_service_count, total_spent, created_at, updated_at
		`

		err := atx.tx.QueryRowContext(ctx, updateQuery, conn.TotalSpent, existingID).
			Scan(&conn.VerifiedServiceCount, &conn.TotalSpent, &conn.CreatedAt, &conn.UpdatedAt)
		if err != nil {
			return fmt.Errorf("incrementing connection: %w", err)
		}

		conn.ID = existingID

		return nil
	}
}
