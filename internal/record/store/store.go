package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/RyanHagen77/dwella-app-sub003/internal/record"
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

const selectRecordColumns = `
	r.id, r.home_id, r.title, r.note, r.date, r.kind, r.vendor_name, r.cost,
	r.created_by, r.verified_by, r.verified_at, r.created_at
`

func scanRecord(s scanner) (*record.Record, error) {
	var rec record.Record

	var kindStr string

	var note, vendor sql.NullString

	if err := s.Scan(
		&rec.ID, &rec.HomeID, &rec.Title, &note, &rec.Date, &kindStr, &vendor, &rec.Cost,
		&rec.CreatedBy, &rec.VerifiedBy, &rec.VerifiedAt, &rec.CreatedAt,
	); err != nil {
		return nil, err
	}

	rec.Kind = record.Kind(kindStr)
	rec.Note = note.String
	rec.VendorName = vendor.String

	return &rec, nil
}

func (s *Store) CreateRecord(ctx context.Context, rec *record.Record, attachments []*record.Attachment) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO records (home_id, title, note, date, kind, vendor_name, cost, created_by, verified_by, verified_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING id, created_at
	`

	err = dbTx.QueryRowContext(ctx, query,
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

	attQuery := `
		INSERT INTO attachments (parent_type, parent_id, file_name, url, content_type, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	for _, a := range attachments {
		a.Parent = record.ParentRef{Type: record.ParentRecord, ID: rec.ID}

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
		return fmt.Errorf("committing record: %w", err)
	}

	return nil
}

func (s *Store) GetRecord(ctx context.Context, id uuid.UUID) (*record.Record, error) {
	query := `SELECT ` + selectRecordColumns + ` FROM records r WHERE r.id = $1`

	rec, err := scanRecord(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, record.ErrNotFound
		}

		return nil, fmt.Errorf("getting record: %w", err)
	}

	return rec, nil
}

func (s *Store) ListByHome(ctx context.Context, homeID uuid.UUID) ([]*record.Record, error) {
	query := `SELECT ` + selectRecordColumns + ` FROM records r WHERE r.home_id = $1 ORDER BY r.date DESC, r.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, homeID)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	var recs []*record.Record

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}

		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating record rows: %w", err)
	}

	return recs, nil
}

func (s *Store) ListAttachments(ctx context.Context, parent record.ParentRef) ([]*record.Attachment, error) {
	query := `
		SELECT id, parent_type, parent_id, file_name, url, content_type, created_at
		FROM attachments
		WHERE parent_type = $1 AND parent_id = $2
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, parent.Type, parent.ID)
	if err != nil {
		return nil, fmt.Errorf("listing attachments: %w", err)
	}
	defer rows.Close()

	var atts []*record.Attachment

	for rows.Next() {
		var a record.Attachment

		var parentType string

		if err := rows.Scan(&a.ID, &parentType, &a.Parent.ID, &a.FileName, &a.URL, &a.ContentType, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning attachment: %w", err)
		}

		a.Parent.Type = record.ParentType(parentType)

		atts = append(atts, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating attachment rows: %w", err)
	}

	return atts, nil
}
