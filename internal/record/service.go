package record

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/RyanHagen77/dwella-app-sub003/internal/home"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=record
type Repository interface {
	CreateRecord(ctx context.Context, rec *Record, attachments []*Attachment) error
	GetRecord(ctx context.Context, id uuid.UUID) (*Record, error)
	ListByHome(ctx context.Context, homeID uuid.UUID) ([]*Record, error)
	ListAttachments(ctx context.Context, parent ParentRef) ([]*Attachment, error)
}

// Homes is the access-control collaborator.
type Homes interface {
	Authorize(ctx context.Context, homeID, userID uuid.UUID) (*home.Home, error)
}

type Service struct {
	repo  Repository
	homes Homes
}

func NewService(repo Repository, homes Homes) *Service {
	return &Service{repo: repo, homes: homes}
}

type CreateParams struct {
	Title      string
	Note       string
	Date       time.Time
	Kind       Kind
	VendorName string
	Cost       int64
}

type AttachmentParams struct {
	FileName    string
	URL         string
	ContentType string
}

// Create adds a homeowner-entered record. Records promoted from approved
// service submissions are created by the submission workflow instead.
func (s *Service) Create(ctx context.Context, homeID, userID uuid.UUID, params CreateParams, attachments []AttachmentParams) (*Record, error) {
	if _, err := s.homes.Authorize(ctx, homeID, userID); err != nil {
		return nil, err
	}

	kind := params.Kind
	if kind == "" {
		kind = KindService
	}

	rec := &Record{
		HomeID:     homeID,
		Title:      params.Title,
		Note:       params.Note,
		Date:       params.Date,
		Kind:       kind,
		VendorName: params.VendorName,
		Cost:       params.Cost,
		CreatedBy:  userID,
	}

	atts := make([]*Attachment, len(attachments))
	for i, a := range attachments {
		atts[i] = &Attachment{
			FileName:    a.FileName,
			URL:         a.URL,
			ContentType: a.ContentType,
		}
	}

	if err := s.repo.CreateRecord(ctx, rec, atts); err != nil {
		return nil, err
	}

	return rec, nil
}

func (s *Service) Get(ctx context.Context, homeID, recordID, userID uuid.UUID) (*Record, error) {
	if _, err := s.homes.Authorize(ctx, homeID, userID); err != nil {
		return nil, err
	}

	rec, err := s.repo.GetRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}

	if rec.HomeID != homeID {
		return nil, ErrNotFound
	}

	return rec, nil
}

func (s *Service) ListByHome(ctx context.Context, homeID, userID uuid.UUID) ([]*Record, error) {
	if _, err := s.homes.Authorize(ctx, homeID, userID); err != nil {
		return nil, err
	}

	return s.repo.ListByHome(ctx, homeID)
}

func (s *Service) ListAttachments(ctx context.Context, homeID, recordID, userID uuid.UUID) ([]*Attachment, error) {
	if _, err := s.Get(ctx, homeID, recordID, userID); err != nil {
		return nil, err
	}

	return s.repo.ListAttachments(ctx, ParentRef{Type: ParentRecord, ID: recordID})
}
