package submission

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/RyanHagen77/dwella-app-sub003/internal/home"
	"github.com/RyanHagen77/dwella-app-sub003/internal/notify"
	"github.com/RyanHagen77/dwella-app-sub003/internal/record"
	"github.com/RyanHagen77/dwella-app-sub003/internal/user"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=submission
type Repository interface {
	CreateSubmission(ctx context.Context, sr *ServiceRecord, attachments []*record.Attachment) error
	GetSubmission(ctx context.Context, id uuid.UUID) (*ServiceRecord, error)
	ListByHome(ctx context.Context, homeID uuid.UUID, status *Status) ([]*ServiceRecord, error)
	ListByContractor(ctx context.Context, contractorID uuid.UUID) ([]*ServiceRecord, error)
	Reject(ctx context.Context, id, approverID uuid.UUID, reason string, at time.Time) error
	ListConnections(ctx context.Context, homeID uuid.UUID) ([]*Connection, error)

	BeginApproval(ctx context.Context) (ApprovalTx, error)
}

// ApprovalTx is the unit of work for one approval. Every step commits
// together or not at all; partial approvals cannot exist.
type ApprovalTx interface {
	MarkApproved(ctx context.Context, id, approverID uuid.UUID, at time.Time) error
	CreateRecord(ctx context.Context, rec *record.Record) error
	// ReparentAttachments moves every attachment owned by from to to and
	// returns how many moved. Attachment identity is preserved.
	ReparentAttachments(ctx context.Context, from, to record.ParentRef) (int64, error)
	SetFinalRecord(ctx context.Context, submissionID, recordID uuid.UUID) error
	// UpsertConnection creates the ACTIVE connection or, when one already
	// exists for the (home, contractor) pair, increments its counters.
	UpsertConnection(ctx context.Context, conn *Connection) error
	Commit() error
	Rollback() error
}

// Homes is the access-control collaborator: owner or granted access.
type Homes interface {
	Authorize(ctx context.Context, homeID, userID uuid.UUID) (*home.Home, error)
}

// Directory resolves user accounts, used for contractor vendor names.
type Directory interface {
	Get(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// Notifier dispatch is fire-and-forget; failures never roll back an approval
// or rejection.
type Notifier interface {
	Notify(ctx context.Context, n notify.Notification) error
}

type Service struct {
	repo     Repository
	homes    Homes
	users    Directory
	notifier Notifier
}

func NewService(repo Repository, homes Homes, users Directory, notifier Notifier) *Service {
	return &Service{repo: repo, homes: homes, users: users, notifier: notifier}
}

type SubmitParams struct {
	ServiceType string
	Description string
	ServiceDate time.Time
	Cost        int64
}

type AttachmentParams struct {
	FileName    string
	URL         string
	ContentType string
}

// Submit files a contractor's claim of work performed against a home. The
// claim waits in PENDING_REVIEW until the homeowner approves or rejects it.
func (s *Service) Submit(ctx context.Context, homeID, contractorID uuid.UUID, params SubmitParams, attachments []AttachmentParams) (*ServiceRecord, error) {
	sr := &ServiceRecord{
		HomeID:       homeID,
		ContractorID: contractorID,
		ServiceType:  params.ServiceType,
		Description:  params.Description,
		ServiceDate:  params.ServiceDate,
		Cost:         params.Cost,
		Status:       StatusPendingReview,
	}

	atts := make([]*record.Attachment, len(attachments))
	for i, a := range attachments {
		atts[i] = &record.Attachment{
			FileName:    a.FileName,
			URL:         a.URL,
			ContentType: a.ContentType,
		}
	}

	if err := s.repo.CreateSubmission(ctx, sr, atts); err != nil {
		return nil, err
	}

	return sr, nil
}

// Approve promotes a pending submission into a permanent record: the
// submission is stamped APPROVED, a Record is created from it, its
// attachments move to the new Record, and the homeowner-contractor
// connection is created or incremented. All of it commits atomically, then
// the contractor is notified.
func (s *Service) Approve(ctx context.Context, homeID, submissionID, approverID uuid.UUID) (*ServiceRecord, *record.Record, error) {
	h, err := s.homes.Authorize(ctx, homeID, approverID)
	if err != nil {
		return nil, nil, err
	}

	sr, err := s.repo.GetSubmission(ctx, submissionID)
	if err != nil {
		return nil, nil, err
	}

	if sr.HomeID != homeID {
		return nil, nil, ErrWrongHome
	}

	if sr.Status != StatusPendingReview {
		return nil, nil, ErrAlreadyResolved
	}

	contractor, err := s.users.Get(ctx, sr.ContractorID)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving contractor: %w", err)
	}

	atx, err := s.repo.BeginApproval(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin approval: %w", err)
	}
	defer atx.Rollback()

	now := time.Now().UTC()

	if err := atx.MarkApproved(ctx, sr.ID, approverID, now); err != nil {
		return nil, nil, fmt.Errorf("marking approved: %w", err)
	}

	rec := &record.Record{
		HomeID:     homeID,
		Title:      sr.ServiceType,
		Note:       sr.Description,
		Date:       sr.ServiceDate,
		Kind:       record.KindService,
		VendorName: contractor.DisplayVendorName(),
		Cost:       sr.Cost,
		CreatedBy:  approverID,
		VerifiedBy: &approverID,
		VerifiedAt: &now,
	}
	if err := atx.CreateRecord(ctx, rec); err != nil {
		return nil, nil, fmt.Errorf("creating record: %w", err)
	}

	from := record.ParentRef{Type: record.ParentServiceRecord, ID: sr.ID}

	to := record.ParentRef{Type: record.ParentRecord, ID: rec.ID}
	if _, err := atx.ReparentAttachments(ctx, from, to); err != nil {
		return nil, nil, fmt.Errorf("moving attachments: %w", err)
	}

	if err := atx.SetFinalRecord(ctx, sr.ID, rec.ID); err != nil {
		return nil, nil, fmt.Errorf("linking final record: %w", err)
	}

	conn := &Connection{
		HomeownerID:          h.OwnerID,
		ContractorID:         sr.ContractorID,
		HomeID:               homeID,
		Status:               ConnectionActive,
		EstablishedVia:       EstablishedViaApproval,
		SourceRecordID:       &rec.ID,
		VerifiedServiceCount: 1,
		TotalSpent:           sr.Cost,
	}
	if err := atx.UpsertConnection(ctx, conn); err != nil {
		return nil, nil, fmt.Errorf("upserting connection: %w", err)
	}

	if err := atx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit approval: %w", err)
	}

	sr.Status = StatusApproved
	sr.IsVerified = true
	sr.ClaimedBy = &approverID
	sr.ClaimedAt = &now
	sr.VerifiedBy = &approverID
	sr.VerifiedAt = &now
	sr.ApprovedBy = &approverID
	sr.ApprovedAt = &now
	sr.FinalRecordID = &rec.ID

	if err := s.notifier.Notify(ctx, notify.Notification{
		UserID:  sr.ContractorID,
		Channel: "email",
		Subject: "Your service documentation was approved",
		Payload: map[string]any{"service_record_id": sr.ID.String(), "record_id": rec.ID.String()},
	}); err != nil {
		slog.Error("failed to send approval notification", "service_record_id", sr.ID, "error", err)
	}

	return sr, rec, nil
}

// Reject closes a pending submission with a reason. Nothing else changes: no
// record, no attachment moves, no connection.
func (s *Service) Reject(ctx context.Context, homeID, submissionID, approverID uuid.UUID, reason string) (*ServiceRecord, error) {
	if _, err := s.homes.Authorize(ctx, homeID, approverID); err != nil {
		return nil, err
	}

	sr, err := s.repo.GetSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	if sr.HomeID != homeID {
		return nil, ErrWrongHome
	}

	if sr.Status != StatusPendingReview {
		return nil, ErrAlreadyResolved
	}

	if reason == "" {
		reason = DefaultRejectionReason
	}

	now := time.Now().UTC()
	if err := s.repo.Reject(ctx, sr.ID, approverID, reason, now); err != nil {
		return nil, fmt.Errorf("rejecting submission: %w", err)
	}

	sr.Status = StatusRejected
	sr.RejectionReason = reason

	if err := s.notifier.Notify(ctx, notify.Notification{
		UserID:  sr.ContractorID,
		Channel: "email",
		Subject: "Your service documentation was rejected",
		Payload: map[string]any{"service_record_id": sr.ID.String(), "reason": reason},
	}); err != nil {
		slog.Error("failed to send rejection notification", "service_record_id", sr.ID, "error", err)
	}

	return sr, nil
}

// Get returns a submission scoped to a home for an authorized caller.
func (s *Service) Get(ctx context.Context, homeID, submissionID, userID uuid.UUID) (*ServiceRecord, error) {
	if _, err := s.homes.Authorize(ctx, homeID, userID); err != nil {
		return nil, err
	}

	sr, err := s.repo.GetSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	if sr.HomeID != homeID {
		return nil, ErrWrongHome
	}

	return sr, nil
}

func (s *Service) ListByHome(ctx context.Context, homeID, userID uuid.UUID, status *Status) ([]*ServiceRecord, error) {
	if _, err := s.homes.Authorize(ctx, homeID, userID); err != nil {
		return nil, err
	}

	return s.repo.ListByHome(ctx, homeID, status)
}

// ListMine lists a contractor's own submissions across homes.
func (s *Service) ListMine(ctx context.Context, contractorID uuid.UUID) ([]*ServiceRecord, error) {
	return s.repo.ListByContractor(ctx, contractorID)
}

func (s *Service) ListConnections(ctx context.Context, homeID, userID uuid.UUID) ([]*Connection, error) {
	if _, err := s.homes.Authorize(ctx, homeID, userID); err != nil {
		return nil, err
	}

	return s.repo.ListConnections(ctx, homeID)
}
