package submission

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status is the review lifecycle of a contractor's service claim.
type Status string

const (
	StatusPendingReview        Status = "PENDING_REVIEW"
	StatusDocumentedUnverified Status = "DOCUMENTED_UNVERIFIED"
	StatusDocumented           Status = "DOCUMENTED"
	StatusDisputed             Status = "DISPUTED"
	StatusApproved             Status = "APPROVED"
	StatusRejected             Status = "REJECTED"
)

// DefaultRejectionReason is used when the reviewer gives no reason.
const DefaultRejectionReason = "Rejected by homeowner"

var (
	ErrNotFound        = errors.New("service record not found")
	ErrWrongHome       = errors.New("service record does not belong to this home")
	ErrAlreadyResolved = errors.New("service record has already been reviewed")
)

// ServiceRecord is a contractor-submitted claim of work performed, pending
// homeowner review. FinalRecordID is set if and only if status is APPROVED.
type ServiceRecord struct {
	ID           uuid.UUID
	HomeID       uuid.UUID
	ContractorID uuid.UUID
	ServiceType  string
	Description  string
	ServiceDate  time.Time
	Cost         int64 // cents

	Status     Status
	IsVerified bool
	ClaimedBy  *uuid.UUID
	ClaimedAt  *time.Time
	VerifiedBy *uuid.UUID
	VerifiedAt *time.Time
	ApprovedBy *uuid.UUID
	ApprovedAt *time.Time

	RejectionReason string
	FinalRecordID   *uuid.UUID

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// ConnectionStatus marks whether a homeowner-contractor relationship is live.
type ConnectionStatus string

const (
	ConnectionActive   ConnectionStatus = "ACTIVE"
	ConnectionArchived ConnectionStatus = "ARCHIVED"
)

// EstablishedViaApproval is the establishment method for connections created
// by the approval workflow.
const EstablishedViaApproval = "service_approval"

// Connection is a standing homeowner-contractor relationship for one home.
// At most one ACTIVE connection exists per (home, contractor) pair; repeat
// approvals increment the counters instead of creating a second row.
type Connection struct {
	ID                   uuid.UUID
	HomeownerID          uuid.UUID
	ContractorID         uuid.UUID
	HomeID               uuid.UUID
	Status               ConnectionStatus
	EstablishedVia       string
	SourceRecordID       *uuid.UUID
	VerifiedServiceCount int
	TotalSpent           int64 // cents
	CreatedAt            time.Time
	UpdatedAt            *time.Time
}
