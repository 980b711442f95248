package record

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("record not found")

// Kind classifies how a record entered the home's history.
type Kind string

const (
	KindService     Kind = "service"
	KindMaintenance Kind = "maintenance"
	KindImprovement Kind = "improvement"
)

// Record is a permanent, durable home-history entry. Records are created
// directly by homeowners or exactly once per approved service submission.
type Record struct {
	ID         uuid.UUID
	HomeID     uuid.UUID
	Title      string
	Note       string
	Date       time.Time
	Kind       Kind
	VendorName string
	Cost       int64 // cents
	CreatedBy  uuid.UUID
	VerifiedBy *uuid.UUID
	VerifiedAt *time.Time
	CreatedAt  time.Time
}

// ParentType names the single entity kind an attachment hangs off.
type ParentType string

const (
	ParentRecord        ParentType = "record"
	ParentReminder      ParentType = "reminder"
	ParentWarranty      ParentType = "warranty"
	ParentServiceRecord ParentType = "service_record"
	ParentMessage       ParentType = "message"
)

// ParentRef identifies an attachment's one owner. Ownership is a tagged pair,
// not a row of nullable foreign keys, so "exactly one owner" holds by
// construction; re-parenting is a single update over the pair.
type ParentRef struct {
	Type ParentType
	ID   uuid.UUID
}

// Attachment is a file reference owned by exactly one parent entity.
type Attachment struct {
	ID          uuid.UUID
	Parent      ParentRef
	FileName    string
	URL         string
	ContentType string
	CreatedAt   time.Time
}
