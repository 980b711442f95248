package verification

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Method is the channel a verification proves ownership through.
type Method string

const (
	MethodPostcard Method = "POSTCARD"
	MethodVendor   Method = "VENDOR"
)

// Status transitions are one-directional: PENDING is the only non-terminal
// state and nothing leaves a terminal state.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusExpired   Status = "EXPIRED"
	StatusCancelled Status = "CANCELLED"
)

var (
	ErrNoPending       = errors.New("no pending verification for home")
	ErrExpired         = errors.New("verification expired, request a new postcard")
	ErrTooManyAttempts = errors.New("too many attempts, request a new postcard")
	ErrIncorrectCode   = errors.New("incorrect verification code")
	ErrRateLimited     = errors.New("a postcard was already requested recently")
	ErrDeliveryFailed  = errors.New("postcard delivery failed")
)

// HomeVerification is one attempt to prove ownership of a home. Rows are
// never deleted; terminal rows are the audit trail.
type HomeVerification struct {
	ID            uuid.UUID
	HomeID        uuid.UUID
	Method        Method
	Status        Status
	CodeHash      string // hex HMAC digest; empty for VENDOR
	Attempts      int
	MaxAttempts   int
	CreatedAt     time.Time
	ExpiresAt     time.Time
	LastAttemptAt *time.Time
	CompletedAt   *time.Time
	RequestedBy   uuid.UUID
	VendorID      *uuid.UUID
	ProviderID    string // postcard provider's mailing id
}
