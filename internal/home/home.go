package home

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// VerificationStatus is derived exclusively from a completed verification;
// the verification workflow is the only writer of these fields.
type VerificationStatus string

const (
	StatusUnverified         VerificationStatus = "UNVERIFIED"
	StatusVerifiedByPostcard VerificationStatus = "VERIFIED_BY_POSTCARD"
	StatusVerifiedByVendor   VerificationStatus = "VERIFIED_BY_VENDOR"
)

var (
	ErrNotFound  = errors.New("home not found")
	ErrForbidden = errors.New("no access to home")
)

// Home is a property record owned by a user.
type Home struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string

	VerificationStatus VerificationStatus
	VerificationMethod string // POSTCARD or VENDOR when verified
	VerifiedAt         *time.Time
	VerifiedBy         *uuid.UUID

	CreatedAt time.Time
	UpdatedAt *time.Time
}
