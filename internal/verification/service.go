package verification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/RyanHagen77/dwella-app-sub003/internal/home"
	"github.com/RyanHagen77/dwella-app-sub003/internal/notify"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=verification
type Repository interface {
	CreateVerification(ctx context.Context, v *HomeVerification) error
	// LatestByHome returns the most recent verification of the method for the
	// home regardless of status, or nil when none exists.
	LatestByHome(ctx context.Context, homeID uuid.UUID, method Method) (*HomeVerification, error)
	// LatestPending returns the most recent PENDING verification of the
	// method, or nil when none exists.
	LatestPending(ctx context.Context, homeID uuid.UUID, method Method) (*HomeVerification, error)
	MarkExpired(ctx context.Context, id uuid.UUID) error
	MarkCancelled(ctx context.Context, id uuid.UUID) error
	RecordAttempt(ctx context.Context, id uuid.UUID, at time.Time) error
	SetProviderID(ctx context.Context, id uuid.UUID, providerID string) error
	// Complete transitions the verification to COMPLETED and stamps the
	// home's verification fields in one database transaction.
	Complete(ctx context.Context, v *HomeVerification, userID uuid.UUID, at time.Time) error
}

// Homes is the ownership check. Issuance and validation are owner-only;
// vendor events only need the home to exist.
type Homes interface {
	RequireOwner(ctx context.Context, homeID, userID uuid.UUID) (*home.Home, error)
	Lookup(ctx context.Context, homeID uuid.UUID) (*home.Home, error)
}

// PostcardRequest is what the postal-mail provider needs to print and send
// one verification postcard.
type PostcardRequest struct {
	HomeID       uuid.UUID
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	Code         string
}

// Postcards is the postal-mail dispatch collaborator. SendCode returns the
// provider-assigned mailing id.
type Postcards interface {
	SendCode(ctx context.Context, req PostcardRequest) (string, error)
}

// Notifier dispatch is fire-and-forget; the service logs failures and moves on.
type Notifier interface {
	Notify(ctx context.Context, n notify.Notification) error
}

type Config struct {
	CodeLength  int
	MaxAttempts int
	Throttle    time.Duration // minimum gap between postcard requests per home
	TTL         time.Duration // how long a pending code stays redeemable
}

type Service struct {
	repo      Repository
	homes     Homes
	postcards Postcards
	notifier  Notifier
	hasher    *Hasher
	cfg       Config
}

func NewService(repo Repository, homes Homes, postcards Postcards, notifier Notifier, hasher *Hasher, cfg Config) *Service {
	return &Service{
		repo:      repo,
		homes:     homes,
		postcards: postcards,
		notifier:  notifier,
		hasher:    hasher,
		cfg:       cfg,
	}
}

// Issue creates a PENDING postcard verification for the home and hands the
// rendered code to the postal provider. If delivery fails the row is kept but
// transitioned to CANCELLED so no unredeemable PENDING row survives.
func (s *Service) Issue(ctx context.Context, homeID, userID uuid.UUID) (*HomeVerification, error) {
	h, err := s.homes.RequireOwner(ctx, homeID, userID)
	if err != nil {
		return nil, err
	}

	last, err := s.repo.LatestByHome(ctx, homeID, MethodPostcard)
	if err != nil {
		return nil, fmt.Errorf("checking previous verification: %w", err)
	}

	if last != nil && time.Since(last.CreatedAt) < s.cfg.Throttle {
		return nil, ErrRateLimited
	}

	code, err := GenerateCode(s.cfg.CodeLength)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	v := &HomeVerification{
		HomeID:      homeID,
		Method:      MethodPostcard,
		Status:      StatusPending,
		CodeHash:    s.hasher.Hash(code),
		MaxAttempts: s.cfg.MaxAttempts,
		ExpiresAt:   now.Add(s.cfg.TTL),
		RequestedBy: userID,
	}
	if err := s.repo.CreateVerification(ctx, v); err != nil {
		return nil, fmt.Errorf("creating verification: %w", err)
	}

	providerID, err := s.postcards.SendCode(ctx, PostcardRequest{
		HomeID:       homeID,
		AddressLine1: h.AddressLine1,
		AddressLine2: h.AddressLine2,
		City:         h.City,
		State:        h.State,
		PostalCode:   h.PostalCode,
		Code:         code,
	})
	if err != nil {
		if cerr := s.repo.MarkCancelled(ctx, v.ID); cerr != nil {
			slog.Error("failed to cancel verification after delivery failure", "verification_id", v.ID, "error", cerr)
		}

		return nil, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	if err := s.repo.SetProviderID(ctx, v.ID, providerID); err != nil {
		slog.Error("failed to store provider id", "verification_id", v.ID, "error", err)
	}

	v.ProviderID = providerID

	return v, nil
}

// Validate checks a submitted code against the home's most recent PENDING
// postcard verification. Checks run in a fixed order: no-pending, expired,
// attempts exhausted, then the hash compare. A mismatch that brings attempts
// to the limit is only converted to CANCELLED on the next call.
func (s *Service) Validate(ctx context.Context, homeID, userID uuid.UUID, code string) (*home.Home, error) {
	h, err := s.homes.RequireOwner(ctx, homeID, userID)
	if err != nil {
		return nil, err
	}

	v, err := s.repo.LatestPending(ctx, homeID, MethodPostcard)
	if err != nil {
		return nil, fmt.Errorf("finding pending verification: %w", err)
	}

	if v == nil {
		return nil, ErrNoPending
	}

	now := time.Now().UTC()

	if now.After(v.ExpiresAt) {
		if err := s.repo.MarkExpired(ctx, v.ID); err != nil {
			return nil, fmt.Errorf("expiring verification: %w", err)
		}

		return nil, ErrExpired
	}

	if v.Attempts >= v.MaxAttempts {
		if err := s.repo.MarkCancelled(ctx, v.ID); err != nil {
			return nil, fmt.Errorf("cancelling verification: %w", err)
		}

		return nil, ErrTooManyAttempts
	}

	if !s.hasher.Verify(code, v.CodeHash) {
		if err := s.repo.RecordAttempt(ctx, v.ID, now); err != nil {
			return nil, fmt.Errorf("recording attempt: %w", err)
		}

		return nil, ErrIncorrectCode
	}

	if err := s.repo.Complete(ctx, v, userID, now); err != nil {
		return nil, fmt.Errorf("completing verification: %w", err)
	}

	h.VerificationStatus = home.StatusVerifiedByPostcard
	h.VerificationMethod = string(MethodPostcard)
	h.VerifiedAt = &now
	h.VerifiedBy = &userID

	if err := s.notifier.Notify(ctx, notify.Notification{
		UserID:  userID,
		Channel: "email",
		Subject: "Your home address is verified",
		Payload: map[string]any{"home_id": homeID.String()},
	}); err != nil {
		slog.Error("failed to send verification notification", "home_id", homeID, "error", err)
	}

	return h, nil
}

// RecordVendorEvent writes a COMPLETED VENDOR verification and stamps the
// home in the same transaction. No code challenge is involved; the caller is
// the admin surface recording the event.
func (s *Service) RecordVendorEvent(ctx context.Context, homeID, userID, vendorID uuid.UUID) (*HomeVerification, error) {
	if _, err := s.homes.Lookup(ctx, homeID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	v := &HomeVerification{
		HomeID:      homeID,
		Method:      MethodVendor,
		Status:      StatusPending,
		MaxAttempts: 1,
		ExpiresAt:   now,
		RequestedBy: userID,
		VendorID:    &vendorID,
	}
	if err := s.repo.CreateVerification(ctx, v); err != nil {
		return nil, fmt.Errorf("creating vendor verification: %w", err)
	}

	if err := s.repo.Complete(ctx, v, userID, now); err != nil {
		return nil, fmt.Errorf("completing vendor verification: %w", err)
	}

	return v, nil
}
