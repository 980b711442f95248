package home

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=home
type Repository interface {
	CreateHome(ctx context.Context, h *Home) error
	GetHome(ctx context.Context, id uuid.UUID) (*Home, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Home, error)
	HasAccess(ctx context.Context, homeID, userID uuid.UUID) (bool, error)
	GrantAccess(ctx context.Context, homeID, userID uuid.UUID) error
	RevokeAccess(ctx context.Context, homeID, userID uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
}

func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (*Home, error) {
	h := &Home{
		OwnerID:            ownerID,
		AddressLine1:       params.AddressLine1,
		AddressLine2:       params.AddressLine2,
		City:               params.City,
		State:              params.State,
		PostalCode:         params.PostalCode,
		VerificationStatus: StatusUnverified,
	}
	if err := s.repo.CreateHome(ctx, h); err != nil {
		return nil, err
	}

	return h, nil
}

// Get returns the home if the caller may act on it.
func (s *Service) Get(ctx context.Context, homeID, userID uuid.UUID) (*Home, error) {
	return s.Authorize(ctx, homeID, userID)
}

func (s *Service) ListMine(ctx context.Context, userID uuid.UUID) ([]*Home, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Lookup fetches a home with no access check. For trusted internal callers
// such as the admin vendor-verification surface.
func (s *Service) Lookup(ctx context.Context, homeID uuid.UUID) (*Home, error) {
	return s.repo.GetHome(ctx, homeID)
}

// Authorize allows the owner and anyone with a standing grant.
func (s *Service) Authorize(ctx context.Context, homeID, userID uuid.UUID) (*Home, error) {
	h, err := s.repo.GetHome(ctx, homeID)
	if err != nil {
		return nil, err
	}

	if h.OwnerID == userID {
		return h, nil
	}

	ok, err := s.repo.HasAccess(ctx, homeID, userID)
	if err != nil {
		return nil, fmt.Errorf("checking home access: %w", err)
	}

	if !ok {
		return nil, ErrForbidden
	}

	return h, nil
}

// RequireOwner allows only the owner. Non-owners get ErrNotFound rather than
// ErrForbidden so the existence of other people's homes is not revealed.
func (s *Service) RequireOwner(ctx context.Context, homeID, userID uuid.UUID) (*Home, error) {
	h, err := s.repo.GetHome(ctx, homeID)
	if err != nil {
		return nil, err
	}

	if h.OwnerID != userID {
		return nil, ErrNotFound
	}

	return h, nil
}

// Grant gives another user standing access to the home. Owner only.
func (s *Service) Grant(ctx context.Context, homeID, ownerID, granteeID uuid.UUID) error {
	if _, err := s.RequireOwner(ctx, homeID, ownerID); err != nil {
		return err
	}

	return s.repo.GrantAccess(ctx, homeID, granteeID)
}

func (s *Service) Revoke(ctx context.Context, homeID, ownerID, granteeID uuid.UUID) error {
	if _, err := s.RequireOwner(ctx, homeID, ownerID); err != nil {
		return err
	}

	return s.repo.RevokeAccess(ctx, homeID, granteeID)
}
