package home

import (
	"time"

	"github.com/google/uuid"

	"github.com/RyanHagen77/dwella-app-sub003/internal/home"
)

type homeResponse struct {
	ID                 uuid.UUID               `json:"id"`
	OwnerID            uuid.UUID               `json:"owner_id"`
	AddressLine1       string                  `json:"address_line1"`
	AddressLine2       string                  `json:"address_line2,omitempty"`
	City               string                  `json:"city"`
	State              string                  `json:"state"`
	PostalCode         string                  `json:"postal_code"`
	VerificationStatus home.VerificationStatus `json:"verification_status"`
	VerificationMethod string                  `json:"verification_method,omitempty"`
	VerifiedAt         *time.Time              `json:"verified_at,omitempty"`
	VerifiedBy         *uuid.UUID              `json:"verified_by,omitempty"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          *time.Time              `json:"updated_at,omitempty"`
}

func toResponse(h *home.Home) homeResponse {
	return homeResponse{
		ID:                 h.ID,
		OwnerID:            h.OwnerID,
		AddressLine1:       h.AddressLine1,
		AddressLine2:       h.AddressLine2,
		City:               h.City,
		State:              h.State,
		PostalCode:         h.PostalCode,
		VerificationStatus: h.VerificationStatus,
		VerificationMethod: h.VerificationMethod,
		VerifiedAt:         h.VerifiedAt,
		VerifiedBy:         h.VerifiedBy,
		CreatedAt:          h.CreatedAt,
		UpdatedAt:          h.UpdatedAt,
	}
}

func toResponseList(homes []*home.Home) []homeResponse {
	resp := make([]homeResponse, len(homes))
	for i, h := range homes {
		resp[i] = toResponse(h)
	}

	return resp
}
