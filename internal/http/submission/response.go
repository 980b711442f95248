package submission

import (
	"time"

	"github.com/google/uuid"

	"github.com/RyanHagen77/dwella-app-sub003/internal/record"
	"github.com/RyanHagen77/dwella-app-sub003/internal/submission"
)

type serviceRecordResponse struct {
	ID           uuid.UUID         `json:"id"`
	HomeID       uuid.UUID         `json:"home_id"`
	ContractorID uuid.UUID         `json:"contractor_id"`
	ServiceType  string            `json:"service_type"`
	Description  string            `json:"description,omitempty"`
	ServiceDate  time.Time         `json:"service_date"`
	Cost         int64             `json:"cost"`
	Status       submission.Status `json:"status"`
	IsVerified   bool              `json:"is_verified"`
	ApprovedBy   *uuid.UUID        `json:"approved_by,omitempty"`
	ApprovedAt   *time.Time        `json:"approved_at,omitempty"`

	RejectionReason string     `json:"rejection_reason,omitempty"`
	FinalRecordID   *uuid.UUID `json:"final_record_id,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toResponse(sr *submission.ServiceRecord) serviceRecordResponse {
	return serviceRecordResponse{
		ID:              sr.ID,
		HomeID:          sr.HomeID,
		ContractorID:    sr.ContractorID,
		ServiceType:     sr.ServiceType,
		Description:     sr.Description,
		ServiceDate:     sr.ServiceDate,
		Cost:            sr.Cost,
		Status:          sr.Status,
		IsVerified:      sr.IsVerified,
		ApprovedBy:      sr.ApprovedBy,
		ApprovedAt:      sr.ApprovedAt,
		RejectionReason: sr.RejectionReason,
		FinalRecordID:   sr.FinalRecordID,
		CreatedAt:       sr.CreatedAt,
		UpdatedAt:       sr.UpdatedAt,
	}
}

func toResponseList(srs []*submission.ServiceRecord) []serviceRecordResponse {
	resp := make([]serviceRecordResponse, len(srs))
	for i, sr := range srs {
		resp[i] = toResponse(sr)
	}

	return resp
}

type finalRecordResponse struct {
	ID         uuid.UUID   `json:"id"`
	HomeID     uuid.UUID   `json:"home_id"`
	Title      string      `json:"title"`
	Note       string      `json:"note,omitempty"`
	Date       time.Time   `json:"date"`
	Kind       record.Kind `json:"kind"`
	VendorName string      `json:"vendor_name,omitempty"`
	Cost       int64       `json:"cost"`
	VerifiedBy *uuid.UUID  `json:"verified_by,omitempty"`
	VerifiedAt *time.Time  `json:"verified_at,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

func toFinalRecordResponse(rec *record.Record) finalRecordResponse {
	return finalRecordResponse{
		ID:         rec.ID,
		HomeID:     rec.HomeID,
		Title:      rec.Title,
		Note:       rec.Note,
		Date:       rec.Date,
		Kind:       rec.Kind,
		VendorName: rec.VendorName,
		Cost:       rec.Cost,
		VerifiedBy: rec.VerifiedBy,
		VerifiedAt: rec.VerifiedAt,
		CreatedAt:  rec.CreatedAt,
	}
}

type connectionResponse struct {
	ID                   uuid.UUID                   `json:"id"`
	HomeownerID          uuid.UUID                   `json:"homeowner_id"`
	ContractorID         uuid.UUID                   `json:"contractor_id"`
	HomeID               uuid.UUID                   `json:"home_id"`
	Status               submission.ConnectionStatus `json:"status"`
	EstablishedVia       string                      `json:"established_via"`
	SourceRecordID       *uuid.UUID                  `json:"source_record_id,omitempty"`
	VerifiedServiceCount int                         `json:"verified_service_count"`
	TotalSpent           int64                       `json:"total_spent"`
	CreatedAt            time.Time                   `json:"created_at"`
	UpdatedAt            *time.Time                  `json:"updated_at,omitempty"`
}

func toConnectionResponseList(conns []*submission.Connection) []connectionResponse {
	resp := make([]connectionResponse, len(conns))
	for i, c := range conns {
		resp[i] = connectionResponse{
			ID:                   c.ID,
			HomeownerID:          c.HomeownerID,
			ContractorID:         c.ContractorID,
			HomeID:               c.HomeID,
			Status:               c.Status,
			EstablishedVia:       c.EstablishedVia,
			SourceRecordID:       c.SourceRecordID,
			VerifiedServiceCount: c.VerifiedServiceCount,
			TotalSpent:           c.TotalSpent,
			CreatedAt:            c.CreatedAt,
			UpdatedAt:            c.UpdatedAt,
		}
	}

	return resp
}
