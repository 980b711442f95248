package record

import (
	"time"

	"github.com/google/uuid"

	"github.com/RyanHagen77/dwella-app-sub003/internal/record"
)

type recordResponse struct {
	ID         uuid.UUID   `json:"id"`
	HomeID     uuid.UUID   `json:"home_id"`
	Title      string      `json:"title"`
	Note       string      `json:"note,omitempty"`
	Date       time.Time   `json:"date"`
	Kind       record.Kind `json:"kind"`
	VendorName string      `json:"vendor_name,omitempty"`
	Cost       int64       `json:"cost"`
	CreatedBy  uuid.UUID   `json:"created_by"`
	VerifiedBy *uuid.UUID  `json:"verified_by,omitempty"`
	VerifiedAt *time.Time  `json:"verified_at,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

func toResponse(rec *record.Record) recordResponse {
	return recordResponse{
		ID:         rec.ID,
		HomeID:     rec.HomeID,
		Title:      rec.Title,
		Note:       rec.Note,
		Date:       rec.Date,
		Kind:       rec.Kind,
		VendorName: rec.VendorName,
		Cost:       rec.Cost,
		CreatedBy:  rec.CreatedBy,
		VerifiedBy: rec.VerifiedBy,
		VerifiedAt: rec.VerifiedAt,
		CreatedAt:  rec.CreatedAt,
	}
}

func toResponseList(recs []*record.Record) []recordResponse {
	resp := make([]recordResponse, len(recs))
	for i, rec := range recs {
		resp[i] = toResponse(rec)
	}

	return resp
}

type attachmentResponse struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"file_name"`
	URL         string    `json:"url"`
	ContentType string    `json:"content_type,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toAttachmentResponseList(atts []*record.Attachment) []attachmentResponse {
	resp := make([]attachmentResponse, len(atts))
	for i, a := range atts {
		resp[i] = attachmentResponse{
			ID:          a.ID,
			FileName:    a.FileName,
			URL:         a.URL,
			ContentType: a.ContentType,
			CreatedAt:   a.CreatedAt,
		}
	}

	return resp
}
