package verification

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/RyanHagen77/dwella-app-sub003/internal/auth"
	"github.com/RyanHagen77/dwella-app-sub003/internal/home"
	"github.com/RyanHagen77/dwella-app-sub003/internal/http/respond"
	"github.com/RyanHagen77/dwella-app-sub003/internal/user"
	"github.com/RyanHagen77/dwella-app-sub003/internal/verification"
)

type Handler struct {
	svc *verification.Service
}

func NewHandler(svc *verification.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes is mounted under /homes/{homeID}.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/verifications", h.issue)
	r.Post("/verifications/validate", h.validate)

	r.With(auth.RequireRole(user.RoleAdmin)).Post("/verifications/vendor", h.vendor)
}

type issueResponse struct {
	OK             bool      `json:"ok"`
	VerificationID uuid.UUID `json:"verificationId"`
	ProviderID     string    `json:"providerId"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

func (h *Handler) issue(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	homeID, err := uuid.Parse(chi.URLParam(r, "homeID"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid home id")
		return
	}

	v, err := h.svc.Issue(r.Context(), homeID, id.UserID)
	if err != nil {
		switch {
		case errors.Is(err, home.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "home not found")
		case errors.Is(err, verification.ErrRateLimited):
			respond.Error(w, http.StatusTooManyRequests, "a postcard was already requested recently, try again later")
		case errors.Is(err, verification.ErrDeliveryFailed):
			respond.Error(w, http.StatusBadGateway, "postcard delivery failed, request a new postcard later")
		default:
			respond.Error(w, http.StatusInternalServerError, "internal error")
		}

		return
	}

	respond.JSON(w, http.StatusCreated, issueResponse{
		OK:             true,
		VerificationID: v.ID,
		ProviderID:     v.ProviderID,
		ExpiresAt:      v.ExpiresAt,
	})
}

type validateRequest struct {
	Code string `json:"code"`
}

type validateResponse struct {
	OK   bool         `json:"ok"`
	Home homeResponse `json:"home"`
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	homeID, err := uuid.Parse(chi.URLParam(r, "homeID"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid home id")
		return
	}

	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Code == "" {
		respond.Error(w, http.StatusBadRequest, "code is required")
		return
	}

	verified, err := h.svc.Validate(r.Context(), homeID, id.UserID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, home.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "home not found")
		case errors.Is(err, verification.ErrNoPending):
			respond.Error(w, http.StatusBadRequest, "no pending verification for this home")
		case errors.Is(err, verification.ErrExpired):
			respond.Error(w, http.StatusBadRequest, "verification expired, request a new postcard")
		case errors.Is(err, verification.ErrTooManyAttempts):
			respond.Error(w, http.StatusBadRequest, "too many attempts, request a new postcard")
		case errors.Is(err, verification.ErrIncorrectCode):
			respond.Error(w, http.StatusBadRequest, "incorrect verification code")
		default:
			respond.Error(w, http.StatusInternalServerError, "internal error")
		}

		return
	}

	respond.JSON(w, http.StatusOK, validateResponse{OK: true, Home: toHomeResponse(verified)})
}

type vendorRequest struct {
	VendorID uuid.UUID `json:"vendor_id"`
}

func (h *Handler) vendor(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	homeID, err := uuid.Parse(chi.URLParam(r, "homeID"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid home id")
		return
	}

	var req vendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.VendorID == uuid.Nil {
		respond.Error(w, http.StatusBadRequest, "vendor_id is required")
		return
	}

	v, err := h.svc.RecordVendorEvent(r.Context(), homeID, id.UserID, req.VendorID)
	if err != nil {
		if errors.Is(err, home.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "home not found")
			return
		}

		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	respond.JSON(w, http.StatusCreated, issueResponse{OK: true, VerificationID: v.ID, ExpiresAt: v.ExpiresAt})
}

type homeResponse struct {
	ID                 uuid.UUID               `json:"id"`
	VerificationStatus home.VerificationStatus `json:"verification_status"`
	VerificationMethod string                  `json:"verification_method,omitempty"`
	VerifiedAt         *time.Time              `json:"verified_at,omitempty"`
	VerifiedBy         *uuid.UUID              `json:"verified_by,omitempty"`
}

func toHomeResponse(h *home.Home) homeResponse {
	return homeResponse{
		ID:                 h.ID,
		VerificationStatus: h.VerificationStatus,
		VerificationMethod: h.VerificationMethod,
		VerifiedAt:         h.VerifiedAt,
		VerifiedBy:         h.VerifiedBy,
	}
}
