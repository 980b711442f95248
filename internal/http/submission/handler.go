package submission

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
	"github.com/RyanHagen77/dwella-app-sub003/internal/submission"
	"github.com/RyanHagen77/dwella-app-sub003/internal/user"
)

type Handler struct {
	svc *submission.Service
}

func NewHandler(svc *submission.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes is mounted under /homes/{homeID}.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/service-records", func(r chi.Router) {
		r.With(auth.RequireRole(user.RolePro)).Post("/", h.submit)
		r.Get("/", h.list)
		r.Get("/{recordID}", h.get)
		r.Post("/{recordID}/approve", h.approve)
		r.Post("/{recordID}/reject", h.reject)
	})

	r.Get("/connections", h.connections)
}

type submitRequest struct {
	ServiceType string              `json:"service_type"`
	Description string              `json:"description"`
	ServiceDate time.Time           `json:"service_date"`
	Cost        int64               `json:"cost"`
	Attachments []attachmentRequest `json:"attachments,omitempty"`
}

type attachmentRequest struct {
	FileName    string `json:"file_name"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
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

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.ServiceType == "" {
		respond.Error(w, http.StatusBadRequest, "service_type is required")
		return
	}

	atts := make([]submission.AttachmentParams, len(req.Attachments))
	for i, a := range req.Attachments {
		atts[i] = submission.AttachmentParams{
			FileName:    a.FileName,
			URL:         a.URL,
			ContentType: a.ContentType,
		}
	}

	sr, err := h.svc.Submit(r.Context(), homeID, id.UserID, submission.SubmitParams{
		ServiceType: req.ServiceType,
		Description: req.Description,
		ServiceDate: req.ServiceDate,
		Cost:        req.Cost,
	}, atts)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(sr))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
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

	var status *submission.Status

	if s := r.URL.Query().Get("status"); s != "" {
		st := submission.Status(s)
		status = &st
	}

	srs, err := h.svc.ListByHome(r.Context(), homeID, id.UserID, status)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(srs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	homeID, recordID, err := pathIDs(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	sr, err := h.svc.Get(r.Context(), homeID, recordID, id.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(sr))
}

type approveResponse struct {
	Success       bool                  `json:"success"`
	ServiceRecord serviceRecordResponse `json:"serviceRecord"`
	FinalRecord   *finalRecordResponse  `json:"finalRecord,omitempty"`
}

func (h *Handler) approve(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	homeID, recordID, err := pathIDs(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	sr, rec, err := h.svc.Approve(r.Context(), homeID, recordID, id.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := approveResponse{Success: true, ServiceRecord: toResponse(sr)}
	if rec != nil {
		final := toFinalRecordResponse(rec)
		resp.FinalRecord = &final
	}

	respond.JSON(w, http.StatusOK, resp)
}

type rejectRequest struct {
	Reason string `json:"reason,omitempty"`
}

type rejectResponse struct {
	Success       bool                  `json:"success"`
	ServiceRecord serviceRecordResponse `json:"serviceRecord"`
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	homeID, recordID, err := pathIDs(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	var req rejectRequest
	if r.Body != nil {
		// The body is optional; a bare POST rejects with the default reason.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	sr, err := h.svc.Reject(r.Context(), homeID, recordID, id.UserID, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, rejectResponse{Success: true, ServiceRecord: toResponse(sr)})
}

func (h *Handler) connections(w http.ResponseWriter, r *http.Request) {
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

	conns, err := h.svc.ListConnections(r.Context(), homeID, id.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toConnectionResponseList(conns))
}

func pathIDs(r *http.Request) (homeID, recordID uuid.UUID, err error) {
	homeID, err = uuid.Parse(chi.URLParam(r, "homeID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("invalid home id")
	}

	recordID, err = uuid.Parse(chi.URLParam(r, "recordID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("invalid service record id")
	}

	return homeID, recordID, nil
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, home.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "home not found")
	case errors.Is(err, home.ErrForbidden):
		respond.Error(w, http.StatusForbidden, "no access to home")
	case errors.Is(err, submission.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "service record not found")
	case errors.Is(err, submission.ErrWrongHome):
		respond.Error(w, http.StatusBadRequest, "service record does not belong to this home")
	case errors.Is(err, submission.ErrAlreadyResolved):
		respond.Error(w, http.StatusConflict, "service record has already been reviewed")
	default:
		respond.Error(w, http.StatusInternalServerError, "internal error")
	}
}
