package record

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
	"github.com/RyanHagen77/dwella-app-sub003/internal/record"
)

type Handler struct {
	svc *record.Service
}

func NewHandler(svc *record.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes is mounted under /homes/{homeID}.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/records", func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/", h.list)
		r.Get("/{recordID}", h.get)
		r.Get("/{recordID}/attachments", h.attachments)
	})
}

type createRecordRequest struct {
	Title       string              `json:"title"`
	Note        string              `json:"note,omitempty"`
	Date        time.Time           `json:"date"`
	Kind        record.Kind         `json:"kind,omitempty"`
	VendorName  string              `json:"vendor_name,omitempty"`
	Cost        int64               `json:"cost,omitempty"`
	Attachments []attachmentRequest `json:"attachments,omitempty"`
}

type attachmentRequest struct {
	FileName    string `json:"file_name"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
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

	var req createRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Title == "" {
		respond.Error(w, http.StatusBadRequest, "title is required")
		return
	}

	atts := make([]record.AttachmentParams, len(req.Attachments))
	for i, a := range req.Attachments {
		atts[i] = record.AttachmentParams{
			FileName:    a.FileName,
			URL:         a.URL,
			ContentType: a.ContentType,
		}
	}

	rec, err := h.svc.Create(r.Context(), homeID, id.UserID, record.CreateParams{
		Title:      req.Title,
		Note:       req.Note,
		Date:       req.Date,
		Kind:       req.Kind,
		VendorName: req.VendorName,
		Cost:       req.Cost,
	}, atts)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(rec))
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

	recs, err := h.svc.ListByHome(r.Context(), homeID, id.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(recs))
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

	rec, err := h.svc.Get(r.Context(), homeID, recordID, id.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(rec))
}

func (h *Handler) attachments(w http.ResponseWriter, r *http.Request) {
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

	atts, err := h.svc.ListAttachments(r.Context(), homeID, recordID, id.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toAttachmentResponseList(atts))
}

func pathIDs(r *http.Request) (homeID, recordID uuid.UUID, err error) {
	homeID, err = uuid.Parse(chi.URLParam(r, "homeID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("invalid home id")
	}

	recordID, err = uuid.Parse(chi.URLParam(r, "recordID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("invalid record id")
	}

	return homeID, recordID, nil
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, home.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "home not found")
	case errors.Is(err, home.ErrForbidden):
		respond.Error(w, http.StatusForbidden, "no access to home")
	case errors.Is(err, record.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "record not found")
	default:
		respond.Error(w, http.StatusInternalServerError, "internal error")
	}
}
