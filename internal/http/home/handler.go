package home

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/RyanHagen77/dwella-app-sub003/internal/auth"
	"github.com/RyanHagen77/dwella-app-sub003/internal/home"
	"github.com/RyanHagen77/dwella-app-sub003/internal/http/respond"
)

type Handler struct {
	svc *home.Service
}

func NewHandler(svc *home.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes covers the collection endpoints; HomeRoutes is mounted inside the
// per-home subtree.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
}

func (h *Handler) HomeRoutes(r chi.Router) {
	r.Get("/", h.get)
	r.Post("/access", h.grant)
	r.Delete("/access/{userID}", h.revoke)
}

type createHomeRequest struct {
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createHomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.AddressLine1 == "" || req.City == "" || req.State == "" || req.PostalCode == "" {
		respond.Error(w, http.StatusBadRequest, "address_line1, city, state and postal_code are required")
		return
	}

	created, err := h.svc.Create(r.Context(), id.UserID, home.CreateParams{
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
	})
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(created))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	homes, err := h.svc.ListMine(r.Context(), id.UserID)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(homes))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
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

	found, err := h.svc.Get(r.Context(), homeID, id.UserID)
	if err != nil {
		writeHomeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(found))
}

type grantAccessRequest struct {
	UserID uuid.UUID `json:"user_id"`
}

func (h *Handler) grant(w http.ResponseWriter, r *http.Request) {
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

	var req grantAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.UserID == uuid.Nil {
		respond.Error(w, http.StatusBadRequest, "user_id is required")
		return
	}

	if err := h.svc.Grant(r.Context(), homeID, id.UserID, req.UserID); err != nil {
		writeHomeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) revoke(w http.ResponseWriter, r *http.Request) {
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

	granteeID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.svc.Revoke(r.Context(), homeID, id.UserID, granteeID); err != nil {
		writeHomeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeHomeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, home.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "home not found")
	case errors.Is(err, home.ErrForbidden):
		respond.Error(w, http.StatusForbidden, "no access to home")
	default:
		respond.Error(w, http.StatusInternalServerError, "internal error")
	}
}
