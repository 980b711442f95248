package authn

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/RyanHagen77/dwella-app-sub003/internal/auth"
	"github.com/RyanHagen77/dwella-app-sub003/internal/http/respond"
	"github.com/RyanHagen77/dwella-app-sub003/internal/user"
)

type Handler struct {
	users    *user.Service
	sessions *auth.Sessions
}

func NewHandler(users *user.Service, sessions *auth.Sessions) *Handler {
	return &Handler{users: users, sessions: sessions}
}

// Routes registers the public auth endpoints; Me is mounted separately
// behind the session middleware.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/signup", h.signup)
	r.Post("/signin", h.signin)
}

type signupRequest struct {
	Email        string    `json:"email"`
	Password     string    `json:"password"`
	Name         string    `json:"name"`
	BusinessName string    `json:"business_name,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Role         user.Role `json:"role,omitempty"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      userResponse `json:"user"`
}

type userResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	BusinessName string    `json:"business_name,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Role         user.Role `json:"role"`
}

func toUserResponse(u *user.User) userResponse {
	return userResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		BusinessName: u.BusinessName,
		Phone:        u.Phone,
		Role:         u.Role,
	}
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Email == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	if req.Role == user.RoleAdmin {
		respond.Error(w, http.StatusBadRequest, "cannot self-register as admin")
		return
	}

	u, err := h.users.Signup(r.Context(), user.SignupParams{
		Email:        req.Email,
		Password:     req.Password,
		Name:         req.Name,
		BusinessName: req.BusinessName,
		Phone:        req.Phone,
		Role:         req.Role,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			respond.Error(w, http.StatusConflict, "email already registered")
			return
		}

		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	h.writeSession(w, u, http.StatusCreated)
}

func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			respond.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	h.writeSession(w, u, http.StatusOK)
}

// Me returns the account behind the current session.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	u, err := h.users.Get(r.Context(), id.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "user not found")
			return
		}

		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	respond.JSON(w, http.StatusOK, toUserResponse(u))
}

func (h *Handler) writeSession(w http.ResponseWriter, u *user.User, status int) {
	token, expiresAt, err := h.sessions.Issue(auth.Identity{UserID: u.ID, Role: u.Role})
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respond.JSON(w, status, sessionResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toUserResponse(u),
	})
}
