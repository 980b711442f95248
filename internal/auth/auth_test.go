package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanHagen77/dwella-app-sub003/internal/auth"
	"github.com/RyanHagen77/dwella-app-sub003/internal/user"
)

func TestSessions_IssueAndParse(t *testing.T) {
	sessions := auth.NewSessions("test-secret", time.Hour)

	id := auth.Identity{UserID: uuid.New(), Role: user.RoleHomeowner}

	token, expiresAt, err := sessions.Issue(id)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	got, err := sessions.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestSessions_Parse_Invalid(t *testing.T) {
	sessions := auth.NewSessions("test-secret", time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{name: "Garbage", token: "not-a-jwt"},
		{name: "Empty", token: ""},
		{
			name: "WrongSecret",
			token: func() string {
				other := auth.NewSessions("other-secret", time.Hour)
				tok, _, err := other.Issue(auth.Identity{UserID: uuid.New(), Role: user.RolePro})
				require.NoError(t, err)
				return tok
			}(),
		},
		{
			name: "Expired",
			token: func() string {
				expired := auth.NewSessions("test-secret", -time.Hour)
				tok, _, err := expired.Issue(auth.Identity{UserID: uuid.New(), Role: user.RoleHomeowner})
				require.NoError(t, err)
				return tok
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sessions.Parse(tt.token)
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

func TestSessions_Require(t *testing.T) {
	sessions := auth.NewSessions("test-secret", time.Hour)
	id := auth.Identity{UserID: uuid.New(), Role: user.RolePro}
	token, _, err := sessions.Issue(id)
	require.NoError(t, err)

	var gotIdentity auth.Identity
	handler := sessions.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := auth.FromContext(r.Context())
		require.True(t, ok)
		gotIdentity = got
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("BearerHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, id, gotIdentity)
	})

	t.Run("Cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, id, gotIdentity)
	})

	t.Run("NoToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("BadToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer bogus")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	sessions := auth.NewSessions("test-secret", time.Hour)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := sessions.Require(auth.RequireRole(user.RoleAdmin)(next))

	issue := func(role user.Role) string {
		tok, _, err := sessions.Issue(auth.Identity{UserID: uuid.New(), Role: role})
		require.NoError(t, err)
		return tok
	}

	t.Run("MatchingRole", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+issue(user.RoleAdmin))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("WrongRole", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+issue(user.RoleHomeowner))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
