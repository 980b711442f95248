package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/RyanHagen77/dwella-app-sub003/internal/user"
)

type ctxKey int

const identityKey ctxKey = 0

// SessionCookie is the cookie browser clients carry the session token in.
const SessionCookie = "session"

// FromContext returns the identity installed by Require.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// Require resolves the session token from the Authorization header or the
// session cookie and installs the caller's Identity into the request context.
// Requests with no usable token get a 401.
func (s *Sessions) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := bearerToken(r)
		if tokenStr == "" {
			if c, err := r.Cookie(SessionCookie); err == nil {
				tokenStr = c.Value
			}
		}

		if tokenStr == "" {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}

		id, err := s.Parse(tokenStr)
		if err != nil {
			http.Error(w, "invalid or expired session", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a route subtree to one role. It must run after Require.
func RequireRole(role user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := FromContext(r.Context())
			if !ok {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}

			if id.Role != role {
				http.Error(w, "insufficient role", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return parts[1]
}
