package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/RyanHagen77/dwella-app-sub003/internal/user"
)

var ErrInvalidToken = errors.New("invalid or expired session token")

// Identity is the authenticated caller resolved from a session token.
type Identity struct {
	UserID uuid.UUID
	Role   user.Role
}

// Sessions issues and verifies HS256 session tokens. The signing secret is
// process-wide configuration injected at construction.
type Sessions struct {
	secret []byte
	ttl    time.Duration
}

func NewSessions(secret string, ttl time.Duration) *Sessions {
	return &Sessions{secret: []byte(secret), ttl: ttl}
}

func (s *Sessions) Issue(id Identity) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  id.UserID.String(),
		"role": string(id.Role),
		"iat":  time.Now().Unix(),
		"exp":  expiresAt.Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing session token: %w", err)
	}

	return signed, expiresAt, nil
}

func (s *Sessions) Parse(tokenStr string) (Identity, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	role, _ := claims["role"].(string)

	return Identity{UserID: userID, Role: user.Role(role)}, nil
}
