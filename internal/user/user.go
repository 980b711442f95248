package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Role determines which surfaces a user may act on.
type Role string

const (
	RoleHomeowner Role = "homeowner"
	RolePro       Role = "pro"
	RoleAdmin     Role = "admin"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User is an account holder: a homeowner, a contractor ("pro"), or an admin.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	BusinessName string // pros only
	Phone        string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// DisplayVendorName is the name stamped onto records created from a pro's
// approved work: the business name when set, otherwise the account email.
func (u *User) DisplayVendorName() string {
	if u.BusinessName != "" {
		return u.BusinessName
	}

	return u.Email
}
