package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDeactivated    = errors.New("account deactivated")
)

const (
	RoleSeeker         = "seeker"
	RoleEmployer       = "employer"
	RoleTrainingCenter = "training_center"
	RoleAdmin          = "admin"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidRole reports whether r is a role accepted at registration.
// Admin accounts are provisioned out of band, never self-registered.
func ValidRole(r string) bool {
	switch r {
	case RoleSeeker, RoleEmployer, RoleTrainingCenter:
		return true
	}
	return false
}
