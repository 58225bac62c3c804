package application

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("application not found")
	ErrAlreadyApplied    = errors.New("already applied to this job")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type Application struct {
	ID        uuid.UUID
	JobID     uuid.UUID
	SeekerID  uuid.UUID
	Status    Status
	CoverNote string
	CreatedAt time.Time
	UpdatedAt time.Time
}
