package dto

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID        uuid.UUID `json:"id"`
	JobID     uuid.UUID `json:"job_id"`
	SeekerID  uuid.UUID `json:"seeker_id"`
	Status    string    `json:"status"`
	CoverNote string    `json:"cover_note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
