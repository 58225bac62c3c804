package course

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("course not found")
	ErrInquiryNotFound = errors.New("inquiry not found")
)

const (
	StatusActive = "active"
	StatusClosed = "closed"
)

type Course struct {
	ID            uuid.UUID `json:"id"`
	CenterID      uuid.UUID `json:"center_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Skills        []string  `json:"skills"`
	DurationWeeks int       `json:"duration_weeks"`
	Fee           int       `json:"fee"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type Inquiry struct {
	ID        uuid.UUID `json:"id"`
	CourseID  uuid.UUID `json:"course_id"`
	SeekerID  uuid.UUID `json:"seeker_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
