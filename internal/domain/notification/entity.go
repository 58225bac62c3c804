package notification

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("notification not found")

const (
	KindApplicationStatus = "application_status"
	KindNewApplication    = "new_application"
	KindCourseInquiry     = "course_inquiry"
	KindJobClosed         = "job_closed"
)

type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
