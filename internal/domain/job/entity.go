package job

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("job not found")
	ErrClosed   = errors.New("job closed")
)

// Employment types accepted on a posting. "remote" is a type of its own;
// postings may also flag Location.Remote regardless of type.
const (
	TypeFullTime   = "full-time"
	TypePartTime   = "part-time"
	TypeContract   = "contract"
	TypeInternship = "internship"
	TypeTemporary  = "temporary"
	TypeRemote     = "remote"
)

// Posting lifecycle: drafts are invisible, only active postings are
// matched, browsed, and applied to.
const (
	StatusDraft  = "draft"
	StatusActive = "active"
	StatusClosed = "closed"
)

type Location struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Remote  bool   `json:"remote"`
}

type Salary struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// Midpoint is 0 when the range is unset.
func (s Salary) Midpoint() float64 {
	if s.Min <= 0 && s.Max <= 0 {
		return 0
	}
	return float64(s.Min+s.Max) / 2
}

type Job struct {
	ID             uuid.UUID  `json:"id"`
	EmployerID     uuid.UUID  `json:"employer_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	EmploymentType string     `json:"employment_type"`
	Skills         []string   `json:"skills"`
	Location       Location   `json:"location"`
	Salary         Salary     `json:"salary"`
	Status         string     `json:"status"`
	PostedAt       time.Time  `json:"posted_at"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
}

func (j Job) IsRemote() bool {
	return j.Location.Remote || strings.EqualFold(j.EmploymentType, TypeRemote)
}

func (j Job) IsOpen() bool {
	return j.Status == StatusActive
}

func ValidType(t string) bool {
	switch strings.ToLower(t) {
	case TypeFullTime, TypePartTime, TypeContract, TypeInternship, TypeTemporary, TypeRemote:
		return true
	}
	return false
}
