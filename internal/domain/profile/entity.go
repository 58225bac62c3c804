package profile

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("profile not found")

type Location struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

type SalaryExpectation struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

type Experience struct {
	Title   string     `json:"title"`
	Company string     `json:"company"`
	Start   time.Time  `json:"start"`
	End     *time.Time `json:"end,omitempty"`
	Current bool       `json:"current"`
}

type Education struct {
	Institution  string `json:"institution"`
	FieldOfStudy string `json:"field_of_study"`
	Degree       string `json:"degree"`
}

// SeekerProfile is the matching input. It is stored whole as a JSONB
// document keyed by user id.
type SeekerProfile struct {
	UserID         uuid.UUID         `json:"user_id"`
	Headline       string            `json:"headline"`
	Skills         []string          `json:"skills"`
	WorkHistory    []Experience      `json:"work_history"`
	Education      []Education       `json:"education"`
	Location       Location          `json:"location"`
	PreferredTypes []string          `json:"preferred_types"`
	ExpectedSalary SalaryExpectation `json:"expected_salary"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

type EmployerProfile struct {
	UserID      uuid.UUID `json:"user_id"`
	CompanyName string    `json:"company_name"`
	Website     string    `json:"website"`
	About       string    `json:"about"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CenterProfile struct {
	UserID     uuid.UUID `json:"user_id"`
	CenterName string    `json:"center_name"`
	Website    string    `json:"website"`
	About      string    `json:"about"`
	UpdatedAt  time.Time `json:"updated_at"`
}
