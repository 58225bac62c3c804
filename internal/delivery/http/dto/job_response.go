package dto

import "github.com/google/uuid"

type JobLocationResponse struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Remote  bool   `json:"remote"`
}

type JobSalaryResponse struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

type JobResponse struct {
	ID             uuid.UUID           `json:"id"`
	EmployerID     uuid.UUID           `json:"employer_id"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	EmploymentType string              `json:"employment_type"`
	Skills         []string            `json:"skills"`
	Location       JobLocationResponse `json:"location"`
	Salary         JobSalaryResponse   `json:"salary"`
	Status         string              `json:"status"`
	PostedDate     string              `json:"posted_date"`
	ExpiresAt      *string             `json:"expires_at,omitempty"`
}
