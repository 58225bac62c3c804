package dto

import "github.com/google/uuid"

type MatchResponse struct {
	JobID   uuid.UUID `json:"job_id"`
	Score   int       `json:"score"`
	Reasons []string  `json:"reasons"`
}

type RecommendedJobResponse struct {
	Job     JobResponse `json:"job"`
	Score   int         `json:"score"`
	Reasons []string    `json:"reasons"`
}
