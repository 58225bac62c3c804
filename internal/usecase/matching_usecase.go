package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"worklink/internal/domain/matching"
	"worklink/internal/domain/profile"
	"worklink/internal/repository"
)

type MatchResult struct {
	JobID   uuid.UUID `json:"job_id"`
	Score   int       `json:"score"`
	Reasons []string  `json:"reasons"`
}

type MatchingUsecase interface {
	GetMatch(ctx context.Context, seekerID, jobID uuid.UUID) (MatchResult, error)
}

type Matching struct {
	jobs     repository.JobRepository
	profiles repository.ProfileRepository
}

func NewMatchingUsecase(jobs repository.JobRepository, profiles repository.ProfileRepository) *Matching {
	return &Matching{jobs: jobs, profiles: profiles}
}

// GetMatch scores one posting against the caller's profile. A seeker who has
// not filled a profile yet is scored as an empty one.
func (u *Matching) GetMatch(ctx context.Context, seekerID, jobID uuid.UUID) (MatchResult, error) {
	if seekerID == uuid.Nil {
		return MatchResult{}, ErrUnauthorized
	}

	j, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		return MatchResult{}, fmt.Errorf("load job: %w", err)
	}

	seeker, err := u.profiles.FindBySeekerID(ctx, seekerID)
	if err != nil && !errors.Is(err, profile.ErrNotFound) {
		return MatchResult{}, fmt.Errorf("load seeker profile: %w", err)
	}

	return MatchResult{
		JobID:   j.ID,
		Score:   matching.Score(j, seeker),
		Reasons: matching.Reasons(j, seeker),
	}, nil
}
