package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"worklink/internal/domain/job"
	"worklink/internal/domain/matching"
	"worklink/internal/repository"
)

const (
	defaultSimilarLimit = 5
	maxSimilarLimit     = 50
)

type SimilarJobsUsecase interface {
	GetSimilarJobs(ctx context.Context, jobID uuid.UUID, limit int) ([]job.Job, error)
}

type SimilarJobs struct {
	jobs repository.JobRepository
}

func NewSimilarJobsUsecase(jobs repository.JobRepository) *SimilarJobs {
	return &SimilarJobs{jobs: jobs}
}

// GetSimilarJobs ranks open postings against a reference posting. A missing
// reference yields an empty list rather than an error so listing pages can
// render a stale link without failing.
func (u *SimilarJobs) GetSimilarJobs(ctx context.Context, jobID uuid.UUID, limit int) ([]job.Job, error) {
	if limit <= 0 {
		limit = defaultSimilarLimit
	}
	if limit > maxSimilarLimit {
		limit = maxSimilarLimit
	}

	ref, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return []job.Job{}, nil
		}
		return nil, fmt.Errorf("load reference job: %w", err)
	}

	candidates, err := u.jobs.FindOpenJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load open jobs: %w", err)
	}

	type scored struct {
		job   job.Job
		score float64
	}
	ranked := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		if c.ID == ref.ID {
			continue
		}
		ranked = append(ranked, scored{job: c, score: matching.Similarity(ref, c)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]job.Job, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.job)
	}
	return out, nil
}
