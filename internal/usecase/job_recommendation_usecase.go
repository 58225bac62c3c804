package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"worklink/internal/domain/matching"
	"worklink/internal/domain/profile"
	"worklink/internal/repository"
)

const (
	defaultRecommendationLimit = 10
	maxRecommendationLimit     = 50

	coldStartScore  = 50
	coldStartReason = "New job posting"
)

type JobRecommendationUsecase interface {
	GetRecommendations(ctx context.Context, seekerID uuid.UUID, limit int) ([]matching.ScoredJob, error)
}

type JobRecommendation struct {
	jobs         repository.JobRepository
	profiles     repository.ProfileRepository
	applications repository.ApplicationRepository
	cache        Cache
	logger       *log.Logger
}

func NewJobRecommendationUsecase(jobs repository.JobRepository, profiles repository.ProfileRepository, applications repository.ApplicationRepository, cache Cache, logger *log.Logger) *JobRecommendation {
	if logger == nil {
		logger = log.Default()
	}
	return &JobRecommendation{
		jobs:         jobs,
		profiles:     profiles,
		applications: applications,
		cache:        orNoopCache(cache),
		logger:       logger,
	}
}

// GetRecommendations ranks open jobs for a seeker. The seeker profile and the
// set of already-applied jobs load concurrently; a seeker without a profile
// gets the most recent postings at a neutral score instead of an error.
func (u *JobRecommendation) GetRecommendations(ctx context.Context, seekerID uuid.UUID, limit int) ([]matching.ScoredJob, error) {
	if seekerID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}
	if limit > maxRecommendationLimit {
		limit = maxRecommendationLimit
	}

	cacheKey := recommendationsCacheKey(seekerID, limit)
	var cached []matching.ScoredJob
	if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		u.logger.Printf("[Recommendations] Cache HIT: %s", cacheKey)
		return cached, nil
	}

	var (
		seeker     profile.SeekerProfile
		hasProfile bool
		applied    map[uuid.UUID]struct{}
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := u.profiles.FindBySeekerID(gctx, seekerID)
		if err != nil {
			if errors.Is(err, profile.ErrNotFound) {
				return nil
			}
			return fmt.Errorf("load seeker profile: %w", err)
		}
		seeker = p
		hasProfile = true
		return nil
	})
	g.Go(func() error {
		ids, err := u.applications.FindJobIDsBySeeker(gctx, seekerID)
		if err != nil {
			return fmt.Errorf("load applied job ids: %w", err)
		}
		applied = ids
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !hasProfile {
		out, err := u.coldStart(ctx, limit)
		if err != nil {
			return nil, err
		}
		u.storeCache(ctx, cacheKey, out)
		return out, nil
	}

	candidates, err := u.jobs.FindOpenJobsExcluding(ctx, applied)
	if err != nil {
		return nil, fmt.Errorf("load open jobs: %w", err)
	}

	out := make([]matching.ScoredJob, 0, len(candidates))
	for _, j := range candidates {
		out = append(out, matching.ScoredJob{
			Job:     j,
			Score:   matching.Score(j, seeker),
			Reasons: matching.Reasons(j, seeker),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > limit {
		out = out[:limit]
	}

	u.storeCache(ctx, cacheKey, out)
	return out, nil
}

func (u *JobRecommendation) coldStart(ctx context.Context, limit int) ([]matching.ScoredJob, error) {
	recent, err := u.jobs.FindRecentOpenJobs(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load recent open jobs: %w", err)
	}
	out := make([]matching.ScoredJob, 0, len(recent))
	for _, j := range recent {
		out = append(out, matching.ScoredJob{
			Job:     j,
			Score:   coldStartScore,
			Reasons: []string{coldStartReason},
		})
	}
	return out, nil
}

func (u *JobRecommendation) storeCache(ctx context.Context, key string, items []matching.ScoredJob) {
	if err := u.cache.SetJSON(ctx, key, items, 0); err != nil {
		u.logger.Printf("[Recommendations] Cache SET failed: %v", err)
		return
	}
	u.logger.Printf("[Recommendations] Cache SET: %s", key)
}
