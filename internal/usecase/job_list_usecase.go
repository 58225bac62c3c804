package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"worklink/internal/domain/job"
	"worklink/internal/repository"
)

const (
	defaultBrowseLimit = 20
	maxBrowseLimit     = 100

	browseLockTTL  = 30 * time.Second
	browseLockWait = 300 * time.Millisecond
)

type JobListUsecase interface {
	BrowseJobs(ctx context.Context, f repository.JobFilter) ([]job.Job, error)
}

type JobList struct {
	jobs   repository.JobRepository
	cache  Cache
	logger *log.Logger
}

func NewJobListUsecase(jobs repository.JobRepository, cache Cache, logger *log.Logger) *JobList {
	if logger == nil {
		logger = log.Default()
	}
	return &JobList{jobs: jobs, cache: orNoopCache(cache), logger: logger}
}

// BrowseJobs serves the public listing. Results cache under a key derived
// from the normalized filter; concurrent misses on the same filter contend
// on a short lock so only one caller hits the database per window.
func (u *JobList) BrowseJobs(ctx context.Context, f repository.JobFilter) ([]job.Job, error) {
	if f.Limit <= 0 {
		f.Limit = defaultBrowseLimit
	}
	if f.Limit > maxBrowseLimit {
		f.Limit = maxBrowseLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	cacheKey := browseCacheKey(f)
	lockKey := "jobs:lock:" + cacheKey

	var cached []job.Job
	if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		u.logger.Printf("[Jobs] Cache HIT: %s", cacheKey)
		return cached, nil
	}
	u.logger.Printf("[Jobs] Cache MISS: %s", cacheKey)

	lockAcquired := false
	ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", browseLockTTL)
	switch {
	case err == nil && ok:
		lockAcquired = true
	case err == nil && !ok:
		// Another caller is filling this key. Wait briefly with jitter and
		// take their result when it lands.
		jitter := time.Duration(time.Now().UnixNano()%201) * time.Millisecond
		time.Sleep(browseLockWait + jitter)
		if hit, err2 := u.cache.GetJSON(ctx, cacheKey, &cached); err2 == nil && hit {
			u.logger.Printf("[Jobs] Cache HIT: %s", cacheKey)
			return cached, nil
		}
		u.logger.Printf("[Jobs] Lock wait fallback: %s", lockKey)
	}

	out, err := u.jobs.ListOpen(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list open jobs: %w", err)
	}

	if err := u.cache.SetJSON(ctx, cacheKey, out, 0); err == nil {
		u.logger.Printf("[Jobs] Cache SET: %s", cacheKey)
	}
	if lockAcquired {
		_ = u.cache.Delete(ctx, lockKey)
	}
	return out, nil
}
