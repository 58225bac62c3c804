package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"worklink/internal/domain/job"
	"worklink/internal/repository"
)

const (
	defaultEmployerJobsLimit = 20
	maxEmployerJobsLimit     = 100
)

type JobInput struct {
	Title          string
	Description    string
	EmploymentType string
	Skills         []string
	Location       job.Location
	Salary         job.Salary
	ExpiresAt      *time.Time
	Draft          bool
}

type JobUsecase interface {
	CreateJob(ctx context.Context, employerID uuid.UUID, in JobInput) (job.Job, error)
	UpdateJob(ctx context.Context, employerID, jobID uuid.UUID, in JobInput) (job.Job, error)
	PublishJob(ctx context.Context, employerID, jobID uuid.UUID) (job.Job, error)
	CloseJob(ctx context.Context, employerID, jobID uuid.UUID) error
	GetJob(ctx context.Context, id uuid.UUID) (job.Job, error)
	ListMyJobs(ctx context.Context, employerID uuid.UUID, limit, offset int) ([]job.Job, error)
}

type Jobs struct {
	jobs   repository.JobRepository
	cache  Cache
	logger *log.Logger
	now    func() time.Time
}

func NewJobUsecase(jobs repository.JobRepository, cache Cache, logger *log.Logger) *Jobs {
	if logger == nil {
		logger = log.Default()
	}
	return &Jobs{jobs: jobs, cache: orNoopCache(cache), logger: logger, now: time.Now}
}

func (u *Jobs) CreateJob(ctx context.Context, employerID uuid.UUID, in JobInput) (job.Job, error) {
	if employerID == uuid.Nil {
		return job.Job{}, ErrUnauthorized
	}
	j, err := buildJob(in)
	if err != nil {
		return job.Job{}, err
	}
	j.ID = uuid.New()
	j.EmployerID = employerID
	j.PostedAt = u.now()
	j.Status = job.StatusActive
	if in.Draft {
		j.Status = job.StatusDraft
	}

	if err := u.jobs.Create(ctx, j); err != nil {
		return job.Job{}, fmt.Errorf("create job: %w", err)
	}
	if j.IsOpen() {
		u.invalidateBrowse(ctx)
	}
	return j, nil
}

func (u *Jobs) UpdateJob(ctx context.Context, employerID, jobID uuid.UUID, in JobInput) (job.Job, error) {
	existing, err := u.ownedJob(ctx, employerID, jobID)
	if err != nil {
		return job.Job{}, err
	}
	if existing.Status == job.StatusClosed {
		return job.Job{}, job.ErrClosed
	}

	updated, err := buildJob(in)
	if err != nil {
		return job.Job{}, err
	}
	updated.ID = existing.ID
	updated.EmployerID = existing.EmployerID
	updated.Status = existing.Status
	updated.PostedAt = existing.PostedAt

	if err := u.jobs.Update(ctx, updated); err != nil {
		return job.Job{}, fmt.Errorf("update job: %w", err)
	}
	if updated.IsOpen() {
		u.invalidateBrowse(ctx)
	}
	return updated, nil
}

// PublishJob makes a draft visible. The posting date resets to now so the
// posting ranks as fresh, not as old as its draft.
func (u *Jobs) PublishJob(ctx context.Context, employerID, jobID uuid.UUID) (job.Job, error) {
	existing, err := u.ownedJob(ctx, employerID, jobID)
	if err != nil {
		return job.Job{}, err
	}
	switch existing.Status {
	case job.StatusActive:
		return existing, nil
	case job.StatusClosed:
		return job.Job{}, job.ErrClosed
	}

	existing.Status = job.StatusActive
	existing.PostedAt = u.now()
	if err := u.jobs.Update(ctx, existing); err != nil {
		return job.Job{}, fmt.Errorf("publish job: %w", err)
	}
	u.invalidateBrowse(ctx)
	return existing, nil
}

// CloseJob is idempotent: closing a closed posting is a no-op.
func (u *Jobs) CloseJob(ctx context.Context, employerID, jobID uuid.UUID) error {
	existing, err := u.ownedJob(ctx, employerID, jobID)
	if err != nil {
		return err
	}
	if existing.Status == job.StatusClosed {
		return nil
	}

	if err := u.jobs.UpdateStatus(ctx, jobID, job.StatusClosed); err != nil {
		return fmt.Errorf("close job: %w", err)
	}
	u.invalidateBrowse(ctx)
	return nil
}

// GetJob serves the public detail page. Drafts stay hidden; closed postings
// remain readable because applications keep pointing at them.
func (u *Jobs) GetJob(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := u.jobs.FindByID(ctx, id)
	if err != nil {
		return job.Job{}, fmt.Errorf("load job: %w", err)
	}
	if j.Status == job.StatusDraft {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (u *Jobs) ListMyJobs(ctx context.Context, employerID uuid.UUID, limit, offset int) ([]job.Job, error) {
	if employerID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if limit <= 0 {
		limit = defaultEmployerJobsLimit
	}
	if limit > maxEmployerJobsLimit {
		limit = maxEmployerJobsLimit
	}
	if offset < 0 {
		offset = 0
	}
	out, err := u.jobs.ListByEmployer(ctx, employerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employer jobs: %w", err)
	}
	return out, nil
}

func (u *Jobs) ownedJob(ctx context.Context, employerID, jobID uuid.UUID) (job.Job, error) {
	if employerID == uuid.Nil {
		return job.Job{}, ErrUnauthorized
	}
	existing, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		return job.Job{}, fmt.Errorf("load job: %w", err)
	}
	if existing.EmployerID != employerID {
		return job.Job{}, ErrForbidden
	}
	return existing, nil
}

func (u *Jobs) invalidateBrowse(ctx context.Context) {
	if err := u.cache.DeleteByPattern(ctx, browseCachePrefix+"*"); err != nil {
		u.logger.Printf("[Jobs] Cache invalidation failed: %v", err)
	}
}

func buildJob(in JobInput) (job.Job, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return job.Job{}, ErrInvalidInput
	}
	if !job.ValidType(in.EmploymentType) {
		return job.Job{}, ErrInvalidInput
	}
	if in.Salary.Min < 0 || in.Salary.Max < 0 {
		return job.Job{}, ErrInvalidInput
	}
	if in.Salary.Min > 0 && in.Salary.Max > 0 && in.Salary.Min > in.Salary.Max {
		return job.Job{}, ErrInvalidInput
	}

	skills := make([]string, 0, len(in.Skills))
	for _, s := range in.Skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}

	return job.Job{
		Title:          title,
		Description:    strings.TrimSpace(in.Description),
		EmploymentType: strings.ToLower(strings.TrimSpace(in.EmploymentType)),
		Skills:         skills,
		Location:       in.Location,
		Salary:         in.Salary,
		ExpiresAt:      in.ExpiresAt,
	}, nil
}
