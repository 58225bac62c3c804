package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"worklink/internal/domain/application"
	"worklink/internal/domain/job"
	"worklink/internal/domain/notification"
	"worklink/internal/repository"
)

const maxCoverNoteLength = 2000

type ApplicationUsecase interface {
	Apply(ctx context.Context, seekerID, jobID uuid.UUID, coverNote string) (application.Application, error)
	UpdateStatus(ctx context.Context, actorID, applicationID uuid.UUID, next application.Status) (application.Application, error)
	ListMine(ctx context.Context, seekerID uuid.UUID, limit, offset int) ([]application.Application, error)
	ListForJob(ctx context.Context, employerID, jobID uuid.UUID, limit, offset int) ([]application.Application, error)
}

type Applications struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	cache        Cache
	notifier     Notifier
	logger       *log.Logger
	now          func() time.Time
}

func NewApplicationUsecase(applications repository.ApplicationRepository, jobs repository.JobRepository, cache Cache, notifier Notifier, logger *log.Logger) *Applications {
	if logger == nil {
		logger = log.Default()
	}
	return &Applications{
		applications: applications,
		jobs:         jobs,
		cache:        orNoopCache(cache),
		notifier:     orNoopNotifier(notifier),
		logger:       logger,
		now:          time.Now,
	}
}

// Apply files an application against an open posting. Duplicate applications
// surface as application.ErrAlreadyApplied from the unique (job, seeker) pair.
func (u *Applications) Apply(ctx context.Context, seekerID, jobID uuid.UUID, coverNote string) (application.Application, error) {
	if seekerID == uuid.Nil {
		return application.Application{}, ErrUnauthorized
	}
	coverNote = strings.TrimSpace(coverNote)
	if len(coverNote) > maxCoverNoteLength {
		return application.Application{}, ErrInvalidInput
	}

	j, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		return application.Application{}, fmt.Errorf("load job: %w", err)
	}
	if !j.IsOpen() {
		return application.Application{}, job.ErrClosed
	}

	now := u.now()
	app := application.Application{
		ID:        uuid.New(),
		JobID:     j.ID,
		SeekerID:  seekerID,
		Status:    application.StatusSubmitted,
		CoverNote: coverNote,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.applications.Create(ctx, app); err != nil {
		return application.Application{}, fmt.Errorf("create application: %w", err)
	}

	// The applied set feeds recommendation filtering, so cached pages are stale.
	u.invalidateRecommendations(ctx, seekerID)
	u.notifier.Notify(ctx, j.EmployerID, notification.KindNewApplication,
		fmt.Sprintf("New application received for %q", j.Title))

	return app, nil
}

// UpdateStatus advances an application along the review pipeline. Employers
// move applications on their own postings; the seeker may only withdraw.
func (u *Applications) UpdateStatus(ctx context.Context, actorID, applicationID uuid.UUID, next application.Status) (application.Application, error) {
	if actorID == uuid.Nil {
		return application.Application{}, ErrUnauthorized
	}

	app, err := u.applications.FindByID(ctx, applicationID)
	if err != nil {
		return application.Application{}, fmt.Errorf("load application: %w", err)
	}
	j, err := u.jobs.FindByID(ctx, app.JobID)
	if err != nil {
		return application.Application{}, fmt.Errorf("load job: %w", err)
	}

	isSeeker := actorID == app.SeekerID
	isEmployer := actorID == j.EmployerID
	switch {
	case isSeeker && next == application.StatusWithdrawn:
	case isEmployer && next != application.StatusWithdrawn:
	default:
		return application.Application{}, ErrForbidden
	}

	if !application.IsTransitionAllowed(app.Status, next) {
		return application.Application{}, application.ErrInvalidTransition
	}

	if err := u.applications.UpdateStatus(ctx, app.ID, next); err != nil {
		return application.Application{}, fmt.Errorf("update application status: %w", err)
	}
	app.Status = next
	app.UpdatedAt = u.now()

	if isEmployer {
		u.notifier.Notify(ctx, app.SeekerID, notification.KindApplicationStatus,
			fmt.Sprintf("Your application for %q is now %s", j.Title, next))
	} else {
		u.notifier.Notify(ctx, j.EmployerID, notification.KindApplicationStatus,
			fmt.Sprintf("An applicant withdrew from %q", j.Title))
	}

	return app, nil
}

func (u *Applications) ListMine(ctx context.Context, seekerID uuid.UUID, limit, offset int) ([]application.Application, error) {
	if seekerID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.applications.ListBySeeker(ctx, seekerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return out, nil
}

func (u *Applications) ListForJob(ctx context.Context, employerID, jobID uuid.UUID, limit, offset int) ([]application.Application, error) {
	if employerID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	j, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("load job: %w", err)
	}
	if j.EmployerID != employerID {
		return nil, ErrForbidden
	}
	out, err := u.applications.ListByJob(ctx, jobID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return out, nil
}

func (u *Applications) invalidateRecommendations(ctx context.Context, seekerID uuid.UUID) {
	if err := u.cache.DeleteByPattern(ctx, recommendationsCachePattern(seekerID)); err != nil {
		u.logger.Printf("[Applications] Cache invalidation failed: %v", err)
	}
}
