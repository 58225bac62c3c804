package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"worklink/internal/domain/job"
	"worklink/internal/repository"
)

func fixedNow() time.Time {
	return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
}

func newJobsUsecase(jobs *mockJobRepo, cache *mockCache) *Jobs {
	uc := NewJobUsecase(jobs, cache, discardLogger())
	uc.now = fixedNow
	return uc
}

func validJobInput() JobInput {
	return JobInput{
		Title:          "Backend Engineer",
		Description:    "Build services",
		EmploymentType: job.TypeFullTime,
		Skills:         []string{"go", " ", "sql"},
		Location:       job.Location{City: "Jakarta", Country: "Indonesia"},
		Salary:         job.Salary{Min: 1000, Max: 2000, Currency: "USD"},
	}
}

func TestCreateJob_DefaultsToActive(t *testing.T) {
	jobs := newMockJobRepo()
	cache := newMockCache()
	uc := newJobsUsecase(jobs, cache)
	employerID := uuid.New()

	created, err := uc.CreateJob(context.Background(), employerID, validJobInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Status != job.StatusActive {
		t.Fatalf("expected active, got %s", created.Status)
	}
	if created.EmployerID != employerID || created.ID == uuid.Nil {
		t.Fatalf("expected ownership and id set")
	}
	if !created.PostedAt.Equal(fixedNow()) {
		t.Fatalf("expected posted_at stamped, got %v", created.PostedAt)
	}
	if len(created.Skills) != 2 {
		t.Fatalf("expected blank skills dropped, got %v", created.Skills)
	}
	if len(cache.deletedPatterns) != 1 || !strings.HasPrefix(cache.deletedPatterns[0], "jobs:browse:") {
		t.Fatalf("expected browse cache dropped, got %v", cache.deletedPatterns)
	}
}

func TestCreateJob_DraftStaysInvisible(t *testing.T) {
	jobs := newMockJobRepo()
	cache := newMockCache()
	uc := newJobsUsecase(jobs, cache)

	in := validJobInput()
	in.Draft = true
	created, err := uc.CreateJob(context.Background(), uuid.New(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Status != job.StatusDraft {
		t.Fatalf("expected draft, got %s", created.Status)
	}
	if len(cache.deletedPatterns) != 0 {
		t.Fatalf("draft creation must not drop the browse cache")
	}

	if _, err := uc.GetJob(context.Background(), created.ID); !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("expected drafts hidden from public get, got %v", err)
	}
}

func TestCreateJob_RejectsInvalidInput(t *testing.T) {
	uc := newJobsUsecase(newMockJobRepo(), newMockCache())

	cases := []struct {
		name   string
		mutate func(*JobInput)
	}{
		{"empty title", func(in *JobInput) { in.Title = "  " }},
		{"unknown type", func(in *JobInput) { in.EmploymentType = "gig" }},
		{"negative salary", func(in *JobInput) { in.Salary.Min = -1 }},
		{"inverted range", func(in *JobInput) { in.Salary.Min = 500; in.Salary.Max = 100 }},
	}
	for _, tc := range cases {
		in := validJobInput()
		tc.mutate(&in)
		if _, err := uc.CreateJob(context.Background(), uuid.New(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestUpdateJob_OwnershipAndLifecycle(t *testing.T) {
	jobs := newMockJobRepo()
	uc := newJobsUsecase(jobs, newMockCache())
	employerID := uuid.New()

	created, err := uc.CreateJob(context.Background(), employerID, validJobInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := uc.UpdateJob(context.Background(), uuid.New(), created.ID, validJobInput()); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	in := validJobInput()
	in.Title = "Senior Backend Engineer"
	updated, err := uc.UpdateJob(context.Background(), employerID, created.ID, in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Senior Backend Engineer" {
		t.Fatalf("expected title updated")
	}
	if updated.Status != created.Status || !updated.PostedAt.Equal(created.PostedAt) {
		t.Fatalf("update must not change lifecycle fields")
	}

	if err := uc.CloseJob(context.Background(), employerID, created.ID); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := uc.UpdateJob(context.Background(), employerID, created.ID, in); !errors.Is(err, job.ErrClosed) {
		t.Fatalf("expected job.ErrClosed after close, got %v", err)
	}
}

func TestPublishJob_ActivatesDraft(t *testing.T) {
	jobs := newMockJobRepo()
	uc := newJobsUsecase(jobs, newMockCache())
	employerID := uuid.New()

	in := validJobInput()
	in.Draft = true
	draft, err := uc.CreateJob(context.Background(), employerID, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	later := fixedNow().Add(48 * time.Hour)
	uc.now = func() time.Time { return later }

	published, err := uc.PublishJob(context.Background(), employerID, draft.ID)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if published.Status != job.StatusActive {
		t.Fatalf("expected active, got %s", published.Status)
	}
	if !published.PostedAt.Equal(later) {
		t.Fatalf("expected posted_at reset on publish")
	}

	again, err := uc.PublishJob(context.Background(), employerID, draft.ID)
	if err != nil {
		t.Fatalf("second publish: %v", err)
	}
	if !again.PostedAt.Equal(later) {
		t.Fatalf("publishing an active posting must be a no-op")
	}
}

func TestCloseJob_Idempotent(t *testing.T) {
	jobs := newMockJobRepo()
	uc := newJobsUsecase(jobs, newMockCache())
	employerID := uuid.New()

	created, err := uc.CreateJob(context.Background(), employerID, validJobInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := uc.CloseJob(context.Background(), employerID, created.ID); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if jobs.statusSet[created.ID] != job.StatusClosed {
		t.Fatalf("expected closed status persisted")
	}
	if err := uc.CloseJob(context.Background(), employerID, created.ID); err != nil {
		t.Fatalf("second close should be a no-op, got %v", err)
	}
}

func TestBrowseJobs_CacheHit(t *testing.T) {
	filter := repository.JobFilter{Keyword: "engineer", Limit: defaultBrowseLimit}
	cached := []job.Job{openJob("Cached", "go")}

	cache := newMockCache()
	if err := cache.SetJSON(context.Background(), browseCacheKey(filter), cached, 0); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	jobs := newMockJobRepo()
	jobs.err = errors.New("repo must not be called")
	uc := NewJobListUsecase(jobs, cache, discardLogger())

	got, err := uc.BrowseJobs(context.Background(), filter)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Cached" {
		t.Fatalf("expected cached listing, got %+v", got)
	}
}

func TestBrowseJobs_MissFillsCache(t *testing.T) {
	jobs := newMockJobRepo()
	jobs.add(openJob("Fresh", "go"))

	cache := newMockCache()
	uc := NewJobListUsecase(jobs, cache, discardLogger())

	got, err := uc.BrowseJobs(context.Background(), repository.JobFilter{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 job, got %d", len(got))
	}
	if len(cache.setKeys) != 1 || !strings.HasPrefix(cache.setKeys[0], "jobs:browse:") {
		t.Fatalf("expected listing cached, got %v", cache.setKeys)
	}
}
