package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"worklink/internal/domain/job"
	"worklink/internal/domain/profile"
)

func TestUpsertSeekerProfile_SetsOwnerAndDropsCache(t *testing.T) {
	repo := &mockProfileRepo{}
	cache := newMockCache()
	uc := NewProfileUsecase(repo, cache, discardLogger())
	uc.now = fixedNow
	userID := uuid.New()

	got, err := uc.UpsertSeekerProfile(context.Background(), userID, profile.SeekerProfile{
		Headline: "  Backend dev  ",
		Skills:   []string{"go", "", "sql"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.UserID != userID {
		t.Fatalf("expected owner forced to caller")
	}
	if got.Headline != "Backend dev" || len(got.Skills) != 2 {
		t.Fatalf("expected normalized fields, got %+v", got)
	}
	if !got.UpdatedAt.Equal(fixedNow()) {
		t.Fatalf("expected updated_at stamped")
	}
	if len(repo.upsertedSeekers) != 1 {
		t.Fatalf("expected one upsert, got %d", len(repo.upsertedSeekers))
	}
	if len(cache.deletedPatterns) != 1 || !strings.Contains(cache.deletedPatterns[0], userID.String()) {
		t.Fatalf("expected recommendation cache dropped for %s, got %v", userID, cache.deletedPatterns)
	}
}

func TestUpsertSeekerProfile_RejectsInvalidInput(t *testing.T) {
	uc := NewProfileUsecase(&mockProfileRepo{}, newMockCache(), discardLogger())
	userID := uuid.New()

	_, err := uc.UpsertSeekerProfile(context.Background(), userID, profile.SeekerProfile{
		PreferredTypes: []string{"gig"},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown type, got %v", err)
	}

	end := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err = uc.UpsertSeekerProfile(context.Background(), userID, profile.SeekerProfile{
		WorkHistory: []profile.Experience{{Start: end.AddDate(2, 0, 0), End: &end}},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for inverted range, got %v", err)
	}
}

func TestUpsertSeekerProfile_AcceptsValidPreferredTypes(t *testing.T) {
	uc := NewProfileUsecase(&mockProfileRepo{}, newMockCache(), discardLogger())
	_, err := uc.UpsertSeekerProfile(context.Background(), uuid.New(), profile.SeekerProfile{
		PreferredTypes: []string{job.TypeRemote, job.TypeFullTime},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestGetSeekerProfile_NotFound(t *testing.T) {
	uc := NewProfileUsecase(&mockProfileRepo{seekerErr: profile.ErrNotFound}, newMockCache(), discardLogger())
	_, err := uc.GetSeekerProfile(context.Background(), uuid.New())
	if !errors.Is(err, profile.ErrNotFound) {
		t.Fatalf("expected profile.ErrNotFound, got %v", err)
	}
}

func TestUpsertEmployerProfile_RequiresCompanyName(t *testing.T) {
	repo := &mockProfileRepo{}
	uc := NewProfileUsecase(repo, newMockCache(), discardLogger())

	_, err := uc.UpsertEmployerProfile(context.Background(), uuid.New(), profile.EmployerProfile{CompanyName: "  "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	got, err := uc.UpsertEmployerProfile(context.Background(), uuid.New(), profile.EmployerProfile{CompanyName: "Acme"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.CompanyName != "Acme" || len(repo.upsertedEmployers) != 1 {
		t.Fatalf("expected employer profile stored")
	}
}
