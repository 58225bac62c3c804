package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"worklink/internal/domain/job"
	"worklink/internal/domain/profile"
	"worklink/internal/repository"
)

const maxProfileSkills = 50

type ProfileUsecase interface {
	GetSeekerProfile(ctx context.Context, userID uuid.UUID) (profile.SeekerProfile, error)
	UpsertSeekerProfile(ctx context.Context, userID uuid.UUID, p profile.SeekerProfile) (profile.SeekerProfile, error)

	GetEmployerProfile(ctx context.Context, userID uuid.UUID) (profile.EmployerProfile, error)
	UpsertEmployerProfile(ctx context.Context, userID uuid.UUID, p profile.EmployerProfile) (profile.EmployerProfile, error)

	GetCenterProfile(ctx context.Context, userID uuid.UUID) (profile.CenterProfile, error)
	UpsertCenterProfile(ctx context.Context, userID uuid.UUID, p profile.CenterProfile) (profile.CenterProfile, error)
}

type Profiles struct {
	profiles repository.ProfileRepository
	cache    Cache
	logger   *log.Logger
	now      func() time.Time
}

func NewProfileUsecase(profiles repository.ProfileRepository, cache Cache, logger *log.Logger) *Profiles {
	if logger == nil {
		logger = log.Default()
	}
	return &Profiles{profiles: profiles, cache: orNoopCache(cache), logger: logger, now: time.Now}
}

func (u *Profiles) GetSeekerProfile(ctx context.Context, userID uuid.UUID) (profile.SeekerProfile, error) {
	if userID == uuid.Nil {
		return profile.SeekerProfile{}, ErrUnauthorized
	}
	p, err := u.profiles.FindBySeekerID(ctx, userID)
	if err != nil {
		return profile.SeekerProfile{}, fmt.Errorf("load seeker profile: %w", err)
	}
	return p, nil
}

// UpsertSeekerProfile replaces the stored document. The recommendation cache
// for this seeker is dropped because every factor reads from the profile.
func (u *Profiles) UpsertSeekerProfile(ctx context.Context, userID uuid.UUID, p profile.SeekerProfile) (profile.SeekerProfile, error) {
	if userID == uuid.Nil {
		return profile.SeekerProfile{}, ErrUnauthorized
	}

	p.UserID = userID
	p.Headline = strings.TrimSpace(p.Headline)
	p.Skills = cleanStrings(p.Skills, maxProfileSkills)
	p.PreferredTypes = cleanStrings(p.PreferredTypes, 10)
	for _, t := range p.PreferredTypes {
		if !job.ValidType(t) {
			return profile.SeekerProfile{}, ErrInvalidInput
		}
	}
	for _, w := range p.WorkHistory {
		if w.End != nil && w.End.Before(w.Start) {
			return profile.SeekerProfile{}, ErrInvalidInput
		}
	}
	if p.ExpectedSalary.Min < 0 || p.ExpectedSalary.Max < 0 {
		return profile.SeekerProfile{}, ErrInvalidInput
	}
	p.UpdatedAt = u.now()

	if err := u.profiles.UpsertSeeker(ctx, p); err != nil {
		return profile.SeekerProfile{}, fmt.Errorf("upsert seeker profile: %w", err)
	}
	if err := u.cache.DeleteByPattern(ctx, recommendationsCachePattern(userID)); err != nil {
		u.logger.Printf("[Profiles] Cache invalidation failed: %v", err)
	}
	return p, nil
}

func (u *Profiles) GetEmployerProfile(ctx context.Context, userID uuid.UUID) (profile.EmployerProfile, error) {
	if userID == uuid.Nil {
		return profile.EmployerProfile{}, ErrUnauthorized
	}
	p, err := u.profiles.FindEmployerByUserID(ctx, userID)
	if err != nil {
		return profile.EmployerProfile{}, fmt.Errorf("load employer profile: %w", err)
	}
	return p, nil
}

func (u *Profiles) UpsertEmployerProfile(ctx context.Context, userID uuid.UUID, p profile.EmployerProfile) (profile.EmployerProfile, error) {
	if userID == uuid.Nil {
		return profile.EmployerProfile{}, ErrUnauthorized
	}
	p.UserID = userID
	p.CompanyName = strings.TrimSpace(p.CompanyName)
	if p.CompanyName == "" {
		return profile.EmployerProfile{}, ErrInvalidInput
	}
	p.UpdatedAt = u.now()

	if err := u.profiles.UpsertEmployer(ctx, p); err != nil {
		return profile.EmployerProfile{}, fmt.Errorf("upsert employer profile: %w", err)
	}
	return p, nil
}

func (u *Profiles) GetCenterProfile(ctx context.Context, userID uuid.UUID) (profile.CenterProfile, error) {
	if userID == uuid.Nil {
		return profile.CenterProfile{}, ErrUnauthorized
	}
	p, err := u.profiles.FindCenterByUserID(ctx, userID)
	if err != nil {
		return profile.CenterProfile{}, fmt.Errorf("load center profile: %w", err)
	}
	return p, nil
}

func (u *Profiles) UpsertCenterProfile(ctx context.Context, userID uuid.UUID, p profile.CenterProfile) (profile.CenterProfile, error) {
	if userID == uuid.Nil {
		return profile.CenterProfile{}, ErrUnauthorized
	}
	p.UserID = userID
	p.CenterName = strings.TrimSpace(p.CenterName)
	if p.CenterName == "" {
		return profile.CenterProfile{}, ErrInvalidInput
	}
	p.UpdatedAt = u.now()

	if err := u.profiles.UpsertCenter(ctx, p); err != nil {
		return profile.CenterProfile{}, fmt.Errorf("upsert center profile: %w", err)
	}
	return p, nil
}

// cleanStrings trims entries, drops blanks, and caps the slice length.
func cleanStrings(in []string, max int) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
		if len(out) >= max {
			break
		}
	}
	return out
}
