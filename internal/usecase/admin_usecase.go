package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"worklink/internal/domain/job"
	"worklink/internal/domain/notification"
	"worklink/internal/domain/user"
	"worklink/internal/repository"
)

type PlatformStats struct {
	UsersByRole       map[string]int `json:"users_by_role"`
	TotalJobs         int            `json:"total_jobs"`
	TotalApplications int            `json:"total_applications"`
	DatabaseHealthy   bool           `json:"database_healthy"`
	RedisHealthy      bool           `json:"redis_healthy"`
	ServerTime        time.Time      `json:"server_time"`
}

type AdminUsecase interface {
	ListUsers(ctx context.Context, role string, limit, offset int) ([]user.User, error)
	SetUserActive(ctx context.Context, adminID, userID uuid.UUID, active bool) error
	ForceCloseJob(ctx context.Context, jobID uuid.UUID) error
	GetPlatformStats(ctx context.Context) (PlatformStats, error)
}

type Admin struct {
	users        repository.UserRepository
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
	db           interface{ Ping(ctx context.Context) error }
	redis        interface{ Ping(ctx context.Context) error }
	cache        Cache
	notifier     Notifier
	logger       *log.Logger
	now          func() time.Time
}

func NewAdminUsecase(
	users repository.UserRepository,
	jobs repository.JobRepository,
	applications repository.ApplicationRepository,
	db interface{ Ping(ctx context.Context) error },
	redis interface{ Ping(ctx context.Context) error },
	cache Cache,
	notifier Notifier,
	logger *log.Logger,
) *Admin {
	if logger == nil {
		logger = log.Default()
	}
	return &Admin{
		users:        users,
		jobs:         jobs,
		applications: applications,
		db:           db,
		redis:        redis,
		cache:        orNoopCache(cache),
		notifier:     orNoopNotifier(notifier),
		logger:       logger,
		now:          time.Now,
	}
}

func (u *Admin) ListUsers(ctx context.Context, role string, limit, offset int) ([]user.User, error) {
	if role != "" && !user.ValidRole(role) && role != user.RoleAdmin {
		return nil, ErrInvalidInput
	}
	out, err := u.users.ListByRole(ctx, role, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	for i := range out {
		out[i].PasswordHash = ""
	}
	return out, nil
}

func (u *Admin) SetUserActive(ctx context.Context, adminID, userID uuid.UUID, active bool) error {
	if adminID == userID {
		return ErrInvalidInput
	}
	if err := u.users.SetActive(ctx, userID, active); err != nil {
		return fmt.Errorf("set user active: %w", err)
	}
	return nil
}

// ForceCloseJob closes any posting regardless of owner, idempotently, and
// tells the employer why their posting disappeared.
func (u *Admin) ForceCloseJob(ctx context.Context, jobID uuid.UUID) error {
	existing, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("load job: %w", err)
	}
	if existing.Status == job.StatusClosed {
		return nil
	}

	if err := u.jobs.UpdateStatus(ctx, jobID, job.StatusClosed); err != nil {
		return fmt.Errorf("close job: %w", err)
	}
	if err := u.cache.DeleteByPattern(ctx, browseCachePrefix+"*"); err != nil {
		u.logger.Printf("[Admin] Cache invalidation failed: %v", err)
	}
	u.notifier.Notify(ctx, existing.EmployerID, notification.KindJobClosed,
		fmt.Sprintf("Your posting %q was closed by an administrator", existing.Title))
	return nil
}

func (u *Admin) GetPlatformStats(ctx context.Context) (PlatformStats, error) {
	byRole, err := u.users.CountByRole(ctx)
	if err != nil {
		return PlatformStats{}, fmt.Errorf("count users: %w", err)
	}
	totalJobs, err := u.jobs.Count(ctx)
	if err != nil {
		return PlatformStats{}, fmt.Errorf("count jobs: %w", err)
	}
	totalApplications, err := u.applications.Count(ctx)
	if err != nil {
		return PlatformStats{}, fmt.Errorf("count applications: %w", err)
	}

	databaseHealthy := false
	if u.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		databaseHealthy = u.db.Ping(pingCtx) == nil
		cancel()
	}
	redisHealthy := false
	if u.redis != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		redisHealthy = u.redis.Ping(pingCtx) == nil
		cancel()
	}

	return PlatformStats{
		UsersByRole:       byRole,
		TotalJobs:         totalJobs,
		TotalApplications: totalApplications,
		DatabaseHealthy:   databaseHealthy,
		RedisHealthy:      redisHealthy,
		ServerTime:        u.now().UTC(),
	}, nil
}
