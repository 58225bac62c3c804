package routes

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"worklink/internal/delivery/http/handler"
	"worklink/internal/delivery/http/middleware"
	"worklink/internal/pkg/jwt"
	"worklink/internal/usecase"
)

// Deps carries everything the route tree needs. The registry builds the
// handlers itself so wiring stays in one place.
type Deps struct {
	JWT    jwt.Service
	Logger *log.Logger

	DBPing    interface{ Ping(ctx context.Context) error }
	RedisPing interface{ Ping(ctx context.Context) error }

	Auth            usecase.AuthUsecase
	Profiles        usecase.ProfileUsecase
	Jobs            usecase.JobUsecase
	Browse          usecase.JobListUsecase
	Applications    usecase.ApplicationUsecase
	Courses         usecase.CourseUsecase
	Bookmarks       usecase.BookmarkUsecase
	Notifications   usecase.NotificationUsecase
	Recommendations usecase.JobRecommendationUsecase
	Matching        usecase.MatchingUsecase
	Similar         usecase.SimilarJobsUsecase
	Admin           usecase.AdminUsecase
}

type Registry struct {
	authMw *middleware.AuthMiddleware

	health          *handler.HealthHandler
	auth            *handler.AuthHandler
	profiles        *handler.ProfileHandler
	jobs            *handler.JobHandler
	applications    *handler.ApplicationHandler
	courses         *handler.CourseHandler
	bookmarks       *handler.BookmarkHandler
	notifications   *handler.NotificationHandler
	recommendations *handler.JobRecommendationHandler
	match           *handler.MatchHandler
	admin           *handler.AdminHandler
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{
		authMw: middleware.NewAuthMiddleware(deps.JWT),

		health:          handler.NewHealthHandler(deps.DBPing, deps.RedisPing),
		auth:            handler.NewAuthHandler(deps.Auth),
		profiles:        handler.NewProfileHandler(deps.Profiles),
		jobs:            handler.NewJobHandler(deps.Jobs, deps.Browse),
		applications:    handler.NewApplicationHandler(deps.Applications),
		courses:         handler.NewCourseHandler(deps.Courses),
		bookmarks:       handler.NewBookmarkHandler(deps.Bookmarks),
		notifications:   handler.NewNotificationHandler(deps.Notifications),
		recommendations: handler.NewJobRecommendationHandler(deps.Recommendations),
		match:           handler.NewMatchHandler(deps.Matching, deps.Similar),
		admin:           handler.NewAdminHandler(deps.Admin),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	r.registerV1(api.Group("/v1"))
}
