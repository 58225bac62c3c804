package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"worklink/internal/config"
	"worklink/internal/delivery/http/middleware"
	"worklink/internal/delivery/http/routes"
	"worklink/internal/mailer"
	"worklink/internal/pkg/jwt"
	"worklink/internal/repository"
	"worklink/internal/scheduler"
	"worklink/internal/usecase"
	"worklink/internal/ws"
)

type App struct {
	Fiber *fiber.App
}

// Bootstrap wires the whole process: infrastructure, repositories,
// usecases, routes, and the background workers (websocket hub, mail
// queue, expiry scheduler). The returned cleanup stops the workers and
// closes the container; call it after the HTTP server has shut down.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg, nil)
	if err != nil {
		return nil, nil, err
	}
	logger := container.Logger

	users := repository.NewPostgresUserRepository(container.DB)
	profiles := repository.NewPostgresProfileRepository(container.DB)
	jobs := repository.NewPostgresJobRepository(container.DB)
	applications := repository.NewPostgresApplicationRepository(container.DB)
	courses := repository.NewPostgresCourseRepository(container.DB)
	bookmarks := repository.NewPostgresBookmarkRepository(container.DB)
	notifications := repository.NewPostgresNotificationRepository(container.DB)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	workerCtx, stopWorkers := context.WithCancel(context.Background())

	hub := ws.NewHub(logger)
	go hub.Run()

	mailQueue := mailer.NewQueue(mailer.NewLogMailer(logger), cfg.Mailer, logger)
	mailQueue.Start(workerCtx)

	notifier := usecase.NewNotificationService(notifications, users, hub, mailQueue, logger)

	deps := routes.Deps{
		JWT:       jwtSvc,
		Logger:    logger,
		DBPing:    container.DB,
		RedisPing: container.Cache,

		Auth:            usecase.NewAuthUsecase(users, jwtSvc),
		Profiles:        usecase.NewProfileUsecase(profiles, container.Cache, logger),
		Jobs:            usecase.NewJobUsecase(jobs, container.Cache, logger),
		Browse:          usecase.NewJobListUsecase(jobs, container.Cache, logger),
		Applications:    usecase.NewApplicationUsecase(applications, jobs, container.Cache, notifier, logger),
		Courses:         usecase.NewCourseUsecase(courses, notifier),
		Bookmarks:       usecase.NewBookmarkUsecase(bookmarks, jobs),
		Notifications:   usecase.NewNotificationUsecase(notifications),
		Recommendations: usecase.NewJobRecommendationUsecase(jobs, profiles, applications, container.Cache, logger),
		Matching:        usecase.NewMatchingUsecase(jobs, profiles),
		Similar:         usecase.NewSimilarJobsUsecase(jobs),
		Admin:           usecase.NewAdminUsecase(users, jobs, applications, container.DB, container.Cache, container.Cache, notifier, logger),
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(logger).Middleware())

	routes.NewRegistry(deps).Register(f)
	f.Get("/ws/notifications", ws.NewHandler(hub, jwtSvc, logger).HandleNotificationsWS)

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched = scheduler.New(jobs, cfg.Scheduler, logger)
		if err := sched.Start(workerCtx); err != nil {
			stopWorkers()
			_ = container.Close()
			return nil, nil, err
		}
	}

	cleanup := func() error {
		if sched != nil {
			sched.Stop()
		}
		mailQueue.Stop()
		hub.Stop()
		stopWorkers()
		return container.Close()
	}

	return &App{Fiber: f}, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
