package handler

import (
	"context"
	"time"

	"worklink/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const healthPingTimeout = 2 * time.Second

// HealthHandler serves liveness and readiness. Liveness always answers ok;
// readiness pings the backing stores. Redis being down does not fail
// readiness because every cache path degrades to the database.
type HealthHandler struct {
	db    interface{ Ping(ctx context.Context) error }
	redis interface{ Ping(ctx context.Context) error }
}

func NewHealthHandler(db, redis interface{ Ping(ctx context.Context) error }) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Live)
	r.Get("/health/ready", h.Ready)
}

func (h *HealthHandler) Live(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *HealthHandler) Ready(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), healthPingTimeout)
	defer cancel()

	dbHealthy := h.db != nil && h.db.Ping(ctx) == nil
	redisHealthy := h.redis != nil && h.redis.Ping(ctx) == nil

	data := map[string]any{
		"database": dbHealthy,
		"redis":    redisHealthy,
	}
	if !dbHealthy {
		return response.Error(c, fiber.StatusServiceUnavailable, "not ready", data)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
