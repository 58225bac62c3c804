package handler

import (
	"errors"

	"worklink/internal/delivery/http/dto"
	"worklink/internal/delivery/http/middleware"
	"worklink/internal/domain/job"
	"worklink/internal/domain/user"
	"worklink/internal/pkg/response"
	"worklink/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AdminHandler struct {
	uc usecase.AdminUsecase
}

type setUserActiveRequest struct {
	Active bool `json:"active"`
}

func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router, guards ...any) {
	if r == nil {
		return
	}
	guardedRoute(r.Get, "/users", h.ListUsers, guards)
	guardedRoute(r.Patch, "/users/:user_id/active", h.SetUserActive, guards)
	guardedRoute(r.Post, "/jobs/:job_id/close", h.ForceCloseJob, guards)
	guardedRoute(r.Get, "/stats", h.GetStats, guards)
}

func (h *AdminHandler) ListUsers(c fiber.Ctx) error {
	limit := parseQueryInt(c, "limit", 20)
	offset := parseQueryInt(c, "offset", 0)

	items, err := h.uc.ListUsers(c.Context(), c.Query("role"), limit, offset)
	if err != nil {
		return mapAdminUsecaseError(err)
	}

	out := make([]dto.UserResponse, 0, len(items))
	for _, usr := range items {
		out = append(out, dto.UserResponse{
			ID:        usr.ID,
			Email:     usr.Email,
			Role:      usr.Role,
			Active:    usr.Active,
			CreatedAt: usr.CreatedAt,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *AdminHandler) SetUserActive(c fiber.Ctx) error {
	adminID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req setUserActiveRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.SetUserActive(c.Context(), adminID, userID, req.Active); err != nil {
		return mapAdminUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *AdminHandler) ForceCloseJob(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.ForceCloseJob(c.Context(), jobID); err != nil {
		return mapAdminUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *AdminHandler) GetStats(c fiber.Ctx) error {
	stats, err := h.uc.GetPlatformStats(c.Context())
	if err != nil {
		return mapAdminUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, stats)
}

func mapAdminUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
