package handler

import (
	"errors"

	"worklink/internal/delivery/http/dto"
	"worklink/internal/delivery/http/middleware"
	"worklink/internal/domain/application"
	"worklink/internal/domain/job"
	"worklink/internal/pkg/response"
	"worklink/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type applyRequest struct {
	CoverNote string `json:"cover_note"`
}

type updateApplicationStatusRequest struct {
	Status string `json:"status"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterSeekerRoutes(r fiber.Router, guards ...any) {
	if r == nil {
		return
	}
	guardedRoute(r.Post, "/jobs/:job_id/applications", h.Apply, guards)
	guardedRoute(r.Get, "/applications/mine", h.ListMine, guards)
}

func (h *ApplicationHandler) RegisterEmployerRoutes(r fiber.Router, guards ...any) {
	if r == nil {
		return
	}
	guardedRoute(r.Get, "/jobs/:job_id/applications", h.ListForJob, guards)
}

// RegisterAuthedRoutes mounts the status transition shared by both sides:
// employers advance, seekers withdraw. The usecase decides who may do what.
func (h *ApplicationHandler) RegisterAuthedRoutes(r fiber.Router, guards ...any) {
	if r == nil {
		return
	}
	guardedRoute(r.Patch, "/applications/:application_id/status", h.UpdateStatus, guards)
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	seekerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	app, err := h.uc.Apply(c.Context(), seekerID, jobID, req.CoverNote)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Created(c, response.MessageCreated, applicationResponseFromDomain(app))
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	actorID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	applicationID, err := uuid.Parse(c.Params("application_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req updateApplicationStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	next, err := application.ParseStatus(req.Status)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown application status", nil, err)
	}

	app, err := h.uc.UpdateStatus(c.Context(), actorID, applicationID, next)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, applicationResponseFromDomain(app))
}

func (h *ApplicationHandler) ListMine(c fiber.Ctx) error {
	seekerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit := parseQueryInt(c, "limit", 20)
	offset := parseQueryInt(c, "offset", 0)

	items, err := h.uc.ListMine(c.Context(), seekerID, limit, offset)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, applicationResponsesFromDomain(items))
}

func (h *ApplicationHandler) ListForJob(c fiber.Ctx) error {
	employerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	limit := parseQueryInt(c, "limit", 20)
	offset := parseQueryInt(c, "offset", 0)

	items, err := h.uc.ListForJob(c.Context(), employerID, jobID, limit, offset)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, applicationResponsesFromDomain(items))
}

func applicationResponseFromDomain(app application.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:        app.ID,
		JobID:     app.JobID,
		SeekerID:  app.SeekerID,
		Status:    string(app.Status),
		CoverNote: app.CoverNote,
		CreatedAt: app.CreatedAt,
		UpdatedAt: app.UpdatedAt,
	}
}

func applicationResponsesFromDomain(items []application.Application) []dto.ApplicationResponse {
	out := make([]dto.ApplicationResponse, 0, len(items))
	for _, app := range items {
		out = append(out, applicationResponseFromDomain(app))
	}
	return out
}

func mapApplicationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, application.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, application.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusConflict, "Already applied to this job", nil, err)
	case errors.Is(err, application.ErrInvalidTransition):
		return middleware.NewAppError(fiber.StatusConflict, "Invalid status transition", nil, err)
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, job.ErrClosed):
		return middleware.NewAppError(fiber.StatusConflict, "Job closed", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
