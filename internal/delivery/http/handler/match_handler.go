package handler

import (
	"errors"

	"worklink/internal/delivery/http/dto"
	"worklink/internal/delivery/http/middleware"
	"worklink/internal/domain/job"
	"worklink/internal/pkg/response"
	"worklink/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	matching usecase.MatchingUsecase
	similar  usecase.SimilarJobsUsecase
}

func NewMatchHandler(matching usecase.MatchingUsecase, similar usecase.SimilarJobsUsecase) *MatchHandler {
	return &MatchHandler{matching: matching, similar: similar}
}

// RegisterSeekerRoutes mounts the per-job match score for the caller.
func (h *MatchHandler) RegisterSeekerRoutes(r fiber.Router, guards ...any) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	guardedRoute(grp.Get, "/:job_id/match", h.GetMatch, guards)
}

// RegisterPublicRoutes mounts the similar-postings listing.
func (h *MatchHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/:job_id/similar", h.GetSimilar)
}

func (h *MatchHandler) GetMatch(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.matching.GetMatch(c.Context(), userID, jobID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	out := dto.MatchResponse{
		JobID:   res.JobID,
		Score:   res.Score,
		Reasons: res.Reasons,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *MatchHandler) GetSimilar(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	limit := parseQueryInt(c, "limit", 5)

	items, err := h.similar.GetSimilarJobs(c.Context(), jobID, limit)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, jobResponsesFromDomain(items))
}

func mapMatchUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
