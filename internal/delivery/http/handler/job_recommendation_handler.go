package handler

import (
	"errors"

	"worklink/internal/delivery/http/dto"
	"worklink/internal/delivery/http/middleware"
	"worklink/internal/pkg/response"
	"worklink/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobRecommendationHandler struct {
	uc usecase.JobRecommendationUsecase
}

func NewJobRecommendationHandler(uc usecase.JobRecommendationUsecase) *JobRecommendationHandler {
	return &JobRecommendationHandler{uc: uc}
}

func (h *JobRecommendationHandler) RegisterRoutes(r fiber.Router, guards ...any) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	guardedRoute(grp.Get, "/recommendations", h.GetRecommendations, guards)
}

func (h *JobRecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit := parseQueryInt(c, "limit", 0)

	items, err := h.uc.GetRecommendations(c.Context(), userID, limit)
	if err != nil {
		return mapJobRecommendationUsecaseError(err)
	}

	out := make([]dto.RecommendedJobResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.RecommendedJobResponse{
			Job:     jobResponseFromDomain(it.Job),
			Score:   it.Score,
			Reasons: it.Reasons,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapJobRecommendationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
