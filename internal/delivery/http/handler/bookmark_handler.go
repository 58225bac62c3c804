package handler

import (
	"worklink/internal/delivery/http/middleware"
	"worklink/internal/pkg/response"
	"worklink/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type BookmarkHandler struct {
	uc usecase.BookmarkUsecase
}

func NewBookmarkHandler(uc usecase.BookmarkUsecase) *BookmarkHandler {
	return &BookmarkHandler{uc: uc}
}

func (h *BookmarkHandler) RegisterRoutes(r fiber.Router, guards ...any) {
	if r == nil {
		return
	}
	grp := r.Group("/bookmarks")
	guardedRoute(grp.Get, "/", h.List, guards)
	guardedRoute(grp.Post, "/:job_id", h.Save, guards)
	guardedRoute(grp.Delete, "/:job_id", h.Remove, guards)
}

func (h *BookmarkHandler) Save(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.SaveBookmark(c.Context(), userID, jobID); err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Created(c, response.MessageCreated, nil)
}

func (h *BookmarkHandler) Remove(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.RemoveBookmark(c.Context(), userID, jobID); err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *BookmarkHandler) List(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit := parseQueryInt(c, "limit", 20)
	offset := parseQueryInt(c, "offset", 0)

	items, err := h.uc.ListBookmarks(c.Context(), userID, limit, offset)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, jobResponsesFromDomain(items))
}
