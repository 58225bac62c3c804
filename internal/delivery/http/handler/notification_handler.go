package handler

import (
	"errors"

	"worklink/internal/delivery/http/middleware"
	"worklink/internal/domain/notification"
	"worklink/internal/pkg/response"
	"worklink/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router, guards ...any) {
	if r == nil {
		return
	}
	grp := r.Group("/notifications")
	guardedRoute(grp.Get, "/", h.List, guards)
	guardedRoute(grp.Post, "/read-all", h.MarkAllRead, guards)
	guardedRoute(grp.Post, "/:notification_id/read", h.MarkRead, guards)
}

func (h *NotificationHandler) List(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit := parseQueryInt(c, "limit", 20)
	offset := parseQueryInt(c, "offset", 0)

	items, err := h.uc.ListNotifications(c.Context(), userID, limit, offset)
	if err != nil {
		return mapNotificationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	notificationID, err := uuid.Parse(c.Params("notification_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.MarkRead(c.Context(), userID, notificationID); err != nil {
		return mapNotificationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *NotificationHandler) MarkAllRead(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	if err := h.uc.MarkAllRead(c.Context(), userID); err != nil {
		return mapNotificationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapNotificationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, notification.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Notification not found", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
