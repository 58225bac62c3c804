package handler

import (
	"errors"

	"worklink/internal/delivery/http/middleware"
	"worklink/internal/domain/profile"
	"worklink/internal/domain/user"
	"worklink/internal/pkg/response"
	"worklink/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// ProfileHandler serves the caller's own profile. The payload shape depends
// on the account role; profiles are stored as documents, so requests bind
// straight into the domain types. Owner and timestamp fields are server-set.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router, guards ...any) {
	if r == nil {
		return
	}
	grp := r.Group("/profiles")
	guardedRoute(grp.Get, "/me", h.GetMe, guards)
	guardedRoute(grp.Put, "/me", h.UpdateMe, guards)
}

func (h *ProfileHandler) GetMe(c fiber.Ctx) error {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var (
		data any
		err  error
	)
	switch role {
	case user.RoleSeeker:
		data, err = h.uc.GetSeekerProfile(c.Context(), userID)
	case user.RoleEmployer:
		data, err = h.uc.GetEmployerProfile(c.Context(), userID)
	case user.RoleTrainingCenter:
		data, err = h.uc.GetCenterProfile(c.Context(), userID)
	default:
		return middleware.NewAppError(fiber.StatusForbidden, "No profile for this role", nil, nil)
	}
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *ProfileHandler) UpdateMe(c fiber.Ctx) error {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var (
		data any
		err  error
	)
	switch role {
	case user.RoleSeeker:
		var p profile.SeekerProfile
		if bindErr := c.Bind().Body(&p); bindErr != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, bindErr)
		}
		data, err = h.uc.UpsertSeekerProfile(c.Context(), userID, p)
	case user.RoleEmployer:
		var p profile.EmployerProfile
		if bindErr := c.Bind().Body(&p); bindErr != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, bindErr)
		}
		data, err = h.uc.UpsertEmployerProfile(c.Context(), userID, p)
	case user.RoleTrainingCenter:
		var p profile.CenterProfile
		if bindErr := c.Bind().Body(&p); bindErr != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, bindErr)
		}
		data, err = h.uc.UpsertCenterProfile(c.Context(), userID, p)
	default:
		return middleware.NewAppError(fiber.StatusForbidden, "No profile for this role", nil, nil)
	}
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func callerIdentity(c fiber.Ctx) (uuid.UUID, string, bool) {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, "", false
	}
	role, ok := c.Locals(middleware.CtxRoleKey).(string)
	if !ok {
		return uuid.Nil, "", false
	}
	return userID, role, true
}

func mapProfileUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, profile.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
