package handler

import (
	"errors"

	"worklink/internal/delivery/http/middleware"
	"worklink/internal/domain/course"
	"worklink/internal/pkg/response"
	"worklink/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CourseHandler struct {
	uc usecase.CourseUsecase
}

type courseRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Skills        []string `json:"skills"`
	DurationWeeks int      `json:"duration_weeks"`
	Fee           int      `json:"fee"`
}

type inquiryRequest struct {
	Message string `json:"message"`
}

func (r courseRequest) toInput() usecase.CourseInput {
	return usecase.CourseInput{
		Title:         r.Title,
		Description:   r.Description,
		Skills:        r.Skills,
		DurationWeeks: r.DurationWeeks,
		Fee:           r.Fee,
	}
}

func NewCourseHandler(uc usecase.CourseUsecase) *CourseHandler {
	return &CourseHandler{uc: uc}
}

// RegisterPublicRoutes mounts the open catalog. Mount after the exact
// /courses paths so the :course_id wildcard does not shadow them.
func (h *CourseHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/courses")
	grp.Get("/", h.ListActive)
	grp.Get("/:course_id", h.Get)
}

func (h *CourseHandler) RegisterCenterRoutes(r fiber.Router, guards ...any) {
	if r == nil {
		return
	}
	grp := r.Group("/courses")
	guardedRoute(grp.Get, "/mine", h.ListMine, guards)
	guardedRoute(grp.Get, "/inquiries", h.ListInquiries, guards)
	guardedRoute(grp.Post, "/", h.Create, guards)
	guardedRoute(grp.Put, "/:course_id", h.Update, guards)
	guardedRoute(grp.Post, "/:course_id/close", h.Close, guards)
}

func (h *CourseHandler) RegisterSeekerRoutes(r fiber.Router, guards ...any) {
	if r == nil {
		return
	}
	grp := r.Group("/courses")
	guardedRoute(grp.Post, "/:course_id/inquiries", h.Inquire, guards)
}

func (h *CourseHandler) Create(c fiber.Ctx) error {
	centerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req courseRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	crs, err := h.uc.CreateCourse(c.Context(), centerID, req.toInput())
	if err != nil {
		return mapCourseUsecaseError(err)
	}

	return response.Created(c, response.MessageCreated, crs)
}

func (h *CourseHandler) Update(c fiber.Ctx) error {
	centerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req courseRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	crs, err := h.uc.UpdateCourse(c.Context(), centerID, courseID, req.toInput())
	if err != nil {
		return mapCourseUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, crs)
}

func (h *CourseHandler) Close(c fiber.Ctx) error {
	centerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.CloseCourse(c.Context(), centerID, courseID); err != nil {
		return mapCourseUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *CourseHandler) Get(c fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	crs, err := h.uc.GetCourse(c.Context(), courseID)
	if err != nil {
		return mapCourseUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, crs)
}

func (h *CourseHandler) ListActive(c fiber.Ctx) error {
	limit := parseQueryInt(c, "limit", 20)
	offset := parseQueryInt(c, "offset", 0)

	items, err := h.uc.ListActiveCourses(c.Context(), limit, offset)
	if err != nil {
		return mapCourseUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *CourseHandler) ListMine(c fiber.Ctx) error {
	centerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit := parseQueryInt(c, "limit", 20)
	offset := parseQueryInt(c, "offset", 0)

	items, err := h.uc.ListMyCourses(c.Context(), centerID, limit, offset)
	if err != nil {
		return mapCourseUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *CourseHandler) Inquire(c fiber.Ctx) error {
	seekerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req inquiryRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	inq, err := h.uc.Inquire(c.Context(), seekerID, courseID, req.Message)
	if err != nil {
		return mapCourseUsecaseError(err)
	}

	return response.Created(c, response.MessageCreated, inq)
}

func (h *CourseHandler) ListInquiries(c fiber.Ctx) error {
	centerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit := parseQueryInt(c, "limit", 20)
	offset := parseQueryInt(c, "offset", 0)

	items, err := h.uc.ListInquiries(c.Context(), centerID, limit, offset)
	if err != nil {
		return mapCourseUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func mapCourseUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, course.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Course not found", nil, err)
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
