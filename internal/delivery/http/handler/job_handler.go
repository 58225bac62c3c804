package handler

import (
	"errors"
	"strconv"
	"time"

	"worklink/internal/delivery/http/dto"
	"worklink/internal/delivery/http/middleware"
	"worklink/internal/domain/job"
	"worklink/internal/pkg/response"
	"worklink/internal/repository"
	"worklink/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobHandler struct {
	jobs   usecase.JobUsecase
	browse usecase.JobListUsecase
}

type jobLocationRequest struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Remote  bool   `json:"remote"`
}

type jobSalaryRequest struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

type jobRequest struct {
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	EmploymentType string             `json:"employment_type"`
	Skills         []string           `json:"skills"`
	Location       jobLocationRequest `json:"location"`
	Salary         jobSalaryRequest   `json:"salary"`
	ExpiresAt      *time.Time         `json:"expires_at"`
	Draft          bool               `json:"draft"`
}

func (r jobRequest) toInput() usecase.JobInput {
	return usecase.JobInput{
		Title:          r.Title,
		Description:    r.Description,
		EmploymentType: r.EmploymentType,
		Skills:         r.Skills,
		Location: job.Location{
			City:    r.Location.City,
			Country: r.Location.Country,
			Remote:  r.Location.Remote,
		},
		Salary: job.Salary{
			Min:      r.Salary.Min,
			Max:      r.Salary.Max,
			Currency: r.Salary.Currency,
		},
		ExpiresAt: r.ExpiresAt,
		Draft:     r.Draft,
	}
}

func NewJobHandler(jobs usecase.JobUsecase, browse usecase.JobListUsecase) *JobHandler {
	return &JobHandler{jobs: jobs, browse: browse}
}

// RegisterPublicRoutes mounts the unauthenticated read side. The :job_id
// wildcard must be registered after every exact /jobs path, so callers mount
// these routes last.
func (h *JobHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/", h.Browse)
	grp.Get("/:job_id", h.Get)
}

func (h *JobHandler) RegisterEmployerRoutes(r fiber.Router, guards ...any) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	guardedRoute(grp.Get, "/mine", h.ListMine, guards)
	guardedRoute(grp.Post, "/", h.Create, guards)
	guardedRoute(grp.Put, "/:job_id", h.Update, guards)
	guardedRoute(grp.Post, "/:job_id/publish", h.Publish, guards)
	guardedRoute(grp.Post, "/:job_id/close", h.Close, guards)
}

func (h *JobHandler) Browse(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	remote, err := parseQueryBool(c, "remote")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.browse.BrowseJobs(c.Context(), repository.JobFilter{
		Keyword:        c.Query("keyword"),
		City:           c.Query("city"),
		Country:        c.Query("country"),
		Remote:         remote,
		EmploymentType: c.Query("employment_type"),
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, jobResponsesFromDomain(items))
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.jobs.GetJob(c.Context(), jobID)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, jobResponseFromDomain(j))
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	employerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.jobs.CreateJob(c.Context(), employerID, req.toInput())
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Created(c, response.MessageCreated, jobResponseFromDomain(j))
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	employerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.jobs.UpdateJob(c.Context(), employerID, jobID, req.toInput())
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, jobResponseFromDomain(j))
}

func (h *JobHandler) Publish(c fiber.Ctx) error {
	employerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.jobs.PublishJob(c.Context(), employerID, jobID)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, jobResponseFromDomain(j))
}

func (h *JobHandler) Close(c fiber.Ctx) error {
	employerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.jobs.CloseJob(c.Context(), employerID, jobID); err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *JobHandler) ListMine(c fiber.Ctx) error {
	employerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit := parseQueryInt(c, "limit", 20)
	offset := parseQueryInt(c, "offset", 0)

	items, err := h.jobs.ListMyJobs(c.Context(), employerID, limit, offset)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, jobResponsesFromDomain(items))
}

func jobResponseFromDomain(j job.Job) dto.JobResponse {
	posted := ""
	if !j.PostedAt.IsZero() {
		posted = j.PostedAt.UTC().Format(time.RFC3339)
	}
	var expires *string
	if j.ExpiresAt != nil && !j.ExpiresAt.IsZero() {
		s := j.ExpiresAt.UTC().Format(time.RFC3339)
		expires = &s
	}

	return dto.JobResponse{
		ID:             j.ID,
		EmployerID:     j.EmployerID,
		Title:          j.Title,
		Description:    j.Description,
		EmploymentType: j.EmploymentType,
		Skills:         j.Skills,
		Location: dto.JobLocationResponse{
			City:    j.Location.City,
			Country: j.Location.Country,
			Remote:  j.Location.Remote,
		},
		Salary: dto.JobSalaryResponse{
			Min:      j.Salary.Min,
			Max:      j.Salary.Max,
			Currency: j.Salary.Currency,
		},
		Status:     j.Status,
		PostedDate: posted,
		ExpiresAt:  expires,
	}
}

func jobResponsesFromDomain(items []job.Job) []dto.JobResponse {
	out := make([]dto.JobResponse, 0, len(items))
	for _, j := range items {
		out = append(out, jobResponseFromDomain(j))
	}
	return out
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func parseQueryBool(c fiber.Ctx, key string) (bool, error) {
	s := c.Query(key)
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}

func mapJobUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
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
