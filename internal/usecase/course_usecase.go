package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"worklink/internal/domain/course"
	"worklink/internal/domain/notification"
	"worklink/internal/repository"
)

const maxInquiryLength = 2000

type CourseInput struct {
	Title         string
	Description   string
	Skills        []string
	DurationWeeks int
	Fee           int
}

type CourseUsecase interface {
	CreateCourse(ctx context.Context, centerID uuid.UUID, in CourseInput) (course.Course, error)
	UpdateCourse(ctx context.Context, centerID, courseID uuid.UUID, in CourseInput) (course.Course, error)
	CloseCourse(ctx context.Context, centerID, courseID uuid.UUID) error
	GetCourse(ctx context.Context, id uuid.UUID) (course.Course, error)
	ListActiveCourses(ctx context.Context, limit, offset int) ([]course.Course, error)
	ListMyCourses(ctx context.Context, centerID uuid.UUID, limit, offset int) ([]course.Course, error)

	Inquire(ctx context.Context, seekerID, courseID uuid.UUID, message string) (course.Inquiry, error)
	ListInquiries(ctx context.Context, centerID uuid.UUID, limit, offset int) ([]course.Inquiry, error)
}

type Courses struct {
	courses  repository.CourseRepository
	notifier Notifier
	now      func() time.Time
}

func NewCourseUsecase(courses repository.CourseRepository, notifier Notifier) *Courses {
	return &Courses{courses: courses, notifier: orNoopNotifier(notifier), now: time.Now}
}

func (u *Courses) CreateCourse(ctx context.Context, centerID uuid.UUID, in CourseInput) (course.Course, error) {
	if centerID == uuid.Nil {
		return course.Course{}, ErrUnauthorized
	}
	c, err := buildCourse(in)
	if err != nil {
		return course.Course{}, err
	}
	c.ID = uuid.New()
	c.CenterID = centerID
	c.Status = course.StatusActive
	c.CreatedAt = u.now()

	if err := u.courses.Create(ctx, c); err != nil {
		return course.Course{}, fmt.Errorf("create course: %w", err)
	}
	return c, nil
}

func (u *Courses) UpdateCourse(ctx context.Context, centerID, courseID uuid.UUID, in CourseInput) (course.Course, error) {
	existing, err := u.ownedCourse(ctx, centerID, courseID)
	if err != nil {
		return course.Course{}, err
	}

	updated, err := buildCourse(in)
	if err != nil {
		return course.Course{}, err
	}
	updated.ID = existing.ID
	updated.CenterID = existing.CenterID
	updated.Status = existing.Status
	updated.CreatedAt = existing.CreatedAt

	if err := u.courses.Update(ctx, updated); err != nil {
		return course.Course{}, fmt.Errorf("update course: %w", err)
	}
	return updated, nil
}

// CloseCourse is idempotent, matching how postings close.
func (u *Courses) CloseCourse(ctx context.Context, centerID, courseID uuid.UUID) error {
	existing, err := u.ownedCourse(ctx, centerID, courseID)
	if err != nil {
		return err
	}
	if existing.Status == course.StatusClosed {
		return nil
	}
	existing.Status = course.StatusClosed
	if err := u.courses.Update(ctx, existing); err != nil {
		return fmt.Errorf("close course: %w", err)
	}
	return nil
}

func (u *Courses) GetCourse(ctx context.Context, id uuid.UUID) (course.Course, error) {
	c, err := u.courses.FindByID(ctx, id)
	if err != nil {
		return course.Course{}, fmt.Errorf("load course: %w", err)
	}
	return c, nil
}

func (u *Courses) ListActiveCourses(ctx context.Context, limit, offset int) ([]course.Course, error) {
	out, err := u.courses.ListActive(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return out, nil
}

func (u *Courses) ListMyCourses(ctx context.Context, centerID uuid.UUID, limit, offset int) ([]course.Course, error) {
	if centerID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.courses.ListByCenter(ctx, centerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list center courses: %w", err)
	}
	return out, nil
}

// Inquire records a seeker's interest in an active course and pings the
// center that runs it.
func (u *Courses) Inquire(ctx context.Context, seekerID, courseID uuid.UUID, message string) (course.Inquiry, error) {
	if seekerID == uuid.Nil {
		return course.Inquiry{}, ErrUnauthorized
	}
	message = strings.TrimSpace(message)
	if message == "" || len(message) > maxInquiryLength {
		return course.Inquiry{}, ErrInvalidInput
	}

	c, err := u.courses.FindByID(ctx, courseID)
	if err != nil {
		return course.Inquiry{}, fmt.Errorf("load course: %w", err)
	}
	if c.Status != course.StatusActive {
		return course.Inquiry{}, course.ErrNotFound
	}

	q := course.Inquiry{
		ID:        uuid.New(),
		CourseID:  c.ID,
		SeekerID:  seekerID,
		Message:   message,
		CreatedAt: u.now(),
	}
	if err := u.courses.CreateInquiry(ctx, q); err != nil {
		return course.Inquiry{}, fmt.Errorf("create inquiry: %w", err)
	}

	u.notifier.Notify(ctx, c.CenterID, notification.KindCourseInquiry,
		fmt.Sprintf("New inquiry about %q", c.Title))
	return q, nil
}

func (u *Courses) ListInquiries(ctx context.Context, centerID uuid.UUID, limit, offset int) ([]course.Inquiry, error) {
	if centerID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.courses.ListInquiriesByCenter(ctx, centerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	return out, nil
}

func (u *Courses) ownedCourse(ctx context.Context, centerID, courseID uuid.UUID) (course.Course, error) {
	if centerID == uuid.Nil {
		return course.Course{}, ErrUnauthorized
	}
	existing, err := u.courses.FindByID(ctx, courseID)
	if err != nil {
		return course.Course{}, fmt.Errorf("load course: %w", err)
	}
	if existing.CenterID != centerID {
		return course.Course{}, ErrForbidden
	}
	return existing, nil
}

func buildCourse(in CourseInput) (course.Course, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return course.Course{}, ErrInvalidInput
	}
	if in.DurationWeeks < 0 || in.Fee < 0 {
		return course.Course{}, ErrInvalidInput
	}
	return course.Course{
		Title:         title,
		Description:   strings.TrimSpace(in.Description),
		Skills:        cleanStrings(in.Skills, maxProfileSkills),
		DurationWeeks: in.DurationWeeks,
		Fee:           in.Fee,
	}, nil
}
