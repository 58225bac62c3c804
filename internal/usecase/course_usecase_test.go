package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"worklink/internal/domain/course"
	"worklink/internal/domain/notification"
)

func activeCourse(centerID uuid.UUID) course.Course {
	return course.Course{
		ID:       uuid.New(),
		CenterID: centerID,
		Title:    "Intro to Go",
		Status:   course.StatusActive,
	}
}

func TestInquire_NotifiesCenter(t *testing.T) {
	centerID := uuid.New()
	seekerID := uuid.New()
	repo := newMockCourseRepo()
	c := activeCourse(centerID)
	repo.byID[c.ID] = c

	notifier := &mockNotifier{}
	uc := NewCourseUsecase(repo, notifier)

	q, err := uc.Inquire(context.Background(), seekerID, c.ID, "  Is this beginner friendly?  ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if q.Message != "Is this beginner friendly?" {
		t.Fatalf("expected trimmed message, got %q", q.Message)
	}
	if len(repo.createdInquiries) != 1 {
		t.Fatalf("expected inquiry stored")
	}
	if len(notifier.calls) != 1 || notifier.calls[0].userID != centerID {
		t.Fatalf("expected center notified, got %+v", notifier.calls)
	}
	if notifier.calls[0].kind != notification.KindCourseInquiry {
		t.Fatalf("unexpected kind %q", notifier.calls[0].kind)
	}
}

func TestInquire_RejectsClosedCourseAndEmptyMessage(t *testing.T) {
	centerID := uuid.New()
	repo := newMockCourseRepo()
	closed := activeCourse(centerID)
	closed.Status = course.StatusClosed
	repo.byID[closed.ID] = closed

	uc := NewCourseUsecase(repo, &mockNotifier{})

	if _, err := uc.Inquire(context.Background(), uuid.New(), closed.ID, "hi"); !errors.Is(err, course.ErrNotFound) {
		t.Fatalf("expected closed course treated as absent, got %v", err)
	}

	open := activeCourse(centerID)
	repo.byID[open.ID] = open
	if _, err := uc.Inquire(context.Background(), uuid.New(), open.ID, "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank message, got %v", err)
	}
}

func TestUpdateCourse_NonOwnerForbidden(t *testing.T) {
	repo := newMockCourseRepo()
	c := activeCourse(uuid.New())
	repo.byID[c.ID] = c

	uc := NewCourseUsecase(repo, &mockNotifier{})
	_, err := uc.UpdateCourse(context.Background(), uuid.New(), c.ID, CourseInput{Title: "New title"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCloseCourse_Idempotent(t *testing.T) {
	centerID := uuid.New()
	repo := newMockCourseRepo()
	c := activeCourse(centerID)
	repo.byID[c.ID] = c

	uc := NewCourseUsecase(repo, &mockNotifier{})
	if err := uc.CloseCourse(context.Background(), centerID, c.ID); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if len(repo.updated) != 1 || repo.updated[0].Status != course.StatusClosed {
		t.Fatalf("expected closed status persisted")
	}
	if err := uc.CloseCourse(context.Background(), centerID, c.ID); err != nil {
		t.Fatalf("second close should be a no-op, got %v", err)
	}
	if len(repo.updated) != 1 {
		t.Fatalf("expected no second update, got %d", len(repo.updated))
	}
}

func TestCreateCourse_Validation(t *testing.T) {
	uc := NewCourseUsecase(newMockCourseRepo(), &mockNotifier{})
	if _, err := uc.CreateCourse(context.Background(), uuid.New(), CourseInput{Title: " "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank title, got %v", err)
	}
	if _, err := uc.CreateCourse(context.Background(), uuid.New(), CourseInput{Title: "ok", Fee: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative fee, got %v", err)
	}
}
