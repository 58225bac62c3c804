package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"worklink/internal/domain/job"
	"worklink/internal/repository"
)

type BookmarkUsecase interface {
	SaveBookmark(ctx context.Context, userID, jobID uuid.UUID) error
	RemoveBookmark(ctx context.Context, userID, jobID uuid.UUID) error
	ListBookmarks(ctx context.Context, userID uuid.UUID, limit, offset int) ([]job.Job, error)
}

type Bookmarks struct {
	bookmarks repository.BookmarkRepository
	jobs      repository.JobRepository
}

func NewBookmarkUsecase(bookmarks repository.BookmarkRepository, jobs repository.JobRepository) *Bookmarks {
	return &Bookmarks{bookmarks: bookmarks, jobs: jobs}
}

// SaveBookmark is idempotent; saving twice leaves one bookmark.
func (u *Bookmarks) SaveBookmark(ctx context.Context, userID, jobID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	j, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("load job: %w", err)
	}
	if j.Status == job.StatusDraft {
		return job.ErrNotFound
	}
	if err := u.bookmarks.Save(ctx, userID, jobID); err != nil {
		return fmt.Errorf("save bookmark: %w", err)
	}
	return nil
}

// RemoveBookmark is idempotent; removing an absent bookmark is a no-op.
func (u *Bookmarks) RemoveBookmark(ctx context.Context, userID, jobID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := u.bookmarks.Remove(ctx, userID, jobID); err != nil {
		return fmt.Errorf("remove bookmark: %w", err)
	}
	return nil
}

func (u *Bookmarks) ListBookmarks(ctx context.Context, userID uuid.UUID, limit, offset int) ([]job.Job, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.bookmarks.ListJobsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return out, nil
}
