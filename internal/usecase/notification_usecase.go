package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"worklink/internal/domain/notification"
	"worklink/internal/repository"
)

type NotificationUsecase interface {
	ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]notification.Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

type Notifications struct {
	notifications repository.NotificationRepository
}

func NewNotificationUsecase(notifications repository.NotificationRepository) *Notifications {
	return &Notifications{notifications: notifications}
}

func (u *Notifications) ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]notification.Notification, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.notifications.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return out, nil
}

func (u *Notifications) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := u.notifications.MarkRead(ctx, userID, id); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

func (u *Notifications) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := u.notifications.MarkAllRead(ctx, userID); err != nil {
		return fmt.Errorf("mark notifications read: %w", err)
	}
	return nil
}
