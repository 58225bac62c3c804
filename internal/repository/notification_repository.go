package repository

import (
	"context"

	"worklink/internal/database"
	"worklink/internal/domain/notification"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	Create(ctx context.Context, n notification.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]notification.Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

type PostgresNotificationRepository struct {
	db database.DB
}

func NewPostgresNotificationRepository(db database.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

func (r *PostgresNotificationRepository) Create(ctx context.Context, n notification.Notification) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO notifications (id, user_id, kind, message, read, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		n.ID, n.UserID, n.Kind, n.Message, n.Read, n.CreatedAt,
	)
	return err
}

func (r *PostgresNotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]notification.Notification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, kind, message, read, created_at
		 FROM notifications
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, clampPage(limit), clampOffset(offset),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notification.Notification, 0)
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Kind, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkRead scopes by user so one account cannot touch another's rows.
func (r *PostgresNotificationRepository) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	n, err := r.db.Exec(ctx,
		`UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return notification.ErrNotFound
	}
	return nil
}

func (r *PostgresNotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE notifications SET read = TRUE WHERE user_id = $1 AND read = FALSE`,
		userID,
	)
	return err
}
