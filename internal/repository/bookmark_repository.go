package repository

import (
	"context"
	"time"

	"worklink/internal/database"
	"worklink/internal/domain/job"

	"github.com/google/uuid"
)

type BookmarkRepository interface {
	Save(ctx context.Context, userID, jobID uuid.UUID) error
	Remove(ctx context.Context, userID, jobID uuid.UUID) error
	ListJobsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]job.Job, error)
}

type PostgresBookmarkRepository struct {
	db database.DB
}

func NewPostgresBookmarkRepository(db database.DB) *PostgresBookmarkRepository {
	return &PostgresBookmarkRepository{db: db}
}

// Save is idempotent, re-saving an existing bookmark is a no-op.
func (r *PostgresBookmarkRepository) Save(ctx context.Context, userID, jobID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO bookmarks (user_id, job_id, created_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, job_id) DO NOTHING`,
		userID, jobID, time.Now().UTC(),
	)
	return err
}

// Remove is idempotent, removing a missing bookmark is a no-op.
func (r *PostgresBookmarkRepository) Remove(ctx context.Context, userID, jobID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM bookmarks WHERE user_id = $1 AND job_id = $2`,
		userID, jobID,
	)
	return err
}

func (r *PostgresBookmarkRepository) ListJobsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT j.status, j.doc
		 FROM bookmarks b
		 JOIN jobs j ON j.id = b.job_id
		 WHERE b.user_id = $1
		 ORDER BY b.created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, clampPage(limit), clampOffset(offset),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		var status string
		var doc []byte
		if err := rows.Scan(&status, &doc); err != nil {
			return nil, err
		}
		j, err := decodeJob(doc, status)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
