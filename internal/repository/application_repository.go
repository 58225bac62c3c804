package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"worklink/internal/database"
	"worklink/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type ApplicationRepository interface {
	Create(ctx context.Context, a application.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (application.Application, error)
	FindJobIDsBySeeker(ctx context.Context, seekerID uuid.UUID) (map[uuid.UUID]struct{}, error)
	ListBySeeker(ctx context.Context, seekerID uuid.UUID, limit, offset int) ([]application.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID, limit, offset int) ([]application.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) error
	Count(ctx context.Context) (int, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

// applicationDoc holds the free-form part of an application row.
type applicationDoc struct {
	CoverNote string `json:"cover_note"`
}

const applicationColumns = `id, job_id, seeker_id, status, doc, created_at, updated_at`

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	doc, err := json.Marshal(applicationDoc{CoverNote: a.CoverNote})
	if err != nil {
		return fmt.Errorf("encode application doc: %w", err)
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO applications (id, job_id, seeker_id, status, doc, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7)`,
		a.ID, a.JobID, a.SeekerID, string(a.Status), string(doc), a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return application.ErrAlreadyApplied
		}
		return err
	}
	return nil
}

func (r *PostgresApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) FindJobIDsBySeeker(ctx context.Context, seekerID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	rows, err := r.db.Query(ctx, `SELECT job_id FROM applications WHERE seeker_id = $1`, seekerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID]struct{})
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) ListBySeeker(ctx context.Context, seekerID uuid.UUID, limit, offset int) ([]application.Application, error) {
	return r.list(ctx, `seeker_id`, seekerID, limit, offset)
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID, limit, offset int) ([]application.Application, error) {
	return r.list(ctx, `job_id`, jobID, limit, offset)
}

func (r *PostgresApplicationRepository) list(ctx context.Context, column string, id uuid.UUID, limit, offset int) ([]application.Application, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE `+column+` = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		id, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) error {
	n, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`,
		id, string(status), time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *PostgresApplicationRepository) Count(ctx context.Context) (int, error) {
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM applications`)
	var c int
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func scanApplication(row database.Row) (application.Application, error) {
	var a application.Application
	var status string
	var doc []byte
	err := row.Scan(&a.ID, &a.JobID, &a.SeekerID, &status, &doc, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	a.Status = application.Status(status)

	var d applicationDoc
	if len(doc) > 0 {
		if err := json.Unmarshal(doc, &d); err != nil {
			return application.Application{}, fmt.Errorf("decode application doc: %w", err)
		}
	}
	a.CoverNote = d.CoverNote
	return a, nil
}
