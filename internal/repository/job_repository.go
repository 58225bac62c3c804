package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"worklink/internal/database"
	"worklink/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// JobFilter narrows the public job listing. Zero values mean "no filter".
type JobFilter struct {
	Keyword        string
	City           string
	Country        string
	Remote         bool
	EmploymentType string
	Limit          int
	Offset         int
}

type JobRepository interface {
	Create(ctx context.Context, j job.Job) error
	Update(ctx context.Context, j job.Job) error
	FindByID(ctx context.Context, id uuid.UUID) (job.Job, error)

	FindOpenJobs(ctx context.Context) ([]job.Job, error)
	FindOpenJobsExcluding(ctx context.Context, excluded map[uuid.UUID]struct{}) ([]job.Job, error)
	FindRecentOpenJobs(ctx context.Context, limit int) ([]job.Job, error)

	ListOpen(ctx context.Context, f JobFilter) ([]job.Job, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID, limit, offset int) ([]job.Job, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	CloseExpired(ctx context.Context, now time.Time, batch int) (int64, error)
	Count(ctx context.Context) (int, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	doc, err := json.Marshal(j)
	if err != nil {
		return fmt.Errorf("encode job doc: %w", err)
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO jobs (id, employer_id, status, posted_at, expires_at, doc)
		 VALUES ($1, $2, $3, $4, $5, $6::jsonb)`,
		j.ID, j.EmployerID, j.Status, j.PostedAt, j.ExpiresAt, string(doc),
	)
	return err
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) error {
	doc, err := json.Marshal(j)
	if err != nil {
		return fmt.Errorf("encode job doc: %w", err)
	}
	n, err := r.db.Exec(ctx,
		`UPDATE jobs SET status = $2, posted_at = $3, expires_at = $4, doc = $5::jsonb WHERE id = $1`,
		j.ID, j.Status, j.PostedAt, j.ExpiresAt, string(doc),
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) FindByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT status, doc FROM jobs WHERE id = $1`, id)

	var status string
	var doc []byte
	if err := row.Scan(&status, &doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return decodeJob(doc, status)
}

func (r *PostgresJobRepository) FindOpenJobs(ctx context.Context) ([]job.Job, error) {
	return r.queryJobs(ctx,
		`SELECT status, doc FROM jobs WHERE status = 'active' ORDER BY posted_at DESC`)
}

func (r *PostgresJobRepository) FindOpenJobsExcluding(ctx context.Context, excluded map[uuid.UUID]struct{}) ([]job.Job, error) {
	if len(excluded) == 0 {
		return r.FindOpenJobs(ctx)
	}
	ids := make([]string, 0, len(excluded))
	for id := range excluded {
		ids = append(ids, id.String())
	}
	return r.queryJobs(ctx,
		`SELECT status, doc FROM jobs
		 WHERE status = 'active' AND NOT (id = ANY($1::uuid[]))
		 ORDER BY posted_at DESC`,
		ids,
	)
}

func (r *PostgresJobRepository) FindRecentOpenJobs(ctx context.Context, limit int) ([]job.Job, error) {
	if limit <= 0 {
		limit = 10
	}
	return r.queryJobs(ctx,
		`SELECT status, doc FROM jobs WHERE status = 'active' ORDER BY posted_at DESC LIMIT $1`,
		limit,
	)
}

func (r *PostgresJobRepository) ListOpen(ctx context.Context, f JobFilter) ([]job.Job, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	conds := []string{`status = 'active'`}
	args := []any{}
	n := 0
	next := func() string {
		n++
		return fmt.Sprintf("$%d", n)
	}

	if kw := strings.TrimSpace(f.Keyword); kw != "" {
		p := next()
		conds = append(conds, `(doc->>'title' ILIKE `+p+` OR doc->>'description' ILIKE `+p+`)`)
		args = append(args, "%"+kw+"%")
	}
	if city := strings.TrimSpace(f.City); city != "" {
		conds = append(conds, `doc->'location'->>'city' ILIKE `+next())
		args = append(args, city)
	}
	if country := strings.TrimSpace(f.Country); country != "" {
		conds = append(conds, `doc->'location'->>'country' ILIKE `+next())
		args = append(args, country)
	}
	if f.Remote {
		conds = append(conds, `((doc->'location'->>'remote')::boolean IS TRUE OR lower(doc->>'employment_type') = 'remote')`)
	}
	if et := strings.TrimSpace(f.EmploymentType); et != "" {
		conds = append(conds, `lower(doc->>'employment_type') = lower(`+next()+`)`)
		args = append(args, et)
	}

	query := `SELECT status, doc FROM jobs WHERE ` + strings.Join(conds, " AND ") +
		` ORDER BY posted_at DESC LIMIT ` + next() + ` OFFSET ` + next()
	args = append(args, limit, offset)

	return r.queryJobs(ctx, query, args...)
}

func (r *PostgresJobRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID, limit, offset int) ([]job.Job, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return r.queryJobs(ctx,
		`SELECT status, doc FROM jobs WHERE employer_id = $1 ORDER BY posted_at DESC LIMIT $2 OFFSET $3`,
		employerID, limit, offset,
	)
}

func (r *PostgresJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	n, err := r.db.Exec(ctx,
		`UPDATE jobs SET status = $2, doc = jsonb_set(doc, '{status}', to_jsonb($2::text)) WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) CloseExpired(ctx context.Context, now time.Time, batch int) (int64, error) {
	if batch <= 0 {
		batch = 500
	}
	return r.db.Exec(ctx,
		`UPDATE jobs SET status = 'closed', doc = jsonb_set(doc, '{status}', '"closed"')
		 WHERE id IN (
			SELECT id FROM jobs
			WHERE status = 'active' AND expires_at IS NOT NULL AND expires_at <= $1
			ORDER BY expires_at ASC
			LIMIT $2
		 )`,
		now, batch,
	)
}

func (r *PostgresJobRepository) Count(ctx context.Context) (int, error) {
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM jobs`)
	var c int
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (r *PostgresJobRepository) queryJobs(ctx context.Context, query string, args ...any) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
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

// decodeJob trusts the doc but takes status from the column, which is the
// one field mutated outside full-document updates.
func decodeJob(doc []byte, status string) (job.Job, error) {
	var j job.Job
	if err := json.Unmarshal(doc, &j); err != nil {
		return job.Job{}, fmt.Errorf("decode job doc: %w", err)
	}
	j.Status = status
	return j, nil
}
