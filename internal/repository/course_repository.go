package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"worklink/internal/database"
	"worklink/internal/domain/course"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CourseRepository interface {
	Create(ctx context.Context, c course.Course) error
	Update(ctx context.Context, c course.Course) error
	FindByID(ctx context.Context, id uuid.UUID) (course.Course, error)
	ListActive(ctx context.Context, limit, offset int) ([]course.Course, error)
	ListByCenter(ctx context.Context, centerID uuid.UUID, limit, offset int) ([]course.Course, error)

	CreateInquiry(ctx context.Context, q course.Inquiry) error
	ListInquiriesByCenter(ctx context.Context, centerID uuid.UUID, limit, offset int) ([]course.Inquiry, error)
}

type PostgresCourseRepository struct {
	db database.DB
}

func NewPostgresCourseRepository(db database.DB) *PostgresCourseRepository {
	return &PostgresCourseRepository{db: db}
}

func (r *PostgresCourseRepository) Create(ctx context.Context, c course.Course) error {
	doc, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode course doc: %w", err)
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO courses (id, center_id, status, doc, created_at)
		 VALUES ($1, $2, $3, $4::jsonb, $5)`,
		c.ID, c.CenterID, c.Status, string(doc), c.CreatedAt,
	)
	return err
}

func (r *PostgresCourseRepository) Update(ctx context.Context, c course.Course) error {
	doc, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode course doc: %w", err)
	}
	n, err := r.db.Exec(ctx,
		`UPDATE courses SET status = $2, doc = $3::jsonb WHERE id = $1`,
		c.ID, c.Status, string(doc),
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return course.ErrNotFound
	}
	return nil
}

func (r *PostgresCourseRepository) FindByID(ctx context.Context, id uuid.UUID) (course.Course, error) {
	row := r.db.QueryRow(ctx, `SELECT status, doc FROM courses WHERE id = $1`, id)

	var status string
	var doc []byte
	if err := row.Scan(&status, &doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return course.Course{}, course.ErrNotFound
		}
		return course.Course{}, err
	}
	return decodeCourse(doc, status)
}

func (r *PostgresCourseRepository) ListActive(ctx context.Context, limit, offset int) ([]course.Course, error) {
	return r.queryCourses(ctx,
		`SELECT status, doc FROM courses WHERE status = 'active' ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		clampPage(limit), clampOffset(offset),
	)
}

func (r *PostgresCourseRepository) ListByCenter(ctx context.Context, centerID uuid.UUID, limit, offset int) ([]course.Course, error) {
	return r.queryCourses(ctx,
		`SELECT status, doc FROM courses WHERE center_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		centerID, clampPage(limit), clampOffset(offset),
	)
}

func (r *PostgresCourseRepository) CreateInquiry(ctx context.Context, q course.Inquiry) error {
	doc, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("encode inquiry doc: %w", err)
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO course_inquiries (id, course_id, seeker_id, doc, created_at)
		 VALUES ($1, $2, $3, $4::jsonb, $5)`,
		q.ID, q.CourseID, q.SeekerID, string(doc), q.CreatedAt,
	)
	return err
}

func (r *PostgresCourseRepository) ListInquiriesByCenter(ctx context.Context, centerID uuid.UUID, limit, offset int) ([]course.Inquiry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT i.doc
		 FROM course_inquiries i
		 JOIN courses c ON c.id = i.course_id
		 WHERE c.center_id = $1
		 ORDER BY i.created_at DESC
		 LIMIT $2 OFFSET $3`,
		centerID, clampPage(limit), clampOffset(offset),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]course.Inquiry, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var q course.Inquiry
		if err := json.Unmarshal(doc, &q); err != nil {
			return nil, fmt.Errorf("decode inquiry doc: %w", err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCourseRepository) queryCourses(ctx context.Context, query string, args ...any) ([]course.Course, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]course.Course, 0)
	for rows.Next() {
		var status string
		var doc []byte
		if err := rows.Scan(&status, &doc); err != nil {
			return nil, err
		}
		c, err := decodeCourse(doc, status)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeCourse(doc []byte, status string) (course.Course, error) {
	var c course.Course
	if err := json.Unmarshal(doc, &c); err != nil {
		return course.Course{}, fmt.Errorf("decode course doc: %w", err)
	}
	c.Status = status
	return c, nil
}

func clampPage(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
