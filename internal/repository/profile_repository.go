package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"worklink/internal/database"
	"worklink/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProfileRepository interface {
	FindBySeekerID(ctx context.Context, userID uuid.UUID) (profile.SeekerProfile, error)
	UpsertSeeker(ctx context.Context, p profile.SeekerProfile) error

	FindEmployerByUserID(ctx context.Context, userID uuid.UUID) (profile.EmployerProfile, error)
	UpsertEmployer(ctx context.Context, p profile.EmployerProfile) error

	FindCenterByUserID(ctx context.Context, userID uuid.UUID) (profile.CenterProfile, error)
	UpsertCenter(ctx context.Context, p profile.CenterProfile) error
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) FindBySeekerID(ctx context.Context, userID uuid.UUID) (profile.SeekerProfile, error) {
	row := r.db.QueryRow(ctx, `SELECT doc FROM seeker_profiles WHERE user_id = $1`, userID)

	var doc []byte
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return profile.SeekerProfile{}, profile.ErrNotFound
		}
		return profile.SeekerProfile{}, err
	}

	var p profile.SeekerProfile
	if err := json.Unmarshal(doc, &p); err != nil {
		return profile.SeekerProfile{}, fmt.Errorf("decode seeker profile doc: %w", err)
	}
	p.UserID = userID
	return p, nil
}

func (r *PostgresProfileRepository) UpsertSeeker(ctx context.Context, p profile.SeekerProfile) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode seeker profile doc: %w", err)
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO seeker_profiles (user_id, doc, updated_at)
		 VALUES ($1, $2::jsonb, $3)
		 ON CONFLICT (user_id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = EXCLUDED.updated_at`,
		p.UserID, string(doc), p.UpdatedAt,
	)
	return err
}

func (r *PostgresProfileRepository) FindEmployerByUserID(ctx context.Context, userID uuid.UUID) (profile.EmployerProfile, error) {
	row := r.db.QueryRow(ctx, `SELECT doc FROM employer_profiles WHERE user_id = $1`, userID)

	var doc []byte
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return profile.EmployerProfile{}, profile.ErrNotFound
		}
		return profile.EmployerProfile{}, err
	}

	var p profile.EmployerProfile
	if err := json.Unmarshal(doc, &p); err != nil {
		return profile.EmployerProfile{}, fmt.Errorf("decode employer profile doc: %w", err)
	}
	p.UserID = userID
	return p, nil
}

func (r *PostgresProfileRepository) UpsertEmployer(ctx context.Context, p profile.EmployerProfile) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode employer profile doc: %w", err)
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO employer_profiles (user_id, doc, updated_at)
		 VALUES ($1, $2::jsonb, $3)
		 ON CONFLICT (user_id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = EXCLUDED.updated_at`,
		p.UserID, string(doc), p.UpdatedAt,
	)
	return err
}

func (r *PostgresProfileRepository) FindCenterByUserID(ctx context.Context, userID uuid.UUID) (profile.CenterProfile, error) {
	row := r.db.QueryRow(ctx, `SELECT doc FROM center_profiles WHERE user_id = $1`, userID)

	var doc []byte
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return profile.CenterProfile{}, profile.ErrNotFound
		}
		return profile.CenterProfile{}, err
	}

	var p profile.CenterProfile
	if err := json.Unmarshal(doc, &p); err != nil {
		return profile.CenterProfile{}, fmt.Errorf("decode center profile doc: %w", err)
	}
	p.UserID = userID
	return p, nil
}

func (r *PostgresProfileRepository) UpsertCenter(ctx context.Context, p profile.CenterProfile) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode center profile doc: %w", err)
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO center_profiles (user_id, doc, updated_at)
		 VALUES ($1, $2::jsonb, $3)
		 ON CONFLICT (user_id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = EXCLUDED.updated_at`,
		p.UserID, string(doc), p.UpdatedAt,
	)
	return err
}
