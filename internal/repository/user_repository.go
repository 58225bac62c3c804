package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"worklink/internal/database"
	"worklink/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository interface {
	Create(ctx context.Context, u user.User) error
	GetByID(ctx context.Context, id uuid.UUID) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	ListByRole(ctx context.Context, role string, limit, offset int) ([]user.User, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	CountByRole(ctx context.Context) (map[string]int, error)
}

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, email, password_hash, role, active, created_at, updated_at`

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, strings.ToLower(u.Email), u.PasswordHash, u.Role, u.Active, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, strings.ToLower(strings.TrimSpace(email)))
	return scanUser(row)
}

func (r *PostgresUserRepository) ListByRole(ctx context.Context, role string, limit, offset int) ([]user.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + userColumns + ` FROM users`
	args := []any{}
	if strings.TrimSpace(role) != "" {
		query += ` WHERE role = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, role, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.Active, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	n, err := r.db.Exec(ctx,
		`UPDATE users SET active = $2, updated_at = $3 WHERE id = $1`,
		id, active, time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) CountByRole(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx, `SELECT role, COUNT(1) FROM users GROUP BY role`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var role string
		var c int
		if err := rows.Scan(&role, &c); err != nil {
			return nil, err
		}
		out[role] = c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.Active, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}
