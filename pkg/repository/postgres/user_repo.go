package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nexushq/talent-registry/pkg/auth"
)

// UserRepository implements auth.UserRepository backed by PostgreSQL (pgx).
// Every mutator is a single SQL statement, so concurrent callers cannot
// interleave a read-modify-write; the one-time token consumers in particular
// are check-and-clear in one UPDATE.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) (*UserRepository, error) {
	repo := &UserRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *UserRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL,
			domain TEXT NOT NULL DEFAULT '',
			skill TEXT NOT NULL DEFAULT '',
			experience TEXT NOT NULL DEFAULT '',
			summary TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			is_verified BOOLEAN NOT NULL DEFAULT FALSE,
			verification_token TEXT,
			reset_password_token TEXT,
			reset_password_expires TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE UNIQUE INDEX IF NOT EXISTS users_verification_token_key
			ON users (verification_token) WHERE verification_token IS NOT NULL;
		CREATE UNIQUE INDEX IF NOT EXISTS users_reset_password_token_key
			ON users (reset_password_token) WHERE reset_password_token IS NOT NULL;
	`)
	return err
}

const userColumns = `id, name, email, password_hash, role, domain, skill, experience, summary,
	status, is_verified, verification_token, reset_password_token, reset_password_expires, created_at`

func scanUser(row pgx.Row) (auth.User, error) {
	var u auth.User
	var verificationToken, resetToken *string
	var resetExpires *time.Time
	var createdAt time.Time
	if err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Domain, &u.Skill,
		&u.Experience, &u.Summary, &u.Status, &u.IsVerified,
		&verificationToken, &resetToken, &resetExpires, &createdAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.User{}, auth.ErrNotFound
		}
		return auth.User{}, err
	}
	if verificationToken != nil {
		u.VerificationToken = *verificationToken
	}
	if resetToken != nil {
		u.ResetPasswordToken = *resetToken
	}
	if resetExpires != nil {
		u.ResetPasswordExpires = resetExpires.UTC()
	}
	u.CreatedAt = createdAt.UTC()
	return u, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func (r *UserRepository) Create(ctx context.Context, user auth.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, user.ID, user.Name, strings.ToLower(user.Email), user.PasswordHash, user.Role,
		user.Domain, user.Skill, user.Experience, user.Summary, user.Status, user.IsVerified,
		nullable(user.VerificationToken), nullable(user.ResetPasswordToken),
		nullableTime(user.ResetPasswordExpires), user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return auth.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users WHERE email = $1
	`, strings.ToLower(email))
	return scanUser(row)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (auth.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users WHERE id = $1
	`, id)
	return scanUser(row)
}

func (r *UserRepository) List(ctx context.Context) ([]auth.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+userColumns+` FROM users ORDER BY created_at, email
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var users []auth.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status auth.Status) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users SET status = $2 WHERE id = $1
	`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrNotFound
	}
	return nil
}

func (r *UserRepository) ToggleVerified(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users SET is_verified = NOT is_verified WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM users WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrNotFound
	}
	return nil
}

func (r *UserRepository) ConsumeVerificationToken(ctx context.Context, token string) (auth.User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users SET is_verified = TRUE, verification_token = NULL
		WHERE verification_token = $1
		RETURNING `+userColumns+`
	`, token)
	return scanUser(row)
}

func (r *UserRepository) SetResetToken(ctx context.Context, email, token string, expires time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users SET reset_password_token = $2, reset_password_expires = $3
		WHERE email = $1
	`, strings.ToLower(email), token, expires)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrNotFound
	}
	return nil
}

func (r *UserRepository) ConsumeResetToken(ctx context.Context, token, newHash string) (auth.User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users SET password_hash = $2, reset_password_token = NULL, reset_password_expires = NULL
		WHERE reset_password_token = $1 AND reset_password_expires > now()
		RETURNING `+userColumns+`
	`, token, newHash)
	return scanUser(row)
}
