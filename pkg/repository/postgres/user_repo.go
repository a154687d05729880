package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/talentproph/talentpro/pkg/auth"
	"github.com/talentproph/talentpro/pkg/session"
	pgstore "github.com/talentproph/talentpro/pkg/storage/postgres"
)

// UserRepository implements auth.UserRepository backed by PostgreSQL (pgx).
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create inserts the account and its profile in one transaction, so a profile
// always exists for a user id.
func (r *UserRepository) Create(ctx context.Context, user auth.User, fullName string) error {
	return pgstore.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
INSERT INTO users (id, email, password_hash, role, created_at)
VALUES ($1, $2, $3, $4, $5)
`, user.ID, strings.ToLower(user.Email), user.PasswordHash, string(user.Role), user.CreatedAt)
		if pgstore.IsUniqueViolation(err, "users_email_key") {
			return auth.ErrUserAlreadyExists
		}
		if err != nil {
			return errors.Wrap(err, "insert user")
		}
		_, err = tx.Exec(ctx, `
INSERT INTO profiles (id, role, full_name, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
`, user.ID, string(user.Role), strings.TrimSpace(fullName), user.CreatedAt)
		return errors.Wrap(err, "insert profile")
	})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `
SELECT id, email, password_hash, role, created_at
FROM users WHERE email = $1
`, strings.ToLower(email)))
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (auth.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `
SELECT id, email, password_hash, role, created_at
FROM users WHERE id = $1
`, id))
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET password_hash = $2 WHERE id = $1`, id, passwordHash)
	if err != nil {
		return errors.Wrap(err, "update password")
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (auth.User, error) {
	var (
		user      auth.User
		role      string
		createdAt time.Time
	)
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &role, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.User{}, auth.ErrNotFound
		}
		return auth.User{}, errors.Wrap(err, "scan user")
	}
	user.Role = session.Role(role)
	user.CreatedAt = createdAt.UTC()
	return user, nil
}
