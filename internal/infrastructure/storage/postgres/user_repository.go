package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"phonefix/internal/domain/user"
)

type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewUserRepository(pool *pgxpool.Pool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: pool,
		log:  log.With("component", "user_repository"),
	}
}

func (r *UserRepository) FindByLoginID(ctx context.Context, loginID string) (user.User, error) {
	const query = `SELECT login_id, password_hash, token FROM users WHERE login_id = $1`

	var u user.User
	err := r.pool.QueryRow(ctx, query, loginID).Scan(&u.LoginID, &u.Password, &u.Token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return u, user.ErrNotFound
		}
		r.log.Error("failed to find user", "login_id", loginID, "error", err)
		return u, fmt.Errorf("find user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) FindByToken(ctx context.Context, token string) (user.User, error) {
	const query = `SELECT login_id, password_hash, token FROM users WHERE token = $1`

	var u user.User
	err := r.pool.QueryRow(ctx, query, token).Scan(&u.LoginID, &u.Password, &u.Token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return u, user.ErrNotFound
		}
		r.log.Error("failed to find user by token", "error", err)
		return u, fmt.Errorf("find user by token: %w", err)
	}

	return u, nil
}

func (r *UserRepository) UpdateToken(ctx context.Context, loginID, token string) error {
	const query = `UPDATE users SET token = $1 WHERE login_id = $2`

	result, err := r.pool.Exec(ctx, query, token, loginID)
	if err != nil {
		r.log.Error("failed to update token", "login_id", loginID, "error", err)
		return fmt.Errorf("update token: %w", err)
	}

	if result.RowsAffected() == 0 {
		return user.ErrNotFound
	}

	return nil
}

func (r *UserRepository) Upsert(ctx context.Context, loginID, passwordHash string) error {
	const query = `
		INSERT INTO users (login_id, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (login_id) DO UPDATE SET password_hash = EXCLUDED.password_hash`

	if _, err := r.pool.Exec(ctx, query, loginID, passwordHash); err != nil {
		r.log.Error("failed to upsert user", "login_id", loginID, "error", err)
		return fmt.Errorf("upsert user: %w", err)
	}

	return nil
}
