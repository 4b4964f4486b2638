package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thesanmark/auth-api/pkg/auth"
)

// TokenRepository implements auth.TokenRepository backed by PostgreSQL (pgx).
type TokenRepository struct {
	pool *pgxpool.Pool
}

func NewTokenRepository(pool *pgxpool.Pool) (*TokenRepository, error) {
	repo := &TokenRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *TokenRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS access_tokens (
			id UUID PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users (id),
			name TEXT NOT NULL,
			abilities TEXT[] NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			expires_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS access_tokens_user_id_idx ON access_tokens (user_id);
	`)
	return err
}

func (r *TokenRepository) Create(ctx context.Context, token auth.AccessToken) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO access_tokens (id, user_id, name, abilities, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, token.ID, token.UserID, token.Name, token.Abilities, token.CreatedAt, token.ExpiresAt)
	return err
}

func (r *TokenRepository) GetByID(ctx context.Context, id uuid.UUID) (auth.AccessToken, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, abilities, created_at, expires_at
		FROM access_tokens WHERE id = $1
	`, id)
	var token auth.AccessToken
	var createdAt, expiresAt time.Time
	if err := row.Scan(&token.ID, &token.UserID, &token.Name, &token.Abilities, &createdAt, &expiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.AccessToken{}, auth.ErrNotFound
		}
		return auth.AccessToken{}, err
	}
	token.CreatedAt = createdAt.UTC()
	token.ExpiresAt = expiresAt.UTC()
	return token, nil
}

func (r *TokenRepository) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM access_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
