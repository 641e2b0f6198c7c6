// Package auth validates bearer tokens against the oauth token store.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TokenRecord is a row of oauth_tokens. It is issued and revoked elsewhere;
// this service only reads it.
type TokenRecord struct {
	Token     string
	OwnerID   string
	ExpiresAt time.Time
	Revoked   bool
}

// ErrTokenNotFound is returned when no record matches the token value.
var ErrTokenNotFound = errors.New("token not found")

// Repository reads token records.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new auth Repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// FindToken returns the record for token regardless of its revocation or
// expiry state.
func (r *Repository) FindToken(ctx context.Context, token string) (*TokenRecord, error) {
	rec := &TokenRecord{}
	err := r.db.QueryRow(ctx,
		`SELECT token, user_id, expires_at, revoked
		 FROM oauth_tokens
		 WHERE token = $1
		 ORDER BY created_at DESC
		 LIMIT 1`,
		token,
	).Scan(&rec.Token, &rec.OwnerID, &rec.ExpiresAt, &rec.Revoked)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find token: %w", err)
	}
	return rec, nil
}
