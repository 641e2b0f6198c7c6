package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ksr/files/internal/user"
)

// TokenStore looks up token records by value.
type TokenStore interface {
	FindToken(ctx context.Context, token string) (*TokenRecord, error)
}

// Validator decides whether a bearer token may act, and for whom.
//
// The token only gates access. The principal is resolved from the subject id
// the caller supplies (the verified JWT "sub" claim), not from the token
// record's owner.
type Validator struct {
	tokens TokenStore
	users  user.Finder
	now    func() time.Time
	logger *slog.Logger
}

// NewValidator creates a Validator. now defaults to time.Now.
func NewValidator(tokens TokenStore, users user.Finder, now func() time.Time, logger *slog.Logger) *Validator {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{
		tokens: tokens,
		users:  users,
		now:    now,
		logger: logger.With(slog.String("component", "token_validator")),
	}
}

// Validate returns the principal for subjectID when token is present,
// known, unrevoked and not yet expired. Every failed check yields (nil, nil);
// only store failures are returned as errors.
func (v *Validator) Validate(ctx context.Context, token, subjectID string) (*user.User, error) {
	if token == "" {
		return nil, nil
	}

	rec, err := v.tokens.FindToken(ctx, token)
	if errors.Is(err, ErrTokenNotFound) {
		v.logger.Debug("token not found")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup token: %w", err)
	}
	if rec.Revoked {
		v.logger.Debug("token revoked", slog.String("owner_id", rec.OwnerID))
		return nil, nil
	}
	if !rec.ExpiresAt.After(v.now()) {
		v.logger.Debug("token expired", slog.String("owner_id", rec.OwnerID), slog.Time("expires_at", rec.ExpiresAt))
		return nil, nil
	}

	// system_users.id is a uuid column; a malformed subject can never match.
	if _, err := uuid.Parse(subjectID); err != nil {
		return nil, nil
	}

	u, err := v.users.GetByID(ctx, subjectID)
	if errors.Is(err, user.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup principal: %w", err)
	}
	return u, nil
}
