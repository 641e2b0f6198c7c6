package auth

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ksr/files/internal/db"
	"github.com/ksr/files/internal/user"
)

// setupTestDB starts PostgreSQL, applies migrations and returns a pool.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("TEST_INTEGRATION not set")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"docker.io/postgres:17-alpine",
		postgres.WithDatabase("files_test"),
		postgres.WithUsername("files"),
		postgres.WithPassword("test-password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, db.Migrate(dsn))

	pool, err := db.Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestRepository_Integration(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	var userID string
	err := pool.QueryRow(ctx,
		`INSERT INTO system_users (role_id, name, email, password)
		 VALUES (gen_random_uuid(), 'Ops', 'ops@example.com', 'x')
		 RETURNING id`,
	).Scan(&userID)
	require.NoError(t, err)

	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Microsecond)
	_, err = pool.Exec(ctx,
		`INSERT INTO oauth_tokens (token, user_id, expires_at) VALUES ($1, $2, $3)`,
		"tok-live", userID, expires,
	)
	require.NoError(t, err)
	_, err = pool.Exec(ctx,
		`INSERT INTO oauth_tokens (token, user_id, expires_at, revoked) VALUES ($1, $2, $3, true)`,
		"tok-revoked", userID, expires,
	)
	require.NoError(t, err)

	repo := NewRepository(pool)

	rec, err := repo.FindToken(ctx, "tok-live")
	require.NoError(t, err)
	assert.Equal(t, userID, rec.OwnerID)
	assert.False(t, rec.Revoked)
	assert.True(t, rec.ExpiresAt.Equal(expires))

	rec, err = repo.FindToken(ctx, "tok-revoked")
	require.NoError(t, err)
	assert.True(t, rec.Revoked)

	_, err = repo.FindToken(ctx, "missing")
	assert.ErrorIs(t, err, ErrTokenNotFound)

	users := user.NewService(user.NewRepository(pool))
	v := NewValidator(repo, users, nil, nil)

	p, err := v.Validate(ctx, "tok-live", userID)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "ops@example.com", p.Email)

	p, err = v.Validate(ctx, "tok-revoked", userID)
	require.NoError(t, err)
	assert.Nil(t, p)
}
