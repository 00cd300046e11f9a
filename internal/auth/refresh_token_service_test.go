package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shirtstore/shirts-api/internal/models"
	"github.com/shirtstore/shirts-api/internal/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testReqCtx = RequestContext{IP: "203.0.113.7", DeviceInfo: "test-agent/1.0"}

func TestCreateAndValidateRefreshToken(t *testing.T) {
	db := setupTestDB(t)
	apps := NewGormApplicationStore(db)
	registerTestApp(t, apps, "c1", "s3cr3t!", "read,write")

	auth := newTestAuthenticator(t, apps, NewGormRefreshTokenStore(db))
	ctx := context.Background()

	raw, err := auth.CreateRefreshToken(ctx, "c1", time.Now().UTC().Add(30*time.Minute), testReqCtx)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	assert.True(t, auth.ValidateRefreshToken(ctx, raw, "c1"))
	assert.False(t, auth.ValidateRefreshToken(ctx, raw, "someone-else"))
	assert.False(t, auth.ValidateRefreshToken(ctx, "never-issued", "c1"))
}

func TestRefreshTokenStoredHashedWithAuditFields(t *testing.T) {
	db := setupTestDB(t)
	store := NewGormRefreshTokenStore(db)
	service := NewRefreshTokenService(store)
	ctx := context.Background()

	raw, err := service.Create(ctx, "c1", time.Now().UTC().Add(30*time.Minute), testReqCtx)
	require.NoError(t, err)

	var record models.RefreshToken
	require.NoError(t, db.First(&record).Error)

	// Only the hash is at rest; the raw token never is
	assert.Equal(t, security.HashToken(raw), record.Token)
	assert.NotEqual(t, raw, record.Token)
	assert.Equal(t, "203.0.113.7", record.CreatedFromIP)
	assert.Equal(t, "test-agent/1.0", record.DeviceInfo)
	assert.False(t, record.IsRevoked)
}

func TestRevokeIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	apps := NewGormApplicationStore(db)
	registerTestApp(t, apps, "c1", "s3cr3t!", "read")

	auth := newTestAuthenticator(t, apps, NewGormRefreshTokenStore(db))
	ctx := context.Background()

	raw, err := auth.CreateRefreshToken(ctx, "c1", time.Now().UTC().Add(30*time.Minute), testReqCtx)
	require.NoError(t, err)

	revoked, err := auth.RevokeRefreshToken(ctx, raw, testReqCtx)
	require.NoError(t, err)
	assert.True(t, revoked)

	// Once revoked, never valid again, even though not expired
	assert.False(t, auth.ValidateRefreshToken(ctx, raw, "c1"))

	revoked, err = auth.RevokeRefreshToken(ctx, raw, testReqCtx)
	require.NoError(t, err)
	assert.False(t, revoked)

	revoked, err = auth.RevokeRefreshToken(ctx, "never-issued", testReqCtx)
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRotation(t *testing.T) {
	db := setupTestDB(t)
	apps := NewGormApplicationStore(db)
	registerTestApp(t, apps, "c1", "s3cr3t!", "read,write")

	auth := newTestAuthenticator(t, apps, NewGormRefreshTokenStore(db))
	ctx := context.Background()

	rawOld, err := auth.CreateRefreshToken(ctx, "c1", time.Now().UTC().Add(30*time.Minute), testReqCtx)
	require.NoError(t, err)

	pair, err := auth.RefreshAccessToken(ctx, rawOld, "c1", testReqCtx)
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, rawOld, pair.RefreshToken)

	// The old token was revoked in the same operation
	assert.False(t, auth.ValidateRefreshToken(ctx, rawOld, "c1"))
	assert.True(t, auth.ValidateRefreshToken(ctx, pair.RefreshToken, "c1"))

	// The new access token verifies and carries the client identity
	claims := auth.VerifyToken(pair.AccessToken, "")
	require.NotNil(t, claims)
	assert.Equal(t, "c1", claims["sub"])

	// Replaying the consumed token is rejected
	_, err = auth.RefreshAccessToken(ctx, rawOld, "c1", testReqCtx)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestRefreshRejectsTerminalTokens(t *testing.T) {
	db := setupTestDB(t)
	apps := NewGormApplicationStore(db)
	registerTestApp(t, apps, "c1", "s3cr3t!", "read")

	auth := newTestAuthenticator(t, apps, NewGormRefreshTokenStore(db))
	ctx := context.Background()

	t.Run("expired", func(t *testing.T) {
		raw, err := auth.CreateRefreshToken(ctx, "c1", time.Now().UTC().Add(-time.Minute), testReqCtx)
		require.NoError(t, err)

		assert.False(t, auth.ValidateRefreshToken(ctx, raw, "c1"))
		_, err = auth.RefreshAccessToken(ctx, raw, "c1", testReqCtx)
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})

	t.Run("revoked", func(t *testing.T) {
		raw, err := auth.CreateRefreshToken(ctx, "c1", time.Now().UTC().Add(30*time.Minute), testReqCtx)
		require.NoError(t, err)

		_, err = auth.RevokeRefreshToken(ctx, raw, testReqCtx)
		require.NoError(t, err)

		_, err = auth.RefreshAccessToken(ctx, raw, "c1", testReqCtx)
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})

	t.Run("wrong owner", func(t *testing.T) {
		raw, err := auth.CreateRefreshToken(ctx, "c1", time.Now().UTC().Add(30*time.Minute), testReqCtx)
		require.NoError(t, err)

		_, err = auth.RefreshAccessToken(ctx, raw, "c2", testReqCtx)
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := auth.RefreshAccessToken(ctx, "never-issued", "c1", testReqCtx)
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})
}

func TestConcurrentRotationSingleWinner(t *testing.T) {
	// The in-memory store shares the gorm store's compare-and-swap contract
	// and keeps the race deterministic without sqlite write locking.
	apps := NewInMemoryApplicationStore()
	registerTestApp(t, apps, "c1", "s3cr3t!", "read")

	auth := newTestAuthenticator(t, apps, NewInMemoryRefreshTokenStore())
	ctx := context.Background()

	raw, err := auth.CreateRefreshToken(ctx, "c1", time.Now().UTC().Add(30*time.Minute), testReqCtx)
	require.NoError(t, err)

	const racers = 8
	errs := make([]error, racers)
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = auth.RefreshAccessToken(ctx, raw, "c1", testReqCtx)
		}(i)
	}
	wg.Wait()

	var successes, invalid int
	for _, err := range errs {
		switch err {
		case nil:
			successes++
		case ErrInvalidRefreshToken:
			invalid++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes, "exactly one rotation must win")
	assert.Equal(t, racers-1, invalid, "every loser must observe an invalid token")
}

func TestDeleteExpired(t *testing.T) {
	db := setupTestDB(t)
	store := NewGormRefreshTokenStore(db)
	service := NewRefreshTokenService(store)
	ctx := context.Background()

	_, err := service.Create(ctx, "c1", time.Now().UTC().Add(-time.Hour), testReqCtx)
	require.NoError(t, err)
	active, err := service.Create(ctx, "c1", time.Now().UTC().Add(time.Hour), testReqCtx)
	require.NoError(t, err)

	removed, err := service.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	record, err := service.Get(ctx, security.HashToken(active), "c1")
	require.NoError(t, err)
	assert.NotNil(t, record)
}
