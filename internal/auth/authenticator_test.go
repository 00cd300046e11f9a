package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shirtstore/shirts-api/internal/config"
	"github.com/shirtstore/shirts-api/internal/models"
	"github.com/shirtstore/shirts-api/internal/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Application{}, &models.RefreshToken{})
	require.NoError(t, err)

	return db
}

func testJWTOptions() config.JWTOptions {
	return config.JWTOptions{
		SecretKey:                 "test-jwt-secret-key-32-characters",
		AccessTokenExpiryMinutes:  10,
		RefreshTokenExpiryMinutes: 30,
	}
}

func newTestAuthenticator(t *testing.T, apps ApplicationStore, tokens RefreshTokenStore) *Authenticator {
	authenticator, err := NewAuthenticator(apps, NewRefreshTokenService(tokens), testJWTOptions())
	require.NoError(t, err)
	return authenticator
}

func registerTestApp(t *testing.T, store ApplicationStore, clientID, secret, scopes string) *models.Application {
	salt, hash, err := security.HashSecret(secret)
	require.NoError(t, err)

	app := &models.Application{
		ApplicationName: "TestApp",
		ClientID:        clientID,
		SecretSalt:      salt,
		SecretHash:      hash,
		Scopes:          scopes,
	}
	require.NoError(t, store.Create(context.Background(), app))
	return app
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	apps := NewGormApplicationStore(db)
	registerTestApp(t, apps, "c1", "s3cr3t!", "read,write")

	auth := newTestAuthenticator(t, apps, NewGormRefreshTokenStore(db))
	ctx := context.Background()

	assert.True(t, auth.Authenticate(ctx, "c1", "s3cr3t!"))
	assert.False(t, auth.Authenticate(ctx, "c1", "wrong"))
	assert.False(t, auth.Authenticate(ctx, "unknown", "s3cr3t!"))
	assert.False(t, auth.Authenticate(ctx, "", "s3cr3t!"))
	assert.False(t, auth.Authenticate(ctx, "c1", ""))
	assert.False(t, auth.Authenticate(ctx, "   ", "s3cr3t!"))
}

func TestCreateAndVerifyToken(t *testing.T) {
	db := setupTestDB(t)
	apps := NewGormApplicationStore(db)
	registerTestApp(t, apps, "c1", "s3cr3t!", "read,write")

	auth := newTestAuthenticator(t, apps, NewGormRefreshTokenStore(db))

	token, err := auth.CreateToken(context.Background(), "c1", time.Now().UTC().Add(10*time.Minute))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims := auth.VerifyToken(token, "")
	require.NotNil(t, claims)
	assert.Equal(t, "c1", claims["sub"])
	assert.Equal(t, "TestApp", claims["AppName"])

	scope, ok := claims["scope"].(string)
	require.True(t, ok)
	scopes := strings.Fields(scope)
	assert.Contains(t, scopes, "read")
	assert.Contains(t, scopes, "write")
}

func TestVerifyTokenAcceptsBearerPrefix(t *testing.T) {
	db := setupTestDB(t)
	apps := NewGormApplicationStore(db)
	registerTestApp(t, apps, "c1", "s3cr3t!", "read")

	auth := newTestAuthenticator(t, apps, NewGormRefreshTokenStore(db))

	token, err := auth.CreateToken(context.Background(), "c1", time.Now().UTC().Add(time.Minute))
	require.NoError(t, err)

	assert.NotNil(t, auth.VerifyToken("Bearer "+token, ""))
	assert.NotNil(t, auth.VerifyToken("bearer "+token, ""))
}

func TestVerifyTokenFailures(t *testing.T) {
	db := setupTestDB(t)
	apps := NewGormApplicationStore(db)
	registerTestApp(t, apps, "c1", "s3cr3t!", "read")

	auth := newTestAuthenticator(t, apps, NewGormRefreshTokenStore(db))
	ctx := context.Background()

	t.Run("expired token", func(t *testing.T) {
		token, err := auth.CreateToken(ctx, "c1", time.Now().UTC().Add(-time.Minute))
		require.NoError(t, err)
		assert.Nil(t, auth.VerifyToken(token, ""))
	})

	t.Run("wrong key", func(t *testing.T) {
		token, err := auth.CreateToken(ctx, "c1", time.Now().UTC().Add(time.Minute))
		require.NoError(t, err)
		assert.Nil(t, auth.VerifyToken(token, "a-completely-different-key"))
	})

	t.Run("garbage input", func(t *testing.T) {
		assert.Nil(t, auth.VerifyToken("not-a-token", ""))
		assert.Nil(t, auth.VerifyToken("", ""))
		assert.Nil(t, auth.VerifyToken("Bearer ", ""))
	})
}

func TestCreateTokenUnknownClient(t *testing.T) {
	db := setupTestDB(t)
	auth := newTestAuthenticator(t, NewGormApplicationStore(db), NewGormRefreshTokenStore(db))

	_, err := auth.CreateToken(context.Background(), "nobody", time.Now().UTC().Add(time.Minute))
	assert.ErrorIs(t, err, ErrInvalidClient)
}

func TestVerifyTokenWithOverrideKey(t *testing.T) {
	db := setupTestDB(t)
	apps := NewGormApplicationStore(db)
	registerTestApp(t, apps, "c1", "s3cr3t!", "read")

	auth := newTestAuthenticator(t, apps, NewGormRefreshTokenStore(db))

	token, err := auth.CreateToken(context.Background(), "c1", time.Now().UTC().Add(time.Minute))
	require.NoError(t, err)

	// The override key must match the signing key for verification to pass
	assert.NotNil(t, auth.VerifyToken(token, testJWTOptions().SecretKey))
}
