package services

import (
	"context"
	"testing"

	"github.com/shirtstore/shirts-api/internal/auth"
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

	err = db.AutoMigrate(&models.Application{}, &models.Shirt{}, &models.User{})
	require.NoError(t, err)

	return db
}

func TestShirtServiceCRUD(t *testing.T) {
	service := NewShirtService(setupTestDB(t))

	created, err := service.CreateShirt(models.Shirt{Brand: "Acme", Color: "Blue", Size: 40, Gender: "Men", Price: 19.99})
	require.NoError(t, err)
	require.NotZero(t, created.ShirtID)

	fetched, err := service.GetShirtByID(created.ShirtID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", fetched.Brand)

	fetched.Color = "Red"
	updated, err := service.UpdateShirt(fetched)
	require.NoError(t, err)
	assert.Equal(t, "Red", updated.Color)

	all, err := service.GetAllShirts()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	deleted, err := service.DeleteShirt(created.ShirtID)
	require.NoError(t, err)
	assert.Equal(t, created.ShirtID, deleted.ShirtID)

	_, err = service.GetShirtByID(created.ShirtID)
	assert.Error(t, err)
}

func TestShirtServiceGetMissing(t *testing.T) {
	service := NewShirtService(setupTestDB(t))

	_, err := service.GetShirtByID(42)
	assert.Error(t, err)

	_, err = service.DeleteShirt(42)
	assert.Error(t, err)
}

func TestApplicationServiceRegister(t *testing.T) {
	store := auth.NewGormApplicationStore(setupTestDB(t))
	service := NewApplicationService(store)
	ctx := context.Background()

	app, rawSecret, err := service.RegisterApplication(ctx, "MVCWebApp", "read,write")
	require.NoError(t, err)
	require.NotNil(t, app)
	require.NotEmpty(t, rawSecret)

	// Only the salted hash is persisted, and it verifies the raw secret
	assert.NotContains(t, []string{app.SecretHash, app.SecretSalt}, rawSecret)
	assert.True(t, security.VerifySecret(rawSecret, app.SecretSalt, app.SecretHash))

	stored, err := store.GetByClientID(ctx, app.ClientID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "MVCWebApp", stored.ApplicationName)
	assert.Equal(t, []string{"read", "write"}, stored.ScopeList())
}

func TestUserServiceRegisterAndAuthenticate(t *testing.T) {
	service := NewUserService(setupTestDB(t))

	user := &models.User{Username: "alice", Email: "alice@example.com"}
	require.NoError(t, service.CreateUser(user, "hunter22"))
	assert.NotEqual(t, "hunter22", user.PasswordHash)

	authed, ok := service.Authenticate("alice", "hunter22")
	require.True(t, ok)
	assert.Equal(t, "alice", authed.Username)

	_, ok = service.Authenticate("alice", "wrong")
	assert.False(t, ok)
	_, ok = service.Authenticate("nobody", "hunter22")
	assert.False(t, ok)

	duplicate := &models.User{Username: "alice", Email: "other@example.com"}
	assert.ErrorIs(t, service.CreateUser(duplicate, "hunter22"), ErrUserAlreadyExists)
}
