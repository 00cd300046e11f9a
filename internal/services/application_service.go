package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shirtstore/shirts-api/internal/auth"
	"github.com/shirtstore/shirts-api/internal/models"
	"github.com/shirtstore/shirts-api/internal/security"
)

// ApplicationService registers API client applications. The generated secret
// is returned to the caller exactly once; only its salted hash is stored.
type ApplicationService struct {
	store auth.ApplicationStore
}

func NewApplicationService(store auth.ApplicationStore) *ApplicationService {
	return &ApplicationService{store: store}
}

// RegisterApplication creates an application with a generated clientId and
// secret, persisting only the salted secret hash.
func (s *ApplicationService) RegisterApplication(ctx context.Context, name, scopes string) (*models.Application, string, error) {
	clientID := strings.ReplaceAll(uuid.NewString(), "-", "")
	rawSecret := strings.ReplaceAll(uuid.NewString(), "-", "")

	return s.RegisterApplicationWithCredentials(ctx, name, scopes, clientID, rawSecret)
}

// RegisterApplicationWithCredentials registers an application under a known
// clientId/secret pair. Used by seeding and dev tooling; the normal path
// generates both.
func (s *ApplicationService) RegisterApplicationWithCredentials(ctx context.Context, name, scopes, clientID, rawSecret string) (*models.Application, string, error) {
	salt, hash, err := security.HashSecret(rawSecret)
	if err != nil {
		return nil, "", err
	}

	app := &models.Application{
		ApplicationName: name,
		ClientID:        clientID,
		SecretSalt:      salt,
		SecretHash:      hash,
		Scopes:          scopes,
	}

	if err := s.store.Create(ctx, app); err != nil {
		return nil, "", err
	}
	return app, rawSecret, nil
}

// GetByClientID exposes store lookups for seeding checks.
func (s *ApplicationService) GetByClientID(ctx context.Context, clientID string) (*models.Application, error) {
	return s.store.GetByClientID(ctx, clientID)
}
