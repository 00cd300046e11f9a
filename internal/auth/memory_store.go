package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shirtstore/shirts-api/internal/models"
)

// InMemoryApplicationStore is a mutex-guarded map-backed ApplicationStore,
// used in tests and as a fallback when no database is configured.
type InMemoryApplicationStore struct {
	mu   sync.RWMutex
	apps map[string]models.Application // keyed by lowercase clientId
	next uint
}

func NewInMemoryApplicationStore() *InMemoryApplicationStore {
	return &InMemoryApplicationStore{apps: make(map[string]models.Application)}
}

func (s *InMemoryApplicationStore) GetByClientID(_ context.Context, clientID string) (*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	app, ok := s.apps[strings.ToLower(clientID)]
	if !ok {
		return nil, nil
	}
	return &app, nil
}

func (s *InMemoryApplicationStore) Create(_ context.Context, app *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	app.ApplicationID = s.next
	app.CreatedAt = time.Now().UTC()
	s.apps[strings.ToLower(app.ClientID)] = *app
	return nil
}

// InMemoryRefreshTokenStore mirrors the gorm store's compare-and-swap
// semantics under a single mutex.
type InMemoryRefreshTokenStore struct {
	mu     sync.Mutex
	tokens map[string]*models.RefreshToken // keyed by token hash
	next   uint
}

func NewInMemoryRefreshTokenStore() *InMemoryRefreshTokenStore {
	return &InMemoryRefreshTokenStore{tokens: make(map[string]*models.RefreshToken)}
}

func (s *InMemoryRefreshTokenStore) Create(_ context.Context, token *models.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.create(token)
	return nil
}

func (s *InMemoryRefreshTokenStore) create(token *models.RefreshToken) {
	s.next++
	token.RefreshTokenID = s.next
	copied := *token
	s.tokens[token.Token] = &copied
}

func (s *InMemoryRefreshTokenStore) GetByHash(_ context.Context, hash, clientID string) (*models.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.tokens[hash]
	if !ok || (clientID != "" && token.ClientID != clientID) {
		return nil, nil
	}
	copied := *token
	return &copied, nil
}

func (s *InMemoryRefreshTokenStore) RevokeByHash(_ context.Context, hash, revokedByIP string, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.revoke(hash, revokedByIP, at), nil
}

func (s *InMemoryRefreshTokenStore) revoke(hash, revokedByIP string, at time.Time) bool {
	token, ok := s.tokens[hash]
	if !ok || token.IsRevoked {
		return false
	}
	token.IsRevoked = true
	token.RevokedAt = &at
	token.RevokedByIP = revokedByIP
	return true
}

func (s *InMemoryRefreshTokenStore) Rotate(_ context.Context, oldHash, revokedByIP string, at time.Time, replacement *models.RefreshToken) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.revoke(oldHash, revokedByIP, at) {
		return false, nil
	}
	s.create(replacement)
	return true, nil
}

func (s *InMemoryRefreshTokenStore) DeleteExpired(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for hash, token := range s.tokens {
		if token.ExpiresAt.Before(cutoff) {
			delete(s.tokens, hash)
			removed++
		}
	}
	return removed, nil
}
