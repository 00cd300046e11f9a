package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/shirtstore/shirts-api/internal/models"
	"github.com/shirtstore/shirts-api/internal/security"
	log "github.com/sirupsen/logrus"
)

const rawTokenBytes = 64

// RefreshTokenService owns the lifecycle of refresh tokens: creation, lookup,
// revocation and rotation. All token state management goes through here; the
// Authenticator never mutates token records itself.
type RefreshTokenService struct {
	store RefreshTokenStore
}

func NewRefreshTokenService(store RefreshTokenStore) *RefreshTokenService {
	return &RefreshTokenService{store: store}
}

// Create mints a new refresh token for the given client. The returned raw
// value is the only time it ever exists outside the caller; the store only
// sees its hash.
func (s *RefreshTokenService) Create(ctx context.Context, clientID string, expiresAt time.Time, reqCtx RequestContext) (string, error) {
	raw, err := generateSecureToken()
	if err != nil {
		return "", err
	}

	record := &models.RefreshToken{
		Token:         security.HashToken(raw),
		ClientID:      clientID,
		ExpiresAt:     expiresAt,
		CreatedAt:     time.Now().UTC(),
		CreatedFromIP: reqCtx.IP,
		DeviceInfo:    reqCtx.DeviceInfo,
		IsRevoked:     false,
	}

	if err := s.store.Create(ctx, record); err != nil {
		return "", fmt.Errorf("failed to persist refresh token: %w", err)
	}

	log.WithFields(log.Fields{
		"client_id": clientID,
		"ip":        reqCtx.IP,
	}).Info("Created refresh token")

	return raw, nil
}

// Get looks up a refresh-token record by its hash, optionally scoped to an
// owning client. Unknown hashes yield (nil, nil).
func (s *RefreshTokenService) Get(ctx context.Context, hashedToken, clientID string) (*models.RefreshToken, error) {
	if hashedToken == "" {
		return nil, nil
	}
	return s.store.GetByHash(ctx, hashedToken, clientID)
}

// Revoke marks the token revoked, recording when and from which IP. Unknown
// or already-revoked tokens are a no-op returning false.
func (s *RefreshTokenService) Revoke(ctx context.Context, rawToken string, reqCtx RequestContext) (bool, error) {
	hashed := security.HashToken(rawToken)

	revoked, err := s.store.RevokeByHash(ctx, hashed, orUnknown(reqCtx.IP), time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	if revoked {
		log.WithField("ip", reqCtx.IP).Info("Revoked refresh token")
	}
	return revoked, nil
}

// Rotate atomically revokes the old token (by hash) and mints its
// replacement. Exactly one of two concurrent rotations of the same token can
// win; the loser gets ErrInvalidRefreshToken.
func (s *RefreshTokenService) Rotate(ctx context.Context, oldHash, clientID string, expiresAt time.Time, reqCtx RequestContext) (string, error) {
	raw, err := generateSecureToken()
	if err != nil {
		return "", err
	}

	replacement := &models.RefreshToken{
		Token:         security.HashToken(raw),
		ClientID:      clientID,
		ExpiresAt:     expiresAt,
		CreatedAt:     time.Now().UTC(),
		CreatedFromIP: reqCtx.IP,
		DeviceInfo:    reqCtx.DeviceInfo,
		IsRevoked:     false,
	}

	rotated, err := s.store.Rotate(ctx, oldHash, orUnknown(reqCtx.IP), time.Now().UTC(), replacement)
	if err != nil {
		return "", fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	if !rotated {
		return "", ErrInvalidRefreshToken
	}

	log.WithFields(log.Fields{
		"client_id": clientID,
		"ip":        reqCtx.IP,
	}).Info("Rotated refresh token")

	return raw, nil
}

// DeleteExpired removes records whose expiry is already in the past. The core
// never deletes tokens on its own; this is for an optional maintenance loop.
func (s *RefreshTokenService) DeleteExpired(ctx context.Context) (int64, error) {
	return s.store.DeleteExpired(ctx, time.Now().UTC())
}

// generateSecureToken returns a URL-safe encoding of 64 bytes of
// cryptographic randomness.
func generateSecureToken() (string, error) {
	buf := make([]byte, rawTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func orUnknown(ip string) string {
	if ip == "" {
		return "unknown"
	}
	return ip
}
