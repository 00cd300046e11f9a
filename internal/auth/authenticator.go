package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shirtstore/shirts-api/internal/config"
	"github.com/shirtstore/shirts-api/internal/models"
	"github.com/shirtstore/shirts-api/internal/security"
	log "github.com/sirupsen/logrus"
)

// Authenticator orchestrates client-credential verification, signed
// access-token issuance, and the refresh-token lifecycle. Revocation and
// rotation are delegated to the RefreshTokenService so all token state
// management stays in one place.
type Authenticator struct {
	apps          ApplicationStore
	refreshTokens *RefreshTokenService
	opts          config.JWTOptions
	signingKey    []byte
}

func NewAuthenticator(apps ApplicationStore, refreshTokens *RefreshTokenService, opts config.JWTOptions) (*Authenticator, error) {
	if opts.SecretKey == "" {
		return nil, fmt.Errorf("jwt signing secret is not configured")
	}
	return &Authenticator{
		apps:          apps,
		refreshTokens: refreshTokens,
		opts:          opts,
		signingKey:    []byte(opts.SecretKey),
	}, nil
}

// Authenticate verifies client credentials against the application store.
// It fails closed: empty input, unknown clients and hash mismatches all
// return false, never an error. Each failure category is logged for audit,
// never the secret itself.
func (a *Authenticator) Authenticate(ctx context.Context, clientID, secret string) bool {
	if strings.TrimSpace(clientID) == "" || strings.TrimSpace(secret) == "" {
		log.Warn("Authentication failed: empty clientId or secret")
		return false
	}

	app, err := a.apps.GetByClientID(ctx, clientID)
	if err != nil {
		log.WithError(err).WithField("client_id", clientID).Warn("Authentication failed: application lookup error")
		return false
	}
	if app == nil {
		log.WithField("client_id", clientID).Warn("Authentication failed: clientId not found")
		return false
	}

	if !security.VerifySecret(secret, app.SecretSalt, app.SecretHash) {
		log.WithField("client_id", clientID).Warn("Authentication failed: invalid secret")
		return false
	}

	log.WithField("client_id", clientID).Info("Authentication successful")
	return true
}

// CreateToken issues a signed access token for the given clientId, valid
// until expiresAt. It fails with ErrInvalidClient when the clientId does not
// resolve to a registered application.
func (a *Authenticator) CreateToken(ctx context.Context, clientID string, expiresAt time.Time) (string, error) {
	app, err := a.apps.GetByClientID(ctx, clientID)
	if err != nil {
		return "", fmt.Errorf("application lookup failed: %w", err)
	}
	if app == nil {
		return "", ErrInvalidClient
	}
	return a.CreateTokenForApp(app, expiresAt)
}

// CreateTokenForApp builds and signs an access token for an already-resolved
// application. Scopes are embedded as a single space-joined "scope" claim.
func (a *Authenticator) CreateTokenForApp(app *models.Application, expiresAt time.Time) (string, error) {
	if app == nil {
		return "", ErrInvalidClient
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":     app.ClientID,
		"AppName": app.ApplicationName,
		"iat":     now.Unix(),
		"nbf":     now.Unix(),
		"exp":     expiresAt.Unix(),
	}
	if scopes := app.ScopeList(); len(scopes) > 0 {
		claims["scope"] = strings.Join(scopes, " ")
	}
	if a.opts.Issuer != "" {
		claims["iss"] = a.opts.Issuer
	}
	if a.opts.Audience != "" {
		claims["aud"] = a.opts.Audience
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// CreateRefreshToken delegates to the RefreshTokenService. The returned raw
// token is handed to the caller exactly once and only its hash is stored.
func (a *Authenticator) CreateRefreshToken(ctx context.Context, clientID string, expiresAt time.Time, reqCtx RequestContext) (string, error) {
	return a.refreshTokens.Create(ctx, clientID, expiresAt, reqCtx)
}

// ValidateRefreshToken reports whether the raw token maps to a stored record
// that is owned by clientID, not revoked and not expired.
func (a *Authenticator) ValidateRefreshToken(ctx context.Context, refreshToken, clientID string) bool {
	hashed := security.HashToken(refreshToken)
	token, err := a.refreshTokens.Get(ctx, hashed, clientID)
	if err != nil {
		log.WithError(err).Warn("Refresh token lookup failed")
		return false
	}
	return token != nil && token.IsActive()
}

// RevokeRefreshToken marks the token revoked. Unknown or already-revoked
// tokens are an idempotent no-op returning false.
func (a *Authenticator) RevokeRefreshToken(ctx context.Context, refreshToken string, reqCtx RequestContext) (bool, error) {
	return a.refreshTokens.Revoke(ctx, refreshToken, reqCtx)
}

// RefreshAccessToken is the rotation path: it validates the presented
// refresh token, atomically revokes it while minting its replacement, and
// issues a fresh access token. A missing, revoked, expired or
// wrongly-owned token fails with ErrInvalidRefreshToken, as does the
// loser of two concurrent rotations of the same token.
func (a *Authenticator) RefreshAccessToken(ctx context.Context, refreshToken, clientID string, reqCtx RequestContext) (*models.TokenResponse, error) {
	hashed := security.HashToken(refreshToken)

	stored, err := a.refreshTokens.Get(ctx, hashed, clientID)
	if err != nil {
		return nil, fmt.Errorf("refresh token lookup failed: %w", err)
	}
	if stored == nil || !stored.IsActive() {
		log.WithField("client_id", clientID).Warn("Invalid or expired refresh token")
		return nil, ErrInvalidRefreshToken
	}

	app, err := a.apps.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("application lookup failed: %w", err)
	}
	if app == nil {
		return nil, ErrInvalidClient
	}

	accessExpires := time.Now().UTC().Add(time.Duration(a.opts.AccessTokenExpiryMinutes) * time.Minute)
	refreshExpires := time.Now().UTC().Add(time.Duration(a.opts.RefreshTokenExpiryMinutes) * time.Minute)

	newRefreshToken, err := a.refreshTokens.Rotate(ctx, hashed, clientID, refreshExpires, reqCtx)
	if err != nil {
		// The CAS loser lands here with ErrInvalidRefreshToken.
		return nil, err
	}

	newAccessToken, err := a.CreateTokenForApp(app, accessExpires)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"client_id": clientID,
		"ip":        reqCtx.IP,
	}).Info("Access token refreshed")

	return &models.TokenResponse{
		AccessToken:                  newAccessToken,
		ExpiresInSeconds:             a.opts.AccessTokenExpiryMinutes * 60,
		RefreshToken:                 newRefreshToken,
		RefreshTokenExpiresInSeconds: a.opts.RefreshTokenExpiryMinutes * 60,
	}, nil
}

// VerifyToken validates an access token's signature, lifetime and (when
// configured) issuer and audience, with zero clock-skew tolerance. It accepts
// an optional "Bearer " prefix and an optional override signing key. Invalid
// tokens of any kind return nil claims; garbage input is an expected
// adversarial case, not an error.
func (a *Authenticator) VerifyToken(token string, overrideKey string) jwt.MapClaims {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	token = stripBearerPrefix(token)

	key := a.signingKey
	if overrideKey != "" {
		key = []byte(overrideKey)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(0),
	}
	if a.opts.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.opts.Issuer))
	}
	if a.opts.Audience != "" {
		opts = append(opts, jwt.WithAudience(a.opts.Audience))
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		log.WithError(err).Debug("Token validation failed")
		return nil
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	return claims
}

func stripBearerPrefix(token string) string {
	const prefix = "bearer "
	if len(token) >= len(prefix) && strings.EqualFold(token[:len(prefix)], prefix) {
		return strings.TrimSpace(token[len(prefix):])
	}
	return token
}
