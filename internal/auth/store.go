package auth

import (
	"context"
	"time"

	"github.com/shirtstore/shirts-api/internal/models"
)

// ApplicationStore is the persistence boundary for registered applications.
// Lookups return (nil, nil) for unknown clients so callers can fail closed
// without inspecting backend-specific errors.
type ApplicationStore interface {
	GetByClientID(ctx context.Context, clientID string) (*models.Application, error)
	Create(ctx context.Context, app *models.Application) error
}

// RefreshTokenStore is the persistence boundary for refresh-token records.
// All records are keyed by the hash of the raw token; the raw value never
// reaches the store.
type RefreshTokenStore interface {
	Create(ctx context.Context, token *models.RefreshToken) error

	// GetByHash looks a record up by token hash, optionally scoped to an
	// owning client (empty clientID matches any owner). Unknown hashes
	// return (nil, nil).
	GetByHash(ctx context.Context, hash, clientID string) (*models.RefreshToken, error)

	// RevokeByHash marks a token revoked only if it is not revoked already
	// (compare-and-swap on the revoked flag). It reports whether this call
	// performed the transition.
	RevokeByHash(ctx context.Context, hash, revokedByIP string, at time.Time) (bool, error)

	// Rotate atomically revokes the old token and creates its replacement.
	// At most one of two concurrent rotations of the same hash can succeed;
	// the loser gets (false, nil) and must not have created anything.
	Rotate(ctx context.Context, oldHash, revokedByIP string, at time.Time, replacement *models.RefreshToken) (bool, error)

	// DeleteExpired removes records whose expiry predates the cutoff.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
