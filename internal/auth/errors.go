package auth

import "errors"

var (
	// ErrInvalidClient is returned when a clientId does not resolve to a
	// registered application.
	ErrInvalidClient = errors.New("invalid client id")

	// ErrInvalidRefreshToken is returned from the refresh-rotation path when
	// the presented token is unknown, revoked, expired, or owned by another
	// client. Routine verification paths return false/nil instead; rotation
	// has no other channel to signal failure.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)
