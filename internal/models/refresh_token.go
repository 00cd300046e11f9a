package models

import (
	"time"
)

// RefreshToken is the persisted record of a rotating single-use refresh
// token. The Token column holds only the SHA-256 hash of the raw value; the
// raw token leaves the server exactly once, in the issuance response.
type RefreshToken struct {
	RefreshTokenID uint       `gorm:"primaryKey" json:"refreshTokenId"`
	Token          string     `gorm:"uniqueIndex;not null" json:"-"`
	ClientID       string     `gorm:"index;not null" json:"clientId"`
	ExpiresAt      time.Time  `gorm:"not null" json:"expiresAt"`
	CreatedAt      time.Time  `json:"createdAt"`
	CreatedFromIP  string     `json:"createdFromIp"`
	DeviceInfo     string     `json:"deviceInfo"`
	IsRevoked      bool       `gorm:"default:false" json:"isRevoked"`
	RevokedAt      *time.Time `json:"revokedAt,omitempty"`
	RevokedByIP    string     `json:"revokedByIp,omitempty"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

// IsExpired reports whether the token's lifetime has elapsed. Expiry is a
// derived state, computed at read time; nothing transitions the record.
func (rt *RefreshToken) IsExpired() bool {
	return !rt.ExpiresAt.After(time.Now().UTC())
}

// IsActive reports whether the token can still be redeemed: not revoked and
// not past its expiry.
func (rt *RefreshToken) IsActive() bool {
	return !rt.IsRevoked && !rt.IsExpired()
}
