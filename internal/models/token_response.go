package models

// AppCredential is the client-credentials request body for the token endpoint.
type AppCredential struct {
	ClientID string `json:"clientId" binding:"required"`
	Secret   string `json:"secret" binding:"required"`
}

// RefreshRequest asks for a new token pair in exchange for a refresh token.
type RefreshRequest struct {
	ClientID     string `json:"clientId" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RevokeRequest revokes a single refresh token.
type RevokeRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries a freshly issued access/refresh token pair.
type TokenResponse struct {
	AccessToken                  string `json:"accessToken"`
	ExpiresInSeconds             int    `json:"expiresInSeconds"`
	RefreshToken                 string `json:"refreshToken"`
	RefreshTokenExpiresInSeconds int    `json:"refreshTokenExpiresInSeconds"`
}
