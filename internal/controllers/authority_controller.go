package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirtstore/shirts-api/internal/auth"
	"github.com/shirtstore/shirts-api/internal/config"
	"github.com/shirtstore/shirts-api/internal/models"
	log "github.com/sirupsen/logrus"
)

// AuthorityController exposes the token issuance, refresh and revocation
// endpoints for client applications.
type AuthorityController struct {
	authenticator *auth.Authenticator
	opts          config.JWTOptions
}

func NewAuthorityController(authenticator *auth.Authenticator, opts config.JWTOptions) *AuthorityController {
	return &AuthorityController{
		authenticator: authenticator,
		opts:          opts,
	}
}

// Authenticate godoc
// @Summary Authenticate Application
// @Description Validates client credentials and returns an access/refresh token pair
// @Tags authority
// @Accept json
// @Produce json
// @Param credential body models.AppCredential true "Client credentials"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Router /auth [post]
func (ac *AuthorityController) Authenticate(c *gin.Context) {
	var credential models.AppCredential
	if err := c.ShouldBindJSON(&credential); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	ctx := c.Request.Context()
	if !ac.authenticator.Authenticate(ctx, credential.ClientID, credential.Secret) {
		// No detail beyond a generic failure on bad credentials
		c.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized, "You are not authorized."))
		return
	}

	accessExpires := time.Now().UTC().Add(time.Duration(ac.opts.AccessTokenExpiryMinutes) * time.Minute)
	refreshExpires := time.Now().UTC().Add(time.Duration(ac.opts.RefreshTokenExpiryMinutes) * time.Minute)
	reqCtx := auth.RequestContextFrom(c.Request)

	accessToken, err := ac.authenticator.CreateToken(ctx, credential.ClientID, accessExpires)
	if err != nil {
		log.WithError(err).Error("Token generation failed")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Token generation failed"))
		return
	}

	refreshToken, err := ac.authenticator.CreateRefreshToken(ctx, credential.ClientID, refreshExpires, reqCtx)
	if err != nil {
		log.WithError(err).Error("Refresh token generation failed")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Token generation failed"))
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{
		AccessToken:                  accessToken,
		ExpiresInSeconds:             ac.opts.AccessTokenExpiryMinutes * 60,
		RefreshToken:                 refreshToken,
		RefreshTokenExpiresInSeconds: ac.opts.RefreshTokenExpiryMinutes * 60,
	})
}

// Refresh godoc
// @Summary Refresh Access Token
// @Description Exchanges a valid refresh token for a new access/refresh token pair, revoking the old refresh token
// @Tags authority
// @Accept json
// @Produce json
// @Param request body models.RefreshRequest true "Refresh request"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Router /auth/refresh [post]
func (ac *AuthorityController) Refresh(c *gin.Context) {
	var request models.RefreshRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	reqCtx := auth.RequestContextFrom(c.Request)
	pair, err := ac.authenticator.RefreshAccessToken(c.Request.Context(), request.RefreshToken, request.ClientID, reqCtx)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidRefreshToken) || errors.Is(err, auth.ErrInvalidClient) {
			c.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrInvalidRefreshToken, "Invalid or expired refresh token."))
			return
		}
		log.WithError(err).Error("Refresh failed")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Refresh failed"))
		return
	}

	c.JSON(http.StatusOK, pair)
}

// Revoke godoc
// @Summary Revoke Refresh Token
// @Description Marks a refresh token revoked; unknown or already-revoked tokens yield 404
// @Tags authority
// @Accept json
// @Produce json
// @Param request body models.RevokeRequest true "Revoke request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /auth/revoke [post]
func (ac *AuthorityController) Revoke(c *gin.Context) {
	var request models.RevokeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	reqCtx := auth.RequestContextFrom(c.Request)
	revoked, err := ac.authenticator.RevokeRefreshToken(c.Request.Context(), request.RefreshToken, reqCtx)
	if err != nil {
		log.WithError(err).Error("Revoke failed")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Revoke failed"))
		return
	}
	if !revoked {
		c.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Token not found or already revoked."))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "token_revoked"})
}
