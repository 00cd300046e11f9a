package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shirtstore/shirts-api/internal/auth"
)

const claimsContextKey = "tokenClaims"

// TokenAuth validates the Bearer access token on every protected request.
// A missing header or a token that fails signature/lifetime/issuer checks is
// rejected with 401; on success the verified claim set is stored in the
// request context for downstream claim policies.
func TokenAuth(authenticator *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.TrimSpace(authHeader) == "" {
			respondWithAuthError(c, http.StatusUnauthorized, "authorization_required",
				"Missing Authorization header. A valid Bearer token is required.")
			return
		}

		claims := authenticator.VerifyToken(authHeader, "")
		if claims == nil {
			respondWithAuthError(c, http.StatusUnauthorized, "invalid_token",
				"The access token is invalid or expired.")
			return
		}

		c.Set(claimsContextKey, claims)
		if sub, ok := claims["sub"].(string); ok && sub != "" {
			c.Set("clientID", sub)
		}

		c.Next()
	}
}

// ClaimsFrom returns the verified claim set stored by TokenAuth, or nil when
// the request never passed through it.
func ClaimsFrom(c *gin.Context) jwt.MapClaims {
	value, ok := c.Get(claimsContextKey)
	if !ok {
		return nil
	}
	claims, _ := value.(jwt.MapClaims)
	return claims
}

// respondWithAuthError responds with an RFC 6750 style error body and aborts
func respondWithAuthError(c *gin.Context, status int, errorCode, description string) {
	c.JSON(status, gin.H{
		"error":             errorCode,
		"error_description": description,
	})
	c.Abort()
}
