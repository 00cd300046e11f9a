package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ClaimRequirement is a declarative (claimType, claimValue) authorization
// policy attached to a route at registration time.
type ClaimRequirement struct {
	Type  string
	Value string
}

// RequireScope is shorthand for the common case of requiring one value in
// the space-delimited "scope" claim.
func RequireScope(scope string) gin.HandlerFunc {
	return RequireClaims(ClaimRequirement{Type: "scope", Value: scope})
}

// RequireClaims evaluates every requirement against the claim set stored by
// TokenAuth. Claim types compare case-insensitively; claim values are
// space-split, and a requirement is met when its value appears anywhere in
// that list (also case-insensitively). An unmet requirement yields 403
// rather than TokenAuth's 401: identity was valid, authorization was not.
func RequireClaims(requirements ...ClaimRequirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFrom(c)
		if claims == nil {
			respondWithAuthError(c, http.StatusUnauthorized, "authorization_required",
				"No authenticated token on this request.")
			return
		}

		for _, req := range requirements {
			if !claimSatisfied(claims, req) {
				respondWithAuthError(c, http.StatusForbidden, "insufficient_scope",
					"The token does not carry the required '"+req.Type+"' claim value.")
				return
			}
		}

		c.Next()
	}
}

func claimSatisfied(claims jwt.MapClaims, req ClaimRequirement) bool {
	for claimType, claimValue := range claims {
		if !strings.EqualFold(claimType, req.Type) {
			continue
		}
		value, ok := claimValue.(string)
		if !ok {
			continue
		}
		for _, candidate := range strings.Fields(value) {
			if strings.EqualFold(candidate, req.Value) {
				return true
			}
		}
	}
	return false
}
