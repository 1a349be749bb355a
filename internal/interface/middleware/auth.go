package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/movie-review-api/pkg/helpers"
	"github.com/oksasatya/movie-review-api/pkg/response"
)

// CtxPrincipalKey is the Gin context key holding the verified token claims.
const CtxPrincipalKey = "principal"

// BearerAuth reads the Authorization header, verifies the bearer token and
// injects the decoded claims into the context as the request principal.
// A missing header or empty token segment is 401; a token that fails
// verification, whether bad signature or expired, is 403 — the two causes are
// not distinguishable from outside.
func BearerAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.AbortMessage(c, http.StatusUnauthorized, "No permission - token missing.")
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
			response.AbortMessage(c, http.StatusUnauthorized, "No permission - token missing.")
			return
		}

		claims, err := jwt.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			response.AbortMessage(c, http.StatusForbidden, "No permission - invalid token.")
			return
		}
		c.Set(CtxPrincipalKey, claims)
		c.Next()
	}
}

// Principal returns the claims set by BearerAuth, or nil when the request
// did not pass through it.
func Principal(c *gin.Context) *helpers.Claims {
	v, ok := c.Get(CtxPrincipalKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*helpers.Claims)
	return claims
}
