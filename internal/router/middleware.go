package router

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront-api/pkg/auth"
	"storefront-api/pkg/global"
)

const claimsKey = "claims"

// RequireAuth extracts the bearer token, verifies it against the identity
// service and stores the resulting claims on the context. Anything short of
// a verified token is a 401; verifier outages are a 500, not a 401, so
// callers can tell their token from our infrastructure.
func RequireAuth(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, global.ErrorBody{Error: "Unauthorized"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		claims, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, global.ErrorBody{Error: "Unauthorized"})
				return
			}
			log.Printf("Error verifying token: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, global.ErrorBody{Error: "Internal Server Error"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// CurrentClaims returns the verified claims set by RequireAuth.
func CurrentClaims(c *gin.Context) *auth.Claims {
	return c.MustGet(claimsKey).(*auth.Claims)
}
