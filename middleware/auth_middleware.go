package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Anklebracelet24/movieApp-ruiz/services"
)

const claimsKey = "claims"

// Authenticated extracts a bearer token from the Authorization header,
// verifies it, and attaches the decoded claims to the request context.
// Failing authentication never returns a success status.
func Authenticated(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "authorization header required"})
			return
		}

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "authorization header must use the Bearer scheme"})
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// AdminOnly gates a route on the admin flag of the claims attached by
// Authenticated. Missing or malformed claims fail closed.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok || !claims.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Action Forbidden"})
			return
		}
		c.Next()
	}
}

// GetClaims returns the claims attached by Authenticated, if any.
func GetClaims(c *gin.Context) (*services.Claims, bool) {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*services.Claims)
	return claims, ok
}
