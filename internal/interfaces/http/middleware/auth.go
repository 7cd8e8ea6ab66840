// internal/interfaces/http/middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/verve-shop/storefront/internal/pkg/auth"
)

const (
	adminEmailKey = "admin_email"
	isAdminKey    = "is_admin"
	claimsKey     = "token_claims"
)

// OptionalAdmin marks the request as admin when a valid token is present.
// Requests without a usable token continue as anonymous shoppers.
func OptionalAdmin(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := auth.ExtractTokenFromHeader(c.GetHeader("Authorization"))
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// RequireAdmin rejects requests without a valid admin token
func RequireAdmin(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header required",
			})
			return
		}

		tokenString := auth.ExtractTokenFromHeader(authHeader)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization header format",
			})
			return
		}

		claims, err := jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			return
		}

		if !claims.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
			})
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(adminEmailKey, claims.Email)
	c.Set(isAdminKey, claims.IsAdmin)
	c.Set(claimsKey, claims)
}

// IsAdminFromContext checks if the caller is an admin
func IsAdminFromContext(c *gin.Context) bool {
	return c.GetBool(isAdminKey)
}

// GetAdminEmailFromContext extracts the admin email from gin context
func GetAdminEmailFromContext(c *gin.Context) (string, bool) {
	email := c.GetString(adminEmailKey)
	return email, email != ""
}
