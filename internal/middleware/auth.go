package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/haojie/dochub-api/internal/constants"
	"github.com/haojie/dochub-api/internal/response"
	"github.com/haojie/dochub-api/internal/services"
)

// RequireAuth validates the Bearer access token and stores the caller
// identity in the request context.
func RequireAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c, "")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		// Refresh tokens cannot be used to call protected endpoints.
		if claims.TokenType != services.TokenTypeAccess {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyIsSuperuser, claims.IsSuperuser)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint64)
	return userID, ok
}

// IsSuperuser reports whether the current caller is a superuser.
func IsSuperuser(c *gin.Context) bool {
	value, exists := c.Get(constants.ContextKeyIsSuperuser)
	if !exists {
		return false
	}
	isSuper, ok := value.(bool)
	return ok && isSuper
}
