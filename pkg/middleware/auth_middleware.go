package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	UserIDHeader       = "X-User-Id"
	UserIDContextKey   = "user_id"
	missingUserMessage = "X-User-Id header is empty"
)

// AuthMiddleware trusts the identity forwarded by the API gateway, which has
// already authenticated the caller.
type AuthMiddleware interface {
	RequireUser() gin.HandlerFunc
}

type authMiddleware struct {
}

func (a *authMiddleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": missingUserMessage,
			})
			return
		}
		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

// UserID returns the caller set by RequireUser, or "" outside of it.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDContextKey)
}

func NewAuthMiddleware() AuthMiddleware {
	return &authMiddleware{}
}
