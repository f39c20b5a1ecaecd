package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"goldensage/internal/model"
	"goldensage/pkg/response"
)

// Context keys set by Auth.
const (
	CtxUserIDKey = "auth_user_id"
	CtxRoleKey   = "auth_role"
)

// Auth verifies the Bearer token and stores the identity on the context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: token rejected: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(CtxUserIDKey, payload.UserID)
		c.Set(CtxRoleKey, payload.Role)
		c.Next()
	}
}

// RequireRole rejects authenticated requests whose role is not listed.
func (m Middleware) RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetRole(c)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		response.Forbidden(c)
		c.Abort()
	}
}

// GetUserID returns the authenticated user id set by Auth.
func GetUserID(c *gin.Context) string {
	return c.GetString(CtxUserIDKey)
}

// GetRole returns the authenticated role set by Auth.
func GetRole(c *gin.Context) model.Role {
	return model.ParseRole(c.GetString(CtxRoleKey))
}
