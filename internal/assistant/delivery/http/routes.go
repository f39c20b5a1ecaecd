package http

import (
	"github.com/gin-gonic/gin"

	"goldensage/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The chat endpoint is authenticated and rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware, rateLimitPerMin int) {
	group := rg.Group("/assistant")
	{
		group.POST("/chat", mw.Auth(), mw.RateLimit(rateLimitPerMin), h.Chat)
	}
}
