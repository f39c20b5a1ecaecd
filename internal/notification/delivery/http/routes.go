package http

import (
	"github.com/gin-gonic/gin"

	"goldensage/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/notifications", mw.Auth(), h.Feed)
}
