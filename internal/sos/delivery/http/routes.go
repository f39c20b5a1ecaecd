package http

import (
	"github.com/gin-gonic/gin"

	"goldensage/internal/middleware"
	"goldensage/internal/model"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// SOS belongs to the patient surface.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	group := rg.Group("/sos", mw.Auth(), mw.RequireRole(model.RolePatient))
	{
		group.POST("/trigger", h.Trigger)
		group.GET("", h.List)
	}
}
