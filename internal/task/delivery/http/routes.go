package http

import (
	"github.com/gin-gonic/gin"

	"goldensage/internal/middleware"
	"goldensage/internal/model"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Tasks belong to the patient surface.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth(), mw.RequireRole(model.RolePatient))
	{
		tasks.POST("", h.Add)
		tasks.GET("/today", h.ListToday)
		tasks.PATCH("/:id/toggle", h.Toggle)
	}
}
