package http

import (
	"github.com/gin-gonic/gin"

	"goldensage/internal/middleware"
	"goldensage/internal/model"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	patient := rg.Group("", mw.Auth(), mw.RequireRole(model.RolePatient))
	{
		patient.GET("/dashboard", h.PatientDashboard)
		patient.POST("/appointments", h.BookAppointment)
		patient.POST("/medications/refill", h.RequestRefill)
	}

	guardian := rg.Group("", mw.Auth(), mw.RequireRole(model.RoleGuardian))
	{
		guardian.GET("/patients/:id/dashboard", h.GuardianPatientView)
		guardian.GET("/emergency/check", h.CheckEmergency)
	}
}
