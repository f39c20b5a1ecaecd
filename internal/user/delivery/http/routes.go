package http

import (
	"github.com/gin-gonic/gin"

	"goldensage/internal/middleware"
	"goldensage/internal/model"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Signup and login are public; everything else requires a session.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	auth := rg.Group("/auth")
	{
		auth.POST("/guardian/signup", h.SignupGuardian)
		auth.POST("/guardian/login", h.LoginGuardian)
		auth.POST("/patient/login", h.LoginPatient)
		auth.POST("/unity/signup", h.SignupUnity)
		auth.POST("/unity/login", h.LoginUnity)
	}

	rg.GET("/me", mw.Auth(), h.Profile)

	patients := rg.Group("/patients", mw.Auth(), mw.RequireRole(model.RoleGuardian))
	{
		patients.POST("", h.SignupPatient)
		patients.GET("", h.ListPatients)
	}
}
