package http

import (
	"github.com/gin-gonic/gin"

	"goldensage/internal/health"
	"goldensage/pkg/log"
)

// Handler is the public interface for the health HTTP delivery layer.
type Handler interface {
	PatientDashboard(c *gin.Context)
	GuardianPatientView(c *gin.Context)
	BookAppointment(c *gin.Context)
	RequestRefill(c *gin.Context)
	CheckEmergency(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc health.UseCase
}

// New creates a new HTTP handler for the health domain.
func New(l log.Logger, uc health.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
