package http

import (
	"github.com/gin-gonic/gin"

	"goldensage/internal/user"
	"goldensage/pkg/log"
)

// Handler is the public interface for the user HTTP delivery layer.
type Handler interface {
	SignupGuardian(c *gin.Context)
	LoginGuardian(c *gin.Context)
	SignupPatient(c *gin.Context)
	LoginPatient(c *gin.Context)
	SignupUnity(c *gin.Context)
	LoginUnity(c *gin.Context)
	Profile(c *gin.Context)
	ListPatients(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc user.UseCase
}

// New creates a new HTTP handler for the user domain.
func New(l log.Logger, uc user.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
