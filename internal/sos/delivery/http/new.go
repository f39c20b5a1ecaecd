package http

import (
	"github.com/gin-gonic/gin"

	"goldensage/internal/sos"
	"goldensage/pkg/log"
)

// Handler is the public interface for the SOS HTTP delivery layer.
type Handler interface {
	Trigger(c *gin.Context)
	List(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc sos.UseCase
}

// New creates a new HTTP handler for the SOS domain.
func New(l log.Logger, uc sos.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
