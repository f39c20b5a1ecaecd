package http

import (
	"github.com/gin-gonic/gin"

	"goldensage/internal/notification"
	"goldensage/pkg/log"
)

// Handler is the public interface for the notification HTTP delivery layer.
type Handler interface {
	Feed(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc notification.UseCase
}

// New creates a new HTTP handler for the notification domain.
func New(l log.Logger, uc notification.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
