package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	assistantHTTP "goldensage/internal/assistant/delivery/http"
	healthHTTP "goldensage/internal/health/delivery/http"
	notificationHTTP "goldensage/internal/notification/delivery/http"
	sosHTTP "goldensage/internal/sos/delivery/http"
	taskHTTP "goldensage/internal/task/delivery/http"
	userHTTP "goldensage/internal/user/delivery/http"
	"goldensage/pkg/log"
	"goldensage/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Auth
	jwtManager scope.Manager

	// Domain handlers
	userHandler         userHTTP.Handler
	taskHandler         taskHTTP.Handler
	healthHandler       healthHTTP.Handler
	notificationHandler notificationHTTP.Handler
	sosHandler          sosHTTP.Handler
	assistantHandler    assistantHTTP.Handler

	assistantRateLimit int
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	JWTManager scope.Manager

	UserHandler         userHTTP.Handler
	TaskHandler         taskHTTP.Handler
	HealthHandler       healthHTTP.Handler
	NotificationHandler notificationHTTP.Handler
	SOSHandler          sosHTTP.Handler
	AssistantHandler    assistantHTTP.Handler

	// AssistantRateLimit is requests per minute per user on the chat
	// endpoint.
	AssistantRateLimit int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                   logger,
		gin:                 gin.Default(),
		port:                cfg.Port,
		mode:                cfg.Mode,
		environment:         cfg.Environment,
		jwtManager:          cfg.JWTManager,
		userHandler:         cfg.UserHandler,
		taskHandler:         cfg.TaskHandler,
		healthHandler:       cfg.HealthHandler,
		notificationHandler: cfg.NotificationHandler,
		sosHandler:          cfg.SOSHandler,
		assistantHandler:    cfg.AssistantHandler,
		assistantRateLimit:  cfg.AssistantRateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	return nil
}
