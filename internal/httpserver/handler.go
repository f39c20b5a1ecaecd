package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	assistantHTTP "goldensage/internal/assistant/delivery/http"
	healthHTTP "goldensage/internal/health/delivery/http"
	"goldensage/internal/middleware"
	notificationHTTP "goldensage/internal/notification/delivery/http"
	sosHTTP "goldensage/internal/sos/delivery/http"
	taskHTTP "goldensage/internal/task/delivery/http"
	userHTTP "goldensage/internal/user/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	mw := middleware.New(srv.l, srv.jwtManager)

	userHTTP.RegisterRoutes(api, srv.userHandler, mw)
	taskHTTP.RegisterRoutes(api, srv.taskHandler, mw)
	healthHTTP.RegisterRoutes(api, srv.healthHandler, mw)
	notificationHTTP.RegisterRoutes(api, srv.notificationHandler, mw)
	sosHTTP.RegisterRoutes(api, srv.sosHandler, mw)
	assistantHTTP.RegisterRoutes(api, srv.assistantHandler, mw, srv.assistantRateLimit)

	srv.l.Infof(ctx, "Domain routes registered under /api/v1")
	return nil
}
