package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	commandHTTP "personal-secretary/internal/command/delivery/http"
	"personal-secretary/internal/model"
	taskHTTP "personal-secretary/internal/task/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	ctx := context.Background()

	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.CORS())
	srv.gin.Use(srv.mw.SecurityHeaders())
	srv.gin.Use(srv.mw.RateLimit())

	srv.l.Infof(ctx, "Middlewares registered (environment: %s)", srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI is not exposed in production.
	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"),
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}
}

func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	taskHTTP.RegisterRoutes(api.Group("/tasks"), srv.taskHandler)
	srv.l.Infof(ctx, "Task routes registered under /api/v1/tasks")

	commandHTTP.RegisterRoutes(api.Group("/command"), srv.commandHandler)
	srv.l.Infof(ctx, "Command route registered at POST /api/v1/command")
}
