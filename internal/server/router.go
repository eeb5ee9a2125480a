package server

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/truthlens-backend/internal/http/handlers"
	"github.com/yungbote/truthlens-backend/internal/http/middleware"
	"github.com/yungbote/truthlens-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log             *logger.Logger
	CORSOrigins     []string
	HealthHandler   *handlers.HealthHandler
	UserHandler     *handlers.UserHandler
	UploadHandler   *handlers.UploadHandler
	AnalysisHandler *handlers.AnalysisHandler
	EventsHandler   *handlers.EventsHandler
	AdminHandler    *handlers.AdminHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.CORSOrigins))
	router.Use(middleware.AttachTraceContext())
	router.Use(middleware.RequestLogger(cfg.Log))

	router.GET("/", cfg.HealthHandler.Root)
	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	api := router.Group("/api")
	{
		// Users
		api.POST("/users", cfg.UserHandler.Create)
		api.GET("/users/:id", cfg.UserHandler.Get)

		// Uploads
		api.POST("/uploads", cfg.UploadHandler.Create)
		api.GET("/uploads/:id", cfg.UploadHandler.Get)
		api.DELETE("/uploads/:id", cfg.UploadHandler.Clear)

		// Analyses
		api.GET("/analyses/:id", cfg.AnalysisHandler.Get)
		api.POST("/uploads/:id/analysis", cfg.AnalysisHandler.Start)
		api.GET("/uploads/:id/events", cfg.EventsHandler.AnalysisEvents)

		// Admin
		api.GET("/admin/documents/:kind", cfg.AdminHandler.ListDocuments)
	}

	return router
}
