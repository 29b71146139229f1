package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"scopelock-api/internal/auth"
	"scopelock-api/internal/handler"
	"scopelock-api/internal/metrics"
	"scopelock-api/internal/middleware"
	"scopelock-api/internal/repository"
	"scopelock-api/internal/service"
)

// Config holds all router dependencies
type Config struct {
	DB             *gorm.DB
	Redis          *redis.Client
	Logger         *zap.Logger
	JWTSecret      string
	BasePath       string
	AllowedOrigins []string
	Metrics        *metrics.Metrics
}

// Setup wires repositories, services, and handlers into a gin engine
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Metrics(cfg.Metrics))

	// Initialize repositories
	projectRepo := repository.NewProjectRepository(cfg.DB)
	featureRepo := repository.NewFeatureRepository(cfg.DB)

	// Initialize services
	projectService := service.NewProjectService(projectRepo, featureRepo, cfg.Metrics, cfg.Logger)
	featureService := service.NewFeatureService(projectRepo, featureRepo, cfg.Metrics, cfg.Logger)

	// Initialize token validator (signature + Redis blacklist)
	validator := auth.NewValidator(cfg.JWTSecret, cfg.Redis, cfg.Logger)

	// Initialize handlers
	projectHandler := handler.NewProjectHandler(projectService)
	featureHandler := handler.NewFeatureHandler(featureService)
	healthHandler := handler.NewHealthHandler(cfg.DB, cfg.Redis)

	// Health endpoints (no auth)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes with base path
	api := r.Group(cfg.BasePath)
	{
		// Health under base path
		api.GET("/health", healthHandler.Health)
		api.GET("/ready", healthHandler.Ready)

		// Authenticated routes
		authenticated := api.Group("")
		authenticated.Use(middleware.AuthWithValidator(validator))
		{
			// Project routes
			authenticated.POST("/projects", projectHandler.CreateProject)
			authenticated.GET("/projects", projectHandler.ListProjects)
			authenticated.GET("/projects/:projectId", projectHandler.GetProject)
			authenticated.PUT("/projects/:projectId", projectHandler.UpdateProject)
			authenticated.DELETE("/projects/:projectId", projectHandler.DeleteProject)

			// Feature routes
			authenticated.POST("/projects/:projectId/features", featureHandler.CreateFeature)
			authenticated.GET("/projects/:projectId/features", featureHandler.ListFeatures)
			authenticated.PUT("/features/:featureId", featureHandler.UpdateFeature)
			authenticated.DELETE("/features/:featureId", featureHandler.DeleteFeature)
		}
	}

	return r
}
