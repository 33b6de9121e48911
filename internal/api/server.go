package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexconsult/nfse-api/internal/api/handlers"
	"github.com/nexconsult/nfse-api/internal/api/middleware"
	"github.com/nexconsult/nfse-api/internal/config"
	"github.com/nexconsult/nfse-api/internal/models"
	"github.com/nexconsult/nfse-api/internal/services"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	Router      *gin.Engine
	config      *config.Config
	logger      *logrus.Logger
	services    *services.Container
	rateLimiter *middleware.RateLimiter
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, logger *logrus.Logger, services *services.Container) *Server {
	server := &Server{
		config:   cfg,
		logger:   logger,
		services: services,
	}

	server.setupRouter()
	return server
}

// Close stops background work owned by the router
func (s *Server) Close() {
	s.rateLimiter.Stop()
}

// setupRouter configures the router with all routes and middleware
func (s *Server) setupRouter() {
	s.Router = gin.New()

	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Logger(s.logger))
	s.Router.Use(middleware.Metrics(s.services.Metrics))
	s.Router.Use(middleware.Recovery(s.logger))
	s.Router.Use(middleware.CORS(s.config.Security.CORS))
	s.Router.Use(middleware.Security())

	healthHandler := handlers.NewHealthHandler(s.services, s.logger)
	s.Router.GET("/health", healthHandler.GetHealth)
	s.Router.GET("/health/ready", healthHandler.GetReadiness)
	s.Router.GET("/health/live", healthHandler.GetLiveness)

	s.Router.GET("/metrics", gin.WrapH(s.services.Metrics.Handler()))

	if s.config.Server.Environment != "production" {
		s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		s.Router.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
		})
	}

	// Health, metrics and docs are not rate limited
	s.rateLimiter = middleware.NewRateLimiter(s.config.Security.RateLimit)
	v1 := s.Router.Group("/api/v1", s.rateLimiter.Middleware())
	{
		dpsHandler := handlers.NewDPSHandler(s.services.DPSService, s.logger)
		v1.POST("/dps/build", dpsHandler.Build)
		v1.GET("/service-codes/:code/normalize", dpsHandler.NormalizeServiceCode)
		v1.GET("/localities/resolve", dpsHandler.ResolveLocality)

		documentHandler := handlers.NewDocumentHandler(s.services.DocumentService, s.logger)
		documents := v1.Group("/documents")
		{
			documents.GET("/:document/validate", documentHandler.Validate)
			documents.POST("/validate", documentHandler.ValidateBatch)
		}

		profileHandler := handlers.NewProfileHandler(s.services.ProfileService, s.logger)
		companies := v1.Group("/companies/:cnpj")
		{
			companies.GET("/profile", profileHandler.Get)
			companies.PUT("/profile", profileHandler.Put)
			companies.DELETE("/profile", profileHandler.Delete)
			companies.POST("/dps", dpsHandler.BuildForCompany)
		}

		cacheHandler := handlers.NewCacheHandler(s.services.CacheService, s.logger)
		cache := v1.Group("/cache")
		{
			cache.GET("/stats", cacheHandler.GetStats)
			cache.DELETE("/clear", cacheHandler.Clear)
			cache.DELETE("/profiles/:cnpj", cacheHandler.DeleteProfile)
		}
	}

	s.Router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:     "Not Found",
			Message:   "The requested resource was not found",
			Code:      "NOT_FOUND",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
	})
}
