package server

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/carnage89/AlexeyR/internal/handlers"
	"github.com/carnage89/AlexeyR/internal/middleware"
	"github.com/carnage89/AlexeyR/internal/platform/logger"
)

type RouterConfig struct {
	Log              *logger.Logger
	ContentHandler   *handlers.ContentHandler
	ServiceHandler   *handlers.ServiceHandler
	PortfolioHandler *handlers.PortfolioHandler
	PricingHandler   *handlers.PricingHandler
	ContactHandler   *handlers.ContactHandler
	AuthHandler      *handlers.AuthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(otelgin.Middleware("alexeyr"))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Content
		api.GET("/content", cfg.ContentHandler.GetAll)
		api.GET("/content/:section", cfg.ContentHandler.GetBySection)
		api.PUT("/content/:section", cfg.ContentHandler.Update)
		// Services
		api.GET("/services", cfg.ServiceHandler.List)
		api.POST("/services", cfg.ServiceHandler.Create)
		api.PUT("/services/:id", cfg.ServiceHandler.Update)
		api.DELETE("/services/:id", cfg.ServiceHandler.Delete)
		// Portfolio
		api.GET("/portfolio", cfg.PortfolioHandler.List)
		api.POST("/portfolio", cfg.PortfolioHandler.Create)
		api.PUT("/portfolio/:id", cfg.PortfolioHandler.Update)
		api.DELETE("/portfolio/:id", cfg.PortfolioHandler.Delete)
		// Pricing
		api.GET("/pricing", cfg.PricingHandler.List)
		api.POST("/pricing", cfg.PricingHandler.Create)
		api.PUT("/pricing/:id", cfg.PricingHandler.Update)
		api.DELETE("/pricing/:id", cfg.PricingHandler.Delete)
		// Contact
		api.POST("/contact", cfg.ContactHandler.Create)
		api.GET("/contact", cfg.ContactHandler.List)
		// Admin
		api.POST("/admin/auth", cfg.AuthHandler.Authenticate)
	}

	return router
}
