package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/profileiq/profileiq-backend/cmd/docs"
	portssvc "github.com/profileiq/profileiq-backend/internal/core/ports/services"
	"github.com/profileiq/profileiq-backend/internal/middleware"
	"github.com/profileiq/profileiq-backend/pkg/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", healthCheck)

	// Public authentication routes
	registerAuthRoutes(r, services.Auth)

	// API v1 routes behind the auth middleware
	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerClientRoutes(v1, services.Client, services.Ledger)
	registerReportingRoutes(v1, services.Reporting)

	// Catalog services are absent when running on the in-memory store.
	if services.Questionnaire != nil {
		registerQuestionnaireRoutes(v1, services.Questionnaire)
	}
	if services.Profile != nil {
		registerProfileRoutes(v1, services.Profile)
	}
	if services.Chatbot != nil {
		registerChatbotRoutes(v1, services.Chatbot)
	}
	if services.Group != nil {
		registerGroupRoutes(v1, services.Group)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
