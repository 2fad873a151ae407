package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/saiuttej/books-backend/cmd/docs"
	portssvc "github.com/saiuttej/books-backend/internal/core/ports/services"
	"github.com/saiuttej/books-backend/internal/middleware"
	"github.com/saiuttej/books-backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, cfg, services)
	registerGoogleOAuthRoutes(r, cfg, services)

	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 group. User and
// organization routes only need authentication; everything else is scoped to
// an organization resolved from the X-Organization-Id header.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	registerOrganizationRoutes(v1, services.Organization)

	orgScoped := v1.Group("", middleware.OrganizationMiddleware(services.Organization))
	{
		registerClientRoutes(orgScoped, services.Client)
		registerProjectRoutes(orgScoped, services.Project)
		registerExpenseTypeRoutes(orgScoped, services.ExpenseType)
		registerInvoiceRoutes(orgScoped, services.Invoice)
		registerQuoteRoutes(orgScoped, services.Quote)
		registerChangeLogRoutes(orgScoped, services.ChangeLog)
		registerStaticDataRoutes(orgScoped)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
