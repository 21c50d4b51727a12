package handlers

import (
	"net/http"
	"regexp"

	"github.com/campusfunds/event_funds_app/cmd/docs"
	portssvc "github.com/campusfunds/event_funds_app/internal/core/ports/services"
	"github.com/campusfunds/event_funds_app/internal/middleware"
	"github.com/campusfunds/event_funds_app/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// cashbookIDPattern matches opaque ids like "CB2024001" or
// "cb-tech-fest-2025": alphanumeric segments joined by single hyphens or
// underscores.
var cashbookIDPattern = regexp.MustCompile(`^[A-Za-z0-9]+([-_][A-Za-z0-9]+)*$`)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	publisher RecomputePublisher,
) {
	registerCustomValidators()

	// Health check route
	r.GET("/health", getHealth)

	// Public read API plus login
	setupPublicRoutes(r, cfg, services)

	// Write API behind the auth middleware
	setupAdminRoutes(r, cfg, services, publisher)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// registerCustomValidators hooks the cashbook id rule into gin's binding validator.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("cashbook_id", func(fl validator.FieldLevel) bool {
			return cashbookIDPattern.MatchString(fl.Field().String())
		})
	}
}

// setupPublicRoutes configures the unauthenticated /api/v1 group.
func setupPublicRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerAuthRoutes(v1, cfg)
	registerEventRoutes(v1, services.Event)
	registerFundRoutes(v1, services.Fund)
	registerReportingRoutes(v1, services.Reporting)
}

// setupAdminRoutes configures the /api/v1 write group guarded by the JWT middleware.
func setupAdminRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	publisher RecomputePublisher,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerEventAdminRoutes(v1, services.Event)
	registerFundAdminRoutes(v1, services.Fund, services.Exporter, publisher)
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

// getHealth godoc
// @Summary Show the status of the server.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
