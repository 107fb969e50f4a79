package router

import (
	"github.com/gin-gonic/gin"

	"github.com/recipe-mgmt/recipe-storage/internal/api"
	"github.com/recipe-mgmt/recipe-storage/internal/auth"
	"github.com/recipe-mgmt/recipe-storage/internal/logger"
	"github.com/recipe-mgmt/recipe-storage/internal/middleware"
)

// SetupRouter configures the application routes. The authentication gate runs
// for every request; it decides per-path whether a principal is required.
func SetupRouter(
	recipeHandler *api.RecipeHandler,
	verifier auth.Verifier,
	authEnabled bool,
	log *logger.Logger,
) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery(log))
	router.Use(middleware.AuthGate(verifier, authEnabled, log))

	api.RegisterHealthRoutes(router)

	apiGroup := router.Group("/api")
	recipeHandler.RegisterRoutes(apiGroup)

	return router
}
