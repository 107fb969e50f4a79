package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterHealthRoutes mounts the liveness probe. The path mirrors the
// Spring actuator convention the frontends already poll.
func RegisterHealthRoutes(router *gin.Engine) {
	router.GET("/actuator/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})
}
