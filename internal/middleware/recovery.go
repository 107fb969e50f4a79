package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipe-mgmt/recipe-storage/internal/logger"
)

// Recovery converts panics in downstream handlers into a JSON 500 response
// instead of a dropped connection.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("handler panicked", "path", c.Request.URL.Path, "panic", r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal Server Error",
				})
			}
		}()
		c.Next()
	}
}
