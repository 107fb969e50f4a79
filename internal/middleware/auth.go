package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/recipe-mgmt/recipe-storage/internal/auth"
	"github.com/recipe-mgmt/recipe-storage/internal/logger"
)

const bearerPrefix = "Bearer "

// TestUserID is the synthetic principal attached when authentication is
// explicitly disabled. Development only.
const TestUserID = "test-user"

var allowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"https://recipe-mgmt-dev.web.app",
	"https://recipe-mgmt-dev.firebaseapp.com",
}

// unauthenticatedPaths are forwarded without a principal: health probe, API
// docs, and the public recipe listing.
var unauthenticatedPaths = []string{
	"/actuator/health",
	"/v3/api-docs",
	"/swagger-ui",
	"/api/recipes/public",
}

// AuthGate classifies every inbound request: CORS preflight is answered
// directly, allowlisted paths pass through unauthenticated, everything else
// requires a valid bearer token. On success the principal's uid is attached
// to the gin context as "user_id".
func AuthGate(verifier auth.Verifier, authEnabled bool, log *logger.Logger) gin.HandlerFunc {
	gateLog := log.With("component", "auth-gate")

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			origin := c.GetHeader("Origin")
			if originAllowed(origin) {
				h := c.Writer.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				h.Set("Access-Control-Allow-Headers", "*")
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Set("Access-Control-Max-Age", "3600")
			}
			c.AbortWithStatus(http.StatusOK)
			return
		}

		path := c.Request.URL.Path
		for _, p := range unauthenticatedPaths {
			if strings.Contains(path, p) {
				c.Next()
				return
			}
		}

		if !authEnabled {
			gateLog.Warn("authentication is disabled, attaching test user", "path", path)
			c.Set("user_id", TestUserID)
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			gateLog.Warn("missing or invalid Authorization header", "path", path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Missing or invalid Authorization header",
			})
			return
		}

		idToken := strings.TrimPrefix(authHeader, bearerPrefix)
		principal, err := verifier.Verify(c.Request.Context(), idToken)
		if err != nil {
			gateLog.Warn("token verification failed", "path", path, "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid Firebase ID token",
			})
			return
		}

		c.Set("user_id", principal.UID)
		c.Set("user_email", principal.Email)
		c.Next()
	}
}

func originAllowed(origin string) bool {
	for _, allowed := range allowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}
