package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/datharnu/povBackend/internal/config"
	"github.com/datharnu/povBackend/internal/logger"
)

// Recovery converts panics into the generic 500 contract. The stack
// trace is attached to the body only outside production.
func Recovery(environment string) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered", map[string]any{
			"path":  c.Request.URL.Path,
			"panic": recovered,
		})

		body := gin.H{
			"success": false,
			"error":   "Something went wrong, please try again later",
		}
		if environment != config.EnvProduction {
			body["stack"] = string(debug.Stack())
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	})
}
