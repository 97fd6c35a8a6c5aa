package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/datharnu/povBackend/internal/account"
	"github.com/datharnu/povBackend/internal/auth"
	"github.com/datharnu/povBackend/internal/config"
	"github.com/datharnu/povBackend/internal/logger"
)

const internalErrorMessage = "Something went wrong, please try again later"

// respondError is the single place where the error taxonomy is
// translated into HTTP responses. Business code never writes to the
// response writer itself.
func (h *Handler) respondError(c *gin.Context, err error) {
	var verr *auth.ValidationError

	switch {
	case errors.As(err, &verr):
		if len(verr.Fields) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"errors":  verr.Fields,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   verr.Message,
		})

	case errors.Is(err, account.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Email already exists",
		})

	case errors.Is(err, account.ErrDuplicateGoogleID):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Google account already exists",
		})

	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid email or password",
		})

	case errors.Is(err, auth.ErrInvalidToken):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid token",
		})

	default:
		logger.Error("unhandled error", map[string]any{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})

		body := gin.H{
			"success": false,
			"error":   internalErrorMessage,
		}
		if h.environment != config.EnvProduction {
			body["stack"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}

// NotFound answers unmatched routes.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error":   "Route " + c.Request.URL.Path + " not found",
	})
}
