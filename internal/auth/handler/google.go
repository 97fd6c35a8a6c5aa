package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type googleLoginRequest struct {
	Token string `json:"token"`
}

// GoogleLogin authenticates with a Google ID token posted directly by
// the client (the sign-in button flow).
func (h *Handler) GoogleLogin(c *gin.Context) {
	var req googleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	acct, err := h.service.GoogleLogin(c.Request.Context(), req.Token)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Google login successful",
		"user":    newUserResponse(acct, true),
	})
}
