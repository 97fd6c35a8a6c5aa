package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/datharnu/povBackend/internal/logger"
)

// OAuthLogin starts the browser redirect flow for the named provider.
func (h *Handler) OAuthLogin(c *gin.Context) {
	p, err := h.providers.Get(c.Param("provider"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Unknown oauth provider",
		})
		return
	}

	state, err := h.newOAuthState(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	codeChallenge, err := h.newPKCE(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Redirect(http.StatusFound, p.AuthCodeURL(state, codeChallenge))
}

// OAuthCallback completes the redirect flow: state check, code
// exchange with the PKCE verifier, then identity resolution through
// the same linking logic as the posted-token path.
func (h *Handler) OAuthCallback(c *gin.Context) {
	providerName := c.Param("provider")

	p, err := h.providers.Get(providerName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Unknown oauth provider",
		})
		return
	}

	if !h.validOAuthState(c) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Invalid state",
		})
		return
	}

	if errParam := c.Query("error"); errParam != "" {
		logger.Warn("oauth callback returned error", map[string]any{
			"provider": providerName,
			"error":    errParam,
			"desc":     c.Query("error_description"),
		})
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Authentication failed",
		})
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing authorization code",
		})
		return
	}

	codeVerifier := h.pkceVerifier(c)
	if codeVerifier == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Missing pkce verifier",
		})
		return
	}

	identity, err := p.ExchangeCode(c.Request.Context(), code, codeVerifier)
	if err != nil {
		logger.Error("oauth code exchange failed", map[string]any{
			"provider": providerName,
			"error":    err.Error(),
		})
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Authentication failed",
		})
		return
	}

	acct, err := h.service.ResolveIdentity(c.Request.Context(), identity)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    newUserResponse(acct, true),
	})
}
