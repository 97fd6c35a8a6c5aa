package handler

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/datharnu/povBackend/internal/config"
)

// Short-lived cookies carry the anti-CSRF state and the PKCE verifier
// across the redirect round-trip. Five minutes comfortably covers a
// consent screen without leaving stale flow cookies around.
const (
	stateCookieName = "__oauth_state"
	pkceCookieName  = "__oauth_pkce"
	flowCookieTTL   = 5 * time.Minute
)

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func (h *Handler) setFlowCookie(c *gin.Context, name, value string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		// relaxed outside production so the flow works over local http
		Secure:   h.environment == config.EnvProduction,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(flowCookieTTL.Seconds()),
	})
}

// newOAuthState mints the state parameter and mirrors it into a cookie
// for the callback to compare against.
func (h *Handler) newOAuthState(c *gin.Context) (string, error) {
	state, err := randomToken()
	if err != nil {
		return "", err
	}
	h.setFlowCookie(c, stateCookieName, state)
	return state, nil
}

func (h *Handler) validOAuthState(c *gin.Context) bool {
	query := c.Query("state")
	if query == "" {
		return false
	}
	cookie, err := c.Request.Cookie(stateCookieName)
	if err != nil {
		return false
	}
	return cookie.Value == query
}

// newPKCE mints a verifier, stashes it in a cookie, and returns the
// S256 challenge to send along with the authorization request.
func (h *Handler) newPKCE(c *gin.Context) (string, error) {
	verifier, err := randomToken()
	if err != nil {
		return "", err
	}
	h.setFlowCookie(c, pkceCookieName, verifier)

	sum := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(sum[:]), nil
}

func (h *Handler) pkceVerifier(c *gin.Context) string {
	cookie, err := c.Request.Cookie(pkceCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
