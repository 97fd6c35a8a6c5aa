package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/datharnu/povBackend/internal/account"
	"github.com/datharnu/povBackend/internal/auth"
	"github.com/datharnu/povBackend/internal/auth/provider"
)

// AccountService is the slice of the auth service the HTTP layer
// consumes. Narrowed to an interface so handler tests can use a fake.
type AccountService interface {
	Signup(ctx context.Context, in auth.SignupInput) (*account.Account, error)
	Login(ctx context.Context, email, password string) (*account.Account, error)
	GoogleLogin(ctx context.Context, rawToken string) (*account.Account, error)
	ResolveIdentity(ctx context.Context, identity *auth.Identity) (*account.Account, error)
}

type Handler struct {
	service     AccountService
	providers   *provider.Registry
	environment string
}

func NewHandler(
	service AccountService,
	registry *provider.Registry,
	environment string,
) *Handler {
	return &Handler{
		service:     service,
		providers:   registry,
		environment: environment,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	grp := r.Group("/api/v1/auth")

	grp.POST("/signup", h.Signup)
	grp.POST("/login", h.Login)
	grp.POST("/google-login", h.GoogleLogin)

	grp.GET("/oauth/:provider", h.OAuthLogin)
	grp.GET("/oauth/:provider/callback", h.OAuthCallback)
}
