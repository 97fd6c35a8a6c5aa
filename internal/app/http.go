package app

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/datharnu/povBackend/internal/account"
	"github.com/datharnu/povBackend/internal/auth"
	"github.com/datharnu/povBackend/internal/auth/handler"
	"github.com/datharnu/povBackend/internal/auth/provider"
	"github.com/datharnu/povBackend/internal/auth/provider/google"
	"github.com/datharnu/povBackend/internal/config"
	"github.com/datharnu/povBackend/internal/logger"
	"github.com/datharnu/povBackend/internal/middleware"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	repo := account.NewPostgresRepository(infra.DB)

	googleProvider, err := google.New(
		ctx,
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
	)
	if err != nil {
		return nil, nil, err
	}

	registry := provider.NewRegistry(googleProvider)
	logger.Info("oauth providers configured", map[string]any{
		"providers": registry.Names(),
	})

	service := auth.NewService(repo, googleProvider)
	authHandler := handler.NewHandler(service, registry, cfg.Environment)

	// ----------------------------
	// Router
	// ----------------------------

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery(cfg.Environment))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the povBackend API",
			"status":  "Server is running successfully",
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler.RegisterRoutes(router)

	router.NoRoute(handler.NotFound)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
