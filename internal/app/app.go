package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/datharnu/povBackend/internal/config"
)

// App owns the HTTP server and whatever teardown the wiring layer
// handed back (today: closing the database pool).
type App struct {
	httpServer *http.Server
	cleanup    func() error
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	router, cleanup, err := setupHTTP(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &App{
		httpServer: &http.Server{
			Addr:    ":" + cfg.AppPort,
			Handler: router,
		},
		cleanup: cleanup,
	}, nil
}

// Run blocks serving requests until Shutdown is called. A shutdown
// initiated through Shutdown is not an error.
func (a *App) Run() error {
	err := a.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	if err := a.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	if a.cleanup != nil {
		return a.cleanup()
	}
	return nil
}
