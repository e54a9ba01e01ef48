// Package server wires the credential store, the auth service, and the
// HTTP layer together and runs the application with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"github.com/adiomi90/alx-backend-user-data/internal/logging"
	"github.com/adiomi90/alx-backend-user-data/internal/server/auth"
	"github.com/adiomi90/alx-backend-user-data/internal/server/config"
	"github.com/adiomi90/alx-backend-user-data/internal/server/users"
	"github.com/adiomi90/alx-backend-user-data/internal/server/web"
)

type App struct {
	config *config.Config
	logger logging.Logger
	web    *fiber.App
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	store, err := newStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	svc := auth.NewService(store, auth.UUIDTokenGenerator{}, cfg.BcryptCost)

	return &App{
		config: cfg,
		logger: logger,
		web:    web.New(svc, logger),
	}, nil
}

// newStore picks the credential store backend from the DSN: empty
// selects the in-process store, anything else goes through GORM.
func newStore(cfg *config.Config) (users.Store, error) {
	if cfg.DatabaseDSN == "" {
		return users.NewMemoryStore(), nil
	}
	return users.NewGormStore(cfg.DatabaseDSN)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting server", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	go func() {
		if err := app.web.Listen(app.config.EndpointAddr); err != nil {
			app.logger.Error(ctx, "server error", "err", err)
			cancelFunc()
		}
	}()

	<-ctx.Done()

	app.logger.Info(ctx, "shutting down")
	if err := app.web.ShutdownWithTimeout(app.config.ShutdownTimeout); err != nil {
		app.logger.Error(ctx, "shutdown error", "err", err)
	}
}
