package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	pkghttp "SwapDesk/pkg/http"

	"SwapDesk/pkg/config"
	applogger "SwapDesk/pkg/logger"
)

const defaultShutdownTimeout = 10 * time.Second

// App owns the HTTP server lifecycle: start, signal wait, graceful shutdown.
type App struct {
	cfg    *config.Config
	server *pkghttp.Server
	logger *applogger.Logger
}

// New assembles the application around a route handler.
func New(cfg *config.Config, handler pkghttp.Handler, l *applogger.Logger) *App {
	srv := pkghttp.NewServer(handler, l,
		pkghttp.WithPort(cfg.Server.Port),
		pkghttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
	)

	return &App{
		cfg:    cfg,
		server: srv,
		logger: l,
	}
}

// Run starts the server and blocks until SIGINT or SIGTERM, then shuts down
// within the configured timeout.
func (a *App) Run() error {
	a.logger.Info("starting swapdesk",
		applogger.String("environment", a.cfg.Environment),
		applogger.Int("port", a.cfg.Server.Port),
	)

	if err := a.server.Start(); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	a.logger.Info("shutting down", applogger.String("signal", sig.String()))

	timeout := a.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := a.server.Stop(ctx); err != nil {
		return fmt.Errorf("stop server: %w", err)
	}

	a.logger.Info("shutdown complete")
	return nil
}
