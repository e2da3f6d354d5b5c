// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"codeberg.org/oliverandrich/go-asset-tags/internal/config"
	"codeberg.org/oliverandrich/go-asset-tags/internal/handlers"
	"github.com/labstack/echo/v4"
	"github.com/urfave/cli/v3"
)

// Run starts the server with the given CLI command.
func Run(ctx context.Context, cmd *cli.Command) error {
	cfg := config.NewFromCLI(cmd)
	SetupLogger(cfg.Log.Level, cfg.Log.Format)

	slog.Info("starting server",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"base_url", cfg.Server.BaseURL,
		"environment", cfg.Assets.Environment,
	)

	// Assets
	a, err := LoadAssets(&cfg.Assets)
	if err != nil {
		return err
	}

	e := New(cfg, a)

	return startWithGracefulShutdown(ctx, e, cfg)
}

// New builds the echo instance with middleware and routes.
func New(cfg *config.Config, a *Assets) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	setupMiddleware(e, cfg, a)
	setupRoutes(e, a)

	return e
}

func setupRoutes(e *echo.Echo, a *Assets) {
	h := handlers.New(a.Resolver,
		slices.Sorted(maps.Keys(a.Manifest.Stylesheets)),
		slices.Sorted(maps.Keys(a.Manifest.Javascripts)),
	)

	// Sources and built packages
	e.Static("/", a.Manifest.PublicRoot)

	e.GET("/health", h.Health)
	e.GET("/", h.Preview)

	tags := e.Group("/tags")
	tags.GET("/stylesheets", h.StylesheetTags)
	tags.GET("/javascripts", h.JavascriptTags)
	tags.GET("/templates", h.TemplateTags)

	paths := e.Group("/paths")
	paths.GET("/stylesheets", h.StylesheetPaths)
	paths.GET("/javascripts", h.JavascriptPaths)
	paths.GET("/templates", h.TemplatePaths)
}

func startWithGracefulShutdown(ctx context.Context, e *echo.Echo, cfg *config.Config) error {
	errChan := make(chan error, 1)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		slog.Info("Server running", "url", cfg.Server.BaseURL)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		slog.Info("shutting down server")
	case err := <-errChan:
		slog.Error("server error", "error", err)
		return err
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown server", "error", err)
	}

	slog.Info("server stopped")
	return nil
}
