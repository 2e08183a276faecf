package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/cureplus/website/internal/app"
	"github.com/cureplus/website/internal/config"
	"github.com/cureplus/website/internal/logging"
	"github.com/cureplus/website/internal/server"
	"github.com/spf13/afero"
)

func main() {
	cfg := config.New()
	logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

	injector := app.NewInjector(cfg, afero.NewOsFs())

	s, err := server.New(server.Dependencies{Config: cfg, Injector: injector})
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	// Register and boot all application modules.
	if err := s.InitModules(context.Background(), app.NewModules()); err != nil {
		slog.Error("Failed to initialize modules", "error", err)
		os.Exit(1)
	}

	// Register the core application routes.
	s.RegisterRoutes()

	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
