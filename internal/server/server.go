package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cureplus/website/internal/catalog"
	"github.com/cureplus/website/internal/config"
	"github.com/cureplus/website/internal/handlers"
	appmiddleware "github.com/cureplus/website/internal/middleware"
	"github.com/cureplus/website/internal/module"
	"github.com/cureplus/website/internal/rendering"
	"github.com/cureplus/website/web"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/samber/do/v2"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Injector do.Injector
	Store    *catalog.Store

	modules []module.Module
}

// Dependencies holds everything New needs to build a Server. Echo is
// optional; a fresh instance is created when it is nil.
type Dependencies struct {
	Config   config.Provider
	Injector do.Injector
	Echo     *echo.Echo
}

// New creates a new Server instance with the global middleware chain,
// renderer, validator and error handler installed. Routes are added by
// RegisterRoutes and InitModules.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil || deps.Injector == nil {
		return nil, fmt.Errorf("server requires a config provider and an injector")
	}

	store, err := do.Invoke[*catalog.Store](deps.Injector)
	if err != nil {
		return nil, fmt.Errorf("failed to load hospital catalog: %w", err)
	}
	renderer, err := do.Invoke[*rendering.UniversalRenderer](deps.Injector)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	e := deps.Echo
	if e == nil {
		e = echo.New()
	}
	e.HideBanner = true
	e.Renderer = renderer
	e.Validator = handlers.NewValidator()

	// Pre middleware runs before routing, so public slugs resolve to their
	// internal /hospital/{id} route.
	e.Pre(middleware.RemoveTrailingSlash())
	e.Pre(appmiddleware.Rewrite(store))

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmiddleware.Logger)
	e.Use(appmiddleware.AccessLog())
	e.Use(middleware.Recover())

	setupErrorHandling(e, store, renderer)

	return &Server{
		E:        e,
		Cfg:      deps.Config,
		Injector: deps.Injector,
		Store:    store,
	}, nil
}

// InitModules runs the register phase for every module, then boots each one
// on its own route group.
func (s *Server) InitModules(ctx context.Context, modules []module.Module) error {
	for _, m := range modules {
		if err := m.Register(s.Injector); err != nil {
			return fmt.Errorf("failed to register module %s: %w", m.Name(), err)
		}
		slog.Debug("Module registered", "module", m.Name())
	}

	for _, m := range modules {
		if err := m.Boot(ctx, s.E.Group(m.Prefix()), s.Injector); err != nil {
			return fmt.Errorf("failed to boot module %s: %w", m.Name(), err)
		}
		slog.Info("Module booted", "module", m.Name(), "prefix", m.Prefix())
	}

	s.modules = modules
	return nil
}

// ServeStatic mounts the embedded site assets under /static and the
// hospital image directory under /assets.
func (s *Server) ServeStatic() {
	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))
	s.E.Static("/assets", s.Cfg.GetAssetDir())
}
