package api

import (
	"context"

	"github.com/cureplus/website/internal/catalog"
	"github.com/cureplus/website/internal/config"
	"github.com/cureplus/website/internal/handlers"
	"github.com/cureplus/website/internal/middleware"
	"github.com/cureplus/website/internal/module"
	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"
)

// APIModule exposes the registry as rate-limited JSON under /api.
type APIModule struct {
	module.BaseModule
}

// New creates a new APIModule instance.
func New() *APIModule {
	return &APIModule{}
}

// Name returns the module name.
func (m *APIModule) Name() string {
	return "api"
}

// Prefix mounts the module under /api.
func (m *APIModule) Prefix() string {
	return "/api"
}

// Register provides the API handler to the injector.
func (m *APIModule) Register(i do.Injector) error {
	do.Provide(i, func(i do.Injector) (*handlers.APIHandler, error) {
		store, err := do.Invoke[*catalog.Store](i)
		if err != nil {
			return nil, err
		}
		cfg, err := do.Invoke[config.Provider](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewAPIHandler(store, cfg.GetAppBaseURL()), nil
	})
	return nil
}

// Boot mounts the JSON routes behind the rate limiter.
func (m *APIModule) Boot(ctx context.Context, g *echo.Group, i do.Injector) error {
	h, err := do.Invoke[*handlers.APIHandler](i)
	if err != nil {
		return err
	}
	cfg, err := do.Invoke[config.Provider](i)
	if err != nil {
		return err
	}

	g.Use(middleware.RateLimiter(cfg.GetAPIRateLimit()))
	g.GET("/hospitals", h.ListHospitals)
	g.GET("/hospitals/:slug", h.GetHospital)
	g.GET("/rewrites", h.ListRewrites)
	return nil
}
