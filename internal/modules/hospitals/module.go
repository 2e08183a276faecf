package hospitals

import (
	"context"
	"log/slog"

	"github.com/cureplus/website/internal/catalog"
	"github.com/cureplus/website/internal/config"
	"github.com/cureplus/website/internal/handlers"
	"github.com/cureplus/website/internal/module"
	"github.com/cureplus/website/internal/view"
	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"
)

// HospitalsModule serves the about page, hospital detail pages and the
// gallery fragments. When dataset watching is enabled it also runs the
// reload watcher for the lifetime of the server.
type HospitalsModule struct {
	module.BaseModule
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a new HospitalsModule instance.
func New() *HospitalsModule {
	return &HospitalsModule{}
}

// Name returns the module name.
func (m *HospitalsModule) Name() string {
	return "hospitals"
}

// Register provides the page handlers to the injector.
func (m *HospitalsModule) Register(i do.Injector) error {
	do.Provide(i, func(i do.Injector) (*handlers.AboutHandler, error) {
		store, err := do.Invoke[*catalog.Store](i)
		if err != nil {
			return nil, err
		}
		resolver, err := do.Invoke[view.AssetResolver](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewAboutHandler(store, resolver), nil
	})
	do.Provide(i, func(i do.Injector) (*handlers.HospitalHandler, error) {
		store, err := do.Invoke[*catalog.Store](i)
		if err != nil {
			return nil, err
		}
		resolver, err := do.Invoke[view.AssetResolver](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewHospitalHandler(store, resolver), nil
	})
	return nil
}

// Boot mounts the page routes and starts the dataset watcher if configured.
func (m *HospitalsModule) Boot(ctx context.Context, g *echo.Group, i do.Injector) error {
	about, err := do.Invoke[*handlers.AboutHandler](i)
	if err != nil {
		return err
	}
	hospital, err := do.Invoke[*handlers.HospitalHandler](i)
	if err != nil {
		return err
	}

	g.GET("/about", about.AboutGet)
	g.GET("/hospital/:slug", hospital.HospitalGet)
	g.GET("/hospital/:slug/gallery/:index", hospital.GalleryGet)

	cfg, err := do.Invoke[config.Provider](i)
	if err != nil {
		return err
	}
	path := cfg.GetDataPath()
	if !cfg.GetDataWatch() || path == "" {
		return nil
	}

	store, err := do.Invoke[*catalog.Store](i)
	if err != nil {
		return err
	}
	watchCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})
	go func() {
		defer close(m.done)
		if err := store.Watch(watchCtx, path); err != nil {
			slog.Error("Hospital dataset watcher stopped", "path", path, "error", err)
		}
	}()
	return nil
}

// Shutdown stops the dataset watcher, if one is running.
func (m *HospitalsModule) Shutdown(ctx context.Context) error {
	if m.cancel == nil {
		return nil
	}
	m.cancel()
	select {
	case <-m.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
