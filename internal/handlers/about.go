package handlers

import (
	"net/http"

	"github.com/cureplus/website/internal/catalog"
	"github.com/cureplus/website/internal/view"
	"github.com/cureplus/website/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// AboutHandler serves the network overview page.
type AboutHandler struct {
	store  *catalog.Store
	assets view.AssetResolver
}

// NewAboutHandler creates a new AboutHandler.
func NewAboutHandler(store *catalog.Store, assets view.AssetResolver) *AboutHandler {
	return &AboutHandler{store: store, assets: assets}
}

// AboutGet renders the about page.
func (h *AboutHandler) AboutGet(c echo.Context) error {
	cat := h.store.Catalog()
	data := view.NewAboutData(cat.Network(), cat, h.assets)
	return c.Render(http.StatusOK, "", page(cat, "About", pages.AboutContent(data)))
}
