package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cureplus/website/internal/catalog"
	"github.com/cureplus/website/internal/domain"
	"github.com/cureplus/website/internal/middleware"
	"github.com/cureplus/website/internal/view"
	"github.com/cureplus/website/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// HospitalHandler serves hospital detail pages and their gallery fragments.
type HospitalHandler struct {
	store  *catalog.Store
	assets view.AssetResolver
}

// NewHospitalHandler creates a new HospitalHandler.
func NewHospitalHandler(store *catalog.Store, assets view.AssetResolver) *HospitalHandler {
	return &HospitalHandler{store: store, assets: assets}
}

// HospitalGet renders /hospital/:slug where :slug is a public slug or a
// numeric id. Unknown keys render the "not available" page with a 404; a
// lookup miss is never returned as an error.
func (h *HospitalHandler) HospitalGet(c echo.Context) error {
	var req HospitalRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	cat := h.store.Catalog()
	detail, err := cat.Lookup(req.Key)
	if err != nil {
		return h.unavailable(c, err)
	}

	n := cat.Network()
	data := view.NewHospitalData(detail, cat, h.assets, n.EmergencyPhone)
	return c.Render(http.StatusOK, "", page(cat, data.Name, pages.HospitalContent(data)))
}

// GalleryGet renders the lightbox fragment for /hospital/:slug/gallery/:index.
func (h *HospitalHandler) GalleryGet(c echo.Context) error {
	var req GalleryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid gallery index")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid gallery index")
	}

	cat := h.store.Catalog()
	detail, err := cat.Lookup(req.Key)
	if err != nil {
		return h.unavailable(c, err)
	}

	data := view.NewHospitalData(detail, cat, h.assets, "")
	lightbox, ok := view.NewLightboxData(strconv.Itoa(detail.ID), data, req.Index)
	if !ok {
		return c.Render(http.StatusNotFound, "", pages.Unavailable())
	}
	return c.Render(http.StatusOK, "", pages.Lightbox(lightbox, detail.ID))
}

func (h *HospitalHandler) unavailable(c echo.Context, err error) error {
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	middleware.FromContext(c.Request().Context()).Info("hospital not found", "path", c.Request().URL.Path, "error", err)
	return c.Render(http.StatusNotFound, "", page(h.store.Catalog(), "Hospital not found", pages.Unavailable()))
}
