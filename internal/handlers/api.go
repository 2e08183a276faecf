package handlers

import (
	"errors"
	"net/http"

	"github.com/cureplus/website/internal/catalog"
	"github.com/cureplus/website/internal/domain"
	"github.com/labstack/echo/v4"
)

// APIHandler exposes the hospital registry as JSON.
type APIHandler struct {
	store   *catalog.Store
	baseURL string
}

// NewAPIHandler creates a new APIHandler. baseURL prefixes the absolute
// links in responses.
func NewAPIHandler(store *catalog.Store, baseURL string) *APIHandler {
	return &APIHandler{store: store, baseURL: baseURL}
}

// ListHospitals handles GET /api/hospitals.
func (h *APIHandler) ListHospitals(c echo.Context) error {
	cat := h.store.Catalog()
	out := make([]HospitalSummaryResponse, 0, cat.Len())
	for _, s := range cat.Hospitals() {
		slug, err := cat.Slug(s.ID)
		if err != nil {
			return err
		}
		out = append(out, NewHospitalSummaryResponse(s, slug, h.baseURL))
	}
	return c.JSON(http.StatusOK, out)
}

// GetHospital handles GET /api/hospitals/:slug.
func (h *APIHandler) GetHospital(c echo.Context) error {
	var req HospitalRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	cat := h.store.Catalog()
	detail, err := cat.Lookup(req.Key)
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Code: "not_found", Message: err.Error()})
	}
	if err != nil {
		return err
	}
	slug, err := cat.Slug(detail.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, HospitalDetailResponse{
		HospitalDetail: detail,
		Slug:           slug,
		PublicURL:      h.baseURL + domain.PublicPath(slug),
	})
}

// ListRewrites handles GET /api/rewrites.
func (h *APIHandler) ListRewrites(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Catalog().Rewrites())
}
