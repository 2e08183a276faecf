package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cureplus/website/internal/assets"
	"github.com/cureplus/website/internal/catalog"
	"github.com/cureplus/website/internal/middleware"
	"github.com/cureplus/website/internal/rendering"
	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	store := catalog.NewStore(catalog.MustDefault(), nil)
	resolver := assets.NewResolver(afero.NewMemMapFs(), assets.DefaultPrefix, false)

	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = NewValidator()
	e.Pre(middleware.Rewrite(store))

	about := NewAboutHandler(store, resolver)
	hospital := NewHospitalHandler(store, resolver)
	api := NewAPIHandler(store, "https://cureplus.example")

	e.GET("/about", about.AboutGet)
	e.GET("/hospital/:slug", hospital.HospitalGet)
	e.GET("/hospital/:slug/gallery/:index", hospital.GalleryGet)
	e.GET("/api/hospitals", api.ListHospitals)
	e.GET("/api/hospitals/:slug", api.GetHospital)
	e.GET("/api/rewrites", api.ListRewrites)
	return e
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHospitalGet(t *testing.T) {
	e := newTestEcho(t)

	t.Run("public slug and internal path render the same record", func(t *testing.T) {
		bySlug := get(e, "/cureplus-disha-hospital")
		byID := get(e, "/hospital/1")

		require.Equal(t, http.StatusOK, bySlug.Code)
		require.Equal(t, http.StatusOK, byID.Code)
		assert.Equal(t, byID.Body.String(), bySlug.Body.String())
		assert.Contains(t, byID.Body.String(), "CurePlus Disha Hospital, Mysuru")
		assert.Contains(t, byID.Body.String(), "<title>CurePlus Disha Hospital - CurePlus Hospitals</title>")
	})

	t.Run("embedded map is rendered when the record has one", func(t *testing.T) {
		rec := get(e, "/hospital/1")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `<iframe src="https://www.google.com/maps?q=CurePlus+Disha+Hospital&amp;output=embed"`)
		assert.Contains(t, rec.Body.String(), `title="Location of CurePlus Disha Hospital"`)
	})

	t.Run("slug on the internal route", func(t *testing.T) {
		rec := get(e, "/hospital/cureplus-hospital-bherya")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "CurePlus Bherya Hospital")
	})

	for _, path := range []string{"/hospital/999", "/hospital/not-a-hospital", "/hospital/01", "/hospital/+1"} {
		t.Run("unknown key renders the unavailable page "+path, func(t *testing.T) {
			rec := get(e, path)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Contains(t, rec.Body.String(), "Hospital data is not available.")
			assert.Contains(t, rec.Body.String(), "<html", "fallback is a full page, not a bare error")
		})
	}

	t.Run("absent services show the empty state", func(t *testing.T) {
		rec := get(e, "/hospital/13")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "No services information available.")
	})

	t.Run("absent phone and address show fallback text", func(t *testing.T) {
		rec := get(e, "/cureplus-hospital-hosuru")
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Phone number not available")
		assert.Contains(t, body, "Address not available")
	})

	t.Run("network sidebar links every hospital and marks the active one", func(t *testing.T) {
		rec := get(e, "/hospital/2")
		body := rec.Body.String()
		active := strings.Count(body, `<li class="active">`)
		inactive := strings.Count(body, `<li><a href="/cureplus-`)
		assert.Equal(t, 1, active)
		assert.Equal(t, 12, inactive)
		assert.Contains(t, body, `<li class="active"><a href="/cureplus-dharani-hospital"`)
	})

	t.Run("placeholders for missing stats", func(t *testing.T) {
		rec := get(e, "/hospital/7")
		body := rec.Body.String()
		assert.Contains(t, body, "<strong>10+</strong>")
		assert.Contains(t, body, "<strong>20+</strong>")
		assert.Contains(t, body, "<strong>24/7</strong>")
		assert.Contains(t, body, "<strong>4.8/5</strong>")
	})
}

func TestAboutGet(t *testing.T) {
	e := newTestEcho(t)
	rec := get(e, "/about")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Building Healthier Communities")
	assert.Contains(t, body, "Vision")
	assert.Contains(t, body, "Hospitals Under SHPL")

	store := catalog.MustDefault()
	for _, m := range store.Mappings() {
		assert.Contains(t, body, `href="/`+m.Slug+`"`, "about page must link hospital %d", m.ID)
	}
}

func TestGalleryGet(t *testing.T) {
	e := newTestEcho(t)

	t.Run("opens an image", func(t *testing.T) {
		rec := get(e, "/hospital/1/gallery/0")
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `class="lightbox"`)
		assert.Contains(t, body, "1 / 4")
		assert.Contains(t, body, `hx-get="/hospital/1/gallery/3"`, "previous wraps around")
		assert.Contains(t, body, `hx-get="/hospital/1/gallery/1"`)
		assert.NotContains(t, body, "<html", "lightbox is a fragment")
	})

	t.Run("works from a slug", func(t *testing.T) {
		rec := get(e, "/hospital/cureplus-disha-hospital/gallery/2")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "3 / 4")
	})

	t.Run("index out of range", func(t *testing.T) {
		rec := get(e, "/hospital/1/gallery/9")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("negative or malformed index", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, get(e, "/hospital/1/gallery/-1").Code)
		assert.Equal(t, http.StatusBadRequest, get(e, "/hospital/1/gallery/abc").Code)
	})

	t.Run("unknown hospital", func(t *testing.T) {
		rec := get(e, "/hospital/999/gallery/0")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Hospital data is not available.")
	})
}

func TestAPI(t *testing.T) {
	e := newTestEcho(t)

	t.Run("list", func(t *testing.T) {
		rec := get(e, "/api/hospitals")
		require.Equal(t, http.StatusOK, rec.Code)

		var out []HospitalSummaryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		require.Len(t, out, 13)
		assert.Equal(t, "cureplus-disha-hospital", out[0].Slug)
		assert.Equal(t, "https://cureplus.example/cureplus-disha-hospital", out[0].PublicURL)
		assert.Equal(t, "/hospital/1", out[0].InternalPath)
	})

	t.Run("detail by slug", func(t *testing.T) {
		rec := get(e, "/api/hospitals/cureplus-hospital-halli-mysuru")
		require.Equal(t, http.StatusOK, rec.Code)

		var out HospitalDetailResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, 13, out.ID)
		assert.Equal(t, "cureplus-hospital-halli-mysuru", out.Slug)
		assert.NotNil(t, out.Services)
		assert.Contains(t, rec.Body.String(), `"services":[]`)
	})

	t.Run("not found", func(t *testing.T) {
		rec := get(e, "/api/hospitals/not-a-hospital")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var out ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, "not_found", out.Code)
	})

	t.Run("rewrites", func(t *testing.T) {
		rec := get(e, "/api/rewrites")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `{"source":"/cureplus-disha-hospital","destination":"/hospital/1"}`)
	})
}
