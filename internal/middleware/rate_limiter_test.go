package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter(t *testing.T) {
	e := echo.New()

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}

	limit := 10
	e.GET("/", handler, RateLimiter(limit))

	t.Run("allows requests within the limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("blocks requests exceeding the limit", func(t *testing.T) {
		clientIP := "192.0.2.2:1234"

		for i := 0; i < limit; i++ {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = clientIP
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code, "request %d should be allowed", i+1)
		}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = clientIP
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), "rate_limited")
	})
}

func TestRateLimiter_PerMinute(t *testing.T) {
	serve := func(e *echo.Echo, remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/hospitals", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("burst follows the configured limit", func(t *testing.T) {
		e := echo.New()
		e.GET("/api/hospitals", func(c echo.Context) error {
			return c.String(http.StatusOK, "OK")
		}, RateLimiter(3))

		for i := 0; i < 3; i++ {
			require.Equal(t, http.StatusOK, serve(e, "198.51.100.7:4000").Code, "request %d should be allowed", i+1)
		}
		assert.Equal(t, http.StatusTooManyRequests, serve(e, "198.51.100.7:4000").Code)

		// Another client has its own bucket.
		assert.Equal(t, http.StatusOK, serve(e, "198.51.100.8:4000").Code)
	})

	t.Run("denied requests get a JSON error body", func(t *testing.T) {
		e := echo.New()
		e.GET("/api/hospitals", func(c echo.Context) error {
			return c.String(http.StatusOK, "OK")
		}, RateLimiter(1))

		require.Equal(t, http.StatusOK, serve(e, "203.0.113.9:5000").Code)
		rec := serve(e, "203.0.113.9:5000")

		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, map[string]string{
			"code":    "rate_limited",
			"message": "Too many requests. Please try again later.",
		}, body)
	})
}
