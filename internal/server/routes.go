package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up the core, non-module routes.
func (s *Server) RegisterRoutes() {
	s.E.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/about")
	})

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	s.ServeStatic()
}
