package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/cureplus/website/internal/catalog"
	"github.com/cureplus/website/internal/handlers"
	appmiddleware "github.com/cureplus/website/internal/middleware"
	"github.com/cureplus/website/internal/rendering"
	"github.com/cureplus/website/internal/view"
	"github.com/cureplus/website/web/src/templates/layouts"
	"github.com/cureplus/website/web/src/templates/pages"
	"github.com/cureplus/website/web/src/templates/partials"
	"github.com/labstack/echo/v4"
)

// setupErrorHandling installs the HTTP error handler. Errors that are not
// *echo.HTTPError are unexpected and logged with a stack trace. API requests
// get a JSON body; everything else gets the plain error page.
func setupErrorHandling(e *echo.Echo, store *catalog.Store, renderer rendering.Renderer) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprint(he.Message)
		} else {
			appmiddleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				"error", err,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}

		var renderErr error
		switch {
		case c.Request().Method == http.MethodHead:
			renderErr = c.NoContent(code)
		case strings.HasPrefix(c.Request().URL.Path, "/api/"):
			renderErr = c.JSON(code, handlers.ErrorResponse{
				Code:    strings.ReplaceAll(strings.ToLower(http.StatusText(code)), " ", "_"),
				Message: message,
			})
		default:
			n := store.Catalog().Network()
			footer := partials.FooterData{NetworkName: n.Name, EmergencyPhone: n.EmergencyPhone}
			body := view.AdaptGomponentToTempl(pages.ErrorContent(code, message))
			renderErr = renderer.RenderPage(c, code, layouts.Base(http.StatusText(code), footer, body))
		}
		if renderErr != nil {
			slog.Error("Failed to write error response", "error", renderErr, "original_error", err)
		}
	}
}
