package middleware

import (
	"github.com/cureplus/website/internal/domain"
	"github.com/labstack/echo/v4"
)

// RewriteSource supplies the current rewrite table.
type RewriteSource interface {
	Rewrites() []domain.Rewrite
}

// RewriteSourceFunc adapts a function to RewriteSource. It lets the
// middleware follow a catalog store whose snapshot may be swapped.
type RewriteSourceFunc func() []domain.Rewrite

func (f RewriteSourceFunc) Rewrites() []domain.Rewrite { return f() }

// Rewrite returns a Pre middleware that serves each public path from its
// internal path. Only exact path matches are rewritten; the query string is
// preserved and every other request passes through untouched.
func Rewrite(source RewriteSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			for _, rw := range source.Rewrites() {
				if req.URL.Path == rw.Source {
					FromContext(req.Context()).Debug("rewriting request path", "from", rw.Source, "to", rw.Destination)
					req.URL.Path = rw.Destination
					req.URL.RawPath = ""
					break
				}
			}
			return next(c)
		}
	}
}
