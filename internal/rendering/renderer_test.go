package rendering

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

func TestRenderComponent(t *testing.T) {
	r := NewUniversalRenderer()

	t.Run("gomponents node", func(t *testing.T) {
		out, err := r.RenderComponent(context.Background(), g.P(cmp.Text("Phone number not available")))
		require.NoError(t, err)
		assert.Equal(t, "<p>Phone number not available</p>", string(out))
	})

	t.Run("templ component", func(t *testing.T) {
		comp := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<span>templ</span>")
			return err
		})
		out, err := r.RenderComponent(context.Background(), comp)
		require.NoError(t, err)
		assert.Equal(t, "<span>templ</span>", string(out))
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := r.RenderComponent(context.Background(), 42)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported component type: int")
	})
}

func TestEchoRender(t *testing.T) {
	e := echo.New()
	e.Renderer = NewUniversalRenderer()
	e.GET("/", func(c echo.Context) error {
		return c.Render(http.StatusNotFound, "", g.Div(cmp.Text("Hospital data is not available.")))
	})
	e.GET("/page", func(c echo.Context) error {
		return NewUniversalRenderer().RenderPage(c, http.StatusOK, g.H1(cmp.Text("About")))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "<div>Hospital data is not available.</div>", rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/page", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Equal(t, "<h1>About</h1>", rec.Body.String())
}
