package pages

import (
	"strconv"

	"github.com/cureplus/website/internal/view"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// Unavailable is shown in place of a detail page when the hospital cannot be
// resolved.
func Unavailable() cmp.Node {
	return g.Div(
		g.Class("unavailable"),
		cmp.Text(view.UnavailableText),
	)
}

// ErrorContent is the body of the generic error page.
func ErrorContent(code int, message string) cmp.Node {
	return g.Div(
		g.Class("container unavailable"),
		g.H1(cmp.Text(strconv.Itoa(code))),
		g.P(cmp.Text(message)),
	)
}

// Lightbox is the htmx fragment for one opened gallery image. It is swapped
// into #lightbox and carries its own navigation.
func Lightbox(d view.LightboxData, hospitalID int) cmp.Node {
	nav := func(label string, index int) cmp.Node {
		return g.Button(
			g.Type("button"),
			hx.Get(GalleryURL(hospitalID, index)),
			hx.Target("#lightbox"),
			hx.Swap("innerHTML"),
			cmp.Text(label),
		)
	}
	return g.Div(
		g.Class("lightbox"),
		cmp.Attr("role", "dialog"),
		cmp.If(d.Total > 1, nav("‹", d.Prev)),
		g.Img(g.Src(d.Image.URL), g.Alt(d.Image.Alt)),
		cmp.If(d.Total > 1, nav("›", d.Next)),
		g.Button(
			g.Type("button"),
			g.Class("close"),
			cmp.Attr("onclick", "document.getElementById('lightbox').innerHTML = ''"),
			cmp.Text("×"),
		),
		g.Span(g.Class("counter"), cmp.Textf("%d / %d", d.Image.Index+1, d.Total)),
	)
}
