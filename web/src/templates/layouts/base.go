package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/cureplus/website/internal/view"
	"github.com/cureplus/website/web/src/templates/partials"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

// Base wraps page content in the site document: head, header navigation and
// footer. It is a templ.Component so templ and gomponents content can both be
// passed in; gomponents pages go through view.AdaptGomponentToTempl.
func Base(title string, footer partials.FooterData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return document(title, footer, view.AdaptTemplToGomponent(ctx, content)).Render(w)
	})
}

func document(title string, footer partials.FooterData, body cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(CalculateTitle(title))),
				g.Link(g.Rel("stylesheet"), g.Href("/static/site.css")),
				g.Script(g.Src(htmxScript), g.Defer()),
			),
			g.Body(
				g.Header(
					g.Class("site-header"),
					g.Nav(
						g.A(g.Class("brand"), g.Href("/about"), cmp.Text(SiteName)),
						g.A(g.Href("/about"), cmp.Text("About")),
						g.A(g.Href("/about#network"), cmp.Text("Our Hospitals")),
					),
				),
				g.Main(body),
				partials.Footer(footer),
			),
		),
	)
}
