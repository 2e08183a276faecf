package pages

import (
	"github.com/cureplus/website/internal/domain"
	"github.com/cureplus/website/internal/view"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

var cardIcons = map[string]string{
	"eye":       "👁",
	"target":    "🎯",
	"bullseye":  "🏁",
	"ambulance": "🚑",
	"heartbeat": "💓",
	"pharmacy":  "💊",
}

// AboutContent is the body of the about page: overview, vision/mission/goal,
// value propositions and the hospital network grid.
func AboutContent(d view.AboutData) cmp.Node {
	n := d.Network
	return g.Div(
		g.Class("container"),
		g.Div(
			g.Class("text-center"),
			g.H1(cmp.Text(n.Headline)),
			g.P(g.Class("muted"), cmp.Text(n.Tagline)),
		),
		g.Section(
			g.Class("overview"),
			cmp.Map(n.Overview, func(p string) cmp.Node { return g.P(cmp.Text(p)) }),
		),
		g.Section(
			g.Class("grid pillars"),
			cmp.Map(n.Pillars, contentCard),
		),
		g.Section(
			g.Class("grid value-props"),
			cmp.Map(n.ValueProps, contentCard),
		),
		g.Section(
			g.ID("network"),
			g.H2(cmp.Text("Hospitals Under SHPL")),
			g.P(g.Class("muted"), cmp.Text("Our growing network of healthcare facilities")),
			g.Div(
				g.Class("grid"),
				cmp.Map(d.Hospitals, hospitalCard),
			),
		),
		cmp.If(n.CareersURL != "",
			g.Section(
				g.Class("card cta"),
				g.H3(cmp.Text(n.CareersText)),
				g.A(g.Href(n.CareersURL), cmp.Text("Explore Careers →")),
			),
		),
	)
}

func contentCard(c domain.Card) cmp.Node {
	return g.Div(
		g.Class("card"),
		g.H2(
			cmp.If(cardIcons[c.Icon] != "", g.Span(g.Class("icon"), cmp.Text(cardIcons[c.Icon]+" "))),
			cmp.Text(c.Title),
		),
		g.P(cmp.Text(c.Description)),
	)
}

func hospitalCard(h view.NetworkItem) cmp.Node {
	return g.A(
		g.Class("card hospital-card"),
		g.Href(h.URL),
		cmp.If(h.ImageURL != "", g.Img(g.Src(h.ImageURL), g.Alt(h.Name), cmp.Attr("loading", "lazy"))),
		g.H3(cmp.Text("🏥 "+h.Name)),
	)
}
