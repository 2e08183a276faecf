package pages

import (
	"fmt"

	"github.com/cureplus/website/internal/view"
	"github.com/cureplus/website/web/src/templates/partials"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

var highlightIcons = map[string]string{
	view.HighlightSpecialists: "🩺",
	view.HighlightBeds:        "🛏",
	view.HighlightEmergency:   "🚨",
	view.HighlightRating:      "⭐",
}

// HospitalContent is the body of a hospital detail page.
func HospitalContent(d view.HospitalData) cmp.Node {
	return cmp.Group{
		g.Div(
			g.Class("container detail"),
			g.Div(
				g.Class("detail-main"),
				hero(d),
				g.Section(g.Class("highlights"), cmp.Map(d.Highlights, highlightCard)),
				g.Section(
					g.Class("card"),
					g.H2(cmp.Text("About the Hospital")),
					g.P(g.Style("white-space: pre-line"), cmp.Text(d.Description)),
				),
				g.Section(
					g.Class("grid"),
					services(d.Services),
					facilities(d.Facilities),
				),
				infrastructure(d),
				gallery(d),
				contact(d.Contact),
			),
			g.Aside(
				g.Class("detail-aside"),
				cmp.If(d.EmergencyPhone != "",
					g.Div(
						g.Class("card emergency"),
						g.H3(cmp.Text("Emergency Contact")),
						g.A(g.Href(partials.TelHref(d.EmergencyPhone)), cmp.Text(d.EmergencyPhone)),
					),
				),
				network(d.Network),
			),
		),
		cmp.If(d.Contact.EmbedMapURL != "",
			g.Section(
				g.Class("container map"),
				g.H2(cmp.Text("Our Location")),
				g.IFrame(
					g.Src(d.Contact.EmbedMapURL),
					g.Width("100%"),
					g.Height("450"),
					g.Style("border: 0"),
					cmp.Attr("loading", "lazy"),
					cmp.Attr("allowfullscreen"),
					g.Title(d.Contact.MapTitle),
				),
			),
		),
		g.Div(g.ID("lightbox")),
	}
}

func hero(d view.HospitalData) cmp.Node {
	return g.Header(
		cmp.If(d.HeroURL != "", g.Img(g.Class("hero"), g.Src(d.HeroURL), g.Alt(d.HeroAlt))),
		g.H1(cmp.Text(d.Heading)),
		cmp.If(d.Location != "", g.P(g.Class("location"), cmp.Text("📍 "+d.Location))),
		g.Span(g.Class("pill open-now"), cmp.Text("Open Now")),
	)
}

func highlightCard(h view.Highlight) cmp.Node {
	return g.Div(
		g.Class("card highlight highlight-"+h.Kind),
		g.Span(cmp.Text(highlightIcons[h.Kind])),
		g.P(cmp.Text(h.Label)),
		g.P(g.Strong(cmp.Text(h.Value))),
	)
}

func services(items []string) cmp.Node {
	return g.Div(
		g.Class("services"),
		g.H2(cmp.Text("Services")),
		cmp.If(len(items) == 0, g.P(g.Class("muted"), cmp.Text(view.NoServicesText))),
		cmp.If(len(items) > 0,
			g.Ul(cmp.Map(items, func(s string) cmp.Node { return g.Li(cmp.Text(s)) })),
		),
	)
}

func facilities(items []view.FacilityItem) cmp.Node {
	return g.Div(
		g.Class("facilities"),
		g.H2(cmp.Text("Facilities")),
		cmp.If(len(items) == 0, g.P(g.Class("muted"), cmp.Text(view.NoFacilitiesText))),
		cmp.If(len(items) > 0,
			g.Ul(cmp.Map(items, func(f view.FacilityItem) cmp.Node {
				return g.Li(g.Span(g.Class("icon"), cmp.Text(f.Icon)), cmp.Text(" "+f.Label))
			})),
		),
	)
}

func infrastructure(d view.HospitalData) cmp.Node {
	return g.Section(
		g.Class("card infrastructure"),
		g.H2(cmp.Text("Infrastructure")),
		g.P(cmp.Text(d.Infrastructure)),
		cmp.If(len(d.Departments) > 0,
			cmp.Group{
				g.H3(cmp.Text("Departments")),
				g.Div(cmp.Map(d.Departments, func(dep string) cmp.Node {
					return g.Span(g.Class("pill"), cmp.Text(dep))
				})),
			},
		),
	)
}

func gallery(d view.HospitalData) cmp.Node {
	if len(d.Gallery) == 0 {
		return nil
	}
	return g.Section(
		g.Class("gallery-section"),
		g.H2(cmp.Text("Gallery")),
		g.Div(
			g.Class("gallery"),
			cmp.Map(d.Gallery, func(img view.GalleryItem) cmp.Node {
				return g.A(
					g.Href(img.URL),
					hx.Get(GalleryURL(d.ID, img.Index)),
					hx.Target("#lightbox"),
					hx.Swap("innerHTML"),
					g.Img(g.Src(img.URL), g.Alt(img.Alt), cmp.Attr("loading", "lazy")),
				)
			}),
		),
	)
}

func contact(c view.ContactData) cmp.Node {
	return g.Section(
		g.Class("grid contact"),
		g.Div(
			g.Class("card"),
			g.H2(cmp.Text("Contact Information")),
			cmp.If(c.ShowAddress,
				g.A(
					g.Class("address"),
					g.Href(c.MapURL),
					g.Target("_blank"),
					g.Rel("noopener noreferrer"),
					cmp.Text("📍 "+c.Address),
				),
			),
			g.P(
				g.Class("phone"),
				g.A(g.Href(c.PhoneHref), cmp.Text(c.Phone)),
			),
		),
		g.Div(
			g.Class("card hours"),
			g.H2(cmp.Text("Opening Hours")),
			g.P(cmp.Text("Monday - Sunday: "), g.Strong(cmp.Text("24 Hours"))),
			g.P(cmp.Text("Emergency Services: "), g.Strong(cmp.Text(view.EmergencyValue+" Available"))),
		),
	)
}

func network(items []view.NetworkItem) cmp.Node {
	return g.Div(
		g.Class("card network"),
		g.H3(cmp.Text("Our Network")),
		g.Ul(cmp.Map(items, func(h view.NetworkItem) cmp.Node {
			return g.Li(
				cmp.If(h.Active, g.Class("active")),
				g.A(
					g.Href(h.URL),
					cmp.If(h.ImageURL != "", g.Img(g.Src(h.ImageURL), g.Alt(h.Name), g.Width("48"), g.Height("48"))),
					g.Span(cmp.Text(h.Name)),
					g.Small(cmp.Text(" ⭐ "+h.Rating)),
				),
			)
		})),
	)
}

// GalleryURL is the lightbox fragment route of a gallery image.
func GalleryURL(id, index int) string {
	return fmt.Sprintf("/hospital/%d/gallery/%d", id, index)
}
