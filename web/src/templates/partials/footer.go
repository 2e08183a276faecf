package partials

import (
	"strings"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// FooterData is what the site footer prints.
type FooterData struct {
	NetworkName    string
	EmergencyPhone string
}

// Footer renders the shared site footer.
func Footer(d FooterData) cmp.Node {
	return g.Footer(
		g.Class("site-footer"),
		g.P(cmp.Text(d.NetworkName)),
		cmp.If(d.EmergencyPhone != "",
			g.P(
				cmp.Text("Emergency: "),
				g.A(g.Href(TelHref(d.EmergencyPhone)), cmp.Text(d.EmergencyPhone)),
			),
		),
	)
}

// TelHref builds a tel: link, dropping the spaces used for display.
func TelHref(phone string) string {
	return "tel:" + strings.ReplaceAll(phone, " ", "")
}
