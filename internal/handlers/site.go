package handlers

import (
	"github.com/a-h/templ"
	"github.com/cureplus/website/internal/catalog"
	"github.com/cureplus/website/internal/view"
	"github.com/cureplus/website/web/src/templates/layouts"
	"github.com/cureplus/website/web/src/templates/partials"
	cmp "maragu.dev/gomponents"
)

// page wraps gomponents content in the site layout.
func page(c *catalog.Catalog, title string, content cmp.Node) templ.Component {
	n := c.Network()
	footer := partials.FooterData{NetworkName: n.Name, EmergencyPhone: n.EmergencyPhone}
	return layouts.Base(title, footer, view.AdaptGomponentToTempl(content))
}
