// Package view renders the landing page with gomponents.
//
// Sections are plain functions over content values; Page fixes their order.
// Nothing in this package owns copy: every string comes from content.Site
// or PageData.
package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"landing/internal/accordion"
	"landing/internal/content"
)

// htmxConfig lets htmx swap 422 responses so validation messages reach the form.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"422","swap":true},{"code":"[45]..","swap":false,"error":true}]}`

// PageData is everything one render of the landing page needs.
type PageData struct {
	Site         content.Site
	Brand        string
	ContactEmail string
	SecurityPath string
	HTMXSrc      string
	Year         int
	FAQ          accordion.State
	Contact      ContactForm
}

// Page renders the full document. Section order is fixed:
// nav, hero (with approach summary), features, evidence, packages, faq, cta, footer.
func Page(d PageData) g.Node {
	return document(d.Brand+" — "+d.Site.Headline, d.HTMXSrc,
		SiteHeader(d.Brand, d.Site.Nav),
		h.Main(
			Hero(d.Site),
			Features(d.Site.Features),
			EvidenceSection(d.Site.Evidence),
			PackagesSection(d.Site),
			FAQSection(d.Site.FAQ, d.FAQ),
			CTASection(d.Site.CTA, d.SecurityPath, d.Contact),
		),
		SiteFooter(d.Brand, d.Site.FooterTagline, d.Year, d.SecurityPath, d.ContactEmail),
	)
}

func document(title, htmxSrc string, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.Meta(h.Name("htmx-config"), h.Content(htmxConfig)),
				h.TitleEl(g.Text(title)),
				h.Link(h.Rel("stylesheet"), h.Href("/static/site.css")),
				g.If(htmxSrc != "", h.Script(h.Src(htmxSrc), h.Defer())),
			),
			h.Body(h.Class("page"), g.Group(body)),
		),
	)
}
