package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"landing/internal/content"
	"landing/internal/model"
)

// SiteHeader renders the sticky navigation bar.
func SiteHeader(brand string, links []model.NavLink) g.Node {
	return h.Header(h.Class("site-header"),
		h.Div(h.Class("container header-row"),
			h.A(h.Class("brand"), h.Href("#top"),
				icon(model.IconShieldCheck),
				h.Span(g.Text(brand)),
			),
			h.Nav(h.Class("site-nav"), h.Aria("label", "Primary"),
				g.Map(links, func(l model.NavLink) g.Node {
					return h.A(h.Href(l.Href), g.Text(l.Label))
				}),
			),
			h.Div(h.Class("header-actions"),
				h.A(h.Class("button secondary"), h.Href("#contact"), g.Text("Contact")),
				h.A(h.Class("button primary"), h.Href("#cta"), g.Text("Book Review")),
			),
		),
	)
}

// Hero renders the headline, selling points, calls to action and the
// approach summary card.
func Hero(s content.Site) g.Node {
	return h.Section(h.ID("top"), h.Class("hero"),
		h.Div(h.Class("container hero-grid"),
			h.Div(h.Class("hero-copy"),
				h.H1(g.Text(s.Headline)),
				h.P(h.Class("lead"), richText(s.Lead)),
				h.Div(h.Class("badges"),
					g.Map(s.SellingPoints, func(p model.SellingPoint) g.Node {
						return badge(p.Label)
					}),
				),
				h.Div(h.Class("hero-actions"),
					h.A(h.Class("button primary large"), h.Href("#cta"),
						g.Text("Book a 20‑minute readiness review"), icon(model.IconArrowRight)),
					h.A(h.Class("button outline large"), h.Href("#evidence"),
						g.Text("See evidence snapshot")),
				),
			),
			ApproachSummary(s.ApproachTitle, s.Approach),
		),
	)
}

// ApproachSummary renders the step cards next to the hero copy.
func ApproachSummary(title string, steps []model.ApproachStep) g.Node {
	return h.Div(h.ID("approach"), h.Class("card approach"),
		h.H2(h.Class("card-title"), g.Text(title)),
		h.Div(h.Class("approach-steps"),
			g.Map(steps, func(st model.ApproachStep) g.Node {
				return h.Div(h.Class("approach-step"),
					icon(st.Icon),
					h.Div(h.Class("step-title"), g.Text(st.Title)),
					h.P(h.Class("muted"), g.Text(st.Description)),
				)
			}),
		),
	)
}

// Features renders one card per feature.
func Features(features []model.Feature) g.Node {
	return h.Section(h.ID("features"), h.Class("container features"),
		h.Div(h.Class("grid-3"),
			g.Map(features, func(f model.Feature) g.Node {
				return h.Article(h.Class("card feature"),
					h.Div(h.Class("card-header"),
						icon(f.Icon),
						h.H3(h.Class("card-title"), g.Text(f.Title)),
					),
					h.P(h.Class("muted"), g.Text(f.Description)),
				)
			}),
		),
	)
}

// EvidenceSection renders the evidence copy and the two sample artifacts.
func EvidenceSection(e content.Evidence) g.Node {
	return h.Section(h.ID("evidence"), h.Class("band"),
		h.Div(h.Class("container grid-2"),
			h.Div(
				h.H2(g.Text(e.Title)),
				h.P(h.Class("muted"), g.Text(e.Lead)),
				h.Ul(h.Class("checklist"),
					g.Map(e.Points, func(p model.RichText) g.Node {
						return h.Li(icon(model.IconCheckCircle), g.Text(" "), richText(p))
					}),
				),
			),
			h.Div(h.Class("artifacts"),
				Artifact(e.Transcript),
				Artifact(e.CSV),
			),
		),
	)
}

// Artifact renders sample text verbatim inside a pre block.
func Artifact(a model.SampleArtifact) g.Node {
	return h.Article(h.Class("card artifact"),
		h.H3(h.Class("card-title"), g.Text(a.Title)),
		h.Pre(h.Class("sample"), g.Text(a.Body)),
	)
}

// PackagesSection renders the package grid.
func PackagesSection(s content.Site) g.Node {
	return h.Section(h.ID("packages"), h.Class("container packages"),
		h.Div(h.Class("section-head"),
			h.Div(
				h.H2(g.Text(s.PackagesTitle)),
				h.P(h.Class("muted"), g.Text(s.PackagesLead)),
			),
			g.If(s.PackagesBadge != "", h.Span(h.Class("badge"), icon(model.IconGlobe), g.Text(" "+s.PackagesBadge))),
		),
		h.Div(h.Class("grid-3"),
			g.Map(s.Packages, PackageCard),
		),
	)
}

// PackageCard renders one package with its bullets in order.
func PackageCard(p model.Package) g.Node {
	return h.Article(h.Class("card package"),
		h.H3(h.Class("card-title"), g.Text(p.Name)),
		h.P(h.Class("muted"), g.Text(p.Description)),
		h.Ul(h.Class("checklist"),
			g.Map(p.Bullets, func(b string) g.Node {
				return h.Li(icon(model.IconCheckCircle), g.Text(" "+b))
			}),
		),
	)
}

// SiteFooter renders the copyright line and secondary links.
func SiteFooter(brand, tagline string, year int, securityPath, email string) g.Node {
	return h.Footer(h.Class("site-footer"),
		h.Div(h.Class("container footer-row"),
			h.Div(h.Class("brand"), icon(model.IconShieldCheck), h.Span(g.Text(brand))),
			h.Div(h.Class("muted small"),
				g.Text("© "+strconv.Itoa(year)+" "+brand+" · "+tagline),
			),
			h.Nav(h.Class("footer-links"),
				h.A(h.Href(securityPath), g.Text("Security & Trust")),
				h.A(h.Href("#"), g.Text("Privacy")),
				h.A(h.Href("mailto:"+email), g.Text("Contact")),
			),
		),
	)
}

func badge(label string) g.Node {
	return h.Span(h.Class("badge"), g.Text(label))
}

func icon(i model.Icon) g.Node {
	return h.Span(h.Class("icon icon-"+string(i)), h.Aria("hidden", "true"))
}

func richText(r model.RichText) g.Node {
	return g.Map(r, func(s model.Segment) g.Node {
		switch s.Style {
		case model.StyleBold:
			return h.B(g.Text(s.Text))
		case model.StyleCode:
			return h.Code(g.Text(s.Text))
		default:
			return g.Text(s.Text)
		}
	})
}
