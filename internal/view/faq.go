package view

import (
	"net/url"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"landing/internal/accordion"
	"landing/internal/model"
)

// AccordionID is the element id swapped by htmx when an entry is toggled.
const AccordionID = "faq-accordion"

// FAQSection renders the FAQ heading and the accordion.
func FAQSection(entries []model.FAQEntry, state accordion.State) g.Node {
	return h.Section(h.ID("faq"), h.Class("band"),
		h.Div(h.Class("container"),
			h.H2(g.Text("FAQ")),
			Accordion(entries, state),
		),
	)
}

// Accordion renders every entry with at most one panel expanded. Each trigger
// links to the state that selecting it would produce, so toggling works as a
// plain link and as an htmx swap.
func Accordion(entries []model.FAQEntry, state accordion.State) g.Node {
	return h.Div(h.ID(AccordionID), h.Class("accordion"),
		g.Map(entries, func(e model.FAQEntry) g.Node {
			return accordionItem(e, state)
		}),
	)
}

func accordionItem(e model.FAQEntry, state accordion.State) g.Node {
	open := state.IsOpen(e.ID)
	next := state.Select(e.ID)
	panelID := "faq-" + e.ID + "-panel"

	stateName := "closed"
	if open {
		stateName = "open"
	}

	return h.Div(h.Class("accordion-item"), g.Attr("data-state", stateName),
		h.H3(h.Class("accordion-heading"),
			h.A(h.ID("faq-"+e.ID+"-trigger"), h.Class("accordion-trigger"),
				h.Href(PageURL(next)),
				g.Attr("hx-get", FragmentURL(next)),
				g.Attr("hx-target", "#"+AccordionID),
				g.Attr("hx-swap", "outerHTML"),
				h.Aria("expanded", boolString(open)),
				h.Aria("controls", panelID),
				g.Text(e.Question),
			),
		),
		h.Div(h.ID(panelID), h.Class("accordion-panel"), h.Role("region"),
			h.Aria("labelledby", "faq-"+e.ID+"-trigger"),
			g.If(!open, g.Attr("hidden")),
			richText(e.Answer),
		),
	)
}

// PageURL is the full-page URL that renders state.
func PageURL(state accordion.State) string {
	if state.IsClosed() {
		return "/#faq"
	}
	return "/?" + url.Values{"faq": {state.OpenID()}}.Encode() + "#faq"
}

// FragmentURL is the htmx URL that renders only the accordion for state.
func FragmentURL(state accordion.State) string {
	if state.IsClosed() {
		return "/faq"
	}
	return "/faq?" + url.Values{"open": {state.OpenID()}}.Encode()
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
