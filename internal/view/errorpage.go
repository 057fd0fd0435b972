package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ErrorPage renders a minimal HTML error document for browser clients.
func ErrorPage(brand string, status int, message string) g.Node {
	return document(strconv.Itoa(status)+" — "+brand, "",
		h.Main(h.Class("container error-page"),
			h.H1(g.Text(strconv.Itoa(status))),
			h.P(g.Text(message)),
			h.P(h.A(h.Class("button primary"), h.Href("/"), g.Text("Back to "+brand))),
		),
	)
}
