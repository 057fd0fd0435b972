package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"landing/internal/content"
	"landing/internal/model"
)

const (
	// ContactPanelID is the element id swapped by htmx after a form submission.
	ContactPanelID = "cta-form"
	// ContactAnchorID is the in-page anchor of the contact form. It stays on the
	// page after the form is replaced by the acknowledgement.
	ContactAnchorID = "contact"
)

// ContactForm is the transient state of the contact form for one request.
// Values are echoed back only when validation fails.
type ContactForm struct {
	Name   string
	Email  string
	Org    string
	Msg    string
	Errors map[string]string
	Ack    *Acknowledgement
}

// Acknowledgement is shown in place of the form after a successful submit.
type Acknowledgement struct {
	Reference string
	Message   string
}

// CTASection renders the call to action card holding the contact panel.
func CTASection(cta content.CTA, securityPath string, form ContactForm) g.Node {
	return h.Section(h.ID("cta"), h.Class("container cta"),
		h.Div(h.Class("card cta-card grid-2"),
			h.Div(
				h.H2(g.Text(cta.Title)),
				h.P(h.Class("muted"), g.Text(cta.Lead)),
				h.Div(h.Class("badges"), g.Map(cta.Badges, badge)),
			),
			ContactPanel(securityPath, form),
		),
	)
}

// ContactPanel renders the acknowledgement when present, otherwise the form.
func ContactPanel(securityPath string, form ContactForm) g.Node {
	if form.Ack != nil {
		return h.Div(h.ID(ContactPanelID), h.Class("contact-panel"),
			h.Div(h.ID(ContactAnchorID), AcknowledgementNotice(*form.Ack)),
		)
	}
	return h.Div(h.ID(ContactPanelID), h.Class("contact-panel"),
		h.Form(h.ID(ContactAnchorID), h.Class("contact-form"),
			h.Method("post"), h.Action("/contact"),
			g.Attr("hx-post", "/contact"),
			g.Attr("hx-target", "#"+ContactPanelID),
			g.Attr("hx-swap", "outerHTML"),
			h.Div(h.Class("form-row"),
				field(form, "name", "text", "Full name", true, "name"),
				field(form, "email", "email", "Work email", true, "email"),
			),
			field(form, "org", "text", "Organization", false, "organization"),
			h.Div(h.Class("field"),
				h.Textarea(h.Name("msg"), h.ID("contact-msg"),
					h.Placeholder("What systems are in scope? (optional)"),
					g.Attr("rows", "4"),
					g.Text(form.Msg),
				),
				fieldError(form, "msg"),
			),
			h.Div(h.Class("form-actions"),
				h.Button(h.Type("submit"), h.Class("button primary"),
					icon(model.IconMail), g.Text(" Request review")),
				h.A(h.Class("button outline"), h.Href(securityPath),
					icon(model.IconShieldCheck), g.Text(" Security & Trust")),
			),
		),
	)
}

// AcknowledgementNotice renders the confirmation shown after a submit.
func AcknowledgementNotice(ack Acknowledgement) g.Node {
	return h.Div(h.Class("acknowledgement"), h.Role("status"), h.Aria("live", "polite"),
		icon(model.IconCheckCircle),
		h.P(h.Class("ack-message"), g.Text(ack.Message)),
		g.If(ack.Reference != "", h.P(h.Class("muted small"), g.Text("Reference: "+ack.Reference))),
	)
}

func field(form ContactForm, name, typ, placeholder string, required bool, autocomplete string) g.Node {
	return h.Div(h.Class("field"),
		h.Input(h.Name(name), h.ID("contact-"+name), h.Type(typ),
			h.Placeholder(placeholder),
			g.Attr("autocomplete", autocomplete),
			g.If(required, h.Required()),
			g.If(form.value(name) != "", h.Value(form.value(name))),
			g.If(form.Errors[name] != "", h.Aria("invalid", "true")),
		),
		fieldError(form, name),
	)
}

func fieldError(form ContactForm, name string) g.Node {
	msg, ok := form.Errors[name]
	if !ok {
		return nil
	}
	return h.P(h.Class("field-error"), g.Attr("data-field", name), g.Text(fieldLabel(name)+" "+msg))
}

func fieldLabel(name string) string {
	switch name {
	case "name":
		return "Name"
	case "email":
		return "Email"
	case "org":
		return "Organization"
	case "msg":
		return "Message"
	default:
		return name
	}
}

func (f ContactForm) value(name string) string {
	switch name {
	case "name":
		return f.Name
	case "email":
		return f.Email
	case "org":
		return f.Org
	case "msg":
		return f.Msg
	default:
		return ""
	}
}
