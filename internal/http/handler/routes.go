package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	g "maragu.dev/gomponents"

	"landing/internal/accordion"
	"landing/internal/assets"
	"landing/internal/content"
	"landing/internal/htmx"
	"landing/internal/service"
	"landing/internal/view"
)

// PageOptions is the fixed input of every page render.
type PageOptions struct {
	Content      content.Site
	Brand        string
	ContactEmail string
	SecurityPath string
	HTMXSrc      string
	StaticMaxAge int
	// Now is used for the footer year. Defaults to time.Now.
	Now func() time.Time
}

func (o PageOptions) pageData(state accordion.State, form view.ContactForm) view.PageData {
	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	return view.PageData{
		Site:         o.Content,
		Brand:        o.Brand,
		ContactEmail: o.ContactEmail,
		SecurityPath: o.SecurityPath,
		HTMXSrc:      o.HTMXSrc,
		Year:         now().Year(),
		FAQ:          state,
		Contact:      form,
	}
}

func (o PageOptions) faqIDs() []string {
	ids := make([]string, len(o.Content.FAQ))
	for i, e := range o.Content.FAQ {
		ids[i] = e.ID
	}
	return ids
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, opts PageOptions, contactSvc service.ContactService, metrics http.Handler) {
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(assets.Static()),
		MaxAge: opts.StaticMaxAge,
	}))

	app.Get("/", LandingPage(opts))
	app.Get("/faq", FAQFragment(opts))
	app.Post("/contact", SubmitContact(opts, contactSvc))

	app.Get("/health", HealthCheck(opts.Content))
	app.Get("/healthz", LivenessProbe())

	if metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(metrics))
	}
}

// LandingPage renders the full page. The faq query parameter selects the open
// accordion entry; unknown values render the accordion closed.
func LandingPage(opts PageOptions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state := accordion.Parse(c.Query("faq"), opts.faqIDs())
		return render(c, fiber.StatusOK, view.Page(opts.pageData(state, view.ContactForm{})))
	}
}

// FAQFragment returns the accordion for the requested state to htmx, and
// redirects everyone else to the equivalent full page.
func FAQFragment(opts PageOptions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state := accordion.Parse(c.Query("open"), opts.faqIDs())
		if !htmx.IsRequest(c) {
			return c.Redirect(view.PageURL(state), fiber.StatusSeeOther)
		}
		return render(c, fiber.StatusOK, view.Accordion(opts.Content.FAQ, state))
	}
}

// SubmitContact acknowledges a contact form submission. Nothing is stored.
// htmx requests get the contact panel fragment; plain posts get the whole page
// back with the panel updated, so the visitor stays on the landing page.
func SubmitContact(opts PageOptions, contactSvc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.ContactRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid form body")
		}

		c.Set(fiber.HeaderCacheControl, "no-store")

		ack, err := contactSvc.Acknowledge(c.UserContext(), &req)
		if err != nil {
			var verr *service.ValidationError
			if !errors.As(err, &verr) {
				return err
			}
			form := view.ContactForm{
				Name:   req.Name,
				Email:  req.Email,
				Org:    req.Org,
				Msg:    req.Message,
				Errors: verr.Fields,
			}
			return renderContact(c, opts, fiber.StatusUnprocessableEntity, form)
		}

		form := view.ContactForm{Ack: &view.Acknowledgement{
			Reference: ack.Reference,
			Message:   ack.Message,
		}}
		return renderContact(c, opts, fiber.StatusOK, form)
	}
}

// renderContact answers with the panel fragment only when htmx is swapping the
// panel itself; any other target gets the full page.
func renderContact(c *fiber.Ctx, opts PageOptions, status int, form view.ContactForm) error {
	if htmx.Swaps(c, view.ContactPanelID) {
		return render(c, status, view.ContactPanel(opts.SecurityPath, form))
	}
	return render(c, status, view.Page(opts.pageData(accordion.Closed(), form)))
}

// HealthCheck reports healthy while the embedded content is valid.
func HealthCheck(site content.Site) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := content.Validate(site); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "content invalid")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness probe.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

func render(c *fiber.Ctx, status int, n g.Node) error {
	c.Status(status)
	c.Type("html", "utf-8")
	return n.Render(c)
}
