package htmx

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestIsRequest(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if IsRequest(c) {
			return c.SendString("fragment:" + Target(c))
		}
		return c.SendString("full")
	})

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "plain request", want: "full"},
		{name: "htmx request", headers: map[string]string{RequestHeader: "true", TargetHeader: "faq-accordion"}, want: "fragment:faq-accordion"},
		{name: "header case", headers: map[string]string{RequestHeader: "TRUE"}, want: "fragment:"},
		{name: "boosted", headers: map[string]string{RequestHeader: "true", BoostedHeader: "true"}, want: "full"},
		{name: "false value", headers: map[string]string{RequestHeader: "false"}, want: "full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			resp, err := app.Test(req)
			assert.NoError(t, err)

			body, err := io.ReadAll(resp.Body)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, string(body))
		})
	}
}

func TestSwaps(t *testing.T) {
	app := fiber.New()
	app.Post("/contact", func(c *fiber.Ctx) error {
		if Swaps(c, "cta-form") {
			return c.SendString("fragment")
		}
		return c.SendString("full")
	})

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "plain request", want: "full"},
		{name: "no target", headers: map[string]string{RequestHeader: "true"}, want: "fragment"},
		{name: "matching target", headers: map[string]string{RequestHeader: "true", TargetHeader: "cta-form"}, want: "fragment"},
		{name: "other target", headers: map[string]string{RequestHeader: "true", TargetHeader: "main"}, want: "full"},
		{name: "boosted", headers: map[string]string{RequestHeader: "true", BoostedHeader: "true", TargetHeader: "cta-form"}, want: "full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/contact", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			resp, err := app.Test(req)
			assert.NoError(t, err)

			body, err := io.ReadAll(resp.Body)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, string(body))
		})
	}
}
