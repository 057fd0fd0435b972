// Package htmx detects partial page requests issued by htmx.
package htmx

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	// RequestHeader is set to "true" on every request htmx issues.
	RequestHeader = "HX-Request"
	// TargetHeader carries the id of the element htmx will swap.
	TargetHeader = "HX-Target"
	// BoostedHeader is set when the request comes from an hx-boost link.
	BoostedHeader = "HX-Boosted"
)

// IsRequest reports whether the request was initiated by htmx and expects a
// fragment rather than a full document. Boosted requests want the full page.
func IsRequest(c *fiber.Ctx) bool {
	if !strings.EqualFold(c.Get(RequestHeader), "true") {
		return false
	}
	return !strings.EqualFold(c.Get(BoostedHeader), "true")
}

// Target returns the id of the element being swapped, or "".
func Target(c *fiber.Ctx) string {
	return strings.TrimPrefix(c.Get(TargetHeader), "#")
}

// Swaps reports whether the request is an htmx request whose swap target is
// the element with the given id. A request without HX-Target accepts any
// fragment.
func Swaps(c *fiber.Ctx, id string) bool {
	if !IsRequest(c) {
		return false
	}
	target := Target(c)
	return target == "" || target == id
}
