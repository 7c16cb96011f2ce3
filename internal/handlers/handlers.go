package handlers

import (
	"html"

	"github.com/gofiber/fiber/v3"
)

// htmxError returns an error message as HTML that HTMX will display.
// Uses 200 status so HTMX processes the swap (HTMX ignores non-2xx by default).
// The alert is swapped out-of-band because widget requests swap nothing themselves.
func htmxError(c fiber.Ctx, message string) error {
	return c.SendString(
		`<div id="dashboard-alert" hx-swap-oob="true" class="alert">` + html.EscapeString(message) + `</div>`,
	)
}

// isHTMX returns true if the request was issued by HTMX.
func isHTMX(c fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}
