package handlers

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if u := c.Locals("user"); u != nil {
		data["User"] = u
	}
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	} else if cookTok := c.Cookies("csrf_"); cookTok != "" {
		data["CSRFToken"] = cookTok
	}
	if msg := popFlash(c); msg != "" {
		data["Flash"] = msg
	}
	return c.Render(tmpl, data)
}

// flash carries a one-shot message across a redirect via a short-lived cookie.
// The value is escaped so punctuation and spaces survive the cookie header.
func flash(c *fiber.Ctx, msg string) {
	c.Cookie(&fiber.Cookie{
		Name:     "flash",
		Value:    url.QueryEscape(msg),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(time.Minute),
	})
}

func popFlash(c *fiber.Ctx) string {
	msg, _ := url.QueryUnescape(c.Cookies("flash"))
	if msg != "" {
		c.Cookie(&fiber.Cookie{
			Name:     "flash",
			Value:    "",
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Expires:  time.Now().Add(-time.Hour),
		})
	}
	return msg
}
