package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "github.com/HARIGUTTI2002/refurbished-phone-app/internal/log"
	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/services"
)

// RequireUser enforces a logged-in session; the whole inventory UI is private.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil {
			applog.Security(c, "access.denied", map[string]any{"sid": sid})
			return c.Redirect("/login")
		}
		c.Locals("user", u)
		return c.Next()
	}
}
