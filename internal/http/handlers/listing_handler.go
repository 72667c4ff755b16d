package handlers

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/domain"
	applog "github.com/HARIGUTTI2002/refurbished-phone-app/internal/log"
	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/pricing"
	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/repos"
	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/services"
	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/validate"
)

type ListingHandler struct {
	Listings *services.ListingService
	Phones   *repos.PhoneRepo
}

// POST /phone/:id/list/:platform
func (h *ListingHandler) Attempt(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Phone not found"})
	}

	outcome, platform, err := h.Listings.Attempt(id, c.Params("platform"))
	switch {
	case errors.Is(err, pricing.ErrUnknownPlatform):
		flash(c, "Unknown platform.")
		return c.Redirect("/")
	case errors.Is(err, sql.ErrNoRows):
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Phone not found"})
	case err != nil:
		applog.Error(c, "listing.attempt.fail", err, map[string]any{"phone_id": id, "platform": string(platform)})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not record listing"})
	}

	if outcome.Status == domain.StatusListed {
		applog.Audit(c, "listing.listed", map[string]any{"phone_id": id, "platform": string(platform), "price": outcome.Price})
		flash(c, fmt.Sprintf("Listed on %s at $%.2f (%s).", platform, outcome.Price, outcome.ConditionMapped))
	} else {
		applog.Info(c, "listing.rejected", map[string]any{"phone_id": id, "platform": string(platform), "reason": outcome.Reason})
		flash(c, fmt.Sprintf("Listing failed on %s: %s", platform, outcome.Reason))
	}
	return c.Redirect("/")
}

// GET /api/v1/quote?phoneId=...
// Returns the computed, override, and effective price per platform.
func (h *ListingHandler) Quote(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Query("phoneId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing phoneId"})
	}
	phone, err := h.Phones.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "phone not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"phone_id": phone.ID, "quotes": services.Quotes(phone)})
}
