package handlers

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/domain"
	applog "github.com/HARIGUTTI2002/refurbished-phone-app/internal/log"
	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/repos"
	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/services"
	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/validate"
)

type OverrideHandler struct {
	Listings *services.ListingService
	Phones   *repos.PhoneRepo
}

// GET /phone/:id/overrides
func (h *OverrideHandler) Form(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Phone not found"})
	}
	phone, err := h.Phones.Get(id)
	if err != nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Phone not found"})
	}
	return render(c, "overrides", fiber.Map{"Phone": phone, "Platforms": domain.Platforms})
}

// POST /phone/:id/overrides
// An empty field removes the override for that platform; any invalid value
// rejects the whole submission without changing stored state.
func (h *OverrideHandler) Save(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Phone not found"})
	}

	raw := map[domain.Platform]string{}
	for _, p := range domain.Platforms {
		raw[p] = c.FormValue("override_" + string(p))
	}

	errs, err := h.Listings.UpdateOverrides(id, raw)
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Phone not found"})
	}
	if err != nil {
		applog.Error(c, "override.save.fail", err, map[string]any{"phone_id": id})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not save overrides"})
	}
	if len(errs) > 0 {
		phone, gerr := h.Phones.Get(id)
		if gerr != nil {
			return c.Status(404).Render("notfound", fiber.Map{"Message": "Phone not found"})
		}
		return render(c, "overrides", fiber.Map{"Phone": phone, "Platforms": domain.Platforms, "Errors": errs})
	}

	applog.Audit(c, "override.save", map[string]any{"phone_id": id})
	flash(c, "Overrides saved.")
	return c.Redirect("/")
}
