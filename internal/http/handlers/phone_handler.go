package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/domain"
	applog "github.com/HARIGUTTI2002/refurbished-phone-app/internal/log"
	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/repos"
	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/services"
	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/validate"
)

type PhoneHandler struct {
	Inv    *services.InventoryService
	Phones *repos.PhoneRepo
}

// phoneRow pairs a phone with its per-platform pricing for the dashboard.
type phoneRow struct {
	Phone  domain.Phone
	Quotes []services.PlatformQuote
}

// GET /
func (h *PhoneHandler) Index(c *fiber.Ctx) error {
	q := c.Query("q")
	cond := c.Query("condition")
	platform := c.Query("platform")

	phones, err := h.Inv.Browse(q, cond, platform)
	if err != nil {
		applog.Error(c, "phones.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load inventory"})
	}

	rows := make([]phoneRow, 0, len(phones))
	for _, p := range phones {
		rows = append(rows, phoneRow{Phone: p, Quotes: services.Quotes(p)})
	}
	return render(c, "index", fiber.Map{
		"Rows": rows, "Q": q, "Cond": cond, "Platform": platform,
		"Platforms": domain.Platforms, "Conditions": domain.Conditions,
	})
}

// GET /phone/new
func (h *PhoneHandler) NewForm(c *fiber.Ctx) error {
	return render(c, "phone_form", fiber.Map{"Phone": nil, "Conditions": domain.Conditions})
}

// POST /phone/new
func (h *PhoneHandler) Create(c *fiber.Ctx) error {
	errs, fields := validate.PhoneInput(formFields(c))
	if len(errs) > 0 {
		return render(c, "phone_form", fiber.Map{"Phone": nil, "Conditions": domain.Conditions, "Errors": errs})
	}

	phone := domain.Phone{
		ID:        uuid.NewString(),
		Brand:     fields.Brand,
		Model:     fields.Model,
		Storage:   fields.Storage,
		Color:     fields.Color,
		Condition: domain.Condition(fields.Condition),
		BasePrice: fields.BasePrice,
		Stock:     fields.Stock,
		Tags:      fields.Tags,
	}
	if err := h.Phones.Create(phone); err != nil {
		applog.Error(c, "phone.create.fail", err, map[string]any{"phone_id": phone.ID})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not save phone"})
	}
	applog.Audit(c, "phone.create", map[string]any{"phone_id": phone.ID})
	flash(c, "Phone added.")
	return c.Redirect("/")
}

// GET /phone/:id/edit
func (h *PhoneHandler) EditForm(c *fiber.Ctx) error {
	phone, ok := h.load(c)
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Phone not found"})
	}
	return render(c, "phone_form", fiber.Map{"Phone": phone, "Conditions": domain.Conditions})
}

// POST /phone/:id/edit
func (h *PhoneHandler) Update(c *fiber.Ctx) error {
	phone, ok := h.load(c)
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Phone not found"})
	}
	errs, fields := validate.PhoneInput(formFields(c))
	if len(errs) > 0 {
		return render(c, "phone_form", fiber.Map{"Phone": phone, "Conditions": domain.Conditions, "Errors": errs})
	}

	phone.Brand = fields.Brand
	phone.Model = fields.Model
	phone.Storage = fields.Storage
	phone.Color = fields.Color
	phone.Condition = domain.Condition(fields.Condition)
	phone.BasePrice = fields.BasePrice
	phone.Stock = fields.Stock
	phone.Tags = fields.Tags

	if err := h.Phones.UpdateFields(phone); err != nil {
		applog.Error(c, "phone.update.fail", err, map[string]any{"phone_id": phone.ID})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not save phone"})
	}
	applog.Audit(c, "phone.update", map[string]any{"phone_id": phone.ID})
	flash(c, "Phone updated.")
	return c.Redirect("/")
}

// POST /phone/:id/delete
func (h *PhoneHandler) Delete(c *fiber.Ctx) error {
	phone, ok := h.load(c)
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Phone not found"})
	}
	if err := h.Phones.Delete(phone.ID); err != nil {
		applog.Error(c, "phone.delete.fail", err, map[string]any{"phone_id": phone.ID})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not delete phone"})
	}
	applog.Audit(c, "phone.delete", map[string]any{"phone_id": phone.ID})
	flash(c, "Phone deleted.")
	return c.Redirect("/")
}

func (h *PhoneHandler) load(c *fiber.Ctx) (domain.Phone, bool) {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "phone_id"})
		return domain.Phone{}, false
	}
	phone, err := h.Phones.Get(id)
	if err != nil {
		return domain.Phone{}, false
	}
	return phone, true
}

func formFields(c *fiber.Ctx) map[string]string {
	return map[string]string{
		"brand":      c.FormValue("brand"),
		"model":      c.FormValue("model"),
		"storage":    c.FormValue("storage"),
		"color":      c.FormValue("color"),
		"condition":  c.FormValue("condition"),
		"base_price": c.FormValue("base_price"),
		"stock":      c.FormValue("stock"),
		"tags":       c.FormValue("tags"),
	}
}
