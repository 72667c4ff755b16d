package handlers

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	applog "github.com/HARIGUTTI2002/refurbished-phone-app/internal/log"
	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/services"
)

type ImportHandler struct {
	Importer  *services.ImportService
	UploadDir string
}

// GET /bulk-upload
func (h *ImportHandler) Form(c *fiber.Ctx) error {
	return render(c, "bulk_upload", fiber.Map{})
}

// POST /bulk-upload
func (h *ImportHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return render(c, "bulk_upload", fiber.Map{"Err": "Please choose a CSV file."})
	}

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		applog.Error(c, "import.upload.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not store upload"})
	}
	// Keep only the base name; uploads keep a copy on disk for auditing.
	name := filepath.Base(strings.TrimSpace(file.Filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "upload.csv"
	}
	path := filepath.Join(h.UploadDir, name)
	if err := c.SaveFile(file, path); err != nil {
		applog.Error(c, "import.upload.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not store upload"})
	}

	f, err := os.Open(path)
	if err != nil {
		applog.Error(c, "import.open.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not read upload"})
	}
	defer f.Close()

	res, err := h.Importer.ImportCSV(f)
	if err != nil {
		applog.Info(c, "import.rejected", map[string]any{"reason": err.Error()})
		return render(c, "bulk_upload", fiber.Map{"Err": err.Error()})
	}

	applog.Audit(c, "import.run", map[string]any{"added": res.Added, "skipped": res.Skipped, "file": name})
	flash(c, fmt.Sprintf("Bulk upload complete. Added %d phone(s). Skipped %d invalid row(s).", res.Added, res.Skipped))
	return c.Redirect("/")
}

// GET /export/csv
func (h *ImportHandler) Export(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.Importer.ExportCSV(&buf); err != nil {
		applog.Error(c, "export.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not export inventory"})
	}
	filename := fmt.Sprintf("inventory_export_%d.csv", time.Now().UTC().Unix())
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
