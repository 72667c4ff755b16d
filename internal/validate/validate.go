package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/domain"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// ID validates a simple resource identifier (phone ids in routes).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Password enforces a simple length window for login checks.
func Password(s string) bool {
	l := len(s)
	return l >= 8 && l <= 64
}

// PhoneFields is the normalized result of validating raw phone attribute input.
type PhoneFields struct {
	Brand     string
	Model     string
	Storage   string
	Color     string
	Condition string
	BasePrice float64
	Stock     int
	Tags      string
}

// PhoneInput collects every problem in the raw fields and returns them together
// with the best-effort normalized values. Callers must not persist when the
// error list is non-empty. Unparseable numbers coerce to 0 so later checks can
// still run.
func PhoneInput(raw map[string]string) ([]string, PhoneFields) {
	var errs []string

	f := PhoneFields{
		Brand:     strings.TrimSpace(raw["brand"]),
		Model:     strings.TrimSpace(raw["model"]),
		Storage:   strings.TrimSpace(raw["storage"]),
		Color:     strings.TrimSpace(raw["color"]),
		Condition: strings.TrimSpace(raw["condition"]),
		Tags:      strings.TrimSpace(raw["tags"]),
	}

	// An absent field defaults to 0, but a present-and-blank value is a parse
	// error, same as any other non-numeric input.
	if priceStr, ok := raw["base_price"]; ok {
		price, err := strconv.ParseFloat(strings.TrimSpace(priceStr), 64)
		if err != nil {
			errs = append(errs, "Base price must be a number.")
			price = 0
		} else if price < 0 {
			errs = append(errs, "Base price cannot be negative.")
		}
		f.BasePrice = price
	}

	if stockStr, ok := raw["stock"]; ok {
		// Accept decimal-looking stock like "3.0"; truncate toward zero.
		stockF, err := strconv.ParseFloat(strings.TrimSpace(stockStr), 64)
		if err != nil {
			errs = append(errs, "Stock must be an integer.")
			stockF = 0
		} else if stockF < 0 {
			errs = append(errs, "Stock cannot be negative.")
		}
		f.Stock = int(stockF)
	}

	if f.Brand == "" {
		errs = append(errs, "Brand is required.")
	}
	if f.Model == "" {
		errs = append(errs, "Model is required.")
	}
	if !domain.ValidCondition(f.Condition) {
		names := make([]string, len(domain.Conditions))
		for i, c := range domain.Conditions {
			names[i] = string(c)
		}
		errs = append(errs, "Condition must be one of: "+strings.Join(names, ", "))
	}

	return errs, f
}
