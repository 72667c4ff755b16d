package services

import (
	"fmt"

	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/domain"
	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/pricing"
	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/repos"
)

// ListingService runs the listing decision pass for one phone on one platform
// and records the outcome. Rejections are outcomes, not errors; the only
// errors it returns are unknown platform, missing phone, and storage failures.
type ListingService struct {
	Phones *repos.PhoneRepo
}

func NewListingService(phones *repos.PhoneRepo) *ListingService {
	return &ListingService{Phones: phones}
}

// Attempt loads the phone, decides, and replaces any previous outcome for the
// platform. The platform string is matched case-insensitively; an unknown
// platform aborts before anything is recorded.
func (s *ListingService) Attempt(phoneID, rawPlatform string) (domain.Listing, domain.Platform, error) {
	platform, ok := domain.ParsePlatform(rawPlatform)
	if !ok {
		return domain.Listing{}, "", pricing.ErrUnknownPlatform
	}

	phone, err := s.Phones.Get(phoneID)
	if err != nil {
		return domain.Listing{}, platform, err
	}

	outcome := Decide(phone, platform)

	if phone.Listings == nil {
		phone.Listings = domain.ListingMap{}
	}
	phone.Listings[platform] = outcome
	if err := s.Phones.SaveListings(phone.ID, phone.Listings); err != nil {
		return domain.Listing{}, platform, err
	}
	return outcome, platform, nil
}

// Decide runs the eligibility checks in a fixed order, stopping at the first
// failure so the reported reason is reproducible:
// stock, discontinuation, condition support, price resolution, profitability.
func Decide(phone domain.Phone, platform domain.Platform) domain.Listing {
	if phone.Stock <= 0 || phone.HasTag("out of stock") {
		return domain.Listing{Status: domain.StatusFailed, Reason: "Out of stock."}
	}
	if phone.HasTag("discontinued") {
		return domain.Listing{Status: domain.StatusFailed, Reason: "Product discontinued."}
	}

	label, supported := pricing.MapCondition(phone.Condition, platform)
	if !supported {
		return domain.Listing{
			Status: domain.StatusFailed,
			Reason: fmt.Sprintf("Condition '%s' unsupported on %s.", phone.Condition, platform),
		}
	}

	price, overridden := phone.PriceOverrides[platform]
	if !overridden {
		// Platform is already validated, so this cannot fail.
		price, _ = pricing.ListingPrice(phone.BasePrice, platform)
	}

	if !pricing.Profitable(phone.BasePrice, price) {
		return domain.Listing{Status: domain.StatusFailed, Reason: "Unprofitable due to high fees/markup."}
	}

	return domain.Listing{Status: domain.StatusListed, Price: price, ConditionMapped: label}
}

// PlatformQuote is the per-platform pricing view shown on the dashboard and
// returned by the quote API.
type PlatformQuote struct {
	Platform  domain.Platform `json:"platform"`
	Computed  float64         `json:"computed"`
	Override  float64         `json:"override,omitempty"`
	Effective float64         `json:"effective"`
}

// Quotes returns the computed and effective price for every platform.
func Quotes(phone domain.Phone) []PlatformQuote {
	out := make([]PlatformQuote, 0, len(domain.Platforms))
	for _, p := range domain.Platforms {
		computed, _ := pricing.ListingPrice(phone.BasePrice, p)
		q := PlatformQuote{Platform: p, Computed: computed, Effective: computed}
		if ov, ok := phone.PriceOverrides[p]; ok {
			q.Override = ov
			q.Effective = ov
		}
		out = append(out, q)
	}
	return out
}

// UpdateOverrides applies a raw per-platform override form. Empty values
// remove the override; positive decimals are rounded to cents. Any invalid
// value rejects the whole submission and nothing is persisted.
func (s *ListingService) UpdateOverrides(phoneID string, raw map[domain.Platform]string) ([]string, error) {
	phone, err := s.Phones.Get(phoneID)
	if err != nil {
		return nil, err
	}

	overrides := phone.PriceOverrides
	if overrides == nil {
		overrides = domain.OverrideMap{}
	}

	var errs []string
	for _, p := range domain.Platforms {
		val, present := raw[p]
		if !present || trimmed(val) == "" {
			delete(overrides, p)
			continue
		}
		price, perr := parsePrice(val)
		if perr != nil {
			errs = append(errs, fmt.Sprintf("Invalid price for %s.", p))
			continue
		}
		if price <= 0 {
			errs = append(errs, fmt.Sprintf("Override for %s must be positive.", p))
			continue
		}
		overrides[p] = pricing.Round2(price)
	}
	if len(errs) > 0 {
		return errs, nil
	}
	return nil, s.Phones.SaveOverrides(phone.ID, overrides)
}
