// Package pricing holds the per-platform fee math and condition vocabulary
// used when deciding whether a phone can be listed on a marketplace.
package pricing

import (
	"errors"
	"math"

	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/domain"
)

var ErrUnknownPlatform = errors.New("unknown platform")

// MaxMarkup is the ceiling on listing_price / base_price. Fee-inflated prices
// above it are considered uneconomical and the listing is rejected.
const MaxMarkup = 1.25

// conditionMap translates the internal grade into each platform's vocabulary.
// A missing entry means the platform does not accept that grade.
var conditionMap = map[domain.Condition]map[domain.Platform]string{
	domain.ConditionNew:    {domain.PlatformX: "New", domain.PlatformY: "3 stars (Excellent)", domain.PlatformZ: "New"},
	domain.ConditionGood:   {domain.PlatformX: "Good", domain.PlatformY: "2 stars (Good)", domain.PlatformZ: "Good"},
	domain.ConditionUsable: {domain.PlatformX: "Good", domain.PlatformY: "1 star (Usable)", domain.PlatformZ: "As New"},
	domain.ConditionScrap:  {domain.PlatformX: "Scrap", domain.PlatformY: "1 star (Usable)"}, // Z rejects Scrap
}

// MapCondition returns the platform's label for an internal condition, or
// ok=false when the platform does not support that condition.
func MapCondition(cond domain.Condition, platform domain.Platform) (string, bool) {
	label, ok := conditionMap[cond][platform]
	return label, ok
}

// ListingPrice inverts the platform's fee so the seller nets basePrice after
// the fee is deducted from the listing price:
//
//	X: 10% fee            -> base / 0.90
//	Y: 8% fee + $2 flat   -> (base + 2) / 0.92 (flat charge added before inversion)
//	Z: 12% fee            -> base / 0.88
//
// The result is rounded with Round2.
func ListingPrice(basePrice float64, platform domain.Platform) (float64, error) {
	switch platform {
	case domain.PlatformX:
		return Round2(basePrice / 0.90), nil
	case domain.PlatformY:
		return Round2((basePrice + 2.0) / 0.92), nil
	case domain.PlatformZ:
		return Round2(basePrice / 0.88), nil
	}
	return 0, ErrUnknownPlatform
}

// Profitable reports whether listingPrice stays within MaxMarkup of basePrice.
// A non-positive base has no meaningful markup and is never profitable.
func Profitable(basePrice, listingPrice float64) bool {
	if basePrice <= 0 {
		return false
	}
	return listingPrice <= Round2(basePrice*MaxMarkup)
}

// Round2 rounds to cents, half away from zero. Every price in the system goes
// through this so stored and displayed values agree.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
