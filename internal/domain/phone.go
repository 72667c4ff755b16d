package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Platform is one of the external marketplaces we list on.
type Platform string

const (
	PlatformX Platform = "X"
	PlatformY Platform = "Y"
	PlatformZ Platform = "Z"
)

// Platforms is the closed set of supported marketplaces, in display order.
var Platforms = []Platform{PlatformX, PlatformY, PlatformZ}

// ParsePlatform normalizes a raw platform string (case-insensitive).
func ParsePlatform(s string) (Platform, bool) {
	p := Platform(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Platforms {
		if p == known {
			return p, true
		}
	}
	return "", false
}

// Condition is the internal grading vocabulary for a phone.
type Condition string

const (
	ConditionNew    Condition = "New"
	ConditionGood   Condition = "Good"
	ConditionUsable Condition = "Usable"
	ConditionScrap  Condition = "Scrap"
)

var Conditions = []Condition{ConditionNew, ConditionGood, ConditionUsable, ConditionScrap}

func ValidCondition(s string) bool {
	for _, c := range Conditions {
		if Condition(s) == c {
			return true
		}
	}
	return false
}

// ListingStatus is the result class of a listing attempt.
type ListingStatus string

const (
	StatusListed ListingStatus = "listed"
	StatusFailed ListingStatus = "failed"
)

// Listing is the recorded outcome of the most recent listing attempt on one
// platform. Exactly one of the listed fields or Reason is meaningful.
type Listing struct {
	Status          ListingStatus `json:"status"`
	Price           float64       `json:"price,omitempty"`
	ConditionMapped string        `json:"condition_mapped,omitempty"`
	Reason          string        `json:"reason,omitempty"`
}

// OverrideMap holds manual listing prices keyed by platform. A missing entry
// means "use the computed price". Stored as a JSON text column.
type OverrideMap map[Platform]float64

// ListingMap holds the latest listing outcome per platform, stored as JSON text.
type ListingMap map[Platform]Listing

func (m OverrideMap) Value() (driver.Value, error) { return jsonValue(m) }
func (m ListingMap) Value() (driver.Value, error)  { return jsonValue(m) }

func (m *OverrideMap) Scan(src any) error { return jsonScan(src, m, "price_overrides") }
func (m *ListingMap) Scan(src any) error  { return jsonScan(src, m, "listings") }

func jsonValue(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// jsonScan strictly decodes a stored JSON column. Corrupt stored state is an
// error, not a silent reset to an empty map.
func jsonScan(src any, dst any, col string) error {
	var raw []byte
	switch s := src.(type) {
	case nil:
		raw = []byte("{}")
	case string:
		raw = []byte(s)
	case []byte:
		raw = s
	default:
		return fmt.Errorf("scan %s: unsupported type %T", col, src)
	}
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("scan %s: corrupt stored JSON: %w", col, err)
	}
	return nil
}

// Phone is an inventory record.
type Phone struct {
	ID             string      `db:"id"`
	Brand          string      `db:"brand"`
	Model          string      `db:"model"`
	Storage        string      `db:"storage"`
	Color          string      `db:"color"`
	Condition      Condition   `db:"condition"`
	BasePrice      float64     `db:"base_price"`
	Stock          int         `db:"stock"`
	Tags           string      `db:"tags"`
	PriceOverrides OverrideMap `db:"price_overrides"`
	Listings       ListingMap  `db:"listings"`
	CreatedAt      string      `db:"created_at"`
	UpdatedAt      string      `db:"updated_at"`
}

// HasTag reports whether the free-text tags contain the keyword, case-insensitively.
func (p Phone) HasTag(keyword string) bool {
	return strings.Contains(strings.ToLower(p.Tags), strings.ToLower(keyword))
}
