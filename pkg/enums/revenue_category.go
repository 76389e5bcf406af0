package enums

import "fmt"

// RevenueCategory classifies a revenue entry by activity.
type RevenueCategory string

const (
	RevenueCategoryLodging    RevenueCategory = "HEBERGEMENT"
	RevenueCategoryRestaurant RevenueCategory = "RESTAURATION"
	RevenueCategoryBar        RevenueCategory = "BAR"
	RevenueCategoryServices   RevenueCategory = "SERVICES"
	RevenueCategoryUnknown    RevenueCategory = "UNKNOWN"
)

var validRevenueCategories = []RevenueCategory{
	RevenueCategoryLodging,
	RevenueCategoryRestaurant,
	RevenueCategoryBar,
	RevenueCategoryServices,
}

var revenueCategoryAliases = map[string]RevenueCategory{
	"LODGING":    RevenueCategoryLodging,
	"ROOMS":      RevenueCategoryLodging,
	"CHAMBRES":   RevenueCategoryLodging,
	"RESTAURANT": RevenueCategoryRestaurant,
	"FOOD":       RevenueCategoryRestaurant,
	"DRINKS":     RevenueCategoryBar,
	"SERVICE":    RevenueCategoryServices,
	"SPA":        RevenueCategoryServices,
}

// String implements fmt.Stringer.
func (r RevenueCategory) String() string {
	return string(r)
}

// IsValid reports whether the value is a known RevenueCategory.
func (r RevenueCategory) IsValid() bool {
	return isValid(r, validRevenueCategories)
}

// ParseRevenueCategory converts raw input into a RevenueCategory.
func ParseRevenueCategory(value string) (RevenueCategory, error) {
	parsed := NormalizeRevenueCategory(value)
	if parsed == RevenueCategoryUnknown {
		return "", fmt.Errorf("invalid revenue category %q", value)
	}
	return parsed, nil
}

// NormalizeRevenueCategory maps any backend string onto a RevenueCategory, falling back to RevenueCategoryUnknown.
func NormalizeRevenueCategory(value string) RevenueCategory {
	return normalize(value, validRevenueCategories, revenueCategoryAliases, RevenueCategoryUnknown)
}
