package enums

import "fmt"

// ProductStatus is the catalogue availability of a menu or stock product.
type ProductStatus string

const (
	ProductStatusAvailable    ProductStatus = "DISPONIBLE"
	ProductStatusOutOfStock   ProductStatus = "RUPTURE"
	ProductStatusDiscontinued ProductStatus = "INDISPONIBLE"
	ProductStatusUnknown      ProductStatus = "UNKNOWN"
)

var validProductStatuses = []ProductStatus{
	ProductStatusAvailable,
	ProductStatusOutOfStock,
	ProductStatusDiscontinued,
}

var productStatusAliases = map[string]ProductStatus{
	"AVAILABLE":    ProductStatusAvailable,
	"IN_STOCK":     ProductStatusAvailable,
	"OUT_OF_STOCK": ProductStatusOutOfStock,
	"EPUISE":       ProductStatusOutOfStock,
	"UNAVAILABLE":  ProductStatusDiscontinued,
	"DISCONTINUED": ProductStatusDiscontinued,
}

// String implements fmt.Stringer.
func (p ProductStatus) String() string {
	return string(p)
}

// IsValid reports whether the value is a known ProductStatus.
func (p ProductStatus) IsValid() bool {
	return isValid(p, validProductStatuses)
}

// ParseProductStatus converts raw input into a ProductStatus.
func ParseProductStatus(value string) (ProductStatus, error) {
	parsed := NormalizeProductStatus(value)
	if parsed == ProductStatusUnknown {
		return "", fmt.Errorf("invalid product status %q", value)
	}
	return parsed, nil
}

// NormalizeProductStatus maps any backend string onto a ProductStatus, falling back to ProductStatusUnknown.
func NormalizeProductStatus(value string) ProductStatus {
	return normalize(value, validProductStatuses, productStatusAliases, ProductStatusUnknown)
}
