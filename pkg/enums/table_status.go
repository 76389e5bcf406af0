package enums

import "fmt"

// TableStatus is the occupancy state of a placed table or furniture item.
type TableStatus string

const (
	TableStatusFree         TableStatus = "LIBRE"
	TableStatusOccupied     TableStatus = "OCCUPE"
	TableStatusReserved     TableStatus = "RESERVEE"
	TableStatusCleaning     TableStatus = "NETTOYAGE"
	TableStatusOutOfService TableStatus = "HORS_SERVICE"

	// TableStatusUnknown stands in for any value outside the five known states.
	TableStatusUnknown TableStatus = "UNKNOWN"
)

var validTableStatuses = []TableStatus{
	TableStatusFree,
	TableStatusOccupied,
	TableStatusReserved,
	TableStatusCleaning,
	TableStatusOutOfService,
}

var tableStatusAliases = map[string]TableStatus{
	"FREE":           TableStatusFree,
	"AVAILABLE":      TableStatusFree,
	"DISPONIBLE":     TableStatusFree,
	"OCCUPIED":       TableStatusOccupied,
	"OCCUPEE":        TableStatusOccupied,
	"RESERVED":       TableStatusReserved,
	"RESERVE":        TableStatusReserved,
	"CLEANING":       TableStatusCleaning,
	"OUT_OF_SERVICE": TableStatusOutOfService,
}

// TableStatuses returns the known states in display order.
func TableStatuses() []TableStatus {
	out := make([]TableStatus, len(validTableStatuses))
	copy(out, validTableStatuses)
	return out
}

// String implements fmt.Stringer.
func (t TableStatus) String() string {
	return string(t)
}

// IsValid reports whether the value is one of the five known states.
func (t TableStatus) IsValid() bool {
	return isValid(t, validTableStatuses)
}

// ParseTableStatus converts raw input into a TableStatus, rejecting unknown values.
func ParseTableStatus(value string) (TableStatus, error) {
	status := NormalizeTableStatus(value)
	if status == TableStatusUnknown {
		return "", fmt.Errorf("invalid table status %q", value)
	}
	return status, nil
}

// NormalizeTableStatus maps any backend string to a TableStatus. It never fails:
// unrecognised input yields TableStatusUnknown.
func NormalizeTableStatus(value string) TableStatus {
	return normalize(value, validTableStatuses, tableStatusAliases, TableStatusUnknown)
}
