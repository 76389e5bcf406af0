package enums

import "fmt"

// EquipmentStatus is the operating condition of a piece of equipment.
type EquipmentStatus string

const (
	EquipmentStatusOperational EquipmentStatus = "FONCTIONNEL"
	EquipmentStatusMaintenance EquipmentStatus = "EN_MAINTENANCE"
	EquipmentStatusBroken      EquipmentStatus = "EN_PANNE"
	EquipmentStatusRetired     EquipmentStatus = "HORS_SERVICE"
	EquipmentStatusUnknown     EquipmentStatus = "UNKNOWN"
)

var validEquipmentStatuses = []EquipmentStatus{
	EquipmentStatusOperational,
	EquipmentStatusMaintenance,
	EquipmentStatusBroken,
	EquipmentStatusRetired,
}

var equipmentStatusAliases = map[string]EquipmentStatus{
	"OPERATIONAL":    EquipmentStatusOperational,
	"OK":             EquipmentStatusOperational,
	"WORKING":        EquipmentStatusOperational,
	"MAINTENANCE":    EquipmentStatusMaintenance,
	"BROKEN":         EquipmentStatusBroken,
	"PANNE":          EquipmentStatusBroken,
	"OUT_OF_SERVICE": EquipmentStatusRetired,
	"RETIRED":        EquipmentStatusRetired,
}

// String implements fmt.Stringer.
func (e EquipmentStatus) String() string {
	return string(e)
}

// IsValid reports whether the value is a known EquipmentStatus.
func (e EquipmentStatus) IsValid() bool {
	return isValid(e, validEquipmentStatuses)
}

// ParseEquipmentStatus converts raw input into a EquipmentStatus.
func ParseEquipmentStatus(value string) (EquipmentStatus, error) {
	parsed := NormalizeEquipmentStatus(value)
	if parsed == EquipmentStatusUnknown {
		return "", fmt.Errorf("invalid equipment status %q", value)
	}
	return parsed, nil
}

// NormalizeEquipmentStatus maps any backend string onto a EquipmentStatus, falling back to EquipmentStatusUnknown.
func NormalizeEquipmentStatus(value string) EquipmentStatus {
	return normalize(value, validEquipmentStatuses, equipmentStatusAliases, EquipmentStatusUnknown)
}
