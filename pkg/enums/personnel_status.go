package enums

import "fmt"

// PersonnelStatus is the employment state of a staff member.
type PersonnelStatus string

const (
	PersonnelStatusActive   PersonnelStatus = "ACTIF"
	PersonnelStatusOnLeave  PersonnelStatus = "EN_CONGE"
	PersonnelStatusInactive PersonnelStatus = "INACTIF"
	PersonnelStatusUnknown  PersonnelStatus = "UNKNOWN"
)

var validPersonnelStatuses = []PersonnelStatus{
	PersonnelStatusActive,
	PersonnelStatusOnLeave,
	PersonnelStatusInactive,
}

var personnelStatusAliases = map[string]PersonnelStatus{
	"ACTIVE":         PersonnelStatusActive,
	"ON_LEAVE":       PersonnelStatusOnLeave,
	"CONGE":          PersonnelStatusOnLeave,
	"INACTIVE":       PersonnelStatusInactive,
	"DEMISSIONNAIRE": PersonnelStatusInactive,
}

// String implements fmt.Stringer.
func (p PersonnelStatus) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PersonnelStatus.
func (p PersonnelStatus) IsValid() bool {
	return isValid(p, validPersonnelStatuses)
}

// ParsePersonnelStatus converts raw input into a PersonnelStatus.
func ParsePersonnelStatus(value string) (PersonnelStatus, error) {
	parsed := NormalizePersonnelStatus(value)
	if parsed == PersonnelStatusUnknown {
		return "", fmt.Errorf("invalid personnel status %q", value)
	}
	return parsed, nil
}

// NormalizePersonnelStatus maps any backend string onto a PersonnelStatus, falling back to PersonnelStatusUnknown.
func NormalizePersonnelStatus(value string) PersonnelStatus {
	return normalize(value, validPersonnelStatuses, personnelStatusAliases, PersonnelStatusUnknown)
}
