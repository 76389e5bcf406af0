package enums

import "fmt"

// EstablishmentStatus tracks whether an establishment is open for business.
type EstablishmentStatus string

const (
	EstablishmentStatusActive    EstablishmentStatus = "ACTIF"
	EstablishmentStatusInactive  EstablishmentStatus = "INACTIF"
	EstablishmentStatusSuspended EstablishmentStatus = "SUSPENDU"
	EstablishmentStatusUnknown   EstablishmentStatus = "UNKNOWN"
)

var validEstablishmentStatuses = []EstablishmentStatus{
	EstablishmentStatusActive,
	EstablishmentStatusInactive,
	EstablishmentStatusSuspended,
}

var establishmentStatusAliases = map[string]EstablishmentStatus{
	"ACTIVE":    EstablishmentStatusActive,
	"OPEN":      EstablishmentStatusActive,
	"OUVERT":    EstablishmentStatusActive,
	"INACTIVE":  EstablishmentStatusInactive,
	"CLOSED":    EstablishmentStatusInactive,
	"FERME":     EstablishmentStatusInactive,
	"SUSPENDED": EstablishmentStatusSuspended,
}

// String implements fmt.Stringer.
func (e EstablishmentStatus) String() string {
	return string(e)
}

// IsValid reports whether the value is a known EstablishmentStatus.
func (e EstablishmentStatus) IsValid() bool {
	return isValid(e, validEstablishmentStatuses)
}

// ParseEstablishmentStatus converts raw input into a EstablishmentStatus.
func ParseEstablishmentStatus(value string) (EstablishmentStatus, error) {
	parsed := NormalizeEstablishmentStatus(value)
	if parsed == EstablishmentStatusUnknown {
		return "", fmt.Errorf("invalid establishment status %q", value)
	}
	return parsed, nil
}

// NormalizeEstablishmentStatus maps any backend string onto a EstablishmentStatus, falling back to EstablishmentStatusUnknown.
func NormalizeEstablishmentStatus(value string) EstablishmentStatus {
	return normalize(value, validEstablishmentStatuses, establishmentStatusAliases, EstablishmentStatusUnknown)
}
