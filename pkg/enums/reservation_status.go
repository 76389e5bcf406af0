package enums

import "fmt"

// ReservationStatus tracks a table or room booking.
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "EN_ATTENTE"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMEE"
	ReservationStatusCancelled ReservationStatus = "ANNULEE"
	ReservationStatusCompleted ReservationStatus = "TERMINEE"
	ReservationStatusUnknown   ReservationStatus = "UNKNOWN"
)

var validReservationStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusConfirmed,
	ReservationStatusCancelled,
	ReservationStatusCompleted,
}

var reservationStatusAliases = map[string]ReservationStatus{
	"PENDING":   ReservationStatusPending,
	"CONFIRMED": ReservationStatusConfirmed,
	"CONFIRME":  ReservationStatusConfirmed,
	"CANCELLED": ReservationStatusCancelled,
	"CANCELED":  ReservationStatusCancelled,
	"ANNULE":    ReservationStatusCancelled,
	"COMPLETED": ReservationStatusCompleted,
	"DONE":      ReservationStatusCompleted,
	"TERMINE":   ReservationStatusCompleted,
}

// String implements fmt.Stringer.
func (r ReservationStatus) String() string {
	return string(r)
}

// IsValid reports whether the value is a known ReservationStatus.
func (r ReservationStatus) IsValid() bool {
	return isValid(r, validReservationStatuses)
}

// ParseReservationStatus converts raw input into a ReservationStatus.
func ParseReservationStatus(value string) (ReservationStatus, error) {
	parsed := NormalizeReservationStatus(value)
	if parsed == ReservationStatusUnknown {
		return "", fmt.Errorf("invalid reservation status %q", value)
	}
	return parsed, nil
}

// NormalizeReservationStatus maps any backend string onto a ReservationStatus, falling back to ReservationStatusUnknown.
func NormalizeReservationStatus(value string) ReservationStatus {
	return normalize(value, validReservationStatuses, reservationStatusAliases, ReservationStatusUnknown)
}
