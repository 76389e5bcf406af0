package enums

import "fmt"

// LeaveStatus is the approval state of a leave request (congé).
type LeaveStatus string

const (
	LeaveStatusPending   LeaveStatus = "EN_ATTENTE"
	LeaveStatusApproved  LeaveStatus = "APPROUVE"
	LeaveStatusRejected  LeaveStatus = "REFUSE"
	LeaveStatusCancelled LeaveStatus = "ANNULE"
	LeaveStatusUnknown   LeaveStatus = "UNKNOWN"
)

var validLeaveStatuses = []LeaveStatus{
	LeaveStatusPending,
	LeaveStatusApproved,
	LeaveStatusRejected,
	LeaveStatusCancelled,
}

var leaveStatusAliases = map[string]LeaveStatus{
	"PENDING":   LeaveStatusPending,
	"APPROVED":  LeaveStatusApproved,
	"APPROUVEE": LeaveStatusApproved,
	"ACCEPTE":   LeaveStatusApproved,
	"REJECTED":  LeaveStatusRejected,
	"REFUSEE":   LeaveStatusRejected,
	"CANCELLED": LeaveStatusCancelled,
	"CANCELED":  LeaveStatusCancelled,
	"ANNULEE":   LeaveStatusCancelled,
}

// String implements fmt.Stringer.
func (l LeaveStatus) String() string {
	return string(l)
}

// IsValid reports whether the value is a known LeaveStatus.
func (l LeaveStatus) IsValid() bool {
	return isValid(l, validLeaveStatuses)
}

// ParseLeaveStatus converts raw input into a LeaveStatus.
func ParseLeaveStatus(value string) (LeaveStatus, error) {
	parsed := NormalizeLeaveStatus(value)
	if parsed == LeaveStatusUnknown {
		return "", fmt.Errorf("invalid leave status %q", value)
	}
	return parsed, nil
}

// NormalizeLeaveStatus maps any backend string onto a LeaveStatus, falling back to LeaveStatusUnknown.
func NormalizeLeaveStatus(value string) LeaveStatus {
	return normalize(value, validLeaveStatuses, leaveStatusAliases, LeaveStatusUnknown)
}
