package enums

import "fmt"

// ReportStatus is the review state of an incident or activity report (rapport).
type ReportStatus string

const (
	ReportStatusDraft     ReportStatus = "BROUILLON"
	ReportStatusSubmitted ReportStatus = "SOUMIS"
	ReportStatusResolved  ReportStatus = "TRAITE"
	ReportStatusArchived  ReportStatus = "ARCHIVE"
	ReportStatusUnknown   ReportStatus = "UNKNOWN"
)

var validReportStatuses = []ReportStatus{
	ReportStatusDraft,
	ReportStatusSubmitted,
	ReportStatusResolved,
	ReportStatusArchived,
}

var reportStatusAliases = map[string]ReportStatus{
	"DRAFT":     ReportStatusDraft,
	"SUBMITTED": ReportStatusSubmitted,
	"OPEN":      ReportStatusSubmitted,
	"EN_COURS":  ReportStatusSubmitted,
	"RESOLVED":  ReportStatusResolved,
	"CLOSED":    ReportStatusResolved,
	"ARCHIVED":  ReportStatusArchived,
}

// String implements fmt.Stringer.
func (r ReportStatus) String() string {
	return string(r)
}

// IsValid reports whether the value is a known ReportStatus.
func (r ReportStatus) IsValid() bool {
	return isValid(r, validReportStatuses)
}

// ParseReportStatus converts raw input into a ReportStatus.
func ParseReportStatus(value string) (ReportStatus, error) {
	parsed := NormalizeReportStatus(value)
	if parsed == ReportStatusUnknown {
		return "", fmt.Errorf("invalid report status %q", value)
	}
	return parsed, nil
}

// NormalizeReportStatus maps any backend string onto a ReportStatus, falling back to ReportStatusUnknown.
func NormalizeReportStatus(value string) ReportStatus {
	return normalize(value, validReportStatuses, reportStatusAliases, ReportStatusUnknown)
}
