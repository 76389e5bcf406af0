package leaves

import (
	"encoding/json"
	"math"
	"time"

	"github.com/angelmondragon/hotelsuite/internal/backend"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
)

// Request is a leave (congé) request filed by a staff member.
type Request struct {
	ID              string            `json:"id"`
	EstablishmentID string            `json:"establishmentId"`
	PersonnelID     string            `json:"personnelId"`
	PersonnelName   string            `json:"personnelName,omitempty"`
	Kind            string            `json:"kind,omitempty"`
	StartDate       *time.Time        `json:"startDate,omitempty"`
	EndDate         *time.Time        `json:"endDate,omitempty"`
	Days            int               `json:"days"`
	Reason          string            `json:"reason,omitempty"`
	Status          enums.LeaveStatus `json:"status"`
}

// Parse decodes a backend leave record.
//
//	id                  required
//	personnel_id        "" when absent
//	date_debut/date_fin nil when absent or unparsable
//	nombre_jours        taken from the payload, else computed inclusively from the dates, else 0
//	statut              normalised; absent means EN_ATTENTE
func Parse(raw json.RawMessage) (Request, error) {
	rec, err := backend.DecodeRecord(raw)
	if err != nil {
		return Request{}, err
	}
	id, err := rec.ID("id", "_id")
	if err != nil {
		return Request{}, err
	}

	status := enums.LeaveStatusPending
	if s := rec.String("statut", "status"); s != "" {
		status = enums.NormalizeLeaveStatus(s)
	}

	start := rec.Time("date_debut", "start_date", "dateDebut")
	end := rec.Time("date_fin", "end_date", "dateFin")
	days := rec.Int("nombre_jours", "days", "nombreJours")
	if days == 0 {
		days = InclusiveDays(start, end)
	}

	return Request{
		ID:              id,
		EstablishmentID: rec.OptionalID("etablissement_id", "establishment_id"),
		PersonnelID:     rec.OptionalID("personnel_id", "employe_id", "personnelId"),
		PersonnelName:   rec.String("personnel_nom", "nom_employe", "personnel_name"),
		Kind:            rec.String("type_conge", "type", "kind"),
		StartDate:       start,
		EndDate:         end,
		Days:            days,
		Reason:          rec.String("motif", "reason"),
		Status:          status,
	}, nil
}

// InclusiveDays counts calendar days from start to end, both included. Missing
// or inverted ranges count as 0.
func InclusiveDays(start, end *time.Time) int {
	if start == nil || end == nil || end.Before(*start) {
		return 0
	}
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Round(e.Sub(s).Hours()/24)) + 1
}

// Input is the payload of create and full update.
type Input struct {
	EstablishmentID string    `json:"etablissement_id" validate:"required"`
	PersonnelID     string    `json:"personnel_id" validate:"required"`
	Kind            string    `json:"type_conge" validate:"required,max=50"`
	StartDate       time.Time `json:"date_debut" validate:"required"`
	EndDate         time.Time `json:"date_fin" validate:"required,gtefield=StartDate"`
	Reason          string    `json:"motif,omitempty" validate:"max=500"`
}
