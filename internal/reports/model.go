package reports

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/angelmondragon/hotelsuite/internal/backend"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
)

// Report is an incident, activity or financial report filed for an establishment.
type Report struct {
	ID              string             `json:"id"`
	EstablishmentID string             `json:"establishmentId"`
	Title           string             `json:"title"`
	Kind            string             `json:"kind,omitempty"`
	Period          string             `json:"period,omitempty"`
	Content         string             `json:"content,omitempty"`
	AuthorID        string             `json:"authorId,omitempty"`
	Status          enums.ReportStatus `json:"status"`
	CreatedAt       *time.Time         `json:"createdAt,omitempty"`
}

// Parse decodes a backend report record.
//
//	id      required
//	titre   "Sans titre" when absent
//	type    lower-cased, "" when absent
//	statut  normalised; absent means BROUILLON
func Parse(raw json.RawMessage) (Report, error) {
	rec, err := backend.DecodeRecord(raw)
	if err != nil {
		return Report{}, err
	}
	id, err := rec.ID("id", "_id")
	if err != nil {
		return Report{}, err
	}

	title := rec.String("titre", "title")
	if title == "" {
		title = untitled
	}
	status := enums.ReportStatusDraft
	if s := rec.String("statut", "status"); s != "" {
		status = enums.NormalizeReportStatus(s)
	}

	return Report{
		ID:              id,
		EstablishmentID: rec.OptionalID("etablissement_id", "establishment_id"),
		Title:           title,
		Kind:            strings.ToLower(rec.String("type", "type_rapport", "kind")),
		Period:          rec.String("periode", "period"),
		Content:         rec.String("contenu", "content", "description"),
		AuthorID:        rec.OptionalID("auteur_id", "author_id", "user_id"),
		Status:          status,
		CreatedAt:       rec.Time("date_creation", "created_at", "createdAt"),
	}, nil
}

const untitled = "Sans titre"

// Input is the payload of create and full update.
type Input struct {
	EstablishmentID string `json:"etablissement_id" validate:"required"`
	Title           string `json:"titre" validate:"required,max=200"`
	Kind            string `json:"type" validate:"required,max=50"`
	Period          string `json:"periode,omitempty" validate:"max=50"`
	Content         string `json:"contenu" validate:"required"`
}
