package personnel

import (
	"encoding/json"
	"time"

	"github.com/angelmondragon/hotelsuite/internal/backend"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	"github.com/shopspring/decimal"
)

// Member is one staff record of an establishment.
type Member struct {
	ID              string                `json:"id"`
	EstablishmentID string                `json:"establishmentId"`
	FirstName       string                `json:"firstName"`
	LastName        string                `json:"lastName"`
	Email           string                `json:"email,omitempty"`
	Phone           string                `json:"phone,omitempty"`
	Position        string                `json:"position,omitempty"`
	Salary          decimal.Decimal       `json:"salary"`
	HiredAt         *time.Time            `json:"hiredAt,omitempty"`
	Status          enums.PersonnelStatus `json:"status"`
}

// FullName joins first and last name.
func (m Member) FullName() string {
	switch {
	case m.FirstName == "":
		return m.LastName
	case m.LastName == "":
		return m.FirstName
	}
	return m.FirstName + " " + m.LastName
}

// Parse decodes a backend personnel record.
//
//	id               required, "id" or "_id"
//	etablissement_id "" when absent
//	prenom / nom     "" when absent ("first_name"/"last_name" accepted)
//	salaire          0 when absent or not numeric
//	date_embauche    nil when absent or unparsable
//	statut           normalised; absent means ACTIF, unrecognised means UNKNOWN
func Parse(raw json.RawMessage) (Member, error) {
	rec, err := backend.DecodeRecord(raw)
	if err != nil {
		return Member{}, err
	}
	id, err := rec.ID("id", "_id")
	if err != nil {
		return Member{}, err
	}

	status := enums.PersonnelStatusActive
	if s := rec.String("statut", "status"); s != "" {
		status = enums.NormalizePersonnelStatus(s)
	}

	return Member{
		ID:              id,
		EstablishmentID: rec.OptionalID("etablissement_id", "establishment_id", "etablissementId"),
		FirstName:       rec.String("prenom", "first_name", "firstName"),
		LastName:        rec.String("nom", "last_name", "lastName"),
		Email:           rec.String("email"),
		Phone:           rec.String("telephone", "phone"),
		Position:        rec.String("poste", "position", "role"),
		Salary:          rec.Decimal("salaire", "salary"),
		HiredAt:         rec.Time("date_embauche", "hired_at", "hire_date"),
		Status:          status,
	}, nil
}

// CreateInput is the payload sent to create a member.
type CreateInput struct {
	EstablishmentID string          `json:"etablissement_id" validate:"required"`
	FirstName       string          `json:"prenom" validate:"required,max=100"`
	LastName        string          `json:"nom" validate:"required,max=100"`
	Email           string          `json:"email,omitempty" validate:"omitempty,email"`
	Phone           string          `json:"telephone,omitempty" validate:"max=30"`
	Position        string          `json:"poste,omitempty" validate:"max=100"`
	Salary          decimal.Decimal `json:"salaire" validate:"gte=0"`
	HiredAt         *time.Time      `json:"date_embauche,omitempty"`
}

// UpdateInput carries the fields of a full update.
type UpdateInput struct {
	FirstName string          `json:"prenom" validate:"required,max=100"`
	LastName  string          `json:"nom" validate:"required,max=100"`
	Email     string          `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string          `json:"telephone,omitempty" validate:"max=30"`
	Position  string          `json:"poste,omitempty" validate:"max=100"`
	Salary    decimal.Decimal `json:"salaire" validate:"gte=0"`
}
