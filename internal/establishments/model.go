package establishments

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/angelmondragon/hotelsuite/internal/backend"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
)

// Establishment is a hotel, restaurant or bar managed on the platform.
type Establishment struct {
	ID        string                    `json:"id"`
	Name      string                    `json:"name"`
	Kind      string                    `json:"kind,omitempty"`
	Address   string                    `json:"address,omitempty"`
	City      string                    `json:"city,omitempty"`
	Phone     string                    `json:"phone,omitempty"`
	Email     string                    `json:"email,omitempty"`
	Capacity  int                       `json:"capacity"`
	Status    enums.EstablishmentStatus `json:"status"`
	CreatedAt *time.Time                `json:"createdAt,omitempty"`
}

// Parse decodes a backend establishment record.
//
//	id       required
//	nom      "" when absent
//	type     lower-cased, "" when absent
//	capacite 0 when absent
//	statut   normalised; absent means ACTIF, a boolean "actif" field is honoured
func Parse(raw json.RawMessage) (Establishment, error) {
	rec, err := backend.DecodeRecord(raw)
	if err != nil {
		return Establishment{}, err
	}
	id, err := rec.ID("id", "_id")
	if err != nil {
		return Establishment{}, err
	}

	status := enums.EstablishmentStatusActive
	if s := rec.String("statut", "status"); s != "" {
		status = enums.NormalizeEstablishmentStatus(s)
	} else if _, ok := rec["actif"]; ok && !rec.Bool("actif") {
		status = enums.EstablishmentStatusInactive
	}

	return Establishment{
		ID:        id,
		Name:      rec.String("nom", "name"),
		Kind:      strings.ToLower(rec.String("type", "kind")),
		Address:   rec.String("adresse", "address"),
		City:      rec.String("ville", "city"),
		Phone:     rec.String("telephone", "phone"),
		Email:     rec.String("email"),
		Capacity:  rec.Int("capacite", "capacity"),
		Status:    status,
		CreatedAt: rec.Time("date_creation", "created_at", "createdAt"),
	}, nil
}

// Input is the payload of create and full update.
type Input struct {
	Name     string `json:"nom" validate:"required,max=150"`
	Kind     string `json:"type" validate:"required,oneof=hotel restaurant bar"`
	Address  string `json:"adresse,omitempty" validate:"max=255"`
	City     string `json:"ville,omitempty" validate:"max=100"`
	Phone    string `json:"telephone,omitempty" validate:"max=30"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Capacity int    `json:"capacite" validate:"gte=0"`
}
