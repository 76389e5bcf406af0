package reservations

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/hotelsuite/internal/backend"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
)

// Reservation is a table or room booking.
type Reservation struct {
	ID              string                  `json:"id"`
	EstablishmentID string                  `json:"establishmentId"`
	CustomerName    string                  `json:"customerName"`
	Phone           string                  `json:"phone,omitempty"`
	Email           string                  `json:"email,omitempty"`
	PartySize       int                     `json:"partySize"`
	Date            *time.Time              `json:"date,omitempty"`
	TableID         string                  `json:"tableId,omitempty"`
	Notes           string                  `json:"notes,omitempty"`
	Amount          decimal.Decimal         `json:"amount"`
	Status          enums.ReservationStatus `json:"status"`
}

// Parse decodes a backend reservation record.
//
//	id               required
//	nom_client       "" when absent
//	nombre_personnes at least 1
//	montant          0 when absent or unparsable
//	statut           normalised; absent means EN_ATTENTE
func Parse(raw json.RawMessage) (Reservation, error) {
	rec, err := backend.DecodeRecord(raw)
	if err != nil {
		return Reservation{}, err
	}
	id, err := rec.ID("id", "_id")
	if err != nil {
		return Reservation{}, err
	}

	party := rec.Int("nombre_personnes", "nb_personnes", "party_size", "couverts")
	if party < 1 {
		party = 1
	}
	status := enums.ReservationStatusPending
	if s := rec.String("statut", "status"); s != "" {
		status = enums.NormalizeReservationStatus(s)
	}

	return Reservation{
		ID:              id,
		EstablishmentID: rec.OptionalID("etablissement_id", "establishment_id"),
		CustomerName:    rec.String("nom_client", "client", "customer_name"),
		Phone:           rec.String("telephone", "phone"),
		Email:           rec.String("email"),
		PartySize:       party,
		Date:            rec.Time("date_reservation", "date", "reserved_at"),
		TableID:         rec.OptionalID("table_id", "tableId"),
		Notes:           rec.String("notes", "commentaire"),
		Amount:          rec.Decimal("montant", "amount"),
		Status:          status,
	}, nil
}

// CreateInput is the payload of a new booking. TableID links the booking to a
// placed table in the room builder.
type CreateInput struct {
	EstablishmentID string    `json:"etablissement_id" validate:"required"`
	CustomerName    string    `json:"nom_client" validate:"required,max=150"`
	Phone           string    `json:"telephone,omitempty" validate:"max=30"`
	Email           string    `json:"email,omitempty" validate:"omitempty,email"`
	PartySize       int       `json:"nombre_personnes" validate:"required,min=1,max=100"`
	Date            time.Time `json:"date_reservation" validate:"required"`
	TableID         string    `json:"table_id,omitempty" validate:"max=64"`
	Notes           string    `json:"notes,omitempty" validate:"max=500"`
}

// UpdateInput is the payload of a full update.
type UpdateInput struct {
	CustomerName string          `json:"nom_client" validate:"required,max=150"`
	Phone        string          `json:"telephone,omitempty" validate:"max=30"`
	Email        string          `json:"email,omitempty" validate:"omitempty,email"`
	PartySize    int             `json:"nombre_personnes" validate:"required,min=1,max=100"`
	Date         time.Time       `json:"date_reservation" validate:"required"`
	TableID      string          `json:"table_id,omitempty" validate:"max=64"`
	Notes        string          `json:"notes,omitempty" validate:"max=500"`
	Amount       decimal.Decimal `json:"montant" validate:"gte=0"`
}
