package revenue

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/hotelsuite/internal/backend"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
)

// Entry is a single revenue line booked for an establishment.
type Entry struct {
	ID              string                `json:"id"`
	EstablishmentID string                `json:"establishmentId"`
	Category        enums.RevenueCategory `json:"category"`
	Amount          decimal.Decimal       `json:"amount"`
	Date            *time.Time            `json:"date,omitempty"`
	Description     string                `json:"description,omitempty"`
	PaymentMethod   string                `json:"paymentMethod,omitempty"`
}

// Parse decodes a backend revenue record.
//
//	id         required
//	categorie  normalised; absent or unrecognised means UNKNOWN
//	montant    0 when absent or unparsable
//	date       nil when absent or unparsable
func Parse(raw json.RawMessage) (Entry, error) {
	rec, err := backend.DecodeRecord(raw)
	if err != nil {
		return Entry{}, err
	}
	id, err := rec.ID("id", "_id")
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		ID:              id,
		EstablishmentID: rec.OptionalID("etablissement_id", "establishment_id"),
		Category:        enums.NormalizeRevenueCategory(rec.String("categorie", "category", "source")),
		Amount:          rec.Decimal("montant", "amount"),
		Date:            rec.Time("date", "date_revenu", "created_at"),
		Description:     rec.String("description", "libelle"),
		PaymentMethod:   rec.String("mode_paiement", "payment_method"),
	}, nil
}

// Input is the payload of create and full update.
type Input struct {
	EstablishmentID string                `json:"etablissement_id" validate:"required"`
	Category        enums.RevenueCategory `json:"categorie" validate:"required"`
	Amount          decimal.Decimal       `json:"montant" validate:"gte=0"`
	Date            time.Time             `json:"date" validate:"required"`
	Description     string                `json:"description,omitempty" validate:"max=255"`
	PaymentMethod   string                `json:"mode_paiement,omitempty" validate:"max=50"`
}
