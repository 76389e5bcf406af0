package equipment

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/hotelsuite/internal/backend"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
)

// Item is a piece of kitchen, room or technical equipment.
type Item struct {
	ID              string                `json:"id"`
	EstablishmentID string                `json:"establishmentId"`
	Name            string                `json:"name"`
	Category        string                `json:"category,omitempty"`
	Location        string                `json:"location,omitempty"`
	SerialNumber    string                `json:"serialNumber,omitempty"`
	PurchaseDate    *time.Time            `json:"purchaseDate,omitempty"`
	PurchasePrice   decimal.Decimal       `json:"purchasePrice"`
	LastMaintenance *time.Time            `json:"lastMaintenance,omitempty"`
	NextMaintenance *time.Time            `json:"nextMaintenance,omitempty"`
	Status          enums.EquipmentStatus `json:"status"`
}

// MaintenanceDue reports whether the next maintenance date is at or before now.
// Items without a scheduled date are never due.
func (i Item) MaintenanceDue(now time.Time) bool {
	return i.NextMaintenance != nil && !i.NextMaintenance.After(now)
}

// Parse decodes a backend equipment record.
//
//	id      required
//	nom     "" when absent
//	dates   nil when absent or unparsable
//	statut  normalised; absent means FONCTIONNEL
func Parse(raw json.RawMessage) (Item, error) {
	rec, err := backend.DecodeRecord(raw)
	if err != nil {
		return Item{}, err
	}
	id, err := rec.ID("id", "_id")
	if err != nil {
		return Item{}, err
	}

	status := enums.EquipmentStatusOperational
	if s := rec.String("statut", "etat", "status"); s != "" {
		status = enums.NormalizeEquipmentStatus(s)
	}

	return Item{
		ID:              id,
		EstablishmentID: rec.OptionalID("etablissement_id", "establishment_id"),
		Name:            rec.String("nom", "name"),
		Category:        rec.String("categorie", "category", "type"),
		Location:        rec.String("emplacement", "location"),
		SerialNumber:    rec.String("numero_serie", "serial_number"),
		PurchaseDate:    rec.Time("date_achat", "purchase_date"),
		PurchasePrice:   rec.Decimal("prix_achat", "purchase_price"),
		LastMaintenance: rec.Time("derniere_maintenance", "last_maintenance"),
		NextMaintenance: rec.Time("prochaine_maintenance", "next_maintenance"),
		Status:          status,
	}, nil
}

// Input is the payload of create and full update.
type Input struct {
	EstablishmentID string          `json:"etablissement_id" validate:"required"`
	Name            string          `json:"nom" validate:"required,max=150"`
	Category        string          `json:"categorie,omitempty" validate:"max=100"`
	Location        string          `json:"emplacement,omitempty" validate:"max=100"`
	SerialNumber    string          `json:"numero_serie,omitempty" validate:"max=100"`
	PurchaseDate    *time.Time      `json:"date_achat,omitempty"`
	PurchasePrice   decimal.Decimal `json:"prix_achat" validate:"gte=0"`
	NextMaintenance *time.Time      `json:"prochaine_maintenance,omitempty"`
}
