package products

import (
	"encoding/json"

	"github.com/angelmondragon/hotelsuite/internal/backend"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	"github.com/shopspring/decimal"
)

// Product is a menu or stock item sold by an establishment.
type Product struct {
	ID              string              `json:"id"`
	EstablishmentID string              `json:"establishmentId"`
	Name            string              `json:"name"`
	Category        string              `json:"category,omitempty"`
	Description     string              `json:"description,omitempty"`
	Price           decimal.Decimal     `json:"price"`
	Stock           int                 `json:"stock"`
	AlertThreshold  int                 `json:"alertThreshold"`
	Unit            string              `json:"unit,omitempty"`
	Status          enums.ProductStatus `json:"status"`
}

// LowStock reports whether the stock is at or under the alert threshold.
func (p Product) LowStock() bool {
	return p.Stock <= p.AlertThreshold
}

// Parse decodes a backend product record.
//
//	id            required
//	nom           "" when absent ("name" accepted)
//	prix          0 when absent or not numeric
//	stock         0 when absent ("quantite" accepted)
//	seuil_alerte  0 when absent
//	statut        normalised; absent means DISPONIBLE when stock > 0, RUPTURE otherwise
func Parse(raw json.RawMessage) (Product, error) {
	rec, err := backend.DecodeRecord(raw)
	if err != nil {
		return Product{}, err
	}
	id, err := rec.ID("id", "_id")
	if err != nil {
		return Product{}, err
	}

	stock := rec.Int("stock", "quantite", "quantity")
	var status enums.ProductStatus
	if s := rec.String("statut", "status"); s != "" {
		status = enums.NormalizeProductStatus(s)
	} else if stock > 0 {
		status = enums.ProductStatusAvailable
	} else {
		status = enums.ProductStatusOutOfStock
	}

	return Product{
		ID:              id,
		EstablishmentID: rec.OptionalID("etablissement_id", "establishment_id", "etablissementId"),
		Name:            rec.String("nom", "name"),
		Category:        rec.String("categorie", "category"),
		Description:     rec.String("description"),
		Price:           rec.Decimal("prix", "price"),
		Stock:           stock,
		AlertThreshold:  rec.Int("seuil_alerte", "alert_threshold", "seuilAlerte"),
		Unit:            rec.String("unite", "unit"),
		Status:          status,
	}, nil
}

// CreateInput is the payload sent to create a product.
type CreateInput struct {
	EstablishmentID string          `json:"etablissement_id" validate:"required"`
	Name            string          `json:"nom" validate:"required,max=150"`
	Category        string          `json:"categorie,omitempty" validate:"max=80"`
	Description     string          `json:"description,omitempty" validate:"max=1000"`
	Price           decimal.Decimal `json:"prix" validate:"gte=0"`
	Stock           int             `json:"stock" validate:"gte=0"`
	AlertThreshold  int             `json:"seuil_alerte" validate:"gte=0"`
	Unit            string          `json:"unite,omitempty" validate:"max=20"`
}

// UpdateInput carries the fields of a full update.
type UpdateInput struct {
	Name           string          `json:"nom" validate:"required,max=150"`
	Category       string          `json:"categorie,omitempty" validate:"max=80"`
	Description    string          `json:"description,omitempty" validate:"max=1000"`
	Price          decimal.Decimal `json:"prix" validate:"gte=0"`
	AlertThreshold int             `json:"seuil_alerte" validate:"gte=0"`
	Unit           string          `json:"unite,omitempty" validate:"max=20"`
}

type stockInput struct {
	Stock int `json:"stock" validate:"gte=0"`
}
