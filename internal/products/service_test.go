package products

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/hotelsuite/internal/backend"
	"github.com/angelmondragon/hotelsuite/pkg/config"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	pkgerrors "github.com/angelmondragon/hotelsuite/pkg/errors"
	"github.com/angelmondragon/hotelsuite/pkg/logger"
)

func newTestService(t *testing.T, handler http.HandlerFunc) Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := backend.NewClient(backend.ClientParams{
		Config:    config.APIConfig{BaseURL: srv.URL},
		Tokens:    backend.NewMemoryTokenStore("token"),
		Navigator: backend.NewLocationRecorder(nil),
		Logger:    logger.New(logger.Options{Output: io.Discard}),
	})
	require.NoError(t, err)
	svc, err := NewService(ServiceParams{Client: client})
	require.NoError(t, err)
	return svc
}

func TestParseDefaultsStatusFromStock(t *testing.T) {
	p, err := Parse(json.RawMessage(`{"id":1,"nom":"Café","prix":"2,50","stock":0}`))
	require.NoError(t, err)
	assert.Equal(t, enums.ProductStatusOutOfStock, p.Status)
	assert.Equal(t, "2.5", p.Price.String())

	p, err = Parse(json.RawMessage(`{"id":2,"nom":"Thé","stock":"12"}`))
	require.NoError(t, err)
	assert.Equal(t, enums.ProductStatusAvailable, p.Status)
	assert.Equal(t, 12, p.Stock)

	p, err = Parse(json.RawMessage(`{"id":3,"statut":"épuisé"}`))
	require.NoError(t, err)
	assert.Equal(t, enums.ProductStatusOutOfStock, p.Status)
}

func TestUpdateStockPatchesOnlyStock(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/produits/5/stock", r.URL.Path)
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"stock": float64(3)}, body)
		_, _ = w.Write([]byte(`{"data":{"id":5,"nom":"Vin","stock":3,"seuil_alerte":5}}`))
	})

	p, err := svc.UpdateStock(context.Background(), "5", 3)
	require.NoError(t, err)
	assert.True(t, p.LowStock())

	_, err = svc.UpdateStock(context.Background(), "5", -1)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestGetByEstablishment(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/produits/etablissement/3", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[{"id":1,"nom":"Eau","prix":1,"stock":40}]}`))
	})
	items, err := svc.GetByEstablishment(context.Background(), "3")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Eau", items[0].Name)
}

func TestCreateRejectsNegativePrice(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend must not be called")
	})
	_, err := svc.Create(context.Background(), CreateInput{EstablishmentID: "1", Name: "X", Price: decimal.NewFromInt(-2)})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestStats(t *testing.T) {
	items := []Product{
		{Category: "Boissons", Price: decimal.RequireFromString("2.50"), Stock: 10, AlertThreshold: 5, Status: enums.ProductStatusAvailable},
		{Category: "Boissons", Price: decimal.RequireFromString("4"), Stock: 2, AlertThreshold: 5, Status: enums.ProductStatusAvailable},
		{Category: "Plats", Price: decimal.RequireFromString("15"), Stock: 0, Status: enums.ProductStatusOutOfStock},
	}
	s := Stats(items)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.ByCategory["Boissons"])
	assert.Equal(t, 2, s.LowStock)
	assert.Equal(t, "33", s.StockValue.String())
	assert.Equal(t, 1, s.ByStatus[enums.ProductStatusOutOfStock])
}
