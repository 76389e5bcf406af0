package equipment

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/hotelsuite/internal/backend"
	"github.com/angelmondragon/hotelsuite/pkg/config"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
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

func TestGetByEstablishment(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/equipements/etablissement/7", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[
			{"id":1,"nom":"Four","etat":"en panne","prochaine_maintenance":"2026-01-10"},
			{"id":2,"nom":"Lave-vaisselle"}
		]}`))
	})
	items, err := svc.GetByEstablishment(context.Background(), "7")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, enums.EquipmentStatusBroken, items[0].Status)
	require.NotNil(t, items[0].NextMaintenance)
	assert.Equal(t, enums.EquipmentStatusOperational, items[1].Status)
	assert.Nil(t, items[1].NextMaintenance)
}

func TestChangeStatus(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/equipements/status/EN_MAINTENANCE/1", r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"Statut mis à jour"}`))
	})
	item, err := svc.ChangeStatus(context.Background(), "1", enums.EquipmentStatusMaintenance)
	require.NoError(t, err)
	assert.Empty(t, item.ID)
}

func TestStatsMaintenanceDue(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 1, 0)
	items := []Item{
		{Category: "cuisine", NextMaintenance: &past, PurchasePrice: decimal.NewFromInt(1200), Status: enums.EquipmentStatusOperational},
		{Category: "cuisine", NextMaintenance: &future, PurchasePrice: decimal.NewFromInt(300), Status: enums.EquipmentStatusOperational},
		{Category: "salle", NextMaintenance: &past, Status: enums.EquipmentStatusRetired},
		{Category: "salle"},
	}
	s := Stats(items, now)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 1, s.MaintenanceDue)
	assert.Equal(t, 2, s.ByCategory["cuisine"])
	assert.True(t, decimal.NewFromInt(1500).Equal(s.InventoryValue))
}

func TestParseRejectsMissingID(t *testing.T) {
	_, err := Parse(json.RawMessage(`{"nom":"Four"}`))
	assert.Error(t, err)
}
