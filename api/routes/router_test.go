package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/hotelsuite/api/controllers"
	"github.com/angelmondragon/hotelsuite/internal/dashboard"
	"github.com/angelmondragon/hotelsuite/internal/furniture"
	"github.com/angelmondragon/hotelsuite/internal/reservations"
	"github.com/angelmondragon/hotelsuite/internal/scene"
	pkgAuth "github.com/angelmondragon/hotelsuite/pkg/auth"
	"github.com/angelmondragon/hotelsuite/pkg/config"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	"github.com/angelmondragon/hotelsuite/pkg/logger"
	pkgredis "github.com/angelmondragon/hotelsuite/pkg/redis"
)

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

type stubBookings struct {
	got []reservations.CreateInput
}

func (s *stubBookings) Create(_ context.Context, in reservations.CreateInput) (reservations.Reservation, error) {
	s.got = append(s.got, in)
	return reservations.Reservation{ID: "r-1", EstablishmentID: in.EstablishmentID, CustomerName: in.CustomerName, TableID: in.TableID, Status: enums.ReservationStatusPending}, nil
}

type harness struct {
	handler  http.Handler
	rooms    *furniture.Rooms
	bookings *stubBookings
	cfg      *config.Config
}

func newHarness(t *testing.T, dbErr error) harness {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "router-test", Output: io.Discard})
	mr := miniredis.RunT(t)
	redisClient := pkgredis.NewFromRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	cfg := &config.Config{
		App:       config.AppConfig{Env: "test"},
		JWT:       config.JWTConfig{Secret: "secret", Issuer: "hotelsuite", ExpirationMinutes: 30},
		Dashboard: config.DashboardConfig{EstablishmentID: "1"},
		Scene:     config.SceneConfig{SettleDelay: 40 * time.Millisecond},
	}

	local := furniture.NewLocalStorage(redisClient, "furniture")
	rooms := furniture.NewRooms(func(roomID string) (furniture.Store, error) {
		return furniture.NewStore(furniture.StoreParams{RoomID: roomID, Local: local, Logger: logg})
	})
	t.Cleanup(rooms.FlushAll)

	dashboards, err := dashboard.NewService(dashboard.ServiceParams{Cache: redisClient, Logger: logg})
	require.NoError(t, err)

	bookings := &stubBookings{}
	handler := NewRouter(cfg, logg, stubPinger{err: dbErr}, stubPinger{}, rooms, bookings, controllers.SceneDeps{
		Shell:       scene.DefaultShell(),
		Catalog:     scene.DefaultCatalog(),
		SettleDelay: cfg.Scene.SettleDelay,
	}, dashboards)
	return harness{handler: handler, rooms: rooms, bookings: bookings, cfg: cfg}
}

func (h harness) token(t *testing.T, role enums.MemberRole, establishmentID string) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(h.cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID:          uuid.New(),
		EstablishmentID: establishmentID,
		Role:            role,
	})
	require.NoError(t, err)
	return token
}

func (h harness) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func TestHealthRoutes(t *testing.T) {
	h := newHarness(t, nil)

	live := h.do(t, http.MethodGet, "/health/live", "", nil)
	assert.Equal(t, http.StatusOK, live.Code)
	assert.Equal(t, "test", live.Header().Get("X-HotelSuite-Env"))

	ready := h.do(t, http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, http.StatusOK, ready.Code)
}

func TestHealthReadyReportsFailingDependency(t *testing.T) {
	h := newHarness(t, errors.New("db down"))
	rec := h.do(t, http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPrivateRoutesRequireToken(t *testing.T) {
	h := newHarness(t, nil)
	assert.Equal(t, http.StatusOK, h.do(t, http.MethodGet, "/api/public/ping", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, h.do(t, http.MethodGet, "/api/ping", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, h.do(t, http.MethodGet, "/api/v1/rooms/lobby/furniture", "not-a-jwt", nil).Code)
}

func TestStaffCannotEditLayout(t *testing.T) {
	h := newHarness(t, nil)
	staff := h.token(t, enums.MemberRoleStaff, "")

	rec := h.do(t, http.MethodPost, "/api/v1/rooms/lobby/furniture", staff, map[string]any{"type": "chair"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = h.do(t, http.MethodGet, "/api/v1/rooms/lobby/furniture", staff, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFurnitureLifecycle(t *testing.T) {
	h := newHarness(t, nil)
	manager := h.token(t, enums.MemberRoleManager, "")

	rec := h.do(t, http.MethodPost, "/api/v1/rooms/lobby/furniture", manager, map[string]any{
		"type":     "table-round",
		"position": map[string]float64{"x": 2, "y": 0, "z": -1},
		"name":     "T1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created furniture.Item
	decodeData(t, rec, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, enums.TableStatusFree, created.Status)

	rec = h.do(t, http.MethodGet, "/api/v1/rooms/lobby/furniture", manager, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []furniture.Item
	decodeData(t, rec, &items)
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)

	rec = h.do(t, http.MethodPatch, "/api/v1/rooms/lobby/furniture/"+created.ID+"/status", manager, map[string]any{"status": "nettoyage"})
	require.Equal(t, http.StatusOK, rec.Code)
	var mutation struct {
		Updated bool           `json:"updated"`
		Item    furniture.Item `json:"item"`
		Version uint64         `json:"version"`
	}
	decodeData(t, rec, &mutation)
	assert.True(t, mutation.Updated)
	assert.Equal(t, enums.TableStatusCleaning, mutation.Item.Status)

	rec = h.do(t, http.MethodPatch, "/api/v1/rooms/lobby/furniture/ghost/status", manager, map[string]any{"status": "LIBRE"})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &mutation)
	assert.False(t, mutation.Updated)

	rec = h.do(t, http.MethodPatch, "/api/v1/rooms/lobby/furniture/"+created.ID+"/status", manager, map[string]any{"status": "LIBRE", "expectedVersion": 0})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = h.do(t, http.MethodPatch, "/api/v1/rooms/lobby/furniture/"+created.ID+"/status", manager, map[string]any{"status": "broken"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(t, http.MethodPatch, "/api/v1/rooms/lobby/furniture/"+created.ID, manager, map[string]any{
		"name":     "Window table",
		"position": map[string]float64{"x": 4, "y": 0, "z": 4},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &mutation)
	assert.Equal(t, "Window table", mutation.Item.Name)
	assert.Equal(t, 4.0, mutation.Item.Position.X)
}

func TestSelectionAndScene(t *testing.T) {
	h := newHarness(t, nil)
	manager := h.token(t, enums.MemberRoleManager, "")

	rec := h.do(t, http.MethodPost, "/api/v1/rooms/bar/furniture", manager, map[string]any{"type": "table-small"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var table furniture.Item
	decodeData(t, rec, &table)

	rec = h.do(t, http.MethodPut, "/api/v1/rooms/bar/selection", manager, map[string]any{"id": table.ID})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodGet, "/api/v1/rooms/bar/scene", manager, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var graph scene.Graph
	decodeData(t, rec, &graph)
	require.Len(t, graph.Nodes, 1)
	assert.True(t, graph.Nodes[0].Selected)
	assert.True(t, graph.Nodes[0].ShowBadge)
	assert.Equal(t, enums.BadgeColorGreen, graph.Nodes[0].Badge)
	assert.NotEmpty(t, graph.Nodes[0].Actions)
	assert.Len(t, graph.Shell, 6)

	rec = h.do(t, http.MethodDelete, "/api/v1/rooms/bar/selection", manager, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var state struct {
		Selected string `json:"selected"`
	}
	decodeData(t, rec, &state)
	assert.Empty(t, state.Selected)

	start := time.Now()
	rec = h.do(t, http.MethodPost, "/api/v1/rooms/bar/scene/preload", manager, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.GreaterOrEqual(t, time.Since(start), h.cfg.Scene.SettleDelay, "preload waits the settle delay")
	var preload struct {
		Progress scene.ProgressState `json:"progress"`
		SettleMS int64               `json:"settleMs"`
	}
	decodeData(t, rec, &preload)
	assert.True(t, preload.Progress.Loaded)
	assert.Equal(t, int64(40), preload.SettleMS)
}

func TestDropPlacesFurnitureUnderPointer(t *testing.T) {
	h := newHarness(t, nil)
	manager := h.token(t, enums.MemberRoleManager, "")

	drop := map[string]any{
		"clientX": 400,
		"clientY": 300,
		"rect":    map[string]float64{"left": 0, "top": 0, "width": 800, "height": 600},
		"camera": map[string]any{
			"position": map[string]float64{"x": 0, "y": 10, "z": 10},
			"target":   map[string]float64{"x": 0, "y": 0, "z": 0},
			"up":       map[string]float64{"x": 0, "y": 1, "z": 0},
			"fov":      60,
			"aspect":   800.0 / 600.0,
		},
		"data": map[string]string{"furniture/type": "sofa"},
	}

	rec := h.do(t, http.MethodPost, "/api/v1/rooms/terrace/drops", manager, drop)
	require.Equal(t, http.StatusCreated, rec.Code)
	var placed struct {
		Placed bool           `json:"placed"`
		Item   furniture.Item `json:"item"`
	}
	decodeData(t, rec, &placed)
	assert.True(t, placed.Placed)
	assert.Equal(t, enums.FurnitureTypeSofa, placed.Item.Type)
	assert.Zero(t, placed.Item.Position.Y)
	assert.InDelta(t, 0, placed.Item.Position.X, 1e-6)
	assert.InDelta(t, 0, placed.Item.Position.Z, 1e-6)

	drop["data"] = map[string]string{}
	rec = h.do(t, http.MethodPost, "/api/v1/rooms/terrace/drops", manager, drop)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &placed)
	assert.False(t, placed.Placed)

	store, err := h.rooms.Get(context.Background(), "terrace")
	require.NoError(t, err)
	assert.Len(t, store.Items(), 1)
}

func TestTableActions(t *testing.T) {
	h := newHarness(t, nil)
	manager := h.token(t, enums.MemberRoleManager, "7")

	rec := h.do(t, http.MethodPost, "/api/v1/rooms/lobby/furniture", manager, map[string]any{"type": "table-large"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var table furniture.Item
	decodeData(t, rec, &table)

	rec = h.do(t, http.MethodGet, "/api/v1/rooms/lobby/furniture/"+table.ID+"/actions", manager, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed struct {
		Status  string `json:"status"`
		Badge   string `json:"badge"`
		Actions []struct {
			Key string `json:"key"`
		} `json:"actions"`
	}
	decodeData(t, rec, &listed)
	assert.Equal(t, "LIBRE", listed.Status)
	assert.Equal(t, "green", listed.Badge)
	assert.Len(t, listed.Actions, 3)

	rec = h.do(t, http.MethodPost, "/api/v1/rooms/lobby/furniture/"+table.ID+"/actions/free", manager, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = h.do(t, http.MethodPost, "/api/v1/rooms/lobby/furniture/"+table.ID+"/actions/reserve", manager, map[string]any{
		"reservation": map[string]any{
			"customerName": "Mme Durand",
			"partySize":    4,
			"date":         time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC),
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var result struct {
		Item        furniture.Item `json:"item"`
		Reservation struct {
			ID string `json:"id"`
		} `json:"reservation"`
	}
	decodeData(t, rec, &result)
	assert.Equal(t, enums.TableStatusReserved, result.Item.Status)
	require.Len(t, h.bookings.got, 1)
	assert.Equal(t, "7", h.bookings.got[0].EstablishmentID)
	assert.Equal(t, table.ID, h.bookings.got[0].TableID)

	rec = h.do(t, http.MethodPost, "/api/v1/rooms/lobby/furniture/missing/actions/occupy", manager, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboardFallsBackToDemoData(t *testing.T) {
	h := newHarness(t, nil)
	manager := h.token(t, enums.MemberRoleManager, "")

	rec := h.do(t, http.MethodGet, "/api/v1/dashboard/1", manager, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var ov dashboard.Overview
	decodeData(t, rec, &ov)
	assert.Equal(t, "1", ov.EstablishmentID)
	assert.True(t, ov.Personnel.Demo)
	assert.NotEmpty(t, ov.Personnel.Items)

	staff := h.token(t, enums.MemberRoleStaff, "1")
	rec = h.do(t, http.MethodGet, "/api/v1/dashboard/1", staff, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	scoped := h.token(t, enums.MemberRoleManager, "2")
	rec = h.do(t, http.MethodGet, "/api/v1/dashboard/1", scoped, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
