package tablestatus

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/hotelsuite/internal/furniture"
	"github.com/angelmondragon/hotelsuite/internal/reservations"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	pkgerrors "github.com/angelmondragon/hotelsuite/pkg/errors"
	"github.com/angelmondragon/hotelsuite/pkg/logger"
)

type fakeStore struct {
	mu    sync.Mutex
	items map[string]furniture.Item
}

func newFakeStore(items ...furniture.Item) *fakeStore {
	s := &fakeStore{items: map[string]furniture.Item{}}
	for _, item := range items {
		s.items[item.ID] = item
	}
	return s
}

func (s *fakeStore) Item(id string) (furniture.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	return item, ok
}

func (s *fakeStore) UpdateTableStatus(_ context.Context, id string, status enums.TableStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return false
	}
	item.Status = status
	s.items[id] = item
	return true
}

type fakeCreator struct {
	inputs []reservations.CreateInput
	err    error
}

func (f *fakeCreator) Create(_ context.Context, input reservations.CreateInput) (reservations.Reservation, error) {
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return reservations.Reservation{}, f.err
	}
	return reservations.Reservation{ID: "r-1", TableID: input.TableID, PartySize: input.PartySize}, nil
}

func newMachine(t *testing.T, store StatusStore, creator reservations.Creator) *Machine {
	t.Helper()
	m, err := NewMachine(MachineParams{
		Store:           store,
		Reservations:    creator,
		EstablishmentID: "est-1",
		Logger:          logger.New(logger.Options{Output: io.Discard}),
	})
	require.NoError(t, err)
	return m
}

func table(id string, status enums.TableStatus) furniture.Item {
	return furniture.Item{ID: id, Type: enums.FurnitureTypeTableRound, Status: status}
}

func TestExecuteStatusAction(t *testing.T) {
	store := newFakeStore(table("t1", enums.TableStatusFree))
	m := newMachine(t, store, nil)

	res, err := m.Execute(context.Background(), "t1", ActionOccupy, nil)
	require.NoError(t, err)
	assert.Equal(t, enums.TableStatusOccupied, res.Item.Status)
	assert.Nil(t, res.Reservation)

	res, err = m.Execute(context.Background(), "t1", ActionClean, nil)
	require.NoError(t, err)
	assert.Equal(t, enums.TableStatusCleaning, res.Item.Status)
}

func TestExecuteRejectsUndocumentedEdge(t *testing.T) {
	store := newFakeStore(table("t1", enums.TableStatusCleaning))
	m := newMachine(t, store, nil)

	_, err := m.Execute(context.Background(), "t1", ActionOccupy, nil)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))
	item, _ := store.Item("t1")
	assert.Equal(t, enums.TableStatusCleaning, item.Status)
}

func TestExecuteUnknownStatusHasNoActions(t *testing.T) {
	store := newFakeStore(table("t1", enums.TableStatus("UNKNOWN_VALUE")))
	m := newMachine(t, store, nil)

	_, err := m.Execute(context.Background(), "t1", ActionFree, nil)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))
}

func TestExecuteUnknownItem(t *testing.T) {
	m := newMachine(t, newFakeStore(), nil)
	_, err := m.Execute(context.Background(), "missing", ActionFree, nil)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestReserveCreatesBookingThenMarksReserved(t *testing.T) {
	store := newFakeStore(table("t1", enums.TableStatusFree))
	creator := &fakeCreator{}
	m := newMachine(t, store, creator)

	date := time.Date(2026, 10, 20, 19, 30, 0, 0, time.UTC)
	res, err := m.Execute(context.Background(), "t1", ActionReserve, &ReservationForm{
		CustomerName: "Famille Ndiaye",
		PartySize:    5,
		Date:         date,
	})
	require.NoError(t, err)
	require.NotNil(t, res.Reservation)
	assert.Equal(t, "r-1", res.Reservation.ID)
	assert.Equal(t, enums.TableStatusReserved, res.Item.Status)

	require.Len(t, creator.inputs, 1)
	assert.Equal(t, "t1", creator.inputs[0].TableID)
	assert.Equal(t, "est-1", creator.inputs[0].EstablishmentID)
	assert.Equal(t, date, creator.inputs[0].Date)
}

func TestReserveFailureLeavesTableFree(t *testing.T) {
	store := newFakeStore(table("t1", enums.TableStatusFree))
	creator := &fakeCreator{err: errors.New("unable to reach the server")}
	m := newMachine(t, store, creator)

	_, err := m.Execute(context.Background(), "t1", ActionReserve, &ReservationForm{CustomerName: "x", PartySize: 1})
	require.Error(t, err)
	item, _ := store.Item("t1")
	assert.Equal(t, enums.TableStatusFree, item.Status)
}

func TestReserveRequiresForm(t *testing.T) {
	store := newFakeStore(table("t1", enums.TableStatusFree))
	m := newMachine(t, store, &fakeCreator{})

	_, err := m.Execute(context.Background(), "t1", ActionReserve, nil)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	m = newMachine(t, store, nil)
	_, err = m.Execute(context.Background(), "t1", ActionReserve, &ReservationForm{})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))
}

func TestNewMachineValidatesParams(t *testing.T) {
	_, err := NewMachine(MachineParams{Logger: logger.New(logger.Options{Output: io.Discard})})
	assert.Error(t, err)
	_, err = NewMachine(MachineParams{Store: newFakeStore()})
	assert.Error(t, err)
}
