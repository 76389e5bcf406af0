package furniture

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/angelmondragon/hotelsuite/pkg/enums"
	pkgerrors "github.com/angelmondragon/hotelsuite/pkg/errors"
	"github.com/angelmondragon/hotelsuite/pkg/geometry"
	"github.com/angelmondragon/hotelsuite/pkg/logger"
	"github.com/angelmondragon/hotelsuite/pkg/metrics"
	"github.com/google/uuid"
)

const defaultWriteTimeout = 5 * time.Second

// Source reads a full room snapshot. A room with nothing persisted yields an
// empty snapshot and no error.
type Source interface {
	Load(ctx context.Context, roomID string) (Snapshot, error)
}

// Storage is a Source that also accepts full snapshot write-backs.
type Storage interface {
	Source
	Save(ctx context.Context, snapshot Snapshot) error
	Name() string
}

// State is what subscribers observe after every change.
type State struct {
	Snapshot Snapshot
	Selected string
}

// Listener is notified synchronously after each change.
type Listener func(State)

// Reader is the read-only view handed to rendering code.
type Reader interface {
	Items() []Item
	Item(id string) (Item, bool)
	Snapshot() Snapshot
	Selected() string
	Version() uint64
	Subscribe(fn Listener) (unsubscribe func())
}

// Store is the single source of truth for the placed furniture of one room.
type Store interface {
	Reader
	AddFurniture(ctx context.Context, partial Partial) Item
	LoadFromStorage(ctx context.Context) error
	LoadFromDatabase(ctx context.Context) error
	SetSelected(id string)
	Deselect()
	UpdateTableStatus(ctx context.Context, id string, status enums.TableStatus) bool
	CompareAndSetStatus(ctx context.Context, id string, status enums.TableStatus, expectedVersion uint64) error
	Rename(ctx context.Context, id, name string) bool
	Move(ctx context.Context, id string, position geometry.Vec3, rotation *geometry.Euler) bool
	Flush()
}

// StoreParams groups the dependencies of a room store.
type StoreParams struct {
	RoomID string
	// Local is read by LoadFromStorage and receives every write-back.
	Local Storage
	// Remote is read by LoadFromDatabase. When it is also a Storage it receives write-backs too.
	Remote       Source
	Logger       *logger.Logger
	Metrics      *metrics.FurnitureMetrics
	WriteTimeout time.Duration
	NewID        func() string
}

type store struct {
	roomID       string
	local        Storage
	remote       Source
	writers      []Storage
	logg         *logger.Logger
	metrics      *metrics.FurnitureMetrics
	writeTimeout time.Duration
	newID        func() string

	mu        sync.RWMutex
	items     []Item
	selected  string
	version   uint64
	listeners map[uint64]Listener
	nextSub   uint64

	writeMu      sync.Mutex
	lastWritten  map[string]uint64
	pendingWrite sync.WaitGroup
}

// NewStore builds an empty store for params.RoomID.
func NewStore(params StoreParams) (Store, error) {
	if strings.TrimSpace(params.RoomID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "room id is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	if params.Local == nil && params.Remote == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one furniture source is required")
	}
	if params.WriteTimeout <= 0 {
		params.WriteTimeout = defaultWriteTimeout
	}
	if params.NewID == nil {
		params.NewID = uuid.NewString
	}

	var writers []Storage
	if params.Local != nil {
		writers = append(writers, params.Local)
	}
	if remote, ok := params.Remote.(Storage); ok {
		writers = append(writers, remote)
	}

	return &store{
		roomID:       params.RoomID,
		local:        params.Local,
		remote:       params.Remote,
		writers:      writers,
		logg:         params.Logger,
		metrics:      params.Metrics,
		writeTimeout: params.WriteTimeout,
		newID:        params.NewID,
		items:        []Item{},
		listeners:    map[uint64]Listener{},
		lastWritten:  map[string]uint64{},
	}, nil
}

func (s *store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneItems(s.items)
}

func (s *store) Item(id string) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := s.indexOf(id); idx >= 0 {
		return s.items[idx], true
	}
	return Item{}, false
}

func (s *store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *store) Selected() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

func (s *store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *store) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// AddFurniture appends a new LIBRE item. Unknown types are kept as given.
func (s *store) AddFurniture(ctx context.Context, partial Partial) Item {
	item := Item{
		ID:       s.newID(),
		Type:     partial.Type,
		Position: partial.Position,
		Name:     strings.TrimSpace(partial.Name),
		Status:   enums.TableStatusFree,
	}
	if partial.Rotation != nil {
		item.Rotation = *partial.Rotation
	}

	s.mu.Lock()
	s.items = append(s.items, item)
	state, snapshot := s.commitLocked()
	s.mu.Unlock()

	s.afterMutation(ctx, "add", state, snapshot)
	return item
}

func (s *store) LoadFromStorage(ctx context.Context) error {
	if s.local == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "local storage is not configured")
	}
	return s.replaceFrom(ctx, s.local, "storage")
}

func (s *store) LoadFromDatabase(ctx context.Context) error {
	if s.remote == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "remote source is not configured")
	}
	return s.replaceFrom(ctx, s.remote, "database")
}

// replaceFrom swaps the whole collection for the source's snapshot; the last
// completed load wins.
func (s *store) replaceFrom(ctx context.Context, src Source, origin string) error {
	ctx = s.logg.WithRoomID(ctx, s.roomID)
	snap, err := src.Load(ctx, s.roomID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading furniture from "+origin)
	}

	items, dropped := dedupe(snap.Items)
	normalizeStatuses(items)
	if dropped > 0 {
		s.logg.Warn(s.logg.WithField(ctx, "dropped", dropped), "duplicate furniture ids in snapshot")
	}

	s.mu.Lock()
	s.items = items
	s.version++
	state := State{Snapshot: s.snapshotLocked(), Selected: s.selected}
	listeners := s.listenersLocked()
	s.mu.Unlock()

	s.metrics.IncMutation("load_" + origin)
	notify(listeners, state)
	return nil
}

func (s *store) SetSelected(id string) {
	s.mu.Lock()
	if s.selected == id {
		s.mu.Unlock()
		return
	}
	s.selected = id
	state := State{Snapshot: s.snapshotLocked(), Selected: s.selected}
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, state)
}

func (s *store) Deselect() {
	s.SetSelected("")
}

// UpdateTableStatus overwrites the status of id without checking the
// transition. It reports false when id is unknown.
func (s *store) UpdateTableStatus(ctx context.Context, id string, status enums.TableStatus) bool {
	return s.mutate(ctx, "status", id, func(item *Item) {
		item.Status = status
	})
}

// CompareAndSetStatus applies the status only when the store is still at
// expectedVersion.
func (s *store) CompareAndSetStatus(ctx context.Context, id string, status enums.TableStatus, expectedVersion uint64) error {
	s.mu.Lock()
	if s.version != expectedVersion {
		current := s.version
		s.mu.Unlock()
		return pkgerrors.New(pkgerrors.CodeStateConflict, "furniture layout changed").
			WithDetails(map[string]any{"expected_version": expectedVersion, "current_version": current})
	}
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return pkgerrors.New(pkgerrors.CodeNotFound, "furniture item not found")
	}
	s.items[idx].Status = status
	state, snapshot := s.commitLocked()
	s.mu.Unlock()

	s.afterMutation(ctx, "status", state, snapshot)
	return nil
}

func (s *store) Rename(ctx context.Context, id, name string) bool {
	return s.mutate(ctx, "rename", id, func(item *Item) {
		item.Name = strings.TrimSpace(name)
	})
}

func (s *store) Move(ctx context.Context, id string, position geometry.Vec3, rotation *geometry.Euler) bool {
	return s.mutate(ctx, "move", id, func(item *Item) {
		item.Position = position
		if rotation != nil {
			item.Rotation = *rotation
		}
	})
}

// Flush blocks until every scheduled write-back has finished.
func (s *store) Flush() {
	s.pendingWrite.Wait()
}

func (s *store) mutate(ctx context.Context, op, id string, apply func(*Item)) bool {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		s.logg.Info(s.logg.WithFields(ctx, map[string]any{"op": op, "item_id": id}), "furniture item not found, ignoring")
		return false
	}
	apply(&s.items[idx])
	state, snapshot := s.commitLocked()
	s.mu.Unlock()

	s.afterMutation(ctx, op, state, snapshot)
	return true
}

// commitLocked bumps the version and captures what must be published. Callers hold mu.
func (s *store) commitLocked() (State, Snapshot) {
	s.version++
	snapshot := s.snapshotLocked()
	return State{Snapshot: snapshot, Selected: s.selected}, snapshot
}

func (s *store) afterMutation(ctx context.Context, op string, state State, snapshot Snapshot) {
	s.metrics.IncMutation(op)
	s.mu.RLock()
	listeners := s.listenersLocked()
	s.mu.RUnlock()
	notify(listeners, state)
	s.scheduleWrite(ctx, snapshot)
}

// scheduleWrite persists the snapshot in the background. Failures are logged and
// counted, never retried; an older snapshot never overwrites a newer one.
func (s *store) scheduleWrite(ctx context.Context, snapshot Snapshot) {
	if len(s.writers) == 0 {
		return
	}
	ctx = s.logg.WithRoomID(context.WithoutCancel(ctx), s.roomID)
	for _, w := range s.writers {
		s.pendingWrite.Add(1)
		go func(w Storage) {
			defer s.pendingWrite.Done()

			s.writeMu.Lock()
			defer s.writeMu.Unlock()
			if last, ok := s.lastWritten[w.Name()]; ok && last >= snapshot.Version {
				return
			}

			writeCtx, cancel := context.WithTimeout(ctx, s.writeTimeout)
			defer cancel()
			if err := w.Save(writeCtx, snapshot); err != nil {
				s.metrics.IncWriteFailure(w.Name())
				s.logg.Error(s.logg.WithField(ctx, "backend", w.Name()), "furniture write-back failed", err)
				return
			}
			s.lastWritten[w.Name()] = snapshot.Version
		}(w)
	}
}

func (s *store) snapshotLocked() Snapshot {
	return Snapshot{RoomID: s.roomID, Version: s.version, Items: cloneItems(s.items)}
}

func (s *store) listenersLocked() []Listener {
	out := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		out = append(out, fn)
	}
	return out
}

func (s *store) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func notify(listeners []Listener, state State) {
	for _, fn := range listeners {
		fn(state)
	}
}
