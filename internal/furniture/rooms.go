package furniture

import (
	"context"
	"strings"
	"sync"

	pkgerrors "github.com/angelmondragon/hotelsuite/pkg/errors"
)

// StoreFactory builds the store of one room.
type StoreFactory func(roomID string) (Store, error)

// Rooms hands out one store per room id, hydrated on first use.
type Rooms struct {
	factory StoreFactory

	mu    sync.Mutex
	rooms map[string]*roomEntry
}

// roomEntry is ready once done is closed; store is nil when hydration failed.
type roomEntry struct {
	done  chan struct{}
	store Store
	err   error
}

func NewRooms(factory StoreFactory) *Rooms {
	return &Rooms{factory: factory, rooms: map[string]*roomEntry{}}
}

// Get returns the store for roomID. A new store is loaded from local storage
// first and from the database when local storage holds nothing. Callers for
// the same room share one hydration; other rooms are not blocked by it.
func (r *Rooms) Get(ctx context.Context, roomID string) (Store, error) {
	roomID = strings.TrimSpace(roomID)
	if roomID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "room id is required")
	}

	r.mu.Lock()
	entry, ok := r.rooms[roomID]
	if !ok {
		entry = &roomEntry{done: make(chan struct{})}
		r.rooms[roomID] = entry
	}
	r.mu.Unlock()

	if ok {
		select {
		case <-entry.done:
			return entry.store, entry.err
		case <-ctx.Done():
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, ctx.Err(), "room is still loading")
		}
	}

	entry.store, entry.err = r.open(ctx, roomID)
	if entry.err != nil {
		entry.store = nil
		// failures are not cached; the next Get retries
		r.mu.Lock()
		if r.rooms[roomID] == entry {
			delete(r.rooms, roomID)
		}
		r.mu.Unlock()
	}
	close(entry.done)
	return entry.store, entry.err
}

func (r *Rooms) open(ctx context.Context, roomID string) (Store, error) {
	s, err := r.factory(roomID)
	if err != nil {
		return nil, err
	}
	if err := hydrate(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// FlushAll waits for the pending write-backs of every open room.
func (r *Rooms) FlushAll() {
	r.mu.Lock()
	entries := make([]*roomEntry, 0, len(r.rooms))
	for _, e := range r.rooms {
		entries = append(entries, e)
	}
	r.mu.Unlock()

	for _, e := range entries {
		select {
		case <-e.done:
		default:
			continue
		}
		if e.store != nil {
			e.store.Flush()
		}
	}
}

// hydrate fails only when neither source could be read.
func hydrate(ctx context.Context, s Store) error {
	localErr := s.LoadFromStorage(ctx)
	if localErr == nil && len(s.Items()) > 0 {
		return nil
	}
	dbErr := s.LoadFromDatabase(ctx)
	if dbErr == nil || localErr == nil {
		return nil
	}
	if pkgerrors.IsCode(dbErr, pkgerrors.CodeValidation) {
		return localErr
	}
	return dbErr
}
