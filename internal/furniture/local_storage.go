package furniture

import (
	"context"
	"encoding/json"
	"fmt"

	pkgredis "github.com/angelmondragon/hotelsuite/pkg/redis"
)

// LocalStorage keeps the room snapshot as one JSON document in the key-value store.
type LocalStorage struct {
	kv         pkgredis.KV
	keyFor     func(roomID string) string
	storageKey string
}

// NewLocalStorage stores snapshots under the namespaced storageKey of each room.
func NewLocalStorage(client *pkgredis.Client, storageKey string) *LocalStorage {
	return &LocalStorage{
		kv:         client,
		storageKey: storageKey,
		keyFor: func(roomID string) string {
			return client.SnapshotKey(roomID, storageKey)
		},
	}
}

func (l *LocalStorage) Name() string { return "local" }

func (l *LocalStorage) Load(ctx context.Context, roomID string) (Snapshot, error) {
	raw, err := l.kv.Get(ctx, l.keyFor(roomID))
	if pkgredis.IsNil(err) {
		return Snapshot{RoomID: roomID, Items: []Item{}}, nil
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading %s snapshot: %w", l.storageKey, err)
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decoding %s snapshot: %w", l.storageKey, err)
	}
	snap.RoomID = roomID
	if snap.Items == nil {
		snap.Items = []Item{}
	}
	return snap, nil
}

func (l *LocalStorage) Save(ctx context.Context, snapshot Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encoding %s snapshot: %w", l.storageKey, err)
	}
	if err := l.kv.Set(ctx, l.keyFor(snapshot.RoomID), payload, 0); err != nil {
		return fmt.Errorf("writing %s snapshot: %w", l.storageKey, err)
	}
	return nil
}
