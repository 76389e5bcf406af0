package backend

import (
	"context"
	"strings"
	"sync"

	pkgredis "github.com/angelmondragon/hotelsuite/pkg/redis"
)

// TokenStore holds the bearer token attached to backend calls.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

// MemoryTokenStore keeps the token in process memory.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryTokenStore(token string) *MemoryTokenStore {
	return &MemoryTokenStore{token: strings.TrimSpace(token)}
}

func (m *MemoryTokenStore) Token(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *MemoryTokenStore) SetToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = strings.TrimSpace(token)
	return nil
}

func (m *MemoryTokenStore) ClearToken(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

// RedisTokenStore persists the token under the configured storage key.
type RedisTokenStore struct {
	kv  pkgredis.KV
	key string
}

// NewRedisTokenStore stores the token at the namespaced storage key derived from tokenKey.
func NewRedisTokenStore(client *pkgredis.Client, tokenKey string) *RedisTokenStore {
	return &RedisTokenStore{kv: client, key: client.StorageKey(tokenKey)}
}

func (r *RedisTokenStore) Token(ctx context.Context) (string, error) {
	token, err := r.kv.Get(ctx, r.key)
	if pkgredis.IsNil(err) {
		return "", nil
	}
	return token, err
}

func (r *RedisTokenStore) SetToken(ctx context.Context, token string) error {
	return r.kv.Set(ctx, r.key, strings.TrimSpace(token), 0)
}

func (r *RedisTokenStore) ClearToken(ctx context.Context) error {
	return r.kv.Del(ctx, r.key)
}
