package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/hotelsuite/pkg/config"
)

func TestKeyBuilders(t *testing.T) {
	client := &Client{}
	if got := client.SnapshotKey("room-1", "furniture"); got != "hs:furniture:furniture:room-1" {
		t.Fatalf("unexpected snapshot key %s", got)
	}
	if got := client.StorageKey("auth_token"); got != "hs:storage:auth_token" {
		t.Fatalf("unexpected storage key %s", got)
	}
	if got := client.LockKey("dashboard", ""); got != "hs:lock:dashboard:local" {
		t.Fatalf("env-less lock key should default to local, got %s", got)
	}
	if got := client.DashboardKey("42"); got != "hs:dashboard:42" {
		t.Fatalf("unexpected dashboard key %s", got)
	}
	if got := client.SnapshotKey("", " furniture "); got != "hs:furniture:furniture" {
		t.Fatalf("empty parts should be skipped, got %s", got)
	}
}

func TestSetGetDelLifecycle(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	client := &Client{store: mock}

	require.NoError(t, client.Set(ctx, "k", "v", time.Minute))
	got, err := client.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	ok, err := client.SetNX(ctx, "k", "other", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, client.Del(ctx, "k"))
	_, err = client.Get(ctx, "k")
	assert.True(t, IsNil(err))
}

func TestUninitializedClientErrors(t *testing.T) {
	client := &Client{}
	ctx := context.Background()
	assert.Error(t, client.Ping(ctx))
	assert.Error(t, client.Set(ctx, "k", "v", 0))
	_, err := client.Get(ctx, "k")
	assert.Error(t, err)
	assert.NoError(t, client.Close())
}

func TestNewConnectsToServer(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := New(context.Background(), config.RedisConfig{Address: mr.Addr()}, nil)
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), "hs:probe", "1", 0))
	value, err := mr.Get("hs:probe")
	require.NoError(t, err)
	assert.Equal(t, "1", value)
}

func TestOptionsFromConfigRequiresTarget(t *testing.T) {
	_, err := optionsFromConfig(config.RedisConfig{})
	assert.Error(t, err)

	opts, err := optionsFromConfig(config.RedisConfig{URL: "redis://localhost:6379/3", PoolSize: 7})
	require.NoError(t, err)
	assert.Equal(t, 3, opts.DB)
	assert.Equal(t, 7, opts.PoolSize)
}

type mockCmdable struct {
	data map[string]string
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{data: make(map[string]string)}
}

func (m *mockCmdable) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *mockCmdable) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	m.data[key] = fmt.Sprint(value)
	return redis.NewStatusResult("OK", nil)
}

func (m *mockCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *mockCmdable) SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd {
	if _, exists := m.data[key]; exists {
		return redis.NewBoolResult(false, nil)
	}
	m.data[key] = fmt.Sprint(value)
	return redis.NewBoolResult(true, nil)
}

func (m *mockCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(m.data, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestOwnerScopedScripts(t *testing.T) {
	mr := miniredis.RunT(t)
	client := NewFromRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ctx := context.Background()
	require.NoError(t, client.Set(ctx, "lock", "me", time.Minute))

	ok, err := client.ExpireIfValue(ctx, "lock", "someone-else", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, time.Minute, mr.TTL("lock"))

	ok, err = client.ExpireIfValue(ctx, "lock", "me", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, time.Hour, mr.TTL("lock"))

	ok, err = client.DelIfValue(ctx, "lock", "someone-else")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, mr.Exists("lock"))

	ok, err = client.DelIfValue(ctx, "lock", "me")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, mr.Exists("lock"))

	_, err = (&Client{}).DelIfValue(ctx, "lock", "me")
	assert.Error(t, err)
}
