package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseKVStore(t *testing.T, store KVStore) {
	t.Helper()
	ctx := context.Background()

	_, found, err := store.Get(ctx, "cart-storage:anon:1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "cart-storage:anon:1", []byte(`[]`)))
	require.NoError(t, store.Set(ctx, "cart-storage:anon:1", []byte(`[{"quantity":1}]`)))

	value, found, err := store.Get(ctx, "cart-storage:anon:1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"quantity":1}]`, string(value))

	require.NoError(t, store.Delete(ctx, "cart-storage:anon:1"))
	require.NoError(t, store.Delete(ctx, "cart-storage:anon:1"))

	_, found, err = store.Get(ctx, "cart-storage:anon:1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryKVStore(t *testing.T) {
	exerciseKVStore(t, NewMemoryKVStore())
}

func TestMemoryKVStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryKVStore()

	value := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", value))
	value[0] = 'z'

	got, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestFileKVStore(t *testing.T) {
	store, err := NewFileKVStore(t.TempDir())
	require.NoError(t, err)
	exerciseKVStore(t, store)
}

func TestFileKVStoreEscapesKeys(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFileKVStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "../outside", []byte("x")))

	reopened, err := NewFileKVStore(dir)
	require.NoError(t, err)
	value, found, err := reopened.Get(ctx, "../outside")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "x", string(value))
}

func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisKVStoreUnreachable(t *testing.T) {
	ctx := context.Background()
	store := NewRedisKVStore(unreachableRedis(t), "hardware-store:")

	_, found, err := store.Get(ctx, "cart-storage:anon:1")
	assert.Error(t, err)
	assert.False(t, found)
	assert.Error(t, store.Set(ctx, "cart-storage:anon:1", []byte(`[]`)))
	assert.Error(t, store.Delete(ctx, "cart-storage:anon:1"))
}

func TestRedisKVStore(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	exerciseKVStore(t, NewRedisKVStore(client, "hardware-store-test:"+uuid.NewString()+":"))
}
