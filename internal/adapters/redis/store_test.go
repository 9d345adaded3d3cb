package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quickstart/internal/adapters/redis"
	"github.com/aretw0/quickstart/pkg/domain"
	"github.com/aretw0/quickstart/pkg/ports"
)

func setup(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := setup(t)
	store := redis.NewFromClient(client)
	ports.RunDocumentStoreContract(t, store)
}

func TestRedisStore_PrefixAndTTL(t *testing.T) {
	mr, client := setup(t)
	ctx := context.Background()
	store := redis.NewFromClient(client, redis.WithPrefix("test:"), redis.WithTTL(time.Minute))

	require.NoError(t, store.Save(ctx, "project", map[string]any{"version": 1, "foo": "bar"}))
	assert.True(t, mr.Exists("test:project"))
	assert.Equal(t, time.Minute, mr.TTL("test:project"))

	stored, err := mr.Get("test:project")
	require.NoError(t, err)
	assert.Equal(t, "version: 1\nfoo: bar\n", stored)

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"project"}, keys)

	mr.FastForward(2 * time.Minute)
	_, err = store.Load(ctx, "project")
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestRedisStore_NewFromURL(t *testing.T) {
	mr, _ := setup(t)
	store, err := redis.NewFromURL("redis://" + mr.Addr() + "/0")
	require.NoError(t, err)
	defer store.Close()

	ok, err := store.Exists(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = redis.NewFromURL("://bad")
	assert.Error(t, err)
}

func TestLocker(t *testing.T) {
	mr, client := setup(t)
	ctx := context.Background()
	locker := redis.NewFromClient(client).NewLocker()

	unlock, err := locker.Lock(ctx, "project", time.Minute)
	require.NoError(t, err)
	assert.True(t, mr.Exists(redis.DefaultPrefix+"lock:project"))

	busy, cancel := context.WithTimeout(ctx, 250*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(busy, "project", time.Minute)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, unlock(ctx))
	assert.False(t, mr.Exists(redis.DefaultPrefix+"lock:project"))

	unlock, err = locker.Lock(ctx, "project", time.Second)
	require.NoError(t, err)
	mr.FastForward(2 * time.Second)
	assert.ErrorIs(t, unlock(ctx), redis.ErrLockLost)
}
