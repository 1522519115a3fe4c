package repo

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/inventory-rest/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestRedisRecordInventory_CRUD(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	client.Del(ctx, recordsHashKey, recordsNextIDKey)
	t.Cleanup(func() { client.Del(ctx, recordsHashKey, recordsNextIDKey) })

	inv := NewRedisRecordInventory(client)

	empty, err := inv.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	created, err := inv.Add(ctx, models.Record{Title: "Abbey Road", Artist: "The Beatles", Year: 1969})
	require.NoError(t, err)
	require.NotNil(t, created.ID)
	assert.Equal(t, 1, *created.ID)

	got, err := inv.Get(ctx, *created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = inv.Update(ctx, *created.ID, models.Record{Title: "Let It Be", Artist: "The Beatles", Year: 1970})
	require.NoError(t, err)
	got, _ = inv.Get(ctx, *created.ID)
	assert.Equal(t, "Let It Be", got.Title)

	_, err = inv.Update(ctx, 99, models.Record{Title: "Nope"})
	assert.ErrorIs(t, err, ErrRecordNotFound)

	require.NoError(t, inv.Delete(ctx, *created.ID))
	assert.ErrorIs(t, inv.Delete(ctx, *created.ID), ErrRecordNotFound)
	_, err = inv.Get(ctx, *created.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
