package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
	"github.com/smartdiet-sl/smartdiet/backend/internal/testhelpers"
)

func TestRedisConversationStore(t *testing.T) {
	client := testhelpers.SetupRedis(t)
	store := service.NewRedisConversationStore(client)
	ctx := context.Background()

	msgs := []service.Message{{Role: service.RoleSystem, Content: "sys"}}
	require.NoError(t, store.Set(ctx, "a", msgs, time.Minute))
	require.NoError(t, store.Set(ctx, "b", msgs, time.Minute))

	ttl, err := client.TTL(ctx, "chat:conversation:a").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, msgs, got)

	missing, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, store.Delete(ctx, "a"))
	got, _ = store.Get(ctx, "a")
	assert.Nil(t, got)

	require.NoError(t, client.Set(ctx, "unrelated", "keep", 0).Err())
	require.NoError(t, store.Clear(ctx))
	got, _ = store.Get(ctx, "b")
	assert.Nil(t, got)
	assert.Equal(t, "keep", client.Get(ctx, "unrelated").Val())
}
