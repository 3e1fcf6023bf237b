package cache

import (
	"context"
	"testing"

	"sitebuilder/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis_UnconfiguredBypasses(t *testing.T) {
	r := NewRedis(config.RedisConfig{}, zerolog.Nop())
	ctx := context.Background()

	assert.False(t, r.Available())
	require.Error(t, r.Ping(ctx))

	require.NoError(t, r.SetJSON(ctx, "k", map[string]int{"a": 1}, 0))

	var out map[string]int
	hit, err := r.GetJSON(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	ok, err := r.SetIfNotExists(ctx, "lock", "1", 0)
	require.NoError(t, err)
	assert.True(t, ok)

	n, err := r.DeleteByPattern(ctx, "llm:*")
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, r.Delete(ctx, "k"))
	require.NoError(t, r.Close())
}

func TestRedis_NilReceiverIsSafe(t *testing.T) {
	var r *Redis
	hit, err := r.GetJSON(context.Background(), "k", &struct{}{})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.False(t, r.Available())
}
