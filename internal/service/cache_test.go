package service_test

import (
	"context"
	"testing"

	"github.com/dom/nba-hub/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNilQueryCacheIsDisabled(t *testing.T) {
	var cache *service.QueryCache
	ctx := context.Background()

	var dest string
	assert.False(t, cache.Get(ctx, "k", &dest))
	cache.Set(ctx, "k", "v")
	assert.False(t, cache.Get(ctx, "k", &dest), "set on a nil cache stores nothing")
	assert.NoError(t, cache.Close())
}

func TestNewQueryCacheWithoutAddrIsDisabled(t *testing.T) {
	cache, err := service.NewQueryCache(context.Background(), "", "", 0, 0, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, cache)
}
