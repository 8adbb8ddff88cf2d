package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func copyInto(src, dest interface{}) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

func TestStatsKey(t *testing.T) {
	assert.Equal(t, "stats:leaderboard:7A", StatsKey("leaderboard", " 7A "))
	assert.NotEqual(t, StatsKey("leaderboard", "7a"), StatsKey("leaderboard", "7A"))
	assert.Equal(t, "stats:totals:2024:all:uz:_", StatsKey("totals", "2024", "all", "uz", " "))
	assert.Equal(t, "stats:x:a_b", StatsKey("x", "a:b"))
}

func TestCacheServiceDisabled(t *testing.T) {
	repo := newFakeCacheRepo()
	svc := NewCacheService(repo, nil, time.Minute, nil, false)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "stats:a", 1, 0))
	var out int
	hit, err := svc.Get(ctx, "stats:a", &out)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Empty(t, repo.store)
	assert.NoError(t, svc.InvalidateStats(ctx))
	assert.Empty(t, repo.patterns)

	var nilSvc *CacheService
	assert.False(t, nilSvc.Enabled())
	assert.NoError(t, nilSvc.InvalidateStats(ctx))
}

func TestCacheServiceRoundTripAndMetrics(t *testing.T) {
	repo := newFakeCacheRepo()
	metrics := NewMetricsService()
	svc := NewCacheService(repo, metrics, time.Minute, nil, true)
	ctx := context.Background()

	var out map[string]int
	hit, err := svc.Get(ctx, "stats:k", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, svc.Set(ctx, "stats:k", map[string]int{"a": 1}, 0))
	hit, err = svc.Get(ctx, "stats:k", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 1, out["a"])

	snap := metrics.Snapshot()
	assert.Equal(t, uint64(1), snap.CacheHits)
	assert.Equal(t, uint64(1), snap.CacheMisses)
	assert.InDelta(t, 0.5, snap.CacheHitRatio, 1e-9)
}

func TestCacheServiceErrors(t *testing.T) {
	repo := newFakeCacheRepo()
	repo.getErr = errors.New("i/o timeout")
	repo.delErr = errors.New("READONLY")
	svc := NewCacheService(repo, nil, 0, nil, true)
	ctx := context.Background()

	var out int
	hit, err := svc.Get(ctx, "stats:k", &out)
	assert.Error(t, err)
	assert.False(t, hit)
	assert.Error(t, svc.InvalidateStats(ctx))
}
