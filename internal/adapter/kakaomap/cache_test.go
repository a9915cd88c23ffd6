package kakaomap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanbit-labs/korea-sensor-etl/internal/domain"
	"github.com/hanbit-labs/korea-sensor-etl/internal/observability"
)

// --- mock for cache tests ---

type countingResolver struct {
	calls  int
	result domain.RegionInfo
	err    error
}

func (m *countingResolver) ResolveRegion(_ context.Context, _, _ float64) (domain.RegionInfo, error) {
	m.calls++
	return m.result, m.err
}

// --- CachedResolver tests ---

func TestCachedResolver_CacheHit(t *testing.T) {
	inner := &countingResolver{
		result: domain.RegionInfo{Name: "서울특별시 강남구 역삼동", Sido: "서울특별시", Sigungu: "강남구"},
	}
	cached := NewCachedResolver(inner, 10, observability.NewMetricsForTesting())

	r1, err := cached.ResolveRegion(context.Background(), 506190, 1112080)
	require.NoError(t, err)
	assert.Equal(t, "강남구", r1.Sigungu)

	r2, err := cached.ResolveRegion(context.Background(), 506190, 1112080)
	require.NoError(t, err)
	assert.Equal(t, "강남구", r2.Sigungu)

	assert.Equal(t, 1, inner.calls, "should only call inner once")
}

func TestCachedResolver_SubMetreCoordinatesShareEntry(t *testing.T) {
	inner := &countingResolver{result: domain.RegionInfo{Name: "서울특별시 광진구 화양동"}}
	cached := NewCachedResolver(inner, 10, nil)

	_, _ = cached.ResolveRegion(context.Background(), 515290.2, 1113698.7)
	_, _ = cached.ResolveRegion(context.Background(), 515290.4, 1113698.9)

	assert.Equal(t, 1, inner.calls)
}

func TestCachedResolver_DifferentKeysMiss(t *testing.T) {
	inner := &countingResolver{result: domain.RegionInfo{Name: "somewhere"}}
	cached := NewCachedResolver(inner, 10, nil)

	_, _ = cached.ResolveRegion(context.Background(), 506190, 1112080)
	_, _ = cached.ResolveRegion(context.Background(), 515290, 1113698)

	assert.Equal(t, 2, inner.calls)
}

func TestCachedResolver_EmptyResultNotCached(t *testing.T) {
	inner := &countingResolver{}
	cached := NewCachedResolver(inner, 10, nil)

	_, err := cached.ResolveRegion(context.Background(), 1, 1)
	require.NoError(t, err)
	_, err = cached.ResolveRegion(context.Background(), 1, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls, "empty results should be retried")
}

func TestCachedResolver_ErrorNotCached(t *testing.T) {
	inner := &countingResolver{err: errors.New("upstream down")}
	cached := NewCachedResolver(inner, 10, nil)

	_, err := cached.ResolveRegion(context.Background(), 506190, 1112080)
	require.Error(t, err)
	_, err = cached.ResolveRegion(context.Background(), 506190, 1112080)
	require.Error(t, err)

	assert.Equal(t, 2, inner.calls)
}

// --- LRU cache unit tests ---

func TestLRUCache_BasicGetPut(t *testing.T) {
	c := newLRUCache(3)

	c.put("a", domain.RegionInfo{Name: "A"})
	c.put("b", domain.RegionInfo{Name: "B"})

	region, ok := c.get("a")
	assert.True(t, ok)
	assert.Equal(t, "A", region.Name)

	_, ok = c.get("missing")
	assert.False(t, ok)
}

func TestLRUCache_Eviction(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", domain.RegionInfo{Name: "A"})
	c.put("b", domain.RegionInfo{Name: "B"})
	c.put("c", domain.RegionInfo{Name: "C"}) // evicts "a"

	_, ok := c.get("a")
	assert.False(t, ok, "a should have been evicted")

	region, ok := c.get("b")
	assert.True(t, ok)
	assert.Equal(t, "B", region.Name)

	region, ok = c.get("c")
	assert.True(t, ok)
	assert.Equal(t, "C", region.Name)
}

func TestLRUCache_AccessPromotesEntry(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", domain.RegionInfo{Name: "A"})
	c.put("b", domain.RegionInfo{Name: "B"})

	// Access "a" to promote it
	c.get("a")

	c.put("c", domain.RegionInfo{Name: "C"})

	_, ok := c.get("a")
	assert.True(t, ok, "a was accessed recently, should not be evicted")

	_, ok = c.get("b")
	assert.False(t, ok, "b should have been evicted")
}

func TestLRUCache_UpdateExisting(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", domain.RegionInfo{Name: "A1"})
	c.put("a", domain.RegionInfo{Name: "A2"})

	region, ok := c.get("a")
	assert.True(t, ok)
	assert.Equal(t, "A2", region.Name)
}
