package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAside_MissFetchesAndStores(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	var got []string
	fetch := func() error {
		fetches++
		got = []string{"a", "b"}
		return nil
	}

	require.NoError(t, Aside(ctx, "test:key", &got, time.Minute, fetch))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.True(t, mr.Exists("test:key"))

	// Second call is served from the cache; fetch must not run again.
	var again []string
	require.NoError(t, Aside(ctx, "test:key", &again, time.Minute, fetch))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, []string{"a", "b"}, again)
}

func TestAside_TTLExpiryRefetches(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	var v int
	fetch := func() error {
		fetches++
		v = fetches
		return nil
	}

	require.NoError(t, Aside(ctx, "ttl:key", &v, RankingTTL, fetch))
	assert.Equal(t, RankingTTL, mr.TTL("ttl:key"))

	mr.FastForward(RankingTTL + time.Second)
	require.NoError(t, Aside(ctx, "ttl:key", &v, RankingTTL, fetch))
	assert.Equal(t, 2, fetches)
}

func TestAside_ZeroTTLPersists(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	var v string
	require.NoError(t, Aside(ctx, AcademicsCatalogKey, &v, CatalogTTL, func() error {
		v = "catalog"
		return nil
	}))

	assert.True(t, mr.Exists(AcademicsCatalogKey))
	assert.Zero(t, mr.TTL(AcademicsCatalogKey))

	mr.FastForward(24 * time.Hour)
	assert.True(t, mr.Exists(AcademicsCatalogKey))
}

func TestAside_NoClientDegradesToFetch(t *testing.T) {
	SetClient(nil)

	fetches := 0
	var v int
	fetch := func() error {
		fetches++
		v = 7
		return nil
	}

	require.NoError(t, Aside(context.Background(), "nocache:key", &v, time.Minute, fetch))
	require.NoError(t, Aside(context.Background(), "nocache:key", &v, time.Minute, fetch))
	assert.Equal(t, 2, fetches)
	assert.Equal(t, 7, v)
}

func TestKeyBuilders(t *testing.T) {
	assert.Equal(t, "ranking:course", RankingKey("course"))
	assert.Equal(t, "academics:course:3", CollegesByCourseKey(3))
	assert.Equal(t, "academics:exam:9", AcceptingByExamKey(9))
}
