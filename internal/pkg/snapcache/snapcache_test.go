package snapcache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCachesUntilInvalidated(t *testing.T) {
	cache := New()
	ctx := context.Background()

	var loads int32
	load := func(ctx context.Context) ([]string, error) {
		atomic.AddInt32(&loads, 1)
		return []string{"a", "b"}, nil
	}

	first, err := Get(ctx, cache, "list", load)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, first)

	second, err := Get(ctx, cache, "list", load)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&loads), "cached read must not reload")

	cache.Invalidate("list")
	assert.False(t, cache.Contains("list"))

	_, err = Get(ctx, cache, "list", load)
	assert.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&loads), "invalidated key must reload")
}

func TestGetLoaderErrorNotCached(t *testing.T) {
	cache := New()
	ctx := context.Background()
	boom := errors.New("load failed")

	_, err := cache.Get(ctx, "list", func(ctx context.Context) (interface{}, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, cache.Contains("list"))

	value, err := cache.Get(ctx, "list", func(ctx context.Context) (interface{}, error) {
		return "recovered", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "recovered", value)
}

func TestGetCoalescesConcurrentLoads(t *testing.T) {
	cache := New()
	ctx := context.Background()

	var loads int32
	release := make(chan struct{})
	load := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&loads, 1)
		<-release
		return "snapshot", nil
	}

	const readers = 8
	var wg sync.WaitGroup
	results := make([]interface{}, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			value, err := cache.Get(ctx, "list", load)
			assert.NoError(t, err)
			results[i] = value
		}(i)
	}

	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&loads), "concurrent reads must share one load")
	for _, value := range results {
		assert.Equal(t, "snapshot", value)
	}
}

func TestInvalidateDuringLoadDiscardsStaleResult(t *testing.T) {
	cache := New()
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		value, err := cache.Get(ctx, "list", func(ctx context.Context) (interface{}, error) {
			close(started)
			<-release
			return "stale", nil
		})
		// The caller that requested the load still gets the loaded value.
		assert.NoError(t, err)
		assert.Equal(t, "stale", value)
	}()

	<-started
	cache.Invalidate("list")
	close(release)
	<-done

	// The invalidated load must not have been stored.
	assert.False(t, cache.Contains("list"))

	value, err := cache.Get(ctx, "list", func(ctx context.Context) (interface{}, error) {
		return "fresh", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "fresh", value)
}

func TestInvalidatePrefix(t *testing.T) {
	cache := New()
	ctx := context.Background()

	for _, key := range []string{"credits:pending", "credits:approved", "availability"} {
		key := key
		_, err := cache.Get(ctx, key, func(ctx context.Context) (interface{}, error) {
			return key, nil
		})
		assert.NoError(t, err)
	}

	cache.InvalidatePrefix("credits:")

	assert.False(t, cache.Contains("credits:pending"))
	assert.False(t, cache.Contains("credits:approved"))
	assert.True(t, cache.Contains("availability"))
}
