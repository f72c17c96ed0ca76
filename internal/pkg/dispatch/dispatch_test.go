package dispatch

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoRefusesOverlappingMutation(t *testing.T) {
	guard := NewGuard()

	started := make(chan struct{})
	release := make(chan struct{})

	done := make(chan error, 1)
	go func() {
		done <- guard.Do("credit:1", func() error {
			close(started)
			<-release
			return nil
		})
	}()

	<-started
	assert.True(t, guard.InFlight("credit:1"))
	err := guard.Do("credit:1", func() error {
		t.Error("overlapping mutation must not run")
		return nil
	})
	assert.ErrorIs(t, err, ErrInFlight)

	close(release)
	assert.NoError(t, <-done)
	assert.False(t, guard.InFlight("credit:1"))
}

func TestDoReleasesKeyAfterFailure(t *testing.T) {
	guard := NewGuard()
	boom := errors.New("mutation failed")

	err := guard.Do("credit:1", func() error {
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// The key must be usable again after a failed mutation.
	err = guard.Do("credit:1", func() error {
		return nil
	})
	assert.NoError(t, err)
}

func TestDoAllowsDistinctKeysConcurrently(t *testing.T) {
	guard := NewGuard()

	release := make(chan struct{})
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, key := range []string{"credit:1", "credit:2"} {
		wg.Add(1)
		go func(i int, key string) {
			defer wg.Done()
			errs[i] = guard.Do(key, func() error {
				<-release
				return nil
			})
		}(i, key)
	}

	close(release)
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
}
