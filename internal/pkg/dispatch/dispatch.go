// Package dispatch serializes mutations per record. At most one mutation
// may be in flight for a given key; overlapping attempts are refused
// rather than queued.
package dispatch

import (
	"errors"
	"sync"
)

// ErrInFlight is returned when a mutation is attempted for a key that
// already has one running.
var ErrInFlight = errors.New("a mutation is already in flight for this record")

// Guard tracks in-flight mutation keys.
type Guard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

// NewGuard creates a guard with no in-flight mutations.
func NewGuard() *Guard {
	return &Guard{
		active: make(map[string]struct{}),
	}
}

// Do runs fn if no mutation is in flight for key, returning ErrInFlight
// otherwise. The key is released when fn returns, whether it succeeded
// or not.
func (g *Guard) Do(key string, fn func() error) error {
	g.mu.Lock()
	if _, busy := g.active[key]; busy {
		g.mu.Unlock()
		return ErrInFlight
	}
	g.active[key] = struct{}{}
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		delete(g.active, key)
		g.mu.Unlock()
	}()

	return fn()
}

// InFlight reports whether a mutation is currently running for key.
func (g *Guard) InFlight(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.active[key]
	return busy
}
