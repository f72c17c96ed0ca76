// Package confirm implements a two-state confirmation gate for destructive
// operations. A requested action sits pending until it is either confirmed,
// which dispatches it exactly once, or cancelled, which discards it.
package confirm

import (
	"errors"
	"sync"
)

// State is the gate's current phase.
type State int

const (
	// Idle means no action is awaiting confirmation.
	Idle State = iota
	// PendingConfirmation means an action has been requested and is
	// waiting for Confirm or Cancel.
	PendingConfirmation
)

var (
	// ErrAlreadyPending is returned by Request while another action awaits
	// confirmation.
	ErrAlreadyPending = errors.New("another action is already awaiting confirmation")
	// ErrNothingPending is returned by Confirm or Cancel when no action is
	// pending.
	ErrNothingPending = errors.New("no action is awaiting confirmation")
)

// Gate holds at most one pending action. The gate returns to Idle after
// every Confirm or Cancel, regardless of whether the action succeeded.
type Gate struct {
	mu     sync.Mutex
	state  State
	action func() error
}

// NewGate creates an idle gate.
func NewGate() *Gate {
	return &Gate{state: Idle}
}

// Request stages action for confirmation.
func (g *Gate) Request(action func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == PendingConfirmation {
		return ErrAlreadyPending
	}
	g.state = PendingConfirmation
	g.action = action
	return nil
}

// Cancel discards the pending action without running it.
func (g *Gate) Cancel() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != PendingConfirmation {
		return ErrNothingPending
	}
	g.state = Idle
	g.action = nil
	return nil
}

// Confirm dispatches the pending action exactly once and returns its error.
// The gate is back to Idle before the action runs, so a failed action never
// leaves a stale pending state behind.
func (g *Gate) Confirm() error {
	g.mu.Lock()
	if g.state != PendingConfirmation {
		g.mu.Unlock()
		return ErrNothingPending
	}
	action := g.action
	g.state = Idle
	g.action = nil
	g.mu.Unlock()

	return action()
}

// State returns the gate's current phase.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}
