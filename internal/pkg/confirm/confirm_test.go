package confirm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmDispatchesOnceAndReturnsToIdle(t *testing.T) {
	gate := NewGate()

	calls := 0
	err := gate.Request(func() error {
		calls++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, PendingConfirmation, gate.State())

	assert.NoError(t, gate.Confirm())
	assert.Equal(t, 1, calls)
	assert.Equal(t, Idle, gate.State())

	// A second confirm has nothing to dispatch.
	assert.ErrorIs(t, gate.Confirm(), ErrNothingPending)
	assert.Equal(t, 1, calls)
}

func TestCancelDiscardsWithoutRunning(t *testing.T) {
	gate := NewGate()

	called := false
	assert.NoError(t, gate.Request(func() error {
		called = true
		return nil
	}))

	assert.NoError(t, gate.Cancel())
	assert.Equal(t, Idle, gate.State())
	assert.False(t, called, "cancelled action must not run")

	assert.ErrorIs(t, gate.Cancel(), ErrNothingPending)
}

func TestConfirmIdleAfterFailedAction(t *testing.T) {
	gate := NewGate()
	boom := errors.New("action failed")

	assert.NoError(t, gate.Request(func() error {
		return boom
	}))

	err := gate.Confirm()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, Idle, gate.State(), "gate must be idle even when the action fails")
}

func TestRequestRefusedWhilePending(t *testing.T) {
	gate := NewGate()

	assert.NoError(t, gate.Request(func() error { return nil }))
	err := gate.Request(func() error { return nil })
	assert.ErrorIs(t, err, ErrAlreadyPending)

	assert.NoError(t, gate.Cancel())
	assert.NoError(t, gate.Request(func() error { return nil }))
}
