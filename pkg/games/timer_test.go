package games

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestPhaseTimerFires(t *testing.T) {
	timer := NewPhaseTimer()
	fired := make(chan struct{})

	timer.Start(10*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("Expected expiry callback to fire")
	}
}

func TestPhaseTimerCancelPreventsExpiry(t *testing.T) {
	timer := NewPhaseTimer()
	var fired atomic.Bool

	timer.Start(20*time.Millisecond, func() { fired.Store(true) })
	timer.Cancel()

	time.Sleep(60 * time.Millisecond)
	if fired.Load() {
		t.Error("Cancelled phase must not fire its expiry callback")
	}
}

func TestPhaseTimerRestartCancelsPreviousPhase(t *testing.T) {
	timer := NewPhaseTimer()
	var first, second atomic.Bool

	timer.Start(20*time.Millisecond, func() { first.Store(true) })
	timer.Start(40*time.Millisecond, func() { second.Store(true) })

	time.Sleep(100 * time.Millisecond)
	if first.Load() {
		t.Error("Restart must cancel the previous phase")
	}
	if !second.Load() {
		t.Error("Restarted phase should fire")
	}
}

func TestPhaseTimerCancelIsIdempotent(t *testing.T) {
	timer := NewPhaseTimer()
	timer.Cancel()
	timer.Cancel()

	timer.Start(10*time.Millisecond, func() {})
	timer.Cancel()
	timer.Cancel()
}
