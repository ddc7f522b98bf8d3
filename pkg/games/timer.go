package games

import (
	"sync"
	"time"
)

// PhaseTimer runs at most one timed phase at a time. Cancel guarantees the
// expiry callback will not fire afterwards, so a stale timer can never
// touch state that has already moved on. Every exit path from a timed
// phase (answer, timeout, abandonment) must call Cancel.
type PhaseTimer struct {
	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

func NewPhaseTimer() *PhaseTimer {
	return &PhaseTimer{}
}

// Start arms the timer for one phase, cancelling any previous phase first.
// The generation check means a callback from a superseded phase is dropped
// even if it was already in flight when the new phase started.
func (t *PhaseTimer) Start(d time.Duration, onExpire func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.gen++
	gen := t.gen
	t.timer = time.AfterFunc(d, func() {
		t.mu.Lock()
		live := gen == t.gen
		t.mu.Unlock()
		if live {
			onExpire()
		}
	})
}

// Cancel stops the armed phase. Safe to call repeatedly and when idle.
func (t *PhaseTimer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
