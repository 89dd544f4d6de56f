package watch

import (
	"sync"
	"time"
)

// DefaultQuantum is the minimum spacing between handled changes.
const DefaultQuantum = 100 * time.Millisecond

// Debouncer drops signals that arrive too soon after the last accepted one.
// It is safe for concurrent use.
type Debouncer struct {
	mu      sync.Mutex
	quantum time.Duration
	last    time.Time
	now     func() time.Time
}

// NewDebouncer returns a Debouncer with the given quantum. A non-positive
// quantum selects DefaultQuantum.
func NewDebouncer(quantum time.Duration) *Debouncer {
	if quantum <= 0 {
		quantum = DefaultQuantum
	}
	return &Debouncer{quantum: quantum, now: time.Now}
}

// Allow reports whether a signal arriving now should be handled, and if so
// records now as the last handled time.
func (d *Debouncer) Allow() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if !d.last.IsZero() && now.Sub(d.last) < d.quantum {
		return false
	}
	d.last = now
	return true
}

// Last returns the time of the last handled signal, or the zero time.
func (d *Debouncer) Last() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}
