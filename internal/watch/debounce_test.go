package watch

import (
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually advanced clock for Debouncer tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestDebouncer(quantum time.Duration) (*Debouncer, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	d := NewDebouncer(quantum)
	d.now = clock.Now
	return d, clock
}

func TestDebouncer_Allow(t *testing.T) {
	d, clock := newTestDebouncer(100 * time.Millisecond)

	if !d.Allow() {
		t.Fatal("first signal should be allowed")
	}
	first := d.Last()

	clock.Advance(50 * time.Millisecond)
	if d.Allow() {
		t.Error("signal 50ms after the last handled one should be dropped")
	}
	if !d.Last().Equal(first) {
		t.Error("dropped signal must not move the last handled time")
	}

	clock.Advance(50 * time.Millisecond)
	if !d.Allow() {
		t.Error("signal a full quantum after the last handled one should be allowed")
	}

	// A steady stream below the quantum is measured from the last handled
	// signal, not the last seen one.
	for i := 0; i < 3; i++ {
		clock.Advance(30 * time.Millisecond)
		d.Allow()
	}
	clock.Advance(30 * time.Millisecond)
	if !d.Allow() {
		t.Error("signal 120ms after the last handled one should be allowed")
	}
}

func TestNewDebouncer_DefaultQuantum(t *testing.T) {
	d := NewDebouncer(0)
	if d.quantum != DefaultQuantum {
		t.Errorf("quantum = %v, want %v", d.quantum, DefaultQuantum)
	}
}

func TestDebouncer_Concurrent(t *testing.T) {
	d, _ := newTestDebouncer(time.Second)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if d.Allow() {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// The clock never moves, so exactly one caller wins.
	if allowed != 1 {
		t.Errorf("allowed = %d, want 1", allowed)
	}
}
