// Package debounce implements a per-key rate limiter.
//
// A [Debouncer] remembers when each key (typically a manifest path) was last
// allowed through. A call for a key inside its window is rejected and leaves
// the record untouched, so a burst of edits produces one accepted event at
// the start of the burst. Rejected events are dropped, not queued.
//
//	d := debounce.New(500 * time.Millisecond)
//	if !d.ShouldProceed(path) {
//	    return // a pass for this file ran recently
//	}
package debounce

import (
	"sync"
	"time"
)

// DefaultWindow is the window used when none is configured.
const DefaultWindow = 500 * time.Millisecond

// Debouncer is safe for concurrent use. The zero value is not usable; call [New].
type Debouncer struct {
	mu     sync.Mutex
	window time.Duration
	last   map[string]time.Time
	now    func() time.Time
}

// New creates a Debouncer with the given window. A non-positive window
// falls back to [DefaultWindow].
func New(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer{
		window: window,
		last:   make(map[string]time.Time),
		now:    time.Now,
	}
}

// WithClock replaces the time source. Intended for tests.
func (d *Debouncer) WithClock(now func() time.Time) *Debouncer {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.now = now
	return d
}

// Window returns the configured window.
func (d *Debouncer) Window() time.Duration { return d.window }

// ShouldProceed reports whether an action for key may run now. On true the
// key's timestamp is updated; on false nothing changes.
func (d *Debouncer) ShouldProceed(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if last, ok := d.last[key]; ok && now.Sub(last) < d.window {
		return false
	}
	d.last[key] = now
	return true
}

// Reset forgets key so its next action proceeds.
func (d *Debouncer) Reset(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.last, key)
}

// Clear forgets every key.
func (d *Debouncer) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	clear(d.last)
}

// IsDebounced reports whether key is currently inside its window.
func (d *Debouncer) IsDebounced(key string) bool {
	_, ok := d.Remaining(key)
	return ok
}

// Remaining returns how long key stays debounced. The boolean is false when
// the key is unknown or its window has passed.
func (d *Debouncer) Remaining(key string) (time.Duration, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	last, ok := d.last[key]
	if !ok {
		return 0, false
	}
	elapsed := d.now().Sub(last)
	if elapsed >= d.window {
		return 0, false
	}
	return d.window - elapsed, true
}

// Len returns the number of tracked keys, including expired ones.
func (d *Debouncer) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.last)
}
