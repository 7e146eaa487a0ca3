// Package timer provides the countdown used by timed sections. The
// timer never interrupts a blocking read; callers poll TimeUp between
// questions.
package timer

import (
	"fmt"
	"sync"
	"time"
)

// Timer counts down once per second in a background goroutine.
type Timer struct {
	totalSeconds int

	mu        sync.Mutex
	remaining int

	timeUp chan struct{}
	stop   chan struct{}
	done   chan struct{}

	stopOnce   sync.Once
	timeUpOnce sync.Once

	onTick    func(remaining int)
	onWarning func(remaining int)
}

// Option configures a Timer.
type Option func(*Timer)

// WithTick registers a callback invoked after every one-second decrement.
func WithTick(fn func(remaining int)) Option {
	return func(t *Timer) { t.onTick = fn }
}

// WithWarning registers a callback invoked once at five minutes
// remaining and once at one minute remaining.
func WithWarning(fn func(remaining int)) Option {
	return func(t *Timer) { t.onWarning = fn }
}

// New creates a timer for totalSeconds. Call Start to begin counting.
func New(totalSeconds int, opts ...Option) *Timer {
	t := &Timer{
		totalSeconds: totalSeconds,
		remaining:    totalSeconds,
		timeUp:       make(chan struct{}),
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start launches the countdown goroutine.
func (t *Timer) Start() {
	go t.run()
}

func (t *Timer) run() {
	defer close(t.done)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
		}

		t.mu.Lock()
		t.remaining--
		current := t.remaining
		t.mu.Unlock()

		if t.onTick != nil {
			t.onTick(current)
		}
		if t.onWarning != nil && (current == 300 || current == 60) {
			t.onWarning(current)
		}

		if current <= 0 {
			t.timeUpOnce.Do(func() { close(t.timeUp) })
			return
		}
	}
}

// Stop halts the countdown. Safe to call more than once, and safe to
// call after the timer has already expired.
func (t *Timer) Stop() {
	t.stopOnce.Do(func() { close(t.stop) })
	select {
	case <-t.done:
	case <-time.After(2 * time.Second):
	}
}

// TimeUp reports whether the countdown reached zero.
func (t *Timer) TimeUp() bool {
	select {
	case <-t.timeUp:
		return true
	default:
		return false
	}
}

// Remaining returns the seconds left.
func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// Elapsed returns the seconds consumed so far.
func (t *Timer) Elapsed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totalSeconds - t.remaining
}

// FormatRemaining renders the remaining time as MM:SS.
func (t *Timer) FormatRemaining() string {
	r := t.Remaining()
	if r < 0 {
		r = 0
	}
	return fmt.Sprintf("%02d:%02d", r/60, r%60)
}
