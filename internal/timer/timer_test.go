package timer

import (
	"testing"
	"time"
)

func TestCountdownExpires(t *testing.T) {
	ticks := make(chan int, 8)
	tm := New(1, WithTick(func(r int) { ticks <- r }))
	tm.Start()

	deadline := time.After(3 * time.Second)
	for !tm.TimeUp() {
		select {
		case <-deadline:
			t.Fatal("timer did not expire")
		case <-time.After(50 * time.Millisecond):
		}
	}

	if got := <-ticks; got != 0 {
		t.Errorf("final tick = %d, want 0", got)
	}
	if tm.Remaining() > 0 {
		t.Errorf("remaining = %d after expiry", tm.Remaining())
	}
}

func TestStopIsIdempotent(t *testing.T) {
	tm := New(60)
	tm.Start()
	tm.Stop()
	tm.Stop() // second call must not panic or block

	remaining := tm.Remaining()
	if remaining < 58 || remaining > 60 {
		t.Errorf("remaining = %d, want close to 60 after early stop", remaining)
	}
	if tm.TimeUp() {
		t.Error("stopped timer must not report time up")
	}
}

func TestStopAfterExpiry(t *testing.T) {
	tm := New(1)
	tm.Start()

	deadline := time.After(3 * time.Second)
	for !tm.TimeUp() {
		select {
		case <-deadline:
			t.Fatal("timer did not expire")
		case <-time.After(50 * time.Millisecond):
		}
	}

	tm.Stop() // must return promptly even though the goroutine exited
	if !tm.TimeUp() {
		t.Error("expiry flag must survive stop")
	}
}

func TestElapsed(t *testing.T) {
	tm := New(10)
	if tm.Elapsed() != 0 {
		t.Errorf("elapsed = %d before start, want 0", tm.Elapsed())
	}
	if tm.Remaining() != 10 {
		t.Errorf("remaining = %d before start, want 10", tm.Remaining())
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{125, "02:05"},
		{60, "01:00"},
		{0, "00:00"},
		{3599, "59:59"},
	}
	for _, tt := range tests {
		tm := New(tt.seconds)
		if got := tm.FormatRemaining(); got != tt.want {
			t.Errorf("FormatRemaining(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
