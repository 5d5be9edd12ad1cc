package window

import (
	"sync/atomic"
	"testing"
	"time"
)

// pollFocus overrides the scripted fake with an atomically swappable
// foreground so the watcher goroutine can read it race-free.
type pollFocus struct {
	fakeFocus
	foreground atomic.Uintptr
}

func (p *pollFocus) ForegroundWindow() Handle {
	return Handle(p.foreground.Load())
}

func TestFocusWatcherReportsChanges(t *testing.T) {
	f := &pollFocus{}
	f.foreground.Store(1)

	w := NewFocusWatcher(f, 2*time.Millisecond)
	defer w.Stop()

	// Let the poller take its baseline before the change.
	time.Sleep(20 * time.Millisecond)
	f.foreground.Store(2)

	select {
	case ev := <-w.Events():
		if ev.Foreground != 2 {
			t.Fatalf("expected foreground 2, got %v", ev.Foreground)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no focus event observed")
	}
}

func TestFocusWatcherStopClosesEvents(t *testing.T) {
	f := &pollFocus{}
	w := NewFocusWatcher(f, 2*time.Millisecond)

	w.Stop()
	w.Wait()

	select {
	case _, ok := <-w.Events():
		if ok {
			return // a buffered event before stop is fine; channel drains to close
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("events channel never closed")
	}
}
