package window

import (
	"context"
	"sync"
	"time"
)

// FocusEvent reports the foreground window observed by a poll.
type FocusEvent struct {
	Foreground Handle
}

// FocusWatcher polls the foreground window at a fixed interval and publishes
// an event whenever it changes. Used for hide-on-focus-loss: the
// orchestrator cancels the session when focus moves somewhere it does not
// own.
type FocusWatcher struct {
	fc       FocusController
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan FocusEvent
	wg     sync.WaitGroup
}

// NewFocusWatcher creates a watcher polling fc every interval.
func NewFocusWatcher(fc FocusController, interval time.Duration) *FocusWatcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &FocusWatcher{
		fc:       fc,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan FocusEvent, 16),
	}
	w.wg.Add(1)
	go w.poll()
	go func() {
		w.wg.Wait()
		close(w.events)
	}()
	return w
}

// Events returns the change events channel. Closed after Stop once the
// poller drains.
func (w *FocusWatcher) Events() <-chan FocusEvent {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current tick.
func (w *FocusWatcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *FocusWatcher) Wait() {
	w.wg.Wait()
}

func (w *FocusWatcher) poll() {
	defer w.wg.Done()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	last := w.fc.ForegroundWindow()
	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			fg := w.fc.ForegroundWindow()
			if fg == last {
				continue
			}
			last = fg
			select {
			case <-w.ctx.Done():
				return
			case w.events <- FocusEvent{Foreground: fg}:
			default:
				// Drop rather than stall the poller; the next change
				// re-publishes the latest state anyway.
			}
		}
	}
}
