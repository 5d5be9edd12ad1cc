//go:build windows

package hook

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/windrift/windrift/internal/logging/events"
	"github.com/windrift/windrift/internal/winapi"
)

const hotkeyID = 1

// Hotkey is the secondary, non-intercepting registration path used when
// the low-level hook cannot install. It only raises OpenRequested; without
// a hook there is no hold-gesture or key swallowing, so sessions opened
// this way are committed explicitly by the presenter.
type Hotkey struct {
	intents  chan Intent
	threadID atomic.Uint32

	mu     sync.Mutex
	done   chan struct{}
	closed bool
}

// NewHotkey registers the activation combo as a plain global hotkey.
func NewHotkey(b Bindings) (*Hotkey, error) {
	h := &Hotkey{
		intents: make(chan Intent, 4),
	}
	if err := h.start(b); err != nil {
		events.Hook.FallbackHotkey(false)
		return nil, err
	}
	events.Hook.FallbackHotkey(true)
	return h, nil
}

// Intents returns the semantic event stream.
func (h *Hotkey) Intents() <-chan Intent {
	return h.intents
}

// SetState is a no-op: a plain hotkey sees no other keys.
func (h *Hotkey) SetState(State) {}

// SetSettingsOpen is a no-op for the same reason.
func (h *Hotkey) SetSettingsOpen(bool) {}

// SetBindings re-registers the hotkey under the new combo. On failure the
// old registration is already gone; the event is traced and the switcher
// stays reachable through presenter commands.
func (h *Hotkey) SetBindings(b Bindings) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.stopLocked()
	if err := h.start(b); err != nil {
		events.Hook.FallbackHotkey(false)
	}
}

// Close unregisters the hotkey. Idempotent.
func (h *Hotkey) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	h.stopLocked()
	return nil
}

func (h *Hotkey) stopLocked() {
	if h.done == nil {
		return
	}
	if tid := h.threadID.Load(); tid != 0 {
		winapi.PostThreadQuit(tid)
	}
	<-h.done
	h.done = nil
}

func (h *Hotkey) start(b Bindings) error {
	done := make(chan struct{})
	registered := make(chan error, 1)
	go h.run(b, registered, done)
	if err := <-registered; err != nil {
		<-done
		return err
	}
	h.done = done
	return nil
}

func (h *Hotkey) run(b Bindings, registered chan<- error, done chan struct{}) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(done)

	h.threadID.Store(winapi.CurrentThreadID())
	if err := winapi.RegisterHotKey(hotkeyID, modifierFlag(b.Activation)|winapi.ModNoRepeat, uint32(b.Trigger)); err != nil {
		registered <- fmt.Errorf("register hotkey: %w", err)
		return
	}
	registered <- nil
	defer winapi.UnregisterHotKey(hotkeyID)

	var msg winapi.Msg
	for winapi.GetMessage(&msg) {
		if msg.Message != winapi.WMHotkey || msg.WParam != hotkeyID {
			continue
		}
		select {
		case h.intents <- OpenRequested:
		default:
		}
	}
}

func modifierFlag(k Key) uint32 {
	switch k {
	case KeyShift:
		return 0x0004 // MOD_SHIFT
	case 0x11: // VK_CONTROL
		return 0x0002 // MOD_CONTROL
	default:
		return winapi.ModAlt
	}
}
