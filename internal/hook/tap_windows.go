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

// Tap owns the process's single WH_KEYBOARD_LL hook. The OS invokes the
// callback on the hook thread under a tight response deadline, so the
// callback only samples key state, consults the decision machine, and
// hands the intent off through a buffered channel. It never blocks.
type Tap struct {
	intents chan Intent

	state        atomic.Int32
	settingsOpen atomic.Bool
	bindings     atomic.Value // Bindings

	threadID  atomic.Uint32
	dropped   atomic.Uint64
	closeOnce sync.Once
	done      chan struct{}
}

// NewTap installs the low-level keyboard hook on a dedicated locked OS
// thread. Installation failure is non-fatal for the application: callers
// fall back to plain hotkey registration.
func NewTap(b Bindings) (*Tap, error) {
	t := &Tap{
		intents: make(chan Intent, 64),
		done:    make(chan struct{}),
	}
	t.bindings.Store(b)

	installed := make(chan error, 1)
	go t.run(installed)
	if err := <-installed; err != nil {
		events.Hook.InstallFailed(err)
		return nil, err
	}
	events.Hook.Installed()
	return t, nil
}

// Intents returns the semantic event stream.
func (t *Tap) Intents() <-chan Intent {
	return t.intents
}

// SetState publishes the orchestrator's input session state to the hook
// thread.
func (t *Tap) SetState(s State) {
	t.state.Store(int32(s))
}

// SetSettingsOpen publishes whether a secondary modal surface is showing.
func (t *Tap) SetSettingsOpen(open bool) {
	t.settingsOpen.Store(open)
}

// SetBindings swaps the activation gesture, e.g. after a settings change.
func (t *Tap) SetBindings(b Bindings) {
	t.bindings.Store(b)
}

// Close removes the hook. Idempotent.
func (t *Tap) Close() error {
	t.closeOnce.Do(func() {
		if tid := t.threadID.Load(); tid != 0 {
			winapi.PostThreadQuit(tid)
		}
		<-t.done
		if n := t.dropped.Load(); n > 0 {
			events.Hook.Dropped(n)
		}
		events.Hook.Removed()
	})
	return nil
}

// run hosts the hook for the process lifetime. Low-level hooks deliver
// through the installing thread's message queue, so the thread stays locked
// and pumping until Close posts WM_QUIT.
func (t *Tap) run(installed chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(t.done)

	t.threadID.Store(winapi.CurrentThreadID())
	hook, err := winapi.SetKeyboardHook(t.onKey)
	if err != nil {
		installed <- fmt.Errorf("keyboard hook: %w", err)
		return
	}
	installed <- nil

	var msg winapi.Msg
	for winapi.GetMessage(&msg) {
	}
	winapi.UnhookKeyboardHook(hook)
}

// onKey runs on the hook thread. Return true to swallow the keystroke
// before any other application, including the OS's own switcher, sees it.
func (t *Tap) onKey(_ int, wparam uintptr, ks *winapi.KBDLLHookStruct) bool {
	var down bool
	switch wparam {
	case winapi.WMKeyDown, winapi.WMSysKeyDown:
		down = true
	case winapi.WMKeyUp, winapi.WMSysKeyUp:
		down = false
	default:
		return false
	}

	b := t.bindings.Load().(Bindings)
	ev := KeyEvent{Key: normalizeKey(Key(ks.VKCode)), Down: down}
	// Physical modifier state sampled directly; the event stream can lag it
	// under rapid input.
	mods := Modifiers{
		Activation: winapi.KeyDown(int(b.Activation)),
		Secondary:  winapi.KeyDown(int(b.Secondary)),
	}

	d := Decide(State(t.state.Load()), b, ev, mods, t.settingsOpen.Load())
	if d.Intent != None {
		select {
		case t.intents <- d.Intent:
		default:
			// Dropping beats stalling the hook thread past its deadline.
			// No logging here either: the callback must return promptly or
			// the OS force-removes the hook.
			t.dropped.Add(1)
		}
	}
	return d.Swallow
}

// Dropped returns the number of intents discarded because the channel was
// full. Consumers trace it from their own goroutine.
func (t *Tap) Dropped() uint64 {
	return t.dropped.Load()
}

// normalizeKey folds left/right modifier variants onto their generic codes;
// the low-level hook always reports the sided ones.
func normalizeKey(k Key) Key {
	switch k {
	case 0xA0, 0xA1: // VK_LSHIFT, VK_RSHIFT
		return KeyShift
	case 0xA4, 0xA5: // VK_LMENU, VK_RMENU
		return KeyAlt
	}
	return k
}
