package window

import "github.com/windrift/windrift/internal/logging/events"

// Activator forces a window to the foreground despite the OS's
// focus-stealing protections. Rungs are cumulative: each escalation is
// attempted in order and skipped only once the target is confirmed
// foreground. Activate never returns an error; a fully failed ladder just
// leaves focus where it was.
type Activator struct {
	fc FocusController
}

// NewActivator wires an activator to a platform focus controller.
func NewActivator(fc FocusController) *Activator {
	return &Activator{fc: fc}
}

// Activate brings h to the foreground and restores its pre-minimize show
// state. Safe to call with a stale handle.
func (a *Activator) Activate(w *Window) {
	if w == nil {
		return
	}
	h := w.Handle
	events.Activate.Begin(uintptr(h), w.Title)
	defer func() {
		if v := recover(); v != nil {
			events.Activate.Recovered(v)
			// Simplified fallback: un-minimize and hand off to the
			// platform's own switch primitive. A window that is not
			// minimized gets no show command; ShowNormal would drop a
			// maximized window out of its maximized state.
			if a.fc.IsMinimized(h) {
				a.fc.ShowWindow(h, ShowNormal)
			}
			a.fc.SwitchToWindow(h)
		}
		events.Activate.Done(uintptr(h), a.foreground(h))
	}()

	// Rung 1: relax the global foreground lock timeout for the duration.
	// The previous value is restored on every exit path.
	if prev, err := a.fc.ForegroundLockTimeout(); err == nil {
		if a.fc.SetForegroundLockTimeout(0) == nil {
			defer a.fc.SetForegroundLockTimeout(prev)
		}
	}

	// Rung 2: allow any process to take the foreground and drop the lock.
	a.fc.AllowAnyForeground()
	a.fc.UnlockForeground()

	// Rung 3: share input state with both the current foreground thread
	// and the target's thread. Detach exactly what was attached.
	cur := a.fc.CurrentThread()
	detach := a.attachThreads(cur, h)
	defer detach()

	// Rung 4: restore the show state the window had before minimizing.
	a.restoreShowState(h)

	// Rung 5: direct activation.
	a.fc.BringToTop(h)
	a.fc.SetForegroundWindow(h)
	if a.rung("direct", h) {
		return
	}

	// Rung 6: a synthesized modifier tap counts as recent user input,
	// which licenses the next foreground change.
	a.fc.TapModifier()
	a.fc.BringToTop(h)
	a.fc.SetForegroundWindow(h)
	if a.rung("modifier-tap", h) {
		return
	}

	// Rung 7: the blunter switch-to primitive.
	a.fc.SwitchToWindow(h)
	if a.rung("switch-to", h) {
		return
	}

	// Rung 8: topmost nudge.
	a.fc.SetTopmost(h, true)
	a.fc.SetTopmost(h, false)
	a.rung("topmost-toggle", h)
}

func (a *Activator) foreground(h Handle) bool {
	return a.fc.ForegroundWindow() == h
}

func (a *Activator) rung(name string, h Handle) bool {
	fg := a.foreground(h)
	events.Activate.Rung(name, fg)
	return fg
}

// attachThreads attaches the calling thread's input state to the foreground
// owner and the target owner, each independently. The returned func detaches
// only the attachments that succeeded.
func (a *Activator) attachThreads(cur uint32, target Handle) func() {
	attached := make([]uint32, 0, 2)
	for _, t := range []uint32{
		a.fc.WindowThread(a.fc.ForegroundWindow()),
		a.fc.WindowThread(target),
	} {
		if t == 0 || t == cur {
			continue
		}
		if a.fc.AttachThreadInput(cur, t, true) {
			attached = append(attached, t)
		}
	}
	return func() {
		for _, t := range attached {
			a.fc.AttachThreadInput(cur, t, false)
		}
	}
}

// restoreShowState un-minimizes to the remembered state. A normal,
// unminimized window gets no show command at all: issuing one can itself
// reset window state.
func (a *Activator) restoreShowState(h Handle) {
	switch {
	case a.fc.IsMinimized(h):
		show := ShowNormal
		if wp, err := a.fc.Placement(h); err == nil && wp.RestoreMaximized {
			show = ShowMaximized
		}
		a.fc.ShowWindow(h, show)
	case a.fc.IsMaximized(h):
		a.fc.ShowWindow(h, ShowMaximized)
	}
}
