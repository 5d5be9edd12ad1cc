package window

import "sync"

// Handle identifies a top-level window. The OS owns the underlying window;
// a Handle is identity only and may go stale at any time.
type Handle uintptr

// ShowState is the platform-neutral show state of a window.
type ShowState int

const (
	ShowNormal ShowState = iota
	ShowMinimized
	ShowMaximized
)

// Placement is the stored placement record of a window. For a minimized
// window it is the only reliable source of the pre-minimize show state.
type Placement struct {
	Show             ShowState
	RestoreMaximized bool
}

// StyleFlags carries the extended style bits the filters care about.
type StyleFlags struct {
	ToolWindow bool
	AppWindow  bool // explicit "always show in switcher" style
	NoActivate bool
}

// Window is one switchable top-level window. Core fields are immutable once
// constructed; elevation and icon are lazy, memoized, independently failable
// enrichments.
type Window struct {
	Handle      Handle
	Title       string
	PID         uint32
	ProcessName string
	ClassName   string
	Minimized   bool
	Maximized   bool

	elevatedOnce sync.Once
	elevated     bool
	elevatedFn   func() (bool, error)

	iconOnce sync.Once
	icon     uintptr
	iconFn   func() uintptr
}

// Elevated reports whether the owning process runs with elevated
// privileges. Computed on first call and cached; a failed check reads as
// not elevated.
func (w *Window) Elevated() bool {
	w.elevatedOnce.Do(func() {
		if w.elevatedFn == nil {
			return
		}
		if ok, err := w.elevatedFn(); err == nil {
			w.elevated = ok
		}
	})
	return w.elevated
}

// Icon returns the window's icon handle, zero when none could be resolved.
// Loaded on first call and cached.
func (w *Window) Icon() uintptr {
	w.iconOnce.Do(func() {
		if w.iconFn != nil {
			w.icon = w.iconFn()
		}
	})
	return w.icon
}
