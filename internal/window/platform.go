package window

import "errors"

// ErrUnsupported is returned by the stub platform on operating systems
// without a window-management backend.
var ErrUnsupported = errors.New("window: platform not supported")

// Prober supplies the per-window queries the enumerator filters on.
type Prober interface {
	// TopLevelWindows returns every top-level window handle in z-order.
	TopLevelWindows() ([]Handle, error)
	ShellWindow() Handle
	IsVisible(Handle) bool
	// IsCloaked reports the compositor's hidden-but-nominally-visible state.
	IsCloaked(Handle) (bool, error)
	Styles(Handle) StyleFlags
	// Size returns the live bounding size in pixels.
	Size(Handle) (width, height int, err error)
	Owner(Handle) Handle
	LastActivePopup(Handle) Handle
	Title(Handle) string
	ClassName(Handle) (string, error)
	// Process resolves the owning process id and friendly name.
	Process(Handle) (pid uint32, name string, err error)
	OwnPID() uint32
	IsMinimized(Handle) bool
	IsMaximized(Handle) bool
	Placement(Handle) (Placement, error)
	ProcessElevated(pid uint32) (bool, error)
	Icon(Handle) uintptr
}

// FocusController exposes the foreground-manipulation primitives the
// activation ladder escalates through. It is process-wide shared mutable
// state; the activator owns scoped acquisition and guaranteed restoration.
type FocusController interface {
	ForegroundWindow() Handle
	SetForegroundWindow(Handle) bool
	BringToTop(Handle) bool
	ShowWindow(Handle, ShowState)
	ForegroundLockTimeout() (uint32, error)
	SetForegroundLockTimeout(ms uint32) error
	AllowAnyForeground() bool
	UnlockForeground() bool
	WindowThread(Handle) uint32
	CurrentThread() uint32
	AttachThreadInput(from, to uint32, attach bool) bool
	// TapModifier synthesizes a momentary modifier press/release; recent
	// user input licenses a foreground change under the OS heuristics.
	TapModifier()
	SwitchToWindow(Handle)
	SetTopmost(Handle, bool) bool
	IsMinimized(Handle) bool
	IsMaximized(Handle) bool
	Placement(Handle) (Placement, error)
}

// ProcessOps is the narrow process-control surface: fire-and-forget window
// close and best-effort process-tree termination.
type ProcessOps interface {
	PostClose(Handle) bool
	KillProcessTree(pid uint32) bool
}
