//go:build windows

package winapi

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// HWND is an opaque top-level window handle. The OS owns the window; the
// handle is identity only.
type HWND uintptr

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	dwmapi = windows.NewLazySystemDLL("dwmapi.dll")

	procEnumWindows              = user32.NewProc("EnumWindows")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetClassNameW            = user32.NewProc("GetClassNameW")
	procGetWindowLongPtrW        = user32.NewProc("GetWindowLongPtrW")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procIsIconic                 = user32.NewProc("IsIconic")
	procIsZoomed                 = user32.NewProc("IsZoomed")
	procGetWindowRect            = user32.NewProc("GetWindowRect")
	procGetWindow                = user32.NewProc("GetWindow")
	procGetLastActivePopup       = user32.NewProc("GetLastActivePopup")
	procGetWindowPlacement       = user32.NewProc("GetWindowPlacement")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	procSetForegroundWindow      = user32.NewProc("SetForegroundWindow")
	procBringWindowToTop         = user32.NewProc("BringWindowToTop")
	procShowWindow               = user32.NewProc("ShowWindow")
	procSystemParametersInfoW    = user32.NewProc("SystemParametersInfoW")
	procLockSetForegroundWindow  = user32.NewProc("LockSetForegroundWindow")
	procAllowSetForegroundWindow = user32.NewProc("AllowSetForegroundWindow")
	procAttachThreadInput        = user32.NewProc("AttachThreadInput")
	procKeybdEvent               = user32.NewProc("keybd_event")
	procSwitchToThisWindow       = user32.NewProc("SwitchToThisWindow")
	procSetWindowPos             = user32.NewProc("SetWindowPos")
	procPostMessageW             = user32.NewProc("PostMessageW")
	procSendMessageTimeoutW      = user32.NewProc("SendMessageTimeoutW")
	procGetClassLongPtrW         = user32.NewProc("GetClassLongPtrW")
	procGetShellWindow           = user32.NewProc("GetShellWindow")
	procGetAsyncKeyState         = user32.NewProc("GetAsyncKeyState")
	procSetWindowsHookExW        = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx      = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx           = user32.NewProc("CallNextHookEx")
	procGetMessageW              = user32.NewProc("GetMessageW")
	procPostThreadMessageW       = user32.NewProc("PostThreadMessageW")
	procRegisterHotKey           = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey         = user32.NewProc("UnregisterHotKey")

	procDwmGetWindowAttribute = dwmapi.NewProc("DwmGetWindowAttribute")
)

// Window style and class constants used by the enumeration filters and the
// activation ladder.
const (
	GWLStyle   = ^uintptr(15) // -16
	GWLExStyle = ^uintptr(19) // -20

	WSExToolWindow = 0x00000080
	WSExAppWindow  = 0x00040000
	WSExNoActivate = 0x08000000

	GWOwner = 4

	SWShowNormal    = 1
	SWShowMinimized = 2
	SWShowMaximized = 3
	SWMinimize      = 6
	SWRestore       = 9

	WPFRestoreToMaximized = 0x0002

	SPIGetForegroundLockTimeout = 0x2000
	SPISetForegroundLockTimeout = 0x2001
	SPIFSendChange              = 0x0002

	LSFWUnlock = 2
	ASFWAny    = 0xFFFFFFFF

	KeyEventFKeyUp = 0x0002

	SWPNoMove = 0x0002
	SWPNoSize = 0x0001

	WMClose      = 0x0010
	WMQuit       = 0x0012
	WMGetIcon    = 0x007F
	WMKeyDown    = 0x0100
	WMKeyUp      = 0x0101
	WMSysKeyDown = 0x0104
	WMSysKeyUp   = 0x0105
	WMHotkey     = 0x0312

	WHKeyboardLL = 13

	SMTOAbortIfHung = 0x0002

	GCLPHIcon = ^uintptr(13) // -14

	IconBig = 1

	HWNDTopmost   = ^uintptr(0) // -1
	HWNDNoTopmost = ^uintptr(1) // -2

	DWMWACloaked = 14

	ModAlt      = 0x0001
	ModNoRepeat = 0x4000
)

// Virtual-key codes referenced by the gesture machine and key synthesis.
const (
	VKTab    = 0x09
	VKReturn = 0x0D
	VKShift  = 0x10
	VKMenu   = 0x12 // Alt
	VKEscape = 0x1B
	VKSpace  = 0x20
	VKLeft   = 0x25
	VKUp     = 0x26
	VKRight  = 0x27
	VKDown   = 0x28
)

// Rect mirrors the Win32 RECT layout.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// Point mirrors the Win32 POINT layout.
type Point struct {
	X, Y int32
}

// WindowPlacement mirrors WINDOWPLACEMENT; the stored placement record is
// the only reliable source of the pre-minimize show state.
type WindowPlacement struct {
	Length         uint32
	Flags          uint32
	ShowCmd        uint32
	MinPosition    Point
	MaxPosition    Point
	NormalPosition Rect
}

// KBDLLHookStruct mirrors KBDLLHOOKSTRUCT delivered to WH_KEYBOARD_LL hooks.
type KBDLLHookStruct struct {
	VKCode    uint32
	ScanCode  uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// Msg mirrors the Win32 MSG structure for the hook thread's message loop.
type Msg struct {
	HWND    HWND
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      Point
}

// NewCallback slots are never released by the runtime, so the enumeration
// callback is created once and the target function swapped per call.
// Enumeration only ever runs on the orchestrator goroutine.
var (
	enumTarget   func(h HWND) bool
	enumCallback = syscall.NewCallback(func(h uintptr, _ uintptr) uintptr {
		if enumTarget(HWND(h)) {
			return 1
		}
		return 0
	})
)

// EnumWindows walks every top-level window. The callback returns false to
// stop enumeration early.
func EnumWindows(fn func(h HWND) bool) error {
	stopped := false
	enumTarget = func(h HWND) bool {
		if !fn(h) {
			stopped = true
			return false
		}
		return true
	}
	defer func() { enumTarget = nil }()
	r, _, err := procEnumWindows.Call(enumCallback, 0)
	if r == 0 && !stopped {
		return fmt.Errorf("EnumWindows: %w", err)
	}
	return nil
}

// WindowText returns the window title, empty when the window has none.
func WindowText(h HWND) string {
	var buf [512]uint16
	n, _, _ := procGetWindowTextW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf[:n])
}

// ClassName returns the window class name.
func ClassName(h HWND) (string, error) {
	var buf [256]uint16
	n, _, err := procGetClassNameW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return "", fmt.Errorf("GetClassNameW: %w", err)
	}
	return windows.UTF16ToString(buf[:n]), nil
}

// ExStyle returns the extended window style bits.
func ExStyle(h HWND) uintptr {
	r, _, _ := procGetWindowLongPtrW.Call(uintptr(h), GWLExStyle)
	return r
}

func IsWindowVisible(h HWND) bool {
	r, _, _ := procIsWindowVisible.Call(uintptr(h))
	return r != 0
}

func IsIconic(h HWND) bool {
	r, _, _ := procIsIconic.Call(uintptr(h))
	return r != 0
}

func IsZoomed(h HWND) bool {
	r, _, _ := procIsZoomed.Call(uintptr(h))
	return r != 0
}

// WindowRect returns the live bounding rectangle.
func WindowRect(h HWND) (Rect, error) {
	var rect Rect
	r, _, err := procGetWindowRect.Call(uintptr(h), uintptr(unsafe.Pointer(&rect)))
	if r == 0 {
		return Rect{}, fmt.Errorf("GetWindowRect: %w", err)
	}
	return rect, nil
}

// Owner returns the owner window, zero when the window is unowned.
func Owner(h HWND) HWND {
	r, _, _ := procGetWindow.Call(uintptr(h), GWOwner)
	return HWND(r)
}

// LastActivePopup returns the most recently active popup of the owner chain.
func LastActivePopup(h HWND) HWND {
	r, _, _ := procGetLastActivePopup.Call(uintptr(h))
	return HWND(r)
}

// Placement reads the stored placement record.
func Placement(h HWND) (WindowPlacement, error) {
	var wp WindowPlacement
	wp.Length = uint32(unsafe.Sizeof(wp))
	r, _, err := procGetWindowPlacement.Call(uintptr(h), uintptr(unsafe.Pointer(&wp)))
	if r == 0 {
		return WindowPlacement{}, fmt.Errorf("GetWindowPlacement: %w", err)
	}
	return wp, nil
}

// WindowThreadProcessID returns the owning thread and process ids.
func WindowThreadProcessID(h HWND) (tid, pid uint32) {
	r, _, _ := procGetWindowThreadProcessId.Call(uintptr(h), uintptr(unsafe.Pointer(&pid)))
	return uint32(r), pid
}

func ForegroundWindow() HWND {
	r, _, _ := procGetForegroundWindow.Call()
	return HWND(r)
}

func SetForegroundWindow(h HWND) bool {
	r, _, _ := procSetForegroundWindow.Call(uintptr(h))
	return r != 0
}

func BringWindowToTop(h HWND) bool {
	r, _, _ := procBringWindowToTop.Call(uintptr(h))
	return r != 0
}

func ShowWindow(h HWND, cmd int) {
	procShowWindow.Call(uintptr(h), uintptr(cmd))
}

// ForegroundLockTimeout reads the global foreground lock timeout in
// milliseconds.
func ForegroundLockTimeout() (uint32, error) {
	var value uint32
	r, _, err := procSystemParametersInfoW.Call(SPIGetForegroundLockTimeout, 0, uintptr(unsafe.Pointer(&value)), 0)
	if r == 0 {
		return 0, fmt.Errorf("SystemParametersInfoW(get lock timeout): %w", err)
	}
	return value, nil
}

// SetForegroundLockTimeout writes the global foreground lock timeout. The
// value is process-wide shared state; callers must restore it.
func SetForegroundLockTimeout(ms uint32) error {
	r, _, err := procSystemParametersInfoW.Call(SPISetForegroundLockTimeout, 0, uintptr(ms), SPIFSendChange)
	if r == 0 {
		return fmt.Errorf("SystemParametersInfoW(set lock timeout): %w", err)
	}
	return nil
}

func LockSetForegroundWindow(code uint32) bool {
	r, _, _ := procLockSetForegroundWindow.Call(uintptr(code))
	return r != 0
}

func AllowSetForegroundWindow(pid uint32) bool {
	r, _, _ := procAllowSetForegroundWindow.Call(uintptr(pid))
	return r != 0
}

// AttachThreadInput attaches or detaches the input state of two threads.
func AttachThreadInput(from, to uint32, attach bool) bool {
	var flag uintptr
	if attach {
		flag = 1
	}
	r, _, _ := procAttachThreadInput.Call(uintptr(from), uintptr(to), flag)
	return r != 0
}

// KeybdEvent synthesizes a key transition via the legacy keybd_event entry
// point, which is what the foreground heuristics observe.
func KeybdEvent(vk byte, flags uint32) {
	procKeybdEvent.Call(uintptr(vk), 0, uintptr(flags), 0)
}

func SwitchToThisWindow(h HWND, altTab bool) {
	var flag uintptr
	if altTab {
		flag = 1
	}
	procSwitchToThisWindow.Call(uintptr(h), flag)
}

// SetWindowTopmost toggles the topmost band without moving or resizing.
func SetWindowTopmost(h HWND, topmost bool) bool {
	after := HWNDNoTopmost
	if topmost {
		after = HWNDTopmost
	}
	r, _, _ := procSetWindowPos.Call(uintptr(h), after, 0, 0, 0, 0, SWPNoMove|SWPNoSize)
	return r != 0
}

// PostMessage posts without waiting for the target to process it.
func PostMessage(h HWND, msg uint32, wparam, lparam uintptr) bool {
	r, _, _ := procPostMessageW.Call(uintptr(h), uintptr(msg), wparam, lparam)
	return r != 0
}

// SendMessageTimeout sends msg and gives up after timeoutMs, so a hung
// window cannot stall the caller.
func SendMessageTimeout(h HWND, msg uint32, wparam, lparam uintptr, timeoutMs uint32) (uintptr, bool) {
	var result uintptr
	r, _, _ := procSendMessageTimeoutW.Call(uintptr(h), uintptr(msg), wparam, lparam, SMTOAbortIfHung, uintptr(timeoutMs), uintptr(unsafe.Pointer(&result)))
	return result, r != 0
}

// ClassIcon returns the class icon handle, zero when the class has none.
func ClassIcon(h HWND) uintptr {
	r, _, _ := procGetClassLongPtrW.Call(uintptr(h), GCLPHIcon)
	return r
}

func ShellWindow() HWND {
	r, _, _ := procGetShellWindow.Call()
	return HWND(r)
}

// KeyDown reports the instantaneous physical state of a virtual key,
// independent of the event stream.
func KeyDown(vk int) bool {
	r, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return r&0x8000 != 0
}

// IsCloaked reports the DWM cloaking state: nominally visible windows hidden
// by virtual desktops or suspended UWP apps.
func IsCloaked(h HWND) (bool, error) {
	var cloaked uint32
	r, _, _ := procDwmGetWindowAttribute.Call(uintptr(h), DWMWACloaked, uintptr(unsafe.Pointer(&cloaked)), unsafe.Sizeof(cloaked))
	if r != 0 { // non-zero HRESULT is failure
		return false, fmt.Errorf("DwmGetWindowAttribute(cloaked): hresult %#x", r)
	}
	return cloaked != 0, nil
}

// SetKeyboardHook installs a WH_KEYBOARD_LL hook on the calling thread.
func SetKeyboardHook(fn func(code int, wparam uintptr, ks *KBDLLHookStruct) bool) (uintptr, error) {
	cb := syscall.NewCallback(func(code int, wparam uintptr, lparam uintptr) uintptr {
		if code >= 0 && fn(code, wparam, (*KBDLLHookStruct)(unsafe.Pointer(lparam))) {
			return 1
		}
		r, _, _ := procCallNextHookEx.Call(0, uintptr(code), wparam, lparam)
		return r
	})
	hook, _, err := procSetWindowsHookExW.Call(WHKeyboardLL, cb, 0, 0)
	if hook == 0 {
		return 0, fmt.Errorf("SetWindowsHookExW: %w", err)
	}
	return hook, nil
}

// UnhookKeyboardHook removes a previously installed hook.
func UnhookKeyboardHook(hook uintptr) bool {
	r, _, _ := procUnhookWindowsHookEx.Call(hook)
	return r != 0
}

// GetMessage blocks on the calling thread's message queue. Returns false on
// WM_QUIT.
func GetMessage(msg *Msg) bool {
	r, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(msg)), 0, 0, 0)
	return int32(r) > 0
}

// PostThreadQuit wakes a message loop thread so it can exit.
func PostThreadQuit(tid uint32) bool {
	r, _, _ := procPostThreadMessageW.Call(uintptr(tid), WMQuit, 0, 0)
	return r != 0
}

// RegisterHotKey binds a thread-scoped hotkey; the fallback path when the
// low-level hook cannot install.
func RegisterHotKey(id int, modifiers, vk uint32) error {
	r, _, err := procRegisterHotKey.Call(0, uintptr(id), uintptr(modifiers), uintptr(vk))
	if r == 0 {
		return fmt.Errorf("RegisterHotKey: %w", err)
	}
	return nil
}

func UnregisterHotKey(id int) {
	procUnregisterHotKey.Call(0, uintptr(id))
}

// CurrentThreadID returns the calling thread id.
func CurrentThreadID() uint32 {
	return windows.GetCurrentThreadId()
}

// CurrentProcessID returns the calling process id.
func CurrentProcessID() uint32 {
	return windows.GetCurrentProcessId()
}
