//go:build windows

package window

import (
	"fmt"
	"path/filepath"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/windrift/windrift/internal/winapi"
)

// Platform is the Win32 implementation of Prober, FocusController, and
// ProcessOps.
type Platform struct{}

// NewPlatform returns the native platform backend.
func NewPlatform() (*Platform, error) {
	return &Platform{}, nil
}

func (*Platform) TopLevelWindows() ([]Handle, error) {
	var handles []Handle
	err := winapi.EnumWindows(func(h winapi.HWND) bool {
		handles = append(handles, Handle(h))
		return true
	})
	if err != nil {
		return nil, err
	}
	return handles, nil
}

func (*Platform) ShellWindow() Handle {
	return Handle(winapi.ShellWindow())
}

func (*Platform) IsVisible(h Handle) bool {
	return winapi.IsWindowVisible(winapi.HWND(h))
}

func (*Platform) IsCloaked(h Handle) (bool, error) {
	return winapi.IsCloaked(winapi.HWND(h))
}

func (*Platform) Styles(h Handle) StyleFlags {
	ex := winapi.ExStyle(winapi.HWND(h))
	return StyleFlags{
		ToolWindow: ex&winapi.WSExToolWindow != 0,
		AppWindow:  ex&winapi.WSExAppWindow != 0,
		NoActivate: ex&winapi.WSExNoActivate != 0,
	}
}

func (*Platform) Size(h Handle) (int, int, error) {
	rect, err := winapi.WindowRect(winapi.HWND(h))
	if err != nil {
		return 0, 0, err
	}
	return int(rect.Right - rect.Left), int(rect.Bottom - rect.Top), nil
}

func (*Platform) Owner(h Handle) Handle {
	return Handle(winapi.Owner(winapi.HWND(h)))
}

func (*Platform) LastActivePopup(h Handle) Handle {
	return Handle(winapi.LastActivePopup(winapi.HWND(h)))
}

func (*Platform) Title(h Handle) string {
	return winapi.WindowText(winapi.HWND(h))
}

func (*Platform) ClassName(h Handle) (string, error) {
	return winapi.ClassName(winapi.HWND(h))
}

func (*Platform) Process(h Handle) (uint32, string, error) {
	_, pid := winapi.WindowThreadProcessID(winapi.HWND(h))
	if pid == 0 {
		return 0, "", fmt.Errorf("no process for window %#x", uintptr(h))
	}
	name, err := processImageName(pid)
	if err != nil {
		return pid, "", err
	}
	return pid, name, nil
}

func (*Platform) OwnPID() uint32 {
	return winapi.CurrentProcessID()
}

func (*Platform) IsMinimized(h Handle) bool {
	return winapi.IsIconic(winapi.HWND(h))
}

func (*Platform) IsMaximized(h Handle) bool {
	return winapi.IsZoomed(winapi.HWND(h))
}

func (*Platform) Placement(h Handle) (Placement, error) {
	wp, err := winapi.Placement(winapi.HWND(h))
	if err != nil {
		return Placement{}, err
	}
	p := Placement{RestoreMaximized: wp.Flags&winapi.WPFRestoreToMaximized != 0}
	switch wp.ShowCmd {
	case winapi.SWShowMinimized, winapi.SWMinimize:
		p.Show = ShowMinimized
	case winapi.SWShowMaximized:
		p.Show = ShowMaximized
	default:
		p.Show = ShowNormal
	}
	return p, nil
}

func (*Platform) ProcessElevated(pid uint32) (bool, error) {
	proc, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return false, fmt.Errorf("open process %d: %w", pid, err)
	}
	defer windows.CloseHandle(proc)
	var token windows.Token
	if err := windows.OpenProcessToken(proc, windows.TOKEN_QUERY, &token); err != nil {
		return false, fmt.Errorf("open process token %d: %w", pid, err)
	}
	defer token.Close()
	return token.IsElevated(), nil
}

// Icon asks the window for its big icon, falling back to the class icon.
// Best effort with a short timeout so a hung window cannot stall a refresh.
func (*Platform) Icon(h Handle) uintptr {
	hw := winapi.HWND(h)
	if icon, ok := winapi.SendMessageTimeout(hw, winapi.WMGetIcon, winapi.IconBig, 0, 100); ok && icon != 0 {
		return icon
	}
	return winapi.ClassIcon(hw)
}

func (*Platform) ForegroundWindow() Handle {
	return Handle(winapi.ForegroundWindow())
}

func (*Platform) SetForegroundWindow(h Handle) bool {
	return winapi.SetForegroundWindow(winapi.HWND(h))
}

func (*Platform) BringToTop(h Handle) bool {
	return winapi.BringWindowToTop(winapi.HWND(h))
}

func (*Platform) ShowWindow(h Handle, s ShowState) {
	cmd := winapi.SWRestore
	switch s {
	case ShowMaximized:
		cmd = winapi.SWShowMaximized
	case ShowMinimized:
		cmd = winapi.SWMinimize
	}
	winapi.ShowWindow(winapi.HWND(h), cmd)
}

func (*Platform) ForegroundLockTimeout() (uint32, error) {
	return winapi.ForegroundLockTimeout()
}

func (*Platform) SetForegroundLockTimeout(ms uint32) error {
	return winapi.SetForegroundLockTimeout(ms)
}

func (*Platform) AllowAnyForeground() bool {
	return winapi.AllowSetForegroundWindow(winapi.ASFWAny)
}

func (*Platform) UnlockForeground() bool {
	return winapi.LockSetForegroundWindow(winapi.LSFWUnlock)
}

func (*Platform) WindowThread(h Handle) uint32 {
	tid, _ := winapi.WindowThreadProcessID(winapi.HWND(h))
	return tid
}

func (*Platform) CurrentThread() uint32 {
	return winapi.CurrentThreadID()
}

func (*Platform) AttachThreadInput(from, to uint32, attach bool) bool {
	return winapi.AttachThreadInput(from, to, attach)
}

func (*Platform) TapModifier() {
	winapi.KeybdEvent(winapi.VKMenu, 0)
	winapi.KeybdEvent(winapi.VKMenu, winapi.KeyEventFKeyUp)
}

func (*Platform) SwitchToWindow(h Handle) {
	winapi.SwitchToThisWindow(winapi.HWND(h), true)
}

func (*Platform) SetTopmost(h Handle, topmost bool) bool {
	return winapi.SetWindowTopmost(winapi.HWND(h), topmost)
}

func (*Platform) PostClose(h Handle) bool {
	return winapi.PostMessage(winapi.HWND(h), winapi.WMClose, 0, 0)
}

// KillProcessTree terminates pid and every transitive child. Children are
// collected from a single toolhelp snapshot before any termination, so the
// walk is stable even as processes die.
func (*Platform) KillProcessTree(pid uint32) bool {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return terminate(pid)
	}
	defer windows.CloseHandle(snapshot)

	children := make(map[uint32][]uint32)
	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))
	if err := windows.Process32First(snapshot, &entry); err == nil {
		for {
			children[entry.ParentProcessID] = append(children[entry.ParentProcessID], entry.ProcessID)
			if err := windows.Process32Next(snapshot, &entry); err != nil {
				break
			}
		}
	}

	ok := terminate(pid)
	queue := append([]uint32(nil), children[pid]...)
	for len(queue) > 0 {
		child := queue[0]
		queue = queue[1:]
		terminate(child)
		queue = append(queue, children[child]...)
	}
	return ok
}

func terminate(pid uint32) bool {
	proc, err := windows.OpenProcess(windows.PROCESS_TERMINATE, false, pid)
	if err != nil {
		return false
	}
	defer windows.CloseHandle(proc)
	return windows.TerminateProcess(proc, 1) == nil
}

func processImageName(pid uint32) (string, error) {
	proc, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return "", fmt.Errorf("open process %d: %w", pid, err)
	}
	defer windows.CloseHandle(proc)
	var buf [windows.MAX_PATH]uint16
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(proc, 0, &buf[0], &size); err != nil {
		return "", fmt.Errorf("query image name %d: %w", pid, err)
	}
	name := filepath.Base(windows.UTF16ToString(buf[:size]))
	return strings.TrimSuffix(name, filepath.Ext(name)), nil
}
