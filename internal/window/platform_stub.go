//go:build !windows

package window

// Platform is a stub on operating systems without a window-management
// backend; every query fails with ErrUnsupported or reads as empty. The
// console presenter still runs against it for development.
type Platform struct{}

// NewPlatform returns the stub backend.
func NewPlatform() (*Platform, error) {
	return &Platform{}, nil
}

func (*Platform) TopLevelWindows() ([]Handle, error)       { return nil, ErrUnsupported }
func (*Platform) ShellWindow() Handle                      { return 0 }
func (*Platform) IsVisible(Handle) bool                    { return false }
func (*Platform) IsCloaked(Handle) (bool, error)           { return false, ErrUnsupported }
func (*Platform) Styles(Handle) StyleFlags                 { return StyleFlags{} }
func (*Platform) Size(Handle) (int, int, error)            { return 0, 0, ErrUnsupported }
func (*Platform) Owner(Handle) Handle                      { return 0 }
func (*Platform) LastActivePopup(Handle) Handle            { return 0 }
func (*Platform) Title(Handle) string                      { return "" }
func (*Platform) ClassName(Handle) (string, error)         { return "", ErrUnsupported }
func (*Platform) Process(Handle) (uint32, string, error)   { return 0, "", ErrUnsupported }
func (*Platform) OwnPID() uint32                           { return 0 }
func (*Platform) IsMinimized(Handle) bool                  { return false }
func (*Platform) IsMaximized(Handle) bool                  { return false }
func (*Platform) Placement(Handle) (Placement, error)      { return Placement{}, ErrUnsupported }
func (*Platform) ProcessElevated(uint32) (bool, error)     { return false, ErrUnsupported }
func (*Platform) Icon(Handle) uintptr                      { return 0 }
func (*Platform) ForegroundWindow() Handle                 { return 0 }
func (*Platform) SetForegroundWindow(Handle) bool          { return false }
func (*Platform) BringToTop(Handle) bool                   { return false }
func (*Platform) ShowWindow(Handle, ShowState)             {}
func (*Platform) ForegroundLockTimeout() (uint32, error)   { return 0, ErrUnsupported }
func (*Platform) SetForegroundLockTimeout(uint32) error    { return ErrUnsupported }
func (*Platform) AllowAnyForeground() bool                 { return false }
func (*Platform) UnlockForeground() bool                   { return false }
func (*Platform) WindowThread(Handle) uint32               { return 0 }
func (*Platform) CurrentThread() uint32                    { return 0 }
func (*Platform) AttachThreadInput(uint32, uint32, bool) bool { return false }
func (*Platform) TapModifier()                             {}
func (*Platform) SwitchToWindow(Handle)                    {}
func (*Platform) SetTopmost(Handle, bool) bool             { return false }
func (*Platform) PostClose(Handle) bool                    { return false }
func (*Platform) KillProcessTree(uint32) bool              { return false }
