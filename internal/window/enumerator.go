package window

import (
	"strings"

	"github.com/windrift/windrift/internal/logging/events"
)

// Arbitrary floor below which a window is considered degenerate; splash
// remnants and off-screen helpers report sizes in this range.
const minWindowExtent = 10

// Window classes that are shell internals, tray hosts, virtual-desktop
// helpers, or the inner content window of a framed app.
var excludedClasses = map[string]struct{}{
	"Progman":                          {},
	"WorkerW":                          {},
	"Shell_TrayWnd":                    {},
	"Shell_SecondaryTrayWnd":           {},
	"MultitaskingViewFrame":            {},
	"TaskListThumbnailWnd":             {},
	"Windows.UI.Core.CoreWindow":       {},
	"ApplicationFrameInputSinkWindow":  {},
	"ForegroundStaging":                {},
	"XamlExplorerHostIslandWindow":     {},
	"EdgeUiInputWndClass":              {},
	"ApplicationManager_DesktopShellWindow": {},
}

// Processes whose windows never belong in a switcher: search UI hosts, the
// lock-screen app, the on-screen keyboard host.
var excludedProcesses = map[string]struct{}{
	"searchui":            {},
	"searchhost":          {},
	"searchapp":           {},
	"lockapp":             {},
	"shellexperiencehost": {},
	"startmenuexperiencehost": {},
	"textinputhost":       {},
	"windowsinternal.composableshell.experiences.textinput.inputapp": {},
}

// Enumerator produces the authoritative switchable-window list for one
// refresh. It never fails as a whole because of one bad window.
type Enumerator struct {
	prober Prober
}

// NewEnumerator wires an enumerator to a platform prober.
func NewEnumerator(p Prober) *Enumerator {
	return &Enumerator{prober: p}
}

// Snapshot enumerates all top-level windows and returns those passing every
// inclusion filter, in enumeration order, with no duplicate handles.
func (e *Enumerator) Snapshot() []*Window {
	handles, err := e.prober.TopLevelWindows()
	if err != nil {
		events.Enum.Snapshot(0, 0)
		return nil
	}
	shell := e.prober.ShellWindow()
	seen := make(map[Handle]struct{}, len(handles))
	out := make([]*Window, 0, len(handles))
	for _, h := range handles {
		if _, dup := seen[h]; dup {
			continue
		}
		w, reason := e.inspect(h, shell)
		if w == nil {
			if reason != "" {
				events.Enum.Skipped(uintptr(h), reason)
			}
			continue
		}
		seen[h] = struct{}{}
		out = append(out, w)
	}
	events.Enum.Snapshot(len(handles), len(out))
	return out
}

// inspect applies the inclusion filters in order and annotates survivors.
// A panicking platform query skips the window, never the refresh.
func (e *Enumerator) inspect(h Handle, shell Handle) (w *Window, reason string) {
	defer func() {
		if recover() != nil {
			w, reason = nil, "inspect panic"
		}
	}()

	p := e.prober
	if h == shell {
		return nil, "shell root"
	}
	if !p.IsVisible(h) {
		return nil, "hidden"
	}
	if cloaked, err := p.IsCloaked(h); err == nil && cloaked {
		return nil, "cloaked"
	}
	styles := p.Styles(h)
	if styles.ToolWindow && !styles.AppWindow {
		return nil, "tool window"
	}
	if styles.NoActivate && !styles.AppWindow {
		return nil, "non-activatable"
	}
	minimized := p.IsMinimized(h)
	if !minimized {
		// A minimized window reports no useful live size.
		width, height, err := p.Size(h)
		if err != nil {
			return nil, "size query failed"
		}
		if width < minWindowExtent || height < minWindowExtent {
			return nil, "degenerate size"
		}
	}
	pid, procName, err := p.Process(h)
	if err != nil {
		return nil, "process query failed"
	}
	if pid == p.OwnPID() {
		return nil, "own process"
	}
	if owner := p.Owner(h); owner != 0 {
		if !styles.AppWindow {
			return nil, "owned window"
		}
		if p.LastActivePopup(rootOwner(p, h)) != h {
			return nil, "not last active popup"
		}
	}
	title := p.Title(h)
	if strings.TrimSpace(title) == "" {
		return nil, "empty title"
	}
	class, err := p.ClassName(h)
	if err != nil {
		return nil, "class query failed"
	}
	if _, excluded := excludedClasses[class]; excluded {
		return nil, "excluded class"
	}
	if _, excluded := excludedProcesses[strings.ToLower(procName)]; excluded {
		return nil, "excluded process"
	}

	maximized := p.IsMaximized(h)
	if minimized {
		// Live state lies for minimized windows; the stored placement
		// remembers whether they were maximized.
		maximized = false
		if wp, err := p.Placement(h); err == nil {
			maximized = wp.RestoreMaximized
		}
	}

	return &Window{
		Handle:      h,
		Title:       title,
		PID:         pid,
		ProcessName: procName,
		ClassName:   class,
		Minimized:   minimized,
		Maximized:   maximized,
		elevatedFn:  func() (bool, error) { return p.ProcessElevated(pid) },
		iconFn:      func() uintptr { return p.Icon(h) },
	}, ""
}

// rootOwner walks the owner chain to its top.
func rootOwner(p Prober, h Handle) Handle {
	root := h
	for i := 0; i < 64; i++ {
		owner := p.Owner(root)
		if owner == 0 {
			return root
		}
		root = owner
	}
	return root
}
