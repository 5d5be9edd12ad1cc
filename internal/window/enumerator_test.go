package window

import "testing"

// fakeWindow is the raw state one handle reports to the prober.
type fakeWindow struct {
	visible     bool
	cloaked     bool
	styles      StyleFlags
	width       int
	height      int
	owner       Handle
	popup       Handle
	title       string
	class       string
	pid         uint32
	process     string
	minimized   bool
	maximized   bool
	placement   Placement
	inspectBoom bool
}

type fakeProber struct {
	order   []Handle
	windows map[Handle]*fakeWindow
	shell   Handle
	ownPID  uint32
}

func (f *fakeProber) TopLevelWindows() ([]Handle, error) { return f.order, nil }
func (f *fakeProber) ShellWindow() Handle                { return f.shell }

func (f *fakeProber) win(h Handle) *fakeWindow {
	w, ok := f.windows[h]
	if !ok {
		return &fakeWindow{}
	}
	if w.inspectBoom {
		panic("window vanished mid-enumeration")
	}
	return w
}

func (f *fakeProber) IsVisible(h Handle) bool          { return f.win(h).visible }
func (f *fakeProber) IsCloaked(h Handle) (bool, error) { return f.win(h).cloaked, nil }
func (f *fakeProber) Styles(h Handle) StyleFlags       { return f.win(h).styles }
func (f *fakeProber) Size(h Handle) (int, int, error) {
	w := f.win(h)
	return w.width, w.height, nil
}
func (f *fakeProber) Owner(h Handle) Handle           { return f.win(h).owner }
func (f *fakeProber) LastActivePopup(h Handle) Handle { return f.win(h).popup }
func (f *fakeProber) Title(h Handle) string           { return f.win(h).title }
func (f *fakeProber) ClassName(h Handle) (string, error) {
	return f.win(h).class, nil
}
func (f *fakeProber) Process(h Handle) (uint32, string, error) {
	w := f.win(h)
	return w.pid, w.process, nil
}
func (f *fakeProber) OwnPID() uint32            { return f.ownPID }
func (f *fakeProber) IsMinimized(h Handle) bool { return f.win(h).minimized }
func (f *fakeProber) IsMaximized(h Handle) bool { return f.win(h).maximized }
func (f *fakeProber) Placement(h Handle) (Placement, error) {
	return f.win(h).placement, nil
}
func (f *fakeProber) ProcessElevated(uint32) (bool, error) { return false, nil }
func (f *fakeProber) Icon(Handle) uintptr                  { return 0 }

// plain returns a window that passes every filter.
func plain(title string) *fakeWindow {
	return &fakeWindow{
		visible: true,
		width:   800,
		height:  600,
		title:   title,
		class:   "AppWindowClass",
		pid:     1234,
		process: "app",
	}
}

func newFakeProber() *fakeProber {
	return &fakeProber{windows: make(map[Handle]*fakeWindow), ownPID: 99}
}

func (f *fakeProber) add(h Handle, w *fakeWindow) {
	f.order = append(f.order, h)
	f.windows[h] = w
}

func handles(ws []*Window) []Handle {
	out := make([]Handle, len(ws))
	for i, w := range ws {
		out[i] = w.Handle
	}
	return out
}

func TestSnapshotMixedWindowSet(t *testing.T) {
	p := newFakeProber()
	p.add(1, plain("Mail"))
	tool := plain("Palette")
	tool.styles.ToolWindow = true
	p.add(2, tool)
	untitled := plain("")
	p.add(3, untitled)

	got := NewEnumerator(p).Snapshot()
	if len(got) != 1 || got[0].Handle != 1 {
		t.Fatalf("expected only window 1, got %v", handles(got))
	}
	if got[0].Title != "Mail" {
		t.Fatalf("expected title Mail, got %q", got[0].Title)
	}
}

func TestSnapshotEachFilterIndependently(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*fakeProber, *fakeWindow)
	}{
		{"shell root", func(p *fakeProber, w *fakeWindow) { p.shell = 7 }},
		{"hidden", func(p *fakeProber, w *fakeWindow) { w.visible = false }},
		{"cloaked", func(p *fakeProber, w *fakeWindow) { w.cloaked = true }},
		{"tool window", func(p *fakeProber, w *fakeWindow) { w.styles.ToolWindow = true }},
		{"non-activatable", func(p *fakeProber, w *fakeWindow) { w.styles.NoActivate = true }},
		{"degenerate size", func(p *fakeProber, w *fakeWindow) { w.width, w.height = 2, 2 }},
		{"own process", func(p *fakeProber, w *fakeWindow) { w.pid = p.ownPID }},
		{"owned without style", func(p *fakeProber, w *fakeWindow) { w.owner = 42 }},
		{"blank title", func(p *fakeProber, w *fakeWindow) { w.title = "   " }},
		{"excluded class", func(p *fakeProber, w *fakeWindow) { w.class = "Shell_TrayWnd" }},
		{"excluded process", func(p *fakeProber, w *fakeWindow) { w.process = "LockApp" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := newFakeProber()
			w := plain("Editor")
			tc.mutate(p, w)
			p.add(7, w)
			if got := NewEnumerator(p).Snapshot(); len(got) != 0 {
				t.Fatalf("expected window excluded, got %v", handles(got))
			}
		})
	}
}

func TestSnapshotToolWindowWithAppWindowStyle(t *testing.T) {
	p := newFakeProber()
	w := plain("Tool")
	w.styles.ToolWindow = true
	w.styles.AppWindow = true
	p.add(1, w)
	if got := NewEnumerator(p).Snapshot(); len(got) != 1 {
		t.Fatalf("expected explicit always-show style to override tool exclusion, got %v", handles(got))
	}
}

func TestSnapshotOwnedPopupRules(t *testing.T) {
	p := newFakeProber()
	owner := plain("Owner")
	p.add(1, owner)

	dialog := plain("Find")
	dialog.owner = 1
	dialog.styles.AppWindow = true
	p.add(2, dialog)
	owner.popup = 2 // dialog is the owner chain's active popup

	stale := plain("Old Dialog")
	stale.owner = 1
	stale.styles.AppWindow = true
	p.add(3, stale)

	got := NewEnumerator(p).Snapshot()
	want := []Handle{1, 2}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, handles(got))
	}
	for i, h := range want {
		if got[i].Handle != h {
			t.Fatalf("expected %v, got %v", want, handles(got))
		}
	}
}

func TestSnapshotMinimizedUsesStoredPlacement(t *testing.T) {
	p := newFakeProber()
	w := plain("Sheet")
	w.minimized = true
	w.width, w.height = 0, 0 // live size is meaningless while minimized
	w.placement = Placement{Show: ShowMinimized, RestoreMaximized: true}
	p.add(1, w)

	got := NewEnumerator(p).Snapshot()
	if len(got) != 1 {
		t.Fatalf("expected minimized window included despite zero size, got %v", handles(got))
	}
	if !got[0].Minimized || !got[0].Maximized {
		t.Fatalf("expected minimized+maximized from placement, got min=%v max=%v", got[0].Minimized, got[0].Maximized)
	}
}

func TestSnapshotSkipsPanickingWindow(t *testing.T) {
	p := newFakeProber()
	p.add(1, plain("Stable"))
	boom := plain("Gone")
	boom.inspectBoom = true
	p.add(2, boom)
	p.add(3, plain("Also stable"))

	got := NewEnumerator(p).Snapshot()
	want := []Handle{1, 3}
	if len(got) != 2 || got[0].Handle != want[0] || got[1].Handle != want[1] {
		t.Fatalf("expected %v, got %v", want, handles(got))
	}
}

func TestSnapshotDeduplicatesHandles(t *testing.T) {
	p := newFakeProber()
	p.add(1, plain("Mail"))
	p.order = append(p.order, 1)

	got := NewEnumerator(p).Snapshot()
	if len(got) != 1 {
		t.Fatalf("expected duplicate handle collapsed, got %v", handles(got))
	}
}
