// Package switcher hosts the orchestrator: the single goroutine that owns
// all session state and serializes every mutation. Intents from the
// keyboard gate, commands from the presenter, settings edits and focus
// changes all funnel into its run loop.
package switcher

import (
	"context"

	"github.com/windrift/windrift/internal/hook"
	"github.com/windrift/windrift/internal/logging/events"
	"github.com/windrift/windrift/internal/session"
	"github.com/windrift/windrift/internal/settings"
	"github.com/windrift/windrift/internal/window"
)

// Snapshotter produces the switchable-window list for one refresh.
type Snapshotter interface {
	Snapshot() []*window.Window
}

// Activating forces a window to the foreground.
type Activating interface {
	Activate(*window.Window)
}

// ProcessControl closes windows and stops process trees.
type ProcessControl interface {
	CloseWindow(*window.Window)
	StopProcess(*window.Window) bool
}

// Gate is the installed keyboard interception path, either the low-level
// tap or the hotkey fallback.
type Gate interface {
	Intents() <-chan hook.Intent
	SetState(hook.State)
	SetSettingsOpen(bool)
	SetBindings(hook.Bindings)
	Close() error
}

// SettingsSource serves user settings snapshots and change notifications.
type SettingsSource interface {
	Current() settings.Settings
	Changes() <-chan settings.Settings
}

// View is the presenter-facing snapshot of one session moment.
type View struct {
	Windows      []*window.Window
	Cursor       int
	Filter       string
	Grouped      bool
	Searching    bool
	SettingsOpen bool
}

// Presenter renders session state. Methods are called from the orchestrator
// goroutine and must not block on it.
type Presenter interface {
	SessionOpened(View)
	SessionUpdated(View)
	SessionClosed()
}

// CommandKind enumerates the presenter-raised operations.
type CommandKind int

const (
	CmdOpen CommandKind = iota
	CmdActivate
	CmdCloseSelected
	CmdStopSelected
	CmdNavigateNext
	CmdNavigatePrevious
	CmdGroup
	CmdUngroup
	CmdFilter
	CmdRefresh
	CmdOpenSettings
	CmdDismissSettings
	CmdCancel
	CmdQuit
)

// Command is one presenter-raised operation. Text carries the filter query
// for CmdFilter and is ignored otherwise.
type Command struct {
	Kind CommandKind
	Text string
}

// Deps is the orchestrator's injected context. Gate, Presenter, Focus and
// Clipboard may be nil; the corresponding paths are then inert.
type Deps struct {
	Windows   Snapshotter
	Activator Activating
	Processes ProcessControl
	Gate      Gate
	Settings  SettingsSource
	Presenter Presenter
	Clipboard func(string) error
	Focus     <-chan window.FocusEvent
}

// Orchestrator owns the tri-state input session and the selection model.
// All state is confined to the Run goroutine.
type Orchestrator struct {
	deps  Deps
	model *session.Model

	state        hook.State
	holdGesture  bool
	settingsOpen bool

	commands chan Command
}

// New constructs an orchestrator around its dependencies.
func New(deps Deps) *Orchestrator {
	o := &Orchestrator{
		deps:     deps,
		model:    session.New(),
		commands: make(chan Command, 16),
	}
	if deps.Settings != nil {
		o.applySettings(deps.Settings.Current())
	}
	return o
}

// SetPresenter attaches the presenter after construction. The presenter
// usually needs the command channel first, which makes wiring circular at
// construction time. Must be called before Run.
func (o *Orchestrator) SetPresenter(p Presenter) {
	o.deps.Presenter = p
}

// Commands returns the channel presenters send operations on.
func (o *Orchestrator) Commands() chan<- Command {
	return o.commands
}

// Run processes events until the context is canceled or CmdQuit arrives.
func (o *Orchestrator) Run(ctx context.Context) error {
	var intents <-chan hook.Intent
	if o.deps.Gate != nil {
		intents = o.deps.Gate.Intents()
	}
	var changes <-chan settings.Settings
	if o.deps.Settings != nil {
		changes = o.deps.Settings.Changes()
	}

	for {
		select {
		case <-ctx.Done():
			if o.state != hook.Hidden {
				o.close(events.ReasonCancel)
			}
			return ctx.Err()

		case it := <-intents:
			events.Hook.Intent(it.String())
			o.handleIntent(it)

		case cmd := <-o.commands:
			if cmd.Kind == CmdQuit {
				if o.state != hook.Hidden {
					o.close(events.ReasonCancel)
				}
				return nil
			}
			o.handleCommand(cmd)

		case s := <-changes:
			o.applySettings(s)
			events.App.SettingsReloaded()

		case _, ok := <-o.deps.Focus:
			if !ok {
				o.deps.Focus = nil
				continue
			}
			if o.state != hook.Hidden && o.hideOnFocusLoss() {
				o.close(events.ReasonFocusLoss)
			}
		}
	}
}

func (o *Orchestrator) handleIntent(it hook.Intent) {
	// Everything except opening requires a live session.
	if o.state == hook.Hidden && it != hook.OpenRequested {
		return
	}

	switch it {
	case hook.OpenRequested:
		if o.state == hook.Hidden {
			o.open(true)
		}
	case hook.NavigateNext:
		o.model.MoveNext()
		o.update()
	case hook.NavigatePrevious:
		o.model.MovePrevious()
		o.update()
	case hook.GroupByProcess:
		o.model.GroupByCurrentProcess()
		o.update()
	case hook.UngroupFromProcess:
		o.model.Ungroup()
		o.update()
	case hook.CloseWindow:
		o.closeSelected()
	case hook.StopProcess:
		o.stopSelected()
	case hook.EnterSearch:
		o.setState(hook.Searching)
		o.update()
	case hook.OpenSettings:
		o.setSettingsOpen(true)
		o.update()
	case hook.DismissSettings:
		o.setSettingsOpen(false)
		o.update()
	case hook.CopyTitle:
		o.copyTitle()
	case hook.CommitSelection:
		o.commit()
	case hook.Cancel:
		o.close(events.ReasonCancel)
	}
}

func (o *Orchestrator) handleCommand(cmd Command) {
	if o.state == hook.Hidden && cmd.Kind != CmdOpen {
		return
	}

	switch cmd.Kind {
	case CmdOpen:
		if o.state == hook.Hidden {
			// Presenter opens are deliberate, not hold-gestures.
			o.open(false)
		}
	case CmdActivate:
		o.commit()
	case CmdCloseSelected:
		o.closeSelected()
	case CmdStopSelected:
		o.stopSelected()
	case CmdNavigateNext:
		o.model.MoveNext()
		o.update()
	case CmdNavigatePrevious:
		o.model.MovePrevious()
		o.update()
	case CmdGroup:
		o.model.GroupByCurrentProcess()
		o.update()
	case CmdUngroup:
		o.model.Ungroup()
		o.update()
	case CmdFilter:
		o.model.SetFilter(cmd.Text)
		o.update()
	case CmdRefresh:
		o.refresh()
	case CmdOpenSettings:
		o.setSettingsOpen(true)
		o.update()
	case CmdDismissSettings:
		o.setSettingsOpen(false)
		o.update()
	case CmdCancel:
		o.close(events.ReasonCancel)
	}
}

// open starts a session from a fresh enumeration. holdGesture selects the
// second entry so the first trigger tap already points at the most recent
// other window.
func (o *Orchestrator) open(holdGesture bool) {
	raw := o.deps.Windows.Snapshot()
	o.model.Refresh(raw, holdGesture)
	o.holdGesture = holdGesture
	o.setState(hook.Navigating)
	events.Session.Open(len(o.model.View()), holdGesture)
	if o.deps.Presenter != nil {
		o.deps.Presenter.SessionOpened(o.view())
	}
}

// refresh re-snapshots mid-session, keeping the selection on the same
// window when it survived.
func (o *Orchestrator) refresh() {
	var selected window.Handle
	if sel := o.model.Selected(); sel != nil {
		selected = sel.Handle
	}
	filter := o.model.Filter()

	o.model.Refresh(o.deps.Windows.Snapshot(), false)
	if filter != "" {
		o.model.SetFilter(filter)
	}
	if selected != 0 {
		o.model.Select(selected)
	}
	o.update()
}

// commit activates the selection and closes the session. The ladder runs to
// completion even though the session state flips first.
func (o *Orchestrator) commit() {
	sel := o.model.Selected()
	o.close(events.ReasonCommit)
	if sel != nil {
		o.deps.Activator.Activate(sel)
	}
}

func (o *Orchestrator) close(reason events.SessionReason) {
	events.Session.Close(reason)
	o.setState(hook.Hidden)
	o.setSettingsOpen(false)
	o.holdGesture = false
	o.model.SetFilter("")
	if o.deps.Presenter != nil {
		o.deps.Presenter.SessionClosed()
	}
}

func (o *Orchestrator) closeSelected() {
	sel := o.model.Selected()
	if sel == nil {
		return
	}
	o.deps.Processes.CloseWindow(sel)
	// Optimistic removal; no verification that the window honored it.
	o.model.Remove(sel.Handle)
	o.afterRemoval()
}

func (o *Orchestrator) stopSelected() {
	sel := o.model.Selected()
	if sel == nil {
		return
	}
	if !o.deps.Processes.StopProcess(sel) {
		o.update()
		return
	}
	o.model.Remove(sel.Handle)
	o.afterRemoval()
}

func (o *Orchestrator) afterRemoval() {
	if len(o.model.View()) == 0 {
		o.close(events.ReasonCancel)
		return
	}
	o.update()
}

func (o *Orchestrator) copyTitle() {
	sel := o.model.Selected()
	if sel == nil || o.deps.Clipboard == nil {
		return
	}
	if err := o.deps.Clipboard(sel.Title); err != nil {
		events.App.ClipboardFailed(err)
	}
}

func (o *Orchestrator) update() {
	if o.deps.Presenter != nil {
		o.deps.Presenter.SessionUpdated(o.view())
	}
}

// view snapshots the model for the presenter. The window slice is copied:
// the presenter reads it on its own goroutine, and the model mutates its
// backing storage on later removals.
func (o *Orchestrator) view() View {
	return View{
		Windows:      append([]*window.Window(nil), o.model.View()...),
		Cursor:       o.model.Cursor(),
		Filter:       o.model.Filter(),
		Grouped:      o.model.Grouped(),
		Searching:    o.state == hook.Searching,
		SettingsOpen: o.settingsOpen,
	}
}

func (o *Orchestrator) setState(s hook.State) {
	o.state = s
	if o.deps.Gate != nil {
		o.deps.Gate.SetState(s)
	}
}

func (o *Orchestrator) setSettingsOpen(open bool) {
	o.settingsOpen = open
	if o.deps.Gate != nil {
		o.deps.Gate.SetSettingsOpen(open)
	}
}

func (o *Orchestrator) applySettings(s settings.Settings) {
	o.model.Phonetic = s.PhoneticSearch
	if o.deps.Gate != nil {
		o.deps.Gate.SetBindings(s.Bindings())
	}
}

func (o *Orchestrator) hideOnFocusLoss() bool {
	if o.deps.Settings == nil {
		return true
	}
	return o.deps.Settings.Current().HideOnFocusLoss
}
