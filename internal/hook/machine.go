package hook

// State is the orchestrator-owned input session state that governs which
// keys the interceptor swallows.
type State int

const (
	Hidden State = iota
	Navigating
	Searching
)

// Key is a physical key identified by its Windows virtual-key code. The
// codes double as the platform-neutral identifiers in tests.
type Key int

const (
	KeyTab    Key = 0x09
	KeyShift  Key = 0x10
	KeyAlt    Key = 0x12
	KeyEscape Key = 0x1B
	KeyLeft   Key = 0x25
	KeyUp     Key = 0x26
	KeyRight  Key = 0x27
	KeyDown   Key = 0x28
	KeyC      Key = 0x43
	KeyK      Key = 0x4B
	KeyS      Key = 0x53
	KeyW      Key = 0x57
	KeyComma  Key = 0xBC
)

// KeyEvent is one raw key transition.
type KeyEvent struct {
	Key  Key
	Down bool
}

// Modifiers is the instantaneous physical modifier state. It is sampled
// from the OS key state, not derived from the event stream: under rapid
// input the two can disagree, and hold-gesture detection must trust the
// physical state.
type Modifiers struct {
	Activation bool // the hold modifier that opened the session
	Secondary  bool // reverses navigation direction
}

// Bindings names the keys that make up the activation gesture. Secondary
// is the direction-reversing modifier sampled alongside the trigger.
type Bindings struct {
	Activation Key
	Trigger    Key
	Secondary  Key
}

// DefaultBindings is the conventional hold-Alt, tap-Tab gesture with Shift
// reversing direction.
var DefaultBindings = Bindings{Activation: KeyAlt, Trigger: KeyTab, Secondary: KeyShift}

// Decision is the per-keystroke outcome: whether to swallow the event
// before the rest of the system sees it, and the intent it translates to.
type Decision struct {
	Swallow bool
	Intent  Intent
}

var pass = Decision{}

// Decide maps one key event to a decision. Pure: all inputs are explicit.
// settingsOpen reports whether a secondary modal surface is showing, which
// re-routes Escape while the activation modifier is held.
func Decide(state State, b Bindings, ev KeyEvent, mods Modifiers, settingsOpen bool) Decision {
	// The Escape routing rule applies in every state.
	if ev.Key == KeyEscape && ev.Down && settingsOpen && mods.Activation {
		return Decision{Swallow: true, Intent: DismissSettings}
	}

	switch state {
	case Hidden:
		if ev.Key == b.Trigger && ev.Down && mods.Activation {
			return Decision{Swallow: true, Intent: OpenRequested}
		}
		return pass

	case Navigating:
		return decideNavigating(b, ev, mods)

	case Searching:
		// Only Escape and release-driven commit are intercepted; everything
		// else must reach the text-entry surface untouched.
		if ev.Key == KeyEscape && ev.Down {
			return Decision{Swallow: true, Intent: Cancel}
		}
		if ev.Key == b.Activation && !ev.Down {
			return Decision{Swallow: true, Intent: CommitSelection}
		}
		return pass
	}
	return pass
}

func decideNavigating(b Bindings, ev KeyEvent, mods Modifiers) Decision {
	if ev.Key == b.Activation && !ev.Down {
		return Decision{Swallow: true, Intent: CommitSelection}
	}
	if !ev.Down {
		return pass
	}
	switch ev.Key {
	case b.Trigger:
		if mods.Secondary {
			return Decision{Swallow: true, Intent: NavigatePrevious}
		}
		return Decision{Swallow: true, Intent: NavigateNext}
	case KeyDown:
		return Decision{Swallow: true, Intent: NavigateNext}
	case KeyUp:
		return Decision{Swallow: true, Intent: NavigatePrevious}
	case KeyRight:
		return Decision{Swallow: true, Intent: GroupByProcess}
	case KeyLeft:
		return Decision{Swallow: true, Intent: UngroupFromProcess}
	case KeyW:
		return Decision{Swallow: true, Intent: CloseWindow}
	case KeyK:
		return Decision{Swallow: true, Intent: StopProcess}
	case KeyS:
		return Decision{Swallow: true, Intent: EnterSearch}
	case KeyC:
		return Decision{Swallow: true, Intent: CopyTitle}
	case KeyComma:
		return Decision{Swallow: true, Intent: OpenSettings}
	case KeyEscape:
		return Decision{Swallow: true, Intent: Cancel}
	}
	return pass
}
