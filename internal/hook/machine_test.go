package hook

import "testing"

func decide(state State, ev KeyEvent, mods Modifiers) Decision {
	return Decide(state, DefaultBindings, ev, mods, false)
}

func TestHiddenOpensOnlyOnActivationCombo(t *testing.T) {
	d := decide(Hidden, KeyEvent{Key: KeyTab, Down: true}, Modifiers{Activation: true})
	if !d.Swallow || d.Intent != OpenRequested {
		t.Fatalf("expected swallowed OpenRequested, got %+v", d)
	}

	// Trigger without the modifier held passes through untouched.
	d = decide(Hidden, KeyEvent{Key: KeyTab, Down: true}, Modifiers{})
	if d.Swallow || d.Intent != None {
		t.Fatalf("expected pass-through, got %+v", d)
	}

	// Unrelated keys always pass while hidden.
	d = decide(Hidden, KeyEvent{Key: KeyW, Down: true}, Modifiers{Activation: true})
	if d.Swallow || d.Intent != None {
		t.Fatalf("expected pass-through, got %+v", d)
	}
}

func TestNavigatingTriggerDirection(t *testing.T) {
	d := decide(Navigating, KeyEvent{Key: KeyTab, Down: true}, Modifiers{Activation: true})
	if !d.Swallow || d.Intent != NavigateNext {
		t.Fatalf("expected NavigateNext, got %+v", d)
	}

	d = decide(Navigating, KeyEvent{Key: KeyTab, Down: true}, Modifiers{Activation: true, Secondary: true})
	if !d.Swallow || d.Intent != NavigatePrevious {
		t.Fatalf("expected NavigatePrevious with secondary modifier, got %+v", d)
	}
}

func TestNavigatingKeymap(t *testing.T) {
	cases := []struct {
		key  Key
		want Intent
	}{
		{KeyDown, NavigateNext},
		{KeyUp, NavigatePrevious},
		{KeyRight, GroupByProcess},
		{KeyLeft, UngroupFromProcess},
		{KeyW, CloseWindow},
		{KeyK, StopProcess},
		{KeyS, EnterSearch},
		{KeyC, CopyTitle},
		{KeyComma, OpenSettings},
		{KeyEscape, Cancel},
	}
	for _, tc := range cases {
		t.Run(tc.want.String(), func(t *testing.T) {
			d := decide(Navigating, KeyEvent{Key: tc.key, Down: true}, Modifiers{Activation: true})
			if !d.Swallow || d.Intent != tc.want {
				t.Fatalf("expected swallowed %v, got %+v", tc.want, d)
			}
		})
	}
}

func TestNavigatingModifierReleaseCommits(t *testing.T) {
	d := decide(Navigating, KeyEvent{Key: KeyAlt, Down: false}, Modifiers{})
	if !d.Swallow || d.Intent != CommitSelection {
		t.Fatalf("expected CommitSelection on activation release, got %+v", d)
	}

	// Key-up of ordinary keys is not translated.
	d = decide(Navigating, KeyEvent{Key: KeyW, Down: false}, Modifiers{Activation: true})
	if d.Swallow || d.Intent != None {
		t.Fatalf("expected pass-through on key-up, got %+v", d)
	}
}

func TestSearchingOnlyInterceptsEscapeAndCommit(t *testing.T) {
	// Letters must reach the text-entry surface.
	for _, key := range []Key{KeyW, KeyK, KeyS, KeyTab, KeyDown} {
		d := decide(Searching, KeyEvent{Key: key, Down: true}, Modifiers{})
		if d.Swallow || d.Intent != None {
			t.Fatalf("expected key %#x to pass in search mode, got %+v", key, d)
		}
	}

	d := decide(Searching, KeyEvent{Key: KeyEscape, Down: true}, Modifiers{})
	if !d.Swallow || d.Intent != Cancel {
		t.Fatalf("expected Cancel, got %+v", d)
	}

	d = decide(Searching, KeyEvent{Key: KeyAlt, Down: false}, Modifiers{})
	if !d.Swallow || d.Intent != CommitSelection {
		t.Fatalf("expected CommitSelection, got %+v", d)
	}
}

func TestEscapeRoutesToSettingsSurface(t *testing.T) {
	for _, state := range []State{Hidden, Navigating, Searching} {
		d := Decide(state, DefaultBindings, KeyEvent{Key: KeyEscape, Down: true}, Modifiers{Activation: true}, true)
		if !d.Swallow || d.Intent != DismissSettings {
			t.Fatalf("state %d: expected DismissSettings while panel open, got %+v", state, d)
		}
	}

	// Without the activation modifier held, the normal rules apply.
	d := Decide(Navigating, DefaultBindings, KeyEvent{Key: KeyEscape, Down: true}, Modifiers{}, true)
	if d.Intent != Cancel {
		t.Fatalf("expected plain Cancel without modifier, got %+v", d)
	}
}

func TestCustomBindings(t *testing.T) {
	b := Bindings{Activation: KeyShift, Trigger: KeyS}
	d := Decide(Hidden, b, KeyEvent{Key: KeyS, Down: true}, Modifiers{Activation: true}, false)
	if !d.Swallow || d.Intent != OpenRequested {
		t.Fatalf("expected OpenRequested for rebound trigger, got %+v", d)
	}
	d = Decide(Navigating, b, KeyEvent{Key: KeyShift, Down: false}, Modifiers{}, false)
	if d.Intent != CommitSelection {
		t.Fatalf("expected CommitSelection for rebound activation release, got %+v", d)
	}
}
