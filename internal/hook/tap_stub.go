//go:build !windows

package hook

import "errors"

// ErrUnsupported is returned on platforms without global key interception.
var ErrUnsupported = errors.New("hook: keyboard interception not supported")

// Tap is unavailable off Windows; the console presenter drives the
// orchestrator directly instead.
type Tap struct{}

// NewTap always fails on this platform.
func NewTap(Bindings) (*Tap, error) { return nil, ErrUnsupported }

func (*Tap) Intents() <-chan Intent { return nil }
func (*Tap) SetState(State)         {}
func (*Tap) SetSettingsOpen(bool)   {}
func (*Tap) SetBindings(Bindings)   {}
func (*Tap) Dropped() uint64        { return 0 }
func (*Tap) Close() error           { return nil }

// Hotkey is likewise unavailable.
type Hotkey struct{}

// NewHotkey always fails on this platform.
func NewHotkey(Bindings) (*Hotkey, error) { return nil, ErrUnsupported }

func (*Hotkey) Intents() <-chan Intent { return nil }
func (*Hotkey) SetState(State)         {}
func (*Hotkey) SetSettingsOpen(bool)   {}
func (*Hotkey) SetBindings(Bindings)   {}
func (*Hotkey) Close() error           { return nil }
