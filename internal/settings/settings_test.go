package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/windrift/windrift/internal/hook"
)

func TestOpenMissingFileUsesDefaults(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	got := s.Current()
	if got.Activation != "alt" || got.Trigger != "tab" {
		t.Fatalf("unexpected default gesture: %+v", got)
	}
	if !got.HideOnFocusLoss {
		t.Fatalf("expected hide_on_focus_loss default true")
	}
	if got.PhoneticSearch {
		t.Fatalf("expected phonetic_search default false")
	}
}

func TestOpenReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	body := "gesture:\n  activation: shift\n  trigger: space\nphonetic_search: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	got := s.Current()
	if got.Activation != "shift" || got.Trigger != "space" {
		t.Fatalf("unexpected gesture: %+v", got)
	}
	if !got.PhoneticSearch {
		t.Fatalf("expected phonetic_search true")
	}
}

func TestBindingsTranslation(t *testing.T) {
	b := Settings{Activation: "shift", Trigger: "tilde", Secondary: "ctrl"}.Bindings()
	if b.Activation != hook.KeyShift || b.Trigger != 0xC0 || b.Secondary != 0x11 {
		t.Fatalf("unexpected bindings: %+v", b)
	}

	// Unknown names fall back rather than producing a dead gesture.
	b = Settings{Activation: "hyper", Trigger: "nope"}.Bindings()
	if b != hook.DefaultBindings {
		t.Fatalf("expected default bindings for unknown names, got %+v", b)
	}
}

func TestSetRefreshesSnapshot(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	s.Set("phonetic_search", true)
	if !s.Current().PhoneticSearch {
		t.Fatalf("expected Set to refresh the snapshot")
	}
}
