// Package settings holds the user-tunable runtime options. Unlike the
// process configuration in internal/config, these can change while the
// application runs: the backing file is watched and edits are applied to
// the live session.
package settings

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/windrift/windrift/internal/hook"
)

// Settings is one immutable snapshot of the user options.
type Settings struct {
	// Activation, Trigger and Secondary name the keys of the hold gesture;
	// Secondary reverses navigation direction.
	Activation string
	Trigger    string
	Secondary  string

	// HideOnFocusLoss closes the session when another window takes the
	// foreground while the switcher is open.
	HideOnFocusLoss bool

	// PhoneticSearch enables accent-folding fuzzy matching in search mode.
	PhoneticSearch bool
}

// Bindings translates the configured key names into gesture bindings.
// Unknown names fall back to the defaults rather than failing: a typo in
// the settings file must not leave the user without a switcher.
func (s Settings) Bindings() hook.Bindings {
	b := hook.DefaultBindings
	if k, ok := keyNames[strings.ToLower(s.Activation)]; ok {
		b.Activation = k
	}
	if k, ok := keyNames[strings.ToLower(s.Trigger)]; ok {
		b.Trigger = k
	}
	if k, ok := keyNames[strings.ToLower(s.Secondary)]; ok {
		b.Secondary = k
	}
	return b
}

var keyNames = map[string]hook.Key{
	"alt":   hook.KeyAlt,
	"shift": hook.KeyShift,
	"ctrl":  0x11,
	"tab":   hook.KeyTab,
	"space": 0x20,
	"tilde": 0xC0,
}

// Store loads, watches, and serves settings snapshots.
type Store struct {
	v *viper.Viper

	mu      sync.RWMutex
	current Settings

	changes chan Settings
}

// Open reads the settings file at path. A missing file is not an error;
// the defaults apply and the file is created on first Save.
func Open(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("gesture.activation", "alt")
	v.SetDefault("gesture.trigger", "tab")
	v.SetDefault("gesture.secondary", "shift")
	v.SetDefault("hide_on_focus_loss", true)
	v.SetDefault("phonetic_search", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(underlying(err)) {
			return nil, fmt.Errorf("read settings %s: %w", path, err)
		}
	}

	s := &Store{
		v:       v,
		changes: make(chan Settings, 1),
	}
	s.current = s.snapshot()
	return s, nil
}

// Current returns the latest snapshot.
func (s *Store) Current() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Changes delivers a snapshot whenever the backing file is edited.
// Coalescing is fine: only the newest snapshot matters.
func (s *Store) Changes() <-chan Settings {
	return s.changes
}

// Watch starts delivering file edits on Changes. It returns immediately.
func (s *Store) Watch() {
	s.v.OnConfigChange(func(fsnotify.Event) {
		s.mu.Lock()
		s.current = s.snapshot()
		cur := s.current
		s.mu.Unlock()

		select {
		case s.changes <- cur:
		default:
			// Drain the stale snapshot and replace it.
			select {
			case <-s.changes:
			default:
			}
			select {
			case s.changes <- cur:
			default:
			}
		}
	})
	s.v.WatchConfig()
}

// Save writes the current option values back to the settings file.
func (s *Store) Save() error {
	return s.v.WriteConfigAs(s.v.ConfigFileUsed())
}

// Set updates one option by its configuration key and refreshes the
// current snapshot.
func (s *Store) Set(key string, value interface{}) {
	s.v.Set(key, value)
	s.mu.Lock()
	s.current = s.snapshot()
	s.mu.Unlock()
}

func underlying(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr
	}
	return err
}

func (s *Store) snapshot() Settings {
	return Settings{
		Activation:      s.v.GetString("gesture.activation"),
		Trigger:         s.v.GetString("gesture.trigger"),
		Secondary:       s.v.GetString("gesture.secondary"),
		HideOnFocusLoss: s.v.GetBool("hide_on_focus_loss"),
		PhoneticSearch:  s.v.GetBool("phonetic_search"),
	}
}
