// Package app bootstraps the engine: platform probing, settings, the
// keyboard gate, the orchestrator, and optionally the console presenter.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/windrift/windrift/internal/hook"
	"github.com/windrift/windrift/internal/logging"
	"github.com/windrift/windrift/internal/settings"
	"github.com/windrift/windrift/internal/switcher"
	"github.com/windrift/windrift/internal/tui"
	"github.com/windrift/windrift/internal/window"
)

// Config describes user-provided application options.
type Config struct {
	SettingsPath string
	Console      bool
	Verbose      bool
}

const focusPollInterval = 250 * time.Millisecond

// Run bootstraps the engine and blocks until it exits.
func Run(cfg Config) error {
	if cfg.Verbose {
		// Verbose mode logs individual key decisions and filter updates,
		// which is exactly the trace stream.
		logging.SetTraceEnabled(true)
	}

	platform, err := window.NewPlatform()
	if err != nil {
		return fmt.Errorf("platform: %w", err)
	}

	store, err := settings.Open(settingsPath(cfg.SettingsPath))
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	store.Watch()

	deps := switcher.Deps{
		Windows:   window.NewEnumerator(platform),
		Activator: window.NewActivator(platform),
		Processes: window.NewController(platform),
		Settings:  store,
		Clipboard: clipboard.WriteAll,
	}

	gate, gateErr := openGate(store.Current().Bindings())
	if gateErr != nil {
		if !cfg.Console {
			return fmt.Errorf("keyboard gate: %w", gateErr)
		}
		logging.Warn(fmt.Sprintf("keyboard gate unavailable, presenter keys only: %v", gateErr))
	}
	if gate != nil {
		deps.Gate = gate
		defer gate.Close()
	}

	// The watcher always runs; the orchestrator re-reads hide_on_focus_loss
	// per event, so toggling it in the settings file works without a restart.
	watcher := window.NewFocusWatcher(platform, focusPollInterval)
	defer watcher.Stop()
	deps.Focus = watcher.Events()

	orch := switcher.New(deps)

	if cfg.Console {
		return runConsole(orch)
	}
	return orch.Run(context.Background())
}

// runConsole hosts the orchestrator alongside a Bubble Tea presenter. The
// presenter owns the terminal; the orchestrator runs beside it and quits
// the program when its loop ends.
func runConsole(orch *switcher.Orchestrator) error {
	model := tui.NewModel(orch.Commands())
	program := tea.NewProgram(model, tea.WithAltScreen())
	orch.SetPresenter(tui.NewPresenter(program))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- orch.Run(ctx)
		program.Quit()
	}()

	_, err := program.Run()
	cancel()
	if runErr := <-done; runErr != nil && runErr != context.Canceled {
		return runErr
	}
	return err
}

// openGate installs the low-level tap, falling back to plain hotkey
// registration when the hook cannot install.
func openGate(b hook.Bindings) (switcher.Gate, error) {
	tap, err := hook.NewTap(b)
	if err == nil {
		return tap, nil
	}
	logging.Error(fmt.Errorf("keyboard tap unavailable: %w", err))
	hotkey, hkErr := hook.NewHotkey(b)
	if hkErr == nil {
		return hotkey, nil
	}
	return nil, fmt.Errorf("tap: %v; hotkey: %w", err, hkErr)
}

// settingsPath defaults to windrift.yaml next to the executable, matching
// where a portable install keeps its state.
func settingsPath(configured string) string {
	if configured != "" {
		return configured
	}
	exe, err := os.Executable()
	if err != nil {
		return "windrift.yaml"
	}
	return filepath.Join(filepath.Dir(exe), "windrift.yaml")
}
