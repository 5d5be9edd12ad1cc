// Package tui is the development presenter: a terminal rendering of the
// live session for driving the engine from a console, where the OS overlay
// the production shell would draw is unavailable or unwanted.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/windrift/windrift/internal/switcher"
)

var styles = Default()

// Messages delivered by the orchestrator through the Presenter adapter.
type (
	sessionOpenedMsg  struct{ view switcher.View }
	sessionUpdatedMsg struct{ view switcher.View }
	sessionClosedMsg  struct{}
)

// Model implements the Bubble Tea model for the console presenter.
type Model struct {
	commands chan<- switcher.Command

	view    switcher.View
	visible bool
	width   int
	height  int

	search textinput.Model
}

// NewModel wires a presenter model to the orchestrator's command channel.
func NewModel(commands chan<- switcher.Command) *Model {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Prompt = "/ "
	if styles.FilterPrompt != nil {
		ti.PromptStyle = *styles.FilterPrompt
	}
	if styles.Filter != nil {
		ti.TextStyle = *styles.Filter
	}
	return &Model{
		commands: commands,
		search:   ti,
	}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionOpenedMsg:
		m.view = msg.view
		m.visible = true
		m.search.SetValue("")
		return m, nil

	case sessionUpdatedMsg:
		m.view = msg.view
		if msg.view.Searching && !m.search.Focused() {
			return m, m.search.Focus()
		}
		if !msg.view.Searching && m.search.Focused() {
			m.search.Blur()
		}
		return m, nil

	case sessionClosedMsg:
		m.visible = false
		m.search.Blur()
		m.search.SetValue("")
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit works everywhere.
	switch msg.String() {
	case "ctrl+c":
		m.send(switcher.Command{Kind: switcher.CmdQuit})
		return m, tea.Quit
	}

	if !m.visible {
		switch msg.String() {
		case "q":
			m.send(switcher.Command{Kind: switcher.CmdQuit})
			return m, tea.Quit
		case "o", "tab":
			m.send(switcher.Command{Kind: switcher.CmdOpen})
		}
		return m, nil
	}

	if m.view.Searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "j", "down", "tab":
		m.send(switcher.Command{Kind: switcher.CmdNavigateNext})
	case "k", "up", "shift+tab":
		m.send(switcher.Command{Kind: switcher.CmdNavigatePrevious})
	case "enter":
		m.send(switcher.Command{Kind: switcher.CmdActivate})
	case "g":
		m.send(switcher.Command{Kind: switcher.CmdGroup})
	case "u":
		m.send(switcher.Command{Kind: switcher.CmdUngroup})
	case "x":
		m.send(switcher.Command{Kind: switcher.CmdCloseSelected})
	case "X":
		m.send(switcher.Command{Kind: switcher.CmdStopSelected})
	case "r":
		m.send(switcher.Command{Kind: switcher.CmdRefresh})
	case ",":
		if m.view.SettingsOpen {
			m.send(switcher.Command{Kind: switcher.CmdDismissSettings})
		} else {
			m.send(switcher.Command{Kind: switcher.CmdOpenSettings})
		}
	case "/":
		m.view.Searching = true
		m.send(switcher.Command{Kind: switcher.CmdFilter, Text: ""})
		return m, m.search.Focus()
	case "esc", "q":
		m.send(switcher.Command{Kind: switcher.CmdCancel})
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.Blur()
		m.search.SetValue("")
		m.send(switcher.Command{Kind: switcher.CmdCancel})
		return m, nil
	case "enter":
		m.send(switcher.Command{Kind: switcher.CmdActivate})
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		m.send(switcher.Command{Kind: switcher.CmdFilter, Text: after})
	}
	return m, cmd
}

// send never blocks the render loop; a full orchestrator queue drops the
// command and the next keypress retries.
func (m *Model) send(cmd switcher.Command) {
	select {
	case m.commands <- cmd:
	default:
	}
}
