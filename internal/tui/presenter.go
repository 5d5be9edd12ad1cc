package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/windrift/windrift/internal/switcher"
)

// Presenter forwards orchestrator session callbacks into the running
// Bubble Tea program. Send is safe from any goroutine and never blocks the
// caller meaningfully, which keeps the orchestrator loop responsive.
type Presenter struct {
	program *tea.Program
}

// NewPresenter wraps a running program.
func NewPresenter(p *tea.Program) *Presenter {
	return &Presenter{program: p}
}

func (p *Presenter) SessionOpened(v switcher.View) {
	p.program.Send(sessionOpenedMsg{view: v})
}

func (p *Presenter) SessionUpdated(v switcher.View) {
	p.program.Send(sessionUpdatedMsg{view: v})
}

func (p *Presenter) SessionClosed() {
	p.program.Send(sessionClosedMsg{})
}
