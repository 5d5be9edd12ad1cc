package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/windrift/windrift/internal/switcher"
	"github.com/windrift/windrift/internal/window"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testView() switcher.View {
	return switcher.View{
		Windows: []*window.Window{
			{Handle: 1, Title: "Editor", ProcessName: "editor"},
			{Handle: 2, Title: "Browser", ProcessName: "browser"},
		},
		Cursor: 1,
	}
}

func newTestModel(t *testing.T) (*Model, chan switcher.Command) {
	t.Helper()
	commands := make(chan switcher.Command, 8)
	m := NewModel(commands)
	return m, commands
}

func drainAll(commands chan switcher.Command) []switcher.Command {
	out := []switcher.Command{}
	for {
		select {
		case c := <-commands:
			out = append(out, c)
		default:
			return out
		}
	}
}

func drain(commands chan switcher.Command) []switcher.CommandKind {
	kinds := []switcher.CommandKind{}
	for _, c := range drainAll(commands) {
		kinds = append(kinds, c.Kind)
	}
	return kinds
}

func TestKeysMapToCommands(t *testing.T) {
	m, commands := newTestModel(t)
	m.Update(sessionOpenedMsg{view: testView()})

	cases := []struct {
		msg  tea.KeyMsg
		want switcher.CommandKind
	}{
		{keyRune('j'), switcher.CmdNavigateNext},
		{keyRune('k'), switcher.CmdNavigatePrevious},
		{tea.KeyMsg{Type: tea.KeyTab}, switcher.CmdNavigateNext},
		{keyRune('g'), switcher.CmdGroup},
		{keyRune('u'), switcher.CmdUngroup},
		{keyRune('x'), switcher.CmdCloseSelected},
		{keyRune('X'), switcher.CmdStopSelected},
		{keyRune('r'), switcher.CmdRefresh},
		{tea.KeyMsg{Type: tea.KeyEnter}, switcher.CmdActivate},
		{tea.KeyMsg{Type: tea.KeyEscape}, switcher.CmdCancel},
	}
	for _, tc := range cases {
		m.Update(tc.msg)
		got := drain(commands)
		if len(got) != 1 || got[0] != tc.want {
			t.Fatalf("key %q: expected %v, got %v", tc.msg.String(), tc.want, got)
		}
	}
}

func TestHiddenKeysOnlyOpenAndQuit(t *testing.T) {
	m, commands := newTestModel(t)

	m.Update(keyRune('j'))
	if got := drain(commands); len(got) != 0 {
		t.Fatalf("hidden presenter must not navigate, got %v", got)
	}

	m.Update(keyRune('o'))
	if got := drain(commands); len(got) != 1 || got[0] != switcher.CmdOpen {
		t.Fatalf("expected CmdOpen, got %v", got)
	}
}

func TestSearchTypingEmitsFilter(t *testing.T) {
	m, commands := newTestModel(t)
	m.Update(sessionOpenedMsg{view: testView()})

	m.Update(keyRune('/'))
	drain(commands) // the empty reset filter

	searching := testView()
	searching.Searching = true
	m.Update(sessionUpdatedMsg{view: searching})

	m.Update(keyRune('b'))
	got := drainAll(commands)
	if len(got) != 1 || got[0].Kind != switcher.CmdFilter || got[0].Text != "b" {
		t.Fatalf("expected filter command for typed rune, got %v", got)
	}
}

func TestViewRendersSessionList(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(sessionOpenedMsg{view: testView()})

	out := m.View()
	if !strings.Contains(out, "windows (2)") {
		t.Fatalf("expected header with count, got:\n%s", out)
	}
	if !strings.Contains(out, "Editor") || !strings.Contains(out, "Browser") {
		t.Fatalf("expected both titles rendered, got:\n%s", out)
	}

	m.Update(sessionClosedMsg{})
	out = m.View()
	if !strings.Contains(out, "hidden") {
		t.Fatalf("expected hidden notice, got:\n%s", out)
	}
}

func TestViewEmptyFilter(t *testing.T) {
	m, _ := newTestModel(t)
	v := switcher.View{Filter: "zz"}
	m.Update(sessionOpenedMsg{view: v})

	out := m.View()
	if !strings.Contains(out, "no windows match") {
		t.Fatalf("expected empty notice, got:\n%s", out)
	}
}
