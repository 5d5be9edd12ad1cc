package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/windrift/windrift/internal/format/table"
)

const (
	maxTitleWidth = 60
	indicator     = "▌"
)

// View renders the session list.
func (m *Model) View() string {
	if !m.visible {
		return styles.Footer.Render("hidden · o opens a session, q quits") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteByte('\n')

	if m.view.SettingsOpen {
		b.WriteString(styles.Empty.Render("settings panel open: edit the settings file, esc dismisses"))
		b.WriteByte('\n')
	}

	if m.view.Searching {
		b.WriteString(m.search.View())
		b.WriteByte('\n')
	}

	if len(m.view.Windows) == 0 {
		b.WriteString(styles.Empty.Render("no windows match"))
		b.WriteByte('\n')
	} else {
		for _, line := range m.rows() {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	b.WriteString(m.footer())
	b.WriteByte('\n')
	return b.String()
}

func (m *Model) header() string {
	title := fmt.Sprintf("windows (%d)", len(m.view.Windows))
	if m.view.Grouped {
		title += " · grouped"
	}
	if m.view.Filter != "" {
		title += fmt.Sprintf(" · filter %q", m.view.Filter)
	}
	return styles.Header.Render(title)
}

func (m *Model) rows() []string {
	cells := make([][]string, 0, len(m.view.Windows))
	for _, w := range m.view.Windows {
		badge := ""
		if w.Elevated() {
			badge = styles.Elevated.Render("admin")
		}
		title := truncate.StringWithTail(w.Title, m.titleWidth(), "…")
		cells = append(cells, []string{title, styles.Process.Render(w.ProcessName), badge})
	}

	rows := table.Format(cells, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft})
	out := make([]string, len(rows))
	for i, row := range rows {
		if i == m.view.Cursor {
			out[i] = styles.SelectedIndicator.Render(indicator) + " " + styles.SelectedItem.Render(row)
			continue
		}
		out[i] = styles.ItemIndicator.Render(indicator) + " " + styles.Item.Render(row)
	}
	return out
}

func (m *Model) titleWidth() uint {
	if m.width > 0 && m.width-30 < maxTitleWidth {
		w := m.width - 30
		if w < 10 {
			w = 10
		}
		return uint(w)
	}
	return maxTitleWidth
}

func (m *Model) footer() string {
	if m.view.Searching {
		return styles.Footer.Render("enter activate · esc cancel")
	}
	return styles.Footer.Render("enter activate · j/k move · g/u group · / search · x close · X kill · esc cancel")
}
