// Package session holds the in-memory selection state of one switch
// interaction: the filtered/grouped view over the enumerated window set and
// the cursor into it.
package session

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/windrift/windrift/internal/logging/events"
	"github.com/windrift/windrift/internal/window"
)

// group remembers the state needed to reverse a group-by-process view
// restriction. The full list itself is always retained, so ungrouping is a
// recomputation rather than a restore.
type group struct {
	process string
}

// Model maintains the filtered/grouped window view and the selection
// cursor. Not safe for concurrent use; the orchestrator goroutine owns it.
type Model struct {
	full   []*window.Window
	view   []*window.Window
	cursor int
	filter string

	// Phonetic enables the fuzzy initials/transliteration match mode for
	// filters that the plain substring test misses.
	Phonetic bool

	grouped *group
}

// New returns an empty model.
func New() *Model {
	return &Model{}
}

// Refresh replaces the backing set wholesale and re-derives the view.
// selectSecond defaults the cursor to the second entry, used right after a
// hold-gesture open because the first entry is the window the user is
// already in.
func (m *Model) Refresh(raw []*window.Window, selectSecond bool) {
	m.full = append([]*window.Window(nil), raw...)
	m.grouped = nil
	m.applyView()
	m.cursor = 0
	if selectSecond && len(m.view) > 1 {
		m.cursor = 1
	}
}

// View returns the current filtered/grouped sequence.
func (m *Model) View() []*window.Window {
	return m.view
}

// Cursor returns the selection index, -1 when the view is empty.
func (m *Model) Cursor() int {
	if len(m.view) == 0 {
		return -1
	}
	return m.cursor
}

// Selected returns the window under the cursor, nil for an empty view.
func (m *Model) Selected() *window.Window {
	if len(m.view) == 0 {
		return nil
	}
	return m.view[m.cursor]
}

// Filter returns the active filter text.
func (m *Model) Filter() string {
	return m.filter
}

// Grouped reports whether a group-by-process restriction is active.
func (m *Model) Grouped() bool {
	return m.grouped != nil
}

// MoveNext advances the cursor, wrapping past the end.
func (m *Model) MoveNext() {
	if len(m.view) == 0 {
		return
	}
	m.cursor = (m.cursor + 1) % len(m.view)
	events.Session.Navigate(m.cursor)
}

// MovePrevious retreats the cursor, wrapping past the start.
func (m *Model) MovePrevious() {
	if len(m.view) == 0 {
		return
	}
	m.cursor = (m.cursor - 1 + len(m.view)) % len(m.view)
	events.Session.Navigate(m.cursor)
}

// Select moves the cursor to the window with the given handle. Reports
// false, leaving the cursor alone, when the handle is not in the view.
func (m *Model) Select(h window.Handle) bool {
	for i, w := range m.view {
		if w.Handle == h {
			m.cursor = i
			return true
		}
	}
	return false
}

// SetFilter re-derives the view for the given filter text. The cursor
// resets to the first match.
func (m *Model) SetFilter(text string) {
	m.filter = text
	m.applyView()
	m.cursor = 0
	m.clampCursor()
	events.Session.Filter(text, len(m.view))
}

// GroupByCurrentProcess restricts the view to windows sharing the current
// selection's process and remembers how to get back.
func (m *Model) GroupByCurrentProcess() {
	if m.grouped != nil {
		return
	}
	sel := m.Selected()
	if sel == nil {
		return
	}
	m.grouped = &group{process: sel.ProcessName}
	m.applyView()
	m.cursor = 0
	for i, w := range m.view {
		if w.Handle == sel.Handle {
			m.cursor = i
			break
		}
	}
	events.Session.Group(sel.ProcessName, len(m.view))
}

// Ungroup restores the full view. The cursor lands on the first window of
// the previously grouped process, or the first window overall when that
// process is gone.
func (m *Model) Ungroup() {
	if m.grouped == nil {
		return
	}
	process := m.grouped.process
	m.grouped = nil
	m.applyView()
	m.cursor = 0
	for i, w := range m.view {
		if w.ProcessName == process {
			m.cursor = i
			break
		}
	}
	events.Session.Ungroup(process)
}

// Remove drops a window from the model after an optimistic close/kill. The
// cursor is re-clamped; a grouping emptied by the removal is exited and the
// full view rebuilt. The surviving entries go into a fresh slice: views
// handed out before the removal keep reading the old backing array.
func (m *Model) Remove(h window.Handle) {
	kept := make([]*window.Window, 0, len(m.full))
	for _, w := range m.full {
		if w.Handle != h {
			kept = append(kept, w)
		}
	}
	m.full = kept
	m.applyView()
	if len(m.view) == 0 && m.grouped != nil {
		m.grouped = nil
		m.applyView()
		m.cursor = 0
	}
	m.clampCursor()
}

// applyView recomputes view = group(filter(full)) without touching the
// full backing list. Order is enumeration order throughout.
func (m *Model) applyView() {
	view := m.full
	if text := strings.TrimSpace(m.filter); text != "" {
		matched := make([]*window.Window, 0, len(view))
		for _, w := range view {
			if m.matches(w, text) {
				matched = append(matched, w)
			}
		}
		view = matched
	}
	if m.grouped != nil {
		restricted := make([]*window.Window, 0, len(view))
		for _, w := range view {
			if w.ProcessName == m.grouped.process {
				restricted = append(restricted, w)
			}
		}
		view = restricted
	}
	m.view = view
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if len(m.view) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.view) {
		m.cursor = len(m.view) - 1
	}
}

// matches applies the case-insensitive substring test over title and
// process name, widened to a normalized fuzzy match when phonetic search is
// enabled.
func (m *Model) matches(w *window.Window, text string) bool {
	lower := strings.ToLower(text)
	if strings.Contains(strings.ToLower(w.Title), lower) {
		return true
	}
	if strings.Contains(strings.ToLower(w.ProcessName), lower) {
		return true
	}
	if m.Phonetic {
		return fuzzy.MatchNormalizedFold(text, w.Title) ||
			fuzzy.MatchNormalizedFold(text, w.ProcessName)
	}
	return false
}
