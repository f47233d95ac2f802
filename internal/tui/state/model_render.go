package state

import (
	"strings"

	"github.com/cristianoliveira/objlist/internal/tui/render"
	"github.com/cristianoliveira/objlist/internal/window"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder
	model := m.win.Model()
	s.WriteString(render.Header(m.win.Title(), model.Len(), model.SelectedCount(), m.width))
	s.WriteString("\n")
	if m.win.View().Mode() == window.ViewEmpty {
		s.WriteString(render.Placeholder(window.EmptyMessage))
	} else {
		s.WriteString(m.viewport.View())
	}
	s.WriteString("\n")
	s.WriteString(render.Footer(render.FooterState{
		Help:       m.help.View(m.keys),
		Status:     m.statusMessage,
		StatusType: m.statusMessageType,
		Width:      m.width,
	}))

	return m.drawPanes(s.String())
}

// drawPanes composites the open detail panes over screen, oldest first.
func (m *Model) drawPanes(screen string) string {
	if m.panes.len() == 0 {
		return screen
	}
	if lines := strings.Count(screen, "\n") + 1; lines < m.height {
		screen += strings.Repeat("\n", m.height-lines)
	}
	origin := m.win.Location()
	for _, p := range m.panes.panes {
		box := render.Pane(p.title, p.items, m.width)
		w, h := render.Size(box)
		x, y := render.Fit(p.position.X-origin.X, p.position.Y-origin.Y, w, h, m.width, m.height)
		screen = render.OverlayAt(screen, box, x, y, m.width, m.height)
	}
	return screen
}

// refresh resizes the viewport to the window rows and redraws the list.
func (m *Model) refresh() {
	m.viewport.Width = m.width
	m.viewport.Height = max(1, min(m.win.View().Rows(), m.height-headerFooterLines))

	model := m.win.Model()
	lines := make([]string, 0, model.Len())
	for i, item := range model.Items() {
		lines = append(lines, render.Row(render.RowState{
			Label:    item.Label(),
			Cursor:   i == m.cursor,
			Selected: model.IsSelected(i),
			Width:    m.width,
		}))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	switch {
	case m.cursor < m.viewport.YOffset:
		m.viewport.SetYOffset(m.cursor)
	case m.cursor >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}
