package state

import (
	"bytes"
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// stateSavedMsg reports the result of the final state write.
type stateSavedMsg struct {
	err error
}

// handleKeyMsg processes keyboard input for the TUI.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.CloseDetail):
		m.panes.closeTop()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Home):
		m.setCursor(0)
	case key.Matches(msg, m.keys.End):
		m.setCursor(m.win.Model().Len() - 1)
	case key.Matches(msg, m.keys.Toggle):
		m.win.Toggle(m.cursor)
	case key.Matches(msg, m.keys.Invert):
		m.win.InvertSelection()
	case key.Matches(msg, m.keys.Info):
		m.showSelected()
	case key.Matches(msg, m.keys.Select):
		m.win.SelectInstances()
	case key.Matches(msg, m.keys.Activate):
		m.activate()
	case key.Matches(msg, m.keys.Recalculate):
		m.recalculate()
	default:
		return m, nil
	}
	m.refresh()
	return m, m.takePending()
}

// handleMouseMsg moves the cursor on click and activates on double-click.
func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.quitting || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(-1)
	case tea.MouseButtonWheelDown:
		m.moveCursor(1)
	case tea.MouseButtonLeft:
		row, ok := m.rowAt(msg.Y)
		if !ok {
			return m, nil
		}
		m.setCursor(row)
		m.win.View().Activate(m.clickCount(row))
	default:
		return m, nil
	}
	m.refresh()
	return m, m.takePending()
}

// clickCount returns 2 when row was clicked within the double-click interval.
func (m *Model) clickCount(row int) int {
	now := m.now()
	if !m.lastClick.at.IsZero() && m.lastClick.row == row && now.Sub(m.lastClick.at) <= m.doubleClick {
		m.lastClick = click{}
		return 2
	}
	m.lastClick = click{row: row, at: now}
	return 1
}

// rowAt maps a screen line to a list row.
func (m *Model) rowAt(y int) (int, bool) {
	line := y - 1
	if line < 0 || line >= m.viewport.Height {
		return 0, false
	}
	row := m.viewport.YOffset + line
	if row >= m.win.Model().Len() {
		return 0, false
	}
	return row, true
}

func (m *Model) moveCursor(delta int) {
	m.setCursor(m.cursor + delta)
}

func (m *Model) setCursor(row int) {
	m.cursor = max(0, min(row, m.win.Model().Len()-1))
}

func (m *Model) activate() {
	if !m.win.View().Activate(2) {
		m.errorHandler.Warning("nothing to select")
	}
}

func (m *Model) showSelected() {
	w, err := m.win.ShowSelected()
	switch {
	case err != nil:
		m.errorHandler.Error(fmt.Sprintf("could not open %s: %v", m.win.DetailTitle(), err))
	case w == nil:
		m.errorHandler.Warning("select objects first")
	}
}

func (m *Model) recalculate() {
	if err := m.win.Recalculate(); err != nil {
		m.errorHandler.Error(fmt.Sprintf("recalculate failed: %v", err))
		return
	}
	m.setCursor(m.cursor)
	m.errorHandler.Info(fmt.Sprintf("%d objects", m.win.Model().Len()))
}

// quit serializes the window and hands the store write to a command. The
// window closes once the write is done.
func (m *Model) quit() tea.Cmd {
	m.quitting = true
	if m.store == nil {
		m.closeWindow()
		return tea.Quit
	}

	var buf bytes.Buffer
	if err := m.win.Save(&buf); err != nil {
		m.logger.Warn("window state saved partially", "error", err)
	}
	store, name, data := m.store, m.windowName, buf.Bytes()
	return func() tea.Msg {
		return stateSavedMsg{err: store.Save(context.Background(), name, data)}
	}
}

func (m *Model) handleStateSaved(msg stateSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Error("save window state failed", "name", m.windowName, "error", msg.err)
		m.errorHandler.Error(fmt.Sprintf("could not save window state: %v", msg.err))
	}
	m.closeWindow()
	return m, tea.Quit
}

func (m *Model) closeWindow() {
	if err := m.win.Close(); err != nil {
		m.logger.Warn("closing detail windows failed", "error", err)
	}
}
