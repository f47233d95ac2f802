// Package state holds the bubbletea model hosting one object list window.
package state

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/objlist/internal/config"
	"github.com/cristianoliveira/objlist/internal/detail"
	"github.com/cristianoliveira/objlist/internal/errors"
	"github.com/cristianoliveira/objlist/internal/listmodel"
	"github.com/cristianoliveira/objlist/internal/logging"
	"github.com/cristianoliveira/objlist/internal/storage"
	"github.com/cristianoliveira/objlist/internal/window"
)

const (
	// header line, status line and help line
	headerFooterLines     = 3
	defaultViewportWidth  = 80
	defaultViewportHeight = 24
	defaultDoubleClick    = 400 * time.Millisecond
)

// Config wires a Model to its host.
type Config struct {
	// WindowName keys the saved state in Store.
	WindowName string
	Title      string
	// Rows is the maximum number of visible list rows.
	Rows int
	// DetailOffset places detail panes relative to the list window.
	DetailOffset int
	// DoubleClick is the longest gap between two clicks of a double-click.
	DoubleClick time.Duration
	// Fill produces the listed objects.
	Fill listmodel.Producer
	// OnSelect is called with the selected objects on the select gesture.
	// The returned command, if any, runs outside the update loop and may
	// report back with a SelectionDoneMsg.
	OnSelect func(items []listmodel.Item) tea.Cmd
	// Store persists window state across runs. Nil disables persistence.
	Store  storage.Store
	Logger logging.Logger
}

// ConfigFromGlobal fills the presentation settings from the loaded config.
func ConfigFromGlobal() Config {
	return Config{
		WindowName:   config.Get("window_name", "objects"),
		Title:        "Objects",
		Rows:         config.GetInt("list_rows", window.DefaultRows),
		DetailOffset: config.GetInt("detail_offset", detail.DefaultOffset.X),
		DoubleClick:  time.Duration(config.GetInt("double_click_ms", 400)) * time.Millisecond,
	}
}

type click struct {
	row int
	at  time.Time
}

// Model represents the TUI model for bubbletea.
type Model struct {
	win    *window.ObjectListWindow
	panes  *paneStack
	keys   KeyMap
	help   help.Model
	logger logging.Logger

	viewport viewport.Model
	width    int
	height   int
	cursor   int

	errorHandler      *errors.TUIHandler
	statusMessage     string
	statusMessageType errors.MessageType

	doubleClick time.Duration
	lastClick   click
	now         func() time.Time

	store      storage.Store
	windowName string
	onSelect   func(items []listmodel.Item) tea.Cmd
	pending    []tea.Cmd
	quitting   bool
}

// NewModel creates the model, restores the saved window state and shows
// the window.
func NewModel(cfg Config) (*Model, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.GetGlobal()
	}
	doubleClick := cfg.DoubleClick
	if doubleClick <= 0 {
		doubleClick = defaultDoubleClick
	}
	if cfg.WindowName == "" {
		cfg.WindowName = "objects"
	}

	m := &Model{
		panes:       &paneStack{},
		keys:        DefaultKeyMap(),
		help:        help.New(),
		logger:      logger,
		viewport:    viewport.New(defaultViewportWidth, defaultViewportHeight-headerFooterLines),
		width:       defaultViewportWidth,
		height:      defaultViewportHeight,
		doubleClick: doubleClick,
		now:         time.Now,
		store:       cfg.Store,
		windowName:  cfg.WindowName,
		onSelect:    cfg.OnSelect,
	}
	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.statusMessage = msg.Text
		m.statusMessageType = msg.Type
	})

	var offset detail.Point
	if cfg.DetailOffset > 0 {
		offset = detail.Point{X: cfg.DetailOffset, Y: cfg.DetailOffset}
	}
	m.win = window.New(window.HookFuncs{
		Fill:   cfg.Fill,
		Select: m.handleSelectInstances,
	}, window.Options{
		Title:        cfg.Title,
		Factory:      m.panes,
		DetailOffset: offset,
		Rows:         cfg.Rows,
		Logger:       logger,
	})
	m.win.SetSize(m.width, m.height)

	if err := m.restore(); err != nil {
		return nil, err
	}
	m.refresh()
	return m, nil
}

// restore reads the saved state, if any, and makes sure the window is shown.
func (m *Model) restore() error {
	if m.store != nil {
		data, err := m.store.Load(context.Background(), m.windowName)
		switch {
		case stderrors.Is(err, storage.ErrStateNotFound):
			m.logger.Debug("no saved window state", "name", m.windowName)
		case err != nil:
			m.errorHandler.Warning(fmt.Sprintf("could not load window state: %v", err))
		default:
			if err := m.win.Read(bytes.NewReader(data)); err != nil {
				m.errorHandler.Warning(fmt.Sprintf("could not restore window state: %v", err))
			}
		}
	}
	if m.win.State() != window.Displayed {
		if err := m.win.SetVisible(true); err != nil {
			return fmt.Errorf("show window: %w", err)
		}
	}
	return nil
}

// Window returns the hosted object list window.
func (m *Model) Window() *window.ObjectListWindow { return m.win }

// Cursor returns the row under the cursor.
func (m *Model) Cursor() int { return m.cursor }

// OpenPanes returns the number of detail panes on screen.
func (m *Model) OpenPanes() int { return m.panes.len() }

// Status returns the current status line message.
func (m *Model) Status() (string, errors.MessageType) {
	return m.statusMessage, m.statusMessageType
}

// Init initializes the TUI model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case stateSavedMsg:
		return m.handleStateSaved(msg)
	case SelectionDoneMsg:
		return m.handleSelectionDone(msg)
	}
	return m, nil
}

func (m *Model) handleSelectInstances(items []listmodel.Item) {
	m.logger.Info("objects selected", "count", len(items))
	m.errorHandler.Info(fmt.Sprintf("selected %d objects", len(items)))
	if m.onSelect == nil {
		return
	}
	if cmd := m.onSelect(items); cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

// SelectionDoneMsg reports that the host finished handling a selection.
type SelectionDoneMsg struct {
	Count int
	Err   error
}

func (m *Model) handleSelectionDone(msg SelectionDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("select handler failed", "error", msg.Err)
		m.errorHandler.Error(fmt.Sprintf("select failed: %v", msg.Err))
		return m, nil
	}
	m.errorHandler.Success(fmt.Sprintf("handled %d objects", msg.Count))
	return m, nil
}

// takePending returns the commands queued during the last update.
func (m *Model) takePending() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = max(msg.Width, 1)
	m.height = max(msg.Height, 1)
	m.win.SetSize(m.width, m.height)
	m.help.Width = m.width
	m.refresh()
	return m, nil
}
