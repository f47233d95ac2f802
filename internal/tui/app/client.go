package app

import (
	"context"
	stderrors "errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/objlist/internal/catalog"
	"github.com/cristianoliveira/objlist/internal/colors"
	"github.com/cristianoliveira/objlist/internal/hooks"
	"github.com/cristianoliveira/objlist/internal/listmodel"
	"github.com/cristianoliveira/objlist/internal/logging"
	"github.com/cristianoliveira/objlist/internal/storage"
	"github.com/cristianoliveira/objlist/internal/tui/state"
)

// CatalogLoader loads the catalog listed by the window.
type CatalogLoader func(path string) (*catalog.Catalog, error)

// StoreOpener opens the window state store.
type StoreOpener func() (storage.Store, error)

// Client builds and runs the TUI.
type Client struct {
	loadCatalog   CatalogLoader
	openStore     StoreOpener
	programRunner ProgramRunner
	hooks         *hooks.Runner
}

// NewClient creates a TUI client. Nil arguments select the defaults:
// catalog.Load, storage.NewFromConfig and DefaultProgramRunner.
func NewClient(loadCatalog CatalogLoader, openStore StoreOpener, programRunner ProgramRunner) *Client {
	if loadCatalog == nil {
		loadCatalog = catalog.Load
	}
	if openStore == nil {
		openStore = storage.NewFromConfig
	}
	if programRunner == nil {
		programRunner = NewDefaultProgramRunner()
	}
	return &Client{
		loadCatalog:   loadCatalog,
		openStore:     openStore,
		programRunner: programRunner,
		hooks:         hooks.NewFromConfig(),
	}
}

// selectHook runs the select hook scripts off the update loop.
func selectHook(runner *hooks.Runner, window string) func([]listmodel.Item) tea.Cmd {
	return func(items []listmodel.Item) tea.Cmd {
		if len(runner.Scripts(hooks.PointSelect)) == 0 {
			return nil
		}
		env := hooks.SelectionEnv(window, items)
		return func() tea.Msg {
			err := runner.Run(context.Background(), hooks.PointSelect, env)
			return state.SelectionDoneMsg{Count: len(items), Err: err}
		}
	}
}

// Run loads the catalog, opens the store and runs the program until quit.
// A missing catalog shows an empty list; an unusable store disables
// persistence.
func (c *Client) Run(catalogPath string) error {
	cat, err := c.loadCatalog(catalogPath)
	switch {
	case stderrors.Is(err, catalog.ErrNotFound):
		colors.Warning(fmt.Sprintf("catalog not found at %s, starting with an empty list", catalogPath))
	case err != nil:
		return err
	}

	store, err := c.openStore()
	if err != nil {
		colors.Warning(fmt.Sprintf("window state will not be saved: %v", err))
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := state.ConfigFromGlobal()
	cfg.Title = cfg.WindowName
	cfg.Fill = cat.Fill
	cfg.Store = store
	cfg.Logger = logging.With("component", "tui")
	cfg.OnSelect = selectHook(c.hooks, cfg.WindowName)
	m, err := state.NewModel(cfg)
	if err != nil {
		return err
	}

	if err := c.programRunner.Run(m); err != nil {
		colors.Error(fmt.Sprintf("Error running TUI: %v", err))
		return err
	}
	return nil
}
