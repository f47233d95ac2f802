package cmd

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/cristianoliveira/objlist/internal/catalog"
	"github.com/cristianoliveira/objlist/internal/colors"
	"github.com/cristianoliveira/objlist/internal/format"
	"github.com/cristianoliveira/objlist/internal/listmodel"
	"github.com/cristianoliveira/objlist/internal/logging"
	"github.com/cristianoliveira/objlist/internal/storage"
	"github.com/cristianoliveira/objlist/internal/window"
	"github.com/spf13/cobra"
)

type listClient interface {
	LoadCatalog() (*catalog.Catalog, error)
	OpenStore() (storage.Store, error)
	WindowName() string
	RunSelectHooks(ctx context.Context, window string, items []listmodel.Item) error
}

const listCommandLong = `List the catalog objects and apply a selection without the TUI.

USAGE:
    objlist list [OPTIONS]

OPTIONS:
    --select <i,j>   Select rows by 0-based index; out-of-range rows are ignored
    --invert         Invert the selection after --select
    --confirm        Run the select hooks with the resulting selection
    --format <fmt>   Output format: simple (default), table, json
    --save           Save the resulting window state for the next tui run
    -h, --help       Show this help`

// ListOptions controls one headless list run.
type ListOptions struct {
	Select  []int
	Invert  bool
	Confirm bool
	Save    bool
	Format  string
}

// NewListCmd creates the list command with explicit dependencies.
func NewListCmd(client listClient) *cobra.Command {
	if client == nil {
		panic("NewListCmd: client dependency cannot be nil")
	}

	var opts ListOptions
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List objects and apply a selection",
		Long:  listCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(contextOf(cmd), cmd.OutOrStdout(), client, opts)
		},
	}
	listCmd.Flags().IntSliceVar(&opts.Select, "select", nil, "rows to select")
	listCmd.Flags().BoolVar(&opts.Invert, "invert", false, "invert the selection")
	listCmd.Flags().BoolVar(&opts.Confirm, "confirm", false, "run the select hooks")
	listCmd.Flags().StringVar(&opts.Format, "format", string(format.TypeSimple), "output format: simple, table, json")
	listCmd.Flags().BoolVar(&opts.Save, "save", false, "save the window state")
	return listCmd
}

func runList(ctx context.Context, out io.Writer, client listClient, opts ListOptions) error {
	cat, err := client.LoadCatalog()
	switch {
	case stderrors.Is(err, catalog.ErrNotFound):
		colors.Warning(err.Error())
	case err != nil:
		return err
	}

	name := client.WindowName()
	var hookErr error
	w := window.New(window.HookFuncs{
		Fill: cat.Fill,
		Select: func(items []listmodel.Item) {
			hookErr = client.RunSelectHooks(ctx, name, items)
		},
	}, window.Options{
		Title:  name,
		Logger: logging.With("command", "list"),
	})
	defer w.Close()

	if err := w.SetVisible(true); err != nil {
		return err
	}
	if len(opts.Select) > 0 {
		w.Select(opts.Select...)
	}
	if opts.Invert {
		w.InvertSelection()
	}
	formatter, err := format.New(format.Type(opts.Format))
	if err != nil {
		return err
	}
	if err := formatter.Format(format.Rows(w.Model()), out); err != nil {
		return err
	}

	if opts.Confirm {
		w.SelectInstances()
		if hookErr != nil {
			return fmt.Errorf("select hooks: %w", hookErr)
		}
	}
	if !opts.Save {
		return nil
	}
	return saveWindow(ctx, client, name, w)
}

func saveWindow(ctx context.Context, client listClient, name string, w *window.ObjectListWindow) error {
	store, err := client.OpenStore()
	if err != nil {
		return fmt.Errorf("open state store: %w", err)
	}
	defer store.Close()

	var buf bytes.Buffer
	if err := w.Save(&buf); err != nil {
		colors.Warning(fmt.Sprintf("window state saved partially: %v", err))
	}
	if err := store.Save(ctx, name, buf.Bytes()); err != nil {
		return fmt.Errorf("save window state: %w", err)
	}
	colors.Success(fmt.Sprintf("saved window state %s", name))
	return nil
}

// listCmd represents the list command
var listCmd = NewListCmd(coreClient)

func init() {
	RootCmd.AddCommand(listCmd)
}
