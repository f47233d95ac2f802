package cmd

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/cristianoliveira/objlist/internal/colors"
	"github.com/cristianoliveira/objlist/internal/storage"
	"github.com/cristianoliveira/objlist/internal/window"
	"github.com/spf13/cobra"
)

type stateClient interface {
	OpenStore() (storage.Store, error)
	WindowName() string
}

// NewStateCmd creates the state command group with explicit dependencies.
func NewStateCmd(client stateClient) *cobra.Command {
	if client == nil {
		panic("NewStateCmd: client dependency cannot be nil")
	}

	stateCmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect or clear saved window state",
		Long: `Inspect or clear saved window state.

USAGE:
    objlist state show [NAME]
    objlist state clear [NAME]
    objlist state list

NAME defaults to the window_name setting.`,
	}

	stateCmd.AddCommand(&cobra.Command{
		Use:   "show [NAME]",
		Short: "Decode a saved window state",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(client, func(store storage.Store) error {
				return showState(contextOf(cmd), cmd.OutOrStdout(), store, nameArg(client, args))
			})
		},
	})
	stateCmd.AddCommand(&cobra.Command{
		Use:   "clear [NAME]",
		Short: "Delete a saved window state",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(client, func(store storage.Store) error {
				return clearState(contextOf(cmd), store, nameArg(client, args))
			})
		},
	})
	stateCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved window states",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(client, func(store storage.Store) error {
				return listStates(contextOf(cmd), cmd.OutOrStdout(), store)
			})
		},
	})
	return stateCmd
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func nameArg(client stateClient, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return client.WindowName()
}

func withStore(client stateClient, fn func(storage.Store) error) error {
	store, err := client.OpenStore()
	if err != nil {
		return fmt.Errorf("open state store: %w", err)
	}
	defer store.Close()
	return fn(store)
}

func showState(ctx context.Context, out io.Writer, store storage.Store, name string) error {
	data, err := store.Load(ctx, name)
	if stderrors.Is(err, storage.ErrStateNotFound) {
		return fmt.Errorf("no saved state for %s", name)
	}
	if err != nil {
		return err
	}

	snap, frame, err := window.Inspect(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode state %s: %w", name, err)
	}

	selection := "none"
	if len(snap.Indices) > 0 {
		parts := make([]string, len(snap.Indices))
		for i, idx := range snap.Indices {
			parts[i] = strconv.Itoa(idx)
		}
		selection = strings.Join(parts, ", ")
	}
	fmt.Fprintf(out, "window:    %s\n", name)
	fmt.Fprintf(out, "selection: %s\n", selection)
	fmt.Fprintf(out, "frame:     x=%d y=%d width=%d height=%d visible=%t\n",
		frame.X, frame.Y, frame.Width, frame.Height, frame.Visible)
	return nil
}

func clearState(ctx context.Context, store storage.Store, name string) error {
	err := store.Delete(ctx, name)
	if stderrors.Is(err, storage.ErrStateNotFound) {
		colors.Info(fmt.Sprintf("no saved state for %s", name))
		return nil
	}
	if err != nil {
		return err
	}
	colors.Success(fmt.Sprintf("cleared saved state for %s", name))
	return nil
}

func listStates(ctx context.Context, out io.Writer, store storage.Store) error {
	entries, err := store.List(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "no saved window states")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%-20s %6d bytes  %s\n", e.Name, e.Size, e.UpdatedAt.Format(time.RFC3339))
	}
	return nil
}

// stateCmd represents the state command
var stateCmd = NewStateCmd(coreClient)

func init() {
	RootCmd.AddCommand(stateCmd)
}
