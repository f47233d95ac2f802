package cmd

import (
	"github.com/spf13/cobra"
)

type tuiClient interface {
	RunTUI() error
}

const tuiCommandLong = `Open the interactive object list.

USAGE:
    objlist tui

KEYS:
    space       Toggle the object under the cursor
    n           Invert the selection
    i           Open an info window for the selection
    esc         Close the newest info window
    s, enter    Confirm the selection (also double-click)
    r           Reload the list
    q           Save the window state and quit`

// NewTUICmd creates the tui command with explicit dependencies.
func NewTUICmd(client tuiClient) *cobra.Command {
	if client == nil {
		panic("NewTUICmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive object list",
		Long:  tuiCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.RunTUI()
		},
	}
}

// tuiCmd represents the tui command
var tuiCmd = NewTUICmd(coreClient)

func init() {
	RootCmd.AddCommand(tuiCmd)
}
