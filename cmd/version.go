package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

type versionClient interface {
	Version() string
}

// NewVersionCmd creates the version command with explicit dependencies.
func NewVersionCmd(client versionClient) *cobra.Command {
	if client == nil {
		panic("NewVersionCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show the current version of objlist.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "objlist version %s\n", client.Version())
			return nil
		},
	}
}

// versionCmd represents the version command
var versionCmd = NewVersionCmd(coreClient)

func init() {
	RootCmd.AddCommand(versionCmd)
}
