package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the application version. Set at build time via -ldflags.
var Version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "fixgalleria "+Version)
			return err
		},
	}
}
