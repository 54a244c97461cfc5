package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by the release build with
// -ldflags "-X github.com/abhisek/bizcheck/cmd.version=<tag>".
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the bizcheck build version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "bizcheck %s\n", version)
	},
}
