package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	nuts "github.com/vaudience/go-nuts"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", BinaryName, nuts.GetVersion())
	},
}
