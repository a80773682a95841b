package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	nuts "github.com/vaudience/go-nuts"
)

// BinaryName is the name the CLI is invoked as
const BinaryName = "temperature-detector"

var rootCmd = &cobra.Command{
	Use:   BinaryName,
	Short: "Simulated temperature sensor network",
	Long: `An HTTP service that simulates a small network of room temperature
sensors. Running without a subcommand starts the server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().String("host", "0.0.0.0", "Specify the host to which the server binds")
	rootCmd.PersistentFlags().IntP("port", "p", 8181, "Specify the port to which the server binds")
	rootCmd.PersistentFlags().Bool("no-banner", false, "Do not clear the console and draw the logo on start")

	viper.BindPFlag("server.host", rootCmd.PersistentFlags().Lookup("host"))
	viper.BindPFlag("server.port", rootCmd.PersistentFlags().Lookup("port"))
}

// Execute is the main entry point for our cobra commands
func Execute() error {
	rootCmd.Version = nuts.GetVersion()
	return rootCmd.Execute()
}
