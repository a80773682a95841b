package cli

import (
	"fmt"

	tm "github.com/buger/goterm"
	"github.com/spf13/cobra"
	nuts "github.com/vaudience/go-nuts"

	"github.com/itsatony/temperature-detector/internal/config"
	"github.com/itsatony/temperature-detector/internal/server"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the server",
	Long:  `Starts the HTTP server and blocks until interrupted.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if noBanner, _ := cmd.Flags().GetBool("no-banner"); !noBanner {
		ClearConsole()
		DrawLogo()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	nuts.L.Infof("[Main] Starting temperature detector v%s", nuts.GetVersion())

	srv := server.New(cfg)
	return srv.Start()
}

// ClearConsole clears the console screen
func ClearConsole() {
	tm.Clear()
	tm.MoveCursor(1, 1)
	tm.Flush()
}

func DrawLogo() {
	fmt.Println()
	lines := []string{
		"  _____                        ",
		" |_   _|__ _ __ ___  _ __      ",
		"   | |/ _ \\ '_ ` _ \\| '_ \\   ",
		"   | |  __/ | | | | | |_) |    ",
		"   |_|\\___|_| |_| |_| .__/    ",
		"                    |_|        ",
		"..............................  " + nuts.GetVersion(),
	}

	for _, line := range lines {
		fmt.Println(line)
	}
}
