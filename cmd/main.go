// FilePath: cmd/main.go
package main

import (
	"os"

	"github.com/itsatony/temperature-detector/internal/cli"
	nuts "github.com/vaudience/go-nuts"
)

func main() {
	// Initialize version info
	nuts.InitVersion()

	if err := cli.Execute(); err != nil {
		nuts.L.Errorf("[Main] %v", err)
		os.Exit(1)
	}
}
