package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itsatony/temperature-detector/internal/config"
	"github.com/itsatony/temperature-detector/internal/models"
	"github.com/itsatony/temperature-detector/internal/service"
)

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringP("location", "l", "", "Free-form room name")
	resolveCmd.Flags().StringP("sensor-id", "s", "", "Sensor identifier")
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print a reading for a location and/or sensor id",
	Long: `Resolves a location and/or sensor id exactly like the HTTP endpoint
does and prints the resulting reading as JSON, without starting a server.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		location, err := cmd.Flags().GetString("location")
		if err != nil {
			return err
		}

		sensorID, err := cmd.Flags().GetString("sensor-id")
		if err != nil {
			return err
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		svc := service.New(cfg.Sensor, nil)
		reading := svc.Read(models.TemperatureQuery{Location: location, SensorID: sensorID})

		b, err := json.MarshalIndent(reading, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode reading: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}
