package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/unimind/unimind/internal/predict"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check whether the prediction service is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := predict.ConfigFromEnv()
		client := predict.NewClient(cfg)

		status := client.Health(cmd.Context())
		fmt.Printf("%s: %s\n", cfg.BaseURL, status.Status)

		if status.Status != predict.StatusOK {
			return fmt.Errorf("prediction service is not healthy")
		}
		return nil
	},
}
