package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BMadhushan18/boq-engine/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "boq-engine",
	Short: "Multi-source building measurement fusion and BOQ generation",
	Long:  "Fuses room measurements from floor plans, AR scans, photos and voice descriptions into a consistent building model, then prices paint, putty and tiles into a bill of quantities.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
