package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BMadhushan18/boq-engine/internal/standards"
)

// loadStandards builds the standards repository per the configured
// driver, then merges the optional YAML override file on top.
func loadStandards(ctx context.Context) (*standards.Standards, error) {
	var std *standards.Standards

	switch cfg.Standards.Driver {
	case "sqlite":
		db, err := standards.OpenDB(cfg.Standards.Path)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		std, err = db.Load(ctx)
		if err != nil {
			return nil, err
		}
	default:
		std = standards.Defaults()
	}

	if cfg.Standards.Overrides != "" {
		merged, err := standards.LoadYAML(cfg.Standards.Overrides, std)
		if err != nil {
			return nil, err
		}
		std = merged
		zap.L().Info("standards: overrides applied", zap.String("path", cfg.Standards.Overrides))
	}

	return std, nil
}

var standardsCmd = &cobra.Command{
	Use:   "standards",
	Short: "Manage the room and material standards repository",
}

var standardsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the standards database and seed it with defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		db, err := standards.OpenDB(cfg.Standards.Path)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.Migrate(ctx); err != nil {
			return err
		}
		if err := db.Seed(ctx, standards.Defaults()); err != nil {
			return err
		}

		zap.L().Info("standards: database seeded", zap.String("path", cfg.Standards.Path))
		return nil
	},
}

var standardsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective standards table as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		std, err := loadStandards(cmd.Context())
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(std); err != nil {
			return eris.Wrap(err, "standards: encode")
		}
		return nil
	},
}

func init() {
	standardsCmd.AddCommand(standardsInitCmd)
	standardsCmd.AddCommand(standardsShowCmd)
	rootCmd.AddCommand(standardsCmd)
}
