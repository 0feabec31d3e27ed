package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BMadhushan18/boq-engine/internal/boq"
	"github.com/BMadhushan18/boq-engine/internal/model"
	"github.com/BMadhushan18/boq-engine/internal/pipeline"
)

var (
	estimateInput  string
	estimateOutput string
	estimateXLSX   string
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Fuse a request file and generate its bill of quantities",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		data, err := os.ReadFile(estimateInput)
		if err != nil {
			return eris.Wrap(err, "estimate: read request")
		}
		var req model.EstimateRequest
		if err := json.Unmarshal(data, &req); err != nil {
			return eris.Wrap(err, "estimate: parse request")
		}

		std, err := loadStandards(ctx)
		if err != nil {
			return err
		}

		result, err := pipeline.New(std).Run(ctx, req)
		if err != nil {
			return err
		}

		out := os.Stdout
		if estimateOutput != "" {
			f, createErr := os.Create(estimateOutput)
			if createErr != nil {
				return eris.Wrap(createErr, "estimate: create output")
			}
			defer f.Close()
			out = f
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return eris.Wrap(err, "estimate: encode result")
		}

		if estimateXLSX != "" {
			if err := boq.WriteXLSX(result.BOQ, estimateXLSX); err != nil {
				return err
			}
			zap.L().Info("estimate: workbook written", zap.String("path", estimateXLSX))
		}

		zap.L().Info("estimate: complete",
			zap.String("building_id", result.Building.ID),
			zap.Int("rooms", result.Building.TotalRooms),
			zap.Float64("total_cost_lkr", result.BOQ.Summary.TotalEstimatedCostLKR),
		)
		return nil
	},
}

func init() {
	estimateCmd.Flags().StringVarP(&estimateInput, "file", "f", "", "estimate request JSON file (required)")
	estimateCmd.Flags().StringVarP(&estimateOutput, "out", "o", "", "write the result JSON here instead of stdout")
	estimateCmd.Flags().StringVar(&estimateXLSX, "xlsx", "", "also write the BOQ as an XLSX workbook")
	_ = estimateCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(estimateCmd)
}
