package cmd

import (
	"time"

	"github.com/oreforge/steelrank/core"
	"github.com/oreforge/steelrank/internal"
	"github.com/oreforge/steelrank/internal/outwriter"
	"github.com/oreforge/steelrank/schema"
	"github.com/spf13/cobra"
)

// rankCmd scores and ranks a supplier batch.
var rankCmd = &cobra.Command{
	Use:   "rank [batch-file]",
	Short: "Rank a supplier batch by weighted cost, carbon and risk scores.",
	Long: `Score every supplier in a batch and rank them best to worst.

Landed cost and carbon footprint are min-max normalized across the batch, so
all scores are relative to the suppliers in this run: adding or removing a
supplier changes everyone's score. Risk uses a fixed composite of lead time,
reliability, logistics complexity and country risk.

The batch file is YAML or JSON with suppliers, and optionally a fallback
transportation and a weight vector. Without a batch file, the built-in demo
batch (one supplier per country) is ranked.

Examples:
  # Rank the demo batch
  steelrank rank

  # Rank a batch at 5000 tons, cost-heavy weighting
  steelrank rank suppliers.yaml -q 5000 --weight-cost 0.6 --weight-carbon 0.2 --weight-risk 0.2

  # Export the ranking to CSV
  steelrank rank suppliers.yaml -o csv --output-file ranking.csv

  # Include per-supplier diagnostics
  steelrank rank suppliers.yaml --detail`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runRank(cfg); err != nil {
			internal.LogFatal("Cannot rank suppliers", err)
		}
	},
}

// runRank loads the batch, runs the engine and writes the results.
func runRank(cfg *internal.Config) error {
	suppliers := schema.DemoSuppliers()
	fallback := schema.DefaultTransportation()
	weights := cfg.Weights

	if cfg.BatchFile != "" {
		batch, err := internal.LoadBatch(cfg.BatchFile)
		if err != nil {
			return err
		}
		suppliers = batch.Suppliers
		if batch.Transportation != nil {
			fallback = batch.Transportation
		}
		if batch.Weights != nil {
			weights = batch.Weights.Normalize()
		}
	}

	internal.Sugar.Infow("ranking suppliers",
		"count", len(suppliers),
		"quantity", cfg.Quantity,
		"weights", weights)

	start := time.Now()
	results, err := core.RankSuppliers(suppliers, weights, cfg.Quantity, fallback)
	if err != nil {
		return err
	}
	duration := time.Since(start)

	outCfg := *cfg
	outCfg.Weights = weights
	return outwriter.WriteRankResults(results, &outCfg, duration)
}
