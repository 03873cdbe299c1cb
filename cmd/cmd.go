// Package cmd defines the command-line interface for steelrank.
package cmd

import (
	"github.com/oreforge/steelrank/internal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(policyCmd)
	rootCmd.AddCommand(factorsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Float64P("quantity", "q", internal.DefaultQuantity, "Order quantity in tons")
	rootCmd.PersistentFlags().Float64("weight-cost", internal.DefaultWeightCost, "Ranking weight for landed cost")
	rootCmd.PersistentFlags().Float64("weight-carbon", internal.DefaultWeightCarbon, "Ranking weight for carbon footprint")
	rootCmd.PersistentFlags().Float64("weight-risk", internal.DefaultWeightRisk, "Ranking weight for supply-chain risk")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", internal.DefaultPrecision, "Decimal precision for score columns")
	rootCmd.PersistentFlags().Bool("detail", false, "Print per-supplier diagnostics (freight, CO2 split, country score)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		internal.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("addr", internal.DefaultAddr, "Listen address for the HTTP server")
	serveCmd.Flags().String("scripts-dir", "PythonScripts", "Directory holding the collaborator Python scripts")
	serveCmd.Flags().String("python", internal.DefaultPython, "Python interpreter for the collaborator scripts")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		internal.LogFatal("Error binding serve flags", err)
	}
}
