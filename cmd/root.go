package cmd

import (
	"fmt"
	"strings"

	"github.com/oreforge/steelrank/internal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cfg will hold the validated, final configuration.
var cfg = &internal.Config{}

// input holds the raw, unvalidated configuration from all sources (file,
// env, flags). Viper will unmarshal into this struct.
var input = &internal.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "steelrank",
	Short:              "Rank steel suppliers by landed cost, carbon footprint and supply-chain risk.",
	Long:               `Steelrank scores a batch of steel suppliers with a weighted composite of landed cost, carbon emissions and supply-chain risk, and ranks them best to worst.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".steelrank") // Name of config file (without extension)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("STEELRANK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Set defaults in Viper
	viper.SetDefault("quantity", internal.DefaultQuantity)
	viper.SetDefault("weight-cost", internal.DefaultWeightCost)
	viper.SetDefault("weight-carbon", internal.DefaultWeightCarbon)
	viper.SetDefault("weight-risk", internal.DefaultWeightRisk)
	viper.SetDefault("output", "text")
	viper.SetDefault("precision", internal.DefaultPrecision)
	viper.SetDefault("color", "yes")
	viper.SetDefault("addr", internal.DefaultAddr)
	viper.SetDefault("scripts-dir", "PythonScripts")
	viper.SetDefault("python", internal.DefaultPython)
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ *cobra.Command, args []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle the positional batch-file argument (which Viper doesn't do).
	if len(args) == 1 {
		input.BatchFile = args[0]
	}

	// 4. Run all validation and complex parsing. This populates the global
	// 'cfg' from 'input'.
	return internal.ProcessAndValidate(cfg, input)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
