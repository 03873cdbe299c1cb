package internal

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/oreforge/steelrank/schema"
)

// Default values for configuration.
const (
	DefaultQuantity  = schema.DefaultQuantity
	DefaultPrecision = 2
	DefaultAddr      = ":8080"
	DefaultPython    = "python3"

	// Default ranking weights, matching the wizard's initial slider split.
	DefaultWeightCost   = 0.4
	DefaultWeightCarbon = 0.3
	DefaultWeightRisk   = 0.3
)

// weightSumTolerance bounds how far the raw weight sum may drift from 1.0
// before a warning is logged. The weights are renormalized either way; the
// engine itself applies them literally.
const weightSumTolerance = 1e-9

// Config holds the validated runtime configuration.
type Config struct {
	BatchFile  string                    // Optional supplier batch file; empty means the demo batch
	Quantity   float64                   // Order quantity in tons
	Weights    schema.CalculationWeights // Normalized cost/carbon/risk weights
	Output     schema.OutputMode         // Output format
	OutputFile string                    // Optional path to write output directly
	Precision  int                       // Decimal precision for score columns (1 or 2)
	Detail     bool                      // If true, print per-supplier diagnostics
	UseColors  bool                      // If true, colorize table output
	Addr       string                    // Listen address for the HTTP server
	ScriptsDir string                    // Directory holding the collaborator Python scripts
	Python     string                    // Python interpreter for the collaborators
}

// ConfigRawInput holds the raw values resolved by Viper from defaults,
// config file, environment and flags. ProcessAndValidate turns it into a
// final Config.
type ConfigRawInput struct {
	BatchFile    string  `mapstructure:"batch"`
	Quantity     float64 `mapstructure:"quantity"`
	WeightCost   float64 `mapstructure:"weight-cost"`
	WeightCarbon float64 `mapstructure:"weight-carbon"`
	WeightRisk   float64 `mapstructure:"weight-risk"`
	Output       string  `mapstructure:"output"`
	OutputFile   string  `mapstructure:"output-file"`
	Precision    int     `mapstructure:"precision"`
	Detail       bool    `mapstructure:"detail"`
	Color        string  `mapstructure:"color"`
	Addr         string  `mapstructure:"addr"`
	ScriptsDir   string  `mapstructure:"scripts-dir"`
	Python       string  `mapstructure:"python"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config. Weight normalization happens here, at the
// edge: the engine treats its weight vector as a literal precondition.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Quantity ---
	if input.Quantity <= 0 {
		return fmt.Errorf("quantity must be greater than 0 tons (received %g)", input.Quantity)
	}
	cfg.Quantity = input.Quantity

	// --- 2. Weights ---
	raw := schema.CalculationWeights{
		Cost:   input.WeightCost,
		Carbon: input.WeightCarbon,
		Risk:   input.WeightRisk,
	}
	if err := raw.Validate(); err != nil {
		return err
	}
	if math.Abs(raw.Sum()-1.0) > weightSumTolerance {
		Sugar.Warnf("weights sum to %g, renormalizing to 1.0", raw.Sum())
	}
	cfg.Weights = raw.Normalize()

	// --- 3. Output and precision ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format %q. must be text, csv, json, parquet", input.Output)
	}
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision
	cfg.OutputFile = input.OutputFile
	cfg.UseColors = strings.EqualFold(input.Color, "yes")

	// --- 4. Batch file ---
	if input.BatchFile != "" {
		if _, err := os.Stat(input.BatchFile); err != nil {
			return fmt.Errorf("cannot read batch file %s: %w", input.BatchFile, err)
		}
	}
	cfg.BatchFile = input.BatchFile

	// --- 5. Server and collaborator settings ---
	cfg.Addr = input.Addr
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	cfg.ScriptsDir = input.ScriptsDir
	cfg.Python = input.Python
	if cfg.Python == "" {
		cfg.Python = DefaultPython
	}

	return nil
}
