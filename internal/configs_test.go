package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawInput() ConfigRawInput {
	return ConfigRawInput{
		Quantity:     DefaultQuantity,
		WeightCost:   DefaultWeightCost,
		WeightCarbon: DefaultWeightCarbon,
		WeightRisk:   DefaultWeightRisk,
		Output:       "text",
		Precision:    DefaultPrecision,
		Color:        "yes",
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := Config{}
	input := rawInput()

	require.NoError(t, ProcessAndValidate(&cfg, &input))

	assert.Equal(t, 1000.0, cfg.Quantity)
	assert.InDelta(t, 0.4, cfg.Weights.Cost, 1e-9)
	assert.InDelta(t, 0.3, cfg.Weights.Carbon, 1e-9)
	assert.InDelta(t, 0.3, cfg.Weights.Risk, 1e-9)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, DefaultPython, cfg.Python)
	assert.True(t, cfg.UseColors)
}

func TestProcessAndValidateWeightsRenormalized(t *testing.T) {
	cfg := Config{}
	input := rawInput()
	input.WeightCost = 4
	input.WeightCarbon = 3
	input.WeightRisk = 3

	require.NoError(t, ProcessAndValidate(&cfg, &input))
	assert.InDelta(t, 0.4, cfg.Weights.Cost, 1e-9)
	assert.InDelta(t, 1.0, cfg.Weights.Sum(), 1e-9)
}

func TestProcessAndValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ConfigRawInput)
		wantErr string
	}{
		{"zero quantity", func(in *ConfigRawInput) { in.Quantity = 0 }, "quantity must be greater than 0"},
		{"negative quantity", func(in *ConfigRawInput) { in.Quantity = -5 }, "quantity must be greater than 0"},
		{"negative weight", func(in *ConfigRawInput) { in.WeightCost = -0.1 }, "weights cannot be negative"},
		{"all-zero weights", func(in *ConfigRawInput) {
			in.WeightCost, in.WeightCarbon, in.WeightRisk = 0, 0, 0
		}, "weights cannot all be zero"},
		{"bad output mode", func(in *ConfigRawInput) { in.Output = "xml" }, "invalid output format"},
		{"precision too low", func(in *ConfigRawInput) { in.Precision = 0 }, "precision must be 1 or 2"},
		{"precision too high", func(in *ConfigRawInput) { in.Precision = 3 }, "precision must be 1 or 2"},
		{"missing batch file", func(in *ConfigRawInput) { in.BatchFile = "no/such/batch.yaml" }, "cannot read batch file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{}
			input := rawInput()
			tt.mutate(&input)
			assert.ErrorContains(t, ProcessAndValidate(&cfg, &input), tt.wantErr)
		})
	}
}

func TestProcessAndValidateOutputCaseInsensitive(t *testing.T) {
	cfg := Config{}
	input := rawInput()
	input.Output = "JSON"

	require.NoError(t, ProcessAndValidate(&cfg, &input))
	assert.Equal(t, "json", string(cfg.Output))
}

func TestProcessAndValidateBatchFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("suppliers: []\n"), 0o644))

	cfg := Config{}
	input := rawInput()
	input.BatchFile = path

	require.NoError(t, ProcessAndValidate(&cfg, &input))
	assert.Equal(t, path, cfg.BatchFile)
}
