package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oreforge/steelrank/schema"
	"gopkg.in/yaml.v3"
)

// Batch is the on-disk shape of a supplier batch file. Transportation and
// weights are optional; the CLI falls back to its configured defaults when
// they are absent.
type Batch struct {
	Suppliers      []schema.Supplier          `json:"suppliers" yaml:"suppliers"`
	Transportation *schema.Transportation     `json:"transportation,omitempty" yaml:"transportation,omitempty"`
	Weights        *schema.CalculationWeights `json:"weights,omitempty" yaml:"weights,omitempty"`
}

// LoadBatch reads a YAML or JSON supplier batch file and validates every
// record. Unknown enum tags are rejected here, before any scoring happens.
func LoadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read batch file: %w", err)
	}

	var batch Batch
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &batch); err != nil {
			return nil, fmt.Errorf("cannot parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &batch); err != nil {
			return nil, fmt.Errorf("cannot parse %s: %w", path, err)
		}
	}

	if len(batch.Suppliers) == 0 {
		return nil, fmt.Errorf("batch file %s has no suppliers", path)
	}
	for i := range batch.Suppliers {
		if err := batch.Suppliers[i].Validate(); err != nil {
			return nil, fmt.Errorf("batch file %s: %w", path, err)
		}
	}
	if batch.Transportation != nil {
		for i, seg := range batch.Transportation.Segments {
			if _, ok := schema.ValidTransportModes[seg.Mode]; !ok {
				return nil, fmt.Errorf("batch file %s: segment %d: unknown transport mode %q", path, i, seg.Mode)
			}
			if seg.Distance < 0 {
				return nil, fmt.Errorf("batch file %s: segment %d: distance cannot be negative (received %g)", path, i, seg.Distance)
			}
		}
	}
	if batch.Weights != nil {
		if err := batch.Weights.Validate(); err != nil {
			return nil, fmt.Errorf("batch file %s: %w", path, err)
		}
	}

	return &batch, nil
}
