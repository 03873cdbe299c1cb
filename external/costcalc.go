package external

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/oreforge/steelrank/schema"
)

// costScript is the collaborator script name for the landed-cost calculator.
const costScript = "cost-calculator-api.py"

// CostRequest describes one cost calculation run: a base price per country
// and the total order size in tons.
type CostRequest struct {
	BasePrices map[schema.Country]float64 `json:"basePrices"`
	TotalTons  float64                    `json:"totalTons"`
}

// Validate checks the required fields of a cost request.
func (r *CostRequest) Validate() error {
	if len(r.BasePrices) == 0 {
		return fmt.Errorf("basePrices cannot be empty")
	}
	for country := range r.BasePrices {
		if _, ok := schema.ValidCountries[country]; !ok {
			return fmt.Errorf("unknown country %q", country)
		}
	}
	if r.TotalTons <= 0 {
		return fmt.Errorf("totalTons must be greater than 0 (received %g)", r.TotalTons)
	}
	return nil
}

// costInput is the snake_case payload handed to the script.
type costInput struct {
	BasePrices map[schema.Country]float64 `json:"base_prices"`
	TotalTons  float64                    `json:"total_tons"`
}

// CountryCost is the collaborator's per-country cost payload. Breakdown maps
// are passed through opaquely; their keys belong to the collaborator.
type CountryCost struct {
	CostBreakdown map[string]float64 `json:"cost_breakdown"`
	EmisBreakdown map[string]float64 `json:"emis_breakdown"`
	LandedPerTon  float64            `json:"landed_per_ton"`
	TotalCost     float64            `json:"total_cost"`
	KgPerTon      float64            `json:"kg_per_ton"`
	TotalKg       float64            `json:"total_kg"`
}

// CostResult is the collaborator's full cost payload.
type CostResult struct {
	Success   bool                           `json:"success"`
	TotalTons float64                        `json:"total_tons"`
	Results   map[schema.Country]CountryCost `json:"results"`
}

// CostClient talks to the landed-cost calculator collaborator.
type CostClient struct {
	runner Runner
}

// NewCostClient builds a client around the given runner.
func NewCostClient(runner Runner) *CostClient {
	return &CostClient{runner: runner}
}

// Calculate runs the cost calculator for the given base prices.
func (c *CostClient) Calculate(ctx context.Context, req CostRequest) (*CostResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(costInput{
		BasePrices: req.BasePrices,
		TotalTons:  req.TotalTons,
	})
	if err != nil {
		return nil, err
	}
	raw, err := c.runner.Run(ctx, costScript, payload)
	if err != nil {
		return nil, err
	}

	var result CostResult
	if err := decodeEnvelope(costScript, raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
