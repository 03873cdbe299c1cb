package external

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/oreforge/steelrank/schema"
)

// forecastScript is the collaborator script name for price forecasting.
const forecastScript = "price-predictor-api.py"

// Defaults applied when the caller leaves assumption blocks empty, matching
// the collaborator's own fallbacks.
const (
	DefaultCarbonTax  = 50.0
	DefaultMWCapacity = 100.0
)

// BFAssumptions are the blast-furnace input cost assumptions (USD per ton
// unless noted).
type BFAssumptions struct {
	IronOre      float64 `json:"iron_ore"`
	CokingCoal   float64 `json:"coking_coal"`
	BFFluxes     float64 `json:"bf_fluxes"`
	Scrap        float64 `json:"scrap"`
	OtherCostsBF float64 `json:"other_costs_bf"`
}

// EAFAssumptions are the electric-arc-furnace input cost assumptions.
type EAFAssumptions struct {
	Electricity   float64 `json:"electricity"` // USD per kWh
	Electrode     float64 `json:"electrode"`
	EAFFluxes     float64 `json:"eaf_fluxes"`
	OtherCostsEAF float64 `json:"other_costs_eaf"`
}

// DefaultBFAssumptions returns the collaborator's fallback BF assumptions.
func DefaultBFAssumptions() BFAssumptions {
	return BFAssumptions{
		IronOre:      130.0,
		CokingCoal:   280.0,
		BFFluxes:     50.0,
		Scrap:        375.0,
		OtherCostsBF: 50.0,
	}
}

// DefaultEAFAssumptions returns the collaborator's fallback EAF assumptions.
func DefaultEAFAssumptions() EAFAssumptions {
	return EAFAssumptions{
		Electricity:   0.08,
		Electrode:     2.5,
		EAFFluxes:     60.0,
		OtherCostsEAF: 40.0,
	}
}

// ForecastRequest describes one forecasting run.
type ForecastRequest struct {
	SteelRoute     schema.SteelRoute `json:"steelRoute"`
	FutureYear     int               `json:"futureYear"`
	Country        schema.Country    `json:"country"`
	BFAssumptions  *BFAssumptions    `json:"bfAssumptions,omitempty"`
	EAFAssumptions *EAFAssumptions   `json:"eafAssumptions,omitempty"`
	CarbonTax      float64           `json:"carbonTax,omitempty"`
	MWCapacity     float64           `json:"mwCapacity,omitempty"`
}

// Validate checks the required fields of a forecast request.
func (r *ForecastRequest) Validate() error {
	if _, ok := schema.ValidSteelRoutes[r.SteelRoute]; !ok {
		return fmt.Errorf("unknown steel route %q", r.SteelRoute)
	}
	if _, ok := schema.ValidCountries[r.Country]; !ok {
		return fmt.Errorf("unknown country %q", r.Country)
	}
	if r.FutureYear <= 0 {
		return fmt.Errorf("futureYear is required")
	}
	return nil
}

// forecastInput is the snake_case payload handed to the script.
type forecastInput struct {
	MWCapacity     float64           `json:"mw_capacity"`
	SteelRoute     schema.SteelRoute `json:"steel_route"`
	FutureYear     int               `json:"future_year"`
	Country        schema.Country    `json:"country"`
	BFAssumptions  BFAssumptions     `json:"bf_assumptions"`
	EAFAssumptions EAFAssumptions    `json:"eaf_assumptions"`
	CarbonTax      float64           `json:"carbon_tax"`
}

// ForecastResult is the collaborator's forecast payload.
type ForecastResult struct {
	Success                 bool    `json:"success"`
	BFCostPerTon            float64 `json:"bf_cost_per_ton"`
	EAFCostPerTon           float64 `json:"eaf_cost_per_ton"`
	ForecastedScrapPrice    float64 `json:"forecasted_scrap_price"`
	CostSpreadPerTon        float64 `json:"cost_spread_per_ton"`
	TotalProjectCostSavings float64 `json:"total_project_cost_savings"`
	EmissionsPercentSavings float64 `json:"emissions_percent_savings"`
	CostPercentSavings      float64 `json:"cost_percent_savings"`
	BFEmissionsPerTon       float64 `json:"bf_emissions_per_ton"`
	EAFEmissionsPerTon      float64 `json:"eaf_emissions_per_ton"`
}

// ForecastClient talks to the price forecasting collaborator.
type ForecastClient struct {
	runner Runner
}

// NewForecastClient builds a client around the given runner.
func NewForecastClient(runner Runner) *ForecastClient {
	return &ForecastClient{runner: runner}
}

// Forecast runs the price forecaster for one route/year/country triple.
// Missing assumption blocks fall back to the collaborator's documented
// defaults before the request is handed over.
func (c *ForecastClient) Forecast(ctx context.Context, req ForecastRequest) (*ForecastResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	input := forecastInput{
		MWCapacity:     req.MWCapacity,
		SteelRoute:     req.SteelRoute,
		FutureYear:     req.FutureYear,
		Country:        req.Country,
		BFAssumptions:  DefaultBFAssumptions(),
		EAFAssumptions: DefaultEAFAssumptions(),
		CarbonTax:      req.CarbonTax,
	}
	if req.BFAssumptions != nil {
		input.BFAssumptions = *req.BFAssumptions
	}
	if req.EAFAssumptions != nil {
		input.EAFAssumptions = *req.EAFAssumptions
	}
	if input.CarbonTax == 0 {
		input.CarbonTax = DefaultCarbonTax
	}
	if input.MWCapacity == 0 {
		input.MWCapacity = DefaultMWCapacity
	}

	payload, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}
	raw, err := c.runner.Run(ctx, forecastScript, payload)
	if err != nil {
		return nil, err
	}

	var result ForecastResult
	if err := decodeEnvelope(forecastScript, raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
