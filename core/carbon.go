package core

import (
	"fmt"

	"github.com/oreforge/steelrank/schema"
)

// CarbonResult holds the emissions decomposition for one supplier.
// All figures are tons of CO2 for the whole quantity.
type CarbonResult struct {
	TotalCO2      float64
	ProductionCO2 float64
	TransportCO2  float64
}

// CarbonFootprint computes total emissions for one supplier at the given
// quantity (tons): route-average production emissions plus per-segment
// transport emissions, minus a 10% production credit for the Scrap-EAF route.
func CarbonFootprint(s *schema.Supplier, quantity float64, fallback *schema.Transportation) (CarbonResult, error) {
	route, err := schema.LookupSteelRoute(s.SteelRoute)
	if err != nil {
		return CarbonResult{}, fmt.Errorf("supplier %s: %w", s.ID, err)
	}
	productionCO2 := route.CO2Average * quantity

	var transportCO2 float64
	for _, seg := range segmentsFor(s, fallback) {
		mode, err := schema.LookupTransportMode(seg.Mode)
		if err != nil {
			return CarbonResult{}, fmt.Errorf("supplier %s: %w", s.ID, err)
		}
		// Transport factors are grams of CO2 per ton-km.
		transportCO2 += (mode.CO2PerTonKm * seg.Distance * quantity) / 1_000_000
	}

	var greenSteelCredit float64
	if s.SteelRoute == schema.RouteScrapEAF {
		greenSteelCredit = greenSteelCreditRate * productionCO2
	}

	return CarbonResult{
		TotalCO2:      productionCO2 + transportCO2 - greenSteelCredit,
		ProductionCO2: productionCO2,
		TransportCO2:  transportCO2,
	}, nil
}
