package core

import (
	"fmt"

	"github.com/oreforge/steelrank/schema"
)

// CostResult holds the landed cost decomposition for one supplier.
type CostResult struct {
	TotalCost   float64 // USD for the whole quantity
	FreightCost float64 // USD for the whole quantity
}

// LandedCost computes the total landed cost for one supplier at the given
// quantity (tons). Tariff-like percentages are summed, not compounded, and
// credits/subsidies are subtracted. Heavy subsidies against a near-zero base
// price can drive the total negative; the engine does not clamp.
//
// Quantity is a caller precondition: zero or negative quantities produce
// degenerate outputs rather than errors.
func LandedCost(s *schema.Supplier, quantity float64, fallback *schema.Transportation) (CostResult, error) {
	var freightCost float64
	for _, seg := range segmentsFor(s, fallback) {
		mode, err := schema.LookupTransportMode(seg.Mode)
		if err != nil {
			return CostResult{}, fmt.Errorf("supplier %s: %w", s.ID, err)
		}
		freightCost += mode.CostPerTonKm * seg.Distance * quantity
	}

	tariffRate := (s.TariffRate + s.AntiDumpingDuty + s.CountervailingDuty) / 100

	baseCost := (s.BasePrice + s.ConversionCost) * quantity
	tariffCost := baseCost * tariffRate
	brokerageCost := s.BrokerageFees * quantity

	// The green steel premium only applies to the low-carbon route.
	var greenSteelPremium float64
	if s.SteelRoute == schema.RouteScrapEAF {
		greenSteelPremium = s.GreenSteelSubsidies * quantity
	}

	totalCost := baseCost +
		tariffCost +
		freightCost +
		brokerageCost -
		s.DomesticTaxCredits*quantity -
		greenSteelPremium

	return CostResult{TotalCost: totalCost, FreightCost: freightCost}, nil
}
