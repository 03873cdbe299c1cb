package core

import (
	"fmt"
	"math"

	"github.com/oreforge/steelrank/schema"
)

// Saturation points for the risk sub-scores.
const (
	maxLeadTimeDays = 120.0 // lead times beyond this saturate
	maxHandoffs     = 10.0  // handoffs beyond this saturate
)

// Fixed weights of the supplier risk composite. These are design constants
// of the risk model, not user-configurable ranking weights.
const (
	wLeadTime    = 0.4
	wReliability = 0.3
	wLogistics   = 0.2
	wCountryRisk = 0.1
)

// SupplierRiskScore computes the fixed-weight risk composite for one
// supplier, in [0,1] with higher meaning worse. Four normalized sub-scores:
// lead time (capped at 120 days), inverted reliability (1-10 scale),
// logistics complexity (handoffs capped at 10), and the country risk factor.
func SupplierRiskScore(s *schema.Supplier) (float64, error) {
	cf, err := schema.LookupCountryFactors(s.Country)
	if err != nil {
		return 0, fmt.Errorf("supplier %s: %w", s.ID, err)
	}

	leadTimeScore := math.Min(s.LeadTime/maxLeadTimeDays, 1)
	reliabilityScore := 1 - (s.SupplierReliability-1)/9 // 1 is worst, 10 is best
	logisticsScore := math.Min(float64(s.SupplyChainHandoffs)/maxHandoffs, 1)

	risk := wLeadTime*leadTimeScore +
		wReliability*reliabilityScore +
		wLogistics*logisticsScore +
		wCountryRisk*cf.RiskScore

	return clamp01(risk), nil
}

// Fixed weights of the country score composite.
const (
	wCountryCost  = 0.3
	wCountryRisk2 = 0.3
	wCountryTrade = 0.4
)

// CountryScore computes a 0-1 country attractiveness score, higher is
// better. Cost and risk factors are inverted before weighting since lower is
// better for both. The score is exposed on results as a diagnostic but does
// not feed the final ranking score.
func CountryScore(s *schema.Supplier) (float64, error) {
	cf, err := schema.LookupCountryFactors(s.Country)
	if err != nil {
		return 0, fmt.Errorf("supplier %s: %w", s.ID, err)
	}

	score := wCountryCost*(1-cf.CostScore) +
		wCountryRisk2*(1-cf.RiskScore) +
		wCountryTrade*cf.TradeScore

	return clamp01(score), nil
}
