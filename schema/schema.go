// Package schema has models, constants and reference tables for all parts of steelrank.
package schema

import "fmt"

// SteelRouteConfig holds the emissions profile of a production route.
// Values are tons of CO2 per ton of steel produced.
type SteelRouteConfig struct {
	Route      SteelRoute `json:"route" yaml:"route"`
	CO2Min     float64    `json:"co2Min" yaml:"co2Min"`
	CO2Max     float64    `json:"co2Max" yaml:"co2Max"`
	CO2Average float64    `json:"co2Average" yaml:"co2Average"`
}

// TransportConfig holds the cost and emission factors of a transport mode.
type TransportConfig struct {
	Mode         TransportMode `json:"mode" yaml:"mode"`
	CO2PerTonKm  float64       `json:"co2PerTonKm" yaml:"co2PerTonKm"`   // g CO2 per ton-km
	CostPerTonKm float64       `json:"costPerTonKm" yaml:"costPerTonKm"` // USD per ton-km
}

// CountryFactors holds normalized country-level scores used by the risk and
// country models. Cost, risk and trade scores are all in [0,1].
type CountryFactors struct {
	Country    Country `json:"country" yaml:"country"`
	CostScore  float64 `json:"costScore" yaml:"costScore"`   // 0 = lowest cost
	RiskScore  float64 `json:"riskScore" yaml:"riskScore"`   // 0 = lowest risk
	TradeScore float64 `json:"tradeScore" yaml:"tradeScore"` // 1 = best trade relations
	Volatility float64 `json:"volatility" yaml:"volatility"` // annualized volatility
	Growth     float64 `json:"growth" yaml:"growth"`         // 5-year growth
}

// TradePolicy holds the default tariff and credit structure for a country.
type TradePolicy struct {
	Country             Country `json:"country" yaml:"country"`
	TariffRate          float64 `json:"tariffRate" yaml:"tariffRate"`                   // percentage (0-100)
	AntiDumpingDuty     float64 `json:"antiDumpingDuty" yaml:"antiDumpingDuty"`         // percentage (0-100)
	CountervailingDuty  float64 `json:"countervailingDuty" yaml:"countervailingDuty"`   // percentage (0-100)
	DomesticTaxCredits  float64 `json:"domesticTaxCredits" yaml:"domesticTaxCredits"`   // USD per ton
	GreenSteelSubsidies float64 `json:"greenSteelSubsidies" yaml:"greenSteelSubsidies"` // USD per ton
}

// TransportationSegment is one leg of a multi-modal journey.
type TransportationSegment struct {
	Distance float64       `json:"distance" yaml:"distance"` // km
	Mode     TransportMode `json:"mode" yaml:"mode"`
}

// Transportation is an ordered sequence of segments. Segment order does not
// affect cost or emissions (they are additive) but is preserved for display.
type Transportation struct {
	Segments []TransportationSegment `json:"segments" yaml:"segments"`
}

// Supplier holds the raw attributes of one steel supplier.
type Supplier struct {
	ID                  string     `json:"id" yaml:"id"`
	Name                string     `json:"name" yaml:"name"`
	Country             Country    `json:"country" yaml:"country"`
	SteelRoute          SteelRoute `json:"steelRoute" yaml:"steelRoute"`
	BasePrice           float64    `json:"basePrice" yaml:"basePrice"`                     // USD per ton
	ConversionCost      float64    `json:"conversionCost" yaml:"conversionCost"`           // USD per ton
	TariffRate          float64    `json:"tariffRate" yaml:"tariffRate"`                   // percentage (0-100)
	AntiDumpingDuty     float64    `json:"antiDumpingDuty" yaml:"antiDumpingDuty"`         // percentage (0-100)
	CountervailingDuty  float64    `json:"countervailingDuty" yaml:"countervailingDuty"`   // percentage (0-100)
	DomesticTaxCredits  float64    `json:"domesticTaxCredits" yaml:"domesticTaxCredits"`   // USD per ton
	GreenSteelSubsidies float64    `json:"greenSteelSubsidies" yaml:"greenSteelSubsidies"` // USD per ton
	SupplierReliability float64    `json:"supplierReliability" yaml:"supplierReliability"` // 1-10, higher is better
	LeadTime            float64    `json:"leadTime" yaml:"leadTime"`                       // days
	SupplyChainHandoffs int        `json:"supplyChainHandoffs" yaml:"supplyChainHandoffs"`
	MinOrderCommitment  float64    `json:"minOrderCommitment" yaml:"minOrderCommitment"` // tons
	BrokerageFees       float64    `json:"brokerageFees" yaml:"brokerageFees"`           // USD per ton

	// Transportation is the supplier's own journey. When nil or empty, the
	// caller-supplied fallback transportation applies.
	Transportation *Transportation `json:"transportation,omitempty" yaml:"transportation,omitempty"`
}

// Validate rejects suppliers carrying unknown enum tags or out-of-range
// attributes. Unknown tags are caught here, at construction time, so that
// table lookups deeper in the engine only fail on genuine caller bugs.
func (s *Supplier) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("supplier %q: id is required", s.Name)
	}
	if _, ok := ValidCountries[s.Country]; !ok {
		return fmt.Errorf("supplier %s: unknown country %q", s.ID, s.Country)
	}
	if _, ok := ValidSteelRoutes[s.SteelRoute]; !ok {
		return fmt.Errorf("supplier %s: unknown steel route %q", s.ID, s.SteelRoute)
	}
	if s.SupplierReliability < 1 || s.SupplierReliability > 10 {
		return fmt.Errorf("supplier %s: reliability must be in [1,10] (received %g)", s.ID, s.SupplierReliability)
	}
	if s.LeadTime < 0 {
		return fmt.Errorf("supplier %s: lead time cannot be negative (received %g)", s.ID, s.LeadTime)
	}
	if s.SupplyChainHandoffs < 0 {
		return fmt.Errorf("supplier %s: handoffs cannot be negative (received %d)", s.ID, s.SupplyChainHandoffs)
	}
	if s.Transportation != nil {
		for i, seg := range s.Transportation.Segments {
			if _, ok := ValidTransportModes[seg.Mode]; !ok {
				return fmt.Errorf("supplier %s: segment %d: unknown transport mode %q", s.ID, i, seg.Mode)
			}
			if seg.Distance < 0 {
				return fmt.Errorf("supplier %s: segment %d: distance cannot be negative (received %g)", s.ID, i, seg.Distance)
			}
		}
	}
	return nil
}

// CalculationWeights are the cost/carbon/risk weights applied to the
// normalized scores. The engine applies them literally; callers are expected
// to normalize them to sum to 1.0 before ranking.
type CalculationWeights struct {
	Cost   float64 `json:"cost" yaml:"cost"`
	Carbon float64 `json:"carbon" yaml:"carbon"`
	Risk   float64 `json:"risk" yaml:"risk"`
}

// Sum returns the raw total of the three weights.
func (w CalculationWeights) Sum() float64 {
	return w.Cost + w.Carbon + w.Risk
}

// Validate rejects negative weights and all-zero weight vectors.
func (w CalculationWeights) Validate() error {
	if w.Cost < 0 || w.Carbon < 0 || w.Risk < 0 {
		return fmt.Errorf("weights cannot be negative (received cost=%g carbon=%g risk=%g)", w.Cost, w.Carbon, w.Risk)
	}
	if w.Sum() == 0 {
		return fmt.Errorf("weights cannot all be zero")
	}
	return nil
}

// Normalize returns a copy of the weights scaled to sum to 1.0.
// A zero-sum weight vector is returned unchanged.
func (w CalculationWeights) Normalize() CalculationWeights {
	total := w.Sum()
	if total == 0 {
		return w
	}
	return CalculationWeights{
		Cost:   w.Cost / total,
		Carbon: w.Carbon / total,
		Risk:   w.Risk / total,
	}
}

// SupplierResult holds one supplier's computed metrics and final score.
// Results are created fresh per ranking call and never mutated afterwards.
type SupplierResult struct {
	Supplier          Supplier `json:"supplier" yaml:"supplier"`
	TotalLandedCost   float64  `json:"totalLandedCost" yaml:"totalLandedCost"`     // USD
	FreightCost       float64  `json:"freightCost" yaml:"freightCost"`             // USD
	TotalCarbon       float64  `json:"totalCarbon" yaml:"totalCarbon"`             // t CO2
	ProductionCO2     float64  `json:"productionCO2" yaml:"productionCO2"`         // t CO2
	TransportCO2      float64  `json:"transportCO2" yaml:"transportCO2"`           // t CO2
	SupplierRiskScore float64  `json:"supplierRiskScore" yaml:"supplierRiskScore"` // 0-1, lower is better
	CountryScore      float64  `json:"countryScore" yaml:"countryScore"`           // 0-1, higher is better
	FinalScore        float64  `json:"finalScore" yaml:"finalScore"`               // weighted score
}
