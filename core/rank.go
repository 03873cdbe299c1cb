package core

import (
	"sort"

	"github.com/oreforge/steelrank/schema"
)

// normalizeInverted min-max normalizes a raw value across the batch into a
// 0-1 goodness score, inverted so the lowest raw value scores 1. When every
// supplier is tied (max == min) all of them score 1, which also avoids a
// divide by zero.
func normalizeInverted(value, min, max float64) float64 {
	if max == min {
		return 1
	}
	return 1 - (value-min)/(max-min)
}

func minMax(values []float64) (min, max float64) {
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// RankSuppliers scores every supplier in the batch and returns results
// sorted descending by final score. Cost and carbon are min-max normalized
// across this batch only, so scores are relative to the batch: adding or
// removing a supplier changes the scores of every other supplier. Ties keep
// their input order (stable sort) for reproducibility.
//
// Weights are applied literally; callers normalize them to sum to 1.0
// beforehand. An empty batch returns an empty result slice.
func RankSuppliers(suppliers []schema.Supplier, weights schema.CalculationWeights,
	quantity float64, fallback *schema.Transportation) ([]schema.SupplierResult, error) {
	if len(suppliers) == 0 {
		return []schema.SupplierResult{}, nil
	}

	results := make([]schema.SupplierResult, 0, len(suppliers))
	allCosts := make([]float64, 0, len(suppliers))
	allCarbons := make([]float64, 0, len(suppliers))

	for i := range suppliers {
		s := &suppliers[i]

		cost, err := LandedCost(s, quantity, fallback)
		if err != nil {
			return nil, err
		}
		carbon, err := CarbonFootprint(s, quantity, fallback)
		if err != nil {
			return nil, err
		}
		risk, err := SupplierRiskScore(s)
		if err != nil {
			return nil, err
		}
		country, err := CountryScore(s)
		if err != nil {
			return nil, err
		}

		results = append(results, schema.SupplierResult{
			Supplier:          *s,
			TotalLandedCost:   cost.TotalCost,
			FreightCost:       cost.FreightCost,
			TotalCarbon:       carbon.TotalCO2,
			ProductionCO2:     carbon.ProductionCO2,
			TransportCO2:      carbon.TransportCO2,
			SupplierRiskScore: risk,
			CountryScore:      country,
		})
		allCosts = append(allCosts, cost.TotalCost)
		allCarbons = append(allCarbons, carbon.TotalCO2)
	}

	minCost, maxCost := minMax(allCosts)
	minCarbon, maxCarbon := minMax(allCarbons)

	for i := range results {
		r := &results[i]
		costScore := normalizeInverted(r.TotalLandedCost, minCost, maxCost)
		carbonScore := normalizeInverted(r.TotalCarbon, minCarbon, maxCarbon)
		riskScore := 1 - r.SupplierRiskScore // invert: lower risk is better

		r.FinalScore = weights.Cost*costScore +
			weights.Carbon*carbonScore +
			weights.Risk*riskScore
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})
	return results, nil
}
