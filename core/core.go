// Package core implements the supplier scoring engine: cost decomposition,
// emissions accounting, risk normalization, and the cross-supplier weighted
// ranking. All functions are pure and synchronous; callers supply complete
// supplier records, a weight vector and an optional fallback transportation,
// and receive sorted results back.
package core

import "github.com/oreforge/steelrank/schema"

// greenSteelCreditRate is the emissions credit applied to Scrap-EAF
// production CO2.
const greenSteelCreditRate = 0.10

// segmentsFor resolves the journey for a supplier: the supplier's own
// segments if present, else the fallback's, else none. No segments means
// zero freight cost and zero transport emissions, which is a valid edge
// case rather than an error.
func segmentsFor(s *schema.Supplier, fallback *schema.Transportation) []schema.TransportationSegment {
	if s.Transportation != nil && len(s.Transportation.Segments) > 0 {
		return s.Transportation.Segments
	}
	if fallback != nil && len(fallback.Segments) > 0 {
		return fallback.Segments
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
