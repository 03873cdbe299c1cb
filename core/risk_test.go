package core

import (
	"testing"

	"github.com/oreforge/steelrank/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// riskSupplier returns a supplier with the best possible risk attributes, so
// individual components can be varied from a zero baseline.
func riskSupplier() schema.Supplier {
	return schema.Supplier{
		ID:                  "r",
		Name:                "Risk Probe",
		Country:             schema.CountryUS,
		SteelRoute:          schema.RouteBFBOF,
		SupplierReliability: 10,
	}
}

// TestSupplierRiskScoreBounds checks the clamp at both extremes.
func TestSupplierRiskScoreBounds(t *testing.T) {
	t.Run("best case is zero", func(t *testing.T) {
		s := riskSupplier()
		risk, err := SupplierRiskScore(&s)
		require.NoError(t, err)
		assert.Zero(t, risk)
	})

	t.Run("worst case is one", func(t *testing.T) {
		s := riskSupplier()
		s.Country = schema.CountryChina
		s.SupplierReliability = 1
		s.LeadTime = 400 // saturates at 120 days
		s.SupplyChainHandoffs = 25
		risk, err := SupplierRiskScore(&s)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, risk, 1e-9)
	})
}

// TestSupplierRiskScoreComponents verifies the fixed component weights.
func TestSupplierRiskScoreComponents(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*schema.Supplier)
		expected float64
	}{
		{"lead time 60 days", func(s *schema.Supplier) { s.LeadTime = 60 }, 0.4 * 0.5},
		{"lead time saturates", func(s *schema.Supplier) { s.LeadTime = 240 }, 0.4},
		{"reliability 1 is worst", func(s *schema.Supplier) { s.SupplierReliability = 1 }, 0.3},
		{"reliability 5.5 is midpoint", func(s *schema.Supplier) { s.SupplierReliability = 5.5 }, 0.3 * 0.5},
		{"five handoffs", func(s *schema.Supplier) { s.SupplyChainHandoffs = 5 }, 0.2 * 0.5},
		{"handoffs saturate", func(s *schema.Supplier) { s.SupplyChainHandoffs = 12 }, 0.2},
		{"china country risk", func(s *schema.Supplier) { s.Country = schema.CountryChina }, 0.1},
		{"india country risk", func(s *schema.Supplier) { s.Country = schema.CountryIndia }, 0.1 * 0.31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := riskSupplier()
			tt.mutate(&s)
			risk, err := SupplierRiskScore(&s)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, risk, 1e-9)
		})
	}
}

// TestSupplierRiskScoreMonotonicity checks risk never decreases as lead
// time, handoffs or country risk grow, and never increases with reliability.
func TestSupplierRiskScoreMonotonicity(t *testing.T) {
	score := func(s schema.Supplier) float64 {
		risk, err := SupplierRiskScore(&s)
		require.NoError(t, err)
		return risk
	}

	t.Run("lead time", func(t *testing.T) {
		prev := -1.0
		for _, leadTime := range []float64{0, 15, 60, 119, 120, 500} {
			s := riskSupplier()
			s.LeadTime = leadTime
			risk := score(s)
			assert.GreaterOrEqual(t, risk, prev)
			prev = risk
		}
	})

	t.Run("handoffs", func(t *testing.T) {
		prev := -1.0
		for _, handoffs := range []int{0, 1, 5, 10, 15} {
			s := riskSupplier()
			s.SupplyChainHandoffs = handoffs
			risk := score(s)
			assert.GreaterOrEqual(t, risk, prev)
			prev = risk
		}
	})

	t.Run("country risk", func(t *testing.T) {
		prev := -1.0
		for _, country := range []schema.Country{schema.CountryUS, schema.CountryIndia, schema.CountryChina} {
			s := riskSupplier()
			s.Country = country
			risk := score(s)
			assert.GreaterOrEqual(t, risk, prev)
			prev = risk
		}
	})

	t.Run("reliability", func(t *testing.T) {
		prev := 2.0
		for _, reliability := range []float64{1, 3, 5, 7, 10} {
			s := riskSupplier()
			s.SupplierReliability = reliability
			risk := score(s)
			assert.LessOrEqual(t, risk, prev)
			prev = risk
		}
	})
}

// TestCountryScore verifies the diagnostic country composite per country.
func TestCountryScore(t *testing.T) {
	tests := []struct {
		country  schema.Country
		expected float64
	}{
		{schema.CountryUS, 0.3*1.0 + 0.3*1.0 + 0.4*1.0},
		{schema.CountryIndia, 0.3*0.49 + 0.3*0.69 + 0.4*0.70},
		{schema.CountryChina, 0.3*0.0 + 0.3*0.0 + 0.4*0.30},
	}

	for _, tt := range tests {
		t.Run(string(tt.country), func(t *testing.T) {
			s := riskSupplier()
			s.Country = tt.country
			score, err := CountryScore(&s)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, score, 1e-9)
		})
	}
}

// TestRiskUnknownCountry ensures malformed countries fail loudly in both models.
func TestRiskUnknownCountry(t *testing.T) {
	s := riskSupplier()
	s.Country = "Atlantis"

	_, err := SupplierRiskScore(&s)
	assert.ErrorContains(t, err, "unknown country")

	_, err = CountryScore(&s)
	assert.ErrorContains(t, err, "unknown country")
}
