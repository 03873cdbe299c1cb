package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSupplier() Supplier {
	return Supplier{
		ID:                  "s-1",
		Name:                "Test Steel",
		Country:             CountryUS,
		SteelRoute:          RouteBFBOF,
		BasePrice:           800,
		SupplierReliability: 8,
		LeadTime:            30,
	}
}

// TestSupplierValidate exercises construction-time rejection of malformed
// records.
func TestSupplierValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Supplier)
		wantErr string
	}{
		{"valid", func(s *Supplier) {}, ""},
		{"missing id", func(s *Supplier) { s.ID = "" }, "id is required"},
		{"unknown country", func(s *Supplier) { s.Country = "Atlantis" }, "unknown country"},
		{"unknown route", func(s *Supplier) { s.SteelRoute = "H2-DRI" }, "unknown steel route"},
		{"reliability too low", func(s *Supplier) { s.SupplierReliability = 0 }, "reliability"},
		{"reliability too high", func(s *Supplier) { s.SupplierReliability = 11 }, "reliability"},
		{"negative lead time", func(s *Supplier) { s.LeadTime = -1 }, "lead time"},
		{"negative handoffs", func(s *Supplier) { s.SupplyChainHandoffs = -1 }, "handoffs"},
		{"unknown segment mode", func(s *Supplier) {
			s.Transportation = &Transportation{Segments: []TransportationSegment{{Distance: 10, Mode: "Hyperloop"}}}
		}, "unknown transport mode"},
		{"negative segment distance", func(s *Supplier) {
			s.Transportation = &Transportation{Segments: []TransportationSegment{{Distance: -5, Mode: ModeShip}}}
		}, "distance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSupplier()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

// TestWeightsNormalize checks normalization and its zero-sum escape hatch.
func TestWeightsNormalize(t *testing.T) {
	w := CalculationWeights{Cost: 2, Carbon: 1, Risk: 1}
	n := w.Normalize()
	assert.InDelta(t, 0.5, n.Cost, 1e-9)
	assert.InDelta(t, 0.25, n.Carbon, 1e-9)
	assert.InDelta(t, 0.25, n.Risk, 1e-9)
	assert.InDelta(t, 1.0, n.Sum(), 1e-9)

	zero := CalculationWeights{}
	assert.Equal(t, zero, zero.Normalize())
}

// TestWeightsValidate rejects negative and all-zero weight vectors.
func TestWeightsValidate(t *testing.T) {
	assert.NoError(t, CalculationWeights{Cost: 0.4, Carbon: 0.3, Risk: 0.3}.Validate())
	assert.ErrorContains(t, CalculationWeights{Cost: -0.1, Carbon: 0.6, Risk: 0.5}.Validate(), "negative")
	assert.ErrorContains(t, CalculationWeights{}.Validate(), "zero")
}
