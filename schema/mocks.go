package schema

// DefaultQuantity is the batch size in tons assumed when the caller does not
// supply one.
const DefaultQuantity = 1000.0

// DefaultTransportation returns the fallback journey applied to suppliers
// that carry no transportation of their own.
func DefaultTransportation() *Transportation {
	return &Transportation{
		Segments: []TransportationSegment{
			{Distance: 1000, Mode: ModeShip},
			{Distance: 500, Mode: ModeTruck},
		},
	}
}

// demoSupplier builds a supplier with trade policy defaults for its country
// and route. Panics on unknown tags, which cannot happen for the fixed demo
// batch below.
func demoSupplier(id, name string, country Country, route SteelRoute,
	basePrice, conversionCost, reliability, leadTime float64,
	handoffs int, minOrder, brokerage float64, transportation *Transportation) Supplier {
	policy, err := DefaultTradePolicy(country, route)
	if err != nil {
		panic(err)
	}
	return Supplier{
		ID:                  id,
		Name:                name,
		Country:             country,
		SteelRoute:          route,
		BasePrice:           basePrice,
		ConversionCost:      conversionCost,
		TariffRate:          policy.TariffRate,
		AntiDumpingDuty:     policy.AntiDumpingDuty,
		CountervailingDuty:  policy.CountervailingDuty,
		DomesticTaxCredits:  policy.DomesticTaxCredits,
		GreenSteelSubsidies: policy.GreenSteelSubsidies,
		SupplierReliability: reliability,
		LeadTime:            leadTime,
		SupplyChainHandoffs: handoffs,
		MinOrderCommitment:  minOrder,
		BrokerageFees:       brokerage,
		Transportation:      transportation,
	}
}

// DemoSuppliers returns the documented demo batch: one supplier per country,
// with each country's trade policy defaults applied.
func DemoSuppliers() []Supplier {
	return []Supplier{
		demoSupplier("us-1", "US Steel Corp", CountryUS, RouteBFBOF,
			880, 50, 9, 30, 2, 500, 5,
			&Transportation{Segments: []TransportationSegment{
				{Distance: 1200, Mode: ModeRail},
				{Distance: 300, Mode: ModeTruck},
			}}),
		demoSupplier("china-1", "China Steel Manufacturing", CountryChina, RouteBFBOF,
			610, 35, 7, 60, 5, 1000, 18,
			&Transportation{Segments: []TransportationSegment{
				{Distance: 11500, Mode: ModeShip},
				{Distance: 350, Mode: ModeTruck},
			}}),
		demoSupplier("india-1", "Tata Steel India", CountryIndia, RouteScrapEAF,
			740, 45, 8, 45, 3, 750, 8,
			&Transportation{Segments: []TransportationSegment{
				{Distance: 12500, Mode: ModeShip},
				{Distance: 400, Mode: ModeTruck},
			}}),
	}
}
