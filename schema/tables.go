package schema

import "fmt"

// SteelRoutes maps each production route to its emissions profile.
// Figures follow published BF-BOF vs Scrap-EAF lifecycle averages.
var SteelRoutes = map[SteelRoute]SteelRouteConfig{
	RouteBFBOF: {
		Route:      RouteBFBOF,
		CO2Min:     2.0,
		CO2Max:     2.7,
		CO2Average: 2.35,
	},
	RouteScrapEAF: {
		Route:      RouteScrapEAF,
		CO2Min:     0.3,
		CO2Max:     0.9,
		CO2Average: 0.6,
	},
}

// TransportModes maps each freight mode to its cost and emission factors.
var TransportModes = map[TransportMode]TransportConfig{
	ModeTruck: {
		Mode:         ModeTruck,
		CO2PerTonKm:  62,   // g CO2 per ton-km
		CostPerTonKm: 0.15, // USD per ton-km (approximate)
	},
	ModeRail: {
		Mode:         ModeRail,
		CO2PerTonKm:  21,
		CostPerTonKm: 0.05,
	},
	ModeShip: {
		Mode:         ModeShip,
		CO2PerTonKm:  7,
		CostPerTonKm: 0.02,
	},
	ModeAir: {
		Mode:         ModeAir,
		CO2PerTonKm:  570,
		CostPerTonKm: 1.5,
	},
}

// CountryFactorTable maps each country to its normalized cost/risk/trade
// scores. Scores are min-max normalized across the supported set, so the
// cheapest country carries costScore 0 and the riskiest riskScore 1.
var CountryFactorTable = map[Country]CountryFactors{
	CountryUS: {
		Country:    CountryUS,
		CostScore:  0.0,
		RiskScore:  0.0,
		TradeScore: 1.0,
		Volatility: 0.15,
		Growth:     0.12,
	},
	CountryIndia: {
		Country:    CountryIndia,
		CostScore:  0.51,
		RiskScore:  0.31,
		TradeScore: 0.70,
		Volatility: 0.22,
		Growth:     0.18,
	},
	CountryChina: {
		Country:    CountryChina,
		CostScore:  1.0,
		RiskScore:  1.0,
		TradeScore: 0.30,
		Volatility: 0.28,
		Growth:     0.15,
	},
}

// TradePolicies maps each country to its default tariff and credit
// structure, based on 2024-2025 rates:
//
//   - US: no import tariffs, IRA tax credits (~$25/ton) and Section 45Q
//     green steel incentives (~$40/ton).
//   - China: Section 232 tariff (50%), average anti-dumping (15%) and
//     countervailing (10%) duties, no US credits.
//   - India: Section 232 tariff (50%), lower duties, some origin-country
//     green steel incentives (~$15/ton).
var TradePolicies = map[Country]TradePolicy{
	CountryUS: {
		Country:             CountryUS,
		TariffRate:          0,
		AntiDumpingDuty:     0,
		CountervailingDuty:  0,
		DomesticTaxCredits:  25,
		GreenSteelSubsidies: 40,
	},
	CountryChina: {
		Country:             CountryChina,
		TariffRate:          50,
		AntiDumpingDuty:     15,
		CountervailingDuty:  10,
		DomesticTaxCredits:  0,
		GreenSteelSubsidies: 0,
	},
	CountryIndia: {
		Country:             CountryIndia,
		TariffRate:          50,
		AntiDumpingDuty:     2,
		CountervailingDuty:  3,
		DomesticTaxCredits:  0,
		GreenSteelSubsidies: 15,
	},
}

// LookupSteelRoute returns the emissions profile for a production route.
// An unknown route is a caller bug and fails loudly.
func LookupSteelRoute(route SteelRoute) (SteelRouteConfig, error) {
	cfg, ok := SteelRoutes[route]
	if !ok {
		return SteelRouteConfig{}, fmt.Errorf("unknown steel route %q", route)
	}
	return cfg, nil
}

// LookupTransportMode returns the factors for a transport mode.
func LookupTransportMode(mode TransportMode) (TransportConfig, error) {
	cfg, ok := TransportModes[mode]
	if !ok {
		return TransportConfig{}, fmt.Errorf("unknown transport mode %q", mode)
	}
	return cfg, nil
}

// LookupCountryFactors returns the normalized factors for a country.
func LookupCountryFactors(country Country) (CountryFactors, error) {
	cf, ok := CountryFactorTable[country]
	if !ok {
		return CountryFactors{}, fmt.Errorf("unknown country %q", country)
	}
	return cf, nil
}

// LookupTradePolicy returns the default trade policy for a country.
func LookupTradePolicy(country Country) (TradePolicy, error) {
	tp, ok := TradePolicies[country]
	if !ok {
		return TradePolicy{}, fmt.Errorf("unknown country %q", country)
	}
	return tp, nil
}

// DefaultTradePolicy returns the trade policy defaults applied to a supplier
// given its country and production route. Green subsidies only apply to the
// Scrap-EAF route, and domestic tax credits only apply to US suppliers.
func DefaultTradePolicy(country Country, route SteelRoute) (TradePolicy, error) {
	if _, ok := ValidSteelRoutes[route]; !ok {
		return TradePolicy{}, fmt.Errorf("unknown steel route %q", route)
	}
	policy, err := LookupTradePolicy(country)
	if err != nil {
		return TradePolicy{}, err
	}
	if route == RouteBFBOF {
		policy.GreenSteelSubsidies = 0
	}
	if country != CountryUS {
		policy.DomesticTaxCredits = 0
	}
	return policy, nil
}
