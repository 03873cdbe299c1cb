package schema

// Custom string types for type safety.
type (
	// SteelRoute represents a steel production route.
	SteelRoute string

	// TransportMode represents a mode of freight transport.
	TransportMode string

	// Country represents a supported supplier country.
	Country string

	// OutputMode represents the format of the output.
	OutputMode string
)

// All steel production routes supported.
const (
	RouteBFBOF    SteelRoute = "BF-BOF"    // blast furnace / basic oxygen furnace
	RouteScrapEAF SteelRoute = "Scrap-EAF" // scrap-fed electric arc furnace
)

// All transport modes supported.
const (
	ModeTruck TransportMode = "Truck"
	ModeRail  TransportMode = "Rail"
	ModeShip  TransportMode = "Ship"
	ModeAir   TransportMode = "Air"
)

// All supplier countries supported.
const (
	CountryUS    Country = "US"
	CountryChina Country = "China"
	CountryIndia Country = "India"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// AllSteelRoutes returns a list of all supported steel routes.
var AllSteelRoutes = []SteelRoute{RouteBFBOF, RouteScrapEAF}

// AllTransportModes returns a list of all supported transport modes.
var AllTransportModes = []TransportMode{ModeTruck, ModeRail, ModeShip, ModeAir}

// AllCountries returns a list of all supported countries.
var AllCountries = []Country{CountryUS, CountryChina, CountryIndia}

// ValidSteelRoutes lists all valid steel routes.
var ValidSteelRoutes = map[SteelRoute]struct{}{
	RouteBFBOF:    {},
	RouteScrapEAF: {},
}

// ValidTransportModes lists all valid transport modes.
var ValidTransportModes = map[TransportMode]struct{}{
	ModeTruck: {},
	ModeRail:  {},
	ModeShip:  {},
	ModeAir:   {},
}

// ValidCountries lists all valid countries.
var ValidCountries = map[Country]struct{}{
	CountryUS:    {},
	CountryChina: {},
	CountryIndia: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}
