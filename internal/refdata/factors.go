package refdata

// Fuel type identifiers shared by the road-vehicle and fuel calculators.
const (
	FuelPetrol     = "petrol"
	FuelDiesel     = "diesel"
	FuelLPG        = "lpg"
	FuelElectric   = "electric"
	FuelHybrid     = "hybrid"
	FuelPropane    = "propane"
	FuelButane     = "butane"
	FuelKerosene   = "kerosene"
	FuelNaturalGas = "natural_gas"
)

// RoadFuelFactors maps road-vehicle fuel types to kg CO2e per US gallon.
//
// Electric is carried at zero because tailpipe emissions are zero; the grid
// emissions of charging belong to the EV charging module. Hybrid reuses the
// petrol figure: the combustion share of a hybrid burns petrol.
//
// Source: DEFRA 2023, converted from kg CO2e per litre.
var RoadFuelFactors = map[string]float64{
	FuelPetrol:   8.8769,
	FuelDiesel:   10.1801,
	FuelLPG:      5.8887,
	FuelElectric: 0,
	FuelHybrid:   8.8769,
}

// GetRoadFuelFactor returns the kg CO2e per gallon factor for a road fuel
// type. The boolean is false when the fuel type is not in the table.
func GetRoadFuelFactor(fuelType string) (float64, bool) {
	f, ok := RoadFuelFactors[fuelType]
	return f, ok
}

// Flight classification labels.
const (
	FlightShort   = "short"
	FlightMedium  = "medium"
	FlightLong    = "long"
	FlightAverage = "average"
)

// TransportFlightFactors maps flight classifications to kg CO2e per
// passenger-mile for the transport module. The transport module classifies
// with the 288/688 mile thresholds.
//
// Source: DEFRA 2023 passenger air travel, converted from per passenger-km.
var TransportFlightFactors = map[string]float64{
	FlightShort:  0.2443,
	FlightMedium: 0.177,
	FlightLong:   0.1953,
}

// CommercialFlightFactors maps flight classifications to kg CO2e per
// passenger-mile for the commercial-travel module, which classifies with the
// 287.7/688.5 mile thresholds. The two tables come from different source
// worksheets and are deliberately not unified with TransportFlightFactors.
var CommercialFlightFactors = map[string]float64{
	FlightShort:   0.2054,
	FlightMedium:  0.1597,
	FlightLong:    0.1802,
	FlightAverage: 0.1882,
}

// Rail type identifiers.
const (
	RailNational      = "national"
	RailInternational = "international"
	RailLight         = "light_rail"
	RailUnderground   = "underground"
)

// RailFactors maps rail types to kg CO2e per passenger-mile.
//
// Underground/metro has no distinct published figure; the light-rail factor
// is reused for it (see GetRailFactor).
//
// Source: DEFRA 2023 rail, converted from per passenger-km.
var RailFactors = map[string]float64{
	RailNational:      0.0571,
	RailInternational: 0.008,
	RailLight:         0.046,
}

// GetRailFactor returns the kg CO2e per passenger-mile factor for a rail
// type. Underground falls back to the light-rail figure.
func GetRailFactor(railType string) (float64, bool) {
	if railType == RailUnderground {
		railType = RailLight
	}
	f, ok := RailFactors[railType]
	return f, ok
}

// FerryFactor is kg CO2e per passenger-mile for ferry travel (foot
// passenger). Source: DEFRA 2023.
const FerryFactor = 0.0302

// FuelGallonFactors maps fuel-module fuel types to kg CO2e per US gallon.
// Natural gas is absent on purpose: its factor is denominated per cubic foot
// (NaturalGasPerCubicFootFactor), not per gallon.
//
// Source: DEFRA 2023 fuels, converted from per litre.
var FuelGallonFactors = map[string]float64{
	FuelPetrol:   8.8769,
	FuelDiesel:   10.1801,
	FuelPropane:  5.7232,
	FuelButane:   6.0696,
	FuelKerosene: 9.7562,
	FuelLPG:      5.8887,
}

// GetFuelGallonFactor returns the per-gallon factor for a fuel-module fuel
// type. The boolean is false for unknown fuels and for natural gas.
func GetFuelGallonFactor(fuelType string) (float64, bool) {
	f, ok := FuelGallonFactors[fuelType]
	return f, ok
}

const (
	// NaturalGasPerCubicFootFactor is kg CO2e per cubic foot of natural gas
	// burned. Source: DEFRA 2023.
	NaturalGasPerCubicFootFactor = 0.0551

	// NaturalGasPerCubicMeterFactor is kg CO2e per cubic meter of natural
	// gas burned, used by the utilities heating path. Source: DEFRA 2023.
	NaturalGasPerCubicMeterFactor = 2.0336

	// FuelOilPerLiterFactor is kg CO2e per litre of fuel oil burned, used by
	// the utilities heating path. Source: DEFRA 2023 burning oil.
	FuelOilPerLiterFactor = 2.5404
)
