package refdata

// Aircraft type identifiers for charter flights.
const (
	AircraftCommercialJet   = "chartered_commercial_jet"
	AircraftLargePrivateJet = "large_private_jet"
	AircraftSmallPrivateJet = "small_private_jet"
	AircraftHelicopter      = "helicopter"
)

// AircraftData is the performance and emissions profile of a charter
// aircraft type, used to derive fuel burned from hours or distance when
// direct fuel is not supplied.
type AircraftData struct {
	FuelType        string
	GallonsPerHour  float64
	MilesPerGallon  float64
	FactorPerGallon float64 // kg CO2e per gallon of the aircraft's fuel
}

// AircraftProfiles maps charter aircraft types to their profiles.
//
// Fuel burn figures are cruise averages; Jet A at 9.5718 kg CO2e per gallon,
// helicopter turbine fuel at 8.824. Source: DEFRA 2023 aviation fuels.
var AircraftProfiles = map[string]AircraftData{
	AircraftCommercialJet: {
		FuelType:        FuelKerosene,
		GallonsPerHour:  750,
		MilesPerGallon:  0.72,
		FactorPerGallon: 9.5718,
	},
	AircraftLargePrivateJet: {
		FuelType:        FuelKerosene,
		GallonsPerHour:  370,
		MilesPerGallon:  1.38,
		FactorPerGallon: 9.5718,
	},
	AircraftSmallPrivateJet: {
		FuelType:        FuelKerosene,
		GallonsPerHour:  120,
		MilesPerGallon:  3.66,
		FactorPerGallon: 9.5718,
	},
	AircraftHelicopter: {
		FuelType:        FuelKerosene,
		GallonsPerHour:  50,
		MilesPerGallon:  2.8,
		FactorPerGallon: 8.824,
	},
}

// GetAircraftData returns the profile for a charter aircraft type.
func GetAircraftData(aircraftType string) (AircraftData, bool) {
	data, ok := AircraftProfiles[aircraftType]
	return data, ok
}
