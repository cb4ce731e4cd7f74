// Package units provides pure scalar unit conversions over the constants in
// refdata. Conversions never round; presentation owns rounding.
//
// Unknown units convert as identity. Calculators pass values through these
// functions whether or not the value is already canonical, so an unknown
// unit pair returns the input unchanged rather than failing.
package units

import "github.com/reelcarbon/reelcarbon/internal/refdata"

// convert scales value from one unit to another through a base-unit ratio
// table. If either unit is missing from the table the value is returned
// unchanged.
func convert(value float64, fromUnit, toUnit string, toBase map[string]float64) float64 {
	from, ok := toBase[fromUnit]
	if !ok {
		return value
	}
	to, ok := toBase[toUnit]
	if !ok {
		return value
	}
	return value * from / to
}

// Distance converts between distance units (km, miles).
func Distance(value float64, fromUnit, toUnit string) float64 {
	return convert(value, fromUnit, toUnit, refdata.DistanceToMiles)
}

// DistanceToMiles normalizes a distance to miles.
func DistanceToMiles(value float64, fromUnit string) float64 {
	return Distance(value, fromUnit, refdata.UnitMiles)
}

// Volume converts between liquid volume units (liters, gallons).
func Volume(value float64, fromUnit, toUnit string) float64 {
	return convert(value, fromUnit, toUnit, refdata.VolumeToGallons)
}

// VolumeToGallons normalizes a liquid volume to gallons.
func VolumeToGallons(value float64, fromUnit string) float64 {
	return Volume(value, fromUnit, refdata.UnitGallons)
}

// Mass converts between mass units (kg, metric tons).
func Mass(value float64, fromUnit, toUnit string) float64 {
	return convert(value, fromUnit, toUnit, refdata.MassToKg)
}

// Area converts between area units (sqft, sqm, sqyd, acres).
func Area(value float64, fromUnit, toUnit string) float64 {
	return convert(value, fromUnit, toUnit, refdata.AreaToSqFt)
}

// AreaToSquareFeet normalizes an area to square feet.
func AreaToSquareFeet(value float64, fromUnit string) float64 {
	return Area(value, fromUnit, refdata.UnitSqFt)
}

// NaturalGas converts between natural-gas volume and energy-equivalent units
// (cubic feet, cubic meters, ccf, ccm, therms, kWh).
func NaturalGas(value float64, fromUnit, toUnit string) float64 {
	return convert(value, fromUnit, toUnit, refdata.NaturalGasToCubicFeet)
}

// NaturalGasToCubicFeet normalizes a natural-gas quantity to cubic feet.
func NaturalGasToCubicFeet(value float64, fromUnit string) float64 {
	return NaturalGas(value, fromUnit, refdata.UnitCubicFeet)
}

// NaturalGasToCubicMeters normalizes a natural-gas quantity to cubic meters.
func NaturalGasToCubicMeters(value float64, fromUnit string) float64 {
	return NaturalGas(value, fromUnit, refdata.UnitCubicMeters)
}

// FuelOil converts between fuel-oil volume and energy-equivalent units
// (gallons, liters, Btu, MJ, GJ).
func FuelOil(value float64, fromUnit, toUnit string) float64 {
	return convert(value, fromUnit, toUnit, refdata.FuelOilToGallons)
}

// FuelOilToGallons normalizes a fuel-oil quantity to gallons.
func FuelOilToGallons(value float64, fromUnit string) float64 {
	return FuelOil(value, fromUnit, refdata.UnitGallons)
}

// FuelOilToLiters normalizes a fuel-oil quantity to liters.
func FuelOilToLiters(value float64, fromUnit string) float64 {
	return FuelOil(value, fromUnit, refdata.UnitLiters)
}
