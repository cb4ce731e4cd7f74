package refdata

// Unit identifiers accepted by the conversion utilities. Entries arrive with
// these strings from the form layer.
const (
	UnitKilometers = "km"
	UnitMiles      = "miles"

	UnitLiters  = "liters"
	UnitGallons = "gallons"
	UnitKg      = "kg"

	UnitMetricTons = "tonnes"

	UnitSqFt  = "sqft"
	UnitSqM   = "sqm"
	UnitSqYd  = "sqyd"
	UnitAcres = "acres"

	UnitCubicFeet   = "cubic_feet"
	UnitCubicMeters = "cubic_meters"
	UnitCcf         = "ccf"
	UnitCcm         = "ccm"
	UnitTherms      = "therms"
	UnitKWh         = "kwh"

	UnitBtu = "btu"
	UnitMJ  = "mj"
	UnitGJ  = "gj"
)

// Scalar conversion constants. Every conversion in the engine is a linear
// multiplication by one of these; rounding is deferred to presentation.
// Each dimension carries exactly one constant per unit pair — the reverse
// direction divides by the same constant, which keeps round trips exact.
const (
	MilesPerKilometer = 0.621371

	GallonsPerLiter = 0.264172

	KgPerMetricTon = 1000.0

	SqFtPerSqMeter = 10.7639
	SqFtPerSqYard  = 9.0
	SqFtPerAcre    = 43560.0

	// LPGGallonsPerKg converts a mass of propane/LPG to liquid gallons.
	LPGGallonsPerKg = 0.51

	// ButaneGallonsPerKg converts a mass of butane to liquid gallons.
	ButaneGallonsPerKg = 0.43
)

// DistanceToMiles maps distance units to their miles-per-unit scalar.
var DistanceToMiles = map[string]float64{
	UnitMiles:      1.0,
	UnitKilometers: MilesPerKilometer,
}

// VolumeToGallons maps liquid volume units to their gallons-per-unit scalar.
var VolumeToGallons = map[string]float64{
	UnitGallons: 1.0,
	UnitLiters:  GallonsPerLiter,
}

// MassToKg maps mass units to their kg-per-unit scalar.
var MassToKg = map[string]float64{
	UnitKg:         1.0,
	UnitMetricTons: KgPerMetricTon,
}

// AreaToSqFt maps area units to their square-feet-per-unit scalar.
var AreaToSqFt = map[string]float64{
	UnitSqFt:  1.0,
	UnitSqM:   SqFtPerSqMeter,
	UnitSqYd:  SqFtPerSqYard,
	UnitAcres: SqFtPerAcre,
}

// NaturalGasToCubicFeet maps natural-gas volume units (and the kWh and therm
// energy equivalences billed by utilities) to cubic feet per unit.
var NaturalGasToCubicFeet = map[string]float64{
	UnitCubicFeet:   1.0,
	UnitCubicMeters: 35.3147,
	UnitCcf:         100.0,
	UnitCcm:         3531.47,
	UnitTherms:      96.7,
	UnitKWh:         3.3003, // 96.7 ft³/therm ÷ 29.3001 kWh/therm
}

// FuelOilToGallons maps fuel-oil volume and energy units to gallons per
// unit. The energy equivalences assume 138,500 Btu per gallon of fuel oil.
var FuelOilToGallons = map[string]float64{
	UnitGallons: 1.0,
	UnitLiters:  GallonsPerLiter,
	UnitBtu:     1.0 / 138500.0,
	UnitMJ:      1.0 / 146.12,
	UnitGJ:      1.0 / 0.14612,
}
