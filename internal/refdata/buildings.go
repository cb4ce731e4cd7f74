package refdata

// Building type identifiers for area-based utilities estimation.
const (
	BuildingOffice      = "office"
	BuildingSoundStage  = "sound_stage"
	BuildingWarehouse   = "warehouse"
	BuildingWorkshop    = "workshop"
	BuildingRetail      = "retail"
	BuildingResidential = "residential"
)

// BuildingIntensity is the annual per-square-foot energy consumption profile
// of a building type, used only when a utilities entry selects area-based
// estimation.
type BuildingIntensity struct {
	ElectricityKWh float64 // kWh per ft² per year
	NaturalGasCuFt float64 // cubic feet per ft² per year
	FuelOilGallons float64 // gallons per ft² per year
}

// BuildingIntensities maps building types to their annual energy intensity.
//
// Source: CBECS commercial building survey averages, production-relevant
// building types only.
var BuildingIntensities = map[string]BuildingIntensity{
	BuildingOffice:      {ElectricityKWh: 16.0, NaturalGasCuFt: 33.4, FuelOilGallons: 0.04},
	BuildingSoundStage:  {ElectricityKWh: 19.2, NaturalGasCuFt: 28.3, FuelOilGallons: 0.03},
	BuildingWarehouse:   {ElectricityKWh: 7.6, NaturalGasCuFt: 19.5, FuelOilGallons: 0.02},
	BuildingWorkshop:    {ElectricityKWh: 10.1, NaturalGasCuFt: 24.7, FuelOilGallons: 0.02},
	BuildingRetail:      {ElectricityKWh: 14.3, NaturalGasCuFt: 29.6, FuelOilGallons: 0.03},
	BuildingResidential: {ElectricityKWh: 11.8, NaturalGasCuFt: 38.6, FuelOilGallons: 0.08},
}

// GetBuildingIntensity returns the intensity profile for a building type.
func GetBuildingIntensity(buildingType string) (BuildingIntensity, bool) {
	intensity, ok := BuildingIntensities[buildingType]
	return intensity, ok
}
