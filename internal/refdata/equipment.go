package refdata

const (
	// RoadDefaultMPG is the flat average fuel economy used when a road
	// vehicle entry supplies distance but no direct fuel consumption. It is
	// applied uniformly regardless of vehicle type; per-vehicle economy
	// tables are not part of this snapshot.
	RoadDefaultMPG = 25.0

	// EquipmentDefaultMPG is the fallback fuel economy for equipment types
	// missing from EquipmentMPG. A permissive default, not an error.
	EquipmentDefaultMPG = 20.0
)

// Equipment type identifiers for the fuel module's mileage method.
const (
	EquipmentGenerator = "generator"
	EquipmentTruck     = "truck"
	EquipmentVan       = "van"
	EquipmentCar       = "car"
	EquipmentTractor   = "tractor"
	EquipmentLift      = "lift"
)

// EquipmentMPG maps equipment types to miles per gallon for the fuel
// module's mileage-based calculation.
var EquipmentMPG = map[string]float64{
	EquipmentGenerator: 12,
	EquipmentTruck:     8,
	EquipmentVan:       18,
	EquipmentCar:       25,
	EquipmentTractor:   6,
	EquipmentLift:      10,
}

// GetEquipmentMPG returns the fuel economy for an equipment type, falling
// back to EquipmentDefaultMPG when the type is not listed.
func GetEquipmentMPG(equipmentType string) float64 {
	if mpg, ok := EquipmentMPG[equipmentType]; ok {
		return mpg
	}
	return EquipmentDefaultMPG
}
