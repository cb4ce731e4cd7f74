package calc

import (
	"fmt"
	"strings"

	"github.com/reelcarbon/reelcarbon/internal/refdata"
	"github.com/reelcarbon/reelcarbon/internal/units"
)

// Heat fuel selections for a utilities entry.
const (
	HeatNaturalGas = "natural_gas"
	HeatFuelOil    = "fuel_oil"
	HeatNone       = "none"
	// HeatIncludedInElectricity means the heating load is already counted in
	// the electricity figure; it contributes zero heating emissions so the
	// load is never double-counted.
	HeatIncludedInElectricity = "included_in_electricity"
)

// UtilitiesEntry is one electricity-and-heating activity record.
type UtilitiesEntry struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	BuildingType  string  `json:"buildingType"`
	FloorArea     float64 `json:"floorArea,omitempty"`
	FloorAreaUnit string  `json:"floorAreaUnit,omitempty"`
	DaysOccupied  int     `json:"daysOccupied,omitempty"`

	ElectricityMethod string  `json:"electricityMethod"` // usage | area | none
	ElectricityKWh    float64 `json:"electricityKwh,omitempty"`

	HeatFuel        string  `json:"heatFuel"`   // natural_gas | fuel_oil | none | included_in_electricity
	HeatMethod      string  `json:"heatMethod"` // usage | area | none
	NaturalGasUsage float64 `json:"naturalGasUsage,omitempty"`
	NaturalGasUnit  string  `json:"naturalGasUnit,omitempty"`
	FuelOilUsage    float64 `json:"fuelOilUsage,omitempty"`
	FuelOilUnit     string  `json:"fuelOilUnit,omitempty"`
}

// UtilitiesResult is the derived emissions for one utilities entry.
type UtilitiesResult struct {
	EntryID           string  `json:"entryId"`
	CO2eKg            float64 `json:"co2eKg"`
	ElectricityKWh    float64 `json:"electricityKwh"`
	ElectricityCO2eKg float64 `json:"electricityCo2eKg"`
	HeatingCO2eKg     float64 `json:"heatingCo2eKg"`
	BuildingType      string  `json:"buildingType"`
	EmissionFactor    float64 `json:"emissionFactor"` // electricity kg CO2e/kWh applied
	CalculationMethod string  `json:"calculationMethod"`
}

// CalculateUtilities computes electricity and heating emissions for a single
// utilities entry.
//
// Electricity: method "usage" takes the metered kWh directly; method "area"
// derives annual kWh from the building type's per-square-foot intensity and
// scales it by daysOccupied/365 (daysOccupied 0 means the full year);
// "none" contributes nothing. The electricity factor is currently pinned to
// the United States regardless of production location.
//
// Heating: the same usage/area split applies, restricted to the selected
// heat fuel. Natural gas is normalized to cubic meters and fuel oil to
// liters before applying their factors. "none" and "included_in_electricity"
// contribute zero heating emissions.
func CalculateUtilities(entry UtilitiesEntry) (UtilitiesResult, error) {
	electricityFactor := refdata.GetElectricityEmissionFactor(refdata.CountryUnitedStates)

	occupancy := 1.0
	if entry.DaysOccupied > 0 {
		occupancy = float64(entry.DaysOccupied) / 365.0
	}

	var methods []string

	// Electricity branch.
	var electricityKWh float64
	switch entry.ElectricityMethod {
	case MethodUsage:
		electricityKWh = entry.ElectricityKWh
		methods = append(methods, fmt.Sprintf("electricity from metered usage: %.1f kWh", electricityKWh))
	case MethodArea:
		intensity, ok := refdata.GetBuildingIntensity(entry.BuildingType)
		if !ok {
			return UtilitiesResult{}, fmt.Errorf("utilities %s: building type %q: %w",
				entry.ID, entry.BuildingType, ErrMissingRequiredField)
		}
		areaSqFt := units.AreaToSquareFeet(entry.FloorArea, entry.FloorAreaUnit)
		electricityKWh = intensity.ElectricityKWh * areaSqFt * occupancy
		methods = append(methods, fmt.Sprintf("electricity estimated from %.0f ft² of %s at %.1f kWh/ft²-yr × %.2f occupancy",
			areaSqFt, entry.BuildingType, intensity.ElectricityKWh, occupancy))
	default:
		methods = append(methods, "electricity not tracked")
	}
	electricityCO2e := electricityKWh * electricityFactor

	// Heating branch, restricted to the selected heat fuel.
	heatingCO2e, heatMethod, err := calculateHeating(entry, occupancy)
	if err != nil {
		return UtilitiesResult{}, err
	}
	methods = append(methods, heatMethod)

	return UtilitiesResult{
		EntryID:           entry.ID,
		CO2eKg:            electricityCO2e + heatingCO2e,
		ElectricityKWh:    electricityKWh,
		ElectricityCO2eKg: electricityCO2e,
		HeatingCO2eKg:     heatingCO2e,
		BuildingType:      entry.BuildingType,
		EmissionFactor:    electricityFactor,
		CalculationMethod: strings.Join(methods, "; "),
	}, nil
}

func calculateHeating(entry UtilitiesEntry, occupancy float64) (float64, string, error) {
	switch entry.HeatFuel {
	case HeatNone:
		return 0, "no heating fuel", nil
	case HeatIncludedInElectricity:
		return 0, "heating included in electricity", nil
	case HeatNaturalGas:
		switch entry.HeatMethod {
		case MethodUsage:
			cubicMeters := units.NaturalGasToCubicMeters(entry.NaturalGasUsage, entry.NaturalGasUnit)
			return cubicMeters * refdata.NaturalGasPerCubicMeterFactor,
				fmt.Sprintf("natural gas from metered usage: %.1f m³", cubicMeters), nil
		case MethodArea:
			intensity, ok := refdata.GetBuildingIntensity(entry.BuildingType)
			if !ok {
				return 0, "", fmt.Errorf("utilities %s: building type %q: %w",
					entry.ID, entry.BuildingType, ErrMissingRequiredField)
			}
			areaSqFt := units.AreaToSquareFeet(entry.FloorArea, entry.FloorAreaUnit)
			cubicFeet := intensity.NaturalGasCuFt * areaSqFt * occupancy
			cubicMeters := units.NaturalGasToCubicMeters(cubicFeet, refdata.UnitCubicFeet)
			return cubicMeters * refdata.NaturalGasPerCubicMeterFactor,
				fmt.Sprintf("natural gas estimated from %.0f ft² at %.1f ft³/ft²-yr", areaSqFt, intensity.NaturalGasCuFt), nil
		default:
			return 0, "natural gas not tracked", nil
		}
	case HeatFuelOil:
		switch entry.HeatMethod {
		case MethodUsage:
			liters := units.FuelOilToLiters(entry.FuelOilUsage, entry.FuelOilUnit)
			return liters * refdata.FuelOilPerLiterFactor,
				fmt.Sprintf("fuel oil from metered usage: %.1f L", liters), nil
		case MethodArea:
			intensity, ok := refdata.GetBuildingIntensity(entry.BuildingType)
			if !ok {
				return 0, "", fmt.Errorf("utilities %s: building type %q: %w",
					entry.ID, entry.BuildingType, ErrMissingRequiredField)
			}
			areaSqFt := units.AreaToSquareFeet(entry.FloorArea, entry.FloorAreaUnit)
			gallons := intensity.FuelOilGallons * areaSqFt * occupancy
			liters := units.FuelOilToLiters(gallons, refdata.UnitGallons)
			return liters * refdata.FuelOilPerLiterFactor,
				fmt.Sprintf("fuel oil estimated from %.0f ft² at %.2f gal/ft²-yr", areaSqFt, intensity.FuelOilGallons), nil
		default:
			return 0, "fuel oil not tracked", nil
		}
	default:
		return 0, "no heating fuel", nil
	}
}

// UtilitiesTotals aggregates utilities results.
type UtilitiesTotals struct {
	TotalCO2eKg         float64            `json:"totalCo2eKg"`
	TotalElectricityKWh float64            `json:"totalElectricityKwh"`
	ElectricityCO2eKg   float64            `json:"electricityCo2eKg"`
	HeatingCO2eKg       float64            `json:"heatingCo2eKg"`
	ByBuildingType      map[string]float64 `json:"byBuildingType"`
}

// AggregateUtilities reduces utilities results into totals.
// Returns nil for empty input.
func AggregateUtilities(results []UtilitiesResult) *UtilitiesTotals {
	if len(results) == 0 {
		return nil
	}

	totals := &UtilitiesTotals{ByBuildingType: make(map[string]float64)}
	for _, r := range results {
		totals.TotalCO2eKg += r.CO2eKg
		totals.TotalElectricityKWh += r.ElectricityKWh
		totals.ElectricityCO2eKg += r.ElectricityCO2eKg
		totals.HeatingCO2eKg += r.HeatingCO2eKg
		totals.ByBuildingType[r.BuildingType] += r.CO2eKg
	}
	return totals
}
