package calc

import (
	"fmt"

	"github.com/reelcarbon/reelcarbon/internal/refdata"
	"github.com/reelcarbon/reelcarbon/internal/units"
)

// RoadVehicleEntry is one road-vehicle activity record.
type RoadVehicleEntry struct {
	ID                  string  `json:"id"`
	Date                string  `json:"date"`
	FuelType            string  `json:"fuelType"`
	Distance            float64 `json:"distance"`
	DistanceUnit        string  `json:"distanceUnit"`
	FuelConsumption     float64 `json:"fuelConsumption,omitempty"`
	FuelConsumptionUnit string  `json:"fuelConsumptionUnit,omitempty"`
	Passengers          int     `json:"passengers,omitempty"`
}

// RoadVehicleResult is the derived emissions for one road-vehicle entry.
type RoadVehicleResult struct {
	EntryID           string  `json:"entryId"`
	CO2eKg            float64 `json:"co2eKg"`
	FuelGallons       float64 `json:"fuelGallons"`
	DistanceMiles     float64 `json:"distanceMiles"`
	FuelType          string  `json:"fuelType"`
	EmissionFactor    float64 `json:"emissionFactor"`
	CalculationMethod string  `json:"calculationMethod"`
}

// CalculateRoadVehicle computes emissions for a single road-vehicle entry.
//
// Direct fuel consumption wins when supplied (> 0): the fuel is normalized
// to gallons and multiplied by the per-gallon factor for the fuel type.
// Otherwise fuel is estimated from distance at a flat 25 mpg regardless of
// vehicle type (refdata.RoadDefaultMPG).
func CalculateRoadVehicle(entry RoadVehicleEntry) (RoadVehicleResult, error) {
	factor, ok := refdata.GetRoadFuelFactor(entry.FuelType)
	if !ok {
		return RoadVehicleResult{}, fmt.Errorf("road vehicle %s: fuel type %q: %w",
			entry.ID, entry.FuelType, ErrUnknownFuelType)
	}

	distanceMiles := units.DistanceToMiles(entry.Distance, entry.DistanceUnit)

	var fuelGallons float64
	var method string
	if entry.FuelConsumption > 0 {
		fuelGallons = units.VolumeToGallons(entry.FuelConsumption, entry.FuelConsumptionUnit)
		method = fmt.Sprintf("Direct fuel consumption: %.2f gal %s × %.4f kg CO2e/gal",
			fuelGallons, entry.FuelType, factor)
	} else {
		fuelGallons = distanceMiles / refdata.RoadDefaultMPG
		method = fmt.Sprintf("Estimated from distance: %.1f mi ÷ %.0f mpg = %.2f gal %s × %.4f kg CO2e/gal",
			distanceMiles, refdata.RoadDefaultMPG, fuelGallons, entry.FuelType, factor)
	}

	return RoadVehicleResult{
		EntryID:           entry.ID,
		CO2eKg:            fuelGallons * factor,
		FuelGallons:       fuelGallons,
		DistanceMiles:     distanceMiles,
		FuelType:          entry.FuelType,
		EmissionFactor:    factor,
		CalculationMethod: method,
	}, nil
}

// RoadVehicleTotals aggregates road-vehicle results.
type RoadVehicleTotals struct {
	TotalCO2eKg      float64            `json:"totalCo2eKg"`
	TotalFuelGallons float64            `json:"totalFuelGallons"`
	TotalMiles       float64            `json:"totalMiles"`
	ByFuelType       map[string]float64 `json:"byFuelType"`
}

// AggregateRoadVehicles reduces road-vehicle results into totals.
// Returns nil for empty input.
func AggregateRoadVehicles(results []RoadVehicleResult) *RoadVehicleTotals {
	if len(results) == 0 {
		return nil
	}

	totals := &RoadVehicleTotals{ByFuelType: make(map[string]float64)}
	for _, r := range results {
		totals.TotalCO2eKg += r.CO2eKg
		totals.TotalFuelGallons += r.FuelGallons
		totals.TotalMiles += r.DistanceMiles
		totals.ByFuelType[r.FuelType] += r.CO2eKg
	}
	return totals
}
