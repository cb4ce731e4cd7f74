package calc

import (
	"fmt"

	"github.com/reelcarbon/reelcarbon/internal/refdata"
	"github.com/reelcarbon/reelcarbon/internal/units"
)

// CharterFlightsEntry is one chartered-aircraft activity record.
type CharterFlightsEntry struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	AircraftType string `json:"aircraftType"`
	Method       string `json:"calculationMethod"` // fuel | hours | distance

	FuelAmount float64 `json:"fuelAmount,omitempty"`
	FuelUnit   string  `json:"fuelUnit,omitempty"`

	HoursFlown float64 `json:"hoursFlown,omitempty"`

	Distance     float64 `json:"distance,omitempty"`
	DistanceUnit string  `json:"distanceUnit,omitempty"`
}

// CharterFlightsResult is the derived emissions for one charter entry.
type CharterFlightsResult struct {
	EntryID           string  `json:"entryId"`
	CO2eKg            float64 `json:"co2eKg"`
	FuelGallons       float64 `json:"fuelGallons"`
	AircraftType      string  `json:"aircraftType"`
	EmissionFactor    float64 `json:"emissionFactor"`
	CalculationMethod string  `json:"calculationMethod"`
}

// CalculateCharterFlight computes emissions for a single charter entry.
// Fuel gallons are resolved per the chosen method from the aircraft type's
// profile, then multiplied by the aircraft's per-gallon factor.
func CalculateCharterFlight(entry CharterFlightsEntry) (CharterFlightsResult, error) {
	aircraft, ok := refdata.GetAircraftData(entry.AircraftType)
	if !ok {
		return CharterFlightsResult{}, fmt.Errorf("charter flight %s: aircraft type %q: %w",
			entry.ID, entry.AircraftType, ErrUnknownAircraftType)
	}

	var gallons float64
	var method string
	switch entry.Method {
	case MethodFuel:
		if entry.FuelAmount <= 0 {
			return CharterFlightsResult{}, fmt.Errorf("charter flight %s: fuel amount: %w",
				entry.ID, ErrMissingRequiredField)
		}
		gallons = units.VolumeToGallons(entry.FuelAmount, entry.FuelUnit)
		method = fmt.Sprintf("direct fuel: %.1f gal", gallons)
	case MethodHours:
		if entry.HoursFlown <= 0 {
			return CharterFlightsResult{}, fmt.Errorf("charter flight %s: hours flown: %w",
				entry.ID, ErrMissingRequiredField)
		}
		gallons = entry.HoursFlown * aircraft.GallonsPerHour
		method = fmt.Sprintf("hours flown: %.1f h × %.0f gal/h = %.1f gal",
			entry.HoursFlown, aircraft.GallonsPerHour, gallons)
	case MethodDistance:
		if entry.Distance <= 0 {
			return CharterFlightsResult{}, fmt.Errorf("charter flight %s: distance: %w",
				entry.ID, ErrMissingRequiredField)
		}
		distanceMiles := units.DistanceToMiles(entry.Distance, entry.DistanceUnit)
		gallons = distanceMiles / aircraft.MilesPerGallon
		method = fmt.Sprintf("distance: %.1f mi ÷ %.2f mpg = %.1f gal",
			distanceMiles, aircraft.MilesPerGallon, gallons)
	default:
		return CharterFlightsResult{}, fmt.Errorf("charter flight %s: calculation method %q: %w",
			entry.ID, entry.Method, ErrMissingRequiredField)
	}

	return CharterFlightsResult{
		EntryID:        entry.ID,
		CO2eKg:         gallons * aircraft.FactorPerGallon,
		FuelGallons:    gallons,
		AircraftType:   entry.AircraftType,
		EmissionFactor: aircraft.FactorPerGallon,
		CalculationMethod: fmt.Sprintf("%s, %s × %.4f kg CO2e/gal",
			entry.AircraftType, method, aircraft.FactorPerGallon),
	}, nil
}

// CharterFlightsTotals aggregates charter-flight results.
type CharterFlightsTotals struct {
	TotalCO2eKg      float64            `json:"totalCo2eKg"`
	TotalFuelGallons float64            `json:"totalFuelGallons"`
	ByAircraftType   map[string]float64 `json:"byAircraftType"`
}

// AggregateCharterFlights reduces charter-flight results into totals.
// Returns nil for empty input.
func AggregateCharterFlights(results []CharterFlightsResult) *CharterFlightsTotals {
	if len(results) == 0 {
		return nil
	}

	totals := &CharterFlightsTotals{ByAircraftType: make(map[string]float64)}
	for _, r := range results {
		totals.TotalCO2eKg += r.CO2eKg
		totals.TotalFuelGallons += r.FuelGallons
		totals.ByAircraftType[r.AircraftType] += r.CO2eKg
	}
	return totals
}
