package calc

import (
	"fmt"

	"github.com/reelcarbon/reelcarbon/internal/refdata"
	"github.com/reelcarbon/reelcarbon/internal/units"
)

// RailTravelEntry is one rail-travel activity record in the transport module.
type RailTravelEntry struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	RailType     string  `json:"railType"`
	Distance     float64 `json:"distance"`
	DistanceUnit string  `json:"distanceUnit"`
	Passengers   int     `json:"passengers,omitempty"`
}

// RailTravelResult is the derived emissions for one rail-travel entry.
type RailTravelResult struct {
	EntryID           string  `json:"entryId"`
	CO2eKg            float64 `json:"co2eKg"`
	DistanceMiles     float64 `json:"distanceMiles"`
	PassengerMiles    float64 `json:"passengerMiles"`
	RailType          string  `json:"railType"`
	EmissionFactor    float64 `json:"emissionFactor"`
	CalculationMethod string  `json:"calculationMethod"`
}

// CalculateRailTravel computes emissions for a single rail-travel entry.
// Passengers defaults to 1. Underground reuses the light-rail factor, which
// is the closest published figure.
func CalculateRailTravel(entry RailTravelEntry) (RailTravelResult, error) {
	factor, ok := refdata.GetRailFactor(entry.RailType)
	if !ok {
		return RailTravelResult{}, fmt.Errorf("rail travel %s: rail type %q: %w",
			entry.ID, entry.RailType, ErrUnknownTransportType)
	}

	passengers := entry.Passengers
	if passengers < 1 {
		passengers = 1
	}

	distanceMiles := units.DistanceToMiles(entry.Distance, entry.DistanceUnit)
	passengerMiles := distanceMiles * float64(passengers)

	return RailTravelResult{
		EntryID:        entry.ID,
		CO2eKg:         passengerMiles * factor,
		DistanceMiles:  distanceMiles,
		PassengerMiles: passengerMiles,
		RailType:       entry.RailType,
		EmissionFactor: factor,
		CalculationMethod: fmt.Sprintf("%s rail: %.1f mi × %d passengers × %.4f kg CO2e/passenger-mile",
			entry.RailType, distanceMiles, passengers, factor),
	}, nil
}

// RailTravelTotals aggregates rail-travel results.
type RailTravelTotals struct {
	TotalCO2eKg         float64            `json:"totalCo2eKg"`
	TotalPassengerMiles float64            `json:"totalPassengerMiles"`
	ByRailType          map[string]float64 `json:"byRailType"`
}

// AggregateRailTravel reduces rail-travel results into totals.
// Returns nil for empty input.
func AggregateRailTravel(results []RailTravelResult) *RailTravelTotals {
	if len(results) == 0 {
		return nil
	}

	totals := &RailTravelTotals{ByRailType: make(map[string]float64)}
	for _, r := range results {
		totals.TotalCO2eKg += r.CO2eKg
		totals.TotalPassengerMiles += r.PassengerMiles
		totals.ByRailType[r.RailType] += r.CO2eKg
	}
	return totals
}

// TransportTotals rolls the three transport calculators up into one
// module-level view broken down by mode.
type TransportTotals struct {
	TotalCO2eKg float64            `json:"totalCo2eKg"`
	ByMode      map[string]float64 `json:"byMode"`
}

// AggregateTransport combines road, air, and rail totals. Returns nil when
// all three are nil.
func AggregateTransport(road *RoadVehicleTotals, air *AirTravelTotals, rail *RailTravelTotals) *TransportTotals {
	if road == nil && air == nil && rail == nil {
		return nil
	}

	totals := &TransportTotals{ByMode: make(map[string]float64)}
	if road != nil {
		totals.ByMode["road"] = road.TotalCO2eKg
		totals.TotalCO2eKg += road.TotalCO2eKg
	}
	if air != nil {
		totals.ByMode["air"] = air.TotalCO2eKg
		totals.TotalCO2eKg += air.TotalCO2eKg
	}
	if rail != nil {
		totals.ByMode["rail"] = rail.TotalCO2eKg
		totals.TotalCO2eKg += rail.TotalCO2eKg
	}
	return totals
}
