package calc

import (
	"fmt"

	"github.com/reelcarbon/reelcarbon/internal/refdata"
	"github.com/reelcarbon/reelcarbon/internal/units"
)

// Transport-module flight classification thresholds in miles. The
// commercial-travel module uses its own 287.7/688.5 figures; the two come
// from different source worksheets and must stay separate.
const (
	transportShortHaulMaxMiles  = 288.0
	transportMediumHaulMaxMiles = 688.0
)

// AirTravelEntry is one air-travel activity record in the transport module.
type AirTravelEntry struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	Distance     float64 `json:"distance"`
	DistanceUnit string  `json:"distanceUnit"`
	Passengers   int     `json:"passengers"`
	ReturnTrip   bool    `json:"returnTrip"`
}

// AirTravelResult is the derived emissions for one air-travel entry.
type AirTravelResult struct {
	EntryID           string  `json:"entryId"`
	CO2eKg            float64 `json:"co2eKg"`
	DistanceMiles     float64 `json:"distanceMiles"` // round-trip adjusted
	PassengerMiles    float64 `json:"passengerMiles"`
	Passengers        int     `json:"passengers"`
	Classification    string  `json:"classification"`
	EmissionFactor    float64 `json:"emissionFactor"`
	CalculationMethod string  `json:"calculationMethod"`
}

// ClassifyFlightDistance buckets a round-trip-adjusted distance in miles
// into the transport module's short/medium/long classification.
func ClassifyFlightDistance(distanceMiles float64) string {
	switch {
	case distanceMiles < transportShortHaulMaxMiles:
		return refdata.FlightShort
	case distanceMiles <= transportMediumHaulMaxMiles:
		return refdata.FlightMedium
	default:
		return refdata.FlightLong
	}
}

// CalculateAirTravel computes emissions for a single air-travel entry.
// Distance is normalized to miles, doubled for return trips, classified,
// then multiplied by passengers and the classification's factor.
func CalculateAirTravel(entry AirTravelEntry) (AirTravelResult, error) {
	if entry.Distance <= 0 {
		return AirTravelResult{}, fmt.Errorf("air travel %s: distance: %w",
			entry.ID, ErrMissingRequiredField)
	}

	distanceMiles := units.DistanceToMiles(entry.Distance, entry.DistanceUnit)
	if entry.ReturnTrip {
		distanceMiles *= 2
	}

	passengers := entry.Passengers
	if passengers < 1 {
		passengers = 1
	}

	classification := ClassifyFlightDistance(distanceMiles)
	factor := refdata.TransportFlightFactors[classification]
	passengerMiles := distanceMiles * float64(passengers)

	trip := "one-way"
	if entry.ReturnTrip {
		trip = "return"
	}

	return AirTravelResult{
		EntryID:        entry.ID,
		CO2eKg:         passengerMiles * factor,
		DistanceMiles:  distanceMiles,
		PassengerMiles: passengerMiles,
		Passengers:     passengers,
		Classification: classification,
		EmissionFactor: factor,
		CalculationMethod: fmt.Sprintf("%s haul %s flight: %.1f mi × %d passengers × %.4f kg CO2e/passenger-mile",
			classification, trip, distanceMiles, passengers, factor),
	}, nil
}

// AirTravelTotals aggregates air-travel results.
type AirTravelTotals struct {
	TotalCO2eKg         float64            `json:"totalCo2eKg"`
	TotalPassengerMiles float64            `json:"totalPassengerMiles"`
	ByClassification    map[string]float64 `json:"byClassification"`
}

// AggregateAirTravel reduces air-travel results into totals.
// Returns nil for empty input.
func AggregateAirTravel(results []AirTravelResult) *AirTravelTotals {
	if len(results) == 0 {
		return nil
	}

	totals := &AirTravelTotals{ByClassification: make(map[string]float64)}
	for _, r := range results {
		totals.TotalCO2eKg += r.CO2eKg
		totals.TotalPassengerMiles += r.PassengerMiles
		totals.ByClassification[r.Classification] += r.CO2eKg
	}
	return totals
}
