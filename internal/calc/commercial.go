package calc

import (
	"fmt"

	"github.com/reelcarbon/reelcarbon/internal/refdata"
	"github.com/reelcarbon/reelcarbon/internal/units"
)

// Commercial travel transport types.
const (
	CommercialFlight            = "flight"
	CommercialNationalRail      = "national_rail"
	CommercialInternationalRail = "international_rail"
	CommercialLightRail         = "light_rail_and_tram"
	CommercialFerry             = "ferry"
)

// Commercial-travel flight classification thresholds in miles. These differ
// from the transport module's 288/688 on purpose: the two mirror distinct
// source worksheets.
const (
	commercialShortHaulMaxMiles  = 287.7
	commercialMediumHaulMaxMiles = 688.5
)

// CommercialTravelEntry is one commercial-travel activity record. The
// distance is already passenger-distance (passengers × distance).
type CommercialTravelEntry struct {
	ID                string  `json:"id"`
	Date              string  `json:"date"`
	TransportType     string  `json:"transportType"`
	PassengerDistance float64 `json:"passengerDistance"`
	DistanceUnit      string  `json:"distanceUnit"`
}

// CommercialTravelResult is the derived emissions for one commercial-travel
// entry.
type CommercialTravelResult struct {
	EntryID           string  `json:"entryId"`
	CO2eKg            float64 `json:"co2eKg"`
	PassengerMiles    float64 `json:"passengerMiles"`
	TransportType     string  `json:"transportType"`
	Classification    string  `json:"classification,omitempty"` // flights only
	EmissionFactor    float64 `json:"emissionFactor"`
	CalculationMethod string  `json:"calculationMethod"`
}

// classifyCommercialFlight buckets passenger-miles into the commercial
// module's classification; zero or negative distance gets "average".
func classifyCommercialFlight(distanceMiles float64) string {
	switch {
	case distanceMiles <= 0:
		return refdata.FlightAverage
	case distanceMiles < commercialShortHaulMaxMiles:
		return refdata.FlightShort
	case distanceMiles <= commercialMediumHaulMaxMiles:
		return refdata.FlightMedium
	default:
		return refdata.FlightLong
	}
}

// CalculateCommercialTravel computes emissions for a single commercial
// travel entry. Flights classify by distance and select the matching factor;
// other transport types look up a fixed per-passenger-mile factor.
func CalculateCommercialTravel(entry CommercialTravelEntry) (CommercialTravelResult, error) {
	passengerMiles := units.DistanceToMiles(entry.PassengerDistance, entry.DistanceUnit)

	var factor float64
	var classification string
	switch entry.TransportType {
	case CommercialFlight:
		classification = classifyCommercialFlight(passengerMiles)
		factor = refdata.CommercialFlightFactors[classification]
	case CommercialNationalRail:
		factor, _ = refdata.GetRailFactor(refdata.RailNational)
	case CommercialInternationalRail:
		factor, _ = refdata.GetRailFactor(refdata.RailInternational)
	case CommercialLightRail:
		factor, _ = refdata.GetRailFactor(refdata.RailLight)
	case CommercialFerry:
		factor = refdata.FerryFactor
	default:
		return CommercialTravelResult{}, fmt.Errorf("commercial travel %s: transport type %q: %w",
			entry.ID, entry.TransportType, ErrUnknownTransportType)
	}

	method := fmt.Sprintf("%s: %.1f passenger-miles × %.4f kg CO2e/passenger-mile",
		entry.TransportType, passengerMiles, factor)
	if classification != "" {
		method = fmt.Sprintf("%s (%s haul): %.1f passenger-miles × %.4f kg CO2e/passenger-mile",
			entry.TransportType, classification, passengerMiles, factor)
	}

	return CommercialTravelResult{
		EntryID:           entry.ID,
		CO2eKg:            passengerMiles * factor,
		PassengerMiles:    passengerMiles,
		TransportType:     entry.TransportType,
		Classification:    classification,
		EmissionFactor:    factor,
		CalculationMethod: method,
	}, nil
}

// CommercialTravelTotals aggregates commercial-travel results.
type CommercialTravelTotals struct {
	TotalCO2eKg         float64            `json:"totalCo2eKg"`
	TotalPassengerMiles float64            `json:"totalPassengerMiles"`
	ByTransportType     map[string]float64 `json:"byTransportType"`
	ByClassification    map[string]float64 `json:"byClassification"`
}

// AggregateCommercialTravel reduces commercial-travel results into totals.
// Returns nil for empty input.
func AggregateCommercialTravel(results []CommercialTravelResult) *CommercialTravelTotals {
	if len(results) == 0 {
		return nil
	}

	totals := &CommercialTravelTotals{
		ByTransportType:  make(map[string]float64),
		ByClassification: make(map[string]float64),
	}
	for _, r := range results {
		totals.TotalCO2eKg += r.CO2eKg
		totals.TotalPassengerMiles += r.PassengerMiles
		totals.ByTransportType[r.TransportType] += r.CO2eKg
		if r.Classification != "" {
			totals.ByClassification[r.Classification] += r.CO2eKg
		}
	}
	return totals
}
