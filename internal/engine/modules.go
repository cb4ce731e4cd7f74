package engine

import (
	"github.com/reelcarbon/reelcarbon/internal/calc"
	"github.com/reelcarbon/reelcarbon/internal/refdata"
)

// Module identifiers used in logs, metrics, and the HTTP API.
const (
	ModuleRoadVehicles     = "road_vehicles"
	ModuleAirTravel        = "air_travel"
	ModuleRailTravel       = "rail_travel"
	ModuleUtilities        = "utilities"
	ModuleFuel             = "fuel"
	ModuleEVCharging       = "ev_charging"
	ModuleHotels           = "hotels"
	ModuleCommercialTravel = "commercial_travel"
	ModuleCharterFlights   = "charter_flights"

	// ModuleTransport is the rollup of road, air, and rail.
	ModuleTransport = "transport"
)

// sourceDEFRAandIEA cites both snapshots for modules mixing fuel and grid
// factors.
const sourceDEFRAandIEA = refdata.SourceDEFRA + "; " + refdata.SourceIEA

// RoadVehiclesOutput is the full recompute result for the road module.
type RoadVehiclesOutput struct {
	Entries  []calc.RoadVehicleEntry  `json:"entries"`
	Results  []calc.RoadVehicleResult `json:"results"`
	Totals   *calc.RoadVehicleTotals  `json:"totals"`
	Errors   []EntryError             `json:"errors,omitempty"`
	Metadata Metadata                 `json:"metadata"`
}

// RecalculateRoadVehicles re-reduces the road module from scratch. Entries
// without an ID are assigned one.
func (e *Engine) RecalculateRoadVehicles(entries []calc.RoadVehicleEntry) RoadVehiclesOutput {
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = newEntryID()
		}
	}
	results, errs := runBatch(e, ModuleRoadVehicles, entries,
		func(en calc.RoadVehicleEntry) string { return en.ID }, calc.CalculateRoadVehicle)
	return RoadVehiclesOutput{
		Entries:  entries,
		Results:  results,
		Totals:   calc.AggregateRoadVehicles(results),
		Errors:   errs,
		Metadata: e.metadata(refdata.SourceDEFRA),
	}
}

// AirTravelOutput is the full recompute result for the air-travel module.
type AirTravelOutput struct {
	Entries  []calc.AirTravelEntry  `json:"entries"`
	Results  []calc.AirTravelResult `json:"results"`
	Totals   *calc.AirTravelTotals  `json:"totals"`
	Errors   []EntryError           `json:"errors,omitempty"`
	Metadata Metadata               `json:"metadata"`
}

// RecalculateAirTravel re-reduces the air-travel module from scratch.
func (e *Engine) RecalculateAirTravel(entries []calc.AirTravelEntry) AirTravelOutput {
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = newEntryID()
		}
	}
	results, errs := runBatch(e, ModuleAirTravel, entries,
		func(en calc.AirTravelEntry) string { return en.ID }, calc.CalculateAirTravel)
	return AirTravelOutput{
		Entries:  entries,
		Results:  results,
		Totals:   calc.AggregateAirTravel(results),
		Errors:   errs,
		Metadata: e.metadata(refdata.SourceDEFRA),
	}
}

// RailTravelOutput is the full recompute result for the rail-travel module.
type RailTravelOutput struct {
	Entries  []calc.RailTravelEntry  `json:"entries"`
	Results  []calc.RailTravelResult `json:"results"`
	Totals   *calc.RailTravelTotals  `json:"totals"`
	Errors   []EntryError            `json:"errors,omitempty"`
	Metadata Metadata                `json:"metadata"`
}

// RecalculateRailTravel re-reduces the rail-travel module from scratch.
func (e *Engine) RecalculateRailTravel(entries []calc.RailTravelEntry) RailTravelOutput {
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = newEntryID()
		}
	}
	results, errs := runBatch(e, ModuleRailTravel, entries,
		func(en calc.RailTravelEntry) string { return en.ID }, calc.CalculateRailTravel)
	return RailTravelOutput{
		Entries:  entries,
		Results:  results,
		Totals:   calc.AggregateRailTravel(results),
		Errors:   errs,
		Metadata: e.metadata(refdata.SourceDEFRA),
	}
}

// UtilitiesOutput is the full recompute result for the utilities module.
type UtilitiesOutput struct {
	Entries  []calc.UtilitiesEntry  `json:"entries"`
	Results  []calc.UtilitiesResult `json:"results"`
	Totals   *calc.UtilitiesTotals  `json:"totals"`
	Errors   []EntryError           `json:"errors,omitempty"`
	Metadata Metadata               `json:"metadata"`
}

// RecalculateUtilities re-reduces the utilities module from scratch.
func (e *Engine) RecalculateUtilities(entries []calc.UtilitiesEntry) UtilitiesOutput {
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = newEntryID()
		}
	}
	results, errs := runBatch(e, ModuleUtilities, entries,
		func(en calc.UtilitiesEntry) string { return en.ID }, calc.CalculateUtilities)
	return UtilitiesOutput{
		Entries:  entries,
		Results:  results,
		Totals:   calc.AggregateUtilities(results),
		Errors:   errs,
		Metadata: e.metadata(sourceDEFRAandIEA),
	}
}

// FuelOutput is the full recompute result for the fuel module.
type FuelOutput struct {
	Entries  []calc.FuelEntry  `json:"entries"`
	Results  []calc.FuelResult `json:"results"`
	Totals   *calc.FuelTotals  `json:"totals"`
	Errors   []EntryError      `json:"errors,omitempty"`
	Metadata Metadata          `json:"metadata"`
}

// RecalculateFuel re-reduces the fuel module from scratch.
func (e *Engine) RecalculateFuel(entries []calc.FuelEntry) FuelOutput {
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = newEntryID()
		}
	}
	results, errs := runBatch(e, ModuleFuel, entries,
		func(en calc.FuelEntry) string { return en.ID }, calc.CalculateFuel)
	return FuelOutput{
		Entries:  entries,
		Results:  results,
		Totals:   calc.AggregateFuel(results),
		Errors:   errs,
		Metadata: e.metadata(refdata.SourceDEFRA),
	}
}

// EVChargingOutput is the full recompute result for the EV charging module.
type EVChargingOutput struct {
	Entries  []calc.EVChargingEntry  `json:"entries"`
	Results  []calc.EVChargingResult `json:"results"`
	Totals   *calc.EVChargingTotals  `json:"totals"`
	Errors   []EntryError            `json:"errors,omitempty"`
	Metadata Metadata                `json:"metadata"`
}

// RecalculateEVCharging re-reduces the EV charging module from scratch.
func (e *Engine) RecalculateEVCharging(entries []calc.EVChargingEntry) EVChargingOutput {
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = newEntryID()
		}
	}
	results, errs := runBatch(e, ModuleEVCharging, entries,
		func(en calc.EVChargingEntry) string { return en.ID }, calc.CalculateEVCharging)
	return EVChargingOutput{
		Entries:  entries,
		Results:  results,
		Totals:   calc.AggregateEVCharging(results),
		Errors:   errs,
		Metadata: e.metadata(refdata.SourceIEA),
	}
}

// HotelsOutput is the full recompute result for the hotels module.
type HotelsOutput struct {
	Entries  []calc.HotelsEntry  `json:"entries"`
	Results  []calc.HotelsResult `json:"results"`
	Totals   *calc.HotelsTotals  `json:"totals"`
	Errors   []EntryError        `json:"errors,omitempty"`
	Metadata Metadata            `json:"metadata"`
}

// RecalculateHotels re-reduces the hotels module from scratch.
func (e *Engine) RecalculateHotels(entries []calc.HotelsEntry) HotelsOutput {
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = newEntryID()
		}
	}
	results, errs := runBatch(e, ModuleHotels, entries,
		func(en calc.HotelsEntry) string { return en.ID }, calc.CalculateHotels)
	return HotelsOutput{
		Entries:  entries,
		Results:  results,
		Totals:   calc.AggregateHotels(results),
		Errors:   errs,
		Metadata: e.metadata(refdata.SourceIEA),
	}
}

// CommercialTravelOutput is the full recompute result for the
// commercial-travel module.
type CommercialTravelOutput struct {
	Entries  []calc.CommercialTravelEntry  `json:"entries"`
	Results  []calc.CommercialTravelResult `json:"results"`
	Totals   *calc.CommercialTravelTotals  `json:"totals"`
	Errors   []EntryError                  `json:"errors,omitempty"`
	Metadata Metadata                      `json:"metadata"`
}

// RecalculateCommercialTravel re-reduces the commercial-travel module from
// scratch.
func (e *Engine) RecalculateCommercialTravel(entries []calc.CommercialTravelEntry) CommercialTravelOutput {
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = newEntryID()
		}
	}
	results, errs := runBatch(e, ModuleCommercialTravel, entries,
		func(en calc.CommercialTravelEntry) string { return en.ID }, calc.CalculateCommercialTravel)
	return CommercialTravelOutput{
		Entries:  entries,
		Results:  results,
		Totals:   calc.AggregateCommercialTravel(results),
		Errors:   errs,
		Metadata: e.metadata(refdata.SourceDEFRA),
	}
}

// TransportInput carries the entry arrays for the three transport
// calculators recomputed together.
type TransportInput struct {
	RoadVehicles []calc.RoadVehicleEntry `json:"roadVehicles"`
	AirTravel    []calc.AirTravelEntry   `json:"airTravel"`
	RailTravel   []calc.RailTravelEntry  `json:"railTravel"`
}

// TransportOutput is the combined recompute result for the transport
// rollup: the three per-mode outputs plus a total broken down by mode.
type TransportOutput struct {
	RoadVehicles RoadVehiclesOutput    `json:"roadVehicles"`
	AirTravel    AirTravelOutput       `json:"airTravel"`
	RailTravel   RailTravelOutput      `json:"railTravel"`
	Totals       *calc.TransportTotals `json:"totals"`
	Metadata     Metadata              `json:"metadata"`
}

// RecalculateTransport re-reduces road, air, and rail together and rolls
// their totals up by mode. Totals is nil when all three modes are empty.
func (e *Engine) RecalculateTransport(in TransportInput) TransportOutput {
	road := e.RecalculateRoadVehicles(in.RoadVehicles)
	air := e.RecalculateAirTravel(in.AirTravel)
	rail := e.RecalculateRailTravel(in.RailTravel)
	return TransportOutput{
		RoadVehicles: road,
		AirTravel:    air,
		RailTravel:   rail,
		Totals:       calc.AggregateTransport(road.Totals, air.Totals, rail.Totals),
		Metadata:     e.metadata(refdata.SourceDEFRA),
	}
}

// CharterFlightsOutput is the full recompute result for the charter-flights
// module.
type CharterFlightsOutput struct {
	Entries  []calc.CharterFlightsEntry  `json:"entries"`
	Results  []calc.CharterFlightsResult `json:"results"`
	Totals   *calc.CharterFlightsTotals  `json:"totals"`
	Errors   []EntryError                `json:"errors,omitempty"`
	Metadata Metadata                    `json:"metadata"`
}

// RecalculateCharterFlights re-reduces the charter-flights module from
// scratch.
func (e *Engine) RecalculateCharterFlights(entries []calc.CharterFlightsEntry) CharterFlightsOutput {
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = newEntryID()
		}
	}
	results, errs := runBatch(e, ModuleCharterFlights, entries,
		func(en calc.CharterFlightsEntry) string { return en.ID }, calc.CalculateCharterFlight)
	return CharterFlightsOutput{
		Entries:  entries,
		Results:  results,
		Totals:   calc.AggregateCharterFlights(results),
		Errors:   errs,
		Metadata: e.metadata(refdata.SourceDEFRA),
	}
}
