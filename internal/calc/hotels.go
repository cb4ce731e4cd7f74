package calc

import (
	"fmt"

	"github.com/reelcarbon/reelcarbon/internal/refdata"
)

// HotelsEntry is one hotel-stay activity record.
type HotelsEntry struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	RoomType string `json:"roomType"`
	Country  string `json:"country"`
	Nights   int    `json:"nights"`
}

// HotelsResult is the derived emissions for one hotel-stay entry.
type HotelsResult struct {
	EntryID           string  `json:"entryId"`
	CO2eKg            float64 `json:"co2eKg"`
	EnergyKWh         float64 `json:"energyKwh"`
	Nights            int     `json:"nights"`
	RoomType          string  `json:"roomType"`
	Country           string  `json:"country"`
	EmissionFactor    float64 `json:"emissionFactor"`
	CalculationMethod string  `json:"calculationMethod"`
}

// CalculateHotels computes emissions for a single hotel-stay entry: the room
// type's annual kWh scaled by nights/365, times the country's grid factor.
func CalculateHotels(entry HotelsEntry) (HotelsResult, error) {
	annualKWh, ok := refdata.GetHotelRoomAnnualKWh(entry.RoomType)
	if !ok {
		return HotelsResult{}, fmt.Errorf("hotels %s: room type %q: %w",
			entry.ID, entry.RoomType, ErrUnknownRoomType)
	}

	factor := refdata.GetElectricityEmissionFactor(entry.Country)
	energyKWh := annualKWh * float64(entry.Nights) / 365.0

	return HotelsResult{
		EntryID:        entry.ID,
		CO2eKg:         energyKWh * factor,
		EnergyKWh:      energyKWh,
		Nights:         entry.Nights,
		RoomType:       entry.RoomType,
		Country:        entry.Country,
		EmissionFactor: factor,
		CalculationMethod: fmt.Sprintf("%s room: %.0f kWh/yr × %d/365 nights × %.4f kg CO2e/kWh (%s grid)",
			entry.RoomType, annualKWh, entry.Nights, factor, entry.Country),
	}, nil
}

// HotelsTotals aggregates hotel results.
type HotelsTotals struct {
	TotalCO2eKg float64            `json:"totalCo2eKg"`
	TotalNights int                `json:"totalNights"`
	ByRoomType  map[string]float64 `json:"byRoomType"`
	ByCountry   map[string]float64 `json:"byCountry"`
}

// AggregateHotels reduces hotel results into totals. Returns nil for empty
// input.
func AggregateHotels(results []HotelsResult) *HotelsTotals {
	if len(results) == 0 {
		return nil
	}

	totals := &HotelsTotals{
		ByRoomType: make(map[string]float64),
		ByCountry:  make(map[string]float64),
	}
	for _, r := range results {
		totals.TotalCO2eKg += r.CO2eKg
		totals.TotalNights += r.Nights
		totals.ByRoomType[r.RoomType] += r.CO2eKg
		totals.ByCountry[r.Country] += r.CO2eKg
	}
	return totals
}
