package calc

import (
	"fmt"

	"github.com/reelcarbon/reelcarbon/internal/refdata"
)

// EVChargingEntry is one electric-vehicle charging activity record.
type EVChargingEntry struct {
	ID             string  `json:"id"`
	Date           string  `json:"date"`
	Country        string  `json:"country"`
	Region         string  `json:"region,omitempty"` // label only, not a lookup key
	ElectricityKWh float64 `json:"electricityKwh"`
	MilesDriven    float64 `json:"milesDriven,omitempty"` // tracking only
}

// EVChargingResult is the derived emissions for one EV charging entry.
type EVChargingResult struct {
	EntryID           string  `json:"entryId"`
	CO2eKg            float64 `json:"co2eKg"`
	ElectricityKWh    float64 `json:"electricityKwh"`
	MilesDriven       float64 `json:"milesDriven,omitempty"`
	Country           string  `json:"country"`
	Region            string  `json:"region,omitempty"`
	EmissionFactor    float64 `json:"emissionFactor"`
	CalculationMethod string  `json:"calculationMethod"`
}

// CalculateEVCharging computes emissions for a single EV charging entry:
// kWh times the country's grid factor. Unknown countries fall back to the
// United States figure. Miles driven is carried through for reporting and
// never affects emissions.
func CalculateEVCharging(entry EVChargingEntry) (EVChargingResult, error) {
	factor := refdata.GetElectricityEmissionFactor(entry.Country)

	return EVChargingResult{
		EntryID:        entry.ID,
		CO2eKg:         entry.ElectricityKWh * factor,
		ElectricityKWh: entry.ElectricityKWh,
		MilesDriven:    entry.MilesDriven,
		Country:        entry.Country,
		Region:         entry.Region,
		EmissionFactor: factor,
		CalculationMethod: fmt.Sprintf("EV charging: %.1f kWh × %.4f kg CO2e/kWh (%s grid)",
			entry.ElectricityKWh, factor, entry.Country),
	}, nil
}

// EVChargingTotals aggregates EV charging results.
type EVChargingTotals struct {
	TotalCO2eKg      float64            `json:"totalCo2eKg"`
	TotalKWh         float64            `json:"totalKwh"`
	TotalMilesDriven float64            `json:"totalMilesDriven"`
	ByCountry        map[string]float64 `json:"byCountry"`
}

// AggregateEVCharging reduces EV charging results into totals.
// Returns nil for empty input.
func AggregateEVCharging(results []EVChargingResult) *EVChargingTotals {
	if len(results) == 0 {
		return nil
	}

	totals := &EVChargingTotals{ByCountry: make(map[string]float64)}
	for _, r := range results {
		totals.TotalCO2eKg += r.CO2eKg
		totals.TotalKWh += r.ElectricityKWh
		totals.TotalMilesDriven += r.MilesDriven
		totals.ByCountry[r.Country] += r.CO2eKg
	}
	return totals
}
