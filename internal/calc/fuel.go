package calc

import (
	"fmt"

	"github.com/reelcarbon/reelcarbon/internal/refdata"
	"github.com/reelcarbon/reelcarbon/internal/units"
)

// FuelEntry is one equipment-or-vehicle fuel activity record.
type FuelEntry struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	EquipmentType string `json:"equipmentType"`
	FuelType      string `json:"fuelType"`
	Method        string `json:"calculationMethod"` // amount | mileage | cost

	FuelAmount float64 `json:"fuelAmount,omitempty"`
	FuelUnit   string  `json:"fuelUnit,omitempty"`

	Miles float64 `json:"miles,omitempty"`

	TotalCost      float64 `json:"totalCost,omitempty"`
	PricePerGallon float64 `json:"pricePerGallon,omitempty"`
}

// FuelResult is the derived emissions for one fuel entry.
type FuelResult struct {
	EntryID           string  `json:"entryId"`
	CO2eKg            float64 `json:"co2eKg"`
	FuelGallons       float64 `json:"fuelGallons"` // zero for natural gas
	NaturalGasCuFt    float64 `json:"naturalGasCuFt,omitempty"`
	FuelType          string  `json:"fuelType"`
	EquipmentType     string  `json:"equipmentType"`
	EmissionFactor    float64 `json:"emissionFactor"`
	CalculationMethod string  `json:"calculationMethod"`
}

// fuelAmountToGallons converts a fuel amount to gallons with fuel-type-aware
// mass ratios: propane/LPG and butane are often purchased by the kilogram.
func fuelAmountToGallons(amount float64, unit, fuelType string) float64 {
	if unit == refdata.UnitKg {
		switch fuelType {
		case refdata.FuelPropane, refdata.FuelLPG:
			return amount * refdata.LPGGallonsPerKg
		case refdata.FuelButane:
			return amount * refdata.ButaneGallonsPerKg
		}
	}
	return units.VolumeToGallons(amount, unit)
}

// CalculateFuel computes emissions for a single fuel entry.
//
// Methods: "amount" normalizes the given quantity to gallons (or cubic feet
// for natural gas, whose factor is denominated per cubic foot); "mileage"
// divides miles by the equipment type's mpg (20 mpg fallback for unlisted
// types); "cost" divides total cost by price per gallon.
func CalculateFuel(entry FuelEntry) (FuelResult, error) {
	// Natural gas never goes through the gallon-equivalent path.
	if entry.FuelType == refdata.FuelNaturalGas {
		if entry.Method != MethodAmount {
			return FuelResult{}, fmt.Errorf("fuel %s: natural gas requires the amount method: %w",
				entry.ID, ErrMissingRequiredField)
		}
		cubicFeet := units.NaturalGasToCubicFeet(entry.FuelAmount, entry.FuelUnit)
		return FuelResult{
			EntryID:        entry.ID,
			CO2eKg:         cubicFeet * refdata.NaturalGasPerCubicFootFactor,
			NaturalGasCuFt: cubicFeet,
			FuelType:       entry.FuelType,
			EquipmentType:  entry.EquipmentType,
			EmissionFactor: refdata.NaturalGasPerCubicFootFactor,
			CalculationMethod: fmt.Sprintf("natural gas amount: %.1f ft³ × %.4f kg CO2e/ft³",
				cubicFeet, refdata.NaturalGasPerCubicFootFactor),
		}, nil
	}

	factor, ok := refdata.GetFuelGallonFactor(entry.FuelType)
	if !ok {
		return FuelResult{}, fmt.Errorf("fuel %s: fuel type %q: %w",
			entry.ID, entry.FuelType, ErrUnknownFuelType)
	}

	var gallons float64
	var method string
	switch entry.Method {
	case MethodAmount:
		gallons = fuelAmountToGallons(entry.FuelAmount, entry.FuelUnit, entry.FuelType)
		method = fmt.Sprintf("fuel amount: %.2f gal %s", gallons, entry.FuelType)
	case MethodMileage:
		mpg := refdata.GetEquipmentMPG(entry.EquipmentType)
		gallons = entry.Miles / mpg
		method = fmt.Sprintf("mileage: %.1f mi ÷ %.0f mpg (%s) = %.2f gal",
			entry.Miles, mpg, entry.EquipmentType, gallons)
	case MethodCost:
		if entry.PricePerGallon <= 0 {
			return FuelResult{}, fmt.Errorf("fuel %s: price per gallon %.2f: %w",
				entry.ID, entry.PricePerGallon, ErrInvalidDivisor)
		}
		gallons = entry.TotalCost / entry.PricePerGallon
		method = fmt.Sprintf("cost: %.2f ÷ %.2f per gal = %.2f gal",
			entry.TotalCost, entry.PricePerGallon, gallons)
	default:
		return FuelResult{}, fmt.Errorf("fuel %s: calculation method %q: %w",
			entry.ID, entry.Method, ErrMissingRequiredField)
	}

	return FuelResult{
		EntryID:           entry.ID,
		CO2eKg:            gallons * factor,
		FuelGallons:       gallons,
		FuelType:          entry.FuelType,
		EquipmentType:     entry.EquipmentType,
		EmissionFactor:    factor,
		CalculationMethod: method,
	}, nil
}

// FuelTotals aggregates fuel results.
type FuelTotals struct {
	TotalCO2eKg      float64            `json:"totalCo2eKg"`
	TotalFuelGallons float64            `json:"totalFuelGallons"`
	ByFuelType       map[string]float64 `json:"byFuelType"`
	ByEquipmentType  map[string]float64 `json:"byEquipmentType"`
}

// AggregateFuel reduces fuel results into totals. Returns nil for empty
// input.
func AggregateFuel(results []FuelResult) *FuelTotals {
	if len(results) == 0 {
		return nil
	}

	totals := &FuelTotals{
		ByFuelType:      make(map[string]float64),
		ByEquipmentType: make(map[string]float64),
	}
	for _, r := range results {
		totals.TotalCO2eKg += r.CO2eKg
		totals.TotalFuelGallons += r.FuelGallons
		totals.ByFuelType[r.FuelType] += r.CO2eKg
		totals.ByEquipmentType[r.EquipmentType] += r.CO2eKg
	}
	return totals
}
