package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelcarbon/reelcarbon/internal/refdata"
)

// TestCalculateUtilities_MeteredElectricity verifies the usage branch with
// heating off: 5000 kWh at the pinned US factor.
func TestCalculateUtilities_MeteredElectricity(t *testing.T) {
	result, err := CalculateUtilities(UtilitiesEntry{
		ID:                "u1",
		BuildingType:      refdata.BuildingOffice,
		ElectricityMethod: MethodUsage,
		ElectricityKWh:    5000,
		HeatFuel:          HeatNone,
	})
	require.NoError(t, err)

	assert.InDelta(t, 1846.0, result.CO2eKg, 1e-6) // 5000 × 0.3692
	assert.InDelta(t, 1846.0, result.ElectricityCO2eKg, 1e-6)
	assert.Zero(t, result.HeatingCO2eKg)
	assert.InDelta(t, 0.3692, result.EmissionFactor, 1e-9)
	assert.Contains(t, result.CalculationMethod, "metered usage")
}

// TestCalculateUtilities_AreaElectricity verifies the area branch with
// occupancy scaling.
func TestCalculateUtilities_AreaElectricity(t *testing.T) {
	result, err := CalculateUtilities(UtilitiesEntry{
		ID:                "u2",
		BuildingType:      refdata.BuildingWarehouse,
		FloorArea:         10000,
		FloorAreaUnit:     refdata.UnitSqFt,
		DaysOccupied:      73, // one fifth of a year
		ElectricityMethod: MethodArea,
		HeatFuel:          HeatNone,
	})
	require.NoError(t, err)

	// 7.6 kWh/ft²-yr × 10000 ft² × 73/365
	wantKWh := 7.6 * 10000 * 73.0 / 365.0
	assert.InDelta(t, wantKWh, result.ElectricityKWh, 1e-6)
	assert.InDelta(t, wantKWh*0.3692, result.CO2eKg, 1e-6)
}

// TestCalculateUtilities_AreaConvertsUnits verifies area normalization to
// square feet before the intensity lookup.
func TestCalculateUtilities_AreaConvertsUnits(t *testing.T) {
	sqft, err := CalculateUtilities(UtilitiesEntry{
		ID: "u3", BuildingType: refdata.BuildingOffice,
		FloorArea: 1076.39, FloorAreaUnit: refdata.UnitSqFt,
		ElectricityMethod: MethodArea, HeatFuel: HeatNone,
	})
	require.NoError(t, err)

	sqm, err := CalculateUtilities(UtilitiesEntry{
		ID: "u4", BuildingType: refdata.BuildingOffice,
		FloorArea: 100, FloorAreaUnit: refdata.UnitSqM,
		ElectricityMethod: MethodArea, HeatFuel: HeatNone,
	})
	require.NoError(t, err)

	assert.InDelta(t, sqft.CO2eKg, sqm.CO2eKg, 0.01)
}

// TestCalculateUtilities_NaturalGasHeating verifies metered gas converts to
// cubic meters before the factor applies.
func TestCalculateUtilities_NaturalGasHeating(t *testing.T) {
	result, err := CalculateUtilities(UtilitiesEntry{
		ID:                "u5",
		BuildingType:      refdata.BuildingOffice,
		ElectricityMethod: MethodNone,
		HeatFuel:          HeatNaturalGas,
		HeatMethod:        MethodUsage,
		NaturalGasUsage:   100,
		NaturalGasUnit:    refdata.UnitCubicMeters,
	})
	require.NoError(t, err)

	assert.Zero(t, result.ElectricityCO2eKg)
	assert.InDelta(t, 100*2.0336, result.HeatingCO2eKg, 1e-6)
}

// TestCalculateUtilities_FuelOilHeating verifies metered oil converts to
// liters before the factor applies.
func TestCalculateUtilities_FuelOilHeating(t *testing.T) {
	result, err := CalculateUtilities(UtilitiesEntry{
		ID:                "u6",
		BuildingType:      refdata.BuildingResidential,
		ElectricityMethod: MethodNone,
		HeatFuel:          HeatFuelOil,
		HeatMethod:        MethodUsage,
		FuelOilUsage:      10,
		FuelOilUnit:       refdata.UnitGallons,
	})
	require.NoError(t, err)

	wantLiters := 10 * 3.78541
	assert.InDelta(t, wantLiters*2.5404, result.HeatingCO2eKg, 1e-4)
}

// TestCalculateUtilities_AreaNaturalGasHeating verifies gas heating
// estimated from floor area: the building intensity gives cubic feet per
// square foot per year, scaled by occupancy, then normalized to cubic
// meters before the factor applies.
func TestCalculateUtilities_AreaNaturalGasHeating(t *testing.T) {
	result, err := CalculateUtilities(UtilitiesEntry{
		ID:                "u8",
		BuildingType:      refdata.BuildingOffice,
		FloorArea:         1000,
		FloorAreaUnit:     refdata.UnitSqFt,
		DaysOccupied:      73,
		ElectricityMethod: MethodNone,
		HeatFuel:          HeatNaturalGas,
		HeatMethod:        MethodArea,
	})
	require.NoError(t, err)

	// 33.4 ft³/ft²-yr × 1000 ft² × 73/365, to m³, × factor
	wantCuFt := 33.4 * 1000 * 73.0 / 365.0
	want := wantCuFt / 35.3147 * 2.0336
	assert.InDelta(t, want, result.HeatingCO2eKg, 1e-6)
	assert.Zero(t, result.ElectricityCO2eKg)
	assert.Contains(t, result.CalculationMethod, "natural gas estimated")
}

// TestCalculateUtilities_AreaFuelOilHeating verifies oil heating estimated
// from floor area over a full year when daysOccupied is unset.
func TestCalculateUtilities_AreaFuelOilHeating(t *testing.T) {
	result, err := CalculateUtilities(UtilitiesEntry{
		ID:                "u9",
		BuildingType:      refdata.BuildingResidential,
		FloorArea:         1000,
		FloorAreaUnit:     refdata.UnitSqFt,
		ElectricityMethod: MethodNone,
		HeatFuel:          HeatFuelOil,
		HeatMethod:        MethodArea,
	})
	require.NoError(t, err)

	// 0.08 gal/ft²-yr × 1000 ft², to liters, × factor ≈ 769.32 kg
	wantGallons := 0.08 * 1000.0
	want := wantGallons / 0.264172 * 2.5404
	assert.InDelta(t, want, result.HeatingCO2eKg, 1e-6)
	assert.InDelta(t, 769.32, result.HeatingCO2eKg, 0.01)
}

// TestCalculateUtilities_UnknownBuildingType verifies that every area-based
// estimate rejects a building type with no intensity data.
func TestCalculateUtilities_UnknownBuildingType(t *testing.T) {
	tests := []struct {
		name  string
		entry UtilitiesEntry
	}{
		{
			name: "area electricity",
			entry: UtilitiesEntry{
				ID: "u10", BuildingType: "igloo",
				FloorArea: 500, FloorAreaUnit: refdata.UnitSqFt,
				ElectricityMethod: MethodArea, HeatFuel: HeatNone,
			},
		},
		{
			name: "area natural gas",
			entry: UtilitiesEntry{
				ID: "u11", BuildingType: "igloo",
				FloorArea: 500, FloorAreaUnit: refdata.UnitSqFt,
				ElectricityMethod: MethodNone,
				HeatFuel:          HeatNaturalGas, HeatMethod: MethodArea,
			},
		},
		{
			name: "area fuel oil",
			entry: UtilitiesEntry{
				ID: "u12", BuildingType: "igloo",
				FloorArea: 500, FloorAreaUnit: refdata.UnitSqFt,
				ElectricityMethod: MethodNone,
				HeatFuel:          HeatFuelOil, HeatMethod: MethodArea,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateUtilities(tt.entry)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingRequiredField)
			assert.Contains(t, err.Error(), "igloo")
		})
	}
}

// TestCalculateUtilities_IncludedInElectricity verifies the
// non-double-counting rule: the heating load is already in the electricity
// figure, so heating contributes zero.
func TestCalculateUtilities_IncludedInElectricity(t *testing.T) {
	result, err := CalculateUtilities(UtilitiesEntry{
		ID:                "u7",
		BuildingType:      refdata.BuildingOffice,
		ElectricityMethod: MethodUsage,
		ElectricityKWh:    1000,
		HeatFuel:          HeatIncludedInElectricity,
		HeatMethod:        MethodUsage,
		NaturalGasUsage:   500, // must be ignored
		NaturalGasUnit:    refdata.UnitCubicMeters,
	})
	require.NoError(t, err)

	assert.Zero(t, result.HeatingCO2eKg)
	assert.InDelta(t, 1000*0.3692, result.CO2eKg, 1e-6)
	assert.Contains(t, result.CalculationMethod, "included in electricity")
}

// TestAggregateUtilities verifies totals and the nil-on-empty contract.
func TestAggregateUtilities(t *testing.T) {
	assert.Nil(t, AggregateUtilities(nil))

	results := []UtilitiesResult{
		{EntryID: "a", CO2eKg: 50, ElectricityKWh: 135, ElectricityCO2eKg: 50, BuildingType: refdata.BuildingOffice},
		{EntryID: "b", CO2eKg: 25, ElectricityKWh: 68, ElectricityCO2eKg: 25, BuildingType: refdata.BuildingOffice},
	}
	totals := AggregateUtilities(results)
	require.NotNil(t, totals)
	assert.InDelta(t, 75, totals.TotalCO2eKg, 1e-9)
	assert.InDelta(t, 75, totals.ByBuildingType[refdata.BuildingOffice], 1e-9)
}
