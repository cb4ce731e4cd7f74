package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelcarbon/reelcarbon/internal/refdata"
)

// TestClassifyCommercialFlight pins the commercial module's 287.7/688.5
// thresholds, which deliberately differ from the transport module's 288/688.
func TestClassifyCommercialFlight(t *testing.T) {
	tests := []struct {
		miles float64
		want  string
	}{
		{0, refdata.FlightAverage},
		{-5, refdata.FlightAverage},
		{287.6, refdata.FlightShort},
		{287.7, refdata.FlightMedium},
		{688.5, refdata.FlightMedium},
		{688.6, refdata.FlightLong},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyCommercialFlight(tt.miles), "%.1f miles", tt.miles)
	}
}

// TestCalculateCommercialTravel verifies factor selection per transport
// type.
func TestCalculateCommercialTravel(t *testing.T) {
	tests := []struct {
		name       string
		entry      CommercialTravelEntry
		wantErr    error
		wantFactor float64
	}{
		{
			name: "medium haul flight",
			entry: CommercialTravelEntry{
				ID: "c1", TransportType: CommercialFlight,
				PassengerDistance: 500, DistanceUnit: refdata.UnitMiles,
			},
			wantFactor: refdata.CommercialFlightFactors[refdata.FlightMedium],
		},
		{
			name: "national rail",
			entry: CommercialTravelEntry{
				ID: "c2", TransportType: CommercialNationalRail,
				PassengerDistance: 100, DistanceUnit: refdata.UnitMiles,
			},
			wantFactor: 0.0571,
		},
		{
			name: "ferry",
			entry: CommercialTravelEntry{
				ID: "c3", TransportType: CommercialFerry,
				PassengerDistance: 40, DistanceUnit: refdata.UnitMiles,
			},
			wantFactor: refdata.FerryFactor,
		},
		{
			name: "unknown transport type fails",
			entry: CommercialTravelEntry{
				ID: "c4", TransportType: "airship",
				PassengerDistance: 40, DistanceUnit: refdata.UnitMiles,
			},
			wantErr: ErrUnknownTransportType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CalculateCommercialTravel(tt.entry)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantFactor, result.EmissionFactor, 1e-9)
			assert.InDelta(t, result.PassengerMiles*tt.wantFactor, result.CO2eKg, 1e-9)
		})
	}
}

// TestCalculateCommercialTravel_KmNormalization verifies passenger-distance
// converts to miles before classification.
func TestCalculateCommercialTravel_KmNormalization(t *testing.T) {
	// 500 km is ~310.7 miles: medium by the commercial thresholds.
	result, err := CalculateCommercialTravel(CommercialTravelEntry{
		ID: "c5", TransportType: CommercialFlight,
		PassengerDistance: 500, DistanceUnit: refdata.UnitKilometers,
	})
	require.NoError(t, err)
	assert.Equal(t, refdata.FlightMedium, result.Classification)
	assert.InDelta(t, 310.6855, result.PassengerMiles, 1e-3)
}

// TestAggregateCommercialTravel verifies the per-type and per-class
// breakdowns.
func TestAggregateCommercialTravel(t *testing.T) {
	assert.Nil(t, AggregateCommercialTravel(nil))

	results := []CommercialTravelResult{
		{EntryID: "a", CO2eKg: 50, PassengerMiles: 300, TransportType: CommercialFlight, Classification: refdata.FlightMedium},
		{EntryID: "b", CO2eKg: 25, PassengerMiles: 150, TransportType: CommercialFlight, Classification: refdata.FlightShort},
		{EntryID: "c", CO2eKg: 5, PassengerMiles: 90, TransportType: CommercialNationalRail},
	}
	totals := AggregateCommercialTravel(results)
	require.NotNil(t, totals)
	assert.InDelta(t, 80, totals.TotalCO2eKg, 1e-9)
	assert.InDelta(t, 75, totals.ByTransportType[CommercialFlight], 1e-9)
	assert.InDelta(t, 50, totals.ByClassification[refdata.FlightMedium], 1e-9)
	_, hasRailClass := totals.ByClassification[""]
	assert.False(t, hasRailClass)
}
