package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestElectricityFactors verifies the embedded IEA table parses and the
// unknown-country fallback lands on the United States figure.
func TestElectricityFactors(t *testing.T) {
	assert.InDelta(t, 0.3692, GetElectricityEmissionFactor(CountryUnitedStates), 1e-9)
	assert.InDelta(t, 0.2070, GetElectricityEmissionFactor("United Kingdom"), 1e-9)

	// Unknown country falls back to the US factor rather than failing.
	assert.InDelta(t, 0.3692, GetElectricityEmissionFactor("Atlantis"), 1e-9)

	countries := ElectricityCountries()
	require.NotEmpty(t, countries)
	assert.Contains(t, countries, CountryUnitedStates)
	assert.Contains(t, countries, "France")
}

// TestFactorValuesNonNegative verifies the table invariant value >= 0.
func TestFactorValuesNonNegative(t *testing.T) {
	for fuel, factor := range RoadFuelFactors {
		assert.GreaterOrEqual(t, factor, 0.0, "road fuel %s", fuel)
	}
	for class, factor := range TransportFlightFactors {
		assert.Greater(t, factor, 0.0, "transport flight %s", class)
	}
	for class, factor := range CommercialFlightFactors {
		assert.Greater(t, factor, 0.0, "commercial flight %s", class)
	}
	for railType, factor := range RailFactors {
		assert.Greater(t, factor, 0.0, "rail %s", railType)
	}
	for fuel, factor := range FuelGallonFactors {
		assert.Greater(t, factor, 0.0, "fuel %s", fuel)
	}
	for _, country := range ElectricityCountries() {
		assert.GreaterOrEqual(t, GetElectricityEmissionFactor(country), 0.0, country)
	}
}

// TestRailUndergroundFallback verifies the documented light-rail reuse.
func TestRailUndergroundFallback(t *testing.T) {
	light, ok := GetRailFactor(RailLight)
	require.True(t, ok)

	underground, ok := GetRailFactor(RailUnderground)
	require.True(t, ok)

	assert.Equal(t, light, underground)

	_, ok = GetRailFactor("maglev")
	assert.False(t, ok)
}

// TestEquipmentMPGFallback verifies the 20 mpg default for unlisted
// equipment types.
func TestEquipmentMPGFallback(t *testing.T) {
	assert.Equal(t, 8.0, GetEquipmentMPG(EquipmentTruck))
	assert.Equal(t, EquipmentDefaultMPG, GetEquipmentMPG("zeppelin"))
}

// TestAircraftProfiles verifies the charter profiles are complete.
func TestAircraftProfiles(t *testing.T) {
	for _, aircraftType := range []string{
		AircraftCommercialJet, AircraftLargePrivateJet, AircraftSmallPrivateJet, AircraftHelicopter,
	} {
		data, ok := GetAircraftData(aircraftType)
		require.True(t, ok, aircraftType)
		assert.Greater(t, data.GallonsPerHour, 0.0)
		assert.Greater(t, data.MilesPerGallon, 0.0)
		assert.Greater(t, data.FactorPerGallon, 0.0)
	}

	heli, ok := GetAircraftData(AircraftHelicopter)
	require.True(t, ok)
	assert.Equal(t, 50.0, heli.GallonsPerHour)
	assert.Equal(t, 8.824, heli.FactorPerGallon)

	_, ok = GetAircraftData("ornithopter")
	assert.False(t, ok)
}

// TestHotelRoomTable verifies room-type lookups.
func TestHotelRoomTable(t *testing.T) {
	kwh, ok := GetHotelRoomAnnualKWh(RoomMidscale)
	require.True(t, ok)
	assert.Greater(t, kwh, 0.0)

	_, ok = GetHotelRoomAnnualKWh("capsule")
	assert.False(t, ok)
}

// TestBuildingIntensities verifies building-type lookups.
func TestBuildingIntensities(t *testing.T) {
	intensity, ok := GetBuildingIntensity(BuildingSoundStage)
	require.True(t, ok)
	assert.Greater(t, intensity.ElectricityKWh, 0.0)

	_, ok = GetBuildingIntensity("igloo")
	assert.False(t, ok)
}
