package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelcarbon/reelcarbon/internal/engine"
	"github.com/reelcarbon/reelcarbon/internal/refdata"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(zerolog.Nop(), engine.New(zerolog.Nop())).RegisterRoutes(r)
	return r
}

// TestCalculateRoadVehiclesEndpoint verifies a full recompute round trip
// over HTTP.
func TestCalculateRoadVehiclesEndpoint(t *testing.T) {
	body := `[{"id":"r1","fuelType":"petrol","distance":100,"distanceUnit":"miles"}]`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/road-vehicles/calculate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	testRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var out engine.RoadVehiclesOutput
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Results, 1)
	assert.InDelta(t, 35.5076, out.Results[0].CO2eKg, 1e-3)
	require.NotNil(t, out.Totals)
	assert.Equal(t, refdata.Version, out.Metadata.EmissionFactorsVersion)
}

// TestCalculateEndpoint_BadEntrySkipped verifies the skip-and-report policy
// surfaces through the API.
func TestCalculateEndpoint_BadEntrySkipped(t *testing.T) {
	body := `[
		{"id":"ok","fuelType":"diesel","distance":50,"distanceUnit":"miles"},
		{"id":"bad","fuelType":"plutonium","distance":50,"distanceUnit":"miles"}
	]`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/road-vehicles/calculate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	testRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var out engine.RoadVehiclesOutput
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Len(t, out.Results, 1)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "bad", out.Errors[0].EntryID)
}

// TestCalculateTransportEndpoint verifies the combined rollup recomputes
// all three transport modes and sums them by mode.
func TestCalculateTransportEndpoint(t *testing.T) {
	body := `{
		"roadVehicles": [{"id":"r1","fuelType":"petrol","distance":100,"distanceUnit":"miles"}],
		"airTravel":    [{"id":"a1","distance":500,"distanceUnit":"miles","passengers":1}],
		"railTravel":   [{"id":"t1","railType":"national","distance":100,"distanceUnit":"miles","passengers":1}]
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transport/calculate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	testRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var out engine.TransportOutput
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.RoadVehicles.Results, 1)
	require.Len(t, out.AirTravel.Results, 1)
	require.Len(t, out.RailTravel.Results, 1)
	require.NotNil(t, out.Totals)

	wantTotal := out.Totals.ByMode["road"] + out.Totals.ByMode["air"] + out.Totals.ByMode["rail"]
	assert.InDelta(t, wantTotal, out.Totals.TotalCO2eKg, 1e-9)
	assert.Equal(t, refdata.Version, out.Metadata.EmissionFactorsVersion)
}

// TestCalculateEndpoint_MalformedBody verifies a 400 on undecodable input
// and that the rejection lands on the failure status counter.
func TestCalculateEndpoint_MalformedBody(t *testing.T) {
	before := testutil.ToFloat64(CalculationsTotal.WithLabelValues(engine.ModuleHotels, statusBadRequest))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hotels/calculate", bytes.NewBufferString(`{"not":"an array"}`))
	req.Header.Set("Content-Type", "application/json")
	testRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	after := testutil.ToFloat64(CalculationsTotal.WithLabelValues(engine.ModuleHotels, statusBadRequest))
	assert.InDelta(t, before+1, after, 1e-9)
}

// TestFactorsVersionEndpoint verifies provenance is exposed for exports.
func TestFactorsVersionEndpoint(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/factors/version", nil)
	testRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Version string   `json:"version"`
		Sources []string `json:"sources"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, refdata.Version, payload.Version)
	assert.Contains(t, payload.Sources, refdata.SourceDEFRA)
	assert.Contains(t, payload.Sources, refdata.SourceIEA)
}

// TestHealthEndpoint verifies liveness.
func TestHealthEndpoint(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	testRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
