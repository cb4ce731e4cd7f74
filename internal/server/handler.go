// Package server exposes the calculation engine over a JSON HTTP API.
// Clients POST a module's full entry array and receive the recomputed
// results, totals, and provenance metadata; the server stores nothing.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/reelcarbon/reelcarbon/internal/calc"
	"github.com/reelcarbon/reelcarbon/internal/engine"
	"github.com/reelcarbon/reelcarbon/internal/refdata"
)

// Handler serves the calculation API.
type Handler struct {
	logger zerolog.Logger
	engine *engine.Engine
}

// NewHandler creates an API handler around a calculation engine.
func NewHandler(logger zerolog.Logger, eng *engine.Engine) *Handler {
	return &Handler{logger: logger, engine: eng}
}

// RegisterRoutes registers the API on a gin engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.POST("/road-vehicles/calculate", h.CalculateRoadVehicles)
		api.POST("/air-travel/calculate", h.CalculateAirTravel)
		api.POST("/rail-travel/calculate", h.CalculateRailTravel)
		api.POST("/utilities/calculate", h.CalculateUtilities)
		api.POST("/fuel/calculate", h.CalculateFuel)
		api.POST("/ev-charging/calculate", h.CalculateEVCharging)
		api.POST("/hotels/calculate", h.CalculateHotels)
		api.POST("/commercial-travel/calculate", h.CalculateCommercialTravel)
		api.POST("/charter-flights/calculate", h.CalculateCharterFlights)
		api.POST("/transport/calculate", h.CalculateTransport)

		api.GET("/factors/version", h.FactorsVersion)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", h.HealthCheck)
}

// Status label values for CalculationsTotal.
const (
	statusOK         = "ok"
	statusBadRequest = "bad_request"
)

// observe records metrics for one recompute.
func observe(module string, start time.Time, entryErrors int) {
	CalculationsTotal.WithLabelValues(module, statusOK).Inc()
	CalculationDuration.WithLabelValues(module).Observe(time.Since(start).Seconds())
	if entryErrors > 0 {
		EntryErrorsTotal.WithLabelValues(module).Add(float64(entryErrors))
	}
}

// badRequest rejects an unparseable payload and counts the rejection.
func badRequest(c *gin.Context, module string, err error) {
	CalculationsTotal.WithLabelValues(module, statusBadRequest).Inc()
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// CalculateRoadVehicles recomputes the road-vehicles module.
func (h *Handler) CalculateRoadVehicles(c *gin.Context) {
	var entries []calc.RoadVehicleEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		badRequest(c, engine.ModuleRoadVehicles, err)
		return
	}
	start := time.Now()
	out := h.engine.RecalculateRoadVehicles(entries)
	observe(engine.ModuleRoadVehicles, start, len(out.Errors))
	c.JSON(http.StatusOK, out)
}

// CalculateAirTravel recomputes the air-travel module.
func (h *Handler) CalculateAirTravel(c *gin.Context) {
	var entries []calc.AirTravelEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		badRequest(c, engine.ModuleAirTravel, err)
		return
	}
	start := time.Now()
	out := h.engine.RecalculateAirTravel(entries)
	observe(engine.ModuleAirTravel, start, len(out.Errors))
	c.JSON(http.StatusOK, out)
}

// CalculateRailTravel recomputes the rail-travel module.
func (h *Handler) CalculateRailTravel(c *gin.Context) {
	var entries []calc.RailTravelEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		badRequest(c, engine.ModuleRailTravel, err)
		return
	}
	start := time.Now()
	out := h.engine.RecalculateRailTravel(entries)
	observe(engine.ModuleRailTravel, start, len(out.Errors))
	c.JSON(http.StatusOK, out)
}

// CalculateUtilities recomputes the utilities module.
func (h *Handler) CalculateUtilities(c *gin.Context) {
	var entries []calc.UtilitiesEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		badRequest(c, engine.ModuleUtilities, err)
		return
	}
	start := time.Now()
	out := h.engine.RecalculateUtilities(entries)
	observe(engine.ModuleUtilities, start, len(out.Errors))
	c.JSON(http.StatusOK, out)
}

// CalculateFuel recomputes the fuel module.
func (h *Handler) CalculateFuel(c *gin.Context) {
	var entries []calc.FuelEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		badRequest(c, engine.ModuleFuel, err)
		return
	}
	start := time.Now()
	out := h.engine.RecalculateFuel(entries)
	observe(engine.ModuleFuel, start, len(out.Errors))
	c.JSON(http.StatusOK, out)
}

// CalculateEVCharging recomputes the EV charging module.
func (h *Handler) CalculateEVCharging(c *gin.Context) {
	var entries []calc.EVChargingEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		badRequest(c, engine.ModuleEVCharging, err)
		return
	}
	start := time.Now()
	out := h.engine.RecalculateEVCharging(entries)
	observe(engine.ModuleEVCharging, start, len(out.Errors))
	c.JSON(http.StatusOK, out)
}

// CalculateHotels recomputes the hotels module.
func (h *Handler) CalculateHotels(c *gin.Context) {
	var entries []calc.HotelsEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		badRequest(c, engine.ModuleHotels, err)
		return
	}
	start := time.Now()
	out := h.engine.RecalculateHotels(entries)
	observe(engine.ModuleHotels, start, len(out.Errors))
	c.JSON(http.StatusOK, out)
}

// CalculateCommercialTravel recomputes the commercial-travel module.
func (h *Handler) CalculateCommercialTravel(c *gin.Context) {
	var entries []calc.CommercialTravelEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		badRequest(c, engine.ModuleCommercialTravel, err)
		return
	}
	start := time.Now()
	out := h.engine.RecalculateCommercialTravel(entries)
	observe(engine.ModuleCommercialTravel, start, len(out.Errors))
	c.JSON(http.StatusOK, out)
}

// CalculateCharterFlights recomputes the charter-flights module.
func (h *Handler) CalculateCharterFlights(c *gin.Context) {
	var entries []calc.CharterFlightsEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		badRequest(c, engine.ModuleCharterFlights, err)
		return
	}
	start := time.Now()
	out := h.engine.RecalculateCharterFlights(entries)
	observe(engine.ModuleCharterFlights, start, len(out.Errors))
	c.JSON(http.StatusOK, out)
}

// CalculateTransport recomputes road, air, and rail together and returns
// the combined per-mode rollup.
func (h *Handler) CalculateTransport(c *gin.Context) {
	var in engine.TransportInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, engine.ModuleTransport, err)
		return
	}
	start := time.Now()
	out := h.engine.RecalculateTransport(in)
	entryErrors := len(out.RoadVehicles.Errors) + len(out.AirTravel.Errors) + len(out.RailTravel.Errors)
	observe(engine.ModuleTransport, start, entryErrors)
	c.JSON(http.StatusOK, out)
}

// FactorsVersion reports the factor snapshot and its source citations.
func (h *Handler) FactorsVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": refdata.Version,
		"sources": []string{refdata.SourceDEFRA, refdata.SourceIEA},
	})
}

// HealthCheck reports liveness.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
