package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CalculationsTotal counts module recomputes by outcome.
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelcarbon_calculations_total",
			Help: "Total number of module recalculations processed",
		},
		[]string{"module", "status"},
	)

	// CalculationDuration observes recompute latency per module.
	CalculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelcarbon_calculation_duration_seconds",
			Help:    "Module recalculation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
		[]string{"module"},
	)

	// EntryErrorsTotal counts entries skipped during recomputes.
	EntryErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelcarbon_entry_errors_total",
			Help: "Total number of entries that failed calculation and were skipped",
		},
		[]string{"module"},
	)
)
